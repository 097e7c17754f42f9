package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	cipherDomain "github.com/pinkoot/AI-Assistant/internal/cipher/domain"
	protocolDomain "github.com/pinkoot/AI-Assistant/internal/protocol/domain"
	protocolService "github.com/pinkoot/AI-Assistant/internal/protocol/service"
	"github.com/pinkoot/AI-Assistant/internal/protocol/transport"
	protocolUseCase "github.com/pinkoot/AI-Assistant/internal/protocol/usecase"
	usecaseMocks "github.com/pinkoot/AI-Assistant/internal/protocol/usecase/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRouter(handler *MirrorHandler) *gin.Engine {
	router := gin.New()
	handler.Register(router)
	router.NoRoute(handler.NotFoundHandler)
	return router
}

func newMirrorHandler(key cipherDomain.Key) *MirrorHandler {
	logger := discardLogger()
	mirror := protocolUseCase.NewMirrorUseCase(
		key,
		protocolService.NewParameterCodec(key, logger),
		protocolService.NewHMACSigner(),
		logger,
	)
	return NewMirrorHandler(mirror, logger)
}

func TestMirrorHandler(t *testing.T) {
	key := cipherDomain.MustKey("ключ")
	encrypted := protocolDomain.NewParams().
		SetString("query", "щуж ккаиощ.").
		SetString("exact", "true")
	signature := "f00b570397897641e2a58966d5de5b4e19cae21e3f688c5c17138045ef86d3fe"

	t.Run("Success_EchoesEncodedParameters", func(t *testing.T) {
		router := newRouter(newMirrorHandler(key))

		req := httptest.NewRequest(http.MethodGet, "/search_exact?"+encrypted.QueryString(), nil)
		req.Header.Set(transport.SignatureHeader, signature)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `{"query":"щуж ккаиощ.","exact":"true"}`, w.Body.String())
	})

	t.Run("Error_MissingSignature", func(t *testing.T) {
		router := newRouter(newMirrorHandler(key))

		req := httptest.NewRequest(http.MethodGet, "/search_exact?"+encrypted.QueryString(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"signature missing: unauthorized"}`, w.Body.String())
	})

	t.Run("Error_TamperedParameters", func(t *testing.T) {
		router := newRouter(newMirrorHandler(key))

		req := httptest.NewRequest(http.MethodGet, "/search_exact?exact=true&query=x", nil)
		req.Header.Set(transport.SignatureHeader, signature)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Error_UnknownEndpoint", func(t *testing.T) {
		router := newRouter(newMirrorHandler(key))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/delete_everything", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), `"error":"unknown action`)
	})

	t.Run("Success_AllEndpointsRegistered", func(t *testing.T) {
		router := newRouter(newMirrorHandler(key))

		routes := make(map[string]bool)
		for _, route := range router.Routes() {
			routes[route.Path] = true
		}
		for _, endpoint := range protocolDomain.Endpoints() {
			assert.True(t, routes["/"+endpoint], endpoint)
		}
	})
}

func TestMirrorHandler_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"decryption failed", protocolDomain.ErrDecryptionFailed, http.StatusBadRequest},
		{"malformed query", protocolDomain.ErrMalformedQuery, http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mirror := usecaseMocks.NewMockMirrorUseCase(t)
			mirror.EXPECT().
				Handle(mock.Anything, "get_weather", "q=x", "sig").
				Return(nil, tt.err).
				Once()

			router := newRouter(NewMirrorHandler(mirror, discardLogger()))

			req := httptest.NewRequest(http.MethodGet, "/get_weather?q=x", nil)
			req.Header.Set(transport.SignatureHeader, "sig")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}
