// Package http serves the protocol endpoints over gin, answering signed requests the way
// the paired backend does.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pinkoot/AI-Assistant/internal/httputil"
	protocolDomain "github.com/pinkoot/AI-Assistant/internal/protocol/domain"
	"github.com/pinkoot/AI-Assistant/internal/protocol/transport"
	protocolUseCase "github.com/pinkoot/AI-Assistant/internal/protocol/usecase"
	requestLogHTTP "github.com/pinkoot/AI-Assistant/internal/requestlog/http"
)

// MirrorHandler answers every catalog endpoint with the verified parameters re-encoded.
type MirrorHandler struct {
	mirrorUseCase protocolUseCase.MirrorUseCase
	logger        *slog.Logger
}

// NewMirrorHandler creates a new mirror handler.
func NewMirrorHandler(mirrorUseCase protocolUseCase.MirrorUseCase, logger *slog.Logger) *MirrorHandler {
	return &MirrorHandler{
		mirrorUseCase: mirrorUseCase,
		logger:        logger,
	}
}

// Register mounts GET /<endpoint> for every endpoint in the catalog.
func (h *MirrorHandler) Register(routes gin.IRoutes) {
	for _, endpoint := range protocolDomain.Endpoints() {
		routes.GET("/"+endpoint, h.EndpointHandler(endpoint))
	}
}

// EndpointHandler serves one endpoint. The raw query string is passed through untouched
// so parameter order, which the signature covers, survives.
func (h *MirrorHandler) EndpointHandler(endpoint string) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := h.mirrorUseCase.Handle(
			c.Request.Context(),
			endpoint,
			c.Request.URL.RawQuery,
			c.GetHeader(transport.SignatureHeader),
		)
		if err != nil {
			httputil.HandlePlainErrorGin(c, err, h.logger)
			return
		}

		if decoded, err := resp.Decoded.CanonicalJSON(); err == nil {
			requestLogHTTP.SetRequestData(c, string(decoded))
		}

		body, err := resp.Body.MarshalJSON()
		if err != nil {
			httputil.HandlePlainErrorGin(c, err, h.logger)
			return
		}
		requestLogHTTP.SetResponseData(c, string(body))

		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
	}
}

// NotFoundHandler answers paths outside the catalog with a plain {"error": ...} body.
func (h *MirrorHandler) NotFoundHandler(c *gin.Context) {
	err := fmt.Errorf("%w: %s", protocolDomain.ErrUnknownAction, c.Request.URL.Path)
	httputil.HandlePlainErrorGin(c, err, h.logger)
}
