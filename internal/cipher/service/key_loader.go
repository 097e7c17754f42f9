package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	validation "github.com/jellydator/validation"

	cipherDomain "github.com/pinkoot/AI-Assistant/internal/cipher/domain"
	customValidation "github.com/pinkoot/AI-Assistant/internal/validation"
)

// KeyLoaderConfig describes where the protocol key comes from. A plaintext key wins;
// otherwise KeyURI and Ciphertext together name a KMS-wrapped key.
type KeyLoaderConfig struct {
	Plaintext  string
	KeyURI     string
	Ciphertext string // base64 (standard encoding) of the wrapped key
}

type keyLoader struct {
	cfg        KeyLoaderConfig
	kmsService KMSService
	logger     *slog.Logger
}

// NewKeyLoader creates a KeyLoader reading from cfg.
func NewKeyLoader(cfg KeyLoaderConfig, kmsService KMSService, logger *slog.Logger) KeyLoader {
	return &keyLoader{
		cfg:        cfg,
		kmsService: kmsService,
		logger:     logger,
	}
}

// Load returns the configured key. Returns ErrKeyNotConfigured when no source is set and
// ErrInvalidKey when the resolved secret does not normalize to a usable key.
func (l *keyLoader) Load(ctx context.Context) (cipherDomain.Key, error) {
	if l.cfg.Plaintext != "" {
		l.logger.Debug("using plaintext protocol key")
		return cipherDomain.NewKey(l.cfg.Plaintext)
	}

	if l.cfg.KeyURI == "" || l.cfg.Ciphertext == "" {
		return cipherDomain.Key{}, cipherDomain.ErrKeyNotConfigured
	}

	if err := validation.Validate(l.cfg.Ciphertext, customValidation.WrappedKey); err != nil {
		return cipherDomain.Key{}, fmt.Errorf(
			"failed to decode wrapped protocol key: %w", customValidation.WrapValidationError(err),
		)
	}

	wrapped, err := base64.StdEncoding.DecodeString(l.cfg.Ciphertext)
	if err != nil {
		return cipherDomain.Key{}, fmt.Errorf("failed to decode wrapped protocol key: %w", err)
	}

	keeper, err := l.kmsService.OpenKeeper(ctx, l.cfg.KeyURI)
	if err != nil {
		return cipherDomain.Key{}, err
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			l.logger.Error("failed to close KMS keeper", slog.Any("error", closeErr))
		}
	}()

	secret, err := keeper.Decrypt(ctx, wrapped)
	if err != nil {
		return cipherDomain.Key{}, fmt.Errorf("failed to unwrap protocol key: %w", err)
	}

	l.logger.Info("protocol key unwrapped via KMS")
	return cipherDomain.NewKey(string(secret))
}
