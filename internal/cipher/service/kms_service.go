package service

import (
	"context"
	"fmt"

	validation "github.com/jellydator/validation"
	"gocloud.dev/secrets"

	cipherDomain "github.com/pinkoot/AI-Assistant/internal/cipher/domain"
	customValidation "github.com/pinkoot/AI-Assistant/internal/validation"

	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// keeperOpener resolves KMS URIs through gocloud.dev. The drivers imported above must
// match customValidation.KeeperSchemes.
type keeperOpener struct{}

func NewKMSService() KMSService {
	return keeperOpener{}
}

func (keeperOpener) OpenKeeper(ctx context.Context, keyURI string) (cipherDomain.KMSKeeper, error) {
	if err := validation.Validate(keyURI, validation.Required, customValidation.KeeperURI); err != nil {
		return nil, fmt.Errorf("invalid KMS key URI: %w", customValidation.WrapValidationError(err))
	}

	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return keeper, nil
}
