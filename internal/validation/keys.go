package validation

import (
	"encoding/base64"
	"net/url"
	"slices"

	validation "github.com/jellydator/validation"
)

// KeeperSchemes are the gocloud.dev secrets drivers linked into the binary.
var KeeperSchemes = []string{"awskms", "azurekeyvault", "base64key", "gcpkms", "hashivault"}

// KeeperURI validates a KMS key URI whose scheme is one of KeeperSchemes.
var KeeperURI = validation.By(func(value any) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_keeper_uri_type", "must be a string")
	}
	if s == "" {
		return nil
	}

	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return validation.NewError("validation_keeper_uri", "must be a URI such as gcpkms://...")
	}
	if !slices.Contains(KeeperSchemes, u.Scheme) {
		return validation.NewError("validation_keeper_scheme", "unsupported KMS scheme "+u.Scheme)
	}
	return nil
})

// WrappedKey validates a KMS ciphertext in standard base64 that decodes to at least one byte.
var WrappedKey = validation.NewStringRuleWithError(
	func(s string) bool {
		raw, err := base64.StdEncoding.DecodeString(s)
		return err == nil && len(raw) > 0
	},
	validation.NewError("validation_wrapped_key", "must be non-empty standard base64"),
)
