package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	validation "github.com/jellydator/validation"

	cipherDomain "github.com/pinkoot/AI-Assistant/internal/cipher/domain"
	protocolDomain "github.com/pinkoot/AI-Assistant/internal/protocol/domain"
	protocolService "github.com/pinkoot/AI-Assistant/internal/protocol/service"
	customValidation "github.com/pinkoot/AI-Assistant/internal/validation"
)

// ParseParamPairs turns key=value arguments into a parameter map in argument order.
// The first occurrence of a key wins, matching how the mirror parses query strings.
func ParseParamPairs(pairs []string) (*protocolDomain.Params, error) {
	params := protocolDomain.NewParams()
	for _, pair := range pairs {
		if err := validation.Validate(pair, customValidation.KeyValuePair); err != nil {
			return nil, customValidation.WrapValidationError(fmt.Errorf("param %q: %w", pair, err))
		}
		key, value, _ := strings.Cut(pair, "=")
		if err := validation.Validate(key, customValidation.NoWhitespace); err != nil {
			return nil, customValidation.WrapValidationError(fmt.Errorf("param key %q: %w", key, err))
		}
		if !params.Has(key) {
			params.SetString(key, value)
		}
	}
	return params, nil
}

// RunSign encrypts the given parameters the way the pipeline does and prints the
// encrypted query string together with its signature.
func RunSign(
	codec protocolService.ParameterCodec,
	signer protocolService.Signer,
	key cipherDomain.Key,
	w io.Writer,
	pairs []string,
	format string,
) error {
	asJSON, err := isJSON(format)
	if err != nil {
		return err
	}

	params, err := ParseParamPairs(pairs)
	if err != nil {
		return err
	}

	encrypted, err := codec.EncodeParams(params)
	if err != nil {
		return fmt.Errorf("failed to encrypt params: %w", err)
	}

	signature, err := signer.Sign(key, encrypted)
	if err != nil {
		return fmt.Errorf("failed to sign params: %w", err)
	}

	if asJSON {
		canonical, err := encrypted.CanonicalJSON()
		if err != nil {
			return err
		}
		return writeJSON(w, map[string]any{
			"params":    json.RawMessage(canonical),
			"query":     encrypted.QueryString(),
			"signature": signature,
		})
	}

	_, err = fmt.Fprintf(w, "Query: %s\nSignature: %s\n", encrypted.QueryString(), signature)
	return err
}
