package service

import (
	"fmt"
	"log/slog"

	cipherDomain "github.com/pinkoot/AI-Assistant/internal/cipher/domain"
	cipherService "github.com/pinkoot/AI-Assistant/internal/cipher/service"
	protocolDomain "github.com/pinkoot/AI-Assistant/internal/protocol/domain"
)

type parameterCodec struct {
	cipher    cipherService.Cipher
	cipherErr error
	index     *cipherDomain.AlphabetIndex
	logger    *slog.Logger
}

// NewParameterCodec builds the cipher for key. A zero or unusable key does not fail
// construction: every fail-open call then logs the cipher error and passes data
// through, and every strict call returns it.
func NewParameterCodec(key cipherDomain.Key, logger *slog.Logger) ParameterCodec {
	cipher, err := cipherService.NewVigenereCipher(key)
	return &parameterCodec{
		cipher:    cipher,
		cipherErr: err,
		index:     cipherDomain.DefaultAlphabetIndex(),
		logger:    logger,
	}
}

// EncryptRequest encodes every value of params in order. On failure the original map
// is returned unchanged and the error is logged.
func (c *parameterCodec) EncryptRequest(params *protocolDomain.Params) *protocolDomain.Params {
	encoded, err := c.EncodeParams(params)
	if err != nil {
		c.logger.Error("request encryption failed, sending parameters unencrypted",
			slog.Any("error", err),
			slog.Int("params", params.Len()),
		)
		return params
	}
	return encoded
}

// DecryptResponse decodes every scalar leaf of an object response. Responses that are
// not objects, and objects carrying a top-level "error" key, pass through untouched.
// On failure the original response is returned and the error is logged.
func (c *parameterCodec) DecryptResponse(node protocolDomain.Node) protocolDomain.Node {
	if node.Kind != protocolDomain.NodeObject {
		return node
	}
	if _, ok := node.ErrorMessage(); ok {
		return node
	}

	decoded, err := c.walk(node, c.decodeValue)
	if err != nil {
		c.logger.Error("response decryption failed, using response as received",
			slog.Any("error", err),
		)
		return node
	}
	return decoded
}

// EncryptResponse encodes every scalar leaf of an object response, leaving error
// responses in plaintext. On failure the original response is returned.
func (c *parameterCodec) EncryptResponse(node protocolDomain.Node) protocolDomain.Node {
	if node.Kind != protocolDomain.NodeObject {
		return node
	}
	if _, ok := node.ErrorMessage(); ok {
		return node
	}

	encoded, err := c.walk(node, c.encodeValue)
	if err != nil {
		c.logger.Error("response encryption failed, sending response unencrypted",
			slog.Any("error", err),
		)
		return node
	}
	return encoded
}

// EncodeParams encodes every value of params into a new map with the same key order.
func (c *parameterCodec) EncodeParams(params *protocolDomain.Params) (*protocolDomain.Params, error) {
	return c.mapParams(params, c.encodeValue)
}

// DecodeParams decodes every value of params into a new map with the same key order.
func (c *parameterCodec) DecodeParams(params *protocolDomain.Params) (*protocolDomain.Params, error) {
	return c.mapParams(params, c.decodeValue)
}

func (c *parameterCodec) mapParams(
	params *protocolDomain.Params,
	fn func(protocolDomain.Value) (protocolDomain.Value, error),
) (out *protocolDomain.Params, err error) {
	defer recoverInto(&err)

	if c.cipherErr != nil {
		return nil, c.cipherErr
	}

	out = protocolDomain.NewParams()
	for _, key := range params.Keys() {
		v, _ := params.Get(key)
		mapped, err := fn(v)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", key, err)
		}
		out.Set(key, mapped)
	}
	return out, nil
}

func (c *parameterCodec) walk(
	node protocolDomain.Node,
	fn func(protocolDomain.Value) (protocolDomain.Value, error),
) (out protocolDomain.Node, err error) {
	defer recoverInto(&err)

	if c.cipherErr != nil {
		return node, c.cipherErr
	}
	return c.walkNode(node, fn)
}

func (c *parameterCodec) walkNode(
	node protocolDomain.Node,
	fn func(protocolDomain.Value) (protocolDomain.Value, error),
) (protocolDomain.Node, error) {
	switch node.Kind {
	case protocolDomain.NodeList:
		items := make([]protocolDomain.Node, 0, len(node.Items))
		for i, item := range node.Items {
			mapped, err := c.walkNode(item, fn)
			if err != nil {
				return node, fmt.Errorf("index %d: %w", i, err)
			}
			items = append(items, mapped)
		}
		return protocolDomain.ListNode(items...), nil
	case protocolDomain.NodeObject:
		obj := protocolDomain.NewObject()
		for _, key := range node.Fields.Keys() {
			field, _ := node.Fields.Get(key)
			mapped, err := c.walkNode(field, fn)
			if err != nil {
				return node, fmt.Errorf("key %q: %w", key, err)
			}
			obj.Set(key, mapped)
		}
		return protocolDomain.ObjectNode(obj), nil
	default:
		v, err := fn(node.Scalar)
		if err != nil {
			return node, err
		}
		return protocolDomain.ScalarNode(v), nil
	}
}

func (c *parameterCodec) encodeValue(v protocolDomain.Value) (protocolDomain.Value, error) {
	if !v.IsValid() {
		return v, protocolDomain.ErrUnsupportedShape
	}
	encoded, err := c.cipher.Encode(v.String())
	if err != nil {
		return v, err
	}
	return protocolDomain.StringValue(encoded), nil
}

func (c *parameterCodec) decodeValue(v protocolDomain.Value) (protocolDomain.Value, error) {
	if !v.IsValid() {
		return v, protocolDomain.ErrUnsupportedShape
	}
	decoded, err := c.cipher.Decode(v.String())
	if err != nil {
		return v, err
	}
	if foreign := c.countForeign(decoded); foreign > 0 {
		c.logger.Debug("decoded value contains characters outside the alphabet",
			slog.Int("count", foreign),
		)
	}
	return protocolDomain.StringValue(decoded), nil
}

// countForeign counts runes the cipher copied through unchanged.
func (c *parameterCodec) countForeign(s string) int {
	count := 0
	for _, r := range s {
		if !c.index.Contains(r) {
			count++
		}
	}
	return count
}

// recoverInto turns a panic in the cipher into an error so callers can fail open.
func recoverInto(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", cipherDomain.ErrEncodingFailure, r)
	}
}
