package domain

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// NodeKind identifies the JSON shape of a Node.
type NodeKind int

const (
	NodeScalar NodeKind = iota
	NodeList
	NodeObject
)

// Node is one value of a decoded JSON response: a scalar, a list of nodes, or an
// ordered object of nodes.
type Node struct {
	Kind   NodeKind
	Scalar Value
	Items  []Node
	Fields *Object
}

// ScalarNode wraps v in a Node.
func ScalarNode(v Value) Node {
	return Node{Kind: NodeScalar, Scalar: v}
}

// ListNode returns a list Node.
func ListNode(items ...Node) Node {
	return Node{Kind: NodeList, Items: items}
}

// ObjectNode returns an object Node; a nil object becomes empty.
func ObjectNode(obj *Object) Node {
	if obj == nil {
		obj = NewObject()
	}
	return Node{Kind: NodeObject, Fields: obj}
}

// ParamsNode converts a flat parameter map into an object Node.
func ParamsNode(p *Params) Node {
	obj := NewObject()
	p.Each(func(key string, v Value) {
		obj.Set(key, ScalarNode(v))
	})
	return ObjectNode(obj)
}

// Object is an insertion-ordered JSON object.
type Object struct {
	keys   []string
	fields map[string]Node
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{fields: make(map[string]Node)}
}

// Set stores n under key, keeping the first position of an existing key.
func (o *Object) Set(key string, n Node) *Object {
	if _, ok := o.fields[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = n
	return o
}

// Get returns the node stored under key.
func (o *Object) Get(key string) (Node, bool) {
	if o == nil {
		return Node{}, false
	}
	n, ok := o.fields[key]
	return n, ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Len returns the number of fields.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Each calls fn for every field in insertion order.
func (o *Object) Each(fn func(key string, n Node)) {
	if o == nil {
		return
	}
	for _, key := range o.keys {
		fn(key, o.fields[key])
	}
}

// ErrorMessage returns the server-signaled error carried by a top-level "error" key.
// The value is returned as plaintext: error payloads are never encoded.
func (n Node) ErrorMessage() (string, bool) {
	if n.Kind != NodeObject {
		return "", false
	}
	errNode, ok := n.Fields.Get("error")
	if !ok {
		return "", false
	}
	if errNode.Kind == NodeScalar {
		return errNode.Scalar.String(), true
	}
	raw, err := errNode.MarshalJSON()
	if err != nil {
		return "", true
	}
	return string(raw), true
}

// ParseNode decodes a JSON document into a Node, keeping object key order.
func ParseNode(data []byte) (Node, error) {
	if !gjson.ValidBytes(data) {
		return Node{}, fmt.Errorf("%w: response is not valid JSON", ErrMalformedResponse)
	}
	return nodeFromResult(gjson.ParseBytes(data)), nil
}

func nodeFromResult(r gjson.Result) Node {
	switch {
	case r.IsObject():
		obj := NewObject()
		r.ForEach(func(key, value gjson.Result) bool {
			obj.Set(key.String(), nodeFromResult(value))
			return true
		})
		return ObjectNode(obj)
	case r.IsArray():
		items := make([]Node, 0)
		r.ForEach(func(_, value gjson.Result) bool {
			items = append(items, nodeFromResult(value))
			return true
		})
		return ListNode(items...)
	}

	switch r.Type {
	case gjson.String:
		return ScalarNode(StringValue(r.Str))
	case gjson.Number:
		return ScalarNode(NumberValue(r.Num))
	case gjson.True:
		return ScalarNode(BoolValue(true))
	case gjson.False:
		return ScalarNode(BoolValue(false))
	default:
		return ScalarNode(NullValue())
	}
}

// MarshalJSON renders n as compact JSON, keeping object key order.
func (n Node) MarshalJSON() ([]byte, error) {
	switch n.Kind {
	case NodeScalar:
		return scalarJSON(n.Scalar)
	case NodeList:
		out := []byte("[]")
		for _, item := range n.Items {
			raw, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			if out, err = sjson.SetRawBytes(out, "-1", raw); err != nil {
				return nil, err
			}
		}
		return out, nil
	default:
		out := []byte("{}")
		for _, key := range n.Fields.Keys() {
			field, _ := n.Fields.Get(key)
			raw, err := field.MarshalJSON()
			if err != nil {
				return nil, err
			}
			if key == "" {
				out = appendEmptyKey(out, raw)
				continue
			}
			if out, err = sjson.SetRawBytes(out, escapePath(key), raw); err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
		}
		return out, nil
	}
}

// appendEmptyKey adds a "" member to the compact object obj. sjson has no path for the
// empty key. Object keys are unique, so it is never present already.
func appendEmptyKey(obj, raw []byte) []byte {
	out := make([]byte, 0, len(obj)+len(raw)+4)
	out = append(out, obj[:len(obj)-1]...)
	if len(obj) > 2 {
		out = append(out, ',')
	}
	out = append(out, `"":`...)
	out = append(out, raw...)
	return append(out, '}')
}

func scalarJSON(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSONValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// escapePath escapes the sjson path metacharacters in a literal object key.
func escapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '\\', '|', '#', '@':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
