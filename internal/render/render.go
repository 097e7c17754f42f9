// Package render writes pipeline results and errors for the terminal, as text or JSON.
package render

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	protocolDomain "github.com/pinkoot/AI-Assistant/internal/protocol/domain"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("invalid format: %s (valid options: text, json)", s)
	}
}

var slotTitles = map[protocolDomain.Slot]string{
	protocolDomain.SlotWeather: "Weather",
	protocolDomain.SlotSearch:  "Search results",
	protocolDomain.SlotResult:  "Result",
}

// Renderer writes results to out and errors to errOut. Writes are serialized so
// concurrent pipelines never interleave output.
type Renderer struct {
	mu     sync.Mutex
	format Format
	out    io.Writer
	errOut io.Writer
}

// NewRenderer creates a renderer.
func NewRenderer(format Format, out, errOut io.Writer) *Renderer {
	return &Renderer{format: format, out: out, errOut: errOut}
}

// Render writes result under its slot's title.
func (r *Renderer) Render(_ context.Context, result *protocolDomain.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.format == FormatJSON {
		doc, err := resultJSON(result)
		if err != nil {
			return err
		}
		_, err = r.out.Write(pretty.Pretty(doc))
		return err
	}

	var b strings.Builder
	b.WriteString(title(result.Action))
	b.WriteString("\n")
	switch result.Kind {
	case protocolDomain.ResultMap:
		writeObject(&b, result.Map, 1)
	case protocolDomain.ResultList:
		writeList(&b, result.List, 1)
	case protocolDomain.ResultError:
		fmt.Fprintf(&b, "  error: %s\n", result.Error)
	default:
		fmt.Fprintf(&b, "  %s\n", result.Scalar.String())
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

// ReportError writes err for action.
func (r *Renderer) ReportError(_ context.Context, action protocolDomain.Action, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.format == FormatJSON {
		doc, _ := sjson.SetBytes([]byte("{}"), "action", string(action))
		doc, _ = sjson.SetBytes(doc, "error", err.Error())
		_, _ = r.errOut.Write(pretty.Pretty(doc))
		return
	}
	_, _ = fmt.Fprintf(r.errOut, "Error (%s): %s\n", action, err)
}

func title(action protocolDomain.Action) string {
	spec, err := protocolDomain.LookupAction(action)
	if err != nil {
		return string(action)
	}
	return fmt.Sprintf("%s (%s)", slotTitles[spec.Slot], action)
}

func resultJSON(result *protocolDomain.Result) ([]byte, error) {
	data, err := result.Node().MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	doc := []byte("{}")
	for _, set := range []struct {
		path  string
		value string
	}{
		{"action", string(result.Action)},
		{"request_id", result.RequestID},
		{"kind", result.Kind.String()},
	} {
		if doc, err = sjson.SetBytes(doc, set.path, set.value); err != nil {
			return nil, err
		}
	}
	return sjson.SetRawBytes(doc, "data", data)
}

func writeObject(b *strings.Builder, obj *protocolDomain.Object, depth int) {
	indent := strings.Repeat("  ", depth)
	obj.Each(func(key string, n protocolDomain.Node) {
		switch n.Kind {
		case protocolDomain.NodeScalar:
			fmt.Fprintf(b, "%s%s: %s\n", indent, key, n.Scalar.String())
		case protocolDomain.NodeList:
			fmt.Fprintf(b, "%s%s:\n", indent, key)
			writeList(b, n.Items, depth+1)
		default:
			fmt.Fprintf(b, "%s%s:\n", indent, key)
			writeObject(b, n.Fields, depth+1)
		}
	})
}

func writeList(b *strings.Builder, items []protocolDomain.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if len(items) == 0 {
		fmt.Fprintf(b, "%s(no results)\n", indent)
		return
	}
	for i, n := range items {
		switch n.Kind {
		case protocolDomain.NodeScalar:
			fmt.Fprintf(b, "%s%d. %s\n", indent, i+1, n.Scalar.String())
		case protocolDomain.NodeList:
			fmt.Fprintf(b, "%s%d.\n", indent, i+1)
			writeList(b, n.Items, depth+1)
		default:
			fmt.Fprintf(b, "%s%d.\n", indent, i+1)
			writeObject(b, n.Fields, depth+1)
		}
	}
}
