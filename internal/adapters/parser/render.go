package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"go.trai.ch/dataloader/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding for Render.
type Format string

const (
	// FormatJSON renders indented JSON with mapping keys in document order.
	FormatJSON Format = "json"
	// FormatYAML renders block-style YAML with a two-space indent.
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied output format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", zerr.With(fmt.Errorf("%w", domain.ErrInvalidOutputFormat), "format", s)
	}
}

// Render writes doc to w in the given format.
func Render(w io.Writer, doc *domain.Document, format Format) error {
	var root *domain.Node
	if doc != nil {
		root = doc.Root
	}

	switch format {
	case FormatJSON:
		raw, err := root.MarshalJSON()
		if err != nil {
			return renderFailed(err, format)
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return renderFailed(err, format)
		}
		buf.WriteByte('\n')
		if _, err := w.Write(buf.Bytes()); err != nil {
			return renderFailed(err, format)
		}
		return nil
	case FormatYAML:
		out, err := toYAML(root)
		if err != nil {
			return renderFailed(err, format)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return renderFailed(err, format)
		}
		if err := enc.Close(); err != nil {
			return renderFailed(err, format)
		}
		return nil
	default:
		return zerr.With(fmt.Errorf("%w", domain.ErrInvalidOutputFormat), "format", string(format))
	}
}

func renderFailed(err error, format Format) error {
	return zerr.With(fmt.Errorf("%w: %w", domain.ErrRenderFailed, err), "format", string(format))
}

func keyTag(tag domain.KeyTag) string {
	if tag == domain.StringKey {
		return "!!str"
	}
	return "!!" + string(tag)
}

func toYAML(n *domain.Node) (*yaml.Node, error) {
	if n == nil || n.Kind == domain.NullKind {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}

	switch n.Kind {
	case domain.ScalarKind:
		out := &yaml.Node{}
		if err := out.Encode(n.Value); err != nil {
			return nil, err
		}
		return out, nil
	case domain.SequenceKind:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range n.Items {
			v, err := toYAML(item)
			if err != nil {
				return nil, err
			}
			out.Content = append(out.Content, v)
		}
		return out, nil
	case domain.MappingKind:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, f := range n.Fields {
			v, err := toYAML(f.Value)
			if err != nil {
				return nil, err
			}
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: keyTag(f.Tag), Value: f.Key}
			out.Content = append(out.Content, key, v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown node kind %s", n.Kind)
	}
}
