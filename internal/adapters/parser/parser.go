// Package parser turns document text into domain value trees.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	goyaml "github.com/goccy/go-yaml"
	goparser "github.com/goccy/go-yaml/parser"
	"go.trai.ch/dataloader/internal/core/domain"
	"go.trai.ch/dataloader/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// maxExpandedNodes bounds alias expansion so a small document cannot blow up into a huge tree.
const maxExpandedNodes = 1 << 20

var yamlErrorPattern = regexp.MustCompile(`(?s)^yaml: line (\d+): (.*)$`)

// attempt is one format in the detection order.
type attempt struct {
	name  string
	parse func(p *Parser, text, source string) (*domain.Node, error)
}

// Parser detects the format of a document and decodes it.
// JSON is tried first, YAML second. When both fail, the YAML error is reported.
type Parser struct {
	logger   ports.Logger
	attempts []attempt
}

// New creates a Parser. The logger receives duplicate-key warnings and may be nil.
func New(logger ports.Logger) *Parser {
	return &Parser{
		logger: logger,
		attempts: []attempt{
			{name: "json", parse: (*Parser).parseJSON},
			{name: "yaml", parse: (*Parser).parseYAML},
		},
	}
}

// Parse decodes text into a Document named source.
// Empty or whitespace-only text yields a null document.
func (p *Parser) Parse(text, source string, showContent bool) (*domain.Document, error) {
	if source == "" {
		source = domain.DefaultSourceName
	}
	if strings.TrimSpace(text) == "" {
		root := domain.NewNull()
		root.Pos = domain.NewPosition(source, 1, 1)
		return domain.NewDocument(source, root), nil
	}

	var last error
	for _, a := range p.attempts {
		root, err := a.parse(p, text, source)
		if err == nil {
			return domain.NewDocument(source, root), nil
		}
		last = err
	}
	return nil, toParseError(last, source, showContent)
}

// ParseNode re-parses a tracked string scalar.
// The scalar's position replaces whatever position the parse computed for the root.
func (p *Parser) ParseNode(node *domain.Node, showContent bool) (*domain.Document, error) {
	if node == nil || node.Kind != domain.ScalarKind {
		return nil, &domain.ParseError{
			Source:      domain.DefaultSourceName,
			Line:        1,
			Column:      1,
			Detail:      "only string scalars can be re-parsed",
			ShowContent: showContent,
		}
	}
	text, ok := node.Value.(string)
	if !ok {
		return nil, &domain.ParseError{
			Source:      sourceOf(node.Pos),
			Line:        1,
			Column:      1,
			Detail:      fmt.Sprintf("cannot re-parse a %T scalar", node.Value),
			ShowContent: showContent,
		}
	}

	doc, err := p.Parse(text, sourceOf(node.Pos), showContent)
	if err != nil {
		return nil, err
	}
	if node.Pos != nil {
		doc.Root.Pos = node.Pos.Clone()
	}
	return doc, nil
}

func sourceOf(pos *domain.Position) string {
	if pos == nil || pos.Source.String() == "" {
		return domain.DefaultSourceName
	}
	return pos.Source.String()
}

// toParseError keeps an existing ParseError and translates yaml.v3 messages otherwise.
func toParseError(err error, source string, showContent bool) error {
	var perr *domain.ParseError
	if errors.As(err, &perr) {
		perr.ShowContent = showContent
		return perr
	}

	perr = &domain.ParseError{
		Source:      source,
		Line:        1,
		Column:      1,
		Detail:      err.Error(),
		ShowContent: showContent,
	}
	if m := yamlErrorPattern.FindStringSubmatch(err.Error()); m != nil {
		if line, convErr := strconv.Atoi(m[1]); convErr == nil && line > 0 {
			perr.Line = line
		}
		perr.Detail = m[2]
	} else {
		perr.Detail = strings.TrimPrefix(perr.Detail, "yaml: ")
	}
	return perr
}

func (p *Parser) parseJSON(text, source string) (*domain.Node, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	root, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid character after top-level value")
	}
	root.Pos = domain.NewPosition(source, 1, 1)
	return root, nil
}

func decodeJSONValue(dec *json.Decoder) (*domain.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			out := domain.NewMapping()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key %v", keyTok)
				}
				value, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				out.Set(key, value)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return out, nil
		case '[':
			out := domain.NewSequence()
			out.Items = []*domain.Node{}
			for dec.More() {
				item, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				out.Items = append(out.Items, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return out, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return domain.NewScalar(i), nil
		}
		if u, err := strconv.ParseUint(t.String(), 10, 64); err == nil {
			return domain.NewScalar(u), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return domain.NewScalar(f), nil
	case nil:
		return domain.NewNull(), nil
	default:
		return domain.NewScalar(t), nil
	}
}

func (p *Parser) parseYAML(text, source string) (*domain.Node, error) {
	dec := yaml.NewDecoder(strings.NewReader(text))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			root := domain.NewNull()
			root.Pos = domain.NewPosition(source, 1, 1)
			return root, nil
		}
		return nil, locateSyntaxError(err, text, source)
	}

	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, locateSyntaxError(err, text, source)
	default:
		return nil, &domain.ParseError{
			Source: source,
			Line:   max(extra.Line, 1),
			Column: max(extra.Column, 1),
			Detail: "expected a single document in the stream",
		}
	}

	c := &converter{source: domain.NewInternedString(source), logger: p.logger}
	if len(doc.Content) == 0 {
		root := domain.NewNull()
		root.Pos = c.pos(&doc)
		return root, nil
	}
	return c.convert(doc.Content[0])
}

// locateSyntaxError reparses text with goccy/go-yaml, whose syntax errors carry the
// line and column of the offending token. yaml.v3 only reports a line, and for
// unclosed collections that is the line the collection opened on.
// err is returned as is when goccy/go-yaml cannot place it.
func locateSyntaxError(err error, text, source string) error {
	_, perr := goparser.ParseBytes([]byte(text), 0)
	var serr *goyaml.SyntaxError
	if perr == nil || !errors.As(perr, &serr) || serr.Token == nil || serr.Token.Position == nil {
		return err
	}
	return &domain.ParseError{
		Source: source,
		Line:   max(serr.Token.Position.Line, 1),
		Column: max(serr.Token.Position.Column, 1),
		Detail: serr.Message,
	}
}

// converter maps a yaml.v3 node tree onto domain nodes.
// Aliases are expanded into fresh copies so no two paths share a subtree.
type converter struct {
	source   domain.InternedString
	logger   ports.Logger
	expanded int
}

func (c *converter) pos(n *yaml.Node) *domain.Position {
	return &domain.Position{Source: c.source, Line: max(n.Line, 1), Column: max(n.Column, 1)}
}

func (c *converter) fail(n *yaml.Node, detail string) error {
	return &domain.ParseError{
		Source: c.source.String(),
		Line:   max(n.Line, 1),
		Column: max(n.Column, 1),
		Detail: detail,
	}
}

func (c *converter) convert(n *yaml.Node) (*domain.Node, error) {
	c.expanded++
	if c.expanded > maxExpandedNodes {
		return nil, c.fail(n, "document is too large after alias expansion")
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			out := domain.NewNull()
			out.Pos = c.pos(n)
			return out, nil
		}
		return c.convert(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, c.fail(n, "unknown anchor "+n.Value)
		}
		out, err := c.convert(n.Alias)
		if err != nil {
			return nil, err
		}
		out.Pos = c.pos(n)
		return out, nil
	case yaml.ScalarNode:
		return c.scalar(n)
	case yaml.SequenceNode:
		out := domain.NewSequence()
		out.Items = make([]*domain.Node, 0, len(n.Content))
		out.Pos = c.pos(n)
		for _, item := range n.Content {
			v, err := c.convert(item)
			if err != nil {
				return nil, err
			}
			out.Items = append(out.Items, v)
		}
		return out, nil
	case yaml.MappingNode:
		return c.mapping(n)
	default:
		return nil, c.fail(n, fmt.Sprintf("unsupported node kind %d", n.Kind))
	}
}

func (c *converter) scalar(n *yaml.Node) (*domain.Node, error) {
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, c.fail(n, strings.TrimPrefix(err.Error(), "yaml: "))
	}

	var out *domain.Node
	switch t := v.(type) {
	case nil:
		out = domain.NewNull()
	case int:
		out = domain.NewScalar(int64(t))
	case int64, uint64, float64, bool, string, time.Time:
		out = domain.NewScalar(t)
	case []byte:
		out = domain.NewScalar(string(t))
	default:
		out = domain.NewScalar(n.Value)
	}
	out.Pos = c.pos(n)
	return out, nil
}

func (c *converter) mapping(n *yaml.Node) (*domain.Node, error) {
	out := domain.NewMapping()
	out.Fields = []domain.Field{}
	out.Pos = c.pos(n)

	var merges []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if isMergeKey(k) {
			merges = append(merges, v)
			continue
		}
		key, tag, err := c.key(k)
		if err != nil {
			return nil, err
		}
		value, err := c.convert(v)
		if err != nil {
			return nil, err
		}
		if out.SetField(domain.Field{Key: key, Tag: tag, Value: value}) && c.logger != nil {
			c.logger.Warn(fmt.Sprintf("duplicate key %q at %s, using the last value", key, c.pos(k)))
		}
	}

	// Explicit keys win over merged ones, and earlier merge sources win over later ones.
	for _, m := range merges {
		if err := c.merge(out, m); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (c *converter) merge(out *domain.Node, src *yaml.Node) error {
	target := resolveAlias(src)
	switch target.Kind {
	case yaml.MappingNode:
		merged, err := c.convert(src)
		if err != nil {
			return err
		}
		for _, f := range merged.Fields {
			if _, exists := out.Lookup(f.Key, f.Tag); !exists {
				out.SetField(f)
			}
		}
		return nil
	case yaml.SequenceNode:
		for _, item := range target.Content {
			if resolveAlias(item).Kind != yaml.MappingNode {
				return c.fail(item, "map merge requires map or sequence of maps as the value")
			}
			if err := c.merge(out, item); err != nil {
				return err
			}
		}
		return nil
	default:
		return c.fail(src, "map merge requires map or sequence of maps as the value")
	}
}

// key returns the canonical text and type of a scalar key, so 1, '1' and true stay distinct.
func (c *converter) key(k *yaml.Node) (string, domain.KeyTag, error) {
	target := resolveAlias(k)
	if target.Kind != yaml.ScalarNode {
		return "", domain.StringKey, c.fail(k, "mapping keys must be scalars")
	}

	var v any
	if err := target.Decode(&v); err != nil {
		return "", domain.StringKey, c.fail(k, strings.TrimPrefix(err.Error(), "yaml: "))
	}
	if b, ok := v.([]byte); ok {
		v = string(b)
	}
	key, tag := domain.NewKey(v)
	if tag == domain.StringKey {
		if s, ok := v.(string); ok {
			return s, tag, nil
		}
		return target.Value, tag, nil
	}
	return key, tag, nil
}

func isMergeKey(k *yaml.Node) bool {
	return k.Kind == yaml.ScalarNode && k.Value == "<<" && k.ShortTag() == "!!merge"
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

