package parser_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dataloader/internal/adapters/parser"
	"go.trai.ch/dataloader/internal/core/domain"
	"go.trai.ch/dataloader/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestParser_JSON(t *testing.T) {
	p := parser.New(nil)

	text := `{"name": "web", "tags": ["a", "b"], "nested": {"ok": true, "none": null}}`
	doc, err := p.Parse(text, "site.json", true)
	require.NoError(t, err)

	var want any
	require.NoError(t, json.Unmarshal([]byte(text), &want))
	assert.Equal(t, want, doc.Interface())
	assert.Equal(t, []string{"name", "tags", "nested"}, doc.Root.Keys())
	assert.Equal(t, "site.json", doc.Source)
}

func TestParser_JSONNumbers(t *testing.T) {
	p := parser.New(nil)

	doc, err := p.Parse(`[1, -2, 1.5, 1e3, 18446744073709551615]`, "", true)
	require.NoError(t, err)

	require.Equal(t, domain.SequenceKind, doc.Root.Kind)
	require.Len(t, doc.Root.Items, 5)
	assert.Equal(t, int64(1), doc.Root.Items[0].Value)
	assert.Equal(t, int64(-2), doc.Root.Items[1].Value)
	assert.Equal(t, 1.5, doc.Root.Items[2].Value)
	assert.Equal(t, float64(1000), doc.Root.Items[3].Value)
	assert.Equal(t, uint64(18446744073709551615), doc.Root.Items[4].Value)
	assert.Equal(t, domain.DefaultSourceName, doc.Source)
}

func TestParser_FallsBackToYAML(t *testing.T) {
	p := parser.New(nil)

	tests := []struct {
		name string
		text string
		want any
	}{
		{
			name: "block mapping",
			text: "name: web\nports:\n  - 80\n  - 443\n",
			want: map[string]any{"name": "web", "ports": []any{int64(80), int64(443)}},
		},
		{
			name: "json with trailing data",
			text: "{\"a\": 1}\n# trailing comment\n",
			want: map[string]any{"a": int64(1)},
		},
		{
			name: "json with comments is not json",
			text: "# header\n[1, 2]\n",
			want: []any{int64(1), int64(2)},
		},
		{
			name: "plain scalar",
			text: "hello world",
			want: "hello world",
		},
		{
			name: "unknown tag keeps the raw text",
			text: "secret: !vault abc123\n",
			want: map[string]any{"secret": "abc123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := p.Parse(tt.text, "doc.yml", true)
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc.Interface())
		})
	}
}

func TestParser_EmptyInput(t *testing.T) {
	p := parser.New(nil)

	for _, text := range []string{"", "   \n\t\n", "# only a comment\n", "---\n"} {
		doc, err := p.Parse(text, "empty.yml", true)
		require.NoError(t, err, "text %q", text)
		assert.True(t, doc.IsEmpty(), "text %q", text)
	}
}

func TestParser_SyntaxErrors(t *testing.T) {
	p := parser.New(nil)

	tests := []struct {
		name string
		text string
		line int
	}{
		{name: "unclosed flow sequence", text: "a: [1, 2\n"},
		{name: "stray mapping value", text: "key: value\nother: a: b\n", line: 2},
		{name: "bad indentation", text: "a:\n  b: 1\n c: 2\n"},
		{name: "tab indentation", text: "a:\n\tb: 1\n"},
		{name: "unclosed quote", text: "a: \"open\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.text, "broken.yml", false)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrParseFailed))

			var perr *domain.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "broken.yml", perr.Source)
			assert.GreaterOrEqual(t, perr.Line, 1)
			assert.GreaterOrEqual(t, perr.Column, 1)
			assert.False(t, perr.ShowContent)
			assert.NotEmpty(t, perr.Detail)
			assert.NotContains(t, perr.Detail, "yaml: line")
			if tt.line > 0 {
				assert.Equal(t, tt.line, perr.Line)
			}
		})
	}
}

func TestParser_SyntaxErrorPointsAtToken(t *testing.T) {
	p := parser.New(nil)

	tests := []struct {
		name string
		text string
		line int
	}{
		{name: "nested mapping value", text: "key: value\nbad: x: y\n", line: 2},
		{name: "unclosed flow sequence on a later line", text: "a: b\nc: [1, 2\n", line: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.text, "broken.yml", true)

			var perr *domain.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.line, perr.Line)
			assert.Greater(t, perr.Column, 1)
			assert.NotEmpty(t, perr.Detail)
		})
	}
}

func TestParser_SingleDocument(t *testing.T) {
	p := parser.New(nil)

	_, err := p.Parse("a: 1\n---\nb: 2\n", "multi.yml", true)
	require.Error(t, err)

	var perr *domain.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "expected a single document in the stream", perr.Detail)
	assert.GreaterOrEqual(t, perr.Line, 2)
	assert.True(t, perr.ShowContent)
}

func TestParser_Positions(t *testing.T) {
	p := parser.New(nil)

	doc, err := p.Parse("top:\n  inner: value\nlist:\n  - x\n", "pos.yml", true)
	require.NoError(t, err)

	top, ok := doc.Root.Get("top")
	require.True(t, ok)
	inner, ok := top.Get("inner")
	require.True(t, ok)
	require.NotNil(t, inner.Pos)
	assert.Equal(t, "pos.yml", inner.Pos.Source.String())
	assert.Equal(t, 2, inner.Pos.Line)
	assert.Equal(t, 10, inner.Pos.Column)

	list, ok := doc.Root.Get("list")
	require.True(t, ok)
	require.Len(t, list.Items, 1)
	assert.Equal(t, 4, list.Items[0].Pos.Line)
	assert.Equal(t, 5, list.Items[0].Pos.Column)

	require.NotNil(t, doc.Position())
	assert.Equal(t, 1, doc.Position().Line)
}

func TestParser_PositionsDoNotAffectEquality(t *testing.T) {
	p := parser.New(nil)

	a, err := p.Parse("a: 1\nb: [x]\n", "one.yml", true)
	require.NoError(t, err)
	b, err := p.Parse(`{"b": ["x"], "a": 1}`, "two.json", true)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
}

func TestParser_AliasesAreIndependent(t *testing.T) {
	p := parser.New(nil)

	doc, err := p.Parse("base: &b\n  x: 1\ncopy: *b\n", "alias.yml", true)
	require.NoError(t, err)

	base, _ := doc.Root.Get("base")
	cp, _ := doc.Root.Get("copy")
	require.True(t, base.Equal(cp))

	cp.Set("x", domain.NewScalar(int64(2)))
	x, _ := base.Get("x")
	assert.Equal(t, int64(1), x.Value)
}

func TestParser_MergeKeys(t *testing.T) {
	p := parser.New(nil)

	text := "defaults: &d\n  x: 1\n  y: 2\nextra: &e\n  y: 20\n  z: 30\n" +
		"child:\n  <<: [*d, *e]\n  y: 3\n"
	doc, err := p.Parse(text, "merge.yml", true)
	require.NoError(t, err)

	child, ok := doc.Root.Get("child")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"x": int64(1), "y": int64(3), "z": int64(30)}, child.Interface())
	assert.Equal(t, []string{"y", "x", "z"}, child.Keys())
}

func TestParser_InvalidMerge(t *testing.T) {
	p := parser.New(nil)

	_, err := p.Parse("child:\n  <<: 1\n", "merge.yml", true)
	require.Error(t, err)

	var perr *domain.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, perr.Detail, "map merge")
	assert.Equal(t, 2, perr.Line)
}

func TestParser_DuplicateKeysWarn(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	p := parser.New(log)
	doc, err := p.Parse("a: 1\nb: 2\na: 3\n", "dup.yml", true)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, doc.Root.Keys())
	a, _ := doc.Root.Get("a")
	assert.Equal(t, int64(3), a.Value)
}

func TestParser_NonScalarKey(t *testing.T) {
	p := parser.New(nil)

	_, err := p.Parse("? [a, b]\n: 1\n", "keys.yml", true)
	require.Error(t, err)

	var perr *domain.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "mapping keys must be scalars", perr.Detail)
}

func TestParser_TypedKeysStayDistinct(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	// 0x1 repeats the integer key 1; the quoted '1' does not.
	log.EXPECT().Warn(gomock.Any()).Times(1)

	p := parser.New(log)
	doc, err := p.Parse("1: int\n'1': str\ntrue: b\n~: n\n0x1: hex\n", "keys.yml", true)
	require.NoError(t, err)

	require.Equal(t, 4, doc.Root.Len())
	assert.Equal(t, []string{"1", "1", "true", "null"}, doc.Root.Keys())

	n, ok := doc.Root.Lookup("1", domain.IntKey)
	require.True(t, ok)
	assert.Equal(t, "hex", n.Value)
	n, ok = doc.Root.Get("1")
	require.True(t, ok)
	assert.Equal(t, "str", n.Value)

	assert.Equal(t, map[any]any{
		int64(1): "hex",
		"1":      "str",
		true:     "b",
		nil:      "n",
	}, doc.Interface())
}

func TestParser_TypedKeysInEquality(t *testing.T) {
	p := parser.New(nil)

	a, err := p.Parse("1: x\n", "a.yml", true)
	require.NoError(t, err)
	b, err := p.Parse("'1': x\n", "b.yml", true)
	require.NoError(t, err)
	c, err := p.Parse(`{"1": "x"}`, "c.json", true)
	require.NoError(t, err)

	assert.False(t, a.Equal(b))
	assert.True(t, b.Equal(c))
}

func TestParser_ScalarTypes(t *testing.T) {
	p := parser.New(nil)

	doc, err := p.Parse("s: text\ni: 42\nf: 2.5\nb: true\nn: ~\nd: 2001-12-14\nq: \"42\"\n", "types.yml", true)
	require.NoError(t, err)

	get := func(key string) *domain.Node {
		n, ok := doc.Root.Get(key)
		require.True(t, ok, key)
		return n
	}
	assert.Equal(t, "text", get("s").Value)
	assert.Equal(t, int64(42), get("i").Value)
	assert.Equal(t, 2.5, get("f").Value)
	assert.Equal(t, true, get("b").Value)
	assert.Equal(t, domain.NullKind, get("n").Kind)
	assert.Equal(t, time.Date(2001, 12, 14, 0, 0, 0, 0, time.UTC), get("d").Value)
	assert.Equal(t, "42", get("q").Value)
}

func TestParser_ParseNode(t *testing.T) {
	p := parser.New(nil)

	tracked := domain.NewScalar("name: web\nport: 80\n")
	tracked.Pos = domain.NewPosition("vars/main.yml", 7, 3)

	doc, err := p.ParseNode(tracked, true)
	require.NoError(t, err)

	assert.Equal(t, "vars/main.yml", doc.Source)
	require.NotNil(t, doc.Position())
	assert.Equal(t, *tracked.Pos, *doc.Position())
	assert.NotSame(t, tracked.Pos, doc.Position())
	assert.Equal(t, map[string]any{"name": "web", "port": int64(80)}, doc.Interface())
}

func TestParser_ParseNodeRejectsNonStrings(t *testing.T) {
	p := parser.New(nil)

	_, err := p.ParseNode(domain.NewScalar(int64(1)), true)
	assert.True(t, errors.Is(err, domain.ErrParseFailed))

	_, err = p.ParseNode(domain.NewSequence(), true)
	assert.True(t, errors.Is(err, domain.ErrParseFailed))
}

func TestParser_ParseNodeErrorKeepsShowContent(t *testing.T) {
	p := parser.New(nil)

	tracked := domain.NewScalar("a: [")
	tracked.Pos = domain.NewPosition("secret.yml", 1, 1)

	_, err := p.ParseNode(tracked, false)
	var perr *domain.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "secret.yml", perr.Source)
	assert.False(t, perr.ShowContent)
}
