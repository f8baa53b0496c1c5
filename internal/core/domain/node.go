package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Kind identifies the shape of a Node.
type Kind uint8

const (
	// NullKind is an explicit or implied null.
	NullKind Kind = iota
	// ScalarKind holds a string, bool, int64, uint64, float64 or time.Time in Node.Value.
	ScalarKind
	// SequenceKind holds an ordered list of nodes in Node.Items.
	SequenceKind
	// MappingKind holds unique keys in insertion order in Node.Fields.
	MappingKind
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case ScalarKind:
		return "scalar"
	case SequenceKind:
		return "sequence"
	case MappingKind:
		return "mapping"
	default:
		return "unknown"
	}
}

// Node is one value of a parsed document tree.
// Pos is informational: it never takes part in Equal.
type Node struct {
	Kind   Kind
	Value  any
	Items  []*Node
	Fields []Field
	Pos    *Position
}

// KeyTag names the type of a mapping key. String keys have the empty tag.
type KeyTag string

const (
	StringKey KeyTag = ""
	IntKey    KeyTag = "int"
	FloatKey  KeyTag = "float"
	BoolKey   KeyTag = "bool"
	NullKey   KeyTag = "null"
	TimeKey   KeyTag = "timestamp"
)

// Field is a single key/value entry of a mapping node.
// A key is identified by its Tag and its canonical text in Key, so 1 and "1" are distinct.
type Field struct {
	Key   string
	Tag   KeyTag
	Value *Node
}

// NewKey returns the canonical text and tag for a decoded key value.
// Unsupported types fall back to string keys.
func NewKey(v any) (string, KeyTag) {
	switch t := v.(type) {
	case nil:
		return "null", NullKey
	case string:
		return t, StringKey
	case int:
		return strconv.Itoa(t), IntKey
	case int64:
		return strconv.FormatInt(t, 10), IntKey
	case uint64:
		return strconv.FormatUint(t, 10), IntKey
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), FloatKey
	case bool:
		return strconv.FormatBool(t), BoolKey
	case time.Time:
		return t.Format(time.RFC3339Nano), TimeKey
	default:
		return "", StringKey
	}
}

// Typed returns the key as a Go value: string, int64, uint64, float64, bool, time.Time or nil.
func (f Field) Typed() any {
	switch f.Tag {
	case NullKey:
		return nil
	case IntKey:
		if i, err := strconv.ParseInt(f.Key, 10, 64); err == nil {
			return i
		}
		if u, err := strconv.ParseUint(f.Key, 10, 64); err == nil {
			return u
		}
	case FloatKey:
		if x, err := strconv.ParseFloat(f.Key, 64); err == nil {
			return x
		}
	case BoolKey:
		if b, err := strconv.ParseBool(f.Key); err == nil {
			return b
		}
	case TimeKey:
		if ts, err := time.Parse(time.RFC3339Nano, f.Key); err == nil {
			return ts
		}
	}
	return f.Key
}

// NewNull creates a null node.
func NewNull() *Node {
	return &Node{Kind: NullKind}
}

// NewScalar creates a scalar node holding v.
func NewScalar(v any) *Node {
	if v == nil {
		return NewNull()
	}
	return &Node{Kind: ScalarKind, Value: v}
}

// NewSequence creates a sequence node from items.
func NewSequence(items ...*Node) *Node {
	return &Node{Kind: SequenceKind, Items: items}
}

// NewMapping creates an empty mapping node.
func NewMapping() *Node {
	return &Node{Kind: MappingKind}
}

// Set stores value under the string key. An existing key keeps its slot and takes the new value.
// It reports whether the key was already present.
func (n *Node) Set(key string, value *Node) bool {
	return n.SetField(Field{Key: key, Value: value})
}

// SetField stores f, replacing the value of a field with the same key and tag.
// It reports whether the key was already present.
func (n *Node) SetField(f Field) bool {
	for i := range n.Fields {
		if n.Fields[i].Key == f.Key && n.Fields[i].Tag == f.Tag {
			n.Fields[i].Value = f.Value
			return true
		}
	}
	n.Fields = append(n.Fields, f)
	return false
}

// Get returns the value stored under the string key in a mapping node.
func (n *Node) Get(key string) (*Node, bool) {
	return n.Lookup(key, StringKey)
}

// Lookup returns the value stored under the key with the given text and tag.
func (n *Node) Lookup(key string, tag KeyTag) (*Node, bool) {
	if n == nil || n.Kind != MappingKind {
		return nil, false
	}
	for _, f := range n.Fields {
		if f.Key == key && f.Tag == tag {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the text of the mapping keys in insertion order.
func (n *Node) Keys() []string {
	if n == nil || n.Kind != MappingKind {
		return nil
	}
	keys := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		keys[i] = f.Key
	}
	return keys
}

// Len returns the number of items or fields. Scalars and nulls have length zero.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.Kind {
	case SequenceKind:
		return len(n.Items)
	case MappingKind:
		return len(n.Fields)
	default:
		return 0
	}
}

// Clone returns a deep copy of the tree rooted at n, positions included.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		Kind:  n.Kind,
		Value: n.Value,
		Pos:   n.Pos.Clone(),
	}
	if n.Items != nil {
		c.Items = make([]*Node, len(n.Items))
		for i, item := range n.Items {
			c.Items[i] = item.Clone()
		}
	}
	if n.Fields != nil {
		c.Fields = make([]Field, len(n.Fields))
		for i, f := range n.Fields {
			c.Fields[i] = Field{Key: f.Key, Tag: f.Tag, Value: f.Value.Clone()}
		}
	}
	return c
}

// Equal reports whether two trees hold the same value.
// Mapping order and positions are ignored.
func (n *Node) Equal(other *Node) bool {
	if n.isNull() || other.isNull() {
		return n.isNull() && other.isNull()
	}
	if n.Kind != other.Kind {
		return false
	}
	switch n.Kind {
	case ScalarKind:
		return n.Value == other.Value
	case SequenceKind:
		if len(n.Items) != len(other.Items) {
			return false
		}
		for i := range n.Items {
			if !n.Items[i].Equal(other.Items[i]) {
				return false
			}
		}
		return true
	case MappingKind:
		if len(n.Fields) != len(other.Fields) {
			return false
		}
		for _, f := range n.Fields {
			v, ok := other.Lookup(f.Key, f.Tag)
			if !ok || !f.Value.Equal(v) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (n *Node) isNull() bool {
	return n == nil || n.Kind == NullKind
}

// Interface converts the tree to plain Go values: []any, scalars, nil and
// map[string]any, or map[any]any when a mapping has a non-string key.
func (n *Node) Interface() any {
	if n.isNull() {
		return nil
	}
	switch n.Kind {
	case ScalarKind:
		return n.Value
	case SequenceKind:
		out := make([]any, len(n.Items))
		for i, item := range n.Items {
			out[i] = item.Interface()
		}
		return out
	case MappingKind:
		if !n.stringKeys() {
			out := make(map[any]any, len(n.Fields))
			for _, f := range n.Fields {
				out[f.Typed()] = f.Value.Interface()
			}
			return out
		}
		out := make(map[string]any, len(n.Fields))
		for _, f := range n.Fields {
			out[f.Key] = f.Value.Interface()
		}
		return out
	default:
		return nil
	}
}

func (n *Node) stringKeys() bool {
	for _, f := range n.Fields {
		if f.Tag != StringKey {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the tree keeping mapping keys in insertion order.
// Non-string keys are written as their canonical text.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) writeJSON(buf *bytes.Buffer) error {
	if n.isNull() {
		buf.WriteString("null")
		return nil
	}
	switch n.Kind {
	case SequenceKind:
		buf.WriteByte('[')
		for i, item := range n.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case MappingKind:
		buf.WriteByte('{')
		for i, f := range n.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(f.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := f.Value.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		b, err := json.Marshal(n.Value)
		if err != nil {
			return err
		}
		buf.Write(b)
	}
	return nil
}
