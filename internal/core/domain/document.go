package domain

// Document is the result of loading one source: a value tree plus the name it was loaded from.
type Document struct {
	Root   *Node
	Source string
}

// NewDocument creates a Document. A nil root is stored as an explicit null node.
func NewDocument(source string, root *Node) *Document {
	if root == nil {
		root = NewNull()
	}
	return &Document{Root: root, Source: source}
}

// Position returns the position attached to the root node, if any.
func (d *Document) Position() *Position {
	if d == nil || d.Root == nil {
		return nil
	}
	return d.Root.Pos
}

// IsEmpty reports whether the document holds no value.
func (d *Document) IsEmpty() bool {
	return d == nil || d.Root.isNull()
}

// Clone returns a deep, independent copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	return &Document{Root: d.Root.Clone(), Source: d.Source}
}

// Equal reports whether both documents hold the same value.
// Source names and positions are not compared.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.Root.Equal(other.Root)
}

// Interface converts the document value to plain Go values.
func (d *Document) Interface() any {
	if d == nil {
		return nil
	}
	return d.Root.Interface()
}
