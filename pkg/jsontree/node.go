package jsontree

import (
	"iter"
	"math"
	"strconv"
)

// Kind is the JSON type of a node.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "invalid"
	}
}

// Member is a named value inside an object.
type Member struct {
	Value *Node
	Name  string
}

// Node is a single JSON value. The zero value is a null node.
type Node struct {
	index   map[string]int
	str     string // string value or number literal
	items   []*Node
	members []Member
	kind    Kind
	b       bool
}

// Kind returns the JSON type of n. A nil node reports Null.
func (n *Node) Kind() Kind {
	if n == nil {
		return Null
	}
	return n.kind
}

// IsNull reports whether n is nil or a JSON null.
func (n *Node) IsNull() bool {
	return n.Kind() == Null
}

// Len returns the number of members of an object or items of an array.
func (n *Node) Len() int {
	switch n.Kind() {
	case Object:
		return len(n.members)
	case Array:
		return len(n.items)
	default:
		return 0
	}
}

// Get returns the object member with the given name. When the name appears
// more than once the first occurrence is returned.
func (n *Node) Get(name string) (*Node, bool) {
	if n.Kind() != Object {
		return nil, false
	}
	i, ok := n.index[name]
	if !ok {
		return nil, false
	}
	return n.members[i].Value, true
}

// Path walks nested objects by member name.
func (n *Node) Path(names ...string) (*Node, bool) {
	cur := n
	for _, name := range names {
		next, ok := cur.Get(name)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, cur != nil
}

// Members iterates object members in document order. Non-objects yield nothing.
func (n *Node) Members() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		if n.Kind() != Object {
			return
		}
		for _, m := range n.members {
			if !yield(m.Name, m.Value) {
				return
			}
		}
	}
}

// Names returns the member names of an object in document order.
func (n *Node) Names() []string {
	if n.Kind() != Object {
		return nil
	}
	names := make([]string, len(n.members))
	for i, m := range n.members {
		names[i] = m.Name
	}
	return names
}

// Items iterates array elements in order. Non-arrays yield nothing.
func (n *Node) Items() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if n.Kind() != Array {
			return
		}
		for _, item := range n.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Index returns the i-th array element.
func (n *Node) Index(i int) (*Node, bool) {
	if n.Kind() != Array || i < 0 || i >= len(n.items) {
		return nil, false
	}
	return n.items[i], true
}

// Str returns the string value, or "" for non-strings.
func (n *Node) Str() string {
	if n.Kind() != String {
		return ""
	}
	return n.str
}

// Text reports the value of a string node and whether n is a string.
func (n *Node) Text() (string, bool) {
	if n.Kind() != String {
		return "", false
	}
	return n.str, true
}

// StringEquals reports whether n is a string equal to s.
func (n *Node) StringEquals(s string) bool {
	return n.Kind() == String && n.str == s
}

// Number returns the literal text of a number node.
func (n *Node) Number() (string, bool) {
	if n.Kind() != Number {
		return "", false
	}
	return n.str, true
}

// Float64 converts a number node to float64.
func (n *Node) Float64() (float64, bool) {
	if n.Kind() != Number {
		return 0, false
	}
	f, err := strconv.ParseFloat(n.str, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int converts a number node to int. Fractional numbers and values outside the
// int range report false.
func (n *Node) Int() (int, bool) {
	if n.Kind() != Number {
		return 0, false
	}
	if i, err := strconv.ParseInt(n.str, 10, 64); err == nil {
		if i < math.MinInt || i > math.MaxInt {
			return 0, false
		}
		return int(i), true
	}
	f, err := strconv.ParseFloat(n.str, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt || f > math.MaxInt {
		return 0, false
	}
	return int(f), true
}

// Bool returns the value of a boolean node.
func (n *Node) Bool() (bool, bool) {
	if n.Kind() != Bool {
		return false, false
	}
	return n.b, true
}
