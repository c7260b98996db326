package heroes

import "github.com/dmitrymomot/gamedata/pkg/jsontree"

// Field readers return the zero value when the member is absent or of
// another kind.

func str(n *jsontree.Node, name string) string {
	v, _ := n.Get(name)
	return v.Str()
}

func num(n *jsontree.Node, name string) float64 {
	v, _ := n.Get(name)
	f, _ := v.Float64()
	return f
}

func integer(n *jsontree.Node, name string) int {
	v, _ := n.Get(name)
	i, _ := v.Int()
	return i
}

func boolean(n *jsontree.Node, name string) bool {
	v, _ := n.Get(name)
	b, _ := v.Bool()
	return b
}

func strs(n *jsontree.Node, name string) []string {
	v, ok := n.Get(name)
	if !ok || v.Len() == 0 {
		return nil
	}
	out := make([]string, 0, v.Len())
	for item := range v.Items() {
		if s, ok := item.Text(); ok {
			out = append(out, s)
		}
	}
	return out
}
