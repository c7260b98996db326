// Package jsontree parses UTF-8 JSON into an immutable, ordered tree.
//
// The tree is built from the events of a github.com/creachadair/jtree stream
// parser. Unlike decoding into map[string]any, object members keep the order
// they appear in the input, so callers can enumerate entities in document
// order and resolve "first match" lookups deterministically:
//
//	root, err := jsontree.Parse(ctx, f)
//	if err != nil {
//		return err
//	}
//	for name, node := range root.Members() {
//		if v, ok := node.Get("hyperlinkId"); ok {
//			fmt.Println(name, v.Str())
//		}
//	}
//
// A tree is never mutated after Parse returns, so it may be read from several
// goroutines once construction has been observed.
package jsontree
