package jsontree

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/creachadair/jtree"
)

// DefaultMaxDepth bounds object and array nesting.
const DefaultMaxDepth = 256

// Option configures parsing.
type Option func(*options)

type options struct {
	maxDepth int
}

// WithMaxDepth sets the maximum nesting depth. Non-positive values keep the default.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// ParseBytes parses a complete JSON document held in memory.
func ParseBytes(data []byte, opts ...Option) (*Node, error) {
	return Parse(context.Background(), bytes.NewReader(data), opts...)
}

// Parse reads r to the end and builds the tree. The stream must contain exactly
// one top-level value. Cancelling ctx aborts the read on the next chunk and
// returns the context error.
func Parse(ctx context.Context, r io.Reader, opts ...Option) (*Node, error) {
	o := &options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(o)
	}

	in := &ctxReader{ctx: ctx, r: r}
	st := jtree.NewStream(in)
	b := &builder{maxDepth: o.maxDepth}

	// ParseOne reports a clean end of input as io.EOF itself. Syntax errors on
	// truncated input wrap io.EOF, so compare by identity.
	if err := st.ParseOne(b); err != nil {
		if err == io.EOF && in.err == nil { //nolint:errorlint
			return nil, ErrEmptyInput
		}
		return nil, wrap(ctx, in, err)
	}
	if err := st.ParseOne(noMoreInput{}); err != io.EOF { //nolint:errorlint
		return nil, wrap(ctx, in, err)
	}
	return b.root, nil
}

// builder turns parser events into nodes. Members are appended in the order
// they are reported, which is document order.
type builder struct {
	root     *Node
	stack    []*frame
	maxDepth int
}

type frame struct {
	node *Node
	name string // key of the member being parsed, objects only
}

func (b *builder) add(n *Node) {
	if len(b.stack) == 0 {
		b.root = n
		return
	}
	top := b.stack[len(b.stack)-1]
	if top.node.kind == Object {
		if _, exists := top.node.index[top.name]; !exists {
			top.node.index[top.name] = len(top.node.members)
		}
		top.node.members = append(top.node.members, Member{Name: top.name, Value: n})
		return
	}
	top.node.items = append(top.node.items, n)
}

func (b *builder) open(n *Node) error {
	if len(b.stack) >= b.maxDepth {
		return ErrTooDeep
	}
	b.add(n)
	b.stack = append(b.stack, &frame{node: n})
	return nil
}

func (b *builder) pop() error {
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

func (b *builder) BeginObject(jtree.Anchor) error {
	return b.open(&Node{kind: Object, index: make(map[string]int)})
}

func (b *builder) EndObject(jtree.Anchor) error { return b.pop() }

func (b *builder) BeginArray(jtree.Anchor) error { return b.open(&Node{kind: Array}) }

func (b *builder) EndArray(jtree.Anchor) error { return b.pop() }

func (b *builder) BeginMember(loc jtree.Anchor) error {
	name, err := jtree.Unquote(loc.Text())
	if err != nil {
		return fmt.Errorf("%w: member name at %s: %v", ErrSyntax, loc.Location().First, err)
	}
	b.stack[len(b.stack)-1].name = string(name)
	return nil
}

func (b *builder) EndMember(jtree.Anchor) error { return nil }

func (b *builder) Value(loc jtree.Anchor) error {
	switch loc.Token() {
	case jtree.String:
		s, err := jtree.Unquote(loc.Text())
		if err != nil {
			return fmt.Errorf("%w: string at %s: %v", ErrSyntax, loc.Location().First, err)
		}
		b.add(&Node{kind: String, str: string(s)})
	case jtree.Integer, jtree.Number:
		b.add(&Node{kind: Number, str: string(loc.Text())})
	case jtree.True, jtree.False:
		b.add(&Node{kind: Bool, b: loc.Token() == jtree.True})
	case jtree.Null:
		b.add(&Node{kind: Null})
	default:
		return fmt.Errorf("%w: unexpected %v at %s", ErrSyntax, loc.Token(), loc.Location().First)
	}
	return nil
}

func (b *builder) EndOfInput(jtree.Anchor) {}

// noMoreInput fails on any value following the top-level one.
type noMoreInput struct{}

func (noMoreInput) BeginObject(jtree.Anchor) error { return ErrTrailingData }
func (noMoreInput) EndObject(jtree.Anchor) error   { return ErrTrailingData }
func (noMoreInput) BeginArray(jtree.Anchor) error  { return ErrTrailingData }
func (noMoreInput) EndArray(jtree.Anchor) error    { return ErrTrailingData }
func (noMoreInput) BeginMember(jtree.Anchor) error { return ErrTrailingData }
func (noMoreInput) EndMember(jtree.Anchor) error   { return ErrTrailingData }
func (noMoreInput) Value(jtree.Anchor) error       { return ErrTrailingData }
func (noMoreInput) EndOfInput(jtree.Anchor)        {}

// wrap normalizes parse errors: cancellation wins, then read failures, then
// sentinels; scanner and grammar errors become ErrSyntax.
func wrap(ctx context.Context, in *ctxReader, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if in.err != nil {
		return in.err
	}
	if errors.Is(err, ErrTooDeep) || errors.Is(err, ErrSyntax) || errors.Is(err, ErrTrailingData) {
		return err
	}
	var syntaxErr *jtree.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Errorf("%w: %s", ErrSyntax, syntaxErr.Error())
	}
	return err
}

// ctxReader stops reading once its context is done and remembers the first
// read failure so it is not reported as a syntax error.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
	err error
}

func (c *ctxReader) Read(b []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	n, err := c.r.Read(b)
	if err != nil && !errors.Is(err, io.EOF) && c.err == nil {
		c.err = err
	}
	return n, err
}
