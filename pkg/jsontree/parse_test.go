package jsontree_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gamedata/pkg/jsontree"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("keeps member order", func(t *testing.T) {
		t.Parallel()
		root, err := jsontree.ParseBytes([]byte(`{"zeta":1,"alpha":2,"mid":3}`))
		require.NoError(t, err)
		require.Equal(t, jsontree.Object, root.Kind())
		require.Equal(t, []string{"zeta", "alpha", "mid"}, root.Names())

		var seen []string
		for name := range root.Members() {
			seen = append(seen, name)
		}
		require.Equal(t, []string{"zeta", "alpha", "mid"}, seen)
	})

	t.Run("scalar kinds", func(t *testing.T) {
		t.Parallel()
		root, err := jsontree.ParseBytes([]byte(`{"s":"text","n":1.5,"i":42,"t":true,"z":null,"a":[1,"two"]}`))
		require.NoError(t, err)

		s, ok := root.Get("s")
		require.True(t, ok)
		require.Equal(t, "text", s.Str())
		require.True(t, s.StringEquals("text"))

		n, _ := root.Get("n")
		f, ok := n.Float64()
		require.True(t, ok)
		require.InDelta(t, 1.5, f, 0.0001)
		_, ok = n.Int()
		require.False(t, ok, "fractional number is not an int")

		i, _ := root.Get("i")
		iv, ok := i.Int()
		require.True(t, ok)
		require.Equal(t, 42, iv)

		b, _ := root.Get("t")
		bv, ok := b.Bool()
		require.True(t, ok)
		require.True(t, bv)

		z, ok := root.Get("z")
		require.True(t, ok)
		require.True(t, z.IsNull())

		a, _ := root.Get("a")
		require.Equal(t, jsontree.Array, a.Kind())
		require.Equal(t, 2, a.Len())
		second, ok := a.Index(1)
		require.True(t, ok)
		require.Equal(t, "two", second.Str())
	})

	t.Run("duplicate names resolve to first", func(t *testing.T) {
		t.Parallel()
		root, err := jsontree.ParseBytes([]byte(`{"a":"first","a":"second"}`))
		require.NoError(t, err)
		require.Equal(t, 2, root.Len())
		v, _ := root.Get("a")
		require.Equal(t, "first", v.Str())
	})

	t.Run("nested path", func(t *testing.T) {
		t.Parallel()
		root, err := jsontree.ParseBytes([]byte(`{"meta":{"locale":"kokr"}}`))
		require.NoError(t, err)
		v, ok := root.Path("meta", "locale")
		require.True(t, ok)
		require.Equal(t, "kokr", v.Str())

		_, ok = root.Path("meta", "missing")
		require.False(t, ok)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		_, err := jsontree.ParseBytes([]byte("   "))
		require.ErrorIs(t, err, jsontree.ErrEmptyInput)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		t.Parallel()
		_, err := jsontree.ParseBytes([]byte(`{"a" 1}`))
		require.ErrorIs(t, err, jsontree.ErrSyntax)
	})

	t.Run("truncated input", func(t *testing.T) {
		t.Parallel()
		_, err := jsontree.ParseBytes([]byte(`{"a":[1,2`))
		require.ErrorIs(t, err, jsontree.ErrSyntax)
	})

	t.Run("trailing value", func(t *testing.T) {
		t.Parallel()
		_, err := jsontree.ParseBytes([]byte(`{} {}`))
		require.ErrorIs(t, err, jsontree.ErrTrailingData)
	})

	t.Run("unescapes names and strings", func(t *testing.T) {
		t.Parallel()
		root, err := jsontree.ParseBytes([]byte(`{"a\"b":"line\nnext \u00e9","\u0041":"x"}`))
		require.NoError(t, err)
		require.Equal(t, []string{`a"b`, "A"}, root.Names())
		v, ok := root.Get(`a"b`)
		require.True(t, ok)
		require.Equal(t, "line\nnext é", v.Str())
	})

	t.Run("numbers keep their literal", func(t *testing.T) {
		t.Parallel()
		root, err := jsontree.ParseBytes([]byte(`{"build":76893,"scale":4e-2,"neg":-0.5}`))
		require.NoError(t, err)

		build, _ := root.Get("build")
		lit, ok := build.Number()
		require.True(t, ok)
		require.Equal(t, "76893", lit)

		scale, _ := root.Get("scale")
		f, ok := scale.Float64()
		require.True(t, ok)
		require.InDelta(t, 0.04, f, 1e-9)

		neg, _ := root.Get("neg")
		f, ok = neg.Float64()
		require.True(t, ok)
		require.InDelta(t, -0.5, f, 1e-9)
	})

	t.Run("scalar root", func(t *testing.T) {
		t.Parallel()
		root, err := jsontree.ParseBytes([]byte(` "only" `))
		require.NoError(t, err)
		require.Equal(t, jsontree.String, root.Kind())
		require.Equal(t, "only", root.Str())
	})

	t.Run("truncated trailing value", func(t *testing.T) {
		t.Parallel()
		_, err := jsontree.ParseBytes([]byte(`{} {"a":`))
		require.Error(t, err)
		require.NotErrorIs(t, err, jsontree.ErrEmptyInput)
	})

	t.Run("truncated input is not empty input", func(t *testing.T) {
		t.Parallel()
		_, err := jsontree.ParseBytes([]byte(`{"a":`))
		require.ErrorIs(t, err, jsontree.ErrSyntax)
		require.NotErrorIs(t, err, jsontree.ErrEmptyInput)
	})

	t.Run("depth limit counts objects", func(t *testing.T) {
		t.Parallel()
		_, err := jsontree.ParseBytes([]byte(`{"a":{"b":{}}}`), jsontree.WithMaxDepth(2))
		require.ErrorIs(t, err, jsontree.ErrTooDeep)

		_, err = jsontree.ParseBytes([]byte(`{"a":{"b":{}}}`), jsontree.WithMaxDepth(3))
		require.NoError(t, err)
	})

	t.Run("depth limit", func(t *testing.T) {
		t.Parallel()
		input := strings.Repeat("[", 10) + strings.Repeat("]", 10)
		_, err := jsontree.ParseBytes([]byte(input), jsontree.WithMaxDepth(5))
		require.ErrorIs(t, err, jsontree.ErrTooDeep)

		_, err = jsontree.ParseBytes([]byte(input), jsontree.WithMaxDepth(10))
		require.NoError(t, err)
	})
}

func TestParse_Stream(t *testing.T) {
	t.Parallel()

	t.Run("reads from a reader", func(t *testing.T) {
		t.Parallel()
		root, err := jsontree.Parse(context.Background(), strings.NewReader(`{"u1":{"name":"Alpha"}}`))
		require.NoError(t, err)
		name, ok := root.Path("u1", "name")
		require.True(t, ok)
		require.Equal(t, "Alpha", name.Str())
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := jsontree.Parse(ctx, strings.NewReader(`{"a":1}`))
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("reader error", func(t *testing.T) {
		t.Parallel()
		_, err := jsontree.Parse(context.Background(), io.MultiReader(strings.NewReader(`{"a":`), errReader{}))
		require.ErrorIs(t, err, io.ErrClosedPipe)
		require.NotErrorIs(t, err, jsontree.ErrSyntax)
	})

	t.Run("reader error before any token", func(t *testing.T) {
		t.Parallel()
		_, err := jsontree.Parse(context.Background(), errReader{})
		require.ErrorIs(t, err, io.ErrClosedPipe)
	})
}

func TestNode_Nil(t *testing.T) {
	t.Parallel()

	var n *jsontree.Node
	require.Equal(t, jsontree.Null, n.Kind())
	require.Equal(t, 0, n.Len())
	require.Empty(t, n.Str())
	_, ok := n.Get("x")
	require.False(t, ok)
	for range n.Members() {
		t.Fatal("nil node has no members")
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, io.ErrClosedPipe }
