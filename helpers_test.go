package gamedata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gamedata"
	"github.com/dmitrymomot/gamedata/pkg/jsontree"
	"github.com/dmitrymomot/gamedata/pkg/locale"
	"github.com/dmitrymomot/gamedata/pkg/tooltip"
)

// unit is a minimal localizable entity.
type unit struct {
	ID          string
	HyperlinkID string
	Name        string
	Description tooltip.Description
	Locale      locale.Locale
}

func (u *unit) GameStringID() string     { return u.ID }
func (u *unit) GameStringTags() []string { return []string{"name", "description"} }

func (u *unit) SetGameString(gs gamedata.GameString) {
	switch gs.Tag {
	case "name":
		u.Name = gs.Text
	case "description":
		u.Description = gs.Tooltip()
	}
	u.Locale = gs.Locale
}

func extractUnit(id string, node *jsontree.Node) *unit {
	u := &unit{ID: id}
	if v, ok := node.Get("hyperlinkId"); ok {
		u.HyperlinkID = v.Str()
	}
	if v, ok := node.Get("name"); ok {
		u.Name = v.Str()
	}
	return u
}

// squad owns nested localizable members.
type squad struct {
	unit
	Members []*unit
}

func (s *squad) GameStringChildren() []gamedata.Localizable {
	out := make([]gamedata.Localizable, len(s.Members))
	for i, m := range s.Members {
		out[i] = m
	}
	return out
}

func fixture(name string) string {
	return filepath.Join("testdata", name)
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(fixture(name))
	require.NoError(t, err)
	return data
}

func parseFixture(t *testing.T, name string, opts ...gamedata.Option) *gamedata.Document {
	t.Helper()
	doc, err := gamedata.Parse(gamedata.FromPath(fixture(name)), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = doc.Close() })
	return doc
}

func frenchGameStrings(t *testing.T) *gamedata.GameStrings {
	t.Helper()
	gs, err := gamedata.ParseGameStrings(gamedata.FromPath(fixture("gamestrings_76893_frfr.json")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = gs.Close() })
	return gs
}
