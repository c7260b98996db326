package heroes

import (
	"time"

	"github.com/dmitrymomot/gamedata"
	"github.com/dmitrymomot/gamedata/pkg/jsontree"
	"github.com/dmitrymomot/gamedata/pkg/tooltip"
)

// releaseDateLayout is the date format of release dates in data documents.
const releaseDateLayout = time.DateOnly

// Announcer is a voice pack that replaces the in-game announcer.
type Announcer struct {
	ID            string
	HyperlinkID   string
	Name          string
	SortName      string
	Description   tooltip.Description
	Category      string
	Gender        string
	Hero          string
	ImageFileName string
	ReleaseDate   time.Time
	Rarity        Rarity
}

// GameStringID implements gamedata.Localizable.
func (a *Announcer) GameStringID() string { return a.ID }

// GameStringTags implements gamedata.Localizable.
func (a *Announcer) GameStringTags() []string {
	return []string{TagName, TagSortName, TagCosmeticDescription}
}

// SetGameString implements gamedata.Localizable.
func (a *Announcer) SetGameString(gs gamedata.GameString) {
	switch gs.Tag {
	case TagName:
		a.Name = gs.Text
	case TagSortName:
		a.SortName = gs.Text
	case TagCosmeticDescription:
		a.Description = gs.Tooltip()
	}
}

// NewAnnouncerReader returns a reader over an announcer data document.
func NewAnnouncerReader(doc *gamedata.Document) *gamedata.Reader[*Announcer] {
	desc := descriptions(doc)
	return gamedata.NewReader(doc, func(id string, n *jsontree.Node) *Announcer {
		return readAnnouncer(id, n, desc)
	})
}

func readAnnouncer(id string, n *jsontree.Node, desc descriptionFactory) *Announcer {
	a := &Announcer{
		ID:            id,
		HyperlinkID:   str(n, "hyperlinkId"),
		Name:          str(n, "name"),
		SortName:      str(n, "sortName"),
		Description:   desc(str(n, "description")),
		Category:      str(n, "category"),
		Gender:        str(n, "gender"),
		Hero:          str(n, "heroId"),
		ImageFileName: str(n, "image"),
	}
	if r, ok := ParseRarity(str(n, "rarity")); ok {
		a.Rarity = r
	}
	// Unparsable dates leave the zero time.
	if t, err := time.Parse(releaseDateLayout, str(n, "releaseDate")); err == nil {
		a.ReleaseDate = t
	}
	return a
}
