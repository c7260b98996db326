package heroes

import (
	"github.com/dmitrymomot/gamedata"
	"github.com/dmitrymomot/gamedata/pkg/jsontree"
)

// Cosmetic gamestring tags shared by portrait packs and announcers.
const (
	TagName                = "name"
	TagSortName            = "sortName"
	TagCosmeticDescription = "description"
)

// PortraitPack is a bundle of reward portraits.
type PortraitPack struct {
	ID                string
	HyperlinkID       string
	Name              string
	SortName          string
	Event             string
	RewardPortraitIDs []string
	Rarity            Rarity
}

// GameStringID implements gamedata.Localizable.
func (p *PortraitPack) GameStringID() string { return p.ID }

// GameStringTags implements gamedata.Localizable.
func (p *PortraitPack) GameStringTags() []string {
	return []string{TagName, TagSortName}
}

// SetGameString implements gamedata.Localizable.
func (p *PortraitPack) SetGameString(gs gamedata.GameString) {
	switch gs.Tag {
	case TagName:
		p.Name = gs.Text
	case TagSortName:
		p.SortName = gs.Text
	}
}

// NewPortraitPackReader returns a reader over a portrait pack data document.
func NewPortraitPackReader(doc *gamedata.Document) *gamedata.Reader[*PortraitPack] {
	return gamedata.NewReader(doc, readPortraitPack)
}

func readPortraitPack(id string, n *jsontree.Node) *PortraitPack {
	p := &PortraitPack{
		ID:                id,
		HyperlinkID:       str(n, "hyperlinkId"),
		Name:              str(n, "name"),
		SortName:          str(n, "sortName"),
		Event:             str(n, "event"),
		RewardPortraitIDs: strs(n, "rewardPortraitIds"),
	}
	if r, ok := ParseRarity(str(n, "rarity")); ok {
		p.Rarity = r
	}
	return p
}
