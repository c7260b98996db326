package gamedata

import (
	"github.com/dmitrymomot/gamedata/pkg/locale"
	"github.com/dmitrymomot/gamedata/pkg/tooltip"
)

// Localizable is implemented by entities with text supplied by gamestrings.
type Localizable interface {
	// GameStringID is the gamestrings key of the entity, usually its primary id.
	GameStringID() string

	// GameStringTags lists the tags the entity wants filled.
	GameStringTags() []string

	// SetGameString stores the text found for one of the tags.
	SetGameString(gs GameString)
}

// LocalizableParent is implemented by entities owning nested localizable
// records, such as a unit's abilities. Children are merged after the parent.
type LocalizableParent interface {
	Localizable
	GameStringChildren() []Localizable
}

// GameString is one localized text entry.
type GameString struct {
	ID     string
	Tag    string
	Text   string
	Locale locale.Locale
}

// Tooltip wraps the text as a rich tooltip description.
func (s GameString) Tooltip() tooltip.Description {
	return tooltip.New(s.Text, s.Locale)
}

// Merge fills every tag e declares that has text for e's id. Tags without text
// leave the field untouched; nothing is reported as an error. Merging the same
// entity twice yields the same result as merging once.
func (g *GameStrings) Merge(e Localizable) {
	if g == nil || e == nil {
		return
	}
	loc := g.Locale()
	if !loc.IsValid() {
		return
	}
	g.merge(e, loc)
}

func (g *GameStrings) merge(e Localizable, loc locale.Locale) {
	id := e.GameStringID()
	if id != "" {
		for _, tag := range e.GameStringTags() {
			if text, ok := g.Lookup(id, tag); ok {
				e.SetGameString(GameString{ID: id, Tag: tag, Text: text, Locale: loc})
			}
		}
	}

	if parent, ok := e.(LocalizableParent); ok {
		for _, child := range parent.GameStringChildren() {
			if child != nil {
				g.merge(child, loc)
			}
		}
	}
}
