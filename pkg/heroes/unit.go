package heroes

import (
	"strings"

	"github.com/dmitrymomot/gamedata"
	"github.com/dmitrymomot/gamedata/pkg/jsontree"
	"github.com/dmitrymomot/gamedata/pkg/tooltip"
)

// Unit gamestring tags.
const (
	TagUnitName    = "name"
	TagDescription = "description"
	TagLifeType    = "lifeType"
	TagShieldType  = "shieldType"
	TagEnergyType  = "energyType"
)

// Unit is a playable or map unit.
type Unit struct {
	ID          string
	CUnitID     string
	HyperlinkID string
	// MapName is the id prefix before the first '-', set for map specific units.
	MapName       string
	Name          string
	Description   tooltip.Description
	DamageType    string
	ScalingLinkID string

	InnerRadius float64
	Radius      float64
	Sight       float64
	Speed       float64
	KillXP      int

	Descriptors []string
	Attributes  []string
	Units       []string
	Portraits   UnitPortraits

	Life   UnitLife
	Shield UnitShield
	Energy UnitEnergy
	Armor  []UnitArmor

	Weapons []UnitWeapon

	// Abilities holds top-level abilities followed by sub-abilities, each
	// only when requested from the reader.
	Abilities []*Ability
}

// UnitPortraits holds portrait image file names.
type UnitPortraits struct {
	TargetInfo string
	Minimap    string
}

type UnitLife struct {
	Amount     float64
	Scale      float64
	RegenRate  float64
	RegenScale float64
	Type       string
}

type UnitShield struct {
	Amount     float64
	Scale      float64
	RegenRate  float64
	RegenScale float64
	RegenDelay float64
	Type       string
}

type UnitEnergy struct {
	Amount    float64
	RegenRate float64
	Type      string
}

// UnitArmor is the armor against one attacker type, e.g. "hero" or "merc".
type UnitArmor struct {
	Type  string
	Basic float64
	Spell float64
}

type UnitWeapon struct {
	NameID       string
	Range        float64
	Period       float64
	Damage       float64
	DamageScale  float64
	MinimumRange float64
}

// GameStringID implements gamedata.Localizable.
func (u *Unit) GameStringID() string { return u.ID }

// GameStringTags implements gamedata.Localizable.
func (u *Unit) GameStringTags() []string {
	return []string{TagUnitName, TagDescription, TagLifeType, TagShieldType, TagEnergyType}
}

// SetGameString implements gamedata.Localizable.
func (u *Unit) SetGameString(gs gamedata.GameString) {
	switch gs.Tag {
	case TagUnitName:
		u.Name = gs.Text
	case TagDescription:
		u.Description = gs.Tooltip()
	case TagLifeType:
		u.Life.Type = gs.Text
	case TagShieldType:
		u.Shield.Type = gs.Text
	case TagEnergyType:
		u.Energy.Type = gs.Text
	}
}

// GameStringChildren implements gamedata.LocalizableParent.
func (u *Unit) GameStringChildren() []gamedata.Localizable {
	out := make([]gamedata.Localizable, len(u.Abilities))
	for i, a := range u.Abilities {
		out[i] = a
	}
	return out
}

// AbilitiesByParent returns the sub-abilities attached to parentLink.
func (u *Unit) AbilitiesByParent(parentLink string) []*Ability {
	var out []*Ability
	for _, a := range u.Abilities {
		if a.ParentLink == parentLink {
			out = append(out, a)
		}
	}
	return out
}

// UnitOption selects optional parts of a unit.
type UnitOption func(*unitOptions)

type unitOptions struct {
	abilities    bool
	subAbilities bool
}

// WithAbilities reads the unit's top-level abilities.
func WithAbilities() UnitOption {
	return func(o *unitOptions) { o.abilities = true }
}

// WithSubAbilities reads abilities nested under a parent ability.
func WithSubAbilities() UnitOption {
	return func(o *unitOptions) { o.subAbilities = true }
}

// NewUnitReader returns a reader over a unit data document.
func NewUnitReader(doc *gamedata.Document, opts ...UnitOption) *gamedata.Reader[*Unit] {
	var o unitOptions
	for _, opt := range opts {
		opt(&o)
	}
	desc := descriptions(doc)
	return gamedata.NewReader(doc, func(id string, n *jsontree.Node) *Unit {
		return readUnit(id, n, o, desc)
	})
}

func readUnit(id string, n *jsontree.Node, o unitOptions, desc descriptionFactory) *Unit {
	u := &Unit{
		ID:            id,
		CUnitID:       id,
		HyperlinkID:   str(n, "hyperlinkId"),
		Name:          str(n, "name"),
		Description:   desc(str(n, "description")),
		DamageType:    str(n, "damageType"),
		ScalingLinkID: str(n, "scalingLinkId"),
		InnerRadius:   num(n, "innerRadius"),
		Radius:        num(n, "radius"),
		Sight:         num(n, "sight"),
		Speed:         num(n, "speed"),
		KillXP:        integer(n, "killXP"),
		Descriptors:   strs(n, "descriptors"),
		Attributes:    strs(n, "attributes"),
		Units:         strs(n, "units"),
	}
	if i := strings.IndexByte(id, '-'); i > -1 {
		u.MapName = id[:i]
	}

	if p, ok := n.Get("portraits"); ok {
		u.Portraits = UnitPortraits{
			TargetInfo: str(p, "targetInfo"),
			Minimap:    str(p, "minimap"),
		}
	}
	if v, ok := n.Get("life"); ok {
		u.Life = UnitLife{
			Amount:     num(v, "amount"),
			Scale:      num(v, "scale"),
			RegenRate:  num(v, "regenRate"),
			RegenScale: num(v, "regenScale"),
			Type:       str(v, "type"),
		}
	}
	if v, ok := n.Get("shield"); ok {
		u.Shield = UnitShield{
			Amount:     num(v, "amount"),
			Scale:      num(v, "scale"),
			RegenRate:  num(v, "regenRate"),
			RegenScale: num(v, "regenScale"),
			RegenDelay: num(v, "regenDelay"),
			Type:       str(v, "type"),
		}
	}
	if v, ok := n.Get("energy"); ok {
		u.Energy = UnitEnergy{
			Amount:    num(v, "amount"),
			RegenRate: num(v, "regenRate"),
			Type:      str(v, "type"),
		}
	}
	if v, ok := n.Get("armor"); ok {
		for typ, a := range v.Members() {
			u.Armor = append(u.Armor, UnitArmor{
				Type:  typ,
				Basic: num(a, "basic"),
				Spell: num(a, "spell"),
			})
		}
	}
	if v, ok := n.Get("weapons"); ok {
		for w := range v.Items() {
			u.Weapons = append(u.Weapons, UnitWeapon{
				NameID:       str(w, "nameId"),
				Range:        num(w, "range"),
				Period:       num(w, "period"),
				Damage:       num(w, "damage"),
				DamageScale:  num(w, "damageScale"),
				MinimumRange: num(w, "minimumRange"),
			})
		}
	}

	if o.abilities {
		if v, ok := n.Get("abilities"); ok {
			u.Abilities = append(u.Abilities, readAbilities(v, "", desc)...)
		}
	}
	if o.subAbilities {
		if v, ok := n.Get("subAbilities"); ok {
			u.Abilities = append(u.Abilities, readSubAbilities(v, desc)...)
		}
	}
	return u
}

// descriptionFactory wraps raw document text as a tooltip in the document's
// locale.
type descriptionFactory func(raw string) tooltip.Description

func descriptions(doc *gamedata.Document) descriptionFactory {
	return func(raw string) tooltip.Description {
		if raw == "" {
			return tooltip.Description{}
		}
		return tooltip.New(raw, doc.Locale())
	}
}
