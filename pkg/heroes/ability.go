package heroes

import (
	"github.com/dmitrymomot/gamedata"
	"github.com/dmitrymomot/gamedata/pkg/jsontree"
	"github.com/dmitrymomot/gamedata/pkg/tooltip"
)

// Ability gamestring tags.
const (
	TagAbilityName     = "name"
	TagCooldownTooltip = "cooldownTooltip"
	TagEnergyTooltip   = "energyTooltip"
	TagLifeTooltip     = "lifeTooltip"
	TagShortTooltip    = "shortTooltip"
	TagFullTooltip     = "fullTooltip"
)

// Ability is one button of a unit, grouped by tier.
type Ability struct {
	NameID      string
	ButtonID    string
	Name        string
	Icon        string
	Tier        string
	AbilityType string
	// ParentLink names the ability a sub-ability belongs to; empty for
	// top-level abilities.
	ParentLink string
	IsActive   bool
	IsPassive  bool

	Cooldown tooltip.Description
	Energy   tooltip.Description
	Life     tooltip.Description
	Short    tooltip.Description
	Full     tooltip.Description
}

// ID returns the ability's composite key, nameId|buttonId.
func (a *Ability) ID() string {
	return a.NameID + "|" + a.ButtonID
}

// GameStringID implements gamedata.Localizable.
func (a *Ability) GameStringID() string {
	if a.NameID == "" {
		return ""
	}
	return a.ID()
}

// GameStringTags implements gamedata.Localizable.
func (a *Ability) GameStringTags() []string {
	return []string{TagAbilityName, TagCooldownTooltip, TagEnergyTooltip, TagLifeTooltip, TagShortTooltip, TagFullTooltip}
}

// SetGameString implements gamedata.Localizable.
func (a *Ability) SetGameString(gs gamedata.GameString) {
	switch gs.Tag {
	case TagAbilityName:
		a.Name = gs.Text
	case TagCooldownTooltip:
		a.Cooldown = gs.Tooltip()
	case TagEnergyTooltip:
		a.Energy = gs.Tooltip()
	case TagLifeTooltip:
		a.Life = gs.Tooltip()
	case TagShortTooltip:
		a.Short = gs.Tooltip()
	case TagFullTooltip:
		a.Full = gs.Tooltip()
	}
}

// readAbilities flattens a tier -> []ability object.
func readAbilities(tiers *jsontree.Node, parentLink string, desc descriptionFactory) []*Ability {
	var out []*Ability
	for tier, list := range tiers.Members() {
		for item := range list.Items() {
			if item.Kind() != jsontree.Object {
				continue
			}
			out = append(out, readAbility(item, tier, parentLink, desc))
		}
	}
	return out
}

// readSubAbilities walks [{parentLink: {tier: [ability]}}].
func readSubAbilities(list *jsontree.Node, desc descriptionFactory) []*Ability {
	var out []*Ability
	for item := range list.Items() {
		for parentLink, tiers := range item.Members() {
			out = append(out, readAbilities(tiers, parentLink, desc)...)
		}
	}
	return out
}

func readAbility(n *jsontree.Node, tier, parentLink string, desc descriptionFactory) *Ability {
	return &Ability{
		NameID:      str(n, "nameId"),
		ButtonID:    str(n, "buttonId"),
		Name:        str(n, "name"),
		Icon:        str(n, "icon"),
		Tier:        tier,
		AbilityType: str(n, "abilityType"),
		ParentLink:  parentLink,
		IsActive:    boolean(n, "isActive"),
		IsPassive:   boolean(n, "isPassive"),
		Cooldown:    desc(str(n, TagCooldownTooltip)),
		Energy:      desc(str(n, TagEnergyTooltip)),
		Life:        desc(str(n, TagLifeTooltip)),
		Short:       desc(str(n, TagShortTooltip)),
		Full:        desc(str(n, TagFullTooltip)),
	}
}
