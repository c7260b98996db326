package heroes_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gamedata"
	"github.com/dmitrymomot/gamedata/pkg/heroes"
	"github.com/dmitrymomot/gamedata/pkg/locale"
)

func parse(t *testing.T, name string, korean bool) *gamedata.Document {
	t.Helper()

	src := gamedata.FromPath(filepath.Join("testdata", name))
	if korean {
		gs, err := gamedata.ParseGameStrings(gamedata.FromPath(filepath.Join("testdata", "gamestrings_76893_kokr.json")))
		require.NoError(t, err)
		t.Cleanup(func() { _ = gs.Close() })
		src = src.WithGameStrings(gs)
	}

	doc, err := gamedata.Parse(src)
	require.NoError(t, err)
	t.Cleanup(func() { _ = doc.Close() })
	return doc
}

func TestUnitReader(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("structural fields", func(t *testing.T) {
		t.Parallel()

		units := heroes.NewUnitReader(parse(t, "unitdata_76893_enus.json", false))

		u, err := units.Get(ctx, "HeroAbathur")
		require.NoError(t, err)

		require.Equal(t, "HeroAbathur", u.CUnitID)
		require.Equal(t, "Abathur", u.HyperlinkID)
		require.Equal(t, "Abathur", u.Name)
		require.Empty(t, u.MapName)
		require.Equal(t, locale.ENUS, u.Description.Locale())
		require.Equal(t, 0.75, u.InnerRadius)
		require.Equal(t, 12.0, u.Sight)
		require.Equal(t, 4.3984, u.Speed)
		require.Equal(t, 200, u.KillXP)
		require.Equal(t, "Hero", u.DamageType)
		require.Equal(t, "HeroDummyVeterancy", u.ScalingLinkID)
		require.Equal(t, []string{"RoleAutoAttacker", "RoleSupport"}, u.Descriptors)
		require.Equal(t, []string{"Heroic"}, u.Attributes)
		require.Equal(t, []string{"AbathurSymbiote", "AbathurLocustNormal"}, u.Units)
		require.Equal(t, "storm_ui_minimapicon_heros_infestor.dds", u.Portraits.Minimap)
		require.Equal(t, heroes.UnitLife{Amount: 685, Scale: 0.04, RegenRate: 1.4257, RegenScale: 0.04, Type: "Life"}, u.Life)
		require.Equal(t, "None", u.Energy.Type)
		require.Equal(t, heroes.UnitShield{}, u.Shield)
		require.Equal(t, []heroes.UnitArmor{
			{Type: "hero"},
			{Type: "structure", Basic: 10, Spell: 5},
		}, u.Armor)
		require.Len(t, u.Weapons, 1)
		require.Equal(t, 26.0, u.Weapons[0].Damage)
		require.Empty(t, u.Abilities, "abilities are opt-in")
	})

	t.Run("map unit", func(t *testing.T) {
		t.Parallel()

		units := heroes.NewUnitReader(parse(t, "unitdata_76893_enus.json", false))

		u, err := units.GetByHyperlinkID(ctx, "CoreBoss")
		require.NoError(t, err)
		require.Equal(t, "AlteracPass-CoreBoss", u.ID)
		require.Equal(t, "AlteracPass", u.MapName)
		require.Equal(t, 4.0, u.Shield.RegenDelay)
		require.True(t, u.Description.IsEmpty())
	})

	t.Run("abilities and sub-abilities", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "unitdata_76893_enus.json", false)

		onlyTop, err := heroes.NewUnitReader(doc, heroes.WithAbilities()).Get(ctx, "HeroAbathur")
		require.NoError(t, err)
		require.Len(t, onlyTop.Abilities, 3)

		u, err := heroes.NewUnitReader(doc, heroes.WithAbilities(), heroes.WithSubAbilities()).Get(ctx, "HeroAbathur")
		require.NoError(t, err)
		require.Len(t, u.Abilities, 4)

		symbiote := u.Abilities[0]
		require.Equal(t, "AbathurSymbiote|AbathurSymbiote", symbiote.ID())
		require.Equal(t, "basic", symbiote.Tier)
		require.Equal(t, "Q", symbiote.AbilityType)
		require.True(t, symbiote.IsActive)
		require.Equal(t, "Cooldown: 4 seconds", symbiote.Cooldown.PlainText())
		require.Empty(t, symbiote.ParentLink)

		require.Equal(t, "trait", u.Abilities[2].Tier)
		require.True(t, u.Abilities[2].IsPassive)

		stab := u.AbilitiesByParent("AbathurSymbiote")
		require.Len(t, stab, 1)
		require.Equal(t, "Stab", stab[0].Name)
		require.Equal(t, "basic", stab[0].Tier)

		subOnly, err := heroes.NewUnitReader(doc, heroes.WithSubAbilities()).Get(ctx, "HeroAbathur")
		require.NoError(t, err)
		require.Len(t, subOnly.Abilities, 1)
	})

	t.Run("localized", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "unitdata_76893_enus.json", true)
		require.Equal(t, locale.KOKR, doc.Locale())

		units := heroes.NewUnitReader(doc, heroes.WithAbilities(), heroes.WithSubAbilities())
		u, err := units.Get(ctx, "HeroAbathur")
		require.NoError(t, err)

		require.Equal(t, "아바투르", u.Name)
		require.Equal(t, "생명력", u.Life.Type)
		require.Equal(t, locale.KOKR, u.Description.Locale())
		require.Equal(t, "공생체", u.Abilities[0].Name)
		require.Equal(t, "재사용 대기시간: 4초", u.Abilities[0].Cooldown.PlainText())
		require.Equal(t, "대상에게 공생체를 붙입니다. 20", u.Abilities[0].Full.PlainText())
		require.Equal(t, "Toxic Nest", u.Abilities[1].Name, "missing text keeps the document value")
		require.Equal(t, "찌르기", u.AbilitiesByParent("AbathurSymbiote")[0].Name)

		core, err := units.Get(ctx, "AlteracPass-CoreBoss")
		require.NoError(t, err)
		require.Equal(t, "핵", core.Name)
		require.Equal(t, "보호막", core.Shield.Type)
	})

	t.Run("all units in order", func(t *testing.T) {
		t.Parallel()

		units := heroes.NewUnitReader(parse(t, "unitdata_76893_enus.json", false))
		ids, err := units.IDs(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"HeroAbathur", "AlteracPass-CoreBoss"}, ids)
	})
}

func TestPortraitPackReader(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	packs := heroes.NewPortraitPackReader(parse(t, "portraitpackdata_76893_enus.json", false))

	p, err := packs.Get(ctx, "DefaultPack")
	require.NoError(t, err)
	require.Equal(t, &heroes.PortraitPack{
		ID:                "DefaultPack",
		HyperlinkID:       "DefaultPack",
		Name:              "Default Pack",
		SortName:          "xxDefaultPack",
		Event:             "Launch",
		RewardPortraitIDs: []string{"1YearAnniversaryPortrait", "2018LunarNewYearPortrait"},
		Rarity:            heroes.RarityCommon,
	}, p)

	p, err = packs.GetByHyperlinkID(ctx, "HallOfStorms")
	require.NoError(t, err)
	require.Equal(t, heroes.RarityNone, p.Rarity, "unknown rarity names are ignored")
	require.Nil(t, p.RewardPortraitIDs)

	localized := heroes.NewPortraitPackReader(parse(t, "portraitpackdata_76893_enus.json", true))
	p, err = localized.Get(ctx, "DefaultPack")
	require.NoError(t, err)
	require.Equal(t, "기본 묶음", p.Name)
	require.Equal(t, "가", p.SortName)
}

func TestAnnouncerReader(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	announcers := heroes.NewAnnouncerReader(parse(t, "announcerdata_76893_enus.json", false))

	a, err := announcers.GetByHyperlinkID(ctx, "AbathurAnnouncer")
	require.NoError(t, err)
	require.Equal(t, "AbathurA", a.ID)
	require.Equal(t, heroes.RarityLegendary, a.Rarity)
	require.Equal(t, "Heroes", a.Category)
	require.Equal(t, "Male", a.Gender)
	require.Equal(t, "Abathur", a.Hero)
	require.Equal(t, "storm_ui_announcer_abathur.png", a.ImageFileName)
	require.Equal(t, time.Date(2014, time.March, 13, 0, 0, 0, 0, time.UTC), a.ReleaseDate)
	require.Equal(t, "Time to evolve.", a.Description.PlainText())

	a, err = announcers.Get(ctx, "AnubarakA")
	require.NoError(t, err)
	require.True(t, a.ReleaseDate.IsZero())

	_, err = announcers.Get(ctx, "Missing")
	require.ErrorIs(t, err, gamedata.ErrNotFound)

	localized := heroes.NewAnnouncerReader(parse(t, "announcerdata_76893_enus.json", true))
	a, err = localized.Get(ctx, "AbathurA")
	require.NoError(t, err)
	require.Equal(t, "아바투르 아나운서", a.Name)
	require.Equal(t, locale.KOKR, a.Description.Locale())
	require.Equal(t, "진화할 시간이다.", a.Description.PlainText())
}
