package tooltip_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gamedata/pkg/locale"
	"github.com/dmitrymomot/gamedata/pkg/tooltip"
)

const sample = `Deals <c val="#TooltipNumbers">150~~0.04~~</c> damage.<n/><n/>Bonus: <c val="FF8000">20</c> <img path="@UI/StormTalentInTextArmorIcon" alignment="uppercase"/>Armor`

func TestDescription_PlainText(t *testing.T) {
	t.Parallel()

	d := tooltip.New(sample, locale.ENUS)

	require.Equal(t, sample, d.Raw())
	require.Equal(t, locale.ENUS, d.Locale())
	require.False(t, d.IsEmpty())
	require.Equal(t, "Deals 150 damage. Bonus: 20 Armor", d.PlainText())
	require.Equal(t, "Deals 150 damage.\n\nBonus: 20 Armor", d.PlainTextWithNewlines())
	require.Equal(t, "Deals 150 (+4% per level) damage. Bonus: 20 Armor", d.PlainTextWithScaling())
	require.Equal(t, "Deals 150 (+4% per level) damage.\n\nBonus: 20 Armor", d.PlainTextWithScalingWithNewlines())
	require.Equal(t, d.PlainText(), d.String())
}

func TestDescription_LocalizedScaling(t *testing.T) {
	t.Parallel()

	d := tooltip.New("Heals 10~~0.035~~", locale.FRFR)
	require.Equal(t, "Heals 10 (+3.5% par niveau)", d.PlainTextWithScaling())
}

func TestDescription_PlainTextUnescapes(t *testing.T) {
	t.Parallel()

	d := tooltip.New(`Tyrael's <c val="#TooltipQuest">Quest</c> & more`, locale.ENUS)
	require.Equal(t, "Tyrael's Quest & more", d.PlainText())
}

func TestDescription_ColoredText(t *testing.T) {
	t.Parallel()

	d := tooltip.New(sample, locale.ENUS)

	got := d.ColoredText()
	require.Contains(t, got, `<span class="TooltipNumbers">150</span>`)
	require.Contains(t, got, "FF8000")
	require.Contains(t, got, "<br/>")
	require.NotContains(t, got, "<img")
	require.NotContains(t, got, "~~")

	withScaling := d.ColoredTextWithScaling()
	require.Contains(t, withScaling, "150 (+4% per level)</span>")
}

func TestDescription_ColoredTextStripsForeignMarkup(t *testing.T) {
	t.Parallel()

	d := tooltip.New(`<script>alert(1)</script><c val="bad class!">x</c>`, locale.ENUS)
	got := d.ColoredText()
	require.NotContains(t, got, "script")
	require.NotContains(t, got, "bad class!")
	require.Contains(t, got, "x")
}

func TestDescription_Empty(t *testing.T) {
	t.Parallel()

	var d tooltip.Description
	require.True(t, d.IsEmpty())
	require.Empty(t, d.PlainText())
	require.Empty(t, d.ColoredText())
}

func TestDescription_MarshalText(t *testing.T) {
	t.Parallel()

	text, err := tooltip.New(sample, locale.ENUS).MarshalText()
	require.NoError(t, err)
	require.Equal(t, sample, string(text))
}
