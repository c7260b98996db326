package tooltip

import (
	"html"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/gamedata/pkg/locale"
)

var (
	strictPolicy  *bluemonday.Policy
	coloredPolicy *bluemonday.Policy
	initOnce      sync.Once
)

var (
	newlineTag   = regexp.MustCompile(`(?i)<n\s*/>`)
	imageTag     = regexp.MustCompile(`(?i)<img\s[^>]*/?>`)
	openSpanTag  = regexp.MustCompile(`(?i)<([cs])\s+val\s*=\s*"([^"]*)"\s*>`)
	closeSpanTag = regexp.MustCompile(`(?i)</[cs]\s*>`)
	scalingTag   = regexp.MustCompile(`~~([0-9.]+)~~`)
	hexColor     = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)
	spaceRun     = regexp.MustCompile(`[ \t]{2,}`)
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		coloredPolicy = bluemonday.NewPolicy()
		coloredPolicy.AllowElements("span", "br")
		coloredPolicy.AllowAttrs("class").Matching(regexp.MustCompile(`^[A-Za-z0-9_-]+$`)).OnElements("span")
		coloredPolicy.AllowStyles("color").Matching(regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)).OnElements("span")
	})
}

// Description is a localized tooltip.
type Description struct {
	raw    string
	locale locale.Locale
}

// New wraps a raw tooltip string.
func New(raw string, loc locale.Locale) Description {
	return Description{raw: raw, locale: loc}
}

// Raw returns the text exactly as stored in the gamestrings.
func (d Description) Raw() string { return d.raw }

// Locale returns the language of the text.
func (d Description) Locale() locale.Locale { return d.locale }

// IsEmpty reports whether there is no text.
func (d Description) IsEmpty() bool { return d.raw == "" }

// MarshalText implements encoding.TextMarshaler with the raw markup.
func (d Description) MarshalText() ([]byte, error) { return []byte(d.raw), nil }

// String returns the plain text rendering.
func (d Description) String() string { return d.PlainText() }

// PlainText strips all markup, scaling values and line breaks.
func (d Description) PlainText() string {
	return plain(d.stripScaling(d.raw), " ")
}

// PlainTextWithNewlines strips all markup and scaling values, keeping line breaks.
func (d Description) PlainTextWithNewlines() string {
	return plain(d.stripScaling(d.raw), "\n")
}

// PlainTextWithScaling strips all markup and line breaks, rendering scaling values.
func (d Description) PlainTextWithScaling() string {
	return plain(d.renderScaling(d.raw), " ")
}

// PlainTextWithScalingWithNewlines strips all markup, rendering scaling values
// and keeping line breaks.
func (d Description) PlainTextWithScalingWithNewlines() string {
	return plain(d.renderScaling(d.raw), "\n")
}

// ColoredText converts colour and style spans to sanitized HTML spans.
// Scaling values are removed.
func (d Description) ColoredText() string {
	return colored(d.stripScaling(d.raw))
}

// ColoredTextWithScaling converts colour and style spans to sanitized HTML
// spans and renders scaling values.
func (d Description) ColoredTextWithScaling() string {
	return colored(d.renderScaling(d.raw))
}

func (d Description) stripScaling(s string) string {
	return scalingTag.ReplaceAllString(s, "")
}

func (d Description) renderScaling(s string) string {
	return scalingTag.ReplaceAllStringFunc(s, func(m string) string {
		sub := scalingTag.FindStringSubmatch(m)
		v, err := strconv.ParseFloat(sub[1], 64)
		if err != nil {
			return ""
		}
		return " (+" + strconv.FormatFloat(math.Round(v*10000)/100, 'f', -1, 64) + "% " + perLevel(d.locale) + ")"
	})
}

func plain(s, newline string) string {
	initPolicies()

	s = strings.ReplaceAll(s, "\n", " ")
	s = newlineTag.ReplaceAllString(s, "\n")
	s = imageTag.ReplaceAllString(s, "")
	s = html.UnescapeString(strictPolicy.Sanitize(s))

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
	}
	if newline == " " {
		return strings.Join(nonEmpty(lines), " ")
	}
	return strings.Join(lines, newline)
}

func colored(s string) string {
	initPolicies()

	s = newlineTag.ReplaceAllString(s, "<br/>")
	s = imageTag.ReplaceAllString(s, "")
	s = openSpanTag.ReplaceAllStringFunc(s, func(m string) string {
		sub := openSpanTag.FindStringSubmatch(m)
		val := strings.TrimPrefix(sub[2], "#")
		if hexColor.MatchString(val) {
			return `<span style="color:#` + val + `">`
		}
		return `<span class="` + val + `">`
	})
	s = closeSpanTag.ReplaceAllString(s, "</span>")

	return coloredPolicy.Sanitize(s)
}

func nonEmpty(lines []string) []string {
	out := lines[:0]
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

var perLevelText = map[locale.Locale]string{
	locale.ENUS: "per level",
	locale.DEDE: "pro Stufe",
	locale.ESES: "por nivel",
	locale.ESMX: "por nivel",
	locale.FRFR: "par niveau",
	locale.ITIT: "per livello",
	locale.KOKR: "레벨당",
	locale.PLPL: "na poziom",
	locale.PTBR: "por nível",
	locale.RURU: "за уровень",
	locale.ZHCN: "每级",
	locale.ZHTW: "每級",
}

func perLevel(l locale.Locale) string {
	if s, ok := perLevelText[l]; ok {
		return s
	}
	return perLevelText[locale.Default]
}
