package locale

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies a display language and region.
type Locale uint8

// Supported locales. Unknown is the zero value and never produced by Parse.
const (
	Unknown Locale = iota
	ENUS
	DEDE
	ESES
	ESMX
	FRFR
	ITIT
	KOKR
	PLPL
	PTBR
	RURU
	ZHCN
	ZHTW
)

// Default is used whenever a document's locale cannot be determined.
const Default = ENUS

// codeLength is the length of every locale code.
const codeLength = 4

type localeInfo struct {
	code string
	tag  language.Tag
}

var locales = [...]localeInfo{
	Unknown: {code: "", tag: language.Und},
	ENUS:    {code: "enus", tag: language.AmericanEnglish},
	DEDE:    {code: "dede", tag: language.MustParse("de-DE")},
	ESES:    {code: "eses", tag: language.EuropeanSpanish},
	ESMX:    {code: "esmx", tag: language.MustParse("es-MX")},
	FRFR:    {code: "frfr", tag: language.MustParse("fr-FR")},
	ITIT:    {code: "itit", tag: language.MustParse("it-IT")},
	KOKR:    {code: "kokr", tag: language.MustParse("ko-KR")},
	PLPL:    {code: "plpl", tag: language.MustParse("pl-PL")},
	PTBR:    {code: "ptbr", tag: language.BrazilianPortuguese},
	RURU:    {code: "ruru", tag: language.MustParse("ru-RU")},
	ZHCN:    {code: "zhcn", tag: language.SimplifiedChinese},
	ZHTW:    {code: "zhtw", tag: language.MustParse("zh-TW")},
}

var byCode = func() map[string]Locale {
	m := make(map[string]Locale, len(locales))
	for i, info := range locales {
		if info.code != "" {
			m[info.code] = Locale(i)
		}
	}
	return m
}()

// All returns every supported locale in declaration order.
func All() []Locale {
	out := make([]Locale, 0, len(locales)-1)
	for i := 1; i < len(locales); i++ {
		out = append(out, Locale(i))
	}
	return out
}

// Parse resolves a four letter locale code. Matching is case-insensitive and
// surrounding whitespace is ignored.
func Parse(code string) (Locale, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Unknown, ErrEmptyCode
	}
	if l, ok := byCode[strings.ToLower(code)]; ok {
		return l, nil
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownLocale, code)
}

// FromFilename extracts the locale from a <basename>_<code>.<ext> file name.
// Directories are ignored. The boolean is false when the name carries no
// suffix or the suffix is not a known code.
func FromFilename(name string) (Locale, bool) {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	i := strings.LastIndexByte(base, '_')
	if i < 0 || len(base)-i-1 != codeLength {
		return Unknown, false
	}

	l, err := Parse(base[i+1:])
	if err != nil {
		return Unknown, false
	}
	return l, true
}

// IsValid reports whether l is one of the supported locales.
func (l Locale) IsValid() bool {
	return l > Unknown && int(l) < len(locales)
}

// String returns the lower-case code, e.g. "kokr".
func (l Locale) String() string {
	if !l.IsValid() {
		return "unknown"
	}
	return locales[l].code
}

// Code returns the canonical upper-case code, e.g. "KOKR".
func (l Locale) Code() string {
	if !l.IsValid() {
		return ""
	}
	return strings.ToUpper(locales[l].code)
}

// Tag returns the BCP 47 language tag of the locale.
func (l Locale) Tag() language.Tag {
	if !l.IsValid() {
		return language.Und
	}
	return locales[l].tag
}

// MarshalText implements encoding.TextMarshaler.
func (l Locale) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, ErrUnknownLocale
	}
	return []byte(locales[l].code), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Locale) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
