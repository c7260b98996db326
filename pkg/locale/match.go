package locale

import "golang.org/x/text/language"

// maxAcceptLanguageLength prevents oversized Accept-Language headers from being parsed.
const maxAcceptLanguageLength = 4096

// FromTag returns the supported locale closest to tag. Only confident matches
// are accepted, so "ko" resolves to KOKR while "nl" reports false.
func FromTag(tag language.Tag) (Locale, bool) {
	all := All()
	_, idx, conf := newMatcher(all).Match(tag)
	if conf < language.High {
		return Unknown, false
	}
	return all[idx], true
}

// Match picks the locale from available that best satisfies an
// Accept-Language header. When nothing matches, the first available locale is
// returned. With no available locales Match considers every supported one and
// falls back to Default.
func Match(acceptLanguage string, available ...Locale) Locale {
	if len(available) == 0 {
		available = All()
	}

	if acceptLanguage == "" || len(acceptLanguage) > maxAcceptLanguageLength {
		return first(available)
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return first(available)
	}

	_, idx, conf := newMatcher(available).Match(tags...)
	if conf == language.No {
		return first(available)
	}
	return available[idx]
}

func newMatcher(available []Locale) language.Matcher {
	tags := make([]language.Tag, len(available))
	for i, l := range available {
		tags[i] = l.Tag()
	}
	return language.NewMatcher(tags)
}

func first(available []Locale) Locale {
	for _, l := range available {
		if l.IsValid() {
			return l
		}
	}
	return Default
}
