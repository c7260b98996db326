// Package locale enumerates the display languages game data is published in.
//
// Every locale has a canonical four letter code (enus, kokr, frfr, ...). Codes
// are matched case-insensitively and map onto BCP 47 tags so a locale can be
// negotiated from an HTTP Accept-Language header:
//
//	loc, err := locale.Parse("KOKR")           // locale.KOKR
//	loc, ok := locale.FromFilename("units_frfr.json") // locale.FRFR, true
//	best := locale.Match("de-DE,de;q=0.9,en;q=0.5", locale.ENUS, locale.DEDE)
//
// File names follow the convention <basename>_<code>.<ext>. A missing or
// unrecognized suffix is reported through the boolean result, never as an error,
// so callers can fall back to [Default].
package locale
