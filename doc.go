// Package gamedata exposes localization-aware documents over generated game
// data JSON files.
//
// A data file is a JSON object whose members are entities keyed by their
// primary id. A companion gamestrings file maps the same ids to localized
// text, one object of tag/text pairs per entity, plus a reserved "meta"
// object naming the locale:
//
//	units_enus.json:       {"Abathur": {"hyperlinkId": "Abathur", "radius": 0.75}}
//	gamestrings_kokr.json: {"meta": {"locale": "kokr"}, "Abathur": {"name": "아바투르"}}
//
// # Sources
//
// Every input shape is described by a [Source]: a path, an in-memory buffer,
// a stream, or an object in a [storage.Store]. Sources may carry an explicit
// locale and a companion [GameStrings] document or stream:
//
//	gs, err := gamedata.ParseGameStrings(gamedata.FromPath("gamestrings_76893_kokr.json"))
//	if err != nil {
//		return err
//	}
//	defer gs.Close()
//
//	doc, err := gamedata.Parse(gamedata.FromPath("herodata_76893_enus.json").WithGameStrings(gs))
//	if err != nil {
//		return err
//	}
//	defer doc.Close()
//
// # Asynchronous parsing
//
// ParseAsync returns immediately and parses in the background. Every accessor
// blocks until the parse has finished and reports its error, so a document is
// never observed half-built:
//
//	doc := gamedata.ParseAsync(ctx, gamedata.FromReader(body, locale.Unknown).WithGameStringsReader(gsBody))
//	if err := doc.Wait(ctx); err != nil {
//		return err
//	}
//
// # Locales
//
// A data document takes its locale from, in order: the companion gamestrings,
// the explicit source locale, the <name>_<code>.json file name, the
// "meta.locale" member, and finally the configured default (enus). Gamestrings
// use the same order minus the companion and fail with [ErrMissingLocale]
// instead of defaulting, because merged text must be tagged with its language.
//
// # Readers
//
// [Reader] implements id lookups, hyperlink id lookups and enumeration once for
// every entity kind. A reader is built from an extraction function that copies
// the fields of one JSON member into an entity; when the entity implements
// [Localizable] and the document has gamestrings attached, its text is merged
// before it is returned. See package pkg/heroes for concrete readers.
package gamedata
