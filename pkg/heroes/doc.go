// Package heroes reads Heroes of the Storm game data documents into typed
// entities: units with their abilities, portrait packs and announcers.
//
// Each reader is a gamedata.Reader over a parsed document. Text supplied by
// the document's gamestrings is merged into every entity it returns.
//
// # Usage
//
//	gs, err := gamedata.ParseGameStrings(gamedata.FromPath("gamestrings_76893_kokr.json"))
//	if err != nil {
//		return err
//	}
//	doc, err := gamedata.Parse(gamedata.FromPath("unitdata_76893.json").WithGameStrings(gs))
//	if err != nil {
//		return err
//	}
//	defer doc.Close()
//
//	units := heroes.NewUnitReader(doc, heroes.WithAbilities(), heroes.WithSubAbilities())
//	u, err := units.GetByHyperlinkID(ctx, "Abathur")
//
// Fields are filled only when the document carries them; a unit without a
// shield has a zero UnitShield.
package heroes
