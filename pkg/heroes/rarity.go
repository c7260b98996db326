package heroes

import "strings"

// Rarity is the collection rarity of a cosmetic item.
type Rarity uint8

const (
	RarityNone Rarity = iota
	RarityCommon
	RarityRare
	RarityEpic
	RarityLegendary
	RarityUnknown
)

var rarityNames = [...]string{
	RarityNone:      "None",
	RarityCommon:    "Common",
	RarityRare:      "Rare",
	RarityEpic:      "Epic",
	RarityLegendary: "Legendary",
	RarityUnknown:   "Unknown",
}

// ParseRarity resolves a rarity name, ignoring case. Unrecognized names
// report false.
func ParseRarity(s string) (Rarity, bool) {
	for i, name := range rarityNames {
		if strings.EqualFold(name, s) {
			return Rarity(i), true
		}
	}
	return RarityNone, false
}

func (r Rarity) String() string {
	if int(r) < len(rarityNames) {
		return rarityNames[r]
	}
	return rarityNames[RarityUnknown]
}

// MarshalText implements encoding.TextMarshaler.
func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
