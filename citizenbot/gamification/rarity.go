package gamification

// RarityStyle is how a badge of a given rarity is drawn.
// Class is the CSS class list for rendered cards, Color the embed color.
type RarityStyle struct {
	Class string
	Color int
}

var rarityStyles = map[Rarity]RarityStyle{
	RarityCommon:    {Class: "bg-gray-100 text-gray-800 border-gray-200", Color: 0x808080},
	RarityUncommon:  {Class: "bg-green-100 text-green-800 border-green-200", Color: 0x00FF00},
	RarityRare:      {Class: "bg-blue-100 text-blue-800 border-blue-200", Color: 0x0000FF},
	RarityEpic:      {Class: "bg-purple-100 text-purple-800 border-purple-200", Color: 0x800080},
	RarityLegendary: {Class: "bg-yellow-100 text-yellow-800 border-yellow-200", Color: 0xFFD700},
}

// RarityStyleFor falls back to the common style for anything it does not know.
func RarityStyleFor(r Rarity) RarityStyle {
	if s, ok := rarityStyles[r]; ok {
		return s
	}
	return rarityStyles[RarityCommon]
}

func (r Rarity) Weight() int {
	switch r {
	case RarityUncommon:
		return 2
	case RarityRare:
		return 3
	case RarityEpic:
		return 4
	case RarityLegendary:
		return 5
	}
	return 1
}
