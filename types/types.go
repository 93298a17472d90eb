// Package types defines the elemental Type identifier, the canonical type
// chart, and the combined-effectiveness helper shared by every generation.
package types

import "strings"

// Type is a small-integer identifier for one of the 19 elemental types,
// ordered by game-canonical index. The zero value, Normal, is a real type
// here (there is no "no type" sentinel the way there is for abilities and
// items — every move and every Pokémon has a concrete type).
type Type uint8

const (
	Normal Type = iota
	Fighting
	Flying
	Poison
	Ground
	Rock
	Bug
	Ghost
	Steel
	Fire
	Water
	Grass
	Electric
	Psychic
	Ice
	Dragon
	Dark
	Fairy
	Unknown // "???"/Curse-type placeholder carried from older generations' data files
	Count
)

var names = [Count]string{
	Normal:   "Normal",
	Fighting: "Fighting",
	Flying:   "Flying",
	Poison:   "Poison",
	Ground:   "Ground",
	Rock:     "Rock",
	Bug:      "Bug",
	Ghost:    "Ghost",
	Steel:    "Steel",
	Fire:     "Fire",
	Water:    "Water",
	Grass:    "Grass",
	Electric: "Electric",
	Psychic:  "Psychic",
	Ice:      "Ice",
	Dragon:   "Dragon",
	Dark:     "Dark",
	Fairy:    "Fairy",
	Unknown:  "???",
}

// String returns the canonical display name.
func (t Type) String() string {
	if t >= Count {
		return "Unknown"
	}
	return names[t]
}

// byName is the codegen-emitted normalized-key lookup (see codegen.NormalizeKey).
// The corpus this module was grown from never reaches for a minimal-perfect-hash
// library for this shape of lookup (see DESIGN.md), so a plain map stands in for
// the "perfect-hash static map" spec.md §4.1 describes.
var byName map[string]Type

func init() {
	byName = make(map[string]Type, Count)
	for i := Type(0); i < Count; i++ {
		byName[normalize(names[i])] = i
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, s))
}

// FromName resolves a type by its canonical or loosely-punctuated name.
func FromName(name string) (Type, bool) {
	t, ok := byName[normalize(name)]
	return t, ok
}
