// Package gen implements the generation-parameterized capability surface
// spec.md §4.3 describes. Generation 9 is the default/base behavior;
// every method below branches on the stored generation number to apply
// only the deltas a given generation actually changes, which collapses
// what the original engine expressed as nine near-identical trait impls
// (one full struct per generation, each reconstructing a fresh damage
// context) into a single small-int dispatch type. Generation 1's formula
// is different enough in kind, not just in degree, that it is not
// expressed as a set of deltas at all — see gen1.go.
package gen

import (
	"github.com/nicoberrocal/pokecalc/battle"
	"github.com/nicoberrocal/pokecalc/modifier"
	"github.com/nicoberrocal/pokecalc/types"
)

// Generation is a small-integer generation number, 1 through 9. Its
// methods are the capability surface the damage pipeline queries instead
// of branching on magic numbers inline.
type Generation uint8

const (
	Gen1 Generation = 1
	Gen2 Generation = 2
	Gen3 Generation = 3
	Gen4 Generation = 4
	Gen5 Generation = 5
	Gen6 Generation = 6
	Gen7 Generation = 7
	Gen8 Generation = 8
	Gen9 Generation = 9
)

// HasAbilities reports whether abilities exist in this generation (Gen 3+).
func (g Generation) HasAbilities() bool { return g >= 3 }

// HasHeldItems reports whether held items exist in this generation (Gen 2+).
func (g Generation) HasHeldItems() bool { return g >= 2 }

// UsesPhysicalSpecialSplit reports whether category follows the modern
// per-move Physical/Special/Status split (Gen 4+) rather than being
// derived purely from the move's type (Gen 1-3).
func (g Generation) UsesPhysicalSpecialSplit() bool { return g >= 4 }

// HasTerastallization reports whether Terastallization exists (Gen 9+).
func (g Generation) HasTerastallization() bool { return g >= 9 }

// HasMegaEvolution reports whether Mega Evolution exists (Gen 6-7 only).
func (g Generation) HasMegaEvolution() bool { return g == 6 || g == 7 }

// HasZMoves reports whether Z-Moves exist (Gen 7 only).
func (g Generation) HasZMoves() bool { return g == 7 }

// HasDynamax reports whether Dynamax/Gigantamax exists (Gen 8 only).
func (g Generation) HasDynamax() bool { return g == 8 }

// DynamaxHPMultiplier is always 1.0 in this engine: HP doubling on
// Dynamax is a battle-state transition the fixture harness's input
// already reflects in max_hp, not something the damage formula itself
// scales.
func (g Generation) DynamaxHPMultiplier() modifier.Modifier { return modifier.One }

// MaxMovePower returns a Max/G-Max move's effective base power. This
// engine does not model the Showdown base-power-to-Max-Move-power table
// (fixture inputs carry the already-resolved Max Move base power), so
// this is an identity passthrough; see spec.md's Z-move base-power
// fixture convention, preserved as an Open Question decision in
// DESIGN.md.
func (g Generation) MaxMovePower(bp uint16) uint16 { return bp }

// CritMultiplier returns the damage multiplier applied on a critical
// hit via floor division (not PokeRound): 2x for Gen 1-5, 1.5x for Gen 6+.
func (g Generation) CritMultiplier() modifier.Modifier {
	if g <= 5 {
		return modifier.Double
	}
	return modifier.OnePointFive
}

// StabMultiplier returns the Same-Type Attack Bonus multiplier.
// Adaptability and genuine Tera-STAB both widen 1.5x to 2x.
func (g Generation) StabMultiplier(hasAdaptability, isTeraStab bool) modifier.Modifier {
	if hasAdaptability || isTeraStab {
		return modifier.Double
	}
	return modifier.OnePointFive
}

// WeatherModifier returns the weather-based damage multiplier for a move
// of the given type, or modifier.One if weather does not interact with it.
func (g Generation) WeatherModifier(weather battle.Weather, moveType types.Type) modifier.Modifier {
	switch weather {
	case battle.Sun, battle.HarshSun:
		switch moveType {
		case types.Fire:
			return modifier.OnePointFive
		case types.Water:
			return modifier.Half
		}
	case battle.Rain, battle.HeavyRain:
		switch moveType {
		case types.Water:
			return modifier.OnePointFive
		case types.Fire:
			return modifier.Half
		}
	}
	return modifier.One
}

// TerrainModifier returns the terrain-based damage multiplier. Terrain
// never affects an ungrounded attacker.
func (g Generation) TerrainModifier(terrain battle.Terrain, moveType types.Type, isGrounded bool) modifier.Modifier {
	if !isGrounded {
		return modifier.One
	}
	switch terrain {
	case battle.Electric:
		if moveType == types.Electric {
			return modifier.OnePointThree
		}
	case battle.Grassy:
		if moveType == types.Grass {
			return modifier.OnePointThree
		}
	case battle.Psychic:
		if moveType == types.Psychic {
			return modifier.OnePointThree
		}
	case battle.Misty:
		if moveType == types.Dragon {
			return modifier.Half
		}
	}
	return modifier.One
}

// TypeEffectiveness dispatches to the Gen 1-specific chart for Gen 1 and
// the standard chart otherwise.
func (g Generation) TypeEffectiveness(attacker, def1, def2 types.Type) uint8 {
	if g == Gen1 {
		return gen1Effectiveness(attacker, def1, def2)
	}
	return types.Effectiveness(attacker, def1, def2)
}

// SingleTypeEffectiveness returns the single-type effectiveness cell this
// generation uses, routing through the Gen 1 chart-bug overrides for Gen 1
// and the modern chart otherwise. The damage package's type-immunity
// override logic (Ring Target, Scrappy, grounded Ground-vs-Flying) needs
// the ungated single-type lookup that TypeEffectiveness combines away.
func (g Generation) SingleTypeEffectiveness(attacker, defender types.Type) uint8 {
	if g == Gen1 {
		return gen1Single(attacker, defender)
	}
	return types.Single(attacker, defender)
}

// BurnModifier is the Attack-halving multiplier applied to a burned
// Pokémon's physical moves. Constant across every generation this engine
// models via the standard pipeline (Gen 1's burn handling is folded
// directly into its wholesale formula in gen1.go, since Gen 1 also
// exempts critical hits from the halving, a detail the standard pipeline
// does not need to know about).
func (g Generation) BurnModifier() modifier.Modifier { return modifier.Half }

// AddsTwoInBaseDamage reports whether the standard base-damage formula's
// "+2" term applies. Every generation the standard pipeline serves
// applies it; Gen 1's own "+2" is positioned differently in its formula
// and is handled entirely inside gen1.go instead. For Gen 3-4 the
// standard pipeline also keeps the "+2" inside the formula and applies
// burn and screens at their Gen 5+ positions; it does not model those
// generations' later placement of them.
func (g Generation) AddsTwoInBaseDamage() bool { return true }

// IsPhysicalByType reports whether a move's type falls in the Physical
// half of the Gen 1-3 type-based category split (used when
// !UsesPhysicalSpecialSplit()).
func IsPhysicalByType(t types.Type) bool {
	switch t {
	case types.Normal, types.Fighting, types.Flying, types.Ground, types.Rock, types.Bug, types.Ghost, types.Poison, types.Steel:
		return true
	default:
		return false
	}
}
