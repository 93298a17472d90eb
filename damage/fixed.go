package damage

import (
	"github.com/nicoberrocal/pokecalc/battle"
	"github.com/nicoberrocal/pokecalc/moveset"
	"github.com/nicoberrocal/pokecalc/types"
)

// getFixedDamage returns the exact, non-random damage value for a move
// that bypasses the standard formula entirely, the effectiveness value
// to report for it (types.Immune when a type immunity zeroed it,
// types.Neutral otherwise — Endeavor's legitimate "already below target
// HP" zero result is not an immunity and reports Neutral), and whether
// moveID is one of these moves at all. Type immunity still applies to
// the Fighting- and Normal-typed fixed moves against a Ghost-type
// defender (Seismic Toss, Sonic Boom, Super Fang, Final Gambit,
// Endeavor), to Night Shade against a Normal-type defender, and to
// Dragon Rage against a Fairy-type defender; Nature's Madness,
// Ruination, and Guardian of Alola check no immunity. The percentage-of-max-HP fixed
// moves (Super Fang, Nature's Madness, Ruination, Guardian of Alola) use
// ceiling division exactly as spec.md states it, not the
// floor-plus-max(1) a literal port of original_source's stub would have
// used.
func getFixedDamage(moveID moveset.MoveID, state *battle.BattleState, attacker, defender int) (dmg uint16, effectiveness uint8, matched bool) {
	atk := &state.Entities[attacker]
	def := &state.Entities[defender]

	switch moveID {
	case moveset.NightShade:
		if def.HasType(types.Normal) {
			return 0, types.Immune, true
		}
		return uint16(atk.Level), types.Neutral, true
	case moveset.SeismicToss:
		if def.HasType(types.Ghost) {
			return 0, types.Immune, true
		}
		return uint16(atk.Level), types.Neutral, true
	case moveset.DragonRage:
		if def.HasType(types.Fairy) {
			return 0, types.Immune, true
		}
		return 40, types.Neutral, true
	case moveset.SonicBoom:
		if def.HasType(types.Ghost) {
			return 0, types.Immune, true
		}
		return 20, types.Neutral, true
	case moveset.SuperFang:
		if def.HasType(types.Ghost) {
			return 0, types.Immune, true
		}
		return ceilDiv(def.HP, 2), types.Neutral, true
	case moveset.NaturesMadness:
		return ceilDiv(def.HP, 2), types.Neutral, true
	case moveset.Ruination:
		return ceilDiv(def.HP, 2), types.Neutral, true
	case moveset.GuardianOfAlola:
		return uint16(ceilDiv32(uint32(def.HP)*3, 4)), types.Neutral, true
	case moveset.FinalGambit:
		if def.HasType(types.Ghost) {
			return 0, types.Immune, true
		}
		return atk.HP, types.Neutral, true
	case moveset.Endeavor:
		if def.HasType(types.Ghost) {
			return 0, types.Immune, true
		}
		if def.HP > atk.HP {
			return def.HP - atk.HP, types.Neutral, true
		}
		return 0, types.Neutral, true
	default:
		return 0, types.Neutral, false
	}
}

func ceilDiv(hp uint16, divisor uint16) uint16 {
	return (hp + divisor - 1) / divisor
}

func ceilDiv32(value, divisor uint32) uint32 {
	return (value + divisor - 1) / divisor
}
