package gen

import (
	"github.com/nicoberrocal/pokecalc/battle"
	"github.com/nicoberrocal/pokecalc/modifier"
	"github.com/nicoberrocal/pokecalc/moveset"
	"github.com/nicoberrocal/pokecalc/types"
)

// gen1Overrides holds the handful of (attacker, defender) single-type
// cells Generation 1's type chart got wrong relative to every later
// generation: Ghost had no effect on Psychic (a chart bug later fixed),
// Poison and Bug were super effective against each other in both
// directions (the standard chart resists Bug-vs-Poison and is neutral on
// Poison-vs-Bug; Gen 1 made both 2x), and Ice was not yet resisted by
// Fire (standard 0.5x, Gen 1 1x). These are historical cartridge bugs,
// not design choices, and spec.md calls for reproducing them exactly
// rather than the corrected modern values.
var gen1Overrides = map[[2]types.Type]uint8{
	{types.Ghost, types.Psychic}: types.Immune,
	{types.Poison, types.Bug}:    types.Double,
	{types.Bug, types.Poison}:    types.Double,
	{types.Ice, types.Fire}:      types.Neutral,
}

func gen1Single(attacker, defender types.Type) uint8 {
	if v, ok := gen1Overrides[[2]types.Type{attacker, defender}]; ok {
		return v
	}
	return types.Single(attacker, defender)
}

func gen1Effectiveness(attacker, def1, def2 types.Type) uint8 {
	eff1 := gen1Single(attacker, def1)
	eff2 := uint8(types.Neutral)
	if def2 != def1 {
		eff2 = gen1Single(attacker, def2)
	}
	return uint8(uint16(eff1) * uint16(eff2) / uint16(types.Neutral))
}

func isGen1SpecialType(t types.Type) bool {
	switch t {
	case types.Fire, types.Water, types.Grass, types.Ice, types.Electric, types.Psychic, types.Dragon:
		return true
	default:
		return false
	}
}

// CalculateGen1 computes the sixteen damage rolls using Generation 1's
// wholly distinct formula: category derives from move type rather than
// a per-move flag, critical hits double level and ignore every stat
// boost on both sides, and the "Special" stat is shared between
// attack and defense roles in a way that surfaces as the defender's
// effective Special stat being boosted by the *attacker's* Special
// stage — a faithfully reproduced quirk of the original cartridge's
// single shared Special stat, not a bug in this port. effectiveType
// and effectivePower let callers apply the Phase-2 special-move
// overrides (Weather Ball, Struggle, ...) exactly as the standard
// pipeline does before handing off to this formula.
func CalculateGen1(state *battle.BattleState, attackerIdx, defenderIdx int, effectiveType types.Type, effectivePower uint16, isCrit bool) (rolls [16]uint16, effectiveness uint8) {
	attacker := &state.Entities[attackerIdx]
	defender := &state.Entities[defenderIdx]

	effectiveness = gen1Effectiveness(effectiveType, defender.Type1, defender.Type2)

	category := moveset.Physical
	if isGen1SpecialType(effectiveType) {
		category = moveset.Special
	}

	level := attacker.Level
	var atkStat, defStat uint32
	if category == moveset.Special {
		if isCrit {
			atkStat = uint32(attacker.Stats[3])
			defStat = uint32(defender.Stats[3])
		} else {
			atkStat = uint32(modifier.ApplyBoost(attacker.Stats[3], attacker.Boosts[battle.SpABoost]))
			defStat = uint32(modifier.ApplyBoost(defender.Stats[3], attacker.Boosts[battle.SpABoost]))
		}
	} else {
		if isCrit {
			atkStat = uint32(attacker.Stats[1])
			defStat = uint32(defender.Stats[2])
		} else {
			atkStat = uint32(modifier.ApplyBoost(attacker.Stats[1], attacker.Boosts[battle.AtkBoost]))
			defStat = uint32(modifier.ApplyBoost(defender.Stats[2], defender.Boosts[battle.DefBoost]))
		}
	}

	if defStat == 0 {
		return [16]uint16{}, effectiveness
	}

	if !isCrit && category == moveset.Physical && attacker.Status == battle.Burn {
		atkStat /= 2
	}

	effectiveLevel := uint32(level)
	if isCrit {
		effectiveLevel *= 2
	}

	levelTerm := 2*effectiveLevel/5 + 2
	step1 := modifier.Of32(uint64(levelTerm) * uint64(atkStat) * uint64(effectivePower))
	step2 := step1 / defStat
	step3 := step2 / 50
	if step3 > 997 {
		step3 = 997
	}
	damage := step3 + 2

	hasStab := attacker.HasType(effectiveType)
	if hasStab {
		damage = damage + damage/2
	}
	if effectiveness != uint8(types.Neutral) {
		damage = damage * uint32(effectiveness) / uint32(types.Neutral)
	}

	for i := 0; i < 16; i++ {
		roll := 217 + uint32(i)*38/15
		rolls[i] = uint16(damage * roll / 255)
	}
	return rolls, effectiveness
}
