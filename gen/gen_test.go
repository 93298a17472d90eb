package gen

import (
	"testing"

	"github.com/nicoberrocal/pokecalc/battle"
	"github.com/nicoberrocal/pokecalc/types"
)

func TestCapabilityThresholds(t *testing.T) {
	if Gen2.HasAbilities() || !Gen3.HasAbilities() {
		t.Errorf("abilities should start at Gen 3")
	}
	if Gen1.HasHeldItems() || !Gen2.HasHeldItems() {
		t.Errorf("held items should start at Gen 2")
	}
	if Gen3.UsesPhysicalSpecialSplit() || !Gen4.UsesPhysicalSpecialSplit() {
		t.Errorf("physical/special split should start at Gen 4")
	}
	if Gen8.HasTerastallization() || !Gen9.HasTerastallization() {
		t.Errorf("terastallization should only exist in Gen 9+")
	}
	if !Gen6.HasMegaEvolution() || !Gen7.HasMegaEvolution() || Gen8.HasMegaEvolution() {
		t.Errorf("mega evolution should exist only in Gen 6-7")
	}
	if !Gen7.HasZMoves() || Gen6.HasZMoves() || Gen8.HasZMoves() {
		t.Errorf("z-moves should exist only in Gen 7")
	}
	if !Gen8.HasDynamax() || Gen7.HasDynamax() || Gen9.HasDynamax() {
		t.Errorf("dynamax should exist only in Gen 8")
	}
}

func TestCritMultiplierEra(t *testing.T) {
	if Gen5.CritMultiplier() != 8192 {
		t.Errorf("pre-Gen6 crit should be 2x (8192), got %d", Gen5.CritMultiplier())
	}
	if Gen9.CritMultiplier() != 6144 {
		t.Errorf("Gen6+ crit should be 1.5x (6144), got %d", Gen9.CritMultiplier())
	}
}

func TestWeatherModifier(t *testing.T) {
	if Gen9.WeatherModifier(battle.Sun, types.Fire) != 6144 {
		t.Errorf("Sun should boost Fire 1.5x")
	}
	if Gen9.WeatherModifier(battle.Sun, types.Water) != 2048 {
		t.Errorf("Sun should halve Water")
	}
	if Gen9.WeatherModifier(battle.Sand, types.Fire) != 4096 {
		t.Errorf("Sand should not affect Fire")
	}
}

func TestTerrainModifierRequiresGrounding(t *testing.T) {
	if Gen9.TerrainModifier(battle.Electric, types.Electric, false) != 4096 {
		t.Errorf("terrain should not boost an ungrounded attacker")
	}
	if Gen9.TerrainModifier(battle.Electric, types.Electric, true) != 5325 {
		t.Errorf("Electric Terrain should boost Electric moves 1.3x when grounded")
	}
}

func TestGen1EffectivenessOverrides(t *testing.T) {
	if got := gen1Effectiveness(types.Ghost, types.Psychic, types.Psychic); got != types.Immune {
		t.Errorf("Gen1 Ghost vs Psychic should be immune, got %d", got)
	}
	if got := gen1Effectiveness(types.Poison, types.Bug, types.Bug); got != types.Double {
		t.Errorf("Gen1 Poison vs Bug should be 2x, got %d", got)
	}
	if got := gen1Effectiveness(types.Ice, types.Fire, types.Fire); got != types.Neutral {
		t.Errorf("Gen1 Ice vs Fire should be neutral (not yet resisted), got %d", got)
	}
}

func TestGen1ZeroDefenseGuard(t *testing.T) {
	var state battle.BattleState
	a := state.Entity(0, 0)
	a.Level = 50
	a.Stats = [6]uint16{100, 100, 100, 100, 100, 100}
	a.Type1 = types.Normal
	a.Type2 = types.Normal
	d := state.Entity(1, 0)
	d.Stats = [6]uint16{100, 0, 0, 0, 0, 100}
	d.Type1 = types.Normal
	d.Type2 = types.Normal

	rolls, _ := CalculateGen1(&state, battle.EntityIndex(0, 0), battle.EntityIndex(1, 0), types.Normal, 40, false)
	for _, r := range rolls {
		if r != 0 {
			t.Fatalf("zero defense stat should yield an all-zero roll table, got %v", rolls)
		}
	}
}

func TestGen1CritDoublesLevelAndIgnoresBoosts(t *testing.T) {
	var state battle.BattleState
	a := state.Entity(0, 0)
	a.Level = 50
	a.Stats = [6]uint16{100, 100, 100, 100, 100, 100}
	a.Boosts[battle.AtkBoost] = 6
	a.Type1 = types.Normal
	a.Type2 = types.Normal
	d := state.Entity(1, 0)
	d.Stats = [6]uint16{100, 100, 100, 100, 100, 100}
	d.Type1 = types.Water
	d.Type2 = types.Water

	rolls, eff := CalculateGen1(&state, battle.EntityIndex(0, 0), battle.EntityIndex(1, 0), types.Normal, 40, true)
	if eff != types.Neutral {
		t.Errorf("Normal vs Water should be neutral, got %d", eff)
	}
	// Level 50 doubled to 100 and the +6 Attack stage ignored:
	// (2*100/5+2)*100*40/100/50 + 2 = 35, with STAB 52 on the top roll.
	if rolls[15] != 52 {
		t.Errorf("crit top roll = %d, want 52 (doubled level, boosts ignored)", rolls[15])
	}
}
