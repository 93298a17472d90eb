package effects

import (
	"testing"

	"github.com/nicoberrocal/pokecalc/abilities"
	"github.com/nicoberrocal/pokecalc/battle"
	"github.com/nicoberrocal/pokecalc/items"
	"github.com/nicoberrocal/pokecalc/moveset"
)

func TestIntimidateLowersOpposingAttack(t *testing.T) {
	var state battle.BattleState
	state.Entity(0, 0).Ability = abilities.Intimidate
	hooks := AbilityHooksFor(abilities.Intimidate)
	if hooks == nil || hooks.OnSwitchIn == nil {
		t.Fatal("Intimidate should register OnSwitchIn")
	}
	hooks.OnSwitchIn(&state, battle.EntityIndex(0, 0))
	if got := state.Entity(1, 0).Boosts[battle.AtkBoost]; got != -1 {
		t.Errorf("opponent Atk boost = %d, want -1", got)
	}
}

func TestIntimidateClampsAtMinusSix(t *testing.T) {
	var state battle.BattleState
	state.Entity(1, 0).Boosts[battle.AtkBoost] = -6
	hooks := AbilityHooksFor(abilities.Intimidate)
	hooks.OnSwitchIn(&state, battle.EntityIndex(0, 0))
	if got := state.Entity(1, 0).Boosts[battle.AtkBoost]; got != -6 {
		t.Errorf("Atk boost should clamp at -6, got %d", got)
	}
}

func TestPranksterDoesNotBoostDamagingMove(t *testing.T) {
	hooks := AbilityHooksFor(abilities.Prankster)
	var state battle.BattleState
	if got := hooks.OnModifyPriority(&state, 0, moveset.Tackle, 0); got != 0 {
		t.Errorf("Prankster should not boost a damaging move, got %d", got)
	}
}

func TestLevitateGroundImmunity(t *testing.T) {
	hooks := AbilityHooksFor(abilities.Levitate)
	var state battle.BattleState
	if grounded, overridden := hooks.OnCheckGrounded(&state, 0); grounded || !overridden {
		t.Errorf("Levitate should override grounding to false, got grounded=%v overridden=%v", grounded, overridden)
	}
}

func TestChoiceBandBoostsPhysicalOnly(t *testing.T) {
	hooks := ItemHooksFor(items.ChoiceBand)
	var state battle.BattleState
	got := hooks.OnModifyAttack(&state, 0, moveset.Tackle, moveset.Physical, 100)
	if got != 150 {
		t.Errorf("Choice Band should apply 1.5x to physical attack, got %d", got)
	}
	got = hooks.OnModifyAttack(&state, 0, moveset.Tackle, moveset.Special, 100)
	if got != 100 {
		t.Errorf("Choice Band should not affect special attack, got %d", got)
	}
}

func TestLifeOrbUsesExactLifeOrbConstant(t *testing.T) {
	hooks := ItemHooksFor(items.LifeOrb)
	var state battle.BattleState
	got := hooks.OnAttackerFinalMod(&state, 0, 1, 4, false, 4096)
	if got != 5324 {
		t.Errorf("Life Orb should scale by the 5324 constant, got %d", got)
	}
}

func TestUnregisteredAbilityHasNoHooks(t *testing.T) {
	if AbilityHooksFor(abilities.None) != nil {
		t.Errorf("abilities.None should have no registered hooks")
	}
}
