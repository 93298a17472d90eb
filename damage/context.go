// Package damage implements the generation-aware damage calculation
// pipeline spec.md §4.4 describes: context construction, type-effectiveness
// resolution with its ability/item overrides, the fixed-damage and
// special-move shortcuts, base power, effective stats, the base-damage
// formula, and the sixteen-roll final chain. Every exported entry point
// takes a frozen *battle.BattleState and returns a value; nothing here
// mutates the state it is handed.
package damage

import (
	"github.com/nicoberrocal/pokecalc/abilities"
	"github.com/nicoberrocal/pokecalc/battle"
	"github.com/nicoberrocal/pokecalc/effects"
	"github.com/nicoberrocal/pokecalc/gen"
	"github.com/nicoberrocal/pokecalc/items"
	"github.com/nicoberrocal/pokecalc/moveset"
	"github.com/nicoberrocal/pokecalc/types"
)

// Context is the resolved, pre-computed state one damage calculation
// operates on: the move's effective type and category after type-changing
// abilities and generation category rules, STAB eligibility, grounding for
// both participants, the Mold-Breaker-adjusted defender ability, and the
// type-effectiveness result. It corresponds to original_source's
// DamageContext, restructured as a plain value the pipeline functions
// thread through rather than a method-heavy struct.
type Context struct {
	Gen      gen.Generation
	State    *battle.BattleState
	Attacker int
	Defender int

	MoveID   moveset.MoveID
	MoveData moveset.Move
	MoveType types.Type
	Category moveset.Category
	BasePower uint16

	IsCrit   bool
	IsSpread bool

	AttackerGrounded bool
	DefenderGrounded bool

	Effectiveness uint8
	HasSTAB       bool
	HasAdaptability bool
	IsTeraStab    bool

	AttackerAbility abilities.AbilityID
	// DefenderAbility is already rewritten to abilities.None when the
	// attacker has Mold Breaker/Teravolt/Turboblaze and the defender's
	// real ability is breakable; every later phase reads this field and
	// never abilities.None-checks Mold Breaker again.
	DefenderAbility abilities.AbilityID
}

// NewContext resolves a Context for one hit of moveID from attacker
// against defender. attacker and defender are flat battle.EntityIndex
// values. isCrit is decided by the caller (spec.md's damage calculation
// is crit-parameterized, not crit-rolling: rolling a crit is a Non-goal
// a turn-sequencing layer above this package would own).
func NewContext(g gen.Generation, state *battle.BattleState, attacker, defender int, moveID moveset.MoveID, isCrit, isSpread bool) Context {
	moveData := moveset.Data(moveID)
	atk := &state.Entities[attacker]
	def := &state.Entities[defender]
	attackerAbility := atk.Ability

	moveType := resolveMoveType(attackerAbility, moveData)
	hasStab := atk.HasType(moveType)
	hasAdaptability := attackerAbility == abilities.Adaptability

	attackerGrounded := isGrounded(state, attacker)
	defenderGrounded := isGrounded(state, defender)

	defenderAbility := def.Ability
	hasMoldBreaker := attackerAbility == abilities.Moldbreaker ||
		attackerAbility == abilities.Teravolt ||
		attackerAbility == abilities.Turboblaze
	if hasMoldBreaker && defenderAbility.IsBreakable() {
		defenderAbility = abilities.None
	}

	effectiveness := computeEffectiveness(g, state, attackerAbility, moveType, defenderGrounded, defender)
	if effectiveness > 0 {
		if hooks := effects.AbilityHooksFor(defenderAbility); hooks != nil && hooks.OnTypeImmunity != nil {
			if hooks.OnTypeImmunity(state, defender, moveType) {
				effectiveness = 0
			}
		}
	}

	category := resolveCategory(g, moveData, moveType)

	return Context{
		Gen:              g,
		State:            state,
		Attacker:         attacker,
		Defender:         defender,
		MoveID:           moveID,
		MoveData:         moveData,
		MoveType:         moveType,
		Category:         category,
		BasePower:        moveData.Power,
		IsCrit:           isCrit,
		IsSpread:         isSpread,
		AttackerGrounded: attackerGrounded,
		DefenderGrounded: defenderGrounded,
		Effectiveness:    effectiveness,
		HasSTAB:          hasStab,
		HasAdaptability:  hasAdaptability,
		AttackerAbility:  attackerAbility,
		DefenderAbility:  defenderAbility,
	}
}

// resolveMoveType applies the type-changing ability family
// (Aerilate/Pixilate/Refrigerate/Galvanize only rewrite a Normal-type
// move; Normalize rewrites every move; Liquid Voice rewrites sound moves)
// before anything else touches the move's type, matching
// original_source/context.rs's ordering.
func resolveMoveType(ability abilities.AbilityID, move moveset.Move) types.Type {
	switch ability {
	case abilities.Aerilate:
		if move.Type == types.Normal {
			return types.Flying
		}
	case abilities.Pixilate:
		if move.Type == types.Normal {
			return types.Fairy
		}
	case abilities.Refrigerate:
		if move.Type == types.Normal {
			return types.Ice
		}
	case abilities.Galvanize:
		if move.Type == types.Normal {
			return types.Electric
		}
	case abilities.Normalize:
		return types.Normal
	case abilities.Liquidvoice:
		if move.Flags.Has(moveset.Sound) {
			return types.Water
		}
	}
	return move.Type
}

// resolveCategory derives the move's damage class: Status moves always
// stay Status, generations with the modern split use the move's own
// category, and earlier generations derive Physical/Special from the
// move's (possibly ability-rewritten) type.
func resolveCategory(g gen.Generation, move moveset.Move, moveType types.Type) moveset.Category {
	if move.Category == moveset.Status {
		return moveset.Status
	}
	if g.UsesPhysicalSpecialSplit() {
		return move.Category
	}
	if gen.IsPhysicalByType(moveType) {
		return moveset.Physical
	}
	return moveset.Special
}

// isGrounded resolves whether entity idx is grounded for terrain and
// Ground-move purposes: Gravity and Iron Ball force grounding
// unconditionally, an ability's OnCheckGrounded hook (Levitate) can
// override typing-based grounding, and typing/Air Balloon decide the
// rest, per original_source/context.rs's is_grounded.
func isGrounded(state *battle.BattleState, idx int) bool {
	e := &state.Entities[idx]
	if state.Gravity || e.Item == items.IronBall {
		return true
	}
	if hooks := effects.AbilityHooksFor(e.Ability); hooks != nil && hooks.OnCheckGrounded != nil {
		if grounded, overridden := hooks.OnCheckGrounded(state, idx); overridden {
			return grounded
		}
	}
	return e.IsGroundedByTyping()
}

// boostIndexForStat maps a Stats-array index (1=Atk, 2=Def, 3=SpA, 4=SpD)
// to its corresponding battle.Boost stage slot.
func boostIndexForStat(statIdx int) battle.Boost {
	switch statIdx {
	case 1:
		return battle.AtkBoost
	case 2:
		return battle.DefBoost
	case 3:
		return battle.SpABoost
	case 4:
		return battle.SpDBoost
	default:
		return battle.AtkBoost
	}
}
