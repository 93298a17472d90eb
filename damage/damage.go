package damage

import (
	"github.com/nicoberrocal/pokecalc/battle"
	"github.com/nicoberrocal/pokecalc/effects"
	"github.com/nicoberrocal/pokecalc/gen"
	"github.com/nicoberrocal/pokecalc/modifier"
	"github.com/nicoberrocal/pokecalc/moveset"
	"github.com/nicoberrocal/pokecalc/types"
)

// Result is the outcome of one damage calculation: the sixteen
// 85%-100% rolls and the type-effectiveness value they were scaled by
// (reported on the 4-scale: 0, 1, 2, 4, 8, or 16 meaning 0x through 4x).
type Result struct {
	Rolls         [16]uint16
	Effectiveness uint8
}

// Overrides lets a caller supply an explicit base power and/or move type
// instead of resolving them from the moveset table, for moves this
// engine's curated table does not carry or for fixture inputs that pin
// an exact value. A nil field falls back to the table/ability-derived
// value.
type Overrides struct {
	BasePower *uint16
	MoveType  *types.Type
}

// CalculateDamage computes the sixteen damage rolls and the resulting
// type effectiveness for one hit of moveID, generation g, from attacker
// against defender (both flat battle.EntityIndex values). isCrit is
// decided by the caller; isSpread marks a move hitting multiple targets
// (the 0.75x spread penalty and the 2/3-rather-than-1/2 screens discount
// only apply when true).
func CalculateDamage(g gen.Generation, state *battle.BattleState, attacker, defender int, moveID moveset.MoveID, isCrit, isSpread bool) Result {
	return calculateOne(g, state, attacker, defender, moveID, isCrit, isSpread, nil, modifier.One)
}

// CalculateDamageWithOverrides is CalculateDamage with an explicit base
// power and/or move type substituted for the table values after the
// Phase 2 special-move overrides — a Z-Move or Max Move's
// generation-scaled base power, or a move outside this engine's curated
// table, can be supplied this way without adding a table entry for it.
// The base-power override replaces the table value before Phase 3, so the
// ability/item base-power hooks still apply on top of it, and for the
// state-dependent variable-power moves it is replaced by their formula.
func CalculateDamageWithOverrides(g gen.Generation, state *battle.BattleState, attacker, defender int, moveID moveset.MoveID, isCrit, isSpread bool, overrides Overrides) Result {
	return calculateOne(g, state, attacker, defender, moveID, isCrit, isSpread, &overrides, modifier.One)
}

// CalculateMultiHit computes one Result per hit of a move that strikes
// more than once because of the attacker's ability (Parental Bond); a
// move Parental Bond does not double (Status moves, variable-power
// moves, Struggle) returns a single-element slice identical to
// CalculateDamage's result. This is the Go equivalent of
// original_source/formula.rs's calculate_hit closure, called once per
// hit with a different pre-computed base-damage modifier instead of being
// re-entered recursively. Fixed-damage moves repeat the same fixed value
// on every hit; the modifier is not applied to them.
func CalculateMultiHit(g gen.Generation, state *battle.BattleState, attacker, defender int, moveID moveset.MoveID, isCrit, isSpread bool) []Result {
	first := calculateOne(g, state, attacker, defender, moveID, isCrit, isSpread, nil, modifier.One)
	results := []Result{first}

	atk := &state.Entities[attacker]
	hooks := effects.AbilityHooksFor(atk.Ability)
	if hooks == nil || hooks.OnModifyMultiHit == nil {
		return results
	}
	extraMods := hooks.OnModifyMultiHit(state, attacker, defender, moveID)
	for _, m := range extraMods {
		results = append(results, calculateOne(g, state, attacker, defender, moveID, isCrit, isSpread, nil, m))
	}
	return results
}

// calculateOne is the shared implementation behind every exported entry
// point: Phase 0's status-move and fixed-damage shortcuts, then context
// construction and the Phase 2 special-move overrides, then Gen 1's
// wholesale formula or the standard Phase 3-7 pipeline with an optional
// extra base-damage modifier for a later multi-hit.
func calculateOne(g gen.Generation, state *battle.BattleState, attacker, defender int, moveID moveset.MoveID, isCrit, isSpread bool, overrides *Overrides, extraPowerMod modifier.Modifier) Result {
	move := moveset.Data(moveID)
	if move.Category == moveset.Status {
		return Result{Effectiveness: types.Neutral}
	}

	if dmg, eff, matched := getFixedDamage(moveID, state, attacker, defender); matched {
		var rolls [16]uint16
		for i := range rolls {
			rolls[i] = dmg
		}
		return Result{Rolls: rolls, Effectiveness: eff}
	}

	ctx := NewContext(g, state, attacker, defender, moveID, isCrit, isSpread)
	applySpecialMoves(&ctx)

	if overrides != nil {
		if overrides.MoveType != nil {
			ctx.MoveType = *overrides.MoveType
			atk := &state.Entities[attacker]
			ctx.HasSTAB = atk.HasType(ctx.MoveType)
			ctx.Effectiveness = computeEffectiveness(g, state, ctx.AttackerAbility, ctx.MoveType, ctx.DefenderGrounded, defender)
			if ctx.Effectiveness > 0 {
				if hooks := effects.AbilityHooksFor(ctx.DefenderAbility); hooks != nil && hooks.OnTypeImmunity != nil {
					if hooks.OnTypeImmunity(state, defender, ctx.MoveType) {
						ctx.Effectiveness = 0
					}
				}
			}
		}
		if overrides.BasePower != nil {
			ctx.BasePower = *overrides.BasePower
		}
	}

	if ctx.BasePower == 0 && move.Power == 0 && !move.Flags.Has(moveset.VariablePower) {
		return Result{Effectiveness: ctx.Effectiveness}
	}

	if g == gen.Gen1 {
		rolls, effectiveness := gen.CalculateGen1(state, attacker, defender, ctx.MoveType, ctx.BasePower, isCrit)
		return Result{Rolls: rolls, Effectiveness: effectiveness}
	}

	rolls := calculateStandard(&ctx, extraPowerMod)
	return Result{Rolls: rolls, Effectiveness: ctx.Effectiveness}
}
