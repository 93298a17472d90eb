package damage

import (
	"github.com/nicoberrocal/pokecalc/battle"
	"github.com/nicoberrocal/pokecalc/effects"
	"github.com/nicoberrocal/pokecalc/modifier"
	"github.com/nicoberrocal/pokecalc/moveset"
)

// calculateStandard runs Phases 3 through 7 of the damage pipeline for
// every generation except Gen 1, which has its own wholesale formula in
// gen.CalculateGen1. extraPowerMod lets a multi-hit move's later hits
// (Parental Bond) rescale the computed pre-random base damage before the
// final roll loop without duplicating the whole pipeline; pass
// modifier.One for a single, ordinary hit. It returns the sixteen
// 85%-100% damage rolls.
func calculateStandard(ctx *Context, extraPowerMod modifier.Modifier) [16]uint16 {
	computeBasePower(ctx)
	attack, defense := computeEffectiveStats(ctx)

	baseDamage := modifier.GetBaseDamage(ctx.State.Entities[ctx.Attacker].Level, ctx.BasePower, attack, defense, ctx.Gen.AddsTwoInBaseDamage())
	baseDamage = applyPreRandomChain(ctx, baseDamage)
	if extraPowerMod != modifier.One {
		baseDamage = modifier.Apply(baseDamage, extraPowerMod)
	}

	var rolls [16]uint16
	for i := 0; i < 16; i++ {
		rolls[i] = finalizeRoll(ctx, baseDamage, uint8(i))
	}
	return rolls
}

// applyPreRandomChain applies the screens, spread, weather, and critical
// hit multipliers in that order (spec.md §4.4 Phase 6, Gen 5+ ordering;
// this engine does not model the Gen 3-4 reordering of burn/screens — see
// gen.Generation.AddsTwoInBaseDamage and computeEffectiveStats). Screens
// never apply on a critical hit.
func applyPreRandomChain(ctx *Context, baseDamage uint32) uint32 {
	isPhysical := ctx.Category == moveset.Physical
	if !ctx.IsCrit && ctx.State.HasScreen(ctx.Defender/battle.MaxTeamSize, isPhysical) {
		if ctx.IsSpread {
			baseDamage = modifier.Apply(baseDamage, modifier.ScreensDoubles)
		} else {
			baseDamage = modifier.Apply(baseDamage, modifier.Half)
		}
	}
	if ctx.IsSpread {
		// 0.75x spread-move penalty; FilterMod (3072 == 0.75x) doubles as
		// this fraction's fixed-point value.
		baseDamage = modifier.Apply(baseDamage, modifier.FilterMod)
	}
	baseDamage = modifier.Apply(baseDamage, ctx.Gen.WeatherModifier(ctx.State.Weather, ctx.MoveType))
	if ctx.IsCrit {
		baseDamage = modifier.ApplyFloor(baseDamage, uint32(ctx.Gen.CritMultiplier()), uint32(modifier.One))
	}
	return baseDamage
}

// finalizeRoll applies one random roll and the full final-modifier chain:
// STAB, type effectiveness, then the registered attacker and defender
// final-mod hooks (Life Orb, Expert Belt, Neuroforce, Multiscale, Filter,
// Fluffy, ...), and saturates to a uint16 with the "at least 1 damage on
// a landing hit, exactly 0 on a miss/immune hit" floor spec.md's
// invariants require.
func finalizeRoll(ctx *Context, baseDamage uint32, rollIndex uint8) uint16 {
	dmg := modifier.ApplyRandomRoll(baseDamage, rollIndex)

	if ctx.HasSTAB {
		dmg = modifier.Apply(dmg, ctx.Gen.StabMultiplier(ctx.HasAdaptability, ctx.IsTeraStab))
	}
	if ctx.Effectiveness != 4 {
		dmg = dmg * uint32(ctx.Effectiveness) / 4
	}

	atk := &ctx.State.Entities[ctx.Attacker]
	def := &ctx.State.Entities[ctx.Defender]
	isContact := ctx.MoveData.Flags.Has(moveset.Contact)

	if hooks := effects.AbilityHooksFor(ctx.AttackerAbility); hooks != nil && hooks.OnAttackerFinalMod != nil {
		dmg = hooks.OnAttackerFinalMod(ctx.State, ctx.Attacker, ctx.Defender, ctx.Effectiveness, ctx.IsCrit, dmg)
	}
	if hooks := effects.ItemHooksFor(atk.Item); hooks != nil && hooks.OnAttackerFinalMod != nil {
		dmg = hooks.OnAttackerFinalMod(ctx.State, ctx.Attacker, ctx.Defender, ctx.Effectiveness, ctx.IsCrit, dmg)
	}
	if hooks := effects.AbilityHooksFor(ctx.DefenderAbility); hooks != nil && hooks.OnDefenderFinalMod != nil {
		dmg = hooks.OnDefenderFinalMod(ctx.State, ctx.Attacker, ctx.Defender, ctx.Effectiveness, ctx.MoveType, ctx.Category, isContact, dmg)
	}
	if hooks := effects.ItemHooksFor(def.Item); hooks != nil && hooks.OnDefenderFinalMod != nil {
		dmg = hooks.OnDefenderFinalMod(ctx.State, ctx.Attacker, ctx.Defender, ctx.Effectiveness, ctx.MoveType, ctx.Category, isContact, dmg)
	}

	if ctx.Effectiveness == 0 {
		return 0
	}
	if dmg > 0xFFFF {
		dmg = 0xFFFF
	}
	if dmg < 1 {
		dmg = 1
	}
	return uint16(dmg)
}
