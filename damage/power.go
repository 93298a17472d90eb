package damage

import (
	"github.com/nicoberrocal/pokecalc/battle"
	"github.com/nicoberrocal/pokecalc/effects"
	"github.com/nicoberrocal/pokecalc/items"
	"github.com/nicoberrocal/pokecalc/modifier"
	"github.com/nicoberrocal/pokecalc/moveset"
)

// computeBasePower resolves ctx.BasePower's final value: state-dependent
// variable-power formulas first (they replace the table's sentinel
// value entirely), then the registered ability and item base-power
// hooks, then the conditional move-specific multipliers (Knock Off,
// Venoshock, Hex, Brine) that key off defender state rather than a move
// flag an ability hook could generalize over. This mirrors
// original_source/special_moves/power.rs's documented intent (its own
// body was reduced to a placeholder once the logic moved to per-ability
// hooks); the state-dependent formulas below are authored directly from
// spec.md §4.4 Phase 3 since no Rust body survives for them.
func computeBasePower(ctx *Context) {
	bp := computeVariablePower(ctx)

	atk := &ctx.State.Entities[ctx.Attacker]
	if hooks := effects.AbilityHooksFor(ctx.AttackerAbility); hooks != nil && hooks.OnModifyBasePower != nil {
		bp = uint32(hooks.OnModifyBasePower(ctx.State, ctx.Attacker, ctx.Defender, ctx.MoveData, ctx.MoveType, uint16(bp)))
	}
	if hooks := effects.ItemHooksFor(atk.Item); hooks != nil && hooks.OnModifyBasePower != nil {
		bp = uint32(hooks.OnModifyBasePower(ctx.State, ctx.Attacker, ctx.Defender, ctx.MoveData, ctx.MoveType, uint16(bp)))
	}

	bp = applyConditionalMoveBP(ctx, bp)

	if bp > 0xFFFF {
		bp = 0xFFFF
	}
	ctx.BasePower = uint16(bp)
}

// computeVariablePower returns the move's base power before any
// ability/item hook touches it. Moves with a static table value pass
// through unchanged; the ten state-dependent moves recompute from live
// battle state every call, matching the "never cache a variable-power
// value across turns" invariant a stateful engine would need.
func computeVariablePower(ctx *Context) uint32 {
	atk := &ctx.State.Entities[ctx.Attacker]
	def := &ctx.State.Entities[ctx.Defender]

	switch ctx.MoveID {
	case moveset.Eruption, moveset.WaterSpout:
		if atk.MaxHP == 0 {
			return 1
		}
		bp := uint32(150) * uint32(atk.HP) / uint32(atk.MaxHP)
		if bp < 1 {
			bp = 1
		}
		return bp
	case moveset.LowKick, moveset.GrassKnot:
		return weightTieredPower(def.WeightKG10)
	case moveset.HeavySlam, moveset.HeatCrash:
		return weightRatioPower(atk.WeightKG10, def.WeightKG10)
	case moveset.ElectroBall:
		return electroBallPower(atk.Stats[5], def.Stats[5])
	case moveset.GyroBall:
		return gyroBallPower(atk.Stats[5], def.Stats[5])
	case moveset.Flail, moveset.Reversal:
		return hpPercentPower(atk.HP, atk.MaxHP)
	default:
		return uint32(ctx.BasePower)
	}
}

// weightTieredPower implements Low Kick/Grass Knot's flat weight-class
// table: heavier targets take more power regardless of the attacker's
// own weight.
func weightTieredPower(defWeightKG10 uint16) uint32 {
	kg := defWeightKG10 / 10
	switch {
	case kg < 10:
		return 20
	case kg < 25:
		return 40
	case kg < 50:
		return 60
	case kg < 100:
		return 80
	case kg < 200:
		return 100
	default:
		return 120
	}
}

// weightRatioPower implements Heavy Slam/Heat Crash's attacker-to-defender
// weight ratio table.
func weightRatioPower(atkWeightKG10, defWeightKG10 uint16) uint32 {
	if defWeightKG10 == 0 {
		return 40
	}
	ratioPct := uint32(atkWeightKG10) * 100 / uint32(defWeightKG10)
	switch {
	case ratioPct >= 500:
		return 120
	case ratioPct >= 400:
		return 100
	case ratioPct >= 300:
		return 80
	case ratioPct >= 200:
		return 60
	default:
		return 40
	}
}

// electroBallPower implements Electro Ball's speed-ratio table: the
// faster the attacker is relative to the defender, the higher the power.
func electroBallPower(atkSpeed, defSpeed uint16) uint32 {
	if defSpeed == 0 {
		return 150
	}
	ratio := uint32(atkSpeed) / uint32(defSpeed)
	switch {
	case ratio >= 4:
		return 150
	case ratio >= 3:
		return 120
	case ratio >= 2:
		return 80
	case ratio >= 1:
		return 60
	default:
		return 40
	}
}

// gyroBallPower implements Gyro Ball's inverse speed-ratio formula: the
// slower the attacker is relative to the defender, the higher the power,
// capped at 150 and floored at 1 so a faster attacker never deals zero.
func gyroBallPower(atkSpeed, defSpeed uint16) uint32 {
	if atkSpeed == 0 {
		return 150
	}
	bp := uint32(25) * uint32(defSpeed) / uint32(atkSpeed)
	if bp > 150 {
		bp = 150
	}
	if bp < 1 {
		bp = 1
	}
	return bp
}

// hpPercentPower implements Flail/Reversal's HP-remaining-percentage
// table: the lower the attacker's HP fraction, the higher the power.
func hpPercentPower(hp, maxHP uint16) uint32 {
	if maxHP == 0 {
		return 200
	}
	pct := uint32(hp) * 100 / uint32(maxHP)
	switch {
	case pct <= 1:
		return 200
	case pct <= 4:
		return 150
	case pct <= 9:
		return 100
	case pct <= 20:
		return 80
	case pct <= 34:
		return 40
	default:
		return 20
	}
}

// applyConditionalMoveBP applies the four moves whose base power doubles
// or increases 1.5x based on defender state that no single ability flag
// generalizes over.
func applyConditionalMoveBP(ctx *Context, bp uint32) uint32 {
	def := &ctx.State.Entities[ctx.Defender]
	switch ctx.MoveID {
	case moveset.KnockOff:
		if def.Item != items.None && !items.Data(def.Item).Unremovable {
			bp = modifier.Apply(bp, modifier.OnePointFive)
		}
	case moveset.Venoshock:
		if def.Status == battle.Poison || def.Status == battle.Toxic {
			bp = modifier.Apply(bp, modifier.Double)
		}
	case moveset.Hex:
		if def.Status != battle.StatusNone {
			bp = modifier.Apply(bp, modifier.Double)
		}
	case moveset.Brine:
		if def.MaxHP > 0 && def.HP*2 <= def.MaxHP {
			bp = modifier.Apply(bp, modifier.Double)
		}
	}
	return bp
}
