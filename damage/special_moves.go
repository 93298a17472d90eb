package damage

import (
	"github.com/nicoberrocal/pokecalc/abilities"
	"github.com/nicoberrocal/pokecalc/battle"
	"github.com/nicoberrocal/pokecalc/gen"
	"github.com/nicoberrocal/pokecalc/moveset"
	"github.com/nicoberrocal/pokecalc/types"
)

// applySpecialMoves rewrites ctx in place for the handful of moves whose
// type, base power, category, or effectiveness depends on battle state in
// a way the ordinary ability/item hook chain cannot express, per
// original_source/special_moves/mod.rs's dispatch list and spec.md §4.4
// Phase 2. Moves not named here pass through unchanged.
func applySpecialMoves(ctx *Context) {
	switch ctx.MoveID {
	case moveset.Struggle:
		ctx.Effectiveness = types.Neutral
		ctx.HasSTAB = false
		ctx.BasePower = 50
	case moveset.WeatherBall:
		applyWeatherBall(ctx)
	case moveset.FlyingPress:
		applyFlyingPress(ctx)
	case moveset.ThousandArrows:
		applyThousandArrows(ctx)
	case moveset.FreezeDry:
		applyFreezeDry(ctx)
	}
}

// applyWeatherBall rewrites the move's type and base power to match
// active weather, and recomputes STAB and effectiveness against the new
// type. Forecast grants Weather Ball's STAB to Castform even though
// Castform's own typing (plain Normal outside of weather) would not
// normally qualify, matching original_source's explicit Forecast
// exception rather than relying on the ability changing Castform's
// typing directly.
func applyWeatherBall(ctx *Context) {
	var newType types.Type
	switch ctx.State.Weather {
	case battle.Sun, battle.HarshSun:
		newType = types.Fire
	case battle.Rain, battle.HeavyRain:
		newType = types.Water
	case battle.Sand:
		newType = types.Rock
	case battle.Hail, battle.Snow:
		newType = types.Ice
	default:
		return
	}

	ctx.MoveType = newType
	ctx.BasePower = 100
	if !ctx.Gen.UsesPhysicalSpecialSplit() {
		if gen.IsPhysicalByType(newType) {
			ctx.Category = moveset.Physical
		} else {
			ctx.Category = moveset.Special
		}
	}

	atk := &ctx.State.Entities[ctx.Attacker]
	isForecastWeather := ctx.State.Weather != battle.Sand
	ctx.HasSTAB = atk.HasType(newType) || (ctx.AttackerAbility == abilities.Forecast && isForecastWeather)

	def := &ctx.State.Entities[ctx.Defender]
	ctx.Effectiveness = ctx.Gen.TypeEffectiveness(newType, def.Type1, def.Type2)
}

// applyFlyingPress combines the move's own Fighting-type effectiveness
// with a second, independent Flying-type effectiveness lookup against the
// same defender, matching its real-game dual-type-move behavior.
func applyFlyingPress(ctx *Context) {
	def := &ctx.State.Entities[ctx.Defender]
	flyingEff := ctx.Gen.TypeEffectiveness(types.Flying, def.Type1, def.Type2)
	ctx.Effectiveness = uint8(uint16(ctx.Effectiveness) * uint16(flyingEff) / uint16(types.Neutral))
}

// applyThousandArrows recomputes effectiveness treating the defender's
// Flying type slot(s) as Normal instead, which is how the move hits
// otherwise-immune Flying-types (Ground is never super effective against
// Normal). A defender without a Flying type is left untouched, so an
// ability-granted Ground immunity such as Levitate still applies.
func applyThousandArrows(ctx *Context) {
	def := &ctx.State.Entities[ctx.Defender]
	t1, t2 := def.Type1, def.Type2
	if t1 != types.Flying && t2 != types.Flying {
		return
	}
	if t1 == types.Flying {
		t1 = types.Normal
	}
	if t2 == types.Flying {
		t2 = types.Normal
	}
	ctx.Effectiveness = ctx.Gen.TypeEffectiveness(types.Ground, t1, t2)
}

// applyFreezeDry multiplies the whole combined effectiveness by 4 against
// any Water-typed defender, turning the resisted Water cell into a super
// effective one; the result is capped at types.Quadruple, the composite
// effectiveness scale's maximum.
func applyFreezeDry(ctx *Context) {
	def := &ctx.State.Entities[ctx.Defender]
	if def.Type1 != types.Water && def.Type2 != types.Water {
		return
	}
	v := uint16(ctx.Effectiveness) * 4
	if v > uint16(types.Quadruple) {
		v = uint16(types.Quadruple)
	}
	ctx.Effectiveness = uint8(v)
}
