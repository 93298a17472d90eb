package damage

import (
	"testing"

	"github.com/nicoberrocal/pokecalc/abilities"
	"github.com/nicoberrocal/pokecalc/battle"
	"github.com/nicoberrocal/pokecalc/gen"
	"github.com/nicoberrocal/pokecalc/items"
	"github.com/nicoberrocal/pokecalc/moveset"
	"github.com/nicoberrocal/pokecalc/types"
)

func newState() *battle.BattleState {
	state := &battle.BattleState{}
	state.Sides[0].TeamSize = 1
	state.Sides[1].TeamSize = 1
	for i := range state.Entities {
		e := &state.Entities[i]
		e.Level = 100
		e.Stats = [6]uint16{200, 150, 120, 130, 110, 100}
		e.HP = 200
		e.MaxHP = 200
		e.Type1 = types.Normal
		e.Type2 = types.Normal
	}
	return state
}

func TestTackleIsNotStatusCategory(t *testing.T) {
	state := newState()
	// The curated move table has no Status-category move, so the Phase 0
	// status early-out cannot be driven from here; this only checks that
	// Tackle is not classified as a Status move.
	if moveset.Data(moveset.Tackle).Category == moveset.Status {
		t.Fatal("Tackle must not be a status move in the fixture table")
	}
	_ = state
}

func TestSeismicTossGhostImmunity(t *testing.T) {
	state := newState()
	state.Entities[6].Type1 = types.Ghost
	state.Entities[6].Type2 = types.Ghost

	res := CalculateDamage(gen.Gen9, state, 0, 6, moveset.SeismicToss, false, false)
	if res.Effectiveness != types.Immune {
		t.Fatalf("expected immune effectiveness, got %d", res.Effectiveness)
	}
	for _, r := range res.Rolls {
		if r != 0 {
			t.Fatalf("expected all rolls zero against a Ghost-type, got %d", r)
		}
	}
}

func TestSeismicTossDealsLevelDamage(t *testing.T) {
	state := newState()
	res := CalculateDamage(gen.Gen9, state, 0, 6, moveset.SeismicToss, false, false)
	for _, r := range res.Rolls {
		if r != 100 {
			t.Fatalf("expected fixed damage equal to attacker level (100), got %d", r)
		}
	}
}

func TestRollsAreMonotonicallyIncreasing(t *testing.T) {
	state := newState()
	res := CalculateDamage(gen.Gen9, state, 0, 6, moveset.Earthquake, false, false)
	for i := 1; i < 16; i++ {
		if res.Rolls[i] < res.Rolls[i-1] {
			t.Fatalf("roll %d (%d) is less than roll %d (%d)", i, res.Rolls[i], i-1, res.Rolls[i-1])
		}
	}
}

func TestDamageIsDeterministic(t *testing.T) {
	state := newState()
	a := CalculateDamage(gen.Gen9, state, 0, 6, moveset.Thunderbolt, false, false)
	b := CalculateDamage(gen.Gen9, state, 0, 6, moveset.Thunderbolt, false, false)
	if a != b {
		t.Fatalf("identical inputs produced different results: %+v vs %+v", a, b)
	}
}

func TestStateIsNotMutated(t *testing.T) {
	state := newState()
	before := *state
	CalculateDamage(gen.Gen9, state, 0, 6, moveset.Earthquake, false, false)
	if *state != before {
		t.Fatal("damage calculation mutated the battle state")
	}
}

func TestTypeImmunityZerosDamage(t *testing.T) {
	state := newState()
	state.Entities[6].Type1 = types.Ground
	state.Entities[6].Type2 = types.Ground

	res := CalculateDamage(gen.Gen9, state, 0, 6, moveset.Thunderbolt, false, false)
	if res.Effectiveness != types.Immune {
		t.Fatalf("expected immune, got %d", res.Effectiveness)
	}
	for _, r := range res.Rolls {
		if r != 0 {
			t.Fatalf("expected zero damage against a Ground-type, got %d", r)
		}
	}
}

func TestFreezeDrySuperEffectiveAgainstWater(t *testing.T) {
	state := newState()
	state.Entities[6].Type1 = types.Water
	state.Entities[6].Type2 = types.Water

	res := CalculateDamage(gen.Gen9, state, 0, 6, moveset.FreezeDry, false, false)
	if res.Effectiveness != types.Double {
		t.Fatalf("expected Freeze-Dry to be super effective against a pure Water-type, got %d", res.Effectiveness)
	}
}

func TestFreezeDryQuadrupleAgainstWaterDragon(t *testing.T) {
	state := newState()
	state.Entities[6].Type1 = types.Water
	state.Entities[6].Type2 = types.Dragon

	res := CalculateDamage(gen.Gen9, state, 0, 6, moveset.FreezeDry, false, false)
	// Ice is already super effective against Dragon on the standard
	// chart; Freeze-Dry's override multiplies the whole combined result
	// (not just the Water cell) by 4x and caps at Quadruple, so a
	// Water/Dragon defender takes the chart's maximum multiplier rather
	// than a plain Double.
	if res.Effectiveness != types.Quadruple {
		t.Fatalf("expected Quadruple effectiveness vs Water/Dragon, got %d", res.Effectiveness)
	}
}

func TestWeatherBallBecomesFireInSun(t *testing.T) {
	state := newState()
	state.Weather = battle.Sun
	state.Entities[6].Type1 = types.Grass
	state.Entities[6].Type2 = types.Grass

	res := CalculateDamage(gen.Gen9, state, 0, 6, moveset.WeatherBall, false, false)
	// Grass is weak to Fire: Double.
	if res.Effectiveness != types.Double {
		t.Fatalf("expected Weather Ball (Fire in Sun) to be super effective against Grass, got %d", res.Effectiveness)
	}
}

func TestHugePowerDoublesAttack(t *testing.T) {
	plain := newState()
	doubled := newState()
	doubled.Entities[0].Ability = abilities.HugePower

	rPlain := CalculateDamage(gen.Gen9, plain, 0, 6, moveset.Earthquake, false, false)
	rDoubled := CalculateDamage(gen.Gen9, doubled, 0, 6, moveset.Earthquake, false, false)
	if rDoubled.Rolls[0] <= rPlain.Rolls[0] {
		t.Fatalf("Huge Power should increase damage: plain=%d doubled=%d", rPlain.Rolls[0], rDoubled.Rolls[0])
	}
}

func TestBodyPressUsesDefenseStat(t *testing.T) {
	state := newState()
	state.Entities[0].Stats[1] = 50 // low Attack
	state.Entities[0].Stats[2] = 300 // high Defense

	res := CalculateDamage(gen.Gen9, state, 0, 6, moveset.BodyPress, false, false)
	if res.Rolls[0] == 0 {
		t.Fatal("Body Press should deal damage scaled from Defense even with a low Attack stat")
	}
}

func TestParentalBondSecondHitIsWeaker(t *testing.T) {
	state := newState()
	state.Entities[0].Ability = abilities.ParentalBond

	results := CalculateMultiHit(gen.Gen9, state, 0, 6, moveset.Earthquake, false, false)
	if len(results) != 2 {
		t.Fatalf("expected two hits from Parental Bond, got %d", len(results))
	}
	if results[1].Rolls[0] >= results[0].Rolls[0] {
		t.Fatalf("second Parental Bond hit should deal less damage: first=%d second=%d", results[0].Rolls[0], results[1].Rolls[0])
	}
}

func TestParentalBondDoesNotDoubleStruggle(t *testing.T) {
	state := newState()
	state.Entities[0].Ability = abilities.ParentalBond

	results := CalculateMultiHit(gen.Gen9, state, 0, 6, moveset.Struggle, false, false)
	if len(results) != 1 {
		t.Fatalf("Struggle should never be doubled by Parental Bond, got %d hits", len(results))
	}
}

func TestCritIgnoresNegativeAttackerBoost(t *testing.T) {
	lowered := newState()
	lowered.Entities[0].Boosts[battle.AtkBoost] = -6

	normal := CalculateDamage(gen.Gen9, lowered, 0, 6, moveset.Earthquake, false, false)
	crit := CalculateDamage(gen.Gen9, lowered, 0, 6, moveset.Earthquake, true, false)
	if crit.Rolls[0] <= normal.Rolls[0] {
		t.Fatalf("a crit should ignore the attacker's lowered Attack stage: normal=%d crit=%d", normal.Rolls[0], crit.Rolls[0])
	}
}

func TestBurnHalvesPhysicalAttack(t *testing.T) {
	healthy := newState()
	burned := newState()
	burned.Entities[0].Status = battle.Burn

	rHealthy := CalculateDamage(gen.Gen9, healthy, 0, 6, moveset.Earthquake, false, false)
	rBurned := CalculateDamage(gen.Gen9, burned, 0, 6, moveset.Earthquake, false, false)
	if rBurned.Rolls[0] >= rHealthy.Rolls[0] {
		t.Fatalf("burn should roughly halve physical damage: healthy=%d burned=%d", rHealthy.Rolls[0], rBurned.Rolls[0])
	}
}

func TestGutsIgnoresBurnAttackHalving(t *testing.T) {
	burned := newState()
	burned.Entities[0].Status = battle.Burn
	burned.Entities[0].Ability = abilities.Guts

	rBurnedGuts := CalculateDamage(gen.Gen9, burned, 0, 6, moveset.Earthquake, false, false)

	plain := newState()
	plain.Entities[0].Status = battle.Burn
	rBurnedPlain := CalculateDamage(gen.Gen9, plain, 0, 6, moveset.Earthquake, false, false)

	if rBurnedGuts.Rolls[0] <= rBurnedPlain.Rolls[0] {
		t.Fatalf("Guts should boost damage above a plain burned attacker: guts=%d plain=%d", rBurnedGuts.Rolls[0], rBurnedPlain.Rolls[0])
	}
}

func TestGen1RoutesThroughWholesaleFormula(t *testing.T) {
	state := newState()
	res := CalculateDamage(gen.Gen1, state, 0, 6, moveset.Earthquake, false, false)
	if res.Rolls[15] == 0 {
		t.Fatal("Gen 1 Earthquake should deal nonzero damage against a neutral target")
	}
	for i := 1; i < 16; i++ {
		if res.Rolls[i] < res.Rolls[i-1] {
			t.Fatalf("Gen 1 rolls must stay monotonic: roll %d (%d) < roll %d (%d)", i, res.Rolls[i], i-1, res.Rolls[i-1])
		}
	}
}

func TestRingTargetNegatesImmunity(t *testing.T) {
	state := newState()
	state.Entities[6].Type1 = types.Ground
	state.Entities[6].Type2 = types.Ground
	state.Entities[6].Item = items.RingTarget

	res := CalculateDamage(gen.Gen9, state, 0, 6, moveset.Thunderbolt, false, false)
	if res.Effectiveness == types.Immune {
		t.Fatal("Ring Target should negate the Electric-vs-Ground immunity")
	}
}

func TestMoldBreakerIgnoresLevitate(t *testing.T) {
	// Levitate grants an ability-based Ground immunity independent of
	// typing; use a non-Flying, non-Ground-immune type so the test
	// isolates the ability check from the type chart's own Ground-vs-
	// Flying immunity cell.
	state := newState()
	state.Entities[6].Type1 = types.Electric
	state.Entities[6].Type2 = types.Electric
	state.Entities[6].Ability = abilities.Levitate
	state.Entities[0].Ability = abilities.Moldbreaker

	res := CalculateDamage(gen.Gen9, state, 0, 6, moveset.Earthquake, false, false)
	if res.Effectiveness == types.Immune {
		t.Fatal("Mold Breaker should suppress Levitate's Ground immunity")
	}
}

func TestLevitateGrantsGroundImmunityWithoutMoldBreaker(t *testing.T) {
	state := newState()
	state.Entities[6].Type1 = types.Electric
	state.Entities[6].Type2 = types.Electric
	state.Entities[6].Ability = abilities.Levitate

	res := CalculateDamage(gen.Gen9, state, 0, 6, moveset.Earthquake, false, false)
	if res.Effectiveness != types.Immune {
		t.Fatalf("Levitate should grant Ground immunity absent Mold Breaker, got %d", res.Effectiveness)
	}
}

func TestMoldBreakerNeverSuppressesShadowShield(t *testing.T) {
	state := newState()
	state.Entities[6].Ability = abilities.ShadowShield
	state.Entities[0].Ability = abilities.Moldbreaker

	withBreaker := CalculateDamage(gen.Gen9, state, 0, 6, moveset.Earthquake, false, false)

	noBreaker := newState()
	noBreaker.Entities[6].Ability = abilities.ShadowShield
	withoutBreaker := CalculateDamage(gen.Gen9, noBreaker, 0, 6, moveset.Earthquake, false, false)

	if withBreaker.Rolls[0] != withoutBreaker.Rolls[0] {
		t.Fatalf("Shadow Shield's full-HP halving must survive Mold Breaker: with=%d without=%d", withBreaker.Rolls[0], withoutBreaker.Rolls[0])
	}
}

func TestEruptionScalesWithAttackerHP(t *testing.T) {
	full := newState()
	low := newState()
	low.Entities[0].HP = 1

	rFull := CalculateDamage(gen.Gen9, full, 0, 6, moveset.Eruption, false, false)
	rLow := CalculateDamage(gen.Gen9, low, 0, 6, moveset.Eruption, false, false)
	if rLow.Rolls[0] >= rFull.Rolls[0] {
		t.Fatalf("Eruption should deal less damage at low HP: full=%d low=%d", rFull.Rolls[0], rLow.Rolls[0])
	}
}

func TestGyroBallFavorsSlowerAttacker(t *testing.T) {
	slow := newState()
	slow.Entities[0].Stats[5] = 10
	slow.Entities[6].Stats[5] = 200

	fast := newState()
	fast.Entities[0].Stats[5] = 200
	fast.Entities[6].Stats[5] = 10

	rSlow := CalculateDamage(gen.Gen9, slow, 0, 6, moveset.GyroBall, false, false)
	rFast := CalculateDamage(gen.Gen9, fast, 0, 6, moveset.GyroBall, false, false)
	if rSlow.Rolls[0] <= rFast.Rolls[0] {
		t.Fatalf("a slower attacker should deal more Gyro Ball damage: slow=%d fast=%d", rSlow.Rolls[0], rFast.Rolls[0])
	}
}

func TestOverridesSubstituteBasePowerAndType(t *testing.T) {
	state := newState()
	bp := uint16(250)
	mt := types.Dragon
	res := CalculateDamageWithOverrides(gen.Gen9, state, 0, 6, moveset.Tackle, false, false, Overrides{BasePower: &bp, MoveType: &mt})
	base := CalculateDamage(gen.Gen9, state, 0, 6, moveset.Tackle, false, false)
	if res.Rolls[0] <= base.Rolls[0] {
		t.Fatalf("overriding to a much higher base power should increase damage: base=%d overridden=%d", base.Rolls[0], res.Rolls[0])
	}
}
