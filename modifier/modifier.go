// Package modifier implements the 4096-scale fixed-point arithmetic every
// generation's damage formula shares: the Modifier type, the chain-combine
// function, and the wrapping/rounding primitives that reproduce the
// original cartridge's integer overflow and round-half-down behavior
// exactly. Nothing here allocates or branches on floating point.
package modifier

// Modifier is a fixed-point multiplier on a 4096 == 1.0 scale.
type Modifier uint16

// Common multipliers used throughout the damage pipeline. LifeOrb is
// deliberately one unit below OnePointThree (5324 vs 5325): the original
// engine computes it from a different rounding of 1.3, and reproducing
// the off-by-one exactly matters for bit-exact fixture matches.
const (
	One           Modifier = 4096
	Quarter       Modifier = 1024
	Half          Modifier = 2048
	Double        Modifier = 8192
	OnePointFive  Modifier = 6144
	OnePointTwo   Modifier = 4915
	OnePointThree Modifier = 5325
	LifeOrb       Modifier = 5324
	ScreensDoubles Modifier = 2732
	FilterMod     Modifier = 3072
)

// Of16 truncates value to the low 16 bits, modeling the cartridge's u16
// register wraparound.
func Of16(value uint32) uint16 { return uint16(value & 0xFFFF) }

// Of32 truncates value to the low 32 bits, modeling the cartridge's u32
// register wraparound.
func Of32(value uint64) uint32 { return uint32(value & 0xFFFFFFFF) }

// PokeRound implements Game Freak's "round half down" integer division:
// a remainder that is more than half the divisor rounds up; exactly half
// or less rounds down. This is NOT floor division (used separately for
// critical-hit modifiers) and it is NOT round-half-up.
func PokeRound(value, divisor uint32) uint32 {
	quotient := value / divisor
	remainder := value % divisor
	half := divisor / 2
	if remainder > half {
		return quotient + 1
	}
	return quotient
}

// Apply multiplies value by m and rounds with PokeRound on the 4096
// scale. m == One is short-circuited to avoid a needless multiply on the
// overwhelmingly common case of "no modifier here."
func Apply(value uint32, m Modifier) uint32 {
	if m == One {
		return value
	}
	product := Of32(uint64(value) * uint64(m))
	return PokeRound(product, 4096)
}

// ApplyFloor multiplies value by the num/den fraction using floor
// division instead of PokeRound. Critical-hit and a handful of other
// legacy multipliers use floor division rather than round-half-down.
func ApplyFloor(value, num, den uint32) uint32 {
	return Of32(uint64(value)*uint64(num)) / den
}

// Chain folds a sequence of modifiers into a single combined modifier on
// the 4096 scale, clamping the final product to [1, 131072] the same
// way the original engine bounds it to avoid the chain collapsing to
// zero or overflowing a 17-bit intermediate.
func Chain(mods []Modifier) uint32 {
	result := uint32(4096)
	for _, m := range mods {
		if m == One {
			continue
		}
		product := Of32(uint64(result) * uint64(m))
		result = PokeRound(product, 4096)
	}
	if result < 1 {
		return 1
	}
	if result > 131072 {
		return 131072
	}
	return result
}

// boostTable holds the (numerator, denominator) pair for each stage from
// -6 to +6, indexed by stage+6.
var boostTable = [13][2]uint32{
	{2, 8}, {2, 7}, {2, 6}, {2, 5}, {2, 4}, {2, 3}, {2, 2},
	{3, 2}, {4, 2}, {5, 2}, {6, 2}, {7, 2}, {8, 2},
}

// accEvaTable holds the (numerator, denominator) pair for each
// accuracy/evasion stage from -6 to +6.
var accEvaTable = [13][2]uint32{
	{3, 9}, {3, 8}, {3, 7}, {3, 6}, {3, 5}, {3, 4}, {3, 3},
	{4, 3}, {5, 3}, {6, 3}, {7, 3}, {8, 3}, {9, 3},
}

func clampStage(stage int8) int8 {
	if stage < -6 {
		return -6
	}
	if stage > 6 {
		return 6
	}
	return stage
}

// ApplyBoost scales a base stat (Attack/Defense/SpAttack/SpDefense/Speed)
// by the standard stage table, wrapping through Of16 to match the
// cartridge's u16 stat registers.
func ApplyBoost(baseStat uint16, stage int8) uint16 {
	stage = clampStage(stage)
	pair := boostTable[stage+6]
	return Of16((uint32(baseStat) * pair[0]) / pair[1])
}

// ApplyAccEvaBoost scales an accuracy check by the separate
// accuracy/evasion stage table (a shallower curve than the stat table).
func ApplyAccEvaBoost(base uint16, stage int8) uint16 {
	stage = clampStage(stage)
	pair := accEvaTable[stage+6]
	return Of16((uint32(base) * pair[0]) / pair[1])
}

// GetBaseDamage computes the level/power/attack/defense term common to
// every generation from Gen 2 onward. addTwo controls whether the
// standard "+2" padding term is applied before random-roll and
// post-modifiers (some special-move and Gen 1 paths add it at a
// different point, or not at all).
func GetBaseDamage(level uint8, basePower uint16, attack, defense uint32, addTwo bool) uint32 {
	if defense == 0 {
		return 0
	}
	levelFactor := uint32(2)*uint32(level)/5 + 2
	numerator := Of32(uint64(levelFactor) * uint64(basePower))
	numerator = Of32(uint64(numerator) * uint64(attack))
	afterDefense := numerator / defense
	afterFifty := afterDefense / 50
	if addTwo {
		return afterFifty + 2
	}
	return afterFifty
}

// ApplyRandomRoll applies one of the sixteen 85-100% damage rolls,
// indexed 0-15 (clamped), to a computed base damage value.
func ApplyRandomRoll(baseDamage uint32, rollIndex uint8) uint32 {
	if rollIndex > 15 {
		rollIndex = 15
	}
	roll := uint32(85) + uint32(rollIndex)
	return Of32(uint64(baseDamage)*uint64(roll)) / 100
}
