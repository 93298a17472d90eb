// Package battle defines the Struct-of-Arrays battle state: twelve entity
// slots (two sides of six), per-side field conditions, and the global
// weather/terrain/gravity state a damage calculation reads as a frozen
// snapshot. BattleState carries no pointers and no dynamically-sized
// fields, so copying it is a single bulk move — the shape an AI search
// loop needs to clone thousands of states per second.
package battle

import (
	"github.com/nicoberrocal/pokecalc/abilities"
	"github.com/nicoberrocal/pokecalc/items"
	"github.com/nicoberrocal/pokecalc/moveset"
	"github.com/nicoberrocal/pokecalc/natures"
	"github.com/nicoberrocal/pokecalc/species"
	"github.com/nicoberrocal/pokecalc/types"
)

const (
	MaxTeamSize = 6
	MaxEntities = 12
	MaxMoves    = 4
	BoostStats  = 7
)

// Boost indexes the seven boostable stages (BOOST_STATS in
// original_source/state.rs): the four combat stats plus speed and the two
// accuracy-family stages, which damage calculation itself never reads but
// which round out the struct-of-arrays shape a full battle engine needs.
type Boost uint8

const (
	AtkBoost Boost = iota
	DefBoost
	SpABoost
	SpDBoost
	SpeBoost
	AccBoost
	EvaBoost
)

// Status is a Pokémon's non-volatile status condition.
type Status uint8

const (
	StatusNone Status = iota
	Burn
	Paralysis
	Poison
	Toxic
	Sleep
	Freeze
)

// Volatiles is a bitset of volatile battle conditions. Damage calculation
// reads none of these bits (Confusion's self-hit lives in turn sequencing,
// a Non-goal), so nothing here gates a formula today, but every
// hook signature in the effects package takes the full state, so these
// bits exist for callers outside this module's scope to set and read.
type Volatiles uint16

const (
	Confusion Volatiles = 1 << iota
	LeechSeed
	Substitute
	Charging
	Flinch
	Taunt
	Encore
)

// Weather is the field-wide weather condition.
type Weather uint8

const (
	WeatherNone Weather = iota
	Sun
	Rain
	Sand
	Hail
	Snow
	HarshSun
	HeavyRain
	StrongWinds
)

// Terrain is the field-wide terrain condition.
type Terrain uint8

const (
	TerrainNone Terrain = iota
	Electric
	Grassy
	Psychic
	Misty
)

// Entity is one Pokémon's complete runtime state: computed stats, current
// HP, boosts, typing (which can differ from the species' printed types
// after a forme change or a type-changing ability), held item, moveset,
// and status. Every field is a value type — no slices, no pointers — so
// BattleState stays trivially copyable.
type Entity struct {
	Species species.SpeciesID
	Level   uint8
	Nature  natures.Nature
	IVs     [6]uint8
	EVs     [6]uint8
	Stats   [6]uint16 // HP, Atk, Def, SpA, SpD, Spe
	HP      uint16
	MaxHP   uint16
	Boosts  [BoostStats]int8
	Type1   types.Type
	Type2   types.Type
	Ability abilities.AbilityID
	Item    items.ItemID
	Moves   [MaxMoves]moveset.MoveID
	PP      [MaxMoves]uint8
	MaxPP   [MaxMoves]uint8
	Status  Status
	// StatusCounter tracks sleep-turns-remaining or toxic's counter,
	// depending on Status. Unused for other statuses.
	StatusCounter uint8
	Volatiles     Volatiles
	WeightKG10    uint16
}

// IsFainted reports whether the entity has zero HP.
func (e *Entity) IsFainted() bool { return e.HP == 0 }

// HasType reports whether the entity's current typing includes t.
func (e *Entity) HasType(t types.Type) bool { return e.Type1 == t || e.Type2 == t }

// IsMonotype reports whether both type slots hold the same type.
func (e *Entity) IsMonotype() bool { return e.Type1 == e.Type2 }

// Side holds the field conditions that apply to one half of the field:
// entry hazards and the screen family, each stored as turns-remaining so
// "is the screen up" is a simple `> 0` check.
type Side struct {
	ReflectTurns     uint8
	LightScreenTurns uint8
	AuroraVeilTurns  uint8
	TailwindTurns    uint8 // speed-only; damage calculation never reads this
	Spikes           uint8 // 0-3 layers
	ToxicSpikes      uint8 // 0-2 layers
	StealthRock      bool
	StickyWeb        bool
	TeamSize         uint8
	Active           uint8 // slot index (0-5) of the currently battling entity
}

// HasReflect, HasLightScreen, and HasAuroraVeil report whether the
// corresponding screen is currently up.
func (s *Side) HasReflect() bool      { return s.ReflectTurns > 0 }
func (s *Side) HasLightScreen() bool  { return s.LightScreenTurns > 0 }
func (s *Side) HasAuroraVeil() bool   { return s.AuroraVeilTurns > 0 }
func (s *Side) HasTailwind() bool     { return s.TailwindTurns > 0 }

// BattleState is the complete frozen snapshot a single damage calculation
// reads. It owns no pointers and allocates nothing once constructed;
// Go's normal struct-value assignment (`cp := state`) performs the
// "bulk copy" spec.md's concurrency model requires.
type BattleState struct {
	Entities     [MaxEntities]Entity
	Sides        [2]Side
	Weather      Weather
	WeatherTurns uint8
	Terrain      Terrain
	TerrainTurns uint8
	Gravity      bool
	Turn         uint16
}

// EntityIndex maps a (player, slot) pair to a flat index into Entities,
// matching original_source's `player * MAX_TEAM_SIZE + slot` layout.
func EntityIndex(player, slot int) int { return player*MaxTeamSize + slot }

// Entity returns a pointer into state.Entities for in-place field access;
// callers that need an isolated copy should dereference it themselves.
func (s *BattleState) Entity(player, slot int) *Entity {
	return &s.Entities[EntityIndex(player, slot)]
}

// OpposingSide returns the side index opposite player (0 and 1 are the
// only two sides; damage calculation is always one attacker, one
// defender, regardless of how many slots are active per side).
func OpposingSide(player int) int { return 1 - player }

// HasScreen reports whether the defending side's relevant damage-halving
// screen is up for a hit of the given category. Aurora Veil supersedes
// Light Screen/Reflect when present, matching
// original_source/context.rs's has_screen check order.
func (s *BattleState) HasScreen(side int, isPhysical bool) bool {
	sd := &s.Sides[side]
	if sd.HasAuroraVeil() {
		return true
	}
	if isPhysical {
		return sd.HasReflect()
	}
	return sd.HasLightScreen()
}

// IsGroundedByTyping reports whether the entity is grounded purely by its
// current typing and held item, ignoring ability and Gravity overrides
// (those live in the effects/damage layers, which sit above this package
// in the dependency order and can consult ability hooks this package
// cannot reference without an import cycle).
func (e *Entity) IsGroundedByTyping() bool {
	if e.HasType(types.Flying) {
		return false
	}
	if e.Item == items.AirBalloon {
		return false
	}
	return true
}
