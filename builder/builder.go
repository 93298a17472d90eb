// Package builder computes final stats from base stats/IVs/EVs/nature/
// level and spawns a configured Pokémon into a BattleState slot. It is the
// only place outside the generated species/moveset tables that performs
// the HP and nature-modifier stat formulas.
package builder

import (
	"github.com/nicoberrocal/pokecalc/abilities"
	"github.com/nicoberrocal/pokecalc/battle"
	"github.com/nicoberrocal/pokecalc/items"
	"github.com/nicoberrocal/pokecalc/moveset"
	"github.com/nicoberrocal/pokecalc/natures"
	"github.com/nicoberrocal/pokecalc/species"
	"github.com/nicoberrocal/pokecalc/types"
)

// DefaultIVs is a perfect 31-31-31-31-31-31 spread.
var DefaultIVs = [6]uint8{31, 31, 31, 31, 31, 31}

// DefaultLevel matches the original engine's builder default.
const DefaultLevel uint8 = 50

// Config is a builder-pattern blueprint for one Pokémon, configured with
// the chained setters below and then written into a battle.BattleState
// slot with Spawn. The zero Config is not usable on its own — construct
// one with New, which fills in every default field.
type Config struct {
	Species     species.SpeciesID
	Level       uint8
	IVs         [6]uint8
	EVs         [6]uint8
	Nature      natures.Nature
	Ability     abilities.AbilityID
	Item        items.ItemID
	Moves       [battle.MaxMoves]moveset.MoveID
	Type1       types.Type
	Type2       types.Type
	TypesForced bool // true once WithTypes has overridden the species' printed types
	CurrentHP   *uint16
}

// New returns a Config for sp with every field at its default: level 50,
// perfect IVs, no EVs, a neutral (Hardy) nature, the species' first
// ability slot, no item, every move slot at MoveID's zero value (Tackle),
// no type override, and full HP.
func New(sp species.SpeciesID) Config {
	return Config{
		Species: sp,
		Level:   DefaultLevel,
		IVs:     DefaultIVs,
		Nature:  natures.Hardy,
		Ability: species.Data(sp).Abilities.Slot0,
	}
}

// WithLevel clamps level to [1, 100] and returns the updated Config.
func (c Config) WithLevel(level uint8) Config {
	if level < 1 {
		level = 1
	}
	if level > 100 {
		level = 100
	}
	c.Level = level
	return c
}

// WithIVs clamps each IV to 31 and returns the updated Config.
func (c Config) WithIVs(ivs [6]uint8) Config {
	for i, v := range ivs {
		if v > 31 {
			v = 31
		}
		c.IVs[i] = v
	}
	return c
}

// WithEVs clamps each EV to 252 and the running total to 510, matching
// the original engine's per-slot-then-total clamp order.
func (c Config) WithEVs(evs [6]uint8) Config {
	var total uint16
	for i, v := range evs {
		if v > 252 {
			v = 252
		}
		remaining := uint16(510) - total
		if remaining > 255 {
			remaining = 255
		}
		if uint16(v) > remaining {
			v = uint8(remaining)
		}
		c.EVs[i] = v
		total += uint16(v)
	}
	return c
}

// WithNature returns the updated Config.
func (c Config) WithNature(n natures.Nature) Config {
	c.Nature = n
	return c
}

// WithAbility returns the updated Config.
func (c Config) WithAbility(a abilities.AbilityID) Config {
	c.Ability = a
	return c
}

// WithItem returns the updated Config.
func (c Config) WithItem(i items.ItemID) Config {
	c.Item = i
	return c
}

// WithMoves returns the updated Config.
func (c Config) WithMoves(moves [battle.MaxMoves]moveset.MoveID) Config {
	c.Moves = moves
	return c
}

// WithMove sets a single move slot, ignoring an out-of-range slot index.
func (c Config) WithMove(slot int, moveID moveset.MoveID) Config {
	if slot >= 0 && slot < battle.MaxMoves {
		c.Moves[slot] = moveID
	}
	return c
}

// WithTypes overrides the species' printed typing — a forme change or a
// Multitype Plate recalculated before spawn (species data itself never
// changes; only the spawned entity's typing does).
func (c Config) WithTypes(t1, t2 types.Type) Config {
	c.Type1, c.Type2 = t1, t2
	c.TypesForced = true
	return c
}

// WithCurrentHP restores a Pokémon at less than full HP (e.g. reloading a
// saved team). The value is clamped to MaxHP at Spawn time, once the HP
// stat is known.
func (c Config) WithCurrentHP(hp uint16) Config {
	c.CurrentHP = &hp
	return c
}

// CalculateHP computes the HP stat: floor((2*base + iv + floor(ev/4)) *
// level/100) + level + 10, or 1 flat for a species carrying the
// ForceOneHP flag (Shedinja). Guards level == 0 to avoid a degenerate
// result reaching a live BattleState; New never produces one, but a
// hand-built Config might.
func CalculateHP(sp species.SpeciesID, iv, ev uint8, level uint8) uint16 {
	data := species.Data(sp)
	if data.Flags&species.ForceOneHP != 0 {
		return 1
	}
	if level == 0 {
		return 0
	}
	base := uint32(data.Stats.HP)
	raw := (2*base + uint32(iv) + uint32(ev)/4) * uint32(level) / 100
	return uint16(raw + uint32(level) + 10)
}

// CalculateStat computes one of the four nature-affected stats: floor(
// (floor((2*base + iv + floor(ev/4)) * level/100) + 5) * natureMod/10).
func CalculateStat(base uint8, iv, ev uint8, level uint8, natureMod uint32) uint16 {
	if level == 0 || natureMod == 0 {
		return 0
	}
	raw := (2*uint32(base)+uint32(iv)+uint32(ev)/4)*uint32(level)/100 + 5
	return uint16(raw * natureMod / 10)
}

// natureStatFor maps a 0-5 stat index (HP, Atk, Def, SpA, SpD, Spe) to the
// natures.Stat the nature grid indexes by; HP has no entry and is never
// passed here (CalculateHP handles index 0 separately).
var natureStatFor = [6]natures.Stat{
	1: natures.Attack,
	2: natures.Defense,
	3: natures.SpAttack,
	4: natures.SpDefense,
	5: natures.Speed,
}

// CalculateStats returns the full six-stat spread [HP, Atk, Def, SpA,
// SpD, Spe] for c.
func (c Config) CalculateStats() [6]uint16 {
	data := species.Data(c.Species)
	base := data.Stats
	baseArr := [6]uint8{base.HP, base.Atk, base.Def, base.SpA, base.SpD, base.Spe}

	var stats [6]uint16
	stats[0] = CalculateHP(c.Species, c.IVs[0], c.EVs[0], c.Level)
	for i := 1; i < 6; i++ {
		mod := c.Nature.StatModifier(natureStatFor[i])
		stats[i] = CalculateStat(baseArr[i], c.IVs[i], c.EVs[i], c.Level, mod)
	}
	return stats
}

// resolveTypes returns the entity's typing: the override from WithTypes,
// or the species' printed types.
func (c Config) resolveTypes() (types.Type, types.Type) {
	if c.TypesForced {
		return c.Type1, c.Type2
	}
	data := species.Data(c.Species)
	return data.Type1, data.Type2
}

// Spawn computes c's final stats and writes every derived field into
// state's (player, slot) entity: stats, HP (clamped to the computed
// MaxHP), identity, typing, ability, item, moves with full PP, and a
// fresh reset of boosts/status/volatiles. It extends the side's
// TeamSize if slot is beyond the previously recorded size.
func Spawn(state *battle.BattleState, player, slot int, c Config) {
	idx := battle.EntityIndex(player, slot)
	e := &state.Entities[idx]

	stats := c.CalculateStats()
	maxHP := stats[0]

	hp := maxHP
	if c.CurrentHP != nil && *c.CurrentHP < maxHP {
		hp = *c.CurrentHP
	}

	type1, type2 := c.resolveTypes()

	*e = battle.Entity{
		Species:    c.Species,
		Level:      c.Level,
		Nature:     c.Nature,
		IVs:        c.IVs,
		EVs:        c.EVs,
		Stats:      stats,
		HP:         hp,
		MaxHP:      maxHP,
		Type1:      type1,
		Type2:      type2,
		Ability:    c.Ability,
		Item:       c.Item,
		Moves:      c.Moves,
		WeightKG10: species.Data(c.Species).WeightKG10,
	}
	for i, moveID := range c.Moves {
		pp := moveset.Data(moveID).PP
		e.PP[i] = pp
		e.MaxPP[i] = pp
	}

	side := &state.Sides[player]
	if uint8(slot+1) > side.TeamSize {
		side.TeamSize = uint8(slot + 1)
	}
}
