// Package effects is the closed-world hook registry spec.md §4.2
// describes: a fixed-size array of optional hook tables indexed by
// ability or item identifier, dispatched in O(1) and composed in a fixed
// order by the damage pipeline. Hooks are pure functions over a frozen
// BattleState snapshot — nothing here mutates state except OnSwitchIn,
// which the fixture harness and any future turn-sequencing layer call
// outside of damage calculation itself.
package effects

import (
	"github.com/nicoberrocal/pokecalc/abilities"
	"github.com/nicoberrocal/pokecalc/battle"
	"github.com/nicoberrocal/pokecalc/items"
	"github.com/nicoberrocal/pokecalc/modifier"
	"github.com/nicoberrocal/pokecalc/moveset"
	"github.com/nicoberrocal/pokecalc/types"
)

// Hook function types, one per dispatch point in the damage pipeline
// and the surrounding battle loop. Signatures mirror
// original_source/crates/poke_engine/src/abilities/hooks.rs exactly,
// translated to Go's (state, indices..., value) -> value shape; Go has
// no trait-default-method equivalent for "hook absent", so absence is
// represented by a nil function pointer in the registry entry rather
// than a fallback implementation.
type (
	OnSwitchIn    func(state *battle.BattleState, entity int)
	OnModifyPriority func(state *battle.BattleState, attacker int, moveID moveset.MoveID, basePriority int8) int8
	OnBeforeMove  func(state *battle.BattleState, attacker int, moveID moveset.MoveID)
	OnAfterDamage func(state *battle.BattleState, attacker, defender int, damage uint16)

	OnModifyBasePower func(state *battle.BattleState, attacker, defender int, move moveset.Move, moveType types.Type, bp uint16) uint16
	OnModifyAttack    func(state *battle.BattleState, attacker int, moveID moveset.MoveID, category moveset.Category, attack uint32) uint32
	OnModifyDefense   func(state *battle.BattleState, defender, attacker int, category moveset.Category, defense uint32) uint32

	OnAttackerFinalMod func(state *battle.BattleState, attacker, defender int, effectiveness uint8, isCrit bool, damage uint32) uint32
	OnDefenderFinalMod func(state *battle.BattleState, attacker, defender int, effectiveness uint8, moveType types.Type, category moveset.Category, isContact bool, damage uint32) uint32

	OnTypeImmunity func(state *battle.BattleState, defender int, moveType types.Type) bool
	OnModifySpeed  func(state *battle.BattleState, entity int, speed uint32) uint32

	// OnCheckGrounded returns (grounded, overridden): overridden is false
	// when the hook declines to override battle.Entity.IsGroundedByTyping,
	// matching the Rust Option<bool>'s None case without needing a pointer
	// or a sentinel value.
	OnCheckGrounded func(state *battle.BattleState, entity int) (grounded bool, overridden bool)

	OnHazardImmunity                func(state *battle.BattleState, entity int, hazard string) bool
	OnIgnoreStatusDamageReduction    func(state *battle.BattleState, entity int, status battle.Status) bool
	OnStatusImmunity                 func(state *battle.BattleState, entity int, status battle.Status) bool

	// OnModifyMultiHit returns the per-hit damage modifiers for a move
	// that hits more than once from a single ability (Parental Bond), one
	// entry per extra hit beyond the first. An absent hook or a nil/empty
	// slice means "no multi-hit override" — the move resolves as a single
	// hit. This is the Go-native substitute for the Rust engine's
	// Option<Vec<Modifier>> return, per spec.md's Design Notes on
	// generator/iterator equivalence: an eager slice, not a streaming
	// abstraction.
	OnModifyMultiHit func(state *battle.BattleState, attacker, defender int, moveID moveset.MoveID) []modifier.Modifier
)

// AbilityHooks is the set of hooks a single ability may register. A zero
// value (every field nil) is valid and means the ability has no
// mechanical effect this engine models.
type AbilityHooks struct {
	OnSwitchIn                    OnSwitchIn
	OnModifyPriority              OnModifyPriority
	OnModifyBasePower             OnModifyBasePower
	OnModifyAttack                OnModifyAttack
	OnModifyDefense               OnModifyDefense
	OnAttackerFinalMod            OnAttackerFinalMod
	OnDefenderFinalMod            OnDefenderFinalMod
	OnTypeImmunity                OnTypeImmunity
	OnModifySpeed                 OnModifySpeed
	OnCheckGrounded               OnCheckGrounded
	OnHazardImmunity              OnHazardImmunity
	OnIgnoreStatusDamageReduction OnIgnoreStatusDamageReduction
	OnStatusImmunity              OnStatusImmunity
	OnModifyMultiHit              OnModifyMultiHit
}

// ItemHooks mirrors AbilityHooks for held items. Items never register
// OnSwitchIn, OnModifyPriority, OnCheckGrounded (Air Balloon and Iron
// Ball are handled directly by battle.Entity's typing/item check,
// matching original_source treating them as state fields rather than
// ability-style hooks), or OnModifyMultiHit in this engine.
type ItemHooks struct {
	OnModifyBasePower             OnModifyBasePower
	OnModifyAttack                OnModifyAttack
	OnModifyDefense               OnModifyDefense
	OnAttackerFinalMod            OnAttackerFinalMod
	OnDefenderFinalMod            OnDefenderFinalMod
	OnTypeImmunity                OnTypeImmunity
	OnModifySpeed                 OnModifySpeed
	OnIgnoreStatusDamageReduction OnIgnoreStatusDamageReduction
	OnStatusImmunity              OnStatusImmunity
}

// AbilityRegistry is the closed-world array of optional hook tables
// indexed by abilities.AbilityID, populated in registry.go.
var AbilityRegistry [abilities.Count]*AbilityHooks

// ItemRegistry is the closed-world array of optional hook tables indexed
// by items.ItemID, populated in registry.go.
var ItemRegistry [items.Count]*ItemHooks

// AbilityHooksFor returns the registered hook table for id, or nil if the
// ability has no mechanical hooks in this engine.
func AbilityHooksFor(id abilities.AbilityID) *AbilityHooks {
	if id >= abilities.Count {
		return nil
	}
	return AbilityRegistry[id]
}

// ItemHooksFor returns the registered hook table for id, or nil if the
// item has no mechanical hooks in this engine.
func ItemHooksFor(id items.ItemID) *ItemHooks {
	if id >= items.Count {
		return nil
	}
	return ItemRegistry[id]
}
