package damage

import (
	"github.com/nicoberrocal/pokecalc/abilities"
	"github.com/nicoberrocal/pokecalc/battle"
	"github.com/nicoberrocal/pokecalc/gen"
	"github.com/nicoberrocal/pokecalc/items"
	"github.com/nicoberrocal/pokecalc/types"
)

// computeEffectiveness resolves the combined type-effectiveness of
// moveType against the defender's typing, applying the three documented
// overrides on top of each single-type chart cell before combining them:
// Ring Target negates any immunity outright, a grounded Ground move
// against a Flying-type defender is merely resisted (half, Gen 5+) or
// neutral (pre-Gen 5) instead of immune, and Scrappy/Mind's Eye negate a
// Ghost-type's Normal/Fighting immunity. Grounded by Gravity or Iron Ball
// routes through the same "grounded Ground-vs-Flying" branch as typing
// grounding, matching original_source/effectiveness.rs's ordering of
// grounding before the immunity-negation checks.
func computeEffectiveness(g gen.Generation, state *battle.BattleState, attackerAbility abilities.AbilityID, moveType types.Type, defenderGrounded bool, defenderIdx int) uint8 {
	def := &state.Entities[defenderIdx]

	single := func(t types.Type) uint8 {
		base := g.SingleTypeEffectiveness(moveType, t)
		if base != types.Immune {
			return base
		}
		if def.Item == items.RingTarget {
			return types.Neutral
		}
		if moveType == types.Ground && t == types.Flying && defenderGrounded {
			if g >= gen.Gen5 {
				return types.Half
			}
			return types.Neutral
		}
		if t == types.Ghost && (moveType == types.Normal || moveType == types.Fighting) &&
			(attackerAbility == abilities.Scrappy || attackerAbility == abilities.Mindseye) {
			return types.Neutral
		}
		return base
	}

	eff1 := single(def.Type1)
	eff2 := uint8(types.Neutral)
	if def.Type2 != def.Type1 {
		eff2 = single(def.Type2)
	}
	return uint8(uint16(eff1) * uint16(eff2) / uint16(types.Neutral))
}
