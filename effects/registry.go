package effects

import (
	"github.com/nicoberrocal/pokecalc/abilities"
	"github.com/nicoberrocal/pokecalc/battle"
	"github.com/nicoberrocal/pokecalc/items"
	"github.com/nicoberrocal/pokecalc/modifier"
	"github.com/nicoberrocal/pokecalc/moveset"
	"github.com/nicoberrocal/pokecalc/species"
	"github.com/nicoberrocal/pokecalc/types"
)

func init() {
	registerAbilities()
	registerItems()
}

func registerAbilities() {
	set := func(id abilities.AbilityID, h AbilityHooks) { AbilityRegistry[id] = &h }

	// Weather setters (original_source/abilities/weather_setters.rs): each
	// sets a five-turn weather on switch-in.
	set(abilities.Drizzle, AbilityHooks{OnSwitchIn: weatherSetter(battle.Rain)})
	set(abilities.Drought, AbilityHooks{OnSwitchIn: weatherSetter(battle.Sun)})
	set(abilities.SandStream, AbilityHooks{OnSwitchIn: weatherSetter(battle.Sand)})
	set(abilities.SnowWarning, AbilityHooks{OnSwitchIn: weatherSetter(battle.Snow)})

	// Terrain setters.
	set(abilities.ElectricSurge, AbilityHooks{OnSwitchIn: terrainSetter(battle.Electric)})
	set(abilities.GrassySurge, AbilityHooks{OnSwitchIn: terrainSetter(battle.Grassy)})
	set(abilities.MistySurge, AbilityHooks{OnSwitchIn: terrainSetter(battle.Misty)})
	set(abilities.PsychicSurge, AbilityHooks{OnSwitchIn: terrainSetter(battle.Psychic)})

	// Priority hooks (original_source/abilities/priority.rs).
	set(abilities.Prankster, AbilityHooks{OnModifyPriority: func(state *battle.BattleState, attacker int, moveID moveset.MoveID, base int8) int8 {
		if moveset.Data(moveID).Category == moveset.Status {
			return base + 1
		}
		return base
	}})
	set(abilities.GaleWings, AbilityHooks{OnModifyPriority: func(state *battle.BattleState, attacker int, moveID moveset.MoveID, base int8) int8 {
		e := state.Entity(attacker/battle.MaxTeamSize, attacker%battle.MaxTeamSize)
		if e.HP == e.MaxHP && moveset.Data(moveID).Type == types.Flying {
			return base + 1
		}
		return base
	}})
	set(abilities.Triage, AbilityHooks{OnModifyPriority: func(state *battle.BattleState, attacker int, moveID moveset.MoveID, base int8) int8 {
		if moveset.Data(moveID).Flags.Has(moveset.Heal) {
			return base + 3
		}
		return base
	}})

	// Intimidate (original_source/abilities/intimidate.rs): -1 Attack to
	// the opposing active Pokémon on switch-in. Blocking abilities/items
	// and Mist are explicitly TODOs in the original and are out of scope
	// here (turn sequencing), matching it exactly.
	set(abilities.Intimidate, AbilityHooks{OnSwitchIn: func(state *battle.BattleState, entity int) {
		side := entity / battle.MaxTeamSize
		oppSide := battle.OpposingSide(side)
		oppIdx := battle.EntityIndex(oppSide, int(state.Sides[oppSide].Active))
		opp := &state.Entities[oppIdx]
		if opp.Boosts[battle.AtkBoost] > -6 {
			opp.Boosts[battle.AtkBoost]--
		}
	}})

	// Stat-modifying abilities.
	set(abilities.HugePower, AbilityHooks{OnModifyAttack: doubleAttack})
	set(abilities.PurePower, AbilityHooks{OnModifyAttack: doubleAttack})
	set(abilities.Hustle, AbilityHooks{OnModifyAttack: func(state *battle.BattleState, attacker int, moveID moveset.MoveID, category moveset.Category, attack uint32) uint32 {
		if category == moveset.Physical {
			return modifier.Apply(attack, modifier.OnePointFive)
		}
		return attack
	}})
	set(abilities.Guts, AbilityHooks{
		OnModifyAttack: func(state *battle.BattleState, attacker int, moveID moveset.MoveID, category moveset.Category, attack uint32) uint32 {
			if moveID == moveset.BodyPress {
				return attack
			}
			e := state.Entities[attacker]
			if category == moveset.Physical && e.Status != battle.StatusNone {
				return modifier.Apply(attack, modifier.OnePointFive)
			}
			return attack
		},
		OnIgnoreStatusDamageReduction: func(state *battle.BattleState, entity int, status battle.Status) bool {
			return status == battle.Burn
		},
	})
	set(abilities.MarvelScale, AbilityHooks{OnModifyDefense: func(state *battle.BattleState, defender, attacker int, category moveset.Category, defense uint32) uint32 {
		e := state.Entities[defender]
		if category == moveset.Physical && e.Status != battle.StatusNone {
			return modifier.Apply(defense, modifier.OnePointFive)
		}
		return defense
	}})
	set(abilities.FurCoat, AbilityHooks{OnModifyDefense: func(state *battle.BattleState, defender, attacker int, category moveset.Category, defense uint32) uint32 {
		if category == moveset.Physical {
			return modifier.Apply(defense, modifier.Double)
		}
		return defense
	}})

	// Type-changing and STAB-adjacent abilities are applied directly by
	// damage.NewContext (they change the effective move type before any
	// hook dispatch happens, per original_source/context.rs), so they do
	// not need a registry entry here. Type-immunity hooks:
	set(abilities.Levitate, AbilityHooks{
		OnTypeImmunity: func(state *battle.BattleState, defender int, moveType types.Type) bool {
			return moveType == types.Ground
		},
		OnCheckGrounded: func(state *battle.BattleState, entity int) (bool, bool) { return false, true },
	})
	set(abilities.FlashFire, AbilityHooks{OnTypeImmunity: typeImmunity(types.Fire)})
	set(abilities.WaterAbsorb, AbilityHooks{OnTypeImmunity: typeImmunity(types.Water)})
	set(abilities.VoltAbsorb, AbilityHooks{OnTypeImmunity: typeImmunity(types.Electric)})
	set(abilities.StormDrain, AbilityHooks{OnTypeImmunity: typeImmunity(types.Water)})
	set(abilities.LightningRod, AbilityHooks{OnTypeImmunity: typeImmunity(types.Electric)})
	set(abilities.SapSipper, AbilityHooks{OnTypeImmunity: typeImmunity(types.Grass)})
	set(abilities.MotorDrive, AbilityHooks{OnTypeImmunity: typeImmunity(types.Electric)})
	set(abilities.DrySkin, AbilityHooks{OnTypeImmunity: typeImmunity(types.Water)})
	set(abilities.EarthEater, AbilityHooks{OnTypeImmunity: typeImmunity(types.Ground)})

	// Defensive final-mod (damage-reduction) abilities.
	set(abilities.Multiscale, AbilityHooks{OnDefenderFinalMod: atFullHPHalves})
	set(abilities.ShadowShield, AbilityHooks{OnDefenderFinalMod: atFullHPHalves})
	set(abilities.Filter, AbilityHooks{OnDefenderFinalMod: superEffectiveFilter})
	set(abilities.SolidRock, AbilityHooks{OnDefenderFinalMod: superEffectiveFilter})
	set(abilities.PrismArmor, AbilityHooks{OnDefenderFinalMod: superEffectiveFilter})
	set(abilities.IceScales, AbilityHooks{OnDefenderFinalMod: func(state *battle.BattleState, attacker, defender int, effectiveness uint8, moveType types.Type, category moveset.Category, isContact bool, damage uint32) uint32 {
		if category == moveset.Special {
			return modifier.Apply(damage, modifier.Half)
		}
		return damage
	}})
	set(abilities.Fluffy, AbilityHooks{OnDefenderFinalMod: func(state *battle.BattleState, attacker, defender int, effectiveness uint8, moveType types.Type, category moveset.Category, isContact bool, damage uint32) uint32 {
		if isContact {
			damage = modifier.Apply(damage, modifier.Half)
		}
		if moveType == types.Fire {
			damage = modifier.Apply(damage, modifier.Double)
		}
		return damage
	}})
	set(abilities.Neuroforce, AbilityHooks{OnAttackerFinalMod: func(state *battle.BattleState, attacker, defender int, effectiveness uint8, isCrit bool, damage uint32) uint32 {
		if effectiveness > 4 {
			return modifier.Apply(damage, modifier.OnePointTwo)
		}
		return damage
	}})

	// Speed hooks (weather-boosted abilities).
	set(abilities.Chlorophyll, AbilityHooks{OnModifySpeed: weatherSpeedBoost(battle.Sun, battle.HarshSun)})
	set(abilities.SwiftSwim, AbilityHooks{OnModifySpeed: weatherSpeedBoost(battle.Rain, battle.HeavyRain)})
	set(abilities.SandRush, AbilityHooks{OnModifySpeed: weatherSpeedBoost(battle.Sand)})
	set(abilities.SlushRush, AbilityHooks{OnModifySpeed: weatherSpeedBoost(battle.Hail, battle.Snow)})

	// Status-immunity abilities.
	set(abilities.MagicGuard, AbilityHooks{OnIgnoreStatusDamageReduction: func(state *battle.BattleState, entity int, status battle.Status) bool { return true }})
	set(abilities.Immunity, AbilityHooks{OnStatusImmunity: statusImmunity(battle.Poison, battle.Toxic)})
	set(abilities.Insomnia, AbilityHooks{OnStatusImmunity: statusImmunity(battle.Sleep)})
	set(abilities.Limber, AbilityHooks{OnStatusImmunity: statusImmunity(battle.Paralysis)})

	// Base-power-boosting abilities, each keyed on a move-flag or
	// power-threshold condition rather than a type (original_source's
	// abilities/registry.rs groups these as "move qualifier" boosters).
	set(abilities.Technician, AbilityHooks{OnModifyBasePower: func(state *battle.BattleState, attacker, defender int, move moveset.Move, moveType types.Type, bp uint16) uint16 {
		if bp <= 60 {
			return uint16(modifier.Apply(uint32(bp), modifier.OnePointFive))
		}
		return bp
	}})
	set(abilities.IronFist, AbilityHooks{OnModifyBasePower: flagBoostedBasePower(moveset.Punch, modifier.OnePointTwo)})
	set(abilities.ToughClaws, AbilityHooks{OnModifyBasePower: flagBoostedBasePower(moveset.Contact, modifier.OnePointThree)})
	set(abilities.Reckless, AbilityHooks{OnModifyBasePower: flagBoostedBasePower(moveset.Recoil, modifier.OnePointTwo)})
	set(abilities.SheerForce, AbilityHooks{OnModifyBasePower: flagBoostedBasePower(moveset.HasSecondaryEffects, modifier.OnePointThree)})
	set(abilities.MegaLauncher, AbilityHooks{OnModifyBasePower: flagBoostedBasePower(moveset.Pulse, modifier.OnePointFive)})

	// Defeatist halves both Attack and Special Attack at 50% HP or below;
	// the hook fires regardless of category since both stat slots are
	// affected identically.
	set(abilities.Defeatist, AbilityHooks{OnModifyAttack: func(state *battle.BattleState, attacker int, moveID moveset.MoveID, category moveset.Category, attack uint32) uint32 {
		e := state.Entities[attacker]
		if e.MaxHP > 0 && e.HP*2 <= e.MaxHP {
			return modifier.Apply(attack, modifier.Half)
		}
		return attack
	}})
	set(abilities.GorillaTactics, AbilityHooks{OnModifyAttack: func(state *battle.BattleState, attacker int, moveID moveset.MoveID, category moveset.Category, attack uint32) uint32 {
		if category == moveset.Physical {
			return modifier.Apply(attack, modifier.OnePointFive)
		}
		return attack
	}})

	// Parental Bond: a second hit at 0.25x damage, the modern (Gen 7+)
	// value (Gen 6 used 0.5x; this engine does not distinguish the two
	// since the hook has no generation parameter to key on).
	set(abilities.ParentalBond, AbilityHooks{OnModifyMultiHit: func(state *battle.BattleState, attacker, defender int, moveID moveset.MoveID) []modifier.Modifier {
		move := moveset.Data(moveID)
		if move.Category == moveset.Status || move.Flags.Has(moveset.VariablePower) {
			return nil
		}
		switch moveID {
		case moveset.Struggle:
			return nil
		default:
			return []modifier.Modifier{modifier.Quarter}
		}
	}})
}

func registerItems() {
	set := func(id items.ItemID, h ItemHooks) { ItemRegistry[id] = &h }

	set(items.ChoiceBand, ItemHooks{OnModifyAttack: func(state *battle.BattleState, attacker int, moveID moveset.MoveID, category moveset.Category, attack uint32) uint32 {
		if category == moveset.Physical {
			return modifier.Apply(attack, modifier.OnePointFive)
		}
		return attack
	}})
	set(items.ChoiceSpecs, ItemHooks{OnModifyAttack: func(state *battle.BattleState, attacker int, moveID moveset.MoveID, category moveset.Category, attack uint32) uint32 {
		if category == moveset.Special {
			return modifier.Apply(attack, modifier.OnePointFive)
		}
		return attack
	}})
	set(items.AssaultVest, ItemHooks{OnModifyDefense: func(state *battle.BattleState, defender, attacker int, category moveset.Category, defense uint32) uint32 {
		if category == moveset.Special {
			return modifier.Apply(defense, modifier.OnePointFive)
		}
		return defense
	}})
	set(items.Eviolite, ItemHooks{
		OnModifyDefense: func(state *battle.BattleState, defender, attacker int, category moveset.Category, defense uint32) uint32 {
			holder := state.Entities[defender]
			if species.Data(holder.Species).Flags&species.NFE == 0 {
				return defense
			}
			return modifier.Apply(defense, modifier.OnePointFive)
		},
	})
	set(items.LightBall, ItemHooks{OnModifyAttack: func(state *battle.BattleState, attacker int, moveID moveset.MoveID, category moveset.Category, attack uint32) uint32 {
		if state.Entities[attacker].Species != species.Pikachu {
			return attack
		}
		return modifier.Apply(attack, modifier.Double)
	}})
	set(items.ThickClub, ItemHooks{OnModifyAttack: func(state *battle.BattleState, attacker int, moveID moveset.MoveID, category moveset.Category, attack uint32) uint32 {
		holder := state.Entities[attacker].Species
		if category != moveset.Physical || (holder != species.Cubone && holder != species.Marowak) {
			return attack
		}
		return modifier.Apply(attack, modifier.Double)
	}})
	set(items.DeepSeaTooth, ItemHooks{OnModifyAttack: func(state *battle.BattleState, attacker int, moveID moveset.MoveID, category moveset.Category, attack uint32) uint32 {
		if category != moveset.Special || state.Entities[attacker].Species != species.Clamperl {
			return attack
		}
		return modifier.Apply(attack, modifier.Double)
	}})
	set(items.DeepSeaScale, ItemHooks{OnModifyDefense: func(state *battle.BattleState, defender, attacker int, category moveset.Category, defense uint32) uint32 {
		if category != moveset.Special || state.Entities[defender].Species != species.Clamperl {
			return defense
		}
		return modifier.Apply(defense, modifier.Double)
	}})
	set(items.SoulDew, ItemHooks{OnModifyAttack: func(state *battle.BattleState, attacker int, moveID moveset.MoveID, category moveset.Category, attack uint32) uint32 {
		holder := state.Entities[attacker].Species
		if category != moveset.Special || (holder != species.Latios && holder != species.Latias) {
			return attack
		}
		return modifier.Apply(attack, modifier.OnePointTwo)
	}})
	set(items.MetalPowder, ItemHooks{OnModifyDefense: func(state *battle.BattleState, defender, attacker int, category moveset.Category, defense uint32) uint32 {
		if category != moveset.Physical || state.Entities[defender].Species != species.Ditto {
			return defense
		}
		return modifier.Apply(defense, modifier.Double)
	}})
	set(items.LifeOrb, ItemHooks{OnAttackerFinalMod: func(state *battle.BattleState, attacker, defender int, effectiveness uint8, isCrit bool, damage uint32) uint32 {
		return modifier.Apply(damage, modifier.LifeOrb)
	}})
	set(items.ExpertBelt, ItemHooks{OnAttackerFinalMod: func(state *battle.BattleState, attacker, defender int, effectiveness uint8, isCrit bool, damage uint32) uint32 {
		if effectiveness > 4 {
			return modifier.Apply(damage, modifier.OnePointTwo)
		}
		return damage
	}})
	set(items.Charcoal, ItemHooks{OnModifyBasePower: typeBoostingItem(types.Fire)})
	set(items.MysticWater, ItemHooks{OnModifyBasePower: typeBoostingItem(types.Water)})
	set(items.MiracleSeed, ItemHooks{OnModifyBasePower: typeBoostingItem(types.Grass)})
	set(items.Magnet, ItemHooks{OnModifyBasePower: typeBoostingItem(types.Electric)})
	set(items.NeverMeltIce, ItemHooks{OnModifyBasePower: typeBoostingItem(types.Ice)})
}

func weatherSetter(w battle.Weather) OnSwitchIn {
	return func(state *battle.BattleState, entity int) {
		state.Weather = w
		state.WeatherTurns = 5
	}
}

func terrainSetter(tr battle.Terrain) OnSwitchIn {
	return func(state *battle.BattleState, entity int) {
		state.Terrain = tr
		state.TerrainTurns = 5
	}
}

func doubleAttack(state *battle.BattleState, attacker int, moveID moveset.MoveID, category moveset.Category, attack uint32) uint32 {
	if moveID == moveset.BodyPress {
		return attack
	}
	if category == moveset.Physical {
		return modifier.Apply(attack, modifier.Double)
	}
	return attack
}

func typeImmunity(t types.Type) OnTypeImmunity {
	return func(state *battle.BattleState, defender int, moveType types.Type) bool { return moveType == t }
}

func atFullHPHalves(state *battle.BattleState, attacker, defender int, effectiveness uint8, moveType types.Type, category moveset.Category, isContact bool, damage uint32) uint32 {
	e := state.Entities[defender]
	if e.HP == e.MaxHP {
		return modifier.Apply(damage, modifier.Half)
	}
	return damage
}

func superEffectiveFilter(state *battle.BattleState, attacker, defender int, effectiveness uint8, moveType types.Type, category moveset.Category, isContact bool, damage uint32) uint32 {
	if effectiveness > 4 {
		return modifier.Apply(damage, modifier.FilterMod)
	}
	return damage
}

func weatherSpeedBoost(weathers ...battle.Weather) OnModifySpeed {
	return func(state *battle.BattleState, entity int, speed uint32) uint32 {
		for _, w := range weathers {
			if state.Weather == w {
				return modifier.Apply(speed, modifier.Double)
			}
		}
		return speed
	}
}

func statusImmunity(statuses ...battle.Status) OnStatusImmunity {
	return func(state *battle.BattleState, entity int, status battle.Status) bool {
		for _, s := range statuses {
			if status == s {
				return true
			}
		}
		return false
	}
}

func flagBoostedBasePower(flag moveset.Flags, m modifier.Modifier) OnModifyBasePower {
	return func(state *battle.BattleState, attacker, defender int, move moveset.Move, moveType types.Type, bp uint16) uint16 {
		if move.Flags.Has(flag) {
			return uint16(modifier.Apply(uint32(bp), m))
		}
		return bp
	}
}

func typeBoostingItem(t types.Type) OnModifyBasePower {
	return func(state *battle.BattleState, attacker, defender int, move moveset.Move, moveType types.Type, bp uint16) uint16 {
		if moveType == t {
			return uint16(modifier.Apply(uint32(bp), modifier.OnePointTwo))
		}
		return bp
	}
}
