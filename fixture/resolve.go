package fixture

import (
	"fmt"

	"github.com/nicoberrocal/pokecalc/abilities"
	"github.com/nicoberrocal/pokecalc/battle"
	"github.com/nicoberrocal/pokecalc/builder"
	"github.com/nicoberrocal/pokecalc/items"
	"github.com/nicoberrocal/pokecalc/moveset"
	"github.com/nicoberrocal/pokecalc/natures"
	"github.com/nicoberrocal/pokecalc/species"
	"github.com/nicoberrocal/pokecalc/types"
)

var statusByName = map[string]battle.Status{
	"":          battle.StatusNone,
	"none":      battle.StatusNone,
	"burn":      battle.Burn,
	"paralysis": battle.Paralysis,
	"poison":    battle.Poison,
	"toxic":     battle.Toxic,
	"sleep":     battle.Sleep,
	"freeze":    battle.Freeze,
}

var weatherByName = map[string]battle.Weather{
	"":            battle.WeatherNone,
	"none":        battle.WeatherNone,
	"sun":         battle.Sun,
	"rain":        battle.Rain,
	"sand":        battle.Sand,
	"sandstorm":   battle.Sand,
	"hail":        battle.Hail,
	"snow":        battle.Snow,
	"harshsun":    battle.HarshSun,
	"heavyrain":   battle.HeavyRain,
	"strongwinds": battle.StrongWinds,
}

var terrainByName = map[string]battle.Terrain{
	"":         battle.TerrainNone,
	"none":     battle.TerrainNone,
	"electric": battle.Electric,
	"grassy":   battle.Grassy,
	"psychic":  battle.Psychic,
	"misty":    battle.Misty,
}

// unknownIdentifierError is the "missing-entity condition" spec.md §7
// describes: the only error kind this package's name resolution can
// produce, naming the field and the value that did not resolve.
type unknownIdentifierError struct {
	field string
	value string
}

func (e *unknownIdentifierError) Error() string {
	return fmt.Sprintf("fixture: unknown %s %q", e.field, e.value)
}

func resolveStatus(name string) (battle.Status, error) {
	if s, ok := statusByName[normalizeKey(name)]; ok {
		return s, nil
	}
	return 0, &unknownIdentifierError{"status", name}
}

func resolveWeather(name string) (battle.Weather, error) {
	if w, ok := weatherByName[normalizeKey(name)]; ok {
		return w, nil
	}
	return 0, &unknownIdentifierError{"weather", name}
}

func resolveTerrain(name string) (battle.Terrain, error) {
	if t, ok := terrainByName[normalizeKey(name)]; ok {
		return t, nil
	}
	return 0, &unknownIdentifierError{"terrain", name}
}

func normalizeKey(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == ' ' || r == '-' || r == '_' {
			continue
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		out = append(out, r)
	}
	return string(out)
}

// buildConfig resolves an EntitySpec's names into a builder.Config, with
// defaults matching builder.New for any blank field (a blank nature
// resolves to Hardy, a blank ability to the species' first ability slot,
// a blank item to None).
func buildConfig(spec EntitySpec, moveID moveset.MoveID) (builder.Config, error) {
	sp, ok := species.FromName(spec.Species)
	if !ok {
		return builder.Config{}, &unknownIdentifierError{"species", spec.Species}
	}
	cfg := builder.New(sp)

	level := spec.Level
	if level == 0 {
		level = builder.DefaultLevel
	}
	cfg = cfg.WithLevel(level).WithIVs(spec.IVs).WithEVs(spec.EVs).WithMove(0, moveID)

	if spec.Nature != "" {
		n, ok := natures.FromName(spec.Nature)
		if !ok {
			return builder.Config{}, &unknownIdentifierError{"nature", spec.Nature}
		}
		cfg = cfg.WithNature(n)
	}
	if spec.Ability != "" {
		a, ok := abilities.FromName(spec.Ability)
		if !ok {
			return builder.Config{}, &unknownIdentifierError{"ability", spec.Ability}
		}
		cfg = cfg.WithAbility(a)
	}
	if spec.Item != "" {
		it, ok := items.FromName(spec.Item)
		if !ok {
			return builder.Config{}, &unknownIdentifierError{"item", spec.Item}
		}
		cfg = cfg.WithItem(it)
	}
	if spec.CurrentHP != nil {
		cfg = cfg.WithCurrentHP(*spec.CurrentHP)
	}
	return cfg, nil
}

// applySide writes a SideSpec's turns-remaining/hazard fields into side,
// treating every boolean flag as "apply for at least one turn" since
// exact turn counts never affect the damage formula (only "is it up").
func applySide(side *battle.Side, spec *SideSpec) {
	if spec == nil {
		return
	}
	if spec.Reflect {
		side.ReflectTurns = 1
	}
	if spec.LightScreen {
		side.LightScreenTurns = 1
	}
	if spec.AuroraVeil {
		side.AuroraVeilTurns = 1
	}
	if spec.Tailwind {
		side.TailwindTurns = 1
	}
	side.StealthRock = spec.StealthRock
	side.StickyWeb = spec.StickyWeb
	side.Spikes = spec.Spikes
	side.ToxicSpikes = spec.ToxicSpikes
}

// buildState spawns the attacker into (0, 0) and the defender into
// (1, 0), applies boosts/status post-spawn (builder.Spawn always resets
// them, matching a real spawn), and applies field conditions. It returns
// the state along with the resolved move ID and the 0-scale-relative
// attacker/defender indices CalculateDamage expects.
func buildState(c Case) (state battle.BattleState, attacker, defender int, moveID moveset.MoveID, err error) {
	moveID, ok := moveset.FromName(c.Move.Name)
	if !ok {
		return state, 0, 0, 0, &unknownIdentifierError{"move", c.Move.Name}
	}

	atkCfg, err := buildConfig(c.Attacker, moveID)
	if err != nil {
		return state, 0, 0, 0, err
	}
	defCfg, err := buildConfig(c.Defender, 0)
	if err != nil {
		return state, 0, 0, 0, err
	}

	builder.Spawn(&state, 0, 0, atkCfg)
	builder.Spawn(&state, 1, 0, defCfg)

	attacker = battle.EntityIndex(0, 0)
	defender = battle.EntityIndex(1, 0)

	state.Entities[attacker].Boosts = c.Attacker.Boosts
	state.Entities[defender].Boosts = c.Defender.Boosts

	atkStatus, statusErr := resolveStatus(c.Attacker.Status)
	if statusErr != nil {
		return state, 0, 0, 0, statusErr
	}
	state.Entities[attacker].Status = atkStatus

	defStatus, statusErr := resolveStatus(c.Defender.Status)
	if statusErr != nil {
		return state, 0, 0, 0, statusErr
	}
	state.Entities[defender].Status = defStatus

	weather, err := resolveWeather(c.Field.Weather)
	if err != nil {
		return state, 0, 0, 0, err
	}
	terrain, err := resolveTerrain(c.Field.Terrain)
	if err != nil {
		return state, 0, 0, 0, err
	}
	state.Weather = weather
	state.Terrain = terrain
	state.Gravity = c.Field.IsGravity

	applySide(&state.Sides[0], c.Field.AttackerSide)
	applySide(&state.Sides[1], c.Field.DefenderSide)

	return state, attacker, defender, moveID, nil
}

// resolveMoveTypeOverride resolves MoveSpec.MoveTypeOverride, returning
// (nil, nil) when the field is blank.
func resolveMoveTypeOverride(name string) (*types.Type, error) {
	if name == "" {
		return nil, nil
	}
	t, ok := types.FromName(name)
	if !ok {
		return nil, &unknownIdentifierError{"moveTypeOverride", name}
	}
	return &t, nil
}
