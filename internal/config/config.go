// Package config loads process-start configuration through viper, the
// same library Knoblauchpilze-sogserver's pkg/arguments uses, and freezes
// it into a plain struct rather than leaving scattered viper.Get calls
// through the codebase. Read once, in main, before any codegen or
// fixture run begins.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/nicoberrocal/pokecalc/gen"
)

// Config holds the settings codegen and the fixture harness need. The
// core damage-calculation path takes no configuration of its own — every
// input to calculate_damage is an explicit function argument (spec.md
// §6).
type Config struct {
	// DefaultGeneration is the generation a caller can fill into a fixture
	// case that omits an explicit "gen" field; fixture.Evaluate itself
	// does not read it and rejects gen 0.
	DefaultGeneration gen.Generation
	// SkipListPath points at the curated fixture skip list (spec.md §7,
	// "Intentionally skipped fixture").
	SkipListPath string
	// CodegenInputDir holds the PokemonShowdown-style JSON sources
	// (pokedex.json, moves.json, ...) codegen consumes.
	CodegenInputDir string
	// CodegenOutputDir is where codegen would write generated source
	// files if run against the full corpus (spec.md §6, "Persisted
	// state: None at runtime" — this only matters for the codegen tool,
	// never for the calculator itself).
	CodegenOutputDir string
	// LogLevel is the minimum obslog.Severity name ("debug", "info",
	// "warn", "error").
	LogLevel string
	// FixtureWorkers bounds how many fixture cases run concurrently; 0
	// means errgroup.Group's own unlimited default.
	FixtureWorkers int
}

// defaults mirrors the zero-config behavior a fresh checkout should have:
// Gen 9, no skip list, no codegen directories configured, info logging,
// and fixture evaluation capped at a conservative worker count.
func defaults() Config {
	return Config{
		DefaultGeneration: gen.Gen9,
		SkipListPath:      "",
		CodegenInputDir:   "testdata/pokemonshowdown",
		CodegenOutputDir:  "",
		LogLevel:          "info",
		FixtureWorkers:    8,
	}
}

// Load reads environment variables prefixed POKECALC_ (e.g.
// POKECALC_LOG_LEVEL) and, if present, a YAML file at configPath,
// layering them over defaults(). An empty configPath skips the file
// read entirely; a missing file at a non-empty path is an error.
func Load(configPath string) (Config, error) {
	cfg := defaults()

	v := viper.New()
	v.SetEnvPrefix("POKECALC")
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("config: reading %s: %w", configPath, err)
		}
	}

	if v.IsSet("default_generation") {
		g, err := parseGeneration(v.GetInt("default_generation"))
		if err != nil {
			return cfg, err
		}
		cfg.DefaultGeneration = g
	}
	if v.IsSet("skip_list_path") {
		cfg.SkipListPath = v.GetString("skip_list_path")
	}
	if v.IsSet("codegen_input_dir") {
		cfg.CodegenInputDir = v.GetString("codegen_input_dir")
	}
	if v.IsSet("codegen_output_dir") {
		cfg.CodegenOutputDir = v.GetString("codegen_output_dir")
	}
	if v.IsSet("log_level") {
		cfg.LogLevel = v.GetString("log_level")
	}
	if v.IsSet("fixture_workers") {
		cfg.FixtureWorkers = v.GetInt("fixture_workers")
	}

	return cfg, nil
}

func parseGeneration(n int) (gen.Generation, error) {
	if n < int(gen.Gen1) || n > int(gen.Gen9) {
		return 0, fmt.Errorf("config: default_generation %d out of range [1, 9]", n)
	}
	return gen.Generation(n), nil
}
