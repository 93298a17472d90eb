package fixture

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nicoberrocal/pokecalc/damage"
	"github.com/nicoberrocal/pokecalc/gen"
	"golang.org/x/sync/errgroup"
)

// CaseResult is the outcome of evaluating one Case.
type CaseResult struct {
	Index  int
	Name   string
	Passed bool
	// Skipped is true when the case's name matched a SkipList entry;
	// SkipReason then carries the curated reason and Passed is false.
	Skipped    bool
	SkipReason string
	// Err is non-nil for a malformed fixture (spec.md §7): an unknown
	// identifier, an unparseable expected value, or a JSON error. A
	// malformed case counts as neither passed nor failed.
	Err    error
	Result damage.Result
}

// Summary aggregates a RunAll pass.
type Summary struct {
	Results []CaseResult
	Passed  int
	Failed  int
	Skipped int
	Errored int
}

// evaluateExpected decides pass/fail for one case's computed rolls
// against its Expected JSON value: an array means exact per-roll match
// (all 16 entries, in order); a bare number means range-checking that
// scalar against [rolls[0], rolls[15]] (rolls are sorted ascending per
// spec.md §8's monotonicity invariant, so the endpoints are the min/max).
func evaluateExpected(expected json.RawMessage, rolls [16]uint16) (bool, error) {
	var asArray []uint16
	if err := json.Unmarshal(expected, &asArray); err == nil {
		if len(asArray) != 16 {
			return false, fmt.Errorf("fixture: expected array must have 16 entries, got %d", len(asArray))
		}
		for i, want := range asArray {
			if rolls[i] != want {
				return false, nil
			}
		}
		return true, nil
	}

	var asScalar float64
	if err := json.Unmarshal(expected, &asScalar); err == nil {
		min, max := float64(rolls[0]), float64(rolls[15])
		return asScalar >= min && asScalar <= max, nil
	}

	return false, fmt.Errorf("fixture: expected value is neither a 16-element array nor a number: %s", string(expected))
}

// Evaluate resolves and runs a single case: builds the battle state,
// resolves the move, applies any Z-move-style overrides, invokes the
// damage package, and checks the result against Expected. c.Gen selects
// the generation; 0 is rejected as malformed rather than silently
// defaulting, since a fixture that omits gen is itself malformed input
// (callers wanting a project-wide default generation should fill it in
// from internal/config.Config.DefaultGeneration before calling Evaluate).
func Evaluate(index int, c Case) CaseResult {
	res := CaseResult{Index: index, Name: c.Name}

	if c.Gen < uint8(gen.Gen1) || c.Gen > uint8(gen.Gen9) {
		res.Err = fmt.Errorf("fixture: case %q has invalid gen %d", c.Name, c.Gen)
		return res
	}

	state, attacker, defender, moveID, err := buildState(c)
	if err != nil {
		res.Err = err
		return res
	}

	moveTypeOverride, err := resolveMoveTypeOverride(c.Move.MoveTypeOverride)
	if err != nil {
		res.Err = err
		return res
	}

	g := gen.Generation(c.Gen)
	var result damage.Result
	if c.Move.BasePowerOverride != nil || moveTypeOverride != nil {
		result = damage.CalculateDamageWithOverrides(g, &state, attacker, defender, moveID, c.Move.IsCrit, c.Move.IsSpread, damage.Overrides{
			BasePower: c.Move.BasePowerOverride,
			MoveType:  moveTypeOverride,
		})
	} else if c.Move.Hits > 1 {
		hits := damage.CalculateMultiHit(g, &state, attacker, defender, moveID, c.Move.IsCrit, c.Move.IsSpread)
		result = hits[0]
	} else {
		result = damage.CalculateDamage(g, &state, attacker, defender, moveID, c.Move.IsCrit, c.Move.IsSpread)
	}
	res.Result = result

	passed, evalErr := evaluateExpected(c.Expected, result.Rolls)
	if evalErr != nil {
		res.Err = evalErr
		return res
	}
	res.Passed = passed
	return res
}

// RunAll evaluates every case in cases concurrently, honoring skip's
// curated exclusions, and bounds concurrency to workers (spec.md §5:
// "Fixture evaluation is embarrassingly parallel: each case is
// independent and can be scheduled across cores without coordination").
// workers <= 0 leaves errgroup.Group's limit unset (unbounded).
func RunAll(cases []Case, skip SkipList, workers int) (Summary, error) {
	results := make([]CaseResult, len(cases))

	g, _ := errgroup.WithContext(context.Background())
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, c := range cases {
		i, c := i, c
		if reason, ok := skip.Reason(c.Name); ok {
			results[i] = CaseResult{Index: i, Name: c.Name, Skipped: true, SkipReason: reason}
			continue
		}
		g.Go(func() error {
			results[i] = Evaluate(i, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	summary := Summary{Results: results}
	for _, r := range results {
		switch {
		case r.Skipped:
			summary.Skipped++
		case r.Err != nil:
			summary.Errored++
		case r.Passed:
			summary.Passed++
		default:
			summary.Failed++
		}
	}
	return summary, nil
}
