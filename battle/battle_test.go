package battle

import "testing"

func TestEntityIndexLayout(t *testing.T) {
	cases := []struct {
		player, slot, want int
	}{
		{0, 0, 0},
		{0, 5, 5},
		{1, 0, 6},
		{1, 5, 11},
	}
	for _, c := range cases {
		if got := EntityIndex(c.player, c.slot); got != c.want {
			t.Errorf("EntityIndex(%d, %d) = %d, want %d", c.player, c.slot, got, c.want)
		}
	}
}

func TestBulkCopyIsIndependent(t *testing.T) {
	var state BattleState
	state.Entity(0, 0).HP = 100
	clone := state
	clone.Entity(0, 0).HP = 1
	if state.Entity(0, 0).HP != 100 {
		t.Errorf("mutating the clone should not affect the original; original HP = %d", state.Entity(0, 0).HP)
	}
}

func TestHasScreenAuroraVeilSupersedes(t *testing.T) {
	var state BattleState
	state.Sides[0].AuroraVeilTurns = 3
	if !state.HasScreen(0, true) || !state.HasScreen(0, false) {
		t.Errorf("Aurora Veil should cover both physical and special hits")
	}
}

func TestHasScreenReflectOnlyCoversPhysical(t *testing.T) {
	var state BattleState
	state.Sides[0].ReflectTurns = 5
	if !state.HasScreen(0, true) {
		t.Errorf("Reflect should be up for physical hits")
	}
	if state.HasScreen(0, false) {
		t.Errorf("Reflect should not cover special hits")
	}
}

func TestOpposingSide(t *testing.T) {
	if OpposingSide(0) != 1 || OpposingSide(1) != 0 {
		t.Errorf("OpposingSide should flip 0 and 1")
	}
}
