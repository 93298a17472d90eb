package modifier

import "testing"

func TestPokeRoundHalfDown(t *testing.T) {
	cases := []struct{ value, divisor, want uint32 }{
		{2048, 4096, 0},
		{2049, 4096, 1},
		{4096, 4096, 1},
		{6144, 4096, 1},
		{6145, 4096, 2},
		{8192, 4096, 2},
		{5, 10, 0},
		{6, 10, 1},
		{15, 10, 1},
		{16, 10, 2},
	}
	for _, c := range cases {
		if got := PokeRound(c.value, c.divisor); got != c.want {
			t.Errorf("PokeRound(%d, %d) = %d, want %d", c.value, c.divisor, got, c.want)
		}
	}
}

func TestApplyFloorNotPokeRound(t *testing.T) {
	cases := []struct{ value, num, den, want uint32 }{
		{100, 3, 2, 150},
		{101, 3, 2, 151},
		{99, 3, 2, 148},
	}
	for _, c := range cases {
		if got := ApplyFloor(c.value, c.num, c.den); got != c.want {
			t.Errorf("ApplyFloor(%d, %d, %d) = %d, want %d", c.value, c.num, c.den, got, c.want)
		}
	}
}

func TestChainExactValues(t *testing.T) {
	if got := Chain([]Modifier{OnePointFive, OnePointFive}); got != 9216 {
		t.Errorf("Chain([1.5,1.5]) = %d, want 9216", got)
	}
	if got := Chain([]Modifier{OnePointFive, Half}); got != 3072 {
		t.Errorf("Chain([1.5,0.5]) = %d, want 3072", got)
	}
	if got := Chain(nil); got != 4096 {
		t.Errorf("Chain(nil) = %d, want 4096 (identity)", got)
	}
}

func TestGetBaseDamageWorkedExamples(t *testing.T) {
	if got := GetBaseDamage(50, 90, 100, 100, true); got != 41 {
		t.Errorf("GetBaseDamage(50,90,100,100,true) = %d, want 41", got)
	}
	if got := GetBaseDamage(100, 90, 100, 100, true); got != 77 {
		t.Errorf("GetBaseDamage(100,90,100,100,true) = %d, want 77", got)
	}
}

func TestGetBaseDamageZeroDefenseGuard(t *testing.T) {
	if got := GetBaseDamage(50, 90, 100, 0, true); got != 0 {
		t.Errorf("GetBaseDamage with zero defense = %d, want 0", got)
	}
}

func TestApplyBoostExactValues(t *testing.T) {
	cases := []struct {
		base  uint16
		stage int8
		want  uint16
	}{
		{100, 0, 100},
		{100, 1, 150},
		{100, 6, 400},
		{100, -1, 66},
		{100, -6, 25},
	}
	for _, c := range cases {
		if got := ApplyBoost(c.base, c.stage); got != c.want {
			t.Errorf("ApplyBoost(%d, %d) = %d, want %d", c.base, c.stage, got, c.want)
		}
	}
}

func TestApplyOneIsIdentity(t *testing.T) {
	if got := Apply(12345, One); got != 12345 {
		t.Errorf("Apply(x, One) should be identity, got %d", got)
	}
}

func TestApplyRandomRollClampsIndex(t *testing.T) {
	if got := ApplyRandomRoll(1000, 200); got != ApplyRandomRoll(1000, 15) {
		t.Errorf("ApplyRandomRoll should clamp roll index to 15")
	}
}
