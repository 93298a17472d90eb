package types

import "testing"

func TestFromNameRoundTrip(t *testing.T) {
	for i := Type(0); i < Count; i++ {
		name := i.String()
		got, ok := FromName(name)
		if !ok {
			t.Fatalf("FromName(%q): not found", name)
		}
		if got != i {
			t.Errorf("FromName(%q) = %v, want %v", name, got, i)
		}
	}
}

func TestFromNameUnknownSentinel(t *testing.T) {
	got, ok := FromName("???")
	if !ok || got != Unknown {
		t.Errorf("FromName(\"???\") = %v, %v, want Unknown, true", got, ok)
	}
}

func TestFromNameLoosePunctuation(t *testing.T) {
	if got, ok := FromName("  fire "); !ok || got != Fire {
		t.Errorf("FromName(\"  fire \") = %v, %v, want Fire, true", got, ok)
	}
}

func TestFromNameNotFound(t *testing.T) {
	if _, ok := FromName("Cosmic"); ok {
		t.Errorf("FromName(\"Cosmic\") should not resolve")
	}
}

func TestSingleImmunity(t *testing.T) {
	cases := []struct {
		attacker, defender Type
		want                uint8
	}{
		{Ground, Flying, Immune},
		{Normal, Ghost, Immune},
		{Ghost, Normal, Immune},
		{Poison, Steel, Immune},
		{Electric, Ground, Immune},
		{Dragon, Fairy, Immune},
		{Psychic, Dark, Immune},
	}
	for _, c := range cases {
		if got := Single(c.attacker, c.defender); got != c.want {
			t.Errorf("Single(%v, %v) = %d, want %d", c.attacker, c.defender, got, c.want)
		}
	}
}

func TestEffectivenessDualType(t *testing.T) {
	// Ice vs Dragon/Flying (e.g. Dragonite): 2x * 2x -> 4x on the 4-scale (16).
	if got := Effectiveness(Ice, Dragon, Flying); got != Quadruple {
		t.Errorf("Effectiveness(Ice, Dragon, Flying) = %d, want %d", got, Quadruple)
	}
	// Electric vs Ground/Flying (e.g. Gliscor): Ground immunity dominates -> 0.
	if got := Effectiveness(Electric, Ground, Flying); got != Immune {
		t.Errorf("Effectiveness(Electric, Ground, Flying) = %d, want 0", got)
	}
	// Fire vs monotype Grass: straight single lookup.
	if got := Effectiveness(Fire, Grass, Grass); got != Double {
		t.Errorf("Effectiveness(Fire, Grass, Grass) = %d, want %d", got, Double)
	}
	// Fighting vs Poison/Flying (e.g. Gen1 Zubat-like dual type): 0.5 * 0.5 -> 0.25 (Quarter).
	if got := Effectiveness(Fighting, Poison, Flying); got != Quarter {
		t.Errorf("Effectiveness(Fighting, Poison, Flying) = %d, want %d", got, Quarter)
	}
}
