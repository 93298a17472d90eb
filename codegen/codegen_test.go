package codegen

import (
	"strings"
	"testing"
)

func TestToValidIdentHandlesPunctuationAndDigits(t *testing.T) {
	cases := map[string]string{
		"Brick Break":                  "BrickBreak",
		"U-turn":                       "UTurn",
		"King's Shield":                "KingSShield",
		"10,000,000 Volt Thunderbolt": "_10000000VoltThunderbolt",
	}
	for in, want := range cases {
		if got := ToValidIdent(in); got != want {
			t.Errorf("ToValidIdent(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeKeyStripsPunctuationAndLowercases(t *testing.T) {
	if got := NormalizeKey("Brick Break!"); got != "brickbreak" {
		t.Errorf("NormalizeKey = %q, want brickbreak", got)
	}
}

func TestHasSecondaryEffects(t *testing.T) {
	if HasSecondaryEffects(MoveData{}) {
		t.Errorf("empty MoveData should not have secondary effects")
	}
	sheer := true
	if !HasSecondaryEffects(MoveData{HasSheerForce: &sheer}) {
		t.Errorf("hasSheerForce=true should count as a secondary effect")
	}
	nonNull := MoveData{Secondary: []byte(`{"chance":10}`)}
	if !HasSecondaryEffects(nonNull) {
		t.Errorf("a non-null secondary payload should count as a secondary effect")
	}
	explicitNull := MoveData{Secondary: []byte(`null`)}
	if HasSecondaryEffects(explicitNull) {
		t.Errorf("an explicit JSON null secondary should not count")
	}
}

func TestGenerateTypesBuildsSquareMatrix(t *testing.T) {
	chart := map[string]TypeChartEntry{
		"Fire":  {DamageTaken: map[string]uint8{"Water": 1, "Fire": 2, "Grass": 2}},
		"Water": {DamageTaken: map[string]uint8{"Fire": 0, "Water": 2, "Grass": 1}},
		"Grass": {DamageTaken: map[string]uint8{"Fire": 1, "Water": 2, "Grass": 2}},
	}
	m, err := GenerateTypes(chart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Names) != 3 {
		t.Fatalf("expected 3 types, got %d", len(m.Names))
	}
	for _, row := range m.Matrix {
		if len(row) != 3 {
			t.Fatalf("expected a 3x3 matrix, got row of length %d", len(row))
		}
	}

	src, err := m.Render()
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	out := string(src)
	if !strings.Contains(out, "package types") {
		t.Errorf("expected generated source to declare package types, got:\n%s", out)
	}
	if !strings.Contains(out, "Fire Type = iota") {
		t.Errorf("expected the first variant to be Fire, got:\n%s", out)
	}
	if !strings.Contains(out, "var TypeChart") {
		t.Errorf("expected a TypeChart table, got:\n%s", out)
	}
}

func TestGenerateNaturesPlacesNeutralOnDiagonal(t *testing.T) {
	atk, def := "atk", "def"
	data := map[string]NatureData{
		"hardy":  {Name: "Hardy"},
		"lonely": {Name: "Lonely", Plus: &atk, Minus: &def},
	}
	m, err := GenerateNatures(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Grid[0] != "Hardy" {
		t.Errorf("expected Hardy on the diagonal at slot 0, got %q", m.Grid[0])
	}
	// atk index 0, def index 1 => grid[0*5+1] = grid[1]
	if m.Grid[1] != "Lonely" {
		t.Errorf("expected Lonely at slot 1 (plus=atk, minus=def), got %q", m.Grid[1])
	}

	src, err := m.Render()
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	if !strings.Contains(string(src), "func (n Nature) StatModifier") {
		t.Errorf("expected a StatModifier method in generated source")
	}
}

func TestGenerateNaturesRejectsUnknownStat(t *testing.T) {
	bogus := "bogus"
	def := "def"
	data := map[string]NatureData{
		"broken": {Name: "Broken", Plus: &bogus, Minus: &def},
	}
	if _, err := GenerateNatures(data); err == nil {
		t.Errorf("expected an error for an unrecognized stat name")
	}
}

func TestGenerateAbilitiesSortsByNumAndFiltersNegative(t *testing.T) {
	data := map[string]AbilityData{
		"intimidate": {Name: "Intimidate", Num: 22},
		"stench":     {Name: "Stench", Num: 1},
		"cacophony":  {Name: "Cacophony", Num: -1},
	}
	m, err := GenerateAbilities(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Names) != 2 {
		t.Fatalf("expected 2 valid abilities, got %d", len(m.Names))
	}
	if m.Names[0] != "Stench" || m.Names[1] != "Intimidate" {
		t.Errorf("expected num-sorted order [Stench, Intimidate], got %v", m.Names)
	}
}

func TestGenerateMovesSynthesizesFlags(t *testing.T) {
	power := uint16(75)
	pp := uint8(15)
	category := "Physical"
	moveType := "Fighting"
	data := map[string]MoveData{
		"brickbreak": {
			Name: "Brick Break", Num: 280, BasePower: &power, PP: &pp,
			Category: &category, Type: &moveType,
		},
		"eruption": {
			Name: "Eruption", Num: 284, BasePower: &power, PP: &pp,
			Category: &category, Type: &moveType,
		},
	}
	m, err := GenerateMoves(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hasFlag := func(name string) bool {
		for _, f := range m.FlagNames {
			if f == name {
				return true
			}
		}
		return false
	}
	if !hasFlag("BreaksScreens") {
		t.Errorf("expected BreaksScreens to be synthesized for Brick Break")
	}
	if !hasFlag("VariablePower") {
		t.Errorf("expected VariablePower to be synthesized for Eruption")
	}

	var brickBreak *MoveEntry
	for i := range m.Entries {
		if m.Entries[i].Name == "Brick Break" {
			brickBreak = &m.Entries[i]
		}
	}
	if brickBreak == nil {
		t.Fatalf("expected to find Brick Break in generated entries")
	}
	bit := uint64(0)
	for i, f := range m.FlagNames {
		if f == "BreaksScreens" {
			bit = 1 << uint(i)
		}
	}
	if brickBreak.FlagBits&bit == 0 {
		t.Errorf("expected Brick Break's flag bits to include BreaksScreens")
	}

	src, err := m.Render()
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	if !strings.Contains(string(src), "package moveset") {
		t.Errorf("expected generated source to declare package moveset")
	}
}

func TestGenerateMovesOrdersByNum(t *testing.T) {
	power := uint16(40)
	data := map[string]MoveData{
		"tackle": {Name: "Tackle", Num: 33, BasePower: &power},
		"pound":  {Name: "Pound", Num: 1, BasePower: &power},
	}
	m, err := GenerateMoves(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Entries[0].Name != "Pound" || m.Entries[1].Name != "Tackle" {
		t.Errorf("expected num-sorted order [Pound, Tackle], got %v", []string{m.Entries[0].Name, m.Entries[1].Name})
	}
}

func TestGenerateTerrainsStripsTerrainSuffix(t *testing.T) {
	electric := "electricterrain"
	data := map[string]MoveData{
		"electricterrainmove": {Name: "Electric Terrain", Terrain: &electric},
	}
	m, err := GenerateTerrains(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Names) != 1 || m.Names[0] != "electricterrain" {
		t.Fatalf("expected one terrain key 'electricterrain', got %v", m.Names)
	}

	src, err := m.Render()
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	if !strings.Contains(string(src), "TerrainNone Terrain = iota") {
		t.Errorf("expected TerrainNone to be the zero-value variant, got:\n%s", string(src))
	}
	if !strings.Contains(string(src), "\n\tElectric\n") {
		t.Errorf("expected an Electric variant (terrain suffix stripped), got:\n%s", string(src))
	}
}

func TestGenerateSpeciesRequiresBaseStatsAndTypes(t *testing.T) {
	num := int16(1)
	data := map[string]PokedexEntry{
		"bulbasaur": {Num: &num, Name: "Bulbasaur", Types: []string{"Grass", "Poison"}, BaseStats: &BaseStats{HP: 45, Atk: 49, Def: 49, SpA: 65, SpD: 65, Spe: 45}},
	}
	m, err := GenerateSpecies(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Names) != 1 || m.Type2[0] != "Poison" {
		t.Fatalf("expected Bulbasaur with secondary type Poison, got %+v", m)
	}

	missingStats := map[string]PokedexEntry{
		"missingno": {Num: &num, Name: "MissingNo", Types: []string{"Normal"}},
	}
	if _, err := GenerateSpecies(missingStats); err == nil {
		t.Errorf("expected an error for a species missing baseStats")
	}
}

func TestGenerateItemsIncludesNoneAndFlingPower(t *testing.T) {
	num := int16(5)
	data := map[string]ItemData{
		"ironball": {Name: "Iron Ball", Num: &num, Fling: &Fling{BasePower: 130}},
	}
	m, err := GenerateItems(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Names) != 1 || m.FlingPower[0] != 130 {
		t.Fatalf("expected Iron Ball with fling power 130, got %+v", m)
	}

	src, err := m.Render()
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	if !strings.Contains(string(src), "None ItemID = iota") {
		t.Errorf("expected None to be the zero-value variant, got:\n%s", string(src))
	}
}

func TestDedupIdentDisambiguatesCollisions(t *testing.T) {
	used := map[string]int{}
	a := dedupIdent(used, "Thunderbolt")
	b := dedupIdent(used, "Thunderbolt")
	if a == b {
		t.Errorf("expected dedupIdent to disambiguate repeated identifiers, got %q twice", a)
	}
}
