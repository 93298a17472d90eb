package items

import "testing"

func TestFromNameRoundTrip(t *testing.T) {
	for i := ItemID(0); i < Count; i++ {
		got, ok := FromName(names[i])
		if !ok || got != i {
			t.Errorf("FromName(%q) = %v, %v, want %v, true", names[i], got, ok, i)
		}
	}
}

func TestNoneIsZeroValue(t *testing.T) {
	var id ItemID
	if id != None {
		t.Errorf("zero value of ItemID should be None")
	}
}

func TestUnknownID(t *testing.T) {
	if Data(Count).Name != "" {
		t.Errorf("Data(Count) should be the zero Item")
	}
}
