package cards

import "testing"

func TestResolveSuit(t *testing.T) {
	tests := []struct {
		raw  string
		want Suit
		ok   bool
	}{
		{"Wands", Wands, true},
		{"wands", Wands, true},
		{"Batons", Wands, true},
		{"Bâtons", Wands, true},
		{"Staves", Wands, true},
		{"Rods", Wands, true},
		{"Cups", Cups, true},
		{"Coupes", Cups, true},
		{"Chalices", Cups, true},
		{"Swords", Swords, true},
		{"Épées", Swords, true},
		{"epees", Swords, true},
		{"Blades", Swords, true},
		{"Pentacles", Pentacles, true},
		{"Deniers", Pentacles, true},
		{"Disks", Pentacles, true},
		{"Discs", Pentacles, true},
		{"Coins", Pentacles, true},
		{"coin", Pentacles, true},
		{"", "", false},
		{"Stars", "", false},
	}

	for _, tt := range tests {
		got, ok := ResolveSuit(tt.raw)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ResolveSuit(%q) = %q,%v; want %q,%v", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFoldToken(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Bâtons", "batons"},
		{"ÉPÉES", "epees"},
		{"d'Épées", "depees"},
		{"  Cups  ", "cups"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FoldToken(tt.in); got != tt.want {
			t.Errorf("FoldToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCanonicalSuitsOrder(t *testing.T) {
	want := []Suit{Wands, Cups, Swords, Pentacles}
	if len(CanonicalSuits) != len(want) {
		t.Fatalf("len = %d, want %d", len(CanonicalSuits), len(want))
	}
	for i, s := range want {
		if CanonicalSuits[i] != s {
			t.Errorf("CanonicalSuits[%d] = %q, want %q", i, CanonicalSuits[i], s)
		}
	}
}
