package types

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCivilization_Known(t *testing.T) {
	tests := []struct {
		civ  Civilization
		want bool
	}{
		{CivEnglish, true},
		{CivHolyRomanEmpire, true},
		{CivKnightsTemplar, true},
		{CivGoldenHorde, true},
		{CivTughlaqDynasty, true},
		{Civilization("martians"), false},
		{Civilization(""), false},
	}
	for _, tt := range tests {
		if got := tt.civ.Known(); got != tt.want {
			t.Errorf("Known(%q) = %v, want %v", tt.civ, got, tt.want)
		}
	}
}

func TestPlayer_UnknownCivilization(t *testing.T) {
	// A civilization released after this library must not break decoding.
	raw := `{
		"name": "AlienPlayer",
		"profile_id": 12345,
		"result": "win",
		"civilization": "martians",
		"civilization_randomized": false,
		"rating": 1500,
		"rating_diff": 25,
		"mmr": 1600,
		"mmr_diff": 30,
		"input_type": "keyboard"
	}`

	var p Player
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("player with unrecognized civilization failed to decode: %v", err)
	}
	if p.Civilization != "martians" {
		t.Errorf("Civilization = %q, want martians", p.Civilization)
	}
	if p.Civilization.Known() {
		t.Error("Known() = true for a civilization this library does not recognize")
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(out), `"civilization":"martians"`) {
		t.Errorf("round-trip lost the raw label: %s", out)
	}
}
