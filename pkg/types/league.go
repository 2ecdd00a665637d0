package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// LeagueTier is a rank league tier, e.g. "gold" or "conqueror".
type LeagueTier string

const (
	TierUnranked  LeagueTier = "unranked"
	TierBronze    LeagueTier = "bronze"
	TierSilver    LeagueTier = "silver"
	TierGold      LeagueTier = "gold"
	TierPlatinum  LeagueTier = "platinum"
	TierDiamond   LeagueTier = "diamond"
	TierConqueror LeagueTier = "conqueror"
)

// League is a player's rank league and division, reported on the wire as
// "tier_division" (e.g. "gold_3" for Gold III) or "unranked". Labels that
// do not parse, such as tiers added after this library, keep their raw
// form and round-trip unchanged; Known reports whether parsing succeeded.
type League struct {
	// Tier is the league tier, or empty for unparsed labels.
	Tier LeagueTier
	// Division is the 1-based division within the tier, highest 3.
	// Zero for TierUnranked and unparsed labels.
	Division int

	raw string
}

// ParseLeague parses a wire-format league label. It never fails; labels
// outside the known format are preserved verbatim with Known() == false.
func ParseLeague(s string) League {
	l := League{raw: s}
	if s == "" || s == string(TierUnranked) {
		l.Tier = TierUnranked
		return l
	}
	tier, div, found := strings.Cut(s, "_")
	if !found {
		return l
	}
	n, err := strconv.Atoi(div)
	if err != nil || n < 1 || n > 3 {
		return l
	}
	switch t := LeagueTier(tier); t {
	case TierBronze, TierSilver, TierGold, TierPlatinum, TierDiamond, TierConqueror:
		l.Tier = t
		l.Division = n
	}
	return l
}

// Known reports whether the label parsed into a recognized tier.
func (l League) Known() bool {
	return l.Tier != ""
}

// Unranked reports whether the player has no rank in this mode.
func (l League) Unranked() bool {
	return l.Tier == TierUnranked
}

// String renders the league in wire format. Unparsed labels come back
// verbatim.
func (l League) String() string {
	if l.Division > 0 {
		return fmt.Sprintf("%s_%d", l.Tier, l.Division)
	}
	if l.Tier == TierUnranked {
		return string(TierUnranked)
	}
	return l.raw
}

func (l League) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *League) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("league must be a string: %w", err)
	}
	*l = ParseLeague(s)
	return nil
}
