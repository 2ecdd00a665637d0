package types

// Civilization is a playable civilization as aoe4world labels it, e.g.
// "english" or "holy_roman_empire". New civilizations ship with game
// expansions, so values outside the constants below still decode and
// round-trip unchanged.
type Civilization string

const (
	CivEnglish           Civilization = "english"
	CivFrench            Civilization = "french"
	CivHolyRomanEmpire   Civilization = "holy_roman_empire"
	CivRus               Civilization = "rus"
	CivMongols           Civilization = "mongols"
	CivChinese           Civilization = "chinese"
	CivAbbasidDynasty    Civilization = "abbasid_dynasty"
	CivDelhiSultanate    Civilization = "delhi_sultanate"
	CivOttomans          Civilization = "ottomans"
	CivMalians           Civilization = "malians"
	CivJapanese          Civilization = "japanese"
	CivByzantines        Civilization = "byzantines"
	CivJeanneDArc        Civilization = "jeanne_darc"
	CivAyyubids          Civilization = "ayyubids"
	CivZhuXisLegacy      Civilization = "zhu_xis_legacy"
	CivOrderOfTheDragon  Civilization = "order_of_the_dragon"
	CivHouseOfLancaster  Civilization = "house_of_lancaster"
	CivKnightsTemplar    Civilization = "knights_templar"
	CivGoldenHorde       Civilization = "golden_horde"
	CivMacedonianDynasty Civilization = "macedonian_dynasty"
	CivSengokuDaimyo     Civilization = "sengoku_daimyo"
	CivTughlaqDynasty    Civilization = "tughlaq_dynasty"
)

var knownCivilizations = map[Civilization]struct{}{
	CivEnglish:           {},
	CivFrench:            {},
	CivHolyRomanEmpire:   {},
	CivRus:               {},
	CivMongols:           {},
	CivChinese:           {},
	CivAbbasidDynasty:    {},
	CivDelhiSultanate:    {},
	CivOttomans:          {},
	CivMalians:           {},
	CivJapanese:          {},
	CivByzantines:        {},
	CivJeanneDArc:        {},
	CivAyyubids:          {},
	CivZhuXisLegacy:      {},
	CivOrderOfTheDragon:  {},
	CivHouseOfLancaster:  {},
	CivKnightsTemplar:    {},
	CivGoldenHorde:       {},
	CivMacedonianDynasty: {},
	CivSengokuDaimyo:     {},
	CivTughlaqDynasty:    {},
}

// Known reports whether c is a civilization this library recognizes.
// Unrecognized labels are usually civilizations released after this
// version of the library.
func (c Civilization) Known() bool {
	_, ok := knownCivilizations[c]
	return ok
}
