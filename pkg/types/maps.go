package types

// Map is a map name as aoe4world reports it, e.g. "Dry Arabia". Map pools
// rotate every season, so unrecognized names decode and round-trip
// unchanged; Type returns MapTypeUnknown for them.
type Map string

const (
	MapCraftedMap       Map = "Crafted Map"
	MapAltai            Map = "Altai"
	MapAncientSpires    Map = "Ancient Spires"
	MapArchipelago      Map = "Archipelago"
	MapBlackForest      Map = "Black Forest"
	MapBoulderBay       Map = "Boulder Bay"
	MapConfluence       Map = "Confluence"
	MapDanubeRiver      Map = "Danube River"
	MapDryArabia        Map = "Dry Arabia"
	MapFrenchPass       Map = "French Pass"
	MapHighView         Map = "High View"
	MapHillAndDale      Map = "Hill and Dale"
	MapKingOfTheHill    Map = "King of the Hill"
	MapLipany           Map = "Lipany"
	MapMongolianHeights Map = "Mongolian Heights"
	MapMountainPass     Map = "Mountain Pass"
	MapNagari           Map = "Nagari"
	MapWarringIslands   Map = "Warring Islands"
	MapMegaRandom       Map = "MegaRandom"
	MapThePit           Map = "The Pit"
	MapOasis            Map = "Oasis"
	MapBaltic           Map = "Baltic"
	MapForestPonds      Map = "Forest Ponds"
	MapWetlands         Map = "Wetlands"
	MapPrairie          Map = "Prairie"
	MapWateringHoles    Map = "Watering Holes"
	MapHideout          Map = "Hideout"
	MapMountainClearing Map = "Mountain Clearing"
	MapContinental      Map = "Continental"
	MapMarshland        Map = "Marshland"
	MapFourLakes        Map = "Four Lakes"
	MapMigration        Map = "Migration"
	MapVolcanicIsland   Map = "Volcanic Island"
	MapGoldenHeights    Map = "Golden Heights"
	MapAfricanWaters    Map = "African Waters"
	MapThickets         Map = "Thickets"
	MapGoldenPit        Map = "Golden Pit"
	MapCliffside        Map = "Cliffside"
	MapGorge            Map = "Gorge"
	MapCanal            Map = "Canal"
	MapGlade            Map = "Glade"
	MapHaywire          Map = "Haywire"
	MapTurtleRidge      Map = "Turtle Ridge"
	MapRockyRiver       Map = "Rocky River"
	MapHimeyama         Map = "Himeyama"
	MapForts            Map = "Forts"
	MapHiddenValley     Map = "Hidden Valley"

	// MapMediterranean is the pre-rename label for MapBaltic. Older games
	// still report it.
	MapMediterranean Map = "Mediterranean"
)

// MapType is the terrain classification of a map.
type MapType string

const (
	// MapTypeUnknown covers custom and unrecognized maps, which have no
	// canonical terrain classification.
	MapTypeUnknown MapType = "unknown"
	MapTypeLand    MapType = "land"
	MapTypeHybrid  MapType = "hybrid"
	MapTypeWater   MapType = "water"
)

var mapTypes = map[Map]MapType{
	MapCraftedMap:       MapTypeUnknown,
	MapAltai:            MapTypeLand,
	MapAncientSpires:    MapTypeHybrid,
	MapArchipelago:      MapTypeWater,
	MapBlackForest:      MapTypeHybrid,
	MapBoulderBay:       MapTypeHybrid,
	MapConfluence:       MapTypeHybrid,
	MapDanubeRiver:      MapTypeHybrid,
	MapDryArabia:        MapTypeLand,
	MapFrenchPass:       MapTypeLand,
	MapHighView:         MapTypeLand,
	MapHillAndDale:      MapTypeLand,
	MapKingOfTheHill:    MapTypeLand,
	MapLipany:           MapTypeLand,
	MapMongolianHeights: MapTypeHybrid,
	MapMountainPass:     MapTypeLand,
	MapNagari:           MapTypeHybrid,
	MapWarringIslands:   MapTypeWater,
	MapMegaRandom:       MapTypeHybrid,
	MapThePit:           MapTypeLand,
	MapOasis:            MapTypeHybrid,
	MapBaltic:           MapTypeHybrid,
	MapForestPonds:      MapTypeHybrid,
	MapWetlands:         MapTypeHybrid,
	MapPrairie:          MapTypeLand,
	MapWateringHoles:    MapTypeHybrid,
	MapHideout:          MapTypeLand,
	MapMountainClearing: MapTypeLand,
	MapContinental:      MapTypeHybrid,
	MapMarshland:        MapTypeLand,
	MapFourLakes:        MapTypeHybrid,
	MapMigration:        MapTypeWater,
	MapVolcanicIsland:   MapTypeHybrid,
	MapGoldenHeights:    MapTypeHybrid,
	MapAfricanWaters:    MapTypeHybrid,
	MapThickets:         MapTypeHybrid,
	MapGoldenPit:        MapTypeLand,
	MapCliffside:        MapTypeLand,
	MapGorge:            MapTypeLand,
	MapCanal:            MapTypeHybrid,
	MapGlade:            MapTypeLand,
	MapHaywire:          MapTypeLand,
	MapTurtleRidge:      MapTypeLand,
	MapRockyRiver:       MapTypeHybrid,
	MapHimeyama:         MapTypeLand,
	MapForts:            MapTypeHybrid,
	MapHiddenValley:     MapTypeLand,
}

// Canonical folds renamed labels onto their current name.
func (m Map) Canonical() Map {
	if m == MapMediterranean {
		return MapBaltic
	}
	return m
}

// Known reports whether m is a map this library recognizes.
func (m Map) Known() bool {
	_, ok := mapTypes[m.Canonical()]
	return ok
}

// Type returns the terrain classification of the map, or MapTypeUnknown
// for maps this library does not recognize.
func (m Map) Type() MapType {
	if t, ok := mapTypes[m.Canonical()]; ok {
		return t
	}
	return MapTypeUnknown
}
