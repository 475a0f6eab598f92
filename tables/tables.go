package tables

// These tables are in their own file because they are large.
//
// Everything here is read-only after package init.  Raw values that fall outside a table are
// legal in save files (the game writes some odd things), so every lookup has a fallback.

import "fmt"

// safe_lookup returns the table entry for i, or "Unknown (i)"
func safe_lookup(from []string, i int) string {
	if i < 0 || i >= len(from) {
		return fmt.Sprintf("Unknown (%v)", i)
	}
	return from[i]
}

const (
	NATION_ENGLAND = iota
	NATION_FRANCE
	NATION_SPAIN
	NATION_NETHERLANDS

	NATION_EUROPEAN_COUNT // the 4 player-controllable powers
)

// INDIAN_OFFSET is the index of the first native nation in Nations
const INDIAN_OFFSET = NATION_EUROPEAN_COUNT

// INDIAN_COUNT is the number of native nations (and of indian relation records)
const INDIAN_COUNT = 8

var Nations = []string{
	"England",
	"France",
	"Spain",
	"Netherlands",
	"Inca",
	"Aztec",
	"Arawak",
	"Iroquois",
	"Cherokee",
	"Apache",
	"Sioux",
	"Tupi",
}

var Unit_types = []string{
	/*  0 */ "Colonist",
	/*  1 */ "Soldier",
	/*  2 */ "Pioneer",
	/*  3 */ "Missionary",
	/*  4 */ "Dragoon",
	/*  5 */ "Scout",
	/*  6 */ "Tory regular",
	/*  7 */ "Continental cavalry",
	/*  8 */ "Tory cavalry",
	/*  9 */ "Continental army",
	/* 10 */ "Treasure",
	/* 11 */ "Artillery",
	/* 12 */ "Wagon train",
	/* 13 */ "Caravel",
	/* 14 */ "Merchantman",
	/* 15 */ "Galleon",
	/* 16 */ "Privateer",
	/* 17 */ "Frigate",
	/* 18 */ "Man-O-War",
	/* 19 */ "Brave",
	/* 20 */ "Armed brave",
	/* 21 */ "Mounted brave",
	/* 22 */ "Mounted warrior",
}

const (
	UNIT_TREASURE    = 10
	UNIT_CARAVEL     = 13
	UNIT_MERCHANTMAN = 14
	UNIT_GALLEON     = 15
)

var Professions = []string{
	/*  0 */ "Expert farmer",
	/*  1 */ "Master sugar planter",
	/*  2 */ "Master tobacco planter",
	/*  3 */ "Master cotton planter",
	/*  4 */ "Expert fur trapper",
	/*  5 */ "Expert lumberjack",
	/*  6 */ "Expert ore miner",
	/*  7 */ "Expert silver miner",
	/*  8 */ "Expert fisherman",
	/*  9 */ "Master distiller",
	/* 10 */ "Master tobacconist",
	/* 11 */ "Master weaver",
	/* 12 */ "Master fur trader",
	/* 13 */ "Master carpenter",
	/* 14 */ "Master blacksmith",
	/* 15 */ "Master gunsmith",
	/* 16 */ "Firebrand preacher",
	/* 17 */ "Elder statesman",
	/* 18 */ "*(Student)",
	/* 19 */ "*(Free colonist)",
	/* 20 */ "Hardy pioneer",
	/* 21 */ "Veteran soldier",
	/* 22 */ "Seasoned scout",
	/* 23 */ "Veteran dragoon",
	/* 24 */ "Jesuit missionary",
	/* 25 */ "Indentured servant",
	/* 26 */ "Petty criminal",
	/* 27 */ "Indian convert",
	/* 28 */ "Free colonist ???",
}

const (
	PROF_LUMBERJACK      Profession = 0x05
	PROF_ORE_MINER       Profession = 0x06
	PROF_FISHERMAN       Profession = 0x08
	PROF_CARPENTER       Profession = 0x0d
	PROF_BLACKSMITH      Profession = 0x0e
	PROF_ELDER_STATESMAN Profession = 0x11
)

var Cargos = []string{
	"Food",
	"Sugar",
	"Tobacco",
	"Cotton",
	"Furs",
	"Lumber",
	"Ore",
	"Silver",
	"Horses",
	"Rum",
	"Cigars",
	"Cloth",
	"Coats",
	"Trade goods",
	"Tools",
	"Muskets",
}

// CARGO_COUNT is also the length of every per-good array in the file
const CARGO_COUNT = 16

var Founding_fathers = []string{
	"Adam Smith",
	"Jakob Fugger",
	"Peter Minuit",
	"Peter Stuyvesant",
	"Jan de Witt",
	"Ferdinand Magellan",
	"Francisco de Coronado",
	"Hernando de Soto",
	"Henry Hudson",
	"Sieur de La Salle",
	"Hernan Cortes",
	"George Washington",
	"Paul Revere",
	"Francis Drake",
	"John Paul Jones",
	"Thomas Jefferson",
	"Pocahontas",
	"Thomas Paine",
	"Simon Bolivar",
	"Benjamin Franklin",
	"William Brewster",
	"William Penn",
	"Jean de Brebeuf",
	"Juan de Sepulveda",
	"Bartolme de las Casas",
}

const FOUNDING_FATHER_COUNT = 25

var Difficulties = []string{
	"Discoverer",
	"Explorer",
	"Conquistador",
	"Governor",
	"Viceroy",
}

// Buildings is indexed by Colony.Building_in_production
var Buildings = []string{
	/*  0 */ "Stockade",
	/*  1 */ "Fort",
	/*  2 */ "Fortress",
	/*  3 */ "Armory",
	/*  4 */ "Magazine",
	/*  5 */ "Arsenal",
	/*  6 */ "Docks",
	/*  7 */ "Drydock",
	/*  8 */ "Shipyard",
	/*  9 */ "Town Hall",
	/* 10 */ "Town Hall",
	/* 11 */ "Town Hall",
	/* 12 */ "Schoolhouse",
	/* 13 */ "College",
	/* 14 */ "University",
	/* 15 */ "Warehouse",
	/* 16 */ "Warehouse Expansion",
	/* 17 */ "Stable",
	/* 18 */ "Custom House",
	/* 19 */ "Printing Press",
	/* 20 */ "Newspaper",
	/* 21 */ "Weaver's House",
	/* 22 */ "Weaver's Shop",
	/* 23 */ "Textile Mill",
	/* 24 */ "Tobacconist's House",
	/* 25 */ "Tobacconist's Shop",
	/* 26 */ "Cigar Factory",
	/* 27 */ "Rum Distiller's House",
	/* 28 */ "Rum Distillery",
	/* 29 */ "Rum Factory",
	/* 30 */ "Capitol",
	/* 31 */ "Capitol Expansion",
	/* 32 */ "Fur Trader's House",
	/* 33 */ "Fur Trading Post",
	/* 34 */ "Fur Factory",
	/* 35 */ "Carpenter's Shop",
	/* 36 */ "Lumber Mill",
	/* 37 */ "Church",
	/* 38 */ "Cathedral",
	/* 39 */ "Blacksmith's House",
	/* 40 */ "Blacksmith's Shop",
	/* 41 */ "Iron Works",
	/* 42 */ "Artillery",
	/* 43 */ "Wagon Train",
}

// BUILDING_NOTHING is the "not producing anything" marker
const BUILDING_NOTHING = 255

var Zoom_levels = []string{
	" 15 x 12",
	" 30 x 24",
	" 60 x 48",
	"120 x 96",
}

// Indian relation status bytes, as stored in Nation.Indian_relation
const (
	INDIAN_NOT_MET = 0x00
	INDIAN_WAR     = 0x20
	INDIAN_PEACE   = 0x60
)

var Indian_status = map[uint8]string{
	INDIAN_NOT_MET: "not met",
	INDIAN_WAR:     "war",
	INDIAN_PEACE:   "peace",
}

// Building levels.  Most buildings count up in bits (1, 3, 7); a few only have 2 levels.
var Level_names = map[string][]string{
	"stockade":             {"", "stockade", "", "fort", "", "", "", "fortress"},
	"armory":               {"", "armory", "", "magazine", "", "", "", "arsenal"},
	"docks":                {"", "docks", "", "dry dock", "", "", "", "shipyard"},
	"town_hall":            {"", "town hall"},
	"schoolhouse":          {"", "schoolhouse", "", "college", "", "", "", "university"},
	"warehouse":            {"", "warehouse", "", "warehouse (expansion)"},
	"stables":              {"", "stables"},
	"custom_house":         {"", "custom house"},
	"printing_press":       {"", "printing press", "", "newspaper"},
	"weavers_house":        {"", "weaver's house", "", "weaver's shop", "", "", "", "textile mill"},
	"tobacconists_house":   {"", "tobacconist's house", "", "tobacconist's shop", "", "", "", "cigar factory"},
	"rum_distillers_house": {"", "rum distiller's house", "", "rum distillery", "", "", "", "rum factory"},
	"capitol":              {"", "capitol", "", "capitol (expansion)"},
	"fur_traders_house":    {"", "fur trader's house", "", "fur trading post", "", "", "", "fur factory"},
	"carpenters_shop":      {"", "carpenter's shop", "", "lumber mill"},
	"church":               {"", "church", "", "cathedral"},
	"blacksmiths_house":    {"", "blacksmith's house", "", "blacksmith's shop", "", "", "", "iron works"},
}

// Level_name names the level of a building group field, e.g. ("docks", 3) -> "dry dock".
// An empty string means "not built"; odd values get a raw rendering.
func Level_name(building string, level uint8) string {
	if level == 0 {
		return ""
	}
	names := Level_names[building]
	if int(level) < len(names) && names[level] != "" {
		return names[level]
	}
	return fmt.Sprintf("%v: %v", building, level)
}
