package types

import (
	"coldump/tables"
)

// Record types for a colonization savefile.
//
// Every record mirrors a fixed-size chunk of the file (see the schema package for the layout).
// Bytes we don't understand are kept in Unk* arrays so that they survive a load-save cycle.
// Bit-packed values are unpacked one per field; flags are 0 or 1.

const (
	MAP_WIDTH  = 58
	MAP_HEIGHT = 72
	MAP_LAYERS = 4
	MAP_CELLS  = MAP_WIDTH * MAP_HEIGHT

	PLAYER_COUNT = 4
	NATION_COUNT = 4
	INDIAN_COUNT = tables.INDIAN_COUNT

	COLONY_SLOTS = 32 // citizen slots in a colony; only [0,population) are used
	CARGO_SLOTS  = 6
	ROUTE_STOPS  = 4
)

// MAGIC is the signature at the very start of a valid savefile
const MAGIC = "COLONIZE"

type Tutorial1 struct {
	Nr13, Nr14, Unk3, Nr15, Nr16, Nr17, Unk7, Nr19 uint8
}

type Game_options struct {
	Unknown7            uint8 // 7 bits
	Tutorial_hints      uint8
	Water_color_cycling uint8 // the game shows this one inverted
	Combat_analysis     uint8
	Autosave            uint8
	End_of_turn         uint8
	Fast_piece_slide    uint8
	Unknown             uint8
	Show_foreign_moves  uint8
	Show_indian_moves   uint8
}

type Colony_report_options struct {
	Labels_on_cargo_and_terrain        uint8
	Labels_on_buildings                uint8
	Report_new_cargos_available        uint8
	Report_inefficient_government      uint8
	Report_tools_needed_for_production uint8
	Report_raw_materials_shortages     uint8
	Report_food_shortages              uint8
	Report_when_colonists_trained      uint8
	Report_sons_of_liberty_membership  uint8
	Report_rebel_majorities            uint8
	Unused                             uint8 // 6 bits
}

type Tutorial2 struct {
	Howtowin         uint8
	Background_music uint8
	Event_music      uint8
	Sound_effects    uint8
	Nr1              uint8 // shown immediately on game start
	Nr2              uint8
	Nr3              uint8
	Nr4              uint8
}

type Tutorial3 struct {
	Nr5, Nr6, Nr7, Nr8, Nr9, Nr10, Nr11, Nr12 uint8
}

// Events are the ones that trigger the "woodcut" screens
type Events struct {
	Discovery_of_the_new_world     uint8
	Building_a_colony              uint8
	Meeting_the_natives            uint8
	The_aztec_empire               uint8
	The_inca_nation                uint8
	Discovery_of_the_pacific_ocean uint8
	Entering_indian_village        uint8
	The_fountain_of_youth          uint8
	Cargo_from_the_new_world       uint8
	Meeting_fellow_europeans       uint8
	Colony_burning                 uint8
	Colony_destroyed               uint8
	Indian_raid                    uint8
	Woodcut14                      uint8
	Woodcut15                      uint8
	Woodcut16                      uint8
}

type Header struct {
	Signature             [8]byte
	Unk0                  [4]byte
	Map_size_x            uint16
	Map_size_y            uint16
	Tut1                  Tutorial1
	Unk1                  [1]byte
	Game_options          Game_options
	Colony_report_options Colony_report_options
	Tut2                  Tutorial2
	Tut3                  Tutorial3
	Unk2                  [2]byte
	Year                  uint16
	Autumn                uint16 // boolean
	Turn                  uint16
	Unk3                  [2]byte
	Active_unit           uint16
	Unk3a                 [6]byte
	Tribe_count           uint16
	Unit_count            uint16
	Colony_count          uint16
	Trade_route_count     uint16
	Unk4                  [4]byte
	Difficulty            tables.Difficulty
	Unk5                  [2]byte
	Founding_father       [tables.FOUNDING_FATHER_COUNT]int8 // owner nation, -1 for nobody
	Unk6                  [6]byte
	Nation_relation       [NATION_COUNT]int16
	Unk8                  [10]byte
	Expeditionary_force   [4]uint16 // regulars, cavalry, man-o-war, artillery
	Backup_force          [8]byte   // appears once enough bells are produced
	Count_down            [16]uint16
	Event                 Events
	Unkb                  [2]byte
}

type Player struct {
	Name             [24]byte
	Country          [24]byte
	Unk00            uint8
	Control          tables.Control
	Founded_colonies uint8 // probably used to pick the next colony name
	Diplomacy        uint8
}

type Other struct {
	Unk [24]byte
}

// Buildings holds building levels.  The first 13 fields share a 32-bit word and the last 5 a
// 16-bit word, so widths matter: see schema.Colony_buildings.
type Buildings struct {
	Stockade             uint8
	Armory               uint8
	Docks                uint8
	Town_hall            uint8
	Schoolhouse          uint8
	Warehouse            uint8
	Stables              uint8
	Custom_house         uint8
	Printing_press       uint8
	Weavers_house        uint8
	Tobacconists_house   uint8
	Rum_distillers_house uint8
	Capitol              uint8 // not really in use

	Fur_traders_house uint8
	Carpenters_shop   uint8
	Church            uint8
	Blacksmiths_house uint8
	Unused            uint8
}

type Colony struct {
	X, Y                   uint8
	Name                   [24]byte
	Nation                 tables.Nation
	Unk0                   [4]byte
	Population             uint8
	Occupation             [COLONY_SLOTS]uint8
	Profession             [COLONY_SLOTS]uint8
	Unk6                   [16]byte
	Tiles                  [8]int8 // tiles around the colony -> index of the citizen working it
	Unk8                   [12]byte
	Buildings              Buildings
	Unka                   [2]byte // custom house bits?
	Unk9                   [6]byte
	Hammers                uint16
	Building_in_production tables.Building
	Unkb                   [5]byte
	Stock                  [tables.CARGO_COUNT]uint16
	Unkd                   [8]byte
	Rebel_dividend         uint32
	Rebel_divisor          uint32
}

// Tiles indices, going round the colony
const (
	TILE_N = iota
	TILE_E
	TILE_S
	TILE_W
	TILE_NW
	TILE_NE
	TILE_SE
	TILE_SW
)

type Unit struct {
	X, Y           uint8
	Type           tables.Unit_type
	Owner          uint8 // 4 bits
	Unk04          uint8 // 4 bits
	Unk05          uint8
	Moves          uint8 // accumulated moves (3 between land, 1 on roads...)
	Unk06          uint8
	Unk07          uint8
	Order          uint8
	Unk08          [3]byte
	Holds_occupied uint8
	Cargo_items    [CARGO_SLOTS]uint8 // 4 bits each
	Cargo_hold     [CARGO_SLOTS]uint8
	Turns_worked   uint8
	Profession     uint8 // for treasure, this is the amount in hundreds
	Next_unit_idx  int16
	Prev_unit_idx  int16
}

// Unit orders
const (
	ORDER_PLOW = 8
	ORDER_ROAD = 9
)

type Trade struct {
	Euro_price [tables.CARGO_COUNT]uint8
	Nr         [tables.CARGO_COUNT]int16
	Gold       [tables.CARGO_COUNT]int32
	Tons       [tables.CARGO_COUNT]int32
	Tons2      [tables.CARGO_COUNT]int32
}

type Nation struct {
	Unk0                    uint8
	Tax_rate                uint8
	Recruit                 [3]uint8
	Unk1                    uint8
	Recruit_count           uint8 // recruit penalty 120 + (count * 20), capped at 180
	Unk2                    [5]byte
	Liberty_bells_total     uint16
	Liberty_bells_last_turn uint16
	Unk3                    [2]byte
	Next_founding_father    int16
	Founding_father_count   uint16
	Ffc_high                uint16
	Villages_burned         uint8
	Unk4                    [5]byte
	Artillery_count         uint16 // price penalty 500 + (count * 100)
	Boycott_bitmap          uint16
	Unk5                    [8]byte
	Gold                    uint32
	Crosses                 uint16
	Unk6                    [4]int16
	Indian_relation         [INDIAN_COUNT]uint8
	Unk7                    [12]byte
	Trade                   Trade
}

func (n *Nation) Boycotted(c tables.Cargo) bool {
	return c < tables.CARGO_COUNT && n.Boycott_bitmap&(1<<c) != 0
}

type Tribe_state struct {
	Artillery uint8 // artillery has been nearby?
	Learned   uint8 // visited and learned skill
	Capital   uint8
	Scouted   uint8
	Unk5      uint8
	Unk6      uint8
	Unk7      uint8
	Unk8      uint8
}

type Tribe struct {
	X, Y                            uint8
	Nation                          tables.Nation
	State                           Tribe_state
	Population                      uint8
	Mission                         int8 // -1 if none, else the european nation
	Unk1                            uint8
	Flag_0                          uint8
	Last_cargo_bought               int8
	Last_cargo_sold                 int8
	Panic                           uint8
	Unk2                            [6]byte
	Population_loss_in_current_turn uint8 // due to attacks
}

type Aggression struct {
	Aggr      uint8
	Aggr_high uint8
}

type Indian_relations struct {
	Unk0  [26]byte
	Stock [tables.CARGO_COUNT]uint16
	Met   [NATION_COUNT]uint8
	Unk1  [8]byte
	Aggr  [NATION_COUNT]Aggression
}

type Stuff struct {
	Unk15                            [15]byte
	Counter_decreasing_on_new_colony uint16
	Unk_short                        uint16
	Counter_increasing_on_new_colony uint16
	Unk_big                          [696]byte
	X                                uint16 // active unit position
	Y                                uint16
	Zoom_level                       uint8
	Unk7                             uint8
	Viewport_x                       uint16
	Viewport_y                       uint16
}

type Cell struct {
	Tile   uint8 // 3 bits
	Forest uint8
	Water  uint8
	Phys   uint8 // 3 bits
}

// Display_tile is the tile index the game draws: water tiles live 9 entries further on
func (c Cell) Display_tile() uint8 {
	if c.Water != 0 {
		return c.Tile + 9
	}
	return c.Tile
}

// Map is 58x72 including a 1-tile border around the visible 56x70
type Map struct {
	Layer [MAP_LAYERS][MAP_CELLS]Cell
}

func (m *Map) At(layer, x, y int) *Cell {
	return &m.Layer[layer][x+y*MAP_WIDTH]
}

type Tail struct {
	Unk [1502]byte
}

type Route_stop struct {
	Destination    uint16 // colony index
	Loading_size   uint8  // 4 bits
	Unloading_size uint8  // 4 bits
	Loading        [CARGO_SLOTS]uint8
	Unloading      [CARGO_SLOTS]uint8
	Padding        uint8
}

type Trade_route struct {
	Name       [32]byte
	Type       uint8 // 0 is land, anything else is sea
	Stop_count uint8
	Stops      [ROUTE_STOPS]Route_stop
}

func (r *Trade_route) Is_sea() bool {
	return r.Type != 0
}
