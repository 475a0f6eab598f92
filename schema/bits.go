package schema

// Bit-packed fields.
//
// A group is one little-endian storage unit (1, 2 or 4 bytes) split into fields, low bit first.
// Groups always account for every bit of their unit, so packing the unpacked fields gives back
// the original unit exactly.

type Field struct {
	Name   string
	Offset uint
	Width  uint
	Max    uint32 // largest meaningful value; 0 means anything that fits
}

type Group struct {
	Name   string
	Unit   int // bytes
	Fields []Field
}

func Mask(width uint) uint32 {
	return uint32(1)<<width - 1
}

func Unpack(unit uint32, f Field) uint32 {
	return (unit >> f.Offset) & Mask(f.Width)
}

// Pack puts v into unit at f.  v must already fit.
func Pack(unit uint32, f Field, v uint32) uint32 {
	m := Mask(f.Width) << f.Offset
	return (unit &^ m) | ((v << f.Offset) & m)
}

// Fits reports whether v can be stored in f without losing bits
func (f Field) Fits(v uint32) bool {
	return v <= Mask(f.Width)
}

// In_range reports whether v is a meaningful value for f
func (f Field) In_range(v uint32) bool {
	if f.Max == 0 {
		return f.Fits(v)
	}
	return v <= f.Max
}

func (f Field) Limit() uint32 {
	if f.Max == 0 {
		return Mask(f.Width)
	}
	return f.Max
}

// flags makes a group of 1-bit fields, one per name, starting at bit 0
func flags(name string, unit int, names ...string) *Group {
	g := &Group{Name: name, Unit: unit}
	for i, n := range names {
		g.Fields = append(g.Fields, Field{Name: n, Offset: uint(i), Width: 1})
	}
	return g
}

// packed makes a group from consecutive (name, width) fields
func packed(name string, unit int, fields ...Field) *Group {
	g := &Group{Name: name, Unit: unit}
	offset := uint(0)
	for _, f := range fields {
		f.Offset = offset
		offset += f.Width
		g.Fields = append(g.Fields, f)
	}
	return g
}

var (
	Header_tut1 = flags("tut1", 1, "nr13", "nr14", "unk3", "nr15", "nr16", "nr17", "unk7", "nr19")

	Header_game_options = packed("game_options", 2,
		Field{Name: "unknown7", Width: 7},
		Field{Name: "tutorial_hints", Width: 1},
		Field{Name: "water_color_cycling", Width: 1},
		Field{Name: "combat_analysis", Width: 1},
		Field{Name: "autosave", Width: 1},
		Field{Name: "end_of_turn", Width: 1},
		Field{Name: "fast_piece_slide", Width: 1},
		Field{Name: "unknown", Width: 1},
		Field{Name: "show_foreign_moves", Width: 1},
		Field{Name: "show_indian_moves", Width: 1},
	)

	Header_colony_report_options = packed("colony_report_options", 2,
		Field{Name: "labels_on_cargo_and_terrain", Width: 1},
		Field{Name: "labels_on_buildings", Width: 1},
		Field{Name: "report_new_cargos_available", Width: 1},
		Field{Name: "report_inefficient_government", Width: 1},
		Field{Name: "report_tools_needed_for_production", Width: 1},
		Field{Name: "report_raw_materials_shortages", Width: 1},
		Field{Name: "report_food_shortages", Width: 1},
		Field{Name: "report_when_colonists_trained", Width: 1},
		Field{Name: "report_sons_of_liberty_membership", Width: 1},
		Field{Name: "report_rebel_majorities", Width: 1},
		Field{Name: "unused", Width: 6},
	)

	Header_tut2 = flags("tut2", 1, "howtowin", "background_music", "event_music", "sound_effects", "nr1", "nr2", "nr3", "nr4")
	Header_tut3 = flags("tut3", 1, "nr5", "nr6", "nr7", "nr8", "nr9", "nr10", "nr11", "nr12")

	Header_event = flags("event", 2,
		"discovery_of_the_new_world", "building_a_colony", "meeting_the_natives", "the_aztec_empire",
		"the_inca_nation", "discovery_of_the_pacific_ocean", "entering_indian_village", "the_fountain_of_youth",
		"cargo_from_the_new_world", "meeting_fellow_europeans", "colony_burning", "colony_destroyed",
		"indian_raid", "woodcut14", "woodcut15", "woodcut16")

	Colony_buildings = packed("buildings", 4,
		Field{Name: "stockade", Width: 3},
		Field{Name: "armory", Width: 3},
		Field{Name: "docks", Width: 3},
		Field{Name: "town_hall", Width: 3},
		Field{Name: "schoolhouse", Width: 3},
		Field{Name: "warehouse", Width: 2},
		Field{Name: "stables", Width: 1},
		Field{Name: "custom_house", Width: 1},
		Field{Name: "printing_press", Width: 2},
		Field{Name: "weavers_house", Width: 3},
		Field{Name: "tobacconists_house", Width: 3},
		Field{Name: "rum_distillers_house", Width: 3},
		Field{Name: "capitol", Width: 2},
	)

	Colony_buildings2 = packed("buildings2", 2,
		Field{Name: "fur_traders_house", Width: 3},
		Field{Name: "carpenters_shop", Width: 2},
		Field{Name: "church", Width: 2},
		Field{Name: "blacksmiths_house", Width: 3},
		Field{Name: "unused", Width: 6},
	)

	// Owner shares a byte with something unknown.  Owners are nations, so only 0-11 mean anything.
	Unit_owner = packed("owner", 1,
		Field{Name: "owner", Width: 4, Max: 11},
		Field{Name: "unk04", Width: 4},
	)

	// Two 4-bit cargo types per byte
	Cargo_pair = packed("cargo", 1,
		Field{Name: "item_lo", Width: 4},
		Field{Name: "item_hi", Width: 4},
	)

	Tribe_state = flags("state", 1, "artillery", "learned", "capital", "scouted", "unk5", "unk6", "unk7", "unk8")

	Map_cell = packed("cell", 1,
		Field{Name: "tile", Width: 3},
		Field{Name: "forest", Width: 1},
		Field{Name: "water", Width: 1},
		Field{Name: "phys", Width: 3},
	)

	// A stop can't load or unload more than a ship can carry
	Route_sizes = packed("sizes", 1,
		Field{Name: "loading_size", Width: 4, Max: 6},
		Field{Name: "unloading_size", Width: 4, Max: 6},
	)
)

// Groups lists every group, for tests
var Groups = []*Group{
	Header_tut1, Header_game_options, Header_colony_report_options, Header_tut2, Header_tut3, Header_event,
	Colony_buildings, Colony_buildings2, Unit_owner, Cargo_pair, Tribe_state, Map_cell, Route_sizes,
}
