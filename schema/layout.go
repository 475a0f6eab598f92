package schema

// File layout.
//
// Each record's layout is written down exactly once, as a walk over its fields in file order.
// The walk doesn't know which direction it is going: a Coder either fills the fields from bytes
// (readers), turns them into bytes (writers), or just counts (Size_of).  That way reading and
// writing can't disagree about where anything is.

import (
	"coldump/types"
)

type Coder interface {
	U8(v *uint8)
	I8(v *int8)
	U16(v *uint16)
	I16(v *int16)
	U32(v *uint32)
	I32(v *int32)
	Bytes(b []byte)
	// Bits handles one storage unit; vals line up with g.Fields
	Bits(g *Group, vals ...*uint8)
	// Rest is everything up to the end of the file
	Rest(b *[]byte)
	// Enter names the record being processed, for error messages.  index is -1 for single records.
	Enter(section string, index int)
	// Decoding is true when the walk should allocate variable-length sections
	Decoding() bool
}

// Canonical record sizes.  Tests check the walks against these.
const (
	HEADER_SIZE      = 158
	PLAYER_SIZE      = 52
	OTHER_SIZE       = 24
	COLONY_SIZE      = 202
	UNIT_SIZE        = 28
	NATION_SIZE      = 316
	TRIBE_SIZE       = 18
	INDIAN_SIZE      = 78
	STUFF_SIZE       = 727
	MAP_SIZE         = types.MAP_LAYERS * types.MAP_CELLS // 16704
	TAIL_SIZE        = 1502
	TRADE_ROUTE_SIZE = 74
)

// Section describes one top-level region of the file, in file order.
// Count is nil for sections with a fixed number of records.
type Section struct {
	Name  string
	Size  int
	Fixed int
	Count func(h *types.Header) int
}

var Sections = []Section{
	{"header", HEADER_SIZE, 1, nil},
	{"player", PLAYER_SIZE, types.PLAYER_COUNT, nil},
	{"other", OTHER_SIZE, 1, nil},
	{"colony", COLONY_SIZE, 0, func(h *types.Header) int { return int(h.Colony_count) }},
	{"unit", UNIT_SIZE, 0, func(h *types.Header) int { return int(h.Unit_count) }},
	{"nation", NATION_SIZE, types.NATION_COUNT, nil},
	{"tribe", TRIBE_SIZE, 0, func(h *types.Header) int { return int(h.Tribe_count) }},
	{"indian", INDIAN_SIZE, types.INDIAN_COUNT, nil},
	{"stuff", STUFF_SIZE, 1, nil},
	{"map", MAP_SIZE, 1, nil},
	{"tail", TAIL_SIZE, 1, nil},
	{"trade_route", TRADE_ROUTE_SIZE, 0, func(h *types.Header) int { return int(h.Trade_route_count) }},
}

func (s Section) Records(h *types.Header) int {
	if s.Count == nil {
		return s.Fixed
	}
	return s.Count(h)
}

// File_size is how many bytes a file with this header should have, not counting any trailer
func File_size(h *types.Header) int {
	total := 0
	for _, s := range Sections {
		total += s.Size * s.Records(h)
	}
	return total
}

// sized allocates a variable-length section when decoding; otherwise the live slice is used as is
func sized[T any](c Coder, have []T, count uint16) []T {
	if c.Decoding() {
		return make([]T, count)
	}
	return have
}

func u8s(c Coder, vs []uint8) {
	for i := range vs {
		c.U8(&vs[i])
	}
}

func i8s(c Coder, vs []int8) {
	for i := range vs {
		c.I8(&vs[i])
	}
}

func u16s(c Coder, vs []uint16) {
	for i := range vs {
		c.U16(&vs[i])
	}
}

func i16s(c Coder, vs []int16) {
	for i := range vs {
		c.I16(&vs[i])
	}
}

func i32s(c Coder, vs []int32) {
	for i := range vs {
		c.I32(&vs[i])
	}
}

// cargo6 handles 6 4-bit cargo types packed into 3 bytes
func cargo6(c Coder, items *[types.CARGO_SLOTS]uint8) {
	for i := 0; i < types.CARGO_SLOTS; i += 2 {
		c.Bits(Cargo_pair, &items[i], &items[i+1])
	}
}

// Walk runs over a whole savegame in file order
func Walk(c Coder, sd *types.Savegame) {
	c.Enter("header", -1)
	Header(c, &sd.Header)

	for i := range sd.Players {
		c.Enter("player", i)
		Player(c, &sd.Players[i])
	}

	c.Enter("other", -1)
	c.Bytes(sd.Other.Unk[:])

	// Counters come from the header we just went past
	sd.Colonies = sized(c, sd.Colonies, sd.Header.Colony_count)
	for i := range sd.Colonies {
		c.Enter("colony", i)
		Colony(c, &sd.Colonies[i])
	}

	sd.Units = sized(c, sd.Units, sd.Header.Unit_count)
	for i := range sd.Units {
		c.Enter("unit", i)
		Unit(c, &sd.Units[i])
	}

	for i := range sd.Nations {
		c.Enter("nation", i)
		Nation(c, &sd.Nations[i])
	}

	sd.Tribes = sized(c, sd.Tribes, sd.Header.Tribe_count)
	for i := range sd.Tribes {
		c.Enter("tribe", i)
		Tribe(c, &sd.Tribes[i])
	}

	for i := range sd.Indian_relations {
		c.Enter("indian", i)
		Indian(c, &sd.Indian_relations[i])
	}

	c.Enter("stuff", -1)
	Stuff(c, &sd.Stuff)

	c.Enter("map", -1)
	Map(c, &sd.Map)

	c.Enter("tail", -1)
	c.Bytes(sd.Tail.Unk[:])

	sd.Trade_routes = sized(c, sd.Trade_routes, sd.Header.Trade_route_count)
	for i := range sd.Trade_routes {
		c.Enter("trade_route", i)
		Trade_route(c, &sd.Trade_routes[i])
	}

	c.Enter("trailer", -1)
	c.Rest(&sd.Trailer)
}

func Header(c Coder, h *types.Header) {
	c.Bytes(h.Signature[:])
	c.Bytes(h.Unk0[:])
	c.U16(&h.Map_size_x)
	c.U16(&h.Map_size_y)

	t1 := &h.Tut1
	c.Bits(Header_tut1, &t1.Nr13, &t1.Nr14, &t1.Unk3, &t1.Nr15, &t1.Nr16, &t1.Nr17, &t1.Unk7, &t1.Nr19)
	c.Bytes(h.Unk1[:])

	o := &h.Game_options
	c.Bits(Header_game_options, &o.Unknown7, &o.Tutorial_hints, &o.Water_color_cycling, &o.Combat_analysis,
		&o.Autosave, &o.End_of_turn, &o.Fast_piece_slide, &o.Unknown, &o.Show_foreign_moves, &o.Show_indian_moves)

	r := &h.Colony_report_options
	c.Bits(Header_colony_report_options, &r.Labels_on_cargo_and_terrain, &r.Labels_on_buildings,
		&r.Report_new_cargos_available, &r.Report_inefficient_government, &r.Report_tools_needed_for_production,
		&r.Report_raw_materials_shortages, &r.Report_food_shortages, &r.Report_when_colonists_trained,
		&r.Report_sons_of_liberty_membership, &r.Report_rebel_majorities, &r.Unused)

	t2 := &h.Tut2
	c.Bits(Header_tut2, &t2.Howtowin, &t2.Background_music, &t2.Event_music, &t2.Sound_effects,
		&t2.Nr1, &t2.Nr2, &t2.Nr3, &t2.Nr4)
	t3 := &h.Tut3
	c.Bits(Header_tut3, &t3.Nr5, &t3.Nr6, &t3.Nr7, &t3.Nr8, &t3.Nr9, &t3.Nr10, &t3.Nr11, &t3.Nr12)

	c.Bytes(h.Unk2[:])
	c.U16(&h.Year)
	c.U16(&h.Autumn)
	c.U16(&h.Turn)
	c.Bytes(h.Unk3[:])
	c.U16(&h.Active_unit)
	c.Bytes(h.Unk3a[:])
	c.U16(&h.Tribe_count)
	c.U16(&h.Unit_count)
	c.U16(&h.Colony_count)
	c.U16(&h.Trade_route_count)
	c.Bytes(h.Unk4[:])
	c.U8((*uint8)(&h.Difficulty))
	c.Bytes(h.Unk5[:])
	i8s(c, h.Founding_father[:])
	c.Bytes(h.Unk6[:])
	i16s(c, h.Nation_relation[:])
	c.Bytes(h.Unk8[:])
	u16s(c, h.Expeditionary_force[:])
	c.Bytes(h.Backup_force[:])
	u16s(c, h.Count_down[:])

	e := &h.Event
	c.Bits(Header_event, &e.Discovery_of_the_new_world, &e.Building_a_colony, &e.Meeting_the_natives,
		&e.The_aztec_empire, &e.The_inca_nation, &e.Discovery_of_the_pacific_ocean, &e.Entering_indian_village,
		&e.The_fountain_of_youth, &e.Cargo_from_the_new_world, &e.Meeting_fellow_europeans, &e.Colony_burning,
		&e.Colony_destroyed, &e.Indian_raid, &e.Woodcut14, &e.Woodcut15, &e.Woodcut16)
	c.Bytes(h.Unkb[:])
}

func Player(c Coder, p *types.Player) {
	c.Bytes(p.Name[:])
	c.Bytes(p.Country[:])
	c.U8(&p.Unk00)
	c.U8((*uint8)(&p.Control))
	c.U8(&p.Founded_colonies)
	c.U8(&p.Diplomacy)
}

func Colony(c Coder, col *types.Colony) {
	c.U8(&col.X)
	c.U8(&col.Y)
	c.Bytes(col.Name[:])
	c.U8((*uint8)(&col.Nation))
	c.Bytes(col.Unk0[:])
	c.U8(&col.Population)
	u8s(c, col.Occupation[:])
	u8s(c, col.Profession[:])
	c.Bytes(col.Unk6[:])
	i8s(c, col.Tiles[:])
	c.Bytes(col.Unk8[:])

	b := &col.Buildings
	c.Bits(Colony_buildings, &b.Stockade, &b.Armory, &b.Docks, &b.Town_hall, &b.Schoolhouse, &b.Warehouse,
		&b.Stables, &b.Custom_house, &b.Printing_press, &b.Weavers_house, &b.Tobacconists_house,
		&b.Rum_distillers_house, &b.Capitol)
	c.Bits(Colony_buildings2, &b.Fur_traders_house, &b.Carpenters_shop, &b.Church, &b.Blacksmiths_house, &b.Unused)

	c.Bytes(col.Unka[:])
	c.Bytes(col.Unk9[:])
	c.U16(&col.Hammers)
	c.U8((*uint8)(&col.Building_in_production))
	c.Bytes(col.Unkb[:])
	u16s(c, col.Stock[:])
	c.Bytes(col.Unkd[:])
	c.U32(&col.Rebel_dividend)
	c.U32(&col.Rebel_divisor)
}

func Unit(c Coder, u *types.Unit) {
	c.U8(&u.X)
	c.U8(&u.Y)
	c.U8((*uint8)(&u.Type))
	c.Bits(Unit_owner, &u.Owner, &u.Unk04)
	c.U8(&u.Unk05)
	c.U8(&u.Moves)
	c.U8(&u.Unk06)
	c.U8(&u.Unk07)
	c.U8(&u.Order)
	c.Bytes(u.Unk08[:])
	c.U8(&u.Holds_occupied)
	cargo6(c, &u.Cargo_items)
	u8s(c, u.Cargo_hold[:])
	c.U8(&u.Turns_worked)
	c.U8(&u.Profession)
	c.I16(&u.Next_unit_idx)
	c.I16(&u.Prev_unit_idx)
}

func Nation(c Coder, n *types.Nation) {
	c.U8(&n.Unk0)
	c.U8(&n.Tax_rate)
	u8s(c, n.Recruit[:])
	c.U8(&n.Unk1)
	c.U8(&n.Recruit_count)
	c.Bytes(n.Unk2[:])
	c.U16(&n.Liberty_bells_total)
	c.U16(&n.Liberty_bells_last_turn)
	c.Bytes(n.Unk3[:])
	c.I16(&n.Next_founding_father)
	c.U16(&n.Founding_father_count)
	c.U16(&n.Ffc_high)
	c.U8(&n.Villages_burned)
	c.Bytes(n.Unk4[:])
	c.U16(&n.Artillery_count)
	c.U16(&n.Boycott_bitmap)
	c.Bytes(n.Unk5[:])
	c.U32(&n.Gold)
	c.U16(&n.Crosses)
	i16s(c, n.Unk6[:])
	u8s(c, n.Indian_relation[:])
	c.Bytes(n.Unk7[:])

	t := &n.Trade
	u8s(c, t.Euro_price[:])
	i16s(c, t.Nr[:])
	i32s(c, t.Gold[:])
	i32s(c, t.Tons[:])
	i32s(c, t.Tons2[:])
}

func Tribe(c Coder, t *types.Tribe) {
	c.U8(&t.X)
	c.U8(&t.Y)
	c.U8((*uint8)(&t.Nation))
	s := &t.State
	c.Bits(Tribe_state, &s.Artillery, &s.Learned, &s.Capital, &s.Scouted, &s.Unk5, &s.Unk6, &s.Unk7, &s.Unk8)
	c.U8(&t.Population)
	c.I8(&t.Mission)
	c.U8(&t.Unk1)
	c.U8(&t.Flag_0)
	c.I8(&t.Last_cargo_bought)
	c.I8(&t.Last_cargo_sold)
	c.U8(&t.Panic)
	c.Bytes(t.Unk2[:])
	c.U8(&t.Population_loss_in_current_turn)
}

func Indian(c Coder, ir *types.Indian_relations) {
	c.Bytes(ir.Unk0[:])
	u16s(c, ir.Stock[:])
	u8s(c, ir.Met[:])
	c.Bytes(ir.Unk1[:])
	for i := range ir.Aggr {
		c.U8(&ir.Aggr[i].Aggr)
		c.U8(&ir.Aggr[i].Aggr_high)
	}
}

func Stuff(c Coder, s *types.Stuff) {
	c.Bytes(s.Unk15[:])
	c.U16(&s.Counter_decreasing_on_new_colony)
	c.U16(&s.Unk_short)
	c.U16(&s.Counter_increasing_on_new_colony)
	c.Bytes(s.Unk_big[:])
	c.U16(&s.X)
	c.U16(&s.Y)
	c.U8(&s.Zoom_level)
	c.U8(&s.Unk7)
	c.U16(&s.Viewport_x)
	c.U16(&s.Viewport_y)
}

func Map(c Coder, m *types.Map) {
	for l := range m.Layer {
		for i := range m.Layer[l] {
			cell := &m.Layer[l][i]
			c.Bits(Map_cell, &cell.Tile, &cell.Forest, &cell.Water, &cell.Phys)
		}
	}
}

func Trade_route(c Coder, r *types.Trade_route) {
	c.Bytes(r.Name[:])
	c.U8(&r.Type)
	c.U8(&r.Stop_count)
	for i := range r.Stops {
		s := &r.Stops[i]
		c.U16(&s.Destination)
		c.Bits(Route_sizes, &s.Loading_size, &s.Unloading_size)
		cargo6(c, &s.Loading)
		cargo6(c, &s.Unloading)
		c.U8(&s.Padding)
	}
}

// Offset is where record index of section starts in a file with header h.
// ok is false for an unknown section or an index past the section's end.
func Offset(h *types.Header, section string, index int) (offset int, ok bool) {
	for _, s := range Sections {
		n := s.Records(h)
		if s.Name == section {
			if index < 0 || index >= n {
				return 0, false
			}
			return offset + index*s.Size, true
		}
		offset += n * s.Size
	}
	return 0, false
}
