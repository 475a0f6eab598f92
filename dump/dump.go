package dump

// Human-readable dumps of savegame sections, one string per line.
//
// Anything we don't understand is shown as hex so that it can be compared between saves.

import (
	"fmt"
	"strings"

	"coldump/tables"
	"coldump/types"
)

func safe_lookup[K comparable](from map[K]string, with K) string {
	out, ok := from[with]
	if !ok {
		out = fmt.Sprintf("Unknown (%v)", with)
	}
	return out
}

func hex(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = fmt.Sprintf("%02x", c)
	}
	return strings.Join(parts, " ")
}

func yes_no(v uint8) string {
	if v != 0 {
		return "true"
	}
	return "false"
}

// A section dumper.  which is a record index, or -1 for all records.
type dumper func(sd *types.Savegame, which int) ([]string, error)

type section struct {
	name  string
	multi bool // takes an index
	dump  dumper
}

var sections = []section{
	{"head", false, single(head)},
	{"player", true, players},
	{"other", false, single(other)},
	{"colony", true, colonies},
	{"unit", true, units},
	{"nation", true, nations},
	{"tribe", true, tribes},
	{"indian", true, indians},
	{"stuff", false, single(stuff)},
	{"map", false, single(map_layers)},
	{"tail", false, single(tail)},
	{"route", true, routes},
}

func single(f func(sd *types.Savegame) []string) dumper {
	return func(sd *types.Savegame, which int) ([]string, error) { return f(sd), nil }
}

// Sections lists the section names, in file order
func Sections() []string {
	out := []string{}
	for _, s := range sections {
		out = append(out, s.name)
	}
	return out
}

// Indexed reports whether a section can dump a single record
func Indexed(name string) bool {
	for _, s := range sections {
		if s.name == name {
			return s.multi
		}
	}
	return false
}

// Section dumps one section.  which picks a single record (0-based) or -1 for all of them.
func Section(sd *types.Savegame, name string, which int) ([]string, error) {
	for _, s := range sections {
		if s.name == name {
			return s.dump(sd, which)
		}
	}
	return nil, fmt.Errorf("no section called %q (sections are %v)", name, strings.Join(Sections(), ", "))
}

// pick returns the indices to show: all of them, or just which after checking it exists
func pick[T any](which int, at func(int) (*T, error), count int) ([]int, error) {
	if which < 0 {
		out := make([]int, count)
		for i := range out {
			out[i] = i
		}
		return out, nil
	}
	if _, err := at(which); err != nil {
		return nil, err
	}
	return []int{which}, nil
}

func head(sd *types.Savegame) []string {
	h := &sd.Header
	out := []string{"-- head --"}

	status := "OK"
	if !sd.Signature_valid() {
		status = "INVALID"
	}
	season := "Spring"
	if h.Autumn != 0 {
		season = "Autumn"
	}
	out = append(out,
		fmt.Sprintf("Signature: %v: %v", h.Signature_string(), status),
		fmt.Sprintf("Map size: %2d x %2d", h.Map_size_x, h.Map_size_y),
		fmt.Sprintf("Difficulty: %v", h.Difficulty),
		fmt.Sprintf("%v %4d, Turn: %2d, Tribes: %d, Units: %d, Colonies: %d, Trade Routes: %d",
			season, h.Year, h.Turn, h.Tribe_count, h.Unit_count, h.Colony_count, h.Trade_route_count),
		fmt.Sprintf("Active unit: %v", h.Active_unit),
		hex(h.Unk0[:]),
		"",
	)

	o := &h.Game_options
	out = append(out, "Game options",
		fmt.Sprintf("%d - Tutorial hints", o.Tutorial_hints),
		fmt.Sprintf("%d - Water color cycling", o.Water_color_cycling),
		fmt.Sprintf("%d - Combat analysis", o.Combat_analysis),
		fmt.Sprintf("%d - Autosave", o.Autosave),
		fmt.Sprintf("%d - End of turn", o.End_of_turn),
		fmt.Sprintf("%d - Fast piece slide", o.Fast_piece_slide),
		fmt.Sprintf("%d - Show foreign moves", o.Show_foreign_moves),
		fmt.Sprintf("%d - Show indian moves", o.Show_indian_moves),
		fmt.Sprintf("%02x - unknown", o.Unknown7),
		"",
	)

	r := &h.Colony_report_options
	out = append(out, "Colony report options",
		fmt.Sprintf("%d - Labels on buildings", r.Labels_on_buildings),
		fmt.Sprintf("%d - Labels on cargo and terrain", r.Labels_on_cargo_and_terrain),
		fmt.Sprintf("%d - report_when_colonists_trained", r.Report_when_colonists_trained),
		fmt.Sprintf("%d - report_food_shortages", r.Report_food_shortages),
		fmt.Sprintf("%d - report_raw_materials_shortages", r.Report_raw_materials_shortages),
		fmt.Sprintf("%d - report_tools_needed_for_production", r.Report_tools_needed_for_production),
		fmt.Sprintf("%d - report_inefficient_government", r.Report_inefficient_government),
		fmt.Sprintf("%d - report_new_cargos_available", r.Report_new_cargos_available),
		fmt.Sprintf("%d - report_sons_of_liberty_membership", r.Report_sons_of_liberty_membership),
		fmt.Sprintf("%d - report_rebel_majorities", r.Report_rebel_majorities),
		fmt.Sprintf("%d - unused", r.Unused),
		"",
	)

	tutorials := []struct {
		name string
		v    uint8
	}{
		{"Tutorial 1", h.Tut2.Nr1}, {"Tutorial 2", h.Tut2.Nr2}, {"Tutorial 3", h.Tut2.Nr3}, {"Tutorial 4", h.Tut2.Nr4},
		{"Tutorial 5", h.Tut3.Nr5}, {"Tutorial 6", h.Tut3.Nr6}, {"Tutorial 7", h.Tut3.Nr7}, {"Tutorial 8", h.Tut3.Nr8},
		{"Tutorial 9", h.Tut3.Nr9}, {"Tutorial 10", h.Tut3.Nr10}, {"Tutorial 11", h.Tut3.Nr11}, {"Tutorial 12", h.Tut3.Nr12},
		{"Tutorial 13", h.Tut1.Nr13}, {"Tutorial 14", h.Tut1.Nr14}, {"Tutorial 15", h.Tut1.Nr15},
		{"Tutorial 16", h.Tut1.Nr16}, {"Tutorial 17", h.Tut1.Nr17}, {"Tutorial 19", h.Tut1.Nr19},
		{"How to win", h.Tut2.Howtowin}, {"Background music", h.Tut2.Background_music},
		{"Event music", h.Tut2.Event_music}, {"Sound effects", h.Tut2.Sound_effects},
	}
	for _, t := range tutorials {
		out = append(out, fmt.Sprintf("%-16s: %5v", t.name, yes_no(t.v)))
	}
	out = append(out, "")

	out = append(out, "Founding fathers")
	for i, owner := range h.Founding_father {
		out = append(out, fmt.Sprintf("  %-24s %v", tables.Founding_fathers[i], tables.Founding_father_owner(owner)))
	}
	out = append(out, "")

	out = append(out, "Relations")
	for i, r := range h.Nation_relation {
		out = append(out, fmt.Sprintf("  %-11s %5d", tables.Nation(i), r))
	}
	out = append(out,
		fmt.Sprintf("Expeditionary force: %d regulars, %d cavalry, %d man-o-war, %d artillery",
			h.Expeditionary_force[0], h.Expeditionary_force[1], h.Expeditionary_force[2], h.Expeditionary_force[3]),
		"Backup force: "+hex(h.Backup_force[:]),
		fmt.Sprintf("Count down: %v", h.Count_down),
		"",
	)
	return out
}

func players(sd *types.Savegame, which int) ([]string, error) {
	indices, err := pick(which, sd.Player_at, len(sd.Players))
	if err != nil {
		return nil, err
	}
	out := []string{"-- player --"}
	for _, i := range indices {
		p := &sd.Players[i]
		out = append(out, fmt.Sprintf("%-11s: %23s / %23s : %-10s diplomacy: %02x unknown: %02x colonies: %2d",
			tables.Nation(i), p.Get_name(), p.Get_country(), p.Control, p.Diplomacy, p.Unk00, p.Founded_colonies))
	}
	return append(out, ""), nil
}

func other(sd *types.Savegame) []string {
	return []string{"-- other --", hex(sd.Other.Unk[:]), ""}
}

func colony_name(sd *types.Savegame, i int) string {
	c, err := sd.Colony_at(i)
	if err != nil {
		return fmt.Sprintf("Unknown colony (%v)", i)
	}
	return c.Get_name()
}

func colonies(sd *types.Savegame, which int) ([]string, error) {
	indices, err := pick(which, sd.Colony_at, len(sd.Colonies))
	if err != nil {
		return nil, err
	}
	out := []string{"-- colonies --"}
	for _, i := range indices {
		out = append(out, colony(&sd.Colonies[i], i)...)
	}
	return append(out, ""), nil
}

func colony(c *types.Colony, i int) []string {
	out := []string{
		fmt.Sprintf("[%3d] (%3d, %3d): %2d %v (%v)", i, c.X, c.Y, c.Population, c.Get_name(), c.Nation),
		hex(c.Unk0[:]),
		"Colonists;",
	}
	for j := 0; j < int(c.Population) && j < types.COLONY_SLOTS; j++ {
		profession, occupation := c.Citizen(j)
		out = append(out, fmt.Sprintf("[%2d]  %v working as %v", j, profession, occupation))
	}
	out = append(out, "", hex(c.Unk6[:]), "")

	t := c.Tiles
	out = append(out,
		fmt.Sprintf("%2d | %2d | %2d", t[types.TILE_NW], t[types.TILE_N], t[types.TILE_NE]),
		"-------------",
		fmt.Sprintf("%2d |    | %2d", t[types.TILE_W], t[types.TILE_E]),
		"-------------",
		fmt.Sprintf("%2d | %2d | %2d", t[types.TILE_SW], t[types.TILE_S], t[types.TILE_SE]),
		"",
		hex(c.Unk8[:]),
	)

	b := &c.Buildings
	buildings := []struct {
		name  string
		level uint8
	}{
		{"stockade", b.Stockade}, {"armory", b.Armory}, {"docks", b.Docks}, {"town_hall", b.Town_hall},
		{"schoolhouse", b.Schoolhouse}, {"warehouse", b.Warehouse}, {"stables", b.Stables},
		{"custom_house", b.Custom_house}, {"printing_press", b.Printing_press},
		{"weavers_house", b.Weavers_house}, {"tobacconists_house", b.Tobacconists_house},
		{"rum_distillers_house", b.Rum_distillers_house}, {"capitol", b.Capitol},
		{"fur_traders_house", b.Fur_traders_house}, {"carpenters_shop", b.Carpenters_shop},
		{"church", b.Church}, {"blacksmiths_house", b.Blacksmiths_house},
	}
	out = append(out, "Colony buildings:")
	for _, bl := range buildings {
		if name := tables.Level_name(bl.name, bl.level); name != "" {
			out = append(out, " "+name)
		}
	}
	if b.Unused != 0 {
		out = append(out, fmt.Sprintf(" unused bits: %x", b.Unused))
	}

	out = append(out,
		"Custom house: "+hex(c.Unka[:]),
		hex(c.Unk9[:]),
		fmt.Sprintf("%3d hammers producing: %v", c.Hammers, c.Building_in_production),
		hex(c.Unkb[:]),
		"Stock;",
	)
	for j, n := range c.Stock {
		out = append(out, fmt.Sprintf("  %11s: %3d", tables.Cargo(j), n))
	}
	out = append(out, "", hex(c.Unkd[:]),
		fmt.Sprintf("rebel ratio: %d/%d = %d", c.Rebel_dividend, c.Rebel_divisor, c.Rebel_percent()),
		"",
	)
	return out
}

func units(sd *types.Savegame, which int) ([]string, error) {
	indices, err := pick(which, sd.Unit_at, len(sd.Units))
	if err != nil {
		return nil, err
	}
	out := []string{"-- units --"}
	for _, i := range indices {
		out = append(out, unit(&sd.Units[i], i))
	}
	return append(out, ""), nil
}

func unit(u *types.Unit, i int) string {
	line := fmt.Sprintf("[%3d] (%3d, %3d): %-19s %-11s m:%02x tw:%d ",
		i, u.X, u.Y, u.Type, tables.Nation(u.Owner), u.Moves, u.Turns_worked)

	switch int(u.Type) {
	case tables.UNIT_TREASURE:
		line += fmt.Sprintf("%3d00 gold            ", u.Profession)
	case tables.UNIT_CARAVEL, tables.UNIT_MERCHANTMAN, tables.UNIT_GALLEON:
		line += fmt.Sprintf("%-22s", u.Type)
	default:
		line += fmt.Sprintf("%-22s", tables.Profession(u.Profession))
	}

	holds := []string{}
	for j := 0; j < int(u.Holds_occupied) && j < types.CARGO_SLOTS; j++ {
		holds = append(holds, fmt.Sprintf("%v:%3d", u.Cargo(j), u.Cargo_hold[j]))
	}
	line += fmt.Sprintf("cargo_holds (%d) : [ %v ]", u.Holds_occupied, strings.Join(holds, ", "))
	line += fmt.Sprintf(" (%x) %02x %02x %02x %v order:%d %3d %3d",
		u.Unk04, u.Unk05, u.Unk06, u.Unk07, hex(u.Unk08[:]), u.Order, u.Next_unit_idx, u.Prev_unit_idx)
	return line
}

func nations(sd *types.Savegame, which int) ([]string, error) {
	indices, err := pick(which, sd.Nation_at, len(sd.Nations))
	if err != nil {
		return nil, err
	}
	out := []string{"-- nations --"}
	for _, i := range indices {
		out = append(out, nation(&sd.Nations[i], i)...)
	}
	return append(out, ""), nil
}

func nation(n *types.Nation, i int) []string {
	out := []string{
		fmt.Sprintf("%-11s, tax_rate: %2d", tables.Nation(i), n.Tax_rate),
		fmt.Sprintf("Recruit: (%3d)", n.Recruit_count),
	}
	for _, r := range n.Recruit {
		out = append(out, fmt.Sprintf("  %v", tables.Profession(r)))
	}
	out = append(out,
		fmt.Sprintf("%02x / %02x", n.Unk0, n.Unk1),
		hex(n.Unk2[:]),
		fmt.Sprintf("Liberty bell production: %3d (%4d)", n.Liberty_bells_last_turn, n.Liberty_bells_total),
		hex(n.Unk3[:]),
	)

	ff := fmt.Sprintf("Founding fathers: %2d", n.Founding_father_count)
	if n.Next_founding_father != -1 {
		next := fmt.Sprintf("Unknown (%v)", n.Next_founding_father)
		if n.Next_founding_father >= 0 && int(n.Next_founding_father) < len(tables.Founding_fathers) {
			next = tables.Founding_fathers[n.Next_founding_father]
		}
		ff += ", Next founding father: " + next
	}
	out = append(out, ff,
		fmt.Sprintf("Villages burned: %d", n.Villages_burned),
		hex(n.Unk4[:]),
		fmt.Sprintf("Artillery count: %d", n.Artillery_count),
		hex(n.Unk5[:]),
		fmt.Sprintf("Gold: %5d, Crosses: %4d", n.Gold, n.Crosses),
		fmt.Sprintf("%v", n.Unk6),
	)
	for j, status := range n.Indian_relation {
		out = append(out, fmt.Sprintf("Indian status - %-8s:%v",
			tables.Nation(tables.INDIAN_OFFSET+j), safe_lookup(tables.Indian_status, status)))
	}
	out = append(out, hex(n.Unk7[:]))

	for j := range tables.CARGO_COUNT {
		c := tables.Cargo(j)
		boycott := ""
		if n.Boycotted(c) {
			boycott = "boycott"
		}
		out = append(out, fmt.Sprintf("%11s: %7s, euro: %2d, %4d(%04x) nr, %5d gold, %4d tons, %4d tons2",
			c, boycott, n.Trade.Euro_price[j], n.Trade.Nr[j], uint16(n.Trade.Nr[j]),
			n.Trade.Gold[j], n.Trade.Tons[j], n.Trade.Tons2[j]))
	}
	return append(out, "")
}

func cargo_or_none(c int8) string {
	if c == -1 {
		return "-1"
	}
	return tables.Cargo(uint8(c)).String()
}

func tribes(sd *types.Savegame, which int) ([]string, error) {
	indices, err := pick(which, sd.Tribe_at, len(sd.Tribes))
	if err != nil {
		return nil, err
	}
	out := []string{"-- tribes --"}
	for _, i := range indices {
		t := &sd.Tribes[i]
		s := &t.State
		out = append(out, fmt.Sprintf("[%3d] (%3d, %3d): %2d %-11s : state: artillery(%d) learned(%d) capital(%d) scouted(%d) %d %d %d %d,"+
			" mission(%2d) unk1: %02x f0: %d cargo_bought: %v cargo_sold: %v panic(%2d) %v %02x",
			i, t.X, t.Y, t.Population, t.Nation,
			s.Artillery, s.Learned, s.Capital, s.Scouted, s.Unk5, s.Unk6, s.Unk7, s.Unk8,
			t.Mission, t.Unk1, t.Flag_0, cargo_or_none(t.Last_cargo_bought), cargo_or_none(t.Last_cargo_sold),
			t.Panic, hex(t.Unk2[:]), t.Population_loss_in_current_turn))
	}
	return append(out, ""), nil
}

func indians(sd *types.Savegame, which int) ([]string, error) {
	if _, err := pick(which, sd.Indian_at, len(sd.Indian_relations)); err != nil {
		return nil, err
	}
	out := []string{"-- indian --"}
	for i, ir := range sd.All_indians() {
		if which >= 0 && i != which {
			continue
		}
		line := fmt.Sprintf("%-8s: %v", tables.Nation(tables.INDIAN_OFFSET+i), hex(ir.Unk0[:]))
		for j, met := range ir.Met {
			line += fmt.Sprintf(" %v_met(%02x)", nation_abbrev(j), met)
		}
		line += " " + hex(ir.Unk1[:])
		for j, aggr := range ir.Aggr {
			line += fmt.Sprintf(" %v_aggr(%3d)", nation_abbrev(j), aggr.Aggr)
		}
		out = append(out, line, "Stock;")
		for j, n := range ir.Stock {
			out = append(out, fmt.Sprintf("  %11s: %3d", tables.Cargo(j), n))
		}
	}
	return append(out, ""), nil
}

func nation_abbrev(i int) string {
	return strings.ToLower(tables.Nation(i).String()[:3])
}

func stuff(sd *types.Savegame) []string {
	s := &sd.Stuff
	out := []string{
		"-- stuff --",
		hex(s.Unk15[:]),
		fmt.Sprintf("decreasing_counter: %d", s.Counter_decreasing_on_new_colony),
		fmt.Sprintf("unk_short: %d", s.Unk_short),
		fmt.Sprintf("increasing_counter: %d", s.Counter_increasing_on_new_colony),
	}
	for i := 0; i < len(s.Unk_big); i += 16 {
		end := min(i+16, len(s.Unk_big))
		out = append(out, fmt.Sprintf("[0x%03x] %v", i, hex(s.Unk_big[i:end])))
	}

	zoom := fmt.Sprintf("UNKNOWN: (%02x)", s.Zoom_level)
	if int(s.Zoom_level) < len(tables.Zoom_levels) {
		zoom = tables.Zoom_levels[s.Zoom_level]
	}
	out = append(out,
		fmt.Sprintf("Active unit: (%3d, %3d)", s.X, s.Y),
		"Zoom level: "+zoom,
		fmt.Sprintf("%02x", s.Unk7),
		fmt.Sprintf("Viewport: (%3d, %3d)", s.Viewport_x, s.Viewport_y),
		"",
	)
	return out
}

// map_layers prints every layer as a grid of display tiles, one hex digit per cell where possible
func map_layers(sd *types.Savegame) []string {
	out := []string{"-- map --"}
	for layer := range types.MAP_LAYERS {
		for y := range types.MAP_HEIGHT {
			var line strings.Builder
			for x := range types.MAP_WIDTH {
				fmt.Fprintf(&line, "%x", sd.Map.At(layer, x, y).Display_tile())
			}
			out = append(out, line.String())
		}
		out = append(out, "")
	}
	return out
}

func tail(sd *types.Savegame) []string {
	out := []string{"-- tail --"}
	for i := 0; i < len(sd.Tail.Unk); i += 20 {
		end := min(i+20, len(sd.Tail.Unk))
		out = append(out, hex(sd.Tail.Unk[i:end]))
	}
	if len(sd.Trailer) > 0 {
		out = append(out, fmt.Sprintf("(%v more bytes after the trade routes)", len(sd.Trailer)))
	}
	return append(out, "")
}

func cargo_list(items [types.CARGO_SLOTS]uint8, size uint8) string {
	names := []string{}
	for j := 0; j < int(size) && j < types.CARGO_SLOTS; j++ {
		names = append(names, tables.Cargo(items[j]).String())
	}
	return strings.Join(names, ", ")
}

func routes(sd *types.Savegame, which int) ([]string, error) {
	indices, err := pick(which, sd.Trade_route_at, len(sd.Trade_routes))
	if err != nil {
		return nil, err
	}
	out := []string{"-- trade routes --"}
	for _, i := range indices {
		r := &sd.Trade_routes[i]
		kind := "land"
		if r.Is_sea() {
			kind = "sea"
		}
		out = append(out, fmt.Sprintf("%-31s, type: %4s, entries: %d", r.Get_name(), kind, r.Stop_count))
		for j := 0; j < int(r.Stop_count) && j < types.ROUTE_STOPS; j++ {
			s := &r.Stops[j]
			out = append(out, fmt.Sprintf("%d. %-24s | unloading: %d, [%v] | loading: %d, [%v]",
				j, colony_name(sd, int(s.Destination)),
				s.Unloading_size, cargo_list(s.Unloading, s.Unloading_size),
				s.Loading_size, cargo_list(s.Loading, s.Loading_size)))
		}
		out = append(out, "")
	}
	return append(out, ""), nil
}
