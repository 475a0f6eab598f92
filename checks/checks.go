package checks

// Consistency checks over a decoded savegame.
//
// None of these stop a file from being read or written; the game itself is sometimes sloppy.
// They exist to catch edits that would confuse the game, and to point at corrupt files.

import (
	"fmt"
	"runtime/debug"

	"coldump/tables"
	"coldump/types"
)

type Check struct {
	Id   string
	Expl string
	// Test returns one line per problem found
	Test func(sd *types.Savegame) []string
}

type Finding struct {
	Category string
	Id       string
	Detail   string
}

func (f Finding) String() string {
	return fmt.Sprintf("%v/%v: %v", f.Category, f.Id, f.Detail)
}

// check helper functions

// each_colony makes a check that looks at colonies one at a time
func each_colony(id string, expl string, test func(c *types.Colony) string) Check {
	return Check{id, expl, func(sd *types.Savegame) []string {
		out := []string{}
		for i, c := range sd.All_colonies() {
			if problem := test(c); problem != "" {
				out = append(out, fmt.Sprintf("colony %v (%v): %v", i, c.Get_name(), problem))
			}
		}
		return out
	}}
}

func each_unit(id string, expl string, test func(sd *types.Savegame, u *types.Unit) string) Check {
	return Check{id, expl, func(sd *types.Savegame) []string {
		out := []string{}
		for i, u := range sd.All_units() {
			if problem := test(sd, u); problem != "" {
				out = append(out, fmt.Sprintf("unit %v (%v at %v,%v): %v", i, u.Type, u.X, u.Y, problem))
			}
		}
		return out
	}}
}

func each_route(id string, expl string, test func(sd *types.Savegame, r *types.Trade_route) string) Check {
	return Check{id, expl, func(sd *types.Savegame) []string {
		out := []string{}
		for i, r := range sd.All_trade_routes() {
			if problem := test(sd, r); problem != "" {
				out = append(out, fmt.Sprintf("trade route %v (%v): %v", i, r.Get_name(), problem))
			}
		}
		return out
	}}
}

func counter(id string, name string, header func(h *types.Header) uint16, have func(sd *types.Savegame) int) Check {
	return Check{id, "Header " + name + " count matches the " + name + " list", func(sd *types.Savegame) []string {
		if int(header(&sd.Header)) != have(sd) {
			return []string{fmt.Sprintf("header says %v, list has %v", header(&sd.Header), have(sd))}
		}
		return nil
	}}
}

// unit_link checks a transport chain index
func unit_link(sd *types.Savegame, idx int16) bool {
	return idx >= -1 && int(idx) < len(sd.Units)
}

var Check_list = []struct {
	Category string
	Checks   []Check
}{
	{"Header", []Check{
		counter("CID_COLONY_COUNT", "colony", func(h *types.Header) uint16 { return h.Colony_count }, func(sd *types.Savegame) int { return len(sd.Colonies) }),
		counter("CID_UNIT_COUNT", "unit", func(h *types.Header) uint16 { return h.Unit_count }, func(sd *types.Savegame) int { return len(sd.Units) }),
		counter("CID_TRIBE_COUNT", "tribe", func(h *types.Header) uint16 { return h.Tribe_count }, func(sd *types.Savegame) int { return len(sd.Tribes) }),
		counter("CID_ROUTE_COUNT", "trade route", func(h *types.Header) uint16 { return h.Trade_route_count }, func(sd *types.Savegame) int { return len(sd.Trade_routes) }),

		{"CID_SIGNATURE", "File starts with " + types.MAGIC, func(sd *types.Savegame) []string {
			if !sd.Signature_valid() {
				return []string{fmt.Sprintf("signature is %q", sd.Header.Signature_string())}
			}
			return nil
		}},

		{"CID_DIFFICULTY", "Difficulty is a known level", func(sd *types.Savegame) []string {
			if !sd.Header.Difficulty.Known() {
				return []string{sd.Header.Difficulty.String()}
			}
			return nil
		}},
	}},

	{"Players", []Check{
		{"CID_CONTROL", "Every player is human, AI or withdrawn", func(sd *types.Savegame) []string {
			out := []string{}
			for i, p := range sd.All_players() {
				if !p.Control.Known() {
					out = append(out, fmt.Sprintf("player %v: control %v", i, p.Control))
				}
			}
			return out
		}},

		{"CID_HUMAN", "Somebody is playing", func(sd *types.Savegame) []string {
			if sd.Human_player() < 0 {
				return []string{"no human player"}
			}
			return nil
		}},
	}},

	{"Colonies", []Check{
		each_colony("CID_POPULATION", "Population fits in the citizen slots", func(c *types.Colony) string {
			if int(c.Population) > types.COLONY_SLOTS {
				return fmt.Sprintf("population %v", c.Population)
			}
			return ""
		}),

		each_colony("CID_COLONY_NATION", "Colonies belong to a European nation", func(c *types.Colony) string {
			if !c.Nation.Is_european() {
				return fmt.Sprintf("owned by %v", c.Nation)
			}
			return ""
		}),

		each_colony("CID_TILE_WORKER", "Tiles are worked by actual citizens", func(c *types.Colony) string {
			for t, who := range c.Tiles {
				if who >= 0 && int(who) >= int(c.Population) {
					return fmt.Sprintf("tile %v worked by citizen %v of %v", t, who, c.Population)
				}
			}
			return ""
		}),

		each_colony("CID_PRODUCTION", "Colonies are building something that exists", func(c *types.Colony) string {
			if !c.Building_in_production.Known() {
				return "building " + c.Building_in_production.String()
			}
			return ""
		}),
	}},

	{"Units", []Check{
		each_unit("CID_UNIT_OWNER", "Units belong to a nation", func(sd *types.Savegame, u *types.Unit) string {
			if !tables.Nation(u.Owner).Known() {
				return fmt.Sprintf("owner %v", tables.Nation(u.Owner))
			}
			return ""
		}),

		each_unit("CID_UNIT_TYPE", "Units are of a known type", func(sd *types.Savegame, u *types.Unit) string {
			if !u.Type.Known() {
				return "type " + u.Type.String()
			}
			return ""
		}),

		each_unit("CID_HOLDS", "No more holds occupied than a ship has", func(sd *types.Savegame, u *types.Unit) string {
			if int(u.Holds_occupied) > types.CARGO_SLOTS {
				return fmt.Sprintf("%v holds occupied", u.Holds_occupied)
			}
			return ""
		}),

		each_unit("CID_TRANSPORT_CHAIN", "Transport links point at real units", func(sd *types.Savegame, u *types.Unit) string {
			if !unit_link(sd, u.Next_unit_idx) || !unit_link(sd, u.Prev_unit_idx) {
				return fmt.Sprintf("links to %v and %v, only %v units", u.Next_unit_idx, u.Prev_unit_idx, len(sd.Units))
			}
			return ""
		}),
	}},

	{"Tribes", []Check{
		{"CID_TRIBE_NATION", "Tribes belong to a native nation", func(sd *types.Savegame) []string {
			out := []string{}
			for i, t := range sd.All_tribes() {
				if t.Nation.Is_european() || !t.Nation.Known() {
					out = append(out, fmt.Sprintf("tribe %v at %v,%v: nation %v", i, t.X, t.Y, t.Nation))
				}
			}
			return out
		}},
	}},

	{"Trade routes", []Check{
		each_route("CID_STOP_COUNT", "Routes have at most 4 stops", func(sd *types.Savegame, r *types.Trade_route) string {
			if int(r.Stop_count) > types.ROUTE_STOPS {
				return fmt.Sprintf("%v stops", r.Stop_count)
			}
			return ""
		}),

		each_route("CID_STOP_DESTINATION", "Stops are at colonies that exist", func(sd *types.Savegame, r *types.Trade_route) string {
			for i := 0; i < int(r.Stop_count) && i < types.ROUTE_STOPS; i++ {
				if int(r.Stops[i].Destination) >= len(sd.Colonies) {
					return fmt.Sprintf("stop %v goes to colony %v, only %v colonies", i, r.Stops[i].Destination, len(sd.Colonies))
				}
			}
			return ""
		}),

		each_route("CID_STOP_CARGO", "Stops load and unload at most 6 cargos", func(sd *types.Savegame, r *types.Trade_route) string {
			for i := 0; i < int(r.Stop_count) && i < types.ROUTE_STOPS; i++ {
				s := r.Stops[i]
				if int(s.Loading_size) > types.CARGO_SLOTS || int(s.Unloading_size) > types.CARGO_SLOTS {
					return fmt.Sprintf("stop %v loads %v and unloads %v", i, s.Loading_size, s.Unloading_size)
				}
			}
			return ""
		}),
	}},
}

// Run runs every check and returns what they found, in list order
func Run(sd *types.Savegame) []Finding {
	out := []Finding{}
	for _, list := range Check_list {
		for _, check := range list.Checks {
			for _, detail := range run_one(&check, sd) {
				out = append(out, Finding{list.Category, check.Id, detail})
			}
		}
	}
	return out
}

// run_one keeps a badly-written check from bringing everything down
func run_one(c *Check, sd *types.Savegame) (out []string) {
	defer func() {
		if r := recover(); r != nil {
			out = []string{fmt.Sprintf("check crashed: %v\n%s", r, debug.Stack())}
		}
	}()
	return c.Test(sd)
}
