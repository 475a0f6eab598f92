package cheats

// Named in-memory changes to a savegame.  Nothing here touches a file: callers decide whether and
// where to write the result.

import (
	"fmt"
	"slices"
	"strconv"

	"coldump/tables"
	"coldump/types"
	"coldump/utils"
)

type mutation struct {
	description string
	apply       func(sd *types.Savegame) error
}

var mutations = map[string]*mutation{
	"boost": {"give the human player 4,000,000 gold, 10 experts in every colony, and flatten everyone else's stockades", boost},
}

// List returns the available mutation names, sorted
func List() []string {
	out := []string{}
	for name := range mutations {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

func Describe(name string) string {
	m, ok := mutations[name]
	if !ok {
		return ""
	}
	return m.description
}

// Apply applies the named mutation.  On error, sd has not been changed.
func Apply(sd *types.Savegame, name string) error {
	m, ok := mutations[name]
	if !ok {
		return &types.LogicError{Mutation: name, Reason: "no such mutation"}
	}
	return m.apply(sd)
}

const BOOST_GOLD = 4000000
const BOOST_POPULATION = 10

// boost_slots is who boost puts in each citizen slot, and which tile (if any) they work
var boost_slots = []struct {
	profession tables.Profession
	tile       int
}{
	{tables.PROF_ELDER_STATESMAN, -1},
	{tables.PROF_ELDER_STATESMAN, -1},
	{tables.PROF_ELDER_STATESMAN, -1},
	{tables.PROF_CARPENTER, -1},
	{tables.PROF_CARPENTER, -1},
	{tables.PROF_BLACKSMITH, -1},
	{tables.PROF_BLACKSMITH, -1},
	{tables.PROF_LUMBERJACK, types.TILE_N},
	{tables.PROF_FISHERMAN, types.TILE_E},
	{tables.PROF_ORE_MINER, types.TILE_NW},
}

func boost(sd *types.Savegame) error {
	human := sd.Human_player()
	if human < 0 {
		return &types.LogicError{Mutation: "boost", Reason: "no human player"}
	}
	nation := tables.Nation(human)

	sd.Nations[human].Gold = BOOST_GOLD

	for _, c := range sd.All_colonies() {
		if c.Nation != nation {
			// Opposing nations, remove pesky stockades
			c.Buildings.Stockade = 0
			continue
		}
		for slot, s := range boost_slots {
			c.Set_citizen(slot, s.profession)
			if s.tile >= 0 {
				c.Tiles[s.tile] = int8(slot)
			}
		}
		c.Population = BOOST_POPULATION
		c.Buildings.Docks = 1
		c.Buildings.Custom_house = 1
	}
	return nil
}

// Settables are single values that can be set by name, for the human player where that matters.
type settable struct {
	get func(sd *types.Savegame) (string, error)
	set func(sd *types.Savegame, to string) (string, error)
}

var settables = map[string]*settable{
	"gold":       {get_gold, set_gold},
	"tax":        {get_tax, set_tax},
	"difficulty": {get_difficulty, set_difficulty},
	"year":       {get_year, set_year},
	"name":       {get_name, set_name},
}

func Settables() []string {
	out := []string{}
	for name := range settables {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

func lookup(what string) (*settable, error) {
	s, ok := settables[what]
	if !ok {
		return nil, fmt.Errorf("%v is not settable.  Settables are: %v", what, Settables())
	}
	return s, nil
}

// Get returns the current value of a settable as a human-readable string
func Get(sd *types.Savegame, what string) (string, error) {
	s, err := lookup(what)
	if err != nil {
		return "", err
	}
	return s.get(sd)
}

// Set sets a settable.  It returns the value as understood (not necessarily equal to "to" due to
// fuzzy matching).
func Set(sd *types.Savegame, what string, to string) (string, error) {
	s, err := lookup(what)
	if err != nil {
		return "", err
	}
	return s.set(sd, to)
}

func human_nation(sd *types.Savegame, what string) (*types.Nation, error) {
	human := sd.Human_player()
	if human < 0 {
		return nil, &types.LogicError{Mutation: what, Reason: "no human player"}
	}
	return &sd.Nations[human], nil
}

// parse_uint parses a non-negative number that has to fit in bits
func parse_uint(what string, to string, bits int) (uint64, error) {
	n, err := strconv.ParseUint(to, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%v must be a number from 0 to %v: %w", what, uint64(1)<<bits-1, err)
	}
	return n, nil
}

func get_gold(sd *types.Savegame) (string, error) {
	n, err := human_nation(sd, "gold")
	if err != nil {
		return "", err
	}
	return fmt.Sprint(n.Gold), nil
}

func set_gold(sd *types.Savegame, to string) (string, error) {
	n, err := human_nation(sd, "gold")
	if err != nil {
		return "", err
	}
	v, err := parse_uint("gold", to, 32)
	if err != nil {
		return "", err
	}
	n.Gold = uint32(v)
	return fmt.Sprint(v), nil
}

func get_tax(sd *types.Savegame) (string, error) {
	n, err := human_nation(sd, "tax")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v%%", n.Tax_rate), nil
}

func set_tax(sd *types.Savegame, to string) (string, error) {
	n, err := human_nation(sd, "tax")
	if err != nil {
		return "", err
	}
	v, err := parse_uint("tax", to, 8)
	if err != nil {
		return "", err
	}
	n.Tax_rate = uint8(v)
	return fmt.Sprintf("%v%%", v), nil
}

func get_difficulty(sd *types.Savegame) (string, error) {
	return sd.Header.Difficulty.String(), nil
}

func set_difficulty(sd *types.Savegame, to string) (string, error) {
	d, matched, err := utils.Fuzzy_enum[tables.Difficulty](tables.Difficulties, to, "difficulty")
	if err != nil {
		return "", err
	}
	sd.Header.Difficulty = d
	return matched, nil
}

func get_year(sd *types.Savegame) (string, error) {
	season := "spring"
	if sd.Header.Autumn != 0 {
		season = "autumn"
	}
	return fmt.Sprintf("%v (%v)", sd.Header.Year, season), nil
}

func set_year(sd *types.Savegame, to string) (string, error) {
	v, err := parse_uint("year", to, 16)
	if err != nil {
		return "", err
	}
	sd.Header.Year = uint16(v)
	return fmt.Sprint(v), nil
}

func get_name(sd *types.Savegame) (string, error) {
	human := sd.Human_player()
	if human < 0 {
		return "", &types.LogicError{Mutation: "name", Reason: "no human player"}
	}
	return sd.Players[human].Get_name(), nil
}

func set_name(sd *types.Savegame, to string) (string, error) {
	human := sd.Human_player()
	if human < 0 {
		return "", &types.LogicError{Mutation: "name", Reason: "no human player"}
	}
	return to, sd.Players[human].Set_name(to)
}
