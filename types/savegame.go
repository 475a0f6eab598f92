package types

import (
	"iter"

	"coldump/tables"
)

// Savegame stores fully-parsed data from a savefile.
//
// Colonies, Units, Tribes and Trade_routes are sized from the header counters when the file is
// read.  Writing uses their actual lengths; anything that adds or removes records must update the
// matching header counter itself.
type Savegame struct {
	Header           Header
	Players          [PLAYER_COUNT]Player
	Other            Other
	Colonies         []Colony
	Units            []Unit
	Nations          [NATION_COUNT]Nation
	Tribes           []Tribe
	Indian_relations [INDIAN_COUNT]Indian_relations
	Stuff            Stuff
	Map              Map
	Tail             Tail
	Trade_routes     []Trade_route

	// Trailer is whatever follows the last trade route.  The game pads routes out to a fixed
	// table, so real files usually have something here.
	Trailer []byte

	// Anomalies are the non-fatal problems found while reading: bad signature, odd bit fields.
	Anomalies []FormatError
}

func (sd *Savegame) Signature_valid() bool {
	return string(sd.Header.Signature[:]) == MAGIC
}

// Human_player returns the index of the first human-controlled player, or -1
func (sd *Savegame) Human_player() int {
	for i := range sd.Players {
		if sd.Players[i].Control == tables.CONTROL_HUMAN {
			return i
		}
	}
	return -1
}

func at[T any](collection string, from []T, i int) (*T, error) {
	if i < 0 || i >= len(from) {
		return nil, &IndexError{collection, i, len(from)}
	}
	// Do not return a copy, caller may be getting to edit
	return &from[i], nil
}

func all[T any](from []T) iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range from {
			if !yield(i, &from[i]) {
				return
			}
		}
	}
}

func (sd *Savegame) Player_at(i int) (*Player, error) { return at("player", sd.Players[:], i) }
func (sd *Savegame) Colony_at(i int) (*Colony, error) { return at("colony", sd.Colonies, i) }
func (sd *Savegame) Unit_at(i int) (*Unit, error) { return at("unit", sd.Units, i) }
func (sd *Savegame) Nation_at(i int) (*Nation, error) { return at("nation", sd.Nations[:], i) }
func (sd *Savegame) Tribe_at(i int) (*Tribe, error) { return at("tribe", sd.Tribes, i) }

func (sd *Savegame) Indian_at(i int) (*Indian_relations, error) {
	return at("indian", sd.Indian_relations[:], i)
}

func (sd *Savegame) Trade_route_at(i int) (*Trade_route, error) {
	return at("trade_route", sd.Trade_routes, i)
}

func (sd *Savegame) All_players() iter.Seq2[int, *Player] { return all(sd.Players[:]) }
func (sd *Savegame) All_colonies() iter.Seq2[int, *Colony] { return all(sd.Colonies) }
func (sd *Savegame) All_units() iter.Seq2[int, *Unit] { return all(sd.Units) }
func (sd *Savegame) All_nations() iter.Seq2[int, *Nation] { return all(sd.Nations[:]) }
func (sd *Savegame) All_tribes() iter.Seq2[int, *Tribe] { return all(sd.Tribes) }

func (sd *Savegame) All_indians() iter.Seq2[int, *Indian_relations] {
	return all(sd.Indian_relations[:])
}

func (sd *Savegame) All_trade_routes() iter.Seq2[int, *Trade_route] {
	return all(sd.Trade_routes)
}

// Colonies_of iterates over the colonies owned by one nation
func (sd *Savegame) Colonies_of(n tables.Nation) iter.Seq2[int, *Colony] {
	return func(yield func(int, *Colony) bool) {
		for i := range sd.Colonies {
			if sd.Colonies[i].Nation == n && !yield(i, &sd.Colonies[i]) {
				return
			}
		}
	}
}

// Citizen returns what the colonist in slot i is (profession) and does (occupation)
func (c *Colony) Citizen(i int) (profession tables.Profession, occupation tables.Profession) {
	return tables.Profession(c.Profession[i]), tables.Profession(c.Occupation[i])
}

// Set_citizen sets both profession and occupation of slot i
func (c *Colony) Set_citizen(i int, p tables.Profession) {
	c.Profession[i] = uint8(p)
	c.Occupation[i] = uint8(p)
}

// Rebel_percent is the sons of liberty membership; 0 if the game hasn't set a divisor yet
func (c *Colony) Rebel_percent() uint32 {
	if c.Rebel_divisor == 0 {
		return 0
	}
	return uint32(uint64(c.Rebel_dividend) * 100 / uint64(c.Rebel_divisor))
}

func (u *Unit) Cargo(i int) tables.Cargo {
	return tables.Cargo(u.Cargo_items[i])
}
