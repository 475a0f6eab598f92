package schema

import (
	"testing"

	"coldump/types"
)

func Test_RecordSizes(t *testing.T) {
	cases := []struct {
		name string
		walk func(c Coder)
		want int
	}{
		{"header", func(c Coder) { Header(c, &types.Header{}) }, HEADER_SIZE},
		{"player", func(c Coder) { Player(c, &types.Player{}) }, PLAYER_SIZE},
		{"colony", func(c Coder) { Colony(c, &types.Colony{}) }, COLONY_SIZE},
		{"unit", func(c Coder) { Unit(c, &types.Unit{}) }, UNIT_SIZE},
		{"nation", func(c Coder) { Nation(c, &types.Nation{}) }, NATION_SIZE},
		{"tribe", func(c Coder) { Tribe(c, &types.Tribe{}) }, TRIBE_SIZE},
		{"indian", func(c Coder) { Indian(c, &types.Indian_relations{}) }, INDIAN_SIZE},
		{"stuff", func(c Coder) { Stuff(c, &types.Stuff{}) }, STUFF_SIZE},
		{"map", func(c Coder) { Map(c, &types.Map{}) }, MAP_SIZE},
		{"trade_route", func(c Coder) { Trade_route(c, &types.Trade_route{}) }, TRADE_ROUTE_SIZE},
	}
	for _, tc := range cases {
		if got := Size_of(tc.walk); got != tc.want {
			t.Errorf("%v: size %v, want %v", tc.name, got, tc.want)
		}
	}
	if MAP_SIZE != 16704 {
		t.Errorf("map size %v, want 16704", MAP_SIZE)
	}
}

func Test_EncodedSize(t *testing.T) {
	sd := &types.Savegame{}
	sd.Header.Colony_count = 3
	sd.Header.Unit_count = 5
	sd.Header.Tribe_count = 2
	sd.Header.Trade_route_count = 1
	sd.Colonies = make([]types.Colony, 3)
	sd.Units = make([]types.Unit, 5)
	sd.Tribes = make([]types.Tribe, 2)
	sd.Trade_routes = make([]types.Trade_route, 1)
	sd.Trailer = []byte{1, 2, 3}

	want := File_size(&sd.Header) + 3
	if got := Encoded_size(sd); got != want {
		t.Errorf("encoded size %v, want %v", got, want)
	}

	fixed := HEADER_SIZE + 4*PLAYER_SIZE + OTHER_SIZE + 4*NATION_SIZE + 8*INDIAN_SIZE + STUFF_SIZE + MAP_SIZE + TAIL_SIZE
	if got := File_size(&types.Header{}); got != fixed {
		t.Errorf("empty file size %v, want %v", got, fixed)
	}
	if got := File_size(&sd.Header); got != fixed+3*COLONY_SIZE+5*UNIT_SIZE+2*TRIBE_SIZE+TRADE_ROUTE_SIZE {
		t.Errorf("file size %v is wrong", got)
	}
}

// Every group must cover its storage unit exactly, or a load-save cycle would lose bits
func Test_GroupsTileTheirUnit(t *testing.T) {
	for _, g := range Groups {
		next := uint(0)
		for _, f := range g.Fields {
			if f.Offset != next {
				t.Errorf("%v.%v: offset %v, want %v", g.Name, f.Name, f.Offset, next)
			}
			if f.Width == 0 {
				t.Errorf("%v.%v: zero width", g.Name, f.Name)
			}
			if f.Max != 0 && !f.Fits(f.Max) {
				t.Errorf("%v.%v: max %v does not fit in %v bits", g.Name, f.Name, f.Max, f.Width)
			}
			next += f.Width
		}
		if next != uint(g.Unit*8) {
			t.Errorf("%v: fields cover %v bits, unit has %v", g.Name, next, g.Unit*8)
		}
	}
}

func Test_PackUnpack(t *testing.T) {
	for _, g := range Groups {
		for _, f := range g.Fields {
			for v := uint32(0); v <= Mask(f.Width) && v < 256; v++ {
				// Pack into a unit full of ones to check neighbours survive
				unit := Mask(uint(g.Unit * 8))
				packed := Pack(unit, f, v)
				if got := Unpack(packed, f); got != v {
					t.Errorf("%v.%v: unpack(pack(%v)) = %v", g.Name, f.Name, v, got)
				}
				if Pack(packed, f, Unpack(unit, f)) != unit {
					t.Errorf("%v.%v: packing %v clobbered other fields", g.Name, f.Name, v)
				}
			}
		}
	}
}

func Test_LowBitFirst(t *testing.T) {
	// 0b101_1_0_010: tile 2, no forest, water, phys 5
	cell := uint32(0xb2)
	want := []uint32{2, 0, 1, 5}
	for i, f := range Map_cell.Fields {
		if got := Unpack(cell, f); got != want[i] {
			t.Errorf("%v: got %v, want %v", f.Name, got, want[i])
		}
	}

	if !Route_sizes.Fields[0].In_range(6) || Route_sizes.Fields[0].In_range(7) {
		t.Error("loading size should accept 6 and refuse 7")
	}
	if !Unit_owner.Fields[0].Fits(15) || Unit_owner.Fields[0].In_range(12) {
		t.Error("owner should fit 15 but only 0-11 are in range")
	}
}
