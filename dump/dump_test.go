package dump

import (
	"errors"
	"strings"
	"testing"

	"coldump/tables"
	"coldump/types"
)

func game() *types.Savegame {
	sd := &types.Savegame{}
	copy(sd.Header.Signature[:], types.MAGIC)
	sd.Header.Year = 1525
	sd.Header.Autumn = 1
	sd.Players[tables.NATION_ENGLAND].Control = tables.CONTROL_HUMAN
	sd.Players[tables.NATION_ENGLAND].Set_name("Raleigh")

	sd.Colonies = make([]types.Colony, 2)
	sd.Colonies[0].Set_name("Jamestown")
	sd.Colonies[0].Population = 2
	sd.Colonies[0].Buildings.Docks = 3
	sd.Colonies[1].Set_name("Roanoke")
	sd.Header.Colony_count = 2

	sd.Trade_routes = make([]types.Trade_route, 1)
	r := &sd.Trade_routes[0]
	copy(r.Name[:], "Tobacco run")
	r.Stop_count = 2
	r.Stops[0].Destination = 1
	r.Stops[0].Loading_size = 2
	r.Stops[0].Loading = [6]uint8{2, 4}
	r.Stops[1].Destination = 9
	sd.Header.Trade_route_count = 1

	sd.Map.At(0, 3, 0).Water = 1
	sd.Map.At(0, 3, 0).Tile = 2
	return sd
}

func has(lines []string, want string) bool {
	for _, l := range lines {
		if strings.Contains(l, want) {
			return true
		}
	}
	return false
}

func Test_Sections(t *testing.T) {
	sd := game()
	for _, name := range Sections() {
		lines, err := Section(sd, name, -1)
		if err != nil {
			t.Errorf("%v: %v", name, err)
			continue
		}
		if len(lines) == 0 || !strings.HasPrefix(lines[0], "-- ") {
			t.Errorf("%v: no title", name)
		}
	}

	tests := []struct {
		section string
		want    string
	}{
		{"head", "Signature: COLONIZE: OK"},
		{"head", "Autumn 1525"},
		{"player", "Raleigh"},
		{"colony", "Jamestown"},
		{"colony", " dry dock"},
		{"route", "Tobacco run"},
		{"route", "0. Roanoke"},
		{"route", "loading: 2, [Tobacco, Furs]"},
		{"route", "Unknown colony (9)"},
		{"nation", "Indian status - Arawak"},
	}
	for _, test := range tests {
		lines, _ := Section(sd, test.section, -1)
		if !has(lines, test.want) {
			t.Errorf("%v: no line with %q", test.section, test.want)
		}
	}
}

func Test_BadSignatureShown(t *testing.T) {
	sd := game()
	sd.Header.Signature[0] = 'X'
	lines, _ := Section(sd, "head", -1)
	if !has(lines, ": INVALID") {
		t.Error("bad signature not flagged")
	}
}

func Test_SingleRecord(t *testing.T) {
	sd := game()
	lines, err := Section(sd, "colony", 1)
	if err != nil {
		t.Fatal(err)
	}
	if has(lines, "Jamestown") || !has(lines, "Roanoke") {
		t.Errorf("wrong colony: %v", lines[1])
	}

	_, err = Section(sd, "colony", 2)
	var ie *types.IndexError
	if !errors.As(err, &ie) || ie.Index != 2 || ie.Len != 2 {
		t.Errorf("expected index error, got %v", err)
	}

	_, err = Section(sd, "player", 4)
	if !errors.As(err, &ie) {
		t.Errorf("expected index error, got %v", err)
	}

	if _, err = Section(sd, "colonies", -1); err == nil {
		t.Error("unknown section dumped")
	}

	if !Indexed("unit") || Indexed("map") {
		t.Error("Indexed is wrong")
	}
}

func Test_Indians(t *testing.T) {
	sd := game()
	sd.Indian_relations[2].Aggr[tables.NATION_ENGLAND].Aggr = 77

	lines, err := Section(sd, "indian", 2)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(lines[1], "Arawak  :") || !strings.Contains(lines[1], "eng_aggr( 77)") {
		t.Errorf("wrong indian: %v", lines[1])
	}
	if has(lines, "Inca") {
		t.Error("other nations dumped too")
	}

	lines, err = Section(sd, "indian", -1)
	if err != nil {
		t.Fatal(err)
	}
	stocks := 0
	for _, l := range lines {
		if l == "Stock;" {
			stocks++
		}
	}
	if stocks != tables.INDIAN_COUNT {
		t.Errorf("%v indian records dumped, want %v", stocks, tables.INDIAN_COUNT)
	}
}

func Test_Map(t *testing.T) {
	lines, _ := Section(game(), "map", -1)
	if len(lines) != 1+types.MAP_LAYERS*(types.MAP_HEIGHT+1) {
		t.Fatalf("%v lines", len(lines))
	}
	if lines[1] != "000b"+strings.Repeat("0", types.MAP_WIDTH-4) {
		t.Errorf("first row %q", lines[1])
	}
}
