package cheats

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"coldump/readers"
	"coldump/tables"
	"coldump/types"
	"coldump/writers"
)

// game makes a small savegame: France is human, colonies 0 and 2 are French, 1 is English
func game() *types.Savegame {
	sd := &types.Savegame{}
	copy(sd.Header.Signature[:], types.MAGIC)
	for i := range sd.Players {
		sd.Players[i].Control = tables.CONTROL_AI
	}
	sd.Players[tables.NATION_FRANCE].Control = tables.CONTROL_HUMAN
	sd.Players[tables.NATION_FRANCE].Set_name("Champlain")

	sd.Colonies = make([]types.Colony, 3)
	for i, n := range []tables.Nation{tables.NATION_FRANCE, tables.NATION_ENGLAND, tables.NATION_FRANCE} {
		c := &sd.Colonies[i]
		c.Nation = n
		c.Population = 3
		c.Buildings.Stockade = 3
		c.Tiles = [8]int8{-1, -1, -1, -1, -1, -1, -1, -1}
		for slot := 0; slot < 3; slot++ {
			c.Set_citizen(slot, tables.Profession(19))
		}
	}
	sd.Header.Colony_count = 3
	sd.Units = []types.Unit{}
	sd.Tribes = []types.Tribe{}
	sd.Trade_routes = []types.Trade_route{}
	sd.Nations[tables.NATION_FRANCE].Gold = 1000
	sd.Nations[tables.NATION_ENGLAND].Gold = 2000
	return sd
}

func Test_Boost(t *testing.T) {
	sd := game()
	if err := Apply(sd, "boost"); err != nil {
		t.Fatal(err)
	}

	if sd.Nations[tables.NATION_FRANCE].Gold != 4000000 {
		t.Errorf("human gold %v", sd.Nations[tables.NATION_FRANCE].Gold)
	}
	if sd.Nations[tables.NATION_ENGLAND].Gold != 2000 {
		t.Errorf("AI gold changed to %v", sd.Nations[tables.NATION_ENGLAND].Gold)
	}

	want_slots := []tables.Profession{0x11, 0x11, 0x11, 0x0d, 0x0d, 0x0e, 0x0e, 0x05, 0x08, 0x06}
	for _, i := range []int{0, 2} {
		c := &sd.Colonies[i]
		for slot, want := range want_slots {
			p, o := c.Citizen(slot)
			if p != want || o != want {
				t.Errorf("colony %v slot %v: %v/%v, want %v", i, slot, p, o, want)
			}
		}
		if p, _ := c.Citizen(10); p != 0 {
			t.Errorf("colony %v slot 10 touched: %v", i, p)
		}
		if c.Tiles != [8]int8{7, 8, -1, -1, 9, -1, -1, -1} {
			t.Errorf("colony %v tiles %v", i, c.Tiles)
		}
		if c.Population != 10 || c.Buildings.Docks != 1 || c.Buildings.Custom_house != 1 {
			t.Errorf("colony %v: population %v docks %v custom house %v",
				i, c.Population, c.Buildings.Docks, c.Buildings.Custom_house)
		}
		if c.Buildings.Stockade != 3 {
			t.Errorf("colony %v lost its own stockade", i)
		}
	}

	english := &sd.Colonies[1]
	if english.Buildings.Stockade != 0 {
		t.Errorf("enemy stockade %v", english.Buildings.Stockade)
	}
	if english.Population != 3 || english.Buildings.Docks != 0 {
		t.Error("enemy colony changed beyond its stockade")
	}
}

// A boosted game must survive a save and load unchanged
func Test_BoostSurvivesSave(t *testing.T) {
	sd := game()
	if err := Apply(sd, "boost"); err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	if err := writers.Write_savegame(out, sd); err != nil {
		t.Fatal(err)
	}
	sd2, err := readers.Read_savegame(bytes.NewReader(out.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(sd, sd2); diff != "" {
		t.Errorf("boosted game changed by save->load (-want +got):\n%s", diff)
	}

	out2 := &bytes.Buffer{}
	if err := writers.Write_savegame(out2, sd2); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Bytes(), out2.Bytes()) {
		t.Error("second save differs from the first")
	}
}

func Test_BoostWithoutHuman(t *testing.T) {
	sd := game()
	sd.Players[tables.NATION_FRANCE].Control = tables.CONTROL_WITHDRAWN
	before := game()
	before.Players[tables.NATION_FRANCE].Control = tables.CONTROL_WITHDRAWN

	err := Apply(sd, "boost")
	var le *types.LogicError
	if !errors.As(err, &le) {
		t.Fatalf("expected a logic error, got %v", err)
	}
	if diff := cmp.Diff(before, sd); diff != "" {
		t.Errorf("failed boost changed the game:\n%s", diff)
	}
}

func Test_UnknownMutation(t *testing.T) {
	var le *types.LogicError
	if err := Apply(game(), "colony11"); !errors.As(err, &le) {
		t.Errorf("expected a logic error, got %v", err)
	}
	if !cmp.Equal(List(), []string{"boost"}) {
		t.Errorf("mutations: %v", List())
	}
	if Describe("boost") == "" {
		t.Error("boost has no description")
	}
}

func Test_Settables(t *testing.T) {
	sd := game()
	cases := []struct {
		what    string
		to      string
		matched string
		got     string
	}{
		{"gold", "123456", "123456", "123456"},
		{"tax", "42", "42%", "42%"},
		{"difficulty", "vice", "Viceroy", "Viceroy"},
		{"year", "1600", "1600", "1600 (spring)"},
		{"name", "Cartier", "Cartier", "Cartier"},
	}
	for _, tc := range cases {
		matched, err := Set(sd, tc.what, tc.to)
		if err != nil {
			t.Errorf("set %v %v: %v", tc.what, tc.to, err)
			continue
		}
		if matched != tc.matched {
			t.Errorf("set %v %v: matched %q, want %q", tc.what, tc.to, matched, tc.matched)
		}
		got, err := Get(sd, tc.what)
		if err != nil || got != tc.got {
			t.Errorf("get %v: %q (%v), want %q", tc.what, got, err, tc.got)
		}
	}
	if sd.Nations[tables.NATION_FRANCE].Gold != 123456 || sd.Header.Difficulty != 4 {
		t.Error("settables went to the wrong place")
	}

	for _, bad := range [][2]string{{"gold", "-1"}, {"gold", "4294967296"}, {"tax", "256"}, {"year", "lots"}, {"difficulty", "easy"}, {"ships", "3"}} {
		if _, err := Set(sd, bad[0], bad[1]); err == nil {
			t.Errorf("set %v %v should fail", bad[0], bad[1])
		}
	}
	if _, err := Set(sd, "name", "A name far too long for its slot"); err == nil {
		t.Error("overlong name accepted")
	}
}
