package readers

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"coldump/schema"
	"coldump/types"
)

// Header offsets of the record counters
const (
	at_tribe_count       = 42
	at_unit_count        = 44
	at_colony_count      = 46
	at_trade_route_count = 48
)

func put16(b []byte, at int, v int) {
	b[at] = uint8(v)
	b[at+1] = uint8(v >> 8)
}

// synthetic makes a savefile full of noise, with a good signature and the given counters
func synthetic(colonies, units, tribes, routes int, trailer int) ([]byte, *types.Header) {
	h := &types.Header{
		Colony_count:      uint16(colonies),
		Unit_count:        uint16(units),
		Tribe_count:       uint16(tribes),
		Trade_route_count: uint16(routes),
	}
	b := make([]byte, schema.File_size(h)+trailer)
	rng := rand.New(rand.NewPCG(uint64(colonies), uint64(units)))
	for i := range b {
		b[i] = uint8(rng.Uint32())
	}
	copy(b, types.MAGIC)
	put16(b, at_tribe_count, tribes)
	put16(b, at_unit_count, units)
	put16(b, at_colony_count, colonies)
	put16(b, at_trade_route_count, routes)
	return b, h
}

func Test_CountersDriveLengths(t *testing.T) {
	for _, k := range []int{0, 1, 300} {
		file, _ := synthetic(k, k+1, k+2, k%5, 0)
		sd, err := Read_savegame(bytes.NewReader(file))
		if err != nil {
			t.Fatalf("k=%v: %v", k, err)
		}
		if len(sd.Colonies) != k || len(sd.Units) != k+1 || len(sd.Tribes) != k+2 || len(sd.Trade_routes) != k%5 {
			t.Errorf("k=%v: got %v colonies, %v units, %v tribes, %v routes",
				k, len(sd.Colonies), len(sd.Units), len(sd.Tribes), len(sd.Trade_routes))
		}
		if len(sd.Trailer) != 0 {
			t.Errorf("k=%v: unexpected trailer of %v bytes", k, len(sd.Trailer))
		}
	}
}

func Test_Trailer(t *testing.T) {
	file, _ := synthetic(2, 3, 1, 1, 37)
	sd, err := Read_savegame(bytes.NewReader(file))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(sd.Trailer, file[len(file)-37:]) {
		t.Error("trailer not kept verbatim")
	}
}

func Test_Truncated(t *testing.T) {
	file, h := synthetic(3, 2, 1, 0, 0)
	colony1, _ := schema.Offset(h, "colony", 1)

	cases := []struct {
		cut     int
		section string
		index   int
	}{
		{0, "header", -1},
		{100, "header", -1},
		{schema.HEADER_SIZE + schema.PLAYER_SIZE + 5, "player", 1},
		{colony1 + 10, "colony", 1},
		// no trade routes, so the last byte belongs to the tail
		{len(file) - 1, "tail", -1},
	}
	for _, tc := range cases {
		sd, err := Read_savegame(bytes.NewReader(file[:tc.cut]))
		if sd != nil {
			t.Errorf("cut at %v: got a partial savegame", tc.cut)
		}
		if !errors.Is(err, types.ErrTruncated) {
			t.Errorf("cut at %v: expected truncation, got %v", tc.cut, err)
			continue
		}
		var fe *types.FormatError
		errors.As(err, &fe)
		if fe.Section != tc.section || fe.Index != tc.index {
			t.Errorf("cut at %v: error in %v[%v], want %v[%v]", tc.cut, fe.Section, fe.Index, tc.section, tc.index)
		}
	}
}

type broken_reader struct{}

func (broken_reader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func Test_ReadFailure(t *testing.T) {
	_, err := Read_savegame(broken_reader{})
	var ie *types.IoError
	if !errors.As(err, &ie) {
		t.Errorf("expected an IoError, got %v", err)
	}
	if errors.Is(err, types.ErrTruncated) {
		t.Error("a failing reader is not a short file")
	}
}

func Test_BadSignature(t *testing.T) {
	file, _ := synthetic(1, 1, 1, 1, 0)
	copy(file, "COLONIZX")
	sd, err := Read_savegame(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("a bad signature should not stop decoding: %v", err)
	}
	if sd.Signature_valid() {
		t.Error("signature reported valid")
	}
	if len(sd.Anomalies) == 0 || !errors.Is(&sd.Anomalies[0], types.ErrBadSignature) {
		t.Errorf("first anomaly should be the signature, got %v", sd.Anomalies)
	}

	copy(file, types.MAGIC)
	sd, err = Read_savegame(bytes.NewReader(file))
	if err != nil {
		t.Fatal(err)
	}
	for _, a := range sd.Anomalies {
		if a.Kind == types.FK_BAD_SIGNATURE {
			t.Error("good signature reported bad")
		}
	}
}

func Test_MapCells(t *testing.T) {
	file, h := synthetic(0, 0, 0, 0, 0)
	at, _ := schema.Offset(h, "map", 0)
	file[at] = 0x12   // tile 2, water
	file[at+1] = 0x0a // tile 2, forest
	sd, err := Read_savegame(bytes.NewReader(file))
	if err != nil {
		t.Fatal(err)
	}
	c := sd.Map.At(0, 0, 0)
	if c.Tile != 2 || c.Water != 1 || c.Forest != 0 || c.Display_tile() != 11 {
		t.Errorf("cell 0: %+v, display %v", *c, c.Display_tile())
	}
	c = sd.Map.At(0, 1, 0)
	if c.Tile != 2 || c.Forest != 1 || c.Display_tile() != 2 {
		t.Errorf("cell 1: %+v, display %v", *c, c.Display_tile())
	}
}

func Test_OutOfRangeIsAnAnomaly(t *testing.T) {
	file, h := synthetic(0, 2, 0, 0, 0)
	unit1, _ := schema.Offset(h, "unit", 1)
	file[unit1+3] = 0x0e // owner 14
	sd, err := Read_savegame(bytes.NewReader(file))
	if err != nil {
		t.Fatal(err)
	}
	if sd.Units[1].Owner != 14 {
		t.Errorf("owner %v, want 14 kept as is", sd.Units[1].Owner)
	}
	found := false
	for _, a := range sd.Anomalies {
		if a.Section == "unit" && a.Index == 1 && a.Field == "owner.owner" {
			found = errors.Is(&a, types.ErrOutOfRange) && a.Value == 14 && a.Limit == 11
		}
	}
	if !found {
		t.Errorf("no out-of-range anomaly for unit 1 owner in %v", sd.Anomalies)
	}
}

func Test_HeaderOnly(t *testing.T) {
	file, _ := synthetic(7, 0, 0, 0, 0)
	h, err := Read_header(bytes.NewReader(file))
	if err != nil || h.Colony_count != 7 {
		t.Errorf("header: %+v, %v", h, err)
	}
	_, err = Read_header(bytes.NewReader(file[:20]))
	if !errors.Is(err, types.ErrTruncated) {
		t.Errorf("short header: %v", err)
	}
}

func Test_Files(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "COLONY01.SAV")
	file, _ := synthetic(2, 1, 0, 0, 0)
	if err := os.WriteFile(good, file, 0644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "COLONY02.SAV")
	if err := os.WriteFile(bad, []byte("XOLONIZE and then some"), 0644); err != nil {
		t.Fatal(err)
	}

	if !Is_savefile(good) || Is_savefile(bad) || Is_savefile(filepath.Join(dir, "nope")) {
		t.Error("Is_savefile got it wrong")
	}

	h, err := Read_header_file(good)
	if err != nil || h.Colony_count != 2 || h.Unit_count != 1 {
		t.Errorf("header: %+v, %v", h, err)
	}
	_, err = Read_header_file(bad)
	var fe *types.FormatError
	if !errors.As(err, &fe) || fe.File != bad {
		t.Errorf("expected a truncation in %v, got %v", bad, err)
	}
}
