package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"coldump/cheats"
	"coldump/readers"
	"coldump/tables"
	"coldump/types"
	"coldump/writers"
)

func game() *types.Savegame {
	sd := &types.Savegame{}
	copy(sd.Header.Signature[:], types.MAGIC)
	sd.Header.Year = 1600
	for i := range sd.Players {
		sd.Players[i].Control = tables.CONTROL_AI
	}
	sd.Players[tables.NATION_SPAIN].Control = tables.CONTROL_HUMAN
	sd.Units = []types.Unit{}
	sd.Colonies = []types.Colony{}
	sd.Tribes = []types.Tribe{}
	sd.Trade_routes = []types.Trade_route{}
	return sd
}

func next(t *testing.T, reports <-chan *Report) *Report {
	t.Helper()
	select {
	case r := <-reports:
		return r
	case <-time.After(10 * time.Second):
		t.Fatal("no report")
		return nil
	}
}

func Test_WatchAndBoost(t *testing.T) {
	dir := t.TempDir()
	w := New_watcher(dir, Options{Pattern: "COLONY*.SAV", Settle: 50 * time.Millisecond, Boost_to: "COLONY10.SAV"})
	reports := make(chan *Report)
	if err := w.Start_watching(reports); err != nil {
		t.Fatal(err)
	}
	defer w.Stop_watching()

	// Not a save: should be ignored
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	filename := filepath.Join(dir, "COLONY01.SAV")
	if err := writers.Write_file(filename, game()); err != nil {
		t.Fatal(err)
	}

	r := next(t, reports)
	if r.Err != nil {
		t.Fatal(r.Err)
	}
	if r.Filename != filename {
		t.Errorf("report for %v", r.Filename)
	}
	if r.Savegame.Header.Year != 1600 {
		t.Errorf("year %v", r.Savegame.Header.Year)
	}
	if r.Savegame.Nations[tables.NATION_SPAIN].Gold != 0 {
		t.Errorf("reported game was boosted")
	}
	if r.Boosted != filepath.Join(dir, "COLONY10.SAV") {
		t.Errorf("boosted to %v", r.Boosted)
	}

	boosted, err := readers.Read_file(r.Boosted)
	if err != nil {
		t.Fatal(err)
	}
	if boosted.Nations[tables.NATION_SPAIN].Gold != cheats.BOOST_GOLD {
		t.Errorf("boosted gold %v", boosted.Nations[tables.NATION_SPAIN].Gold)
	}

	// Writing COLONY10.SAV must not trigger another round
	select {
	case r := <-reports:
		t.Errorf("unexpected report for %v", r.Filename)
	case <-time.After(300 * time.Millisecond):
	}
}

func Test_BadSaveIsReported(t *testing.T) {
	dir := t.TempDir()
	w := New_watcher(dir, Options{Pattern: "COLONY*.SAV", Settle: 50 * time.Millisecond})
	reports := make(chan *Report)
	if err := w.Start_watching(reports); err != nil {
		t.Fatal(err)
	}
	defer w.Stop_watching()

	filename := filepath.Join(dir, "COLONY02.SAV")
	if err := os.WriteFile(filename, []byte("COLONIZE"), 0644); err != nil {
		t.Fatal(err)
	}

	r := next(t, reports)
	if r.Err == nil {
		t.Fatal("short save read without error")
	}
	t.Logf("got %v", r.Err)
	if r.Boosted != "" {
		t.Errorf("boosted to %v", r.Boosted)
	}
}

func Test_NoDir(t *testing.T) {
	w := New_watcher(filepath.Join(t.TempDir(), "nope"), Options{Pattern: "*"})
	if err := w.Start_watching(make(chan *Report)); err == nil {
		t.Error("watching a missing directory")
	}
	w.Stop_watching()
}
