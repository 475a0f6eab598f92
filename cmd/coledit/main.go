package main

// savefile reader/editor for Colonization
//
// example usage:
//
// coledit load COLONY01.SAV
// coledit set gold 100000
// coledit set difficulty viceroy
// coledit set name "Peter Stuyvesant"
// coledit apply boost
// coledit save
//
// Edits are kept in a temporary file between commands; nothing touches the savefile until "save".

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"coldump/cheats"
	"coldump/checks"
	"coldump/config"
	"coldump/dump"
	"coldump/readers"
	"coldump/types"
	"coldump/writers"
)

func main() {
	err := main2(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func help_text() []string {
	out := []string{
		"Colonization Save File Editor",
		"",
		"Commands:",
		"help: display this text",
		"list: list the savefiles in the save directory",
		"load (filename): load a file from the save directory",
		"dump : list all available info",
		"get (what): display current value of something",
		"set (what) (to): set something",
		"apply (mutation): apply a named change",
		"check: look for inconsistencies",
		"save [filename]: save (by default, over the loaded file; the old one is kept as .old)",
		"",
		"Things that can be set-ted or get-ted are:",
	}
	for _, s := range cheats.Settables() {
		out = append(out, "   "+s)
	}
	out = append(out, "", "Mutations are:")
	for _, m := range cheats.List() {
		out = append(out, "   "+m+": "+cheats.Describe(m))
	}
	out = append(out,
		"",
		"Notes:",
		"   It is usually not necessary to type the full name of something",
		"e.g. \"vice\" will be recognized as \"Viceroy\".",
	)
	return out
}

func main2(args []string) error {
	fs := flag.NewFlagSet("coledit", flag.ContinueOnError)
	ini_file := fs.String("ini", config.DEFAULT_INI, "settings file")
	dir_arg := fs.String("dir", "", "save directory (overrides the ini file)")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	args = fs.Args()

	arg := "help"
	if len(args) < 1 {
		fmt.Println("No args detected - falling back to \"help\", since you clearly need it...")
	} else {
		arg = args[0]
	}

	switch arg {
	case "help":
		for _, ht := range help_text() {
			fmt.Println(ht)
		}

	case "list":
		cfg, err := config.Load(*ini_file)
		if err != nil {
			return err
		}
		lines, err := list_saves(cfg.Get_dir(*dir_arg), cfg.Pattern)
		if err != nil {
			return err
		}
		for _, line := range lines {
			fmt.Println(line)
		}

	case "load":
		if len(args) < 2 {
			return errors.New("Load what?  Filename expected.")
		}
		cfg, err := config.Load(*ini_file)
		if err != nil {
			return err
		}
		full_filename := cfg.Path(cfg.Get_dir(*dir_arg), args[1])

		savegame, err := readers.Read_file(full_filename)
		if err != nil {
			return err
		}
		for _, a := range savegame.Anomalies {
			fmt.Println("Warning:", a.Error())
		}
		err = stash(full_filename, savegame)
		if err != nil {
			return err
		}
		fmt.Println("Loaded", full_filename)

	case "save":
		filename, savegame, err := retrieve()
		if err != nil {
			return err
		}

		err = sanity_fix(savegame)
		if err != nil {
			return err
		}
		for _, f := range checks.Run(savegame) {
			fmt.Println("Warning:", f)
		}

		target := filename
		if len(args) > 1 {
			cfg, err := config.Load(*ini_file)
			if err != nil {
				return err
			}
			target = cfg.Path(cfg.Get_dir(*dir_arg), args[1])
		}

		// Back up the old file
		// Since this is a "powerful" (i.e. capable of completely trashing savefiles) tool,
		// that's probably a good idea
		backup, err := back_up(target)
		if err != nil {
			return err
		}
		if backup != "" {
			fmt.Println(target, "copied to", backup)
		}

		err = writers.Write_file(target, savegame)
		if err != nil {
			return err
		}
		fmt.Println("New file written to", target)

		err = os.Remove(g_stash_filename)
		if err != nil {
			return err
		}
		fmt.Println("Temporary data cleaned up")

	case "get":
		if len(args) < 2 {
			return errors.New("Get what?  Gettables are:\n" + strings.Join(cheats.Settables(), "\n"))
		}
		_, savegame, err := retrieve()
		if err != nil {
			return err
		}
		str, err := cheats.Get(savegame, args[1])
		if err != nil {
			return err
		}
		fmt.Println(str)

	case "set":
		if len(args) < 2 {
			return errors.New("Set what? Settables are:\n" + strings.Join(cheats.Settables(), "\n"))
		}
		what := args[1]
		if len(args) < 3 {
			return errors.New("Set " + what + " to what?")
		}
		to := args[2]

		filename, savegame, err := retrieve()
		if err != nil {
			return err
		}
		to_matched, err := cheats.Set(savegame, what, to)
		if err != nil {
			return err
		}
		fmt.Println(what, "set to", to_matched)
		return stash(filename, savegame)

	case "apply":
		if len(args) < 2 {
			return errors.New("Apply what? Mutations are:\n" + strings.Join(cheats.List(), "\n"))
		}
		filename, savegame, err := retrieve()
		if err != nil {
			return err
		}
		err = cheats.Apply(savegame, args[1])
		if err != nil {
			return err
		}
		fmt.Println("Applied", args[1])
		return stash(filename, savegame)

	case "check":
		_, savegame, err := retrieve()
		if err != nil {
			return err
		}
		findings := checks.Run(savegame)
		for _, f := range findings {
			fmt.Println(f)
		}
		fmt.Printf("%v problems found\n", len(findings))

	case "dump":
		filename, savegame, err := retrieve()
		if err != nil {
			return err
		}
		fmt.Println(filename)
		for _, what := range cheats.Settables() {
			str, err := cheats.Get(savegame, what)
			if err != nil {
				str = err.Error()
			}
			fmt.Println(what + ": " + str)
		}
		lines, err := dump.Section(savegame, "head", -1)
		if err != nil {
			return err
		}
		for _, line := range lines {
			fmt.Println(line)
		}

	default:
		return errors.New("Unknown command " + arg + ".  Try \"help\".")
	}

	return nil
}

// list_saves describes every savefile in dir matching pattern, from its header alone
func list_saves(dir string, pattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(pattern, strings.ToUpper(e.Name())); !ok {
			continue
		}
		filename := filepath.Join(dir, e.Name())
		if !readers.Is_savefile(filename) {
			out = append(out, fmt.Sprintf("%-12s not a Colonization save", e.Name()))
			continue
		}
		h, err := readers.Read_header_file(filename)
		if err != nil {
			out = append(out, fmt.Sprintf("%-12s %v", e.Name(), err))
			continue
		}
		season := "spring"
		if h.Autumn != 0 {
			season = "autumn"
		}
		out = append(out, fmt.Sprintf("%-12s %v %v, turn %v, %v", e.Name(), season, h.Year, h.Turn, h.Difficulty))
	}
	return out, nil
}

// back_up copies filename to the same name with an .old extension.  A file that doesn't exist yet
// needs no backup.
func back_up(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	backup := filename + ".old"
	if dot := strings.LastIndex(filename, "."); dot > strings.LastIndexAny(filename, `/\`) {
		backup = filename[:dot] + ".old"
	}
	return backup, os.WriteFile(backup, data, 0644)
}

// sanity_fix repairs inconsistencies that would stop the game loading the file.  Only the header
// counters can be fixed blindly: they must match the sections as they are.
func sanity_fix(sd *types.Savegame) error {
	counts := []struct {
		name   string
		header *uint16
		have   int
	}{
		{"colony", &sd.Header.Colony_count, len(sd.Colonies)},
		{"unit", &sd.Header.Unit_count, len(sd.Units)},
		{"tribe", &sd.Header.Tribe_count, len(sd.Tribes)},
		{"trade route", &sd.Header.Trade_route_count, len(sd.Trade_routes)},
	}
	for _, c := range counts {
		if c.have > math.MaxUint16 {
			return &types.LogicError{
				Mutation: "save",
				Reason:   fmt.Sprintf("%v %v records won't fit in the header counter", c.have, c.name),
			}
		}
	}
	for _, c := range counts {
		if int(*c.header) != c.have {
			fmt.Println("Sanity fix:", c.name, "count changed from", *c.header, "to", c.have)
			*c.header = uint16(c.have)
		}
	}
	return nil
}
