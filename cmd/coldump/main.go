package main

// colonization save file dumper
// usage: coldump [options] COLONY00.SAV ...
//
// Relative filenames are looked up in the save directory, which is read from the ini file.

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"coldump/batch"
	"coldump/cheats"
	"coldump/checks"
	"coldump/config"
	"coldump/dump"
	"coldump/maprender"
	"coldump/types"
	"coldump/utils"
	"coldump/writers"
)

// index_flag is a section flag that optionally takes a record number: --unit shows all units,
// --unit=3 shows the third.  Numbers on the command line start at 1.
type index_flag struct {
	set   bool
	which int // 0-based, -1 for all
}

func (f *index_flag) IsBoolFlag() bool { return true }

func (f *index_flag) String() string {
	if f == nil || !f.set {
		return ""
	}
	if f.which < 0 {
		return "all"
	}
	return fmt.Sprint(f.which + 1)
}

func (f *index_flag) Set(s string) error {
	switch s {
	case "true":
		f.set, f.which = true, -1
		return nil
	case "false":
		f.set = false
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fmt.Errorf("expected a record number from 1 (got %q)", s)
	}
	f.set, f.which = true, n-1
	return nil
}

// show_flag collects --show=section[:N] requests, with fuzzy section names
type show_flag []request

type request struct {
	section string
	which   int
}

func (f *show_flag) String() string { return fmt.Sprint(len(*f)) }

func (f *show_flag) Set(s string) error {
	name, n, has_n := strings.Cut(s, ":")
	section, err := utils.Fuzzy_choice(dump.Sections(), name, "section")
	if err != nil {
		return err
	}
	r := request{section, -1}
	if has_n {
		var idx index_flag
		if err := idx.Set(n); err != nil {
			return err
		}
		r.which = idx.which
	}
	*f = append(*f, r)
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("coldump: ")

	err := main2()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func main2() error {
	section_flags := map[string]*index_flag{}
	for _, name := range dump.Sections() {
		section_flags[name] = &index_flag{}
		desc := "displays " + name + " section of savegame"
		if dump.Indexed(name) {
			desc += " (=N for a single entry)"
		}
		flag.Var(section_flags[name], name, desc)
	}
	var shows show_flag
	flag.Var(&shows, "show", "displays section[:N] of savegame; names can be abbreviated (repeatable)")

	ini_file := flag.String("ini", config.DEFAULT_INI, "settings file")
	dir_arg := flag.String("dir", "", "save directory (overrides the ini file)")
	colony10 := flag.Bool("colony10", false, "applies boost and writes the result to the output file (COLONY10.SAV by default)")
	check := flag.Bool("check", false, "runs consistency checks")
	png := flag.String("png", "", "renders the map to a PNG file")
	layer := flag.Int("layer", 0, "map layer for --png")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [options] <COLONY0*.SAV> ...\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		return errors.New("no savefiles given")
	}

	cfg, err := config.Load(*ini_file)
	if err != nil {
		return err
	}
	dir := cfg.Get_dir(*dir_arg)

	// Section flags come out in file order, then any --show requests in command line order
	requests := []request{}
	for _, name := range dump.Sections() {
		if f := section_flags[name]; f.set {
			requests = append(requests, request{name, f.which})
		}
	}
	requests = append(requests, shows...)

	files := []string{}
	for _, f := range flag.Args() {
		files = append(files, cfg.Path(dir, f))
	}
	if *colony10 && len(files) > 1 {
		return errors.New("--colony10 only makes sense for one file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failed := 0
	for _, result := range batch.Decode_all(ctx, files, cfg.Workers) {
		if result.Err != nil {
			log.Println(result.Err)
			failed++
			continue
		}
		sd := result.Savegame
		for _, a := range sd.Anomalies {
			log.Println("warning:", a.Error())
		}

		if len(files) > 1 {
			fmt.Println("==", result.Filename, "==")
		}
		for _, r := range requests {
			lines, err := dump.Section(sd, r.section, r.which)
			if err != nil {
				return err
			}
			for _, line := range lines {
				fmt.Println(line)
			}
		}

		if *check {
			findings := checks.Run(sd)
			for _, f := range findings {
				fmt.Println(f)
			}
			fmt.Printf("%v problems found\n", len(findings))
		}

		if *png != "" {
			target := *png
			if len(files) > 1 {
				ext := filepath.Ext(target)
				target = strings.TrimSuffix(target, ext) + "-" + strings.TrimSuffix(filepath.Base(result.Filename), filepath.Ext(result.Filename)) + ext
			}
			err = render(sd, cfg, *layer, target)
			if err != nil {
				return err
			}
			fmt.Println("Map written to", target)
		}

		if *colony10 {
			err = cheats.Apply(sd, "boost")
			if err != nil {
				return err
			}
			target := cfg.Path(dir, cfg.Output)
			err = writers.Write_file(target, sd)
			if err != nil {
				return err
			}
			fmt.Println("Boosted game written to", target)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%v of %v files could not be read", failed, len(files))
	}
	return nil
}

func render(sd *types.Savegame, cfg config.Config, layer int, filename string) error {
	opts := maprender.Default_options()
	opts.Layer = layer
	opts.Scale = cfg.Map_scale
	err := opts.Apply_colours(cfg.Colours)
	if err != nil {
		return err
	}
	opts.Labels = maprender.Colony_labels(sd)

	img, err := maprender.Render(&sd.Map, opts)
	if err != nil {
		return err
	}
	// Where the active unit is
	maprender.Mark(img, opts.Scale, int(sd.Stuff.X), int(sd.Stuff.Y), color.RGBA{0xff, 0, 0, 0xff})
	return maprender.Save_png(filename, img)
}
