package main

// Watches the save directory and reports on every save the game writes.
//
// usage: colwatch [--dir DIR] [--boost]
//
// With --boost, every new save is boosted and written to the output file (COLONY10.SAV unless the
// ini file says otherwise), so reloading that slot always gives a boosted game.

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"coldump/config"
	"coldump/watcher"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("colwatch: ")

	err := main2()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func main2() error {
	ini_file := flag.String("ini", config.DEFAULT_INI, "settings file")
	dir_arg := flag.String("dir", "", "save directory (overrides the ini file)")
	boost := flag.Bool("boost", false, "writes a boosted copy of every new save")
	settle := flag.Duration("settle", 2*time.Second, "how long to wait for the game to finish writing")
	flag.Parse()

	cfg, err := config.Load(*ini_file)
	if err != nil {
		return err
	}
	dir := cfg.Get_dir(*dir_arg)

	opts := watcher.Options{Pattern: cfg.Pattern, Settle: *settle}
	if *boost {
		opts.Boost_to = cfg.Output
	}

	reports := make(chan *watcher.Report)
	w := watcher.New_watcher(dir, opts)
	err = w.Start_watching(reports)
	if err != nil {
		return err
	}
	defer w.Stop_watching()

	fmt.Println("Watching...", dir)
	fmt.Println()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)

	for {
		select {
		case r := <-reports:
			print_report(r)
		case <-quit:
			fmt.Println("Stopped")
			return nil
		}
	}
}

func print_report(r *watcher.Report) {
	if r.Savegame == nil {
		log.Println(r.Err)
		return
	}

	sd := r.Savegame
	season := "Spring"
	if sd.Header.Autumn != 0 {
		season = "Autumn"
	}
	player := "nobody"
	if human := sd.Human_player(); human >= 0 {
		player = fmt.Sprintf("%v (%v gold)", sd.Players[human].Get_name(), sd.Nations[human].Gold)
	}
	fmt.Printf("%v: %v %v, turn %v, %v colonies, %v units; playing %v\n",
		r.Filename, season, sd.Header.Year, sd.Header.Turn, len(sd.Colonies), len(sd.Units), player)

	for _, a := range sd.Anomalies {
		fmt.Println("   warning:", a.Error())
	}
	for _, f := range r.Findings {
		fmt.Println("   ", f)
	}
	if r.Boosted != "" {
		fmt.Println("   boosted copy written to", r.Boosted)
	}
	if r.Err != nil {
		log.Println(r.Err)
	}
}
