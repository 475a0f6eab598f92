package config

// Settings shared by the coldump tools, from an ini file:
//
//	dir = C:\MPS\COLONIZE
//	output = COLONY10.SAV
//	workers = 4
//	pattern = COLONY*.SAV
//
//	[map]
//	scale = 4
//	tile9_colour = r0g0b160
//	label_colour = r255g255b0

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

const DEFAULT_INI = "coldump.ini"

type Config struct {
	Dir       string // where the saves are
	Output    string // where mutated saves go, relative to Dir
	Workers   int
	Pattern   string // which files in Dir are saves
	Map_scale int    // pixels per tile

	// Colours are the [map] *_colour keys, without the suffix
	Colours map[string]string
}

func Default() Config {
	return Config{
		Dir:       "",
		Output:    "COLONY10.SAV",
		Workers:   4,
		Pattern:   "COLONY*.SAV",
		Map_scale: 4,
		Colours:   map[string]string{},
	}
}

// Load reads an ini file over the defaults.  A missing file just means defaults.
func Load(path string) (Config, error) {
	out := Default()

	cfg, err := ini.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return out, nil
		}
		return out, fmt.Errorf("can't read %v: %w", path, err)
	}

	// Classic read of values, default section can be represented as empty string
	sec := cfg.Section("")
	out.Dir = sec.Key("dir").MustString(out.Dir)
	out.Output = sec.Key("output").MustString(out.Output)
	out.Workers = sec.Key("workers").MustInt(out.Workers)
	out.Pattern = sec.Key("pattern").MustString(out.Pattern)
	out.Map_scale = cfg.Section("map").Key("scale").MustInt(out.Map_scale)
	for _, key := range cfg.Section("map").Keys() {
		if name, ok := strings.CutSuffix(key.Name(), "_colour"); ok {
			out.Colours[name] = key.String()
		}
	}

	if out.Workers < 1 {
		return out, fmt.Errorf("%v: workers must be at least 1 (got %v)", path, out.Workers)
	}
	if out.Map_scale < 1 {
		return out, fmt.Errorf("%v: map scale must be at least 1 (got %v)", path, out.Map_scale)
	}
	if _, err := filepath.Match(out.Pattern, ""); err != nil {
		return out, fmt.Errorf("%v: bad pattern %q: %w", path, out.Pattern, err)
	}
	return out, nil
}

// Get_dir is the save directory: from the command line if given, then the ini file, then the current dir
func (c Config) Get_dir(from_args string) string {
	if from_args != "" {
		return from_args
	}
	if c.Dir != "" {
		return c.Dir
	}
	wd, _ := os.Getwd()
	return wd
}

// Path resolves a save filename against the save directory; absolute names are left alone
func (c Config) Path(dir string, filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(dir, filename)
}

// Save writes the settings out, so users have something to edit
func (c Config) Save(path string) error {
	cfg := ini.Empty()
	sec := cfg.Section("")
	sec.Key("dir").SetValue(c.Dir)
	sec.Key("output").SetValue(c.Output)
	sec.Key("workers").SetValue(fmt.Sprint(c.Workers))
	sec.Key("pattern").SetValue(c.Pattern)
	cfg.Section("map").Key("scale").SetValue(fmt.Sprint(c.Map_scale))
	for name, colour := range c.Colours {
		cfg.Section("map").Key(name + "_colour").SetValue(colour)
	}
	return cfg.SaveTo(path)
}
