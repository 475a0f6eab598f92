package watcher

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"coldump/checks"
	"coldump/cheats"
	"coldump/readers"
	"coldump/types"
	"coldump/writers"
)

// Report is what happened to one save.  Err is set if the save could not be read (or boosted).
type Report struct {
	Filename string
	Savegame *types.Savegame
	Findings []checks.Finding
	Boosted  string // where the boosted copy went, if anywhere
	Err      error
}

type Options struct {
	Pattern  string        // which files are saves, e.g. COLONY*.SAV
	Settle   time.Duration // how long to let the game finish writing before reading
	Boost_to string        // if set, every new save is boosted and written here (relative to the watched dir)
}

type Watcher interface {
	Start_watching(reports chan<- *Report) error
	Stop_watching()
}

func New_watcher(dir string, opts Options) Watcher {
	return &dir_watcher{dir: dir, opts: opts, pending: map[string]bool{}, done: make(chan struct{})}
}

type dir_watcher struct {
	dir     string
	opts    Options
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	pending map[string]bool // files waiting to settle
	done    chan struct{}
	stop    sync.Once
}

func (dw *dir_watcher) is_save(filename string) bool {
	base := strings.ToUpper(filepath.Base(filename))
	if dw.opts.Boost_to != "" && base == strings.ToUpper(filepath.Base(dw.opts.Boost_to)) {
		// Don't boost our own output
		return false
	}
	ok, _ := filepath.Match(strings.ToUpper(dw.opts.Pattern), base)
	return ok
}

func (dw *dir_watcher) Start_watching(reports chan<- *Report) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dw.watcher = watcher

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					if dw.is_save(event.Name) {
						dw.schedule(event.Name, reports)
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				dw.send(reports, &Report{Err: err})
			}
		}
	}()

	err = dw.watcher.Add(dw.dir)
	if err != nil {
		dw.watcher.Close()
	}

	return err
}

func (dw *dir_watcher) Stop_watching() {
	dw.stop.Do(func() {
		close(dw.done)
		if dw.watcher != nil {
			dw.watcher.Close()
		}
	})
}

func (dw *dir_watcher) send(reports chan<- *Report, r *Report) {
	select {
	case reports <- r:
	case <-dw.done:
	}
}

// schedule handles a file once it has settled.  The game writes a save in several goes, so
// events for a file that is already waiting are dropped.
func (dw *dir_watcher) schedule(filename string, reports chan<- *Report) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.pending[filename] {
		return
	}
	dw.pending[filename] = true

	go func() {
		select {
		case <-time.After(dw.opts.Settle):
		case <-dw.done:
			return
		}
		dw.mu.Lock()
		delete(dw.pending, filename)
		dw.mu.Unlock()
		dw.send(reports, dw.handle_file(filename))
	}()
}

func (dw *dir_watcher) handle_file(filename string) *Report {
	out := &Report{Filename: filename}

	sd, err := readers.Read_file(filename)
	if err != nil {
		out.Err = err
		return out
	}
	out.Savegame = sd
	out.Findings = checks.Run(sd)

	if dw.opts.Boost_to == "" {
		return out
	}

	// Boost a copy, so the report still shows the game as saved
	boosted, err := readers.Read_file(filename)
	if err == nil {
		err = cheats.Apply(boosted, "boost")
	}
	if err == nil {
		target := dw.opts.Boost_to
		if !filepath.IsAbs(target) {
			target = filepath.Join(dw.dir, target)
		}
		err = writers.Write_file(target, boosted)
		out.Boosted = target
	}
	if err != nil {
		out.Boosted = ""
		out.Err = err
	}
	return out
}
