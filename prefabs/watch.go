package prefabs

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind says which reloadable asset a file event touched.
type ChangeKind int

const (
	ChangeNone ChangeKind = iota
	ChangeTuning
	ChangeLevels
	ChangePalette
	ChangeScript
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeTuning:
		return "tuning"
	case ChangeLevels:
		return "levels"
	case ChangePalette:
		return "palette"
	case ChangeScript:
		return "script"
	default:
		return "none"
	}
}

type Change struct {
	Kind ChangeKind
	Path string
}

const debounce = 100 * time.Millisecond

// Watcher reports edits to the on-disk prefab directory so tuning, levels,
// palette and spawn scripts can be reloaded between frames.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Change
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches dir and its scripts/ subdirectory when present.
func NewWatcher(dir string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dirs := []string{dir}
	if info, err := os.Stat(filepath.Join(dir, "scripts")); err == nil && info.IsDir() {
		dirs = append(dirs, filepath.Join(dir, "scripts"))
	}
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Drain returns the changes queued since the last call without blocking.
// Repeated events for the same path are collapsed.
func (w *Watcher) Drain() []Change {
	if w == nil {
		return nil
	}
	var out []Change
	seen := make(map[string]bool)
	for {
		select {
		case c := <-w.Events:
			if seen[c.Path] {
				continue
			}
			seen[c.Path] = true
			out = append(out, c)
		default:
			return out
		}
	}
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			kind := Classify(event.Name)
			if kind == ChangeNone {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- Change{Kind: kind, Path: event.Name}:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// Classify maps a file path to the asset it holds.
func Classify(path string) ChangeKind {
	if isScriptFile(path) {
		return ChangeScript
	}
	if !isSpecFile(path) {
		return ChangeNone
	}
	switch strings.ToLower(filepath.Base(path)) {
	case TuningFile:
		return ChangeTuning
	case LevelsFile:
		return ChangeLevels
	case PaletteFile:
		return ChangePalette
	}
	return ChangeNone
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
