package vault

import (
	"context"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changed markdown notes. Rapid successive writes to the
// same note (editor save patterns) are debounced.
type Watcher struct {
	vault    *Vault
	fsw      *fsnotify.Watcher
	changes  chan string
	debounce time.Duration
	lastSeen map[string]time.Time
}

// NewWatcher creates a watcher over every directory of the vault.
func NewWatcher(v *Vault) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		vault:    v,
		fsw:      fsw,
		changes:  make(chan string, 64),
		debounce: 500 * time.Millisecond,
		lastSeen: make(map[string]time.Time),
	}

	err = filepath.WalkDir(v.Root(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != v.Root() && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
	if err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// Changes returns the channel of vault-relative changed note paths.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Run consumes filesystem events until the context is cancelled. It is
// blocking; callers run it in a goroutine.
func (w *Watcher) Run(ctx context.Context) {
	defer w.fsw.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("vault watcher: %v", err)
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	// Newly created subdirectories need to be watched too.
	if ev.Op.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			if !strings.HasPrefix(filepath.Base(ev.Name), ".") {
				if err := w.fsw.Add(ev.Name); err != nil {
					log.Printf("vault watcher: add %s: %v", ev.Name, err)
				}
			}
			return
		}
	}

	if filepath.Ext(ev.Name) != ".md" {
		return
	}
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Remove) && !ev.Op.Has(fsnotify.Rename) {
		return
	}

	now := time.Now()
	if last, ok := w.lastSeen[ev.Name]; ok && now.Sub(last) < w.debounce {
		return
	}
	w.lastSeen[ev.Name] = now

	rel, err := filepath.Rel(w.vault.Root(), ev.Name)
	if err != nil {
		return
	}
	select {
	case w.changes <- filepath.ToSlash(rel):
	default:
		log.Printf("vault watcher: change buffer full, dropping %s", rel)
	}
}
