package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/livefir/htmljsx"
	"github.com/livefir/htmljsx/cmd/htmljsx/internal/config"
)

// Debounce is how long a file must be quiet before it is converted
const Debounce = 100 * time.Millisecond

// Watch converts every .html file under a directory and keeps the JSX
// output up to date as the files change.
func Watch(args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts, rest, err := converterFlags(cfg, args)
	if err != nil {
		return err
	}
	if len(rest) > 1 {
		return fmt.Errorf("too many arguments: htmljsx watch [--minify] [--max-depth <n>] [dir]")
	}

	dir := "."
	if len(rest) == 1 {
		dir = rest[0]
	}

	w, err := NewWatcher(dir, htmljsx.New(opts...), cfg.OutputExt)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	converted, failed := w.GenerateAll()
	log.Printf("Converted %d file(s) in %s (%d failed), watching for changes", converted, dir, failed)

	return w.Run(ctx)
}

// Watcher regenerates JSX files next to the HTML files they come from
type Watcher struct {
	fs        *fsnotify.Watcher
	root      string
	converter *htmljsx.Converter
	outputExt string

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// NewWatcher watches root and its non-hidden subdirectories
func NewWatcher(root string, converter *htmljsx.Converter, outputExt string) (*Watcher, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to watch %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("failed to watch %s: not a directory", root)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		fs:        fsWatcher,
		root:      root,
		converter: converter,
		outputExt: outputExt,
		pending:   make(map[string]*time.Timer),
	}

	if err := w.watchDirRecursive(root); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", root, err)
	}

	return w, nil
}

// watchDirRecursive adds a directory and its subdirectories to the watch list
func (w *Watcher) watchDirRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		return w.fs.Add(path)
	})
}

// OutputPath is where the JSX for an HTML file is written
func (w *Watcher) OutputPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + w.outputExt
}

// Generate converts one HTML file and writes its JSX file
func (w *Watcher) Generate(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	res, err := w.converter.Render(string(src))
	if err != nil {
		return "", fmt.Errorf("failed to convert %s: %w", path, err)
	}
	warn(log.Writer(), path, string(src), res)

	out := w.OutputPath(path)
	if err := os.WriteFile(out, []byte(res.JSX+"\n"), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", out, err)
	}

	return out, nil
}

// GenerateAll converts every HTML file under the root once
func (w *Watcher) GenerateAll() (converted, failed int) {
	filepath.WalkDir(w.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != w.root {
				return filepath.SkipDir
			}
			return nil
		}
		if !isHTML(path) {
			return nil
		}
		if _, err := w.Generate(path); err != nil {
			log.Printf("Error: %v", err)
			failed++
			return nil
		}
		converted++
		return nil
	})
	return converted, failed
}

// Run processes file events until ctx is done
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.watchDirRecursive(event.Name); err != nil {
				log.Printf("Failed to watch %s: %v", event.Name, err)
			}
			return
		}
	}

	if !isHTML(event.Name) {
		return
	}

	// Editors often create then write; convert once the file settles.
	w.mu.Lock()
	defer w.mu.Unlock()
	if timer, ok := w.pending[event.Name]; ok {
		timer.Reset(Debounce)
		return
	}
	w.pending[event.Name] = time.AfterFunc(Debounce, func() {
		w.mu.Lock()
		delete(w.pending, event.Name)
		w.mu.Unlock()
		w.regenerate(event.Name)
	})
}

func (w *Watcher) regenerate(path string) {
	out, err := w.Generate(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return
		}
		log.Printf("Error: %v", err)
		return
	}
	log.Printf("Converted %s -> %s", path, out)
}

// Close stops the watcher and drops pending conversions
func (w *Watcher) Close() error {
	w.mu.Lock()
	for name, timer := range w.pending {
		timer.Stop()
		delete(w.pending, name)
	}
	w.mu.Unlock()
	return w.fs.Close()
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}
