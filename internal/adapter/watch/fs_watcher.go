// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

// Package watch re-runs an action when source files under a root change.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 500 * time.Millisecond

// ChangeFunc is called after a burst of relevant file events has settled.
type ChangeFunc func(ctx context.Context) error

type Watcher struct {
	root       string
	extensions map[string]struct{}
	excluded   map[string]struct{}
	debounce   time.Duration
	onChange   ChangeFunc

	mu      sync.Mutex
	timer   *time.Timer
	pending chan struct{}
}

// NewWatcher watches root, a directory or a single file. Only files whose
// extension is in includeExt trigger onChange; an empty list accepts all.
func NewWatcher(root string, includeExt []string, debounce time.Duration, onChange ChangeFunc) *Watcher {
	exts := make(map[string]struct{}, len(includeExt))
	for _, e := range includeExt {
		exts[strings.ToLower(e)] = struct{}{}
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		root:       root,
		extensions: exts,
		excluded: map[string]struct{}{
			".git":         {},
			".codesmell":   {},
			"vendor":       {},
			"node_modules": {},
		},
		debounce: debounce,
		onChange: onChange,
		pending:  make(chan struct{}, 1),
	}
}

// Run blocks until ctx is cancelled or the underlying watcher fails.
// onChange calls never overlap: bursts arriving while one is running are
// coalesced into a single follow-up call.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fsw.Close()

	single := false
	if info, err := os.Stat(w.root); err != nil {
		return fmt.Errorf("stat %s: %w", w.root, err)
	} else if !info.IsDir() {
		single = true
	}

	if single {
		// Editors often replace files on save, so watch the directory.
		if err := fsw.Add(filepath.Dir(w.root)); err != nil {
			return fmt.Errorf("watch %s: %w", w.root, err)
		}
	} else if err := w.addRecursive(fsw, w.root); err != nil {
		return err
	}

	var runner sync.WaitGroup
	defer runner.Wait()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	runner.Add(1)
	go func() {
		defer runner.Done()
		w.runChanges(ctx)
	}()

	defer w.stopTimer()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Has(fsnotify.Create) && !single {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addRecursive(fsw, event.Name); err != nil {
						log.Printf("watch: %v", err)
					}
					continue
				}
			}

			if !w.relevant(event, single) {
				continue
			}
			w.schedule()

		case err, ok := <-fsw.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			log.Printf("watch: %v", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event, single bool) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	if single {
		return filepath.Clean(event.Name) == filepath.Clean(w.root)
	}
	if len(w.extensions) == 0 {
		return true
	}
	_, ok := w.extensions[strings.ToLower(filepath.Ext(event.Name))]
	return ok
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.pending <- struct{}{}:
		default:
		}
	})
}

// runChanges is the only caller of onChange.
func (w *Watcher) runChanges(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.pending:
			if ctx.Err() != nil {
				return
			}
			if err := w.onChange(ctx); err != nil {
				log.Printf("watch: %v", err)
			}
		}
	}
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}

func (w *Watcher) addRecursive(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if _, skip := w.excluded[d.Name()]; skip && path != w.root {
			return filepath.SkipDir
		}
		if err := fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}
