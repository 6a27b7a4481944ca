// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package watcher notifies listeners when the extension configuration file
// appears, changes or disappears in any of the searched directories.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/logger"
)

// relevantOps are the operations that can change which file wins the search
// or what it contains.
const relevantOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

var ErrNoDirectoryWatched = errors.New("no search directory could be watched")

type ChangeListener interface {
	OnConfigChanged(path string)
}

// Watcher watches directories rather than files so a configuration file
// created after startup is noticed too. A search directory that does not
// exist yet is covered by watching its nearest existing ancestor until it
// appears.
type Watcher struct {
	fsw      *fsnotify.Watcher
	fileName string

	// searchDirs holds every search directory, cleaned. pending holds the
	// ones not watched directly yet. Both are only touched by New and Run.
	searchDirs map[string]struct{}
	pending    map[string]struct{}

	mut       sync.Mutex
	listeners []ChangeListener

	logger *logger.Logger
}

// New watches every directory of dirs for changes of fileName. For a missing
// directory the nearest existing ancestor is watched instead.
// ErrNoDirectoryWatched is returned when nothing could be watched.
func New(dirs []string, fileName string, logger *logger.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate file watcher: %w", err)
	}

	w := &Watcher{
		fsw:        fsw,
		fileName:   fileName,
		searchDirs: make(map[string]struct{}, len(dirs)),
		pending:    make(map[string]struct{}, len(dirs)),
		logger:     logger,
	}
	for _, dir := range dirs {
		dir = filepath.Clean(dir)
		w.searchDirs[dir] = struct{}{}
		w.pending[dir] = struct{}{}
	}

	if _, err = w.settle(); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	if len(fsw.WatchList()) == 0 {
		_ = fsw.Close()
		return nil, ErrNoDirectoryWatched
	}

	return w, nil
}

// Add registers cl to be notified about changes.
func (w *Watcher) Add(cl ChangeListener) {
	w.mut.Lock()
	defer w.mut.Unlock()

	w.listeners = append(w.listeners, cl)
}

// WatchList returns the watched directories.
func (w *Watcher) WatchList() []string {
	list := w.fsw.WatchList()
	slices.Sort(list)
	return list
}

// Run dispatches file events until ctx is cancelled or the underlying
// watcher is closed. It always closes the underlying watcher on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	w.logger.Info().Strs("dirs", w.WatchList()).Str("file", w.fileName).Msg("watching configuration directories")

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Msg("config watcher stopped")
			return nil
		case evt, ok := <-w.fsw.Events:
			if !ok {
				w.logger.Debug().Msg("config watcher closed")
				return nil
			}

			w.handle(evt)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				w.logger.Debug().Msg("config watcher error channel closed")
				return nil
			}

			w.logger.Warn().Err(err).Msg("config watcher error received")
		}
	}
}

func (w *Watcher) handle(evt fsnotify.Event) {
	name := filepath.Clean(evt.Name)

	if _, ok := w.searchDirs[name]; ok && evt.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
		w.logger.Info().Str("dir", name).Msg("search directory removed")
		w.pending[name] = struct{}{}
	}

	if evt.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 && len(w.pending) > 0 {
		appeared, err := w.settle()
		if err != nil {
			w.logger.Warn().Err(err).Msg("failed to watch search directory")
		}
		for _, path := range appeared {
			w.fireOnChange(path, fsnotify.Create)
		}
	}

	if evt.Op&relevantOps == 0 || filepath.Base(name) != w.fileName {
		return
	}
	if _, ok := w.searchDirs[filepath.Dir(name)]; !ok {
		return
	}

	w.fireOnChange(name, evt.Op)
}

// settle watches every pending search directory that exists now and, for the
// rest, their nearest existing ancestor. It returns the configuration files
// already present in directories that just became watched, since their
// creation events were missed.
func (w *Watcher) settle() ([]string, error) {
	var (
		appeared []string
		errs     []error
	)

	for dir := range w.pending {
		if isDir(dir) {
			if err := w.fsw.Add(dir); err != nil {
				errs = append(errs, fmt.Errorf("failed to watch directory %s: %w", dir, err))
				continue
			}
			delete(w.pending, dir)

			if path := filepath.Join(dir, w.fileName); fileExists(path) {
				appeared = append(appeared, path)
			}
			continue
		}

		ancestor, ok := nearestExistingAncestor(dir)
		if !ok {
			continue
		}
		if err := w.fsw.Add(ancestor); err != nil {
			errs = append(errs, fmt.Errorf("failed to watch directory %s: %w", ancestor, err))
			continue
		}
		w.logger.Debug().Str("dir", dir).Str("ancestor", ancestor).Msg("search directory does not exist, watching ancestor")
	}

	return appeared, errors.Join(errs...)
}

func (w *Watcher) fireOnChange(path string, op fsnotify.Op) {
	w.mut.Lock()
	listeners := slices.Clone(w.listeners)
	w.mut.Unlock()

	w.logger.Info().Str("path", path).Str("op", op.String()).Msg("configuration file changed")

	for _, listener := range listeners {
		listener.OnConfigChanged(path)
	}
}

func nearestExistingAncestor(dir string) (string, bool) {
	for parent := filepath.Dir(dir); ; parent = filepath.Dir(parent) {
		if isDir(parent) {
			return parent, true
		}
		if parent == filepath.Dir(parent) {
			return "", false
		}
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
