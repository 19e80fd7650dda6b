// Package watcher reloads a score when the score or its configuration file
// changes.
package watcher

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"moria.us/niffty/config"
	"moria.us/niffty/score"
)

const reloadDelay = 100 * time.Millisecond

// A State is the result of loading the watched files. Exactly one of Err and
// Score is set.
type State struct {
	Err    error
	Config *config.Config
	Score  *score.Score
}

type watcher struct {
	file   string
	config string
	log    logrus.FieldLogger
	out    chan<- State
	fw     *fsnotify.Watcher
	delay  debounce
}

// Watch loads the score file, and loads it again whenever the score file or
// the configuration file changes. The configuration path may be empty, in
// which case the default configuration is used. The channel receives the
// first state right away and is closed when ctx is done.
//
// Directories are watched instead of files, since editors often replace a
// file by renaming a new one over it.
func Watch(ctx context.Context, file, cfg string) (<-chan State, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := watcher{
		file: filepath.Clean(file),
		log:  logrus.StandardLogger().WithField("score", file),
		fw:   fw,
	}
	dirs := []string{filepath.Dir(w.file)}
	if cfg != "" {
		w.config = filepath.Clean(cfg)
		if d := filepath.Dir(w.config); d != dirs[0] {
			dirs = append(dirs, d)
		}
	}
	for _, d := range dirs {
		if err := fw.Add(d); err != nil {
			fw.Close()
			return nil, err
		}
	}
	ch := make(chan State, 1)
	w.out = ch
	go w.watch(ctx)
	return ch, nil
}

func (w *watcher) watch(ctx context.Context) {
	defer close(w.out)
	defer w.fw.Close()
	defer w.delay.stop()
	if err := w.watchFunc(ctx); err != nil && !errors.Is(err, context.Canceled) {
		w.send(ctx, State{Err: err})
	}
}

func (w *watcher) send(ctx context.Context, s State) {
	select {
	case w.out <- s:
	case <-ctx.Done():
	}
}

func (w *watcher) watchFunc(ctx context.Context) error {
	w.send(ctx, w.load())
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return errors.New("watcher channel closed")
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if name := filepath.Clean(ev.Name); name == w.file || (w.config != "" && name == w.config) {
				w.log.WithField("file", name).Debug("changed")
				w.delay.trigger(reloadDelay)
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return errors.New("watcher channel closed")
			}
			return err
		case <-w.delay.C:
			if w.delay.fired() {
				w.send(ctx, w.load())
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *watcher) load() State {
	cfg := config.Default()
	if w.config != "" {
		c, err := config.Load(w.config)
		if err != nil {
			w.log.WithError(err).Error("could not load config")
			return State{Err: err}
		}
		cfg = c
	}
	s, err := score.LoadFile(w.file, cfg.ScoreOptions(w.log)...)
	if err != nil {
		w.log.WithError(err).Error("could not load score")
		return State{Err: err, Config: cfg}
	}
	w.log.Info("loaded")
	return State{Config: cfg, Score: s}
}
