package main

import (
	"bytes"
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"moria.us/niffty/export"
	"moria.us/niffty/svg"
	"moria.us/niffty/textdump"
	"moria.us/niffty/watcher"
)

// A document is everything served for one load of the score. Pages and
// dumps are produced when the score is loaded, since a score is not safe for
// concurrent use.
type document struct {
	version int
	err     error
	pages   [][]byte
	text    []byte
	json    []byte
	binary  []byte
}

func newDocument(version int, s watcher.State) *document {
	d := document{version: version, err: s.Err}
	if s.Err != nil {
		logrus.Errorln("Load:", s.Err)
		return &d
	}
	d.pages, d.err = svg.Render(s.Score, s.Config.Render)
	if d.err != nil {
		logrus.Errorln("Render:", d.err)
		return &d
	}
	var b bytes.Buffer
	if d.err = textdump.Write(&b, s.Score, nil); d.err != nil {
		return &d
	}
	d.text = b.Bytes()
	if d.json, d.err = export.JSON(s.Score); d.err != nil {
		return &d
	}
	if d.binary, d.err = export.Binary(nil, s.Score); d.err != nil {
		return &d
	}
	logrus.Infof("Loaded score, %d pages.", len(d.pages))
	return &d
}

// A viewer holds the latest document and notifies listeners when it changes.
type viewer struct {
	lock      sync.RWMutex
	doc       *document
	listeners []chan<- *document
}

func (v *viewer) watch(ch <-chan watcher.State) {
	version := 0
	for s := range ch {
		version++
		v.set(newDocument(version, s))
	}
	logrus.Infoln("Stopped watching score.")
}

func (v *viewer) set(d *document) {
	v.lock.Lock()
	defer v.lock.Unlock()
	v.doc = d
	ls := v.listeners
	var pos int
	for _, l := range ls {
		select {
		case l <- d:
			ls[pos] = l
			pos++
		default:
			close(l)
		}
	}
	v.listeners = ls[:pos]
	for ; pos < len(ls); pos++ {
		ls[pos] = nil
	}
}

// addListener registers a channel which receives each new document. A
// listener that falls behind is closed and removed. It returns the current
// document, which may be nil.
func (v *viewer) addListener(ch chan<- *document) *document {
	if ch == nil {
		panic("nil channel")
	}
	v.lock.Lock()
	d := v.doc
	v.listeners = append(v.listeners, ch)
	v.lock.Unlock()
	return d
}

func (v *viewer) removeListener(ch chan<- *document) {
	v.lock.Lock()
	defer v.lock.Unlock()
	for i, l := range v.listeners {
		if l == ch {
			n := len(v.listeners) - 1
			v.listeners[i] = v.listeners[n]
			v.listeners[n] = nil
			v.listeners = v.listeners[:n]
			close(ch)
			return
		}
	}
}

// getDocument returns the current document, waiting for the first load. It
// returns nil if ctx is done first.
func (v *viewer) getDocument(ctx context.Context) *document {
	v.lock.RLock()
	d := v.doc
	v.lock.RUnlock()
	if d != nil {
		return d
	}
	ch := make(chan *document, 1)
	if d := v.addListener(ch); d != nil {
		v.removeListener(ch)
		return d
	}
	defer v.removeListener(ch)
	select {
	case d, ok := <-ch:
		if !ok {
			return nil
		}
		return d
	case <-ctx.Done():
		return nil
	}
}
