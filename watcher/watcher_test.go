package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"moria.us/niffty/score"
	"moria.us/niffty/score/scoretest"
)

func next(t *testing.T, ch <-chan State) State {
	t.Helper()
	select {
	case s, ok := <-ch:
		if !ok {
			t.Fatal("channel closed")
		}
		return s
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for state")
	}
	panic("unreachable")
}

func write(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o666); err != nil {
		t.Fatal(err)
	}
}

func TestWatch(t *testing.T) {
	logrus.SetLevel(logrus.PanicLevel)
	defer logrus.SetLevel(logrus.InfoLevel)
	dir := t.TempDir()
	file := filepath.Join(dir, "score.nif")
	cfg := filepath.Join(dir, "niffty.yaml")
	write(t, file, scoretest.Empty())
	write(t, cfg, []byte("decode:\n  merge: keep-first\n"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := Watch(ctx, file, cfg)
	if err != nil {
		t.Fatal(err)
	}

	s := next(t, ch)
	if s.Err != nil {
		t.Fatal(s.Err)
	}
	if n := s.Score.Data().Page(0).SystemCount(); n != 0 {
		t.Errorf("first load has %d systems, want 0", n)
	}

	write(t, file, scoretest.Sample())
	s = next(t, ch)
	if s.Err != nil {
		t.Fatal(s.Err)
	}
	if n := s.Score.Data().Page(0).SystemCount(); n != 1 {
		t.Errorf("reload has %d systems, want 1", n)
	}

	write(t, cfg, []byte("decode:\n  merge: overlay\n"))
	s = next(t, ch)
	if s.Err != nil {
		t.Fatal(s.Err)
	}
	if p := s.Config.MergePolicy(); p != score.MergeOverlay {
		t.Errorf("merge policy = %v after config change", p)
	}

	write(t, file, []byte("RIFX"))
	if s = next(t, ch); s.Err == nil {
		t.Error("truncated score loaded without error")
	}

	// Changes to other files are ignored.
	write(t, filepath.Join(dir, "other.txt"), []byte("x"))
	select {
	case s := <-ch:
		t.Errorf("unexpected state %+v", s)
	case <-time.After(3 * reloadDelay):
	}

	cancel()
	select {
	case _, ok := <-ch:
		if ok {
			t.Error("state after cancel")
		}
	case <-time.After(5 * time.Second):
		t.Error("channel not closed after cancel")
	}
}

func TestDebounce(t *testing.T) {
	var d debounce
	d.trigger(20 * time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	d.trigger(50 * time.Millisecond)
	start := time.Now()
	fires := 0
	for fires == 0 {
		<-d.C
		if d.fired() {
			fires++
		}
	}
	if el := time.Since(start); el < 40*time.Millisecond {
		t.Errorf("fired after %v, want at least 40ms", el)
	}
	d.stop()
}
