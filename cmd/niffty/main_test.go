package main

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"moria.us/niffty/score/scoretest"
)

func writeSample(t *testing.T) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "sample.nif")
	if err := os.WriteFile(name, scoretest.Sample(), 0o666); err != nil {
		t.Fatal(err)
	}
	return name
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	logrus.SetLevel(logrus.PanicLevel)
	defer logrus.SetLevel(logrus.InfoLevel)
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDump(t *testing.T) {
	file := writeSample(t)
	type testcase struct {
		args []string
		want string
	}
	cases := []testcase{
		{[]string{"dump", file}, "\n    Staff\n"},
		{[]string{"dump", "--color=never", file}, "Notehead, shape=FILLED"},
		{[]string{"dump", "--json", file}, `"Notehead"`},
	}
	for _, c := range cases {
		out, err := run(t, c.args...)
		if err != nil {
			t.Errorf("%q: %v", c.args, err)
			continue
		}
		if !strings.Contains(out, c.want) {
			t.Errorf("%q: output does not contain %q:\n%s", c.args, c.want, out)
		}
		if strings.Contains(out, "\x1b[") {
			t.Errorf("%q: output contains escapes", c.args)
		}
	}
	out, err := run(t, "dump", "--color=always", file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Error("--color=always: no escapes")
	}
}

func TestDumpErrors(t *testing.T) {
	file := writeSample(t)
	cases := [][]string{
		{"dump"},
		{"dump", "--color=sometimes", file},
		{"dump", filepath.Join(t.TempDir(), "missing.nif")},
		{"dump", "--config", filepath.Join(t.TempDir(), "missing.yaml"), file},
	}
	for _, args := range cases {
		if _, err := run(t, args...); err == nil {
			t.Errorf("%q: no error", args)
		}
	}
}

func TestRender(t *testing.T) {
	file := writeSample(t)
	dir := t.TempDir()
	if _, err := run(t, "render", "-o", dir, "--width", "500", file); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "page-1.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="500"`)) {
		t.Errorf("page-1.svg does not have the requested width:\n%s", data)
	}

	zname := filepath.Join(dir, "pages.zip")
	if _, err := run(t, "render", "--zip", zname, "--page", "1", file); err != nil {
		t.Fatal(err)
	}
	zr, err := zip.OpenReader(zname)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()
	if len(zr.File) != 1 || zr.File[0].Name != "page-1.svg" {
		t.Errorf("zip contains %d files", len(zr.File))
	}

	if _, err := run(t, "render", "--page", "2", "-o", dir, file); err == nil {
		t.Error("--page 2: no error")
	}
}
