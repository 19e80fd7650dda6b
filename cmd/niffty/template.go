package main

import (
	"embed"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var funcs = template.FuncMap{
	"lower": func(x string) string { return strings.ToLower(x) },
}

// A cachedTemplate is a template read from disk and parsed again when the
// file's modification time changes. Without a file it uses the built-in
// template with the same base name.
type cachedTemplate struct {
	name     string
	filename string

	lock     sync.Mutex
	template *template.Template
	modTime  time.Time
	err      error
}

func newTemplate(name, filename string) *cachedTemplate {
	return &cachedTemplate{name: name, filename: filename}
}

func (c *cachedTemplate) get() (*template.Template, error) {
	if c.filename == "" {
		c.lock.Lock()
		defer c.lock.Unlock()
		if c.template == nil && c.err == nil {
			c.template, c.err = template.New(c.name).Funcs(funcs).ParseFS(templateFS, "templates/"+c.name)
		}
		return c.template, c.err
	}

	st, err := os.Stat(c.filename)
	if err != nil {
		return nil, err
	}
	mtime := st.ModTime()

	c.lock.Lock()
	defer c.lock.Unlock()

	if mtime.Equal(c.modTime) {
		return c.template, c.err
	}
	t, err := readTemplate(c.filename)
	c.template = t
	c.modTime = mtime
	c.err = err
	return t, err
}

func (c *cachedTemplate) execute(wr io.Writer, data interface{}) error {
	t, err := c.get()
	if err != nil {
		return err
	}
	return t.Execute(wr, data)
}

func readTemplate(filename string) (*template.Template, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	t := template.New(filepath.Base(filename))
	t.Funcs(funcs)
	if _, err := t.Parse(string(data)); err != nil {
		return nil, err
	}
	return t, nil
}
