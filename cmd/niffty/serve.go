package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"moria.us/niffty/watcher"
)

const (
	htmlType = "text/html; charset=UTF-8"
	textType = "text/plain; charset=UTF-8"
)

type contextKey struct{}

func (contextKey) String() string {
	return "niffty context key"
}

type handler struct {
	title          string
	statusTemplate *cachedTemplate
	indexTemplate  *cachedTemplate
	viewer         viewer
}

func newHandler(title, indexFile string) *handler {
	return &handler{
		title:          title,
		statusTemplate: newTemplate("status.gohtml", ""),
		indexTemplate:  newTemplate("index.gohtml", indexFile),
	}
}

func getHandler(ctx context.Context) *handler {
	val := ctx.Value(contextKey{})
	if val == nil {
		panic("missing context key")
	}
	v, ok := val.(*handler)
	if !ok {
		panic("context key has wrong value")
	}
	return v
}

func logResponse(r *http.Request, status int, msg string) {
	if status >= 400 {
		if msg == "" {
			msg = http.StatusText(status)
		}
		logrus.Errorln(status, r.URL, msg)
	} else if msg == "" {
		logrus.Infoln(status, r.URL)
	} else {
		logrus.Infoln(status, r.URL, msg)
	}
}

func (h *handler) serveStatus(w http.ResponseWriter, r *http.Request, status int, msg string) {
	var b bytes.Buffer
	type tdata struct {
		Status     int
		StatusText string
		Message    string
	}
	d := tdata{
		Status:     status,
		StatusText: http.StatusText(status),
		Message:    msg,
	}
	ctype := htmlType
	if err := h.statusTemplate.execute(&b, &d); err != nil {
		logrus.Errorln("statusTemplate.Execute:", err)
		b.Reset()
		ctype = textType
		fmt.Fprintf(&b, "%d %s\n%s\n", d.Status, d.StatusText, d.Message)
	}
	hdr := w.Header()
	hdr.Set("Content-Type", ctype)
	hdr.Set("Content-Length", strconv.Itoa(b.Len()))
	hdr.Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	w.Write(b.Bytes())
}

func (h *handler) serveError(w http.ResponseWriter, r *http.Request, a ...interface{}) {
	const status = http.StatusInternalServerError
	msg := fmt.Sprint(a...)
	logResponse(r, status, msg)
	h.serveStatus(w, r, status, msg)
}

func (h *handler) serveNotFound(w http.ResponseWriter, r *http.Request) {
	logResponse(r, http.StatusNotFound, "")
	h.serveStatus(w, r, http.StatusNotFound, fmt.Sprintf("Page not found: %q", r.URL))
}

func serveNotFound(w http.ResponseWriter, r *http.Request) {
	getHandler(r.Context()).serveNotFound(w, r)
}

func serveData(w http.ResponseWriter, r *http.Request, ctype string, data []byte) {
	logResponse(r, http.StatusOK, "")
	hdr := w.Header()
	hdr.Set("Content-Type", ctype)
	hdr.Set("Content-Length", strconv.Itoa(len(data)))
	hdr.Set("Cache-Control", "no-cache")
	w.Write(data)
}

// loadedDocument returns the loaded document, or serves an error and returns nil.
func (h *handler) loadedDocument(w http.ResponseWriter, r *http.Request) *document {
	d := h.viewer.getDocument(r.Context())
	if d == nil {
		// ctx canceled.
		return nil
	}
	if d.err != nil {
		h.serveError(w, r, "Could not load score: ", d.err)
		return nil
	}
	return d
}

func serveIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h := getHandler(ctx)
	d := h.viewer.getDocument(ctx)
	if d == nil {
		return
	}
	type idata struct {
		Title   string
		Version int
		Pages   []int
		Error   string
	}
	data := idata{
		Title:   h.title,
		Version: d.version,
		Pages:   make([]int, len(d.pages)),
	}
	for i := range data.Pages {
		data.Pages[i] = i + 1
	}
	if d.err != nil {
		data.Error = d.err.Error()
	}
	var buf bytes.Buffer
	if err := h.indexTemplate.execute(&buf, &data); err != nil {
		h.serveError(w, r, err)
		return
	}
	serveData(w, r, htmlType, buf.Bytes())
}

func servePage(w http.ResponseWriter, r *http.Request) {
	h := getHandler(r.Context())
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		h.serveNotFound(w, r)
		return
	}
	d := h.loadedDocument(w, r)
	if d == nil {
		return
	}
	if n < 1 || n > len(d.pages) {
		h.serveNotFound(w, r)
		return
	}
	serveData(w, r, "image/svg+xml", d.pages[n-1])
}

func serveText(w http.ResponseWriter, r *http.Request) {
	if d := getHandler(r.Context()).loadedDocument(w, r); d != nil {
		serveData(w, r, textType, d.text)
	}
}

func serveJSON(w http.ResponseWriter, r *http.Request) {
	if d := getHandler(r.Context()).loadedDocument(w, r); d != nil {
		serveData(w, r, "application/json", d.json)
	}
}

func serveBinary(w http.ResponseWriter, r *http.Request) {
	if d := getHandler(r.Context()).loadedDocument(w, r); d != nil {
		serveData(w, r, "application/x-protobuf", d.binary)
	}
}

func newMux(h *handler) http.Handler {
	mx := chi.NewMux()
	mx.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), contextKey{}, h)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	mx.Get("/", serveIndex)
	mx.Get("/page-{n:[0-9]+}.svg", servePage)
	mx.Get("/score.txt", serveText)
	mx.Get("/score.json", serveJSON)
	mx.Get("/score.pb", serveBinary)
	mx.Get("/socket", serveSocket)
	mx.NotFound(serveNotFound)
	return mx
}

type serveFlags struct {
	host     string
	port     int
	template string
}

func serve(ctx context.Context, g *globalFlags, f *serveFlags, file string, hostSet, portSet bool) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	host, port := cfg.Serve.Host, cfg.Serve.Port
	if hostSet {
		host = f.host
	}
	if portSet {
		port = f.port
	}
	var addrs []net.IPAddr
	if host == "*" {
		addrs = []net.IPAddr{{IP: net.IPv6zero}}
		host = "localhost"
	} else {
		rslv := net.DefaultResolver
		addrs, err = rslv.LookupIPAddr(ctx, host)
		if err != nil {
			return fmt.Errorf("could not look up host: %v", err)
		}
		if host == "" {
			host = "localhost"
		}
	}

	h := newHandler(filepath.Base(file), f.template)
	ch, err := watcher.Watch(ctx, file, g.config)
	if err != nil {
		return err
	}
	go h.viewer.watch(ch)

	s := http.Server{
		Handler:     newMux(h),
		BaseContext: func(_ net.Listener) context.Context { return ctx },
	}
	errch := make(chan error, len(addrs))
	var root *url.URL
	for _, addr := range addrs {
		ta := net.TCPAddr{
			IP:   addr.IP,
			Zone: addr.Zone,
			Port: port,
		}
		l, err := net.ListenTCP("tcp", &ta)
		if err != nil {
			return err
		}
		if root == nil {
			root = &url.URL{
				Scheme: "http",
				Host:   net.JoinHostPort(host, strconv.Itoa(port)),
				Path:   "/",
			}
			logrus.Infoln("Serving on:", root)
		}
		go func(l *net.TCPListener) {
			errch <- s.Serve(l)
		}(l)
	}
	if root == nil {
		return errors.New("no address to serve on")
	}
	select {
	case err := <-errch:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		logrus.Infoln("Shutting down.")
		return s.Shutdown(context.Background())
	}
}

func newServeCommand(g *globalFlags) *cobra.Command {
	var f serveFlags
	cmd := &cobra.Command{
		Use:   "serve FILE",
		Short: "Serve the score as web pages which reload when the file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			fl := cmd.Flags()
			return serve(ctx, g, &f, args[0], fl.Changed("host"), fl.Changed("port"))
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.host, "host", "localhost", "host to serve from, or * to bind to all local addresses")
	fl.IntVar(&f.port, "port", 9013, "port to serve from")
	fl.StringVar(&f.template, "template", "", "HTML template for the index page, reloaded when it changes")
	return cmd
}
