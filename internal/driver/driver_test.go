package driver_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/tanq16/pagegrab/internal/driver"
	"github.com/tanq16/pagegrab/internal/output"
	"github.com/tanq16/pagegrab/internal/selector"
	"github.com/tanq16/pagegrab/internal/utils"
)

type harness struct {
	deps   driver.Deps
	dir    string
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newHarness(t *testing.T, provider selector.Provider) *harness {
	t.Helper()
	h := &harness{
		dir:    filepath.Join(t.TempDir(), "downloaded_files"),
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	cfg := utils.DefaultConfig()
	cfg.OutputDir = h.dir
	cfg.ScanTimeout = 2 * time.Second
	cfg.DownloadTimeout = 2 * time.Second
	h.deps = driver.Deps{
		Config:   cfg,
		Provider: provider,
		Printer:  output.NewPrinter(h.stdout, h.stderr),
	}
	return h
}

func (h *harness) files(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(h.dir)
	if os.IsNotExist(err) {
		return nil
	}
	gt.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// site serves an index page linking to two local PDFs, one foreign PDF, a
// zip, and two files that share a basename.
func site(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, `<html><body>
			<a href="%[1]s/a.pdf">a</a>
			<a href="%[1]s/b.pdf">b</a>
			<a href="http://other.com/c.pdf">c</a>
			<a href="/pack.zip">zip</a>
			<a href="/x/dup.txt">dup1</a>
			<a href="/y/dup.txt">dup2</a>
		</body></html>`, srv.URL)
	})
	mux.HandleFunc("/empty", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<a href="/about">about</a>`)
	})
	for _, p := range []string{"/a.pdf", "/b.pdf", "/pack.zip", "/x/dup.txt", "/y/dup.txt"} {
		body := "content of " + p
		mux.HandleFunc(p, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, body)
		})
	}
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRun(t *testing.T) {
	srv := site(t)

	t.Run("downloads selected group only", func(t *testing.T) {
		h := newHarness(t, selector.Fixed{PageURL: srv.URL + "/", Extensions: []string{".pdf"}})
		code := driver.Run(context.Background(), h.deps)
		gt.Equal(t, code, driver.ExitOK)
		gt.Equal(t, h.files(t), []string{"a.pdf", "b.pdf"})
		gt.String(t, h.stdout.String()).Contains("Process completed.")
	})

	t.Run("shared basename leaves one file", func(t *testing.T) {
		h := newHarness(t, selector.Fixed{PageURL: srv.URL + "/", Extensions: []string{".txt"}})
		code := driver.Run(context.Background(), h.deps)
		gt.Equal(t, code, driver.ExitOK)
		gt.Equal(t, h.files(t), []string{"dup.txt"})
		gt.Equal(t, h.stderr.Len(), 0)
	})

	t.Run("all groups", func(t *testing.T) {
		h := newHarness(t, selector.Fixed{PageURL: "  " + srv.URL + "/  ", Extensions: []string{"all"}})
		code := driver.Run(context.Background(), h.deps)
		gt.Equal(t, code, driver.ExitOK)
		gt.Equal(t, h.files(t), []string{"a.pdf", "b.pdf", "dup.txt", "pack.zip"})
	})

	t.Run("empty url exits 1", func(t *testing.T) {
		h := newHarness(t, selector.Fixed{PageURL: "   "})
		code := driver.Run(context.Background(), h.deps)
		gt.Equal(t, code, driver.ExitError)
		gt.String(t, h.stderr.String()).Contains("URL cannot be empty")
	})

	t.Run("404 page exits 0 with no files found", func(t *testing.T) {
		h := newHarness(t, selector.Fixed{PageURL: srv.URL + "/nowhere", Extensions: []string{"all"}})
		code := driver.Run(context.Background(), h.deps)
		gt.Equal(t, code, driver.ExitOK)
		gt.String(t, h.stdout.String()).Contains("No file links found")
		gt.String(t, h.stderr.String()).Contains("404")
		gt.Equal(t, len(h.files(t)), 0)
	})

	t.Run("page without qualifying links exits 0", func(t *testing.T) {
		h := newHarness(t, selector.Fixed{PageURL: srv.URL + "/empty", Extensions: []string{"all"}})
		code := driver.Run(context.Background(), h.deps)
		gt.Equal(t, code, driver.ExitOK)
		gt.String(t, h.stdout.String()).Contains("No file links found")
	})

	t.Run("no selection exits 0", func(t *testing.T) {
		h := newHarness(t, selector.Fixed{PageURL: srv.URL + "/", Extensions: []string{".exe"}})
		code := driver.Run(context.Background(), h.deps)
		gt.Equal(t, code, driver.ExitOK)
		gt.String(t, h.stdout.String()).Contains("You did not select anything")
		gt.Equal(t, len(h.files(t)), 0)
	})

	t.Run("cancelled context exits 0", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		h := newHarness(t, selector.Fixed{PageURL: srv.URL + "/", Extensions: []string{"all"}})
		code := driver.Run(ctx, h.deps)
		gt.Equal(t, code, driver.ExitOK)
		gt.String(t, h.stdout.String()).Contains("Operation interrupted by the user.")
	})

	t.Run("unwritable output folder exits 1", func(t *testing.T) {
		h := newHarness(t, selector.Fixed{PageURL: srv.URL + "/", Extensions: []string{".pdf"}})
		blocker := filepath.Join(t.TempDir(), "blocker")
		gt.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
		h.deps.Config.OutputDir = filepath.Join(blocker, "out")
		code := driver.Run(context.Background(), h.deps)
		gt.Equal(t, code, driver.ExitError)
		gt.String(t, h.stderr.String()).Contains("A critical error occurred")
	})
}

type stubProvider struct {
	urlErr    error
	selectErr error
	pageURL   string
	panicMsg  string
}

func (s stubProvider) URL(ctx context.Context) (string, error) {
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	return s.pageURL, s.urlErr
}

func (s stubProvider) Select(ctx context.Context, choices []selector.Choice) ([]string, error) {
	return nil, s.selectErr
}

func TestRunProviderErrors(t *testing.T) {
	srv := site(t)

	t.Run("cancel at url prompt", func(t *testing.T) {
		h := newHarness(t, stubProvider{urlErr: selector.ErrCancelled})
		gt.Equal(t, driver.Run(context.Background(), h.deps), driver.ExitOK)
	})

	t.Run("cancel at selection", func(t *testing.T) {
		h := newHarness(t, stubProvider{pageURL: srv.URL + "/", selectErr: selector.ErrCancelled})
		gt.Equal(t, driver.Run(context.Background(), h.deps), driver.ExitOK)
		gt.Equal(t, len(h.files(t)), 0)
	})

	t.Run("prompt failure exits 1", func(t *testing.T) {
		h := newHarness(t, stubProvider{urlErr: errors.New("terminal gone")})
		gt.Equal(t, driver.Run(context.Background(), h.deps), driver.ExitError)
		gt.String(t, h.stderr.String()).Contains("terminal gone")
	})

	t.Run("panic exits 1", func(t *testing.T) {
		h := newHarness(t, stubProvider{panicMsg: "boom"})
		gt.Equal(t, driver.Run(context.Background(), h.deps), driver.ExitError)
		gt.String(t, h.stderr.String()).Contains("boom")
	})
}
