package handler

import (
	"bytes"
	"io"
	"log/slog"
	"sync"

	"github.com/colombiamoda/internal/page"
)

// LandingSource renders the landing page and describes its sections.
type LandingSource interface {
	Render(w io.Writer) error
	Manifest() []page.ManifestEntry
}

// API bundles shared dependencies for HTTP handlers.
type API struct {
	landing LandingSource
	log     *slog.Logger

	once sync.Once
	body []byte
	etag string
	err  error
}

// NewAPI constructs a handler set around the landing page source.
func NewAPI(landing LandingSource, log *slog.Logger) *API {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &API{landing: landing, log: log}
}

// renderedLanding renders the page once; the output never changes for the
// life of the process.
func (a *API) renderedLanding() ([]byte, string, error) {
	a.once.Do(func() {
		var buf bytes.Buffer
		if err := a.landing.Render(&buf); err != nil {
			a.err = err
			return
		}
		a.body = buf.Bytes()
		a.etag = etagFor(a.body)
		a.log.Info("landing page rendered", "bytes", len(a.body), "etag", a.etag)
	})
	return a.body, a.etag, a.err
}
