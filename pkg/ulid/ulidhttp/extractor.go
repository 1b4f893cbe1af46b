package ulidhttp

import (
	"context"
	"errors"
	"net/http"

	"github.com/osvaldoandrade/ulid/pkg/ulid"
)

// ExtractorSource reads a raw value from one part of the request. An empty
// value counts as a miss.
type ExtractorSource struct {
	source Source
	name   string
	read   func(*http.Request) string
}

// FromPath returns a source that reads a route parameter.
func FromPath(name string) ExtractorSource {
	return ExtractorSource{source: SourcePath, name: name, read: func(r *http.Request) string {
		return pathValue(r, name)
	}}
}

// FromQuery returns a source that reads a query parameter.
func FromQuery(name string) ExtractorSource {
	return ExtractorSource{source: SourceQuery, name: name, read: func(r *http.Request) string {
		return r.URL.Query().Get(name)
	}}
}

// FromForm returns a source that reads a form field.
func FromForm(name string) ExtractorSource {
	return ExtractorSource{source: SourceForm, name: name, read: func(r *http.Request) string {
		return r.FormValue(name)
	}}
}

// FromHeader returns a source that reads a request header.
func FromHeader(name string) ExtractorSource {
	return ExtractorSource{source: SourceHeader, name: name, read: func(r *http.Request) string {
		return r.Header.Get(name)
	}}
}

// Extractor tries multiple sources in order and parses the first non-empty
// value.
type Extractor struct {
	sources []ExtractorSource
}

// NewExtractor creates an Extractor that tries the given sources in order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return Extractor{sources: sources}
}

// Extract parses the first non-empty source. A malformed value is reported
// as *ParamError without consulting later sources. ErrMissing is returned
// when every source misses.
func (e Extractor) Extract(r *http.Request) (ulid.ULID, error) {
	for _, src := range e.sources {
		if raw := src.read(r); raw != "" {
			return parse(src.source, src.name, raw)
		}
	}
	return ulid.ULID{}, ErrMissing
}

type contextKey struct{}

// WithULID stores id in ctx.
func WithULID(ctx context.Context, id ulid.ULID) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the ULID stored by WithULID or Middleware.
func FromContext(ctx context.Context) (ulid.ULID, bool) {
	id, ok := ctx.Value(contextKey{}).(ulid.ULID)
	return id, ok
}

// Middleware extracts a ULID before calling next and stores it in the
// request context. Missing values are answered with 404 Not Found and
// malformed values with 400 Bad Request.
func Middleware(e Extractor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := e.Extract(r)
			if err != nil {
				status := http.StatusBadRequest
				if errors.Is(err, ErrMissing) {
					status = http.StatusNotFound
				}
				http.Error(w, err.Error(), status)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithULID(r.Context(), id)))
		})
	}
}
