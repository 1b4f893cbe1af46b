// Package ulidhttp binds ULIDs from HTTP request path, query, form and
// header values.
package ulidhttp

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osvaldoandrade/ulid/pkg/ulid"
)

// ErrMissing is returned when the requested value is absent or empty.
var ErrMissing = errors.New("ulid parameter missing")

// Source names the part of the request a value was read from.
type Source string

const (
	SourcePath   Source = "path"
	SourceQuery  Source = "query"
	SourceForm   Source = "form"
	SourceHeader Source = "header"
)

// ParamError reports a present but malformed ULID value. Unwrap returns the
// decoding error unchanged.
type ParamError struct {
	Source Source
	Name   string
	Value  string
	Err    error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s parameter %q: %v", e.Source, e.Name, e.Err)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

// PathParam parses a route parameter. chi route parameters take precedence
// over net/http pattern wildcards.
func PathParam(r *http.Request, name string) (ulid.ULID, error) {
	return parse(SourcePath, name, pathValue(r, name))
}

// QueryParam parses a URL query parameter.
func QueryParam(r *http.Request, name string) (ulid.ULID, error) {
	return parse(SourceQuery, name, r.URL.Query().Get(name))
}

// FormValue parses a form field, including URL query values.
func FormValue(r *http.Request, name string) (ulid.ULID, error) {
	return parse(SourceForm, name, r.FormValue(name))
}

// Header parses a request header.
func Header(r *http.Request, name string) (ulid.ULID, error) {
	return parse(SourceHeader, name, r.Header.Get(name))
}

func pathValue(r *http.Request, name string) string {
	if v := chi.URLParam(r, name); v != "" {
		return v
	}
	return r.PathValue(name)
}

func parse(source Source, name, raw string) (ulid.ULID, error) {
	if raw == "" {
		return ulid.ULID{}, fmt.Errorf("%s parameter %q: %w", source, name, ErrMissing)
	}
	id, err := ulid.Parse(raw)
	if err != nil {
		return ulid.ULID{}, &ParamError{Source: source, Name: name, Value: raw, Err: err}
	}
	return id, nil
}
