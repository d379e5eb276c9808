package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/katalvlaran/algoviz/arraygen"
	"github.com/katalvlaran/algoviz/bench"
	"github.com/katalvlaran/algoviz/grid"
)

// query reads typed parameters and keeps the first failure, so handlers
// check a single error after all reads.
type query struct {
	v   url.Values
	err error
}

func newQuery(r *http.Request) *query { return &query{v: r.URL.Query()} }

func (q *query) fail(format string, args ...any) {
	if q.err == nil {
		q.err = fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
	}
}

// raw returns the trimmed value of name and whether it was present.
func (q *query) raw(name string) (string, bool) {
	s := strings.TrimSpace(q.v.Get(name))

	return s, s != ""
}

func (q *query) intIn(name string, def, lo, hi int) int {
	s, ok := q.raw(name)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < lo || v > hi {
		q.fail("%s must be an integer in [%d, %d], got %q", name, lo, hi, s)
		return def
	}

	return v
}

func (q *query) int64(name string, def int64) int64 {
	s, ok := q.raw(name)
	if !ok {
		return def
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		q.fail("%s must be an integer, got %q", name, s)
		return def
	}

	return v
}

func (q *query) floatIn(name string, def, lo, hi float64) float64 {
	s, ok := q.raw(name)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !(v >= lo && v <= hi) {
		q.fail("%s must be a number in [%g, %g], got %q", name, lo, hi, s)
		return def
	}

	return v
}

func (q *query) boolean(name string, def bool) bool {
	s, ok := q.raw(name)
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		q.fail("%s must be a boolean, got %q", name, s)
		return def
	}

	return v
}

func (q *query) oneOf(name, def string, allowed ...string) string {
	s, ok := q.raw(name)
	if !ok {
		return def
	}
	for _, a := range allowed {
		if s == a {
			return s
		}
	}
	q.fail("%s must be one of %s, got %q", name, strings.Join(allowed, "|"), s)

	return def
}

// list splits a comma separated value, dropping empty items.
func (q *query) list(name string, def []string) []string {
	s, ok := q.raw(name)
	if !ok {
		return def
	}
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		q.fail("%s must name at least one item", name)
		return def
	}

	return out
}

func (q *query) kind(name string, def arraygen.Kind) arraygen.Kind {
	s, ok := q.raw(name)
	if !ok {
		return def
	}
	k, err := arraygen.ParseKind(s)
	if err != nil {
		q.fail("%v", err)
		return def
	}

	return k
}

func (q *query) heuristic(name string, def grid.Heuristic) grid.Heuristic {
	s, ok := q.raw(name)
	if !ok {
		return def
	}
	h, err := grid.ParseHeuristic(s)
	if err != nil {
		q.fail("%v", err)
		return def
	}

	return h
}

func (q *query) metric(name string, def bench.Metric) bench.Metric {
	s, ok := q.raw(name)
	if !ok {
		return def
	}
	m, err := bench.ParseMetric(s)
	if err != nil {
		q.fail("%v", err)
		return def
	}

	return m
}
