// Package query turns list-endpoint query parameters into a store-agnostic
// filter predicate and page request.
package query

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Predicate is a node of the filter AST. The store adapter interprets it.
type Predicate interface {
	isPredicate()
}

// Equals matches Field against Value exactly. Value is passed through uncoerced.
type Equals struct {
	Field string
	Value any
}

// Contains matches when Field contains Value, ignoring case.
type Contains struct {
	Field string
	Value string
}

// Range bounds Field inclusively. A nil bound is open.
type Range struct {
	Field string
	Gte   any
	Lte   any
}

// Or matches when any item matches. An empty Or matches nothing.
type Or struct {
	Items []Predicate
}

// And matches when every item matches. An empty And matches everything.
type And struct {
	Items []Predicate
}

func (Equals) isPredicate()   {}
func (Contains) isPredicate() {}
func (Range) isPredicate()    {}
func (Or) isPredicate()       {}
func (And) isPredicate()      {}

// RangeKind selects how the bounds of a range field are parsed.
type RangeKind int

const (
	RangeNumber RangeKind = iota
	RangeDate
)

// Options lists the fields a listing can be filtered on.
type Options struct {
	SearchFields []string
	ExactFields  []string
	RangeFields  map[string]RangeKind
}

const dateLayout = "2006-01-02"

// Build translates values into a conjunction of conditions. Range bounds that do
// not parse for the configured kind are dropped.
func Build(values url.Values, opts Options) And {
	var items []Predicate

	if search := strings.TrimSpace(values.Get("search")); search != "" && len(opts.SearchFields) > 0 {
		or := Or{Items: make([]Predicate, 0, len(opts.SearchFields))}
		for _, field := range opts.SearchFields {
			or.Items = append(or.Items, Contains{Field: field, Value: search})
		}
		items = append(items, or)
	}

	for _, field := range opts.ExactFields {
		if v, ok := values[field]; ok && len(v) > 0 && v[0] != "" {
			items = append(items, Equals{Field: field, Value: v[0]})
		}
	}

	for _, field := range sortedKeys(opts.RangeFields) {
		kind := opts.RangeFields[field]
		gte := parseBound(values.Get(field+"_min"), kind)
		lte := parseBound(values.Get(field+"_max"), kind)
		if gte == nil && lte == nil {
			continue
		}
		items = append(items, Range{Field: field, Gte: gte, Lte: lte})
	}

	return And{Items: items}
}

func parseBound(raw string, kind RangeKind) any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	switch kind {
	case RangeDate:
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t
		}
		if t, err := time.Parse(dateLayout, raw); err == nil {
			return t
		}
		return nil
	default:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil
		}
		return f
	}
}

// StatusFilter returns the status condition for a listing. An explicit
// status=active|inactive wins; includeInactive=true drops the condition;
// otherwise only active rows are listed.
func StatusFilter(values url.Values) Predicate {
	switch strings.ToLower(values.Get("status")) {
	case "active", "true":
		return Equals{Field: "status", Value: true}
	case "inactive", "false":
		return Equals{Field: "status", Value: false}
	}
	if include, err := strconv.ParseBool(values.Get("includeInactive")); err == nil && include {
		return nil
	}
	return Equals{Field: "status", Value: true}
}

// With appends p to a when p is not nil.
func (a And) With(p Predicate) And {
	if p == nil {
		return a
	}
	items := make([]Predicate, 0, len(a.Items)+1)
	items = append(items, a.Items...)
	return And{Items: append(items, p)}
}
