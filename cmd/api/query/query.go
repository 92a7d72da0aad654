// Package query holds the list view state that round-trips through the URL
// query string: pagination, search text, sort and tag filter.
package query

import (
	"net/url"
	"strconv"
)

const (
	DefaultSkip      = 0
	DefaultLimit     = 10
	DefaultSortOrder = "asc"

	// TagAll 는 태그 필터 해제를 뜻하는 선택값이다.
	TagAll = "all"
)

// URL query parameter names.
const (
	ParamSkip      = "skip"
	ParamLimit     = "limit"
	ParamSearch    = "search"
	ParamSortBy    = "sortBy"
	ParamSortOrder = "sortOrder"
	ParamTag       = "tag"
)

// Option lists offered by the list toolbar. Values outside them are accepted as-is.
var (
	LimitOptions = []int{10, 20, 30}
	SortKeys     = []string{"none", "id", "title", "reactions"}
	SortOrders   = []string{"asc", "desc"}
)

type State struct {
	Skip        int    `json:"skip"`
	Limit       int    `json:"limit"`
	SearchQuery string `json:"searchQuery"`
	SortBy      string `json:"sortBy"`
	SortOrder   string `json:"sortOrder"`
	SelectedTag string `json:"selectedTag"`
}

func Default() State {
	return State{Skip: DefaultSkip, Limit: DefaultLimit, SortOrder: DefaultSortOrder}
}

// Parse reads a State from URL query values. Missing or non-integer
// skip/limit fall back to their defaults; no range checks are applied.
func Parse(v url.Values) State {
	s := Default()
	s.Skip = intOr(v.Get(ParamSkip), DefaultSkip)
	s.Limit = intOr(v.Get(ParamLimit), DefaultLimit)
	s.SearchQuery = v.Get(ParamSearch)
	s.SortBy = v.Get(ParamSortBy)
	if order, ok := v[ParamSortOrder]; ok && len(order) > 0 {
		s.SortOrder = order[0]
	}
	s.SelectedTag = v.Get(ParamTag)
	return s
}

// ParseQuery is Parse over a raw query string ("skip=10&limit=20").
func ParseQuery(raw string) State {
	// 잘못된 쌍은 건너뛰고 나머지 값은 v 에 남는다.
	v, _ := url.ParseQuery(raw)
	return Parse(v)
}

func intOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// Values serializes every field that differs from its default, so
// Parse(s.Values()) == s and the default state encodes to an empty query.
func (s State) Values() url.Values {
	v := url.Values{}
	if s.Skip != DefaultSkip {
		v.Set(ParamSkip, strconv.Itoa(s.Skip))
	}
	if s.Limit != DefaultLimit {
		v.Set(ParamLimit, strconv.Itoa(s.Limit))
	}
	if s.SearchQuery != "" {
		v.Set(ParamSearch, s.SearchQuery)
	}
	if s.SortBy != "" {
		v.Set(ParamSortBy, s.SortBy)
	}
	if s.SortOrder != DefaultSortOrder {
		// 빈 sortOrder 도 기본값과 다르므로 빈 값으로 기록한다.
		v[ParamSortOrder] = []string{s.SortOrder}
	}
	if s.SelectedTag != "" {
		v.Set(ParamTag, s.SelectedTag)
	}
	return v
}

func (s State) Encode() string {
	return s.Values().Encode()
}

// IsTagFilter reports whether tag selects a tag-filtered fetch; "" and
// TagAll mean no filter.
func IsTagFilter(tag string) bool {
	return tag != "" && tag != TagAll
}

// TagFilterActive reports whether the tag fetch path applies.
func (s State) TagFilterActive() bool {
	return IsTagFilter(s.SelectedTag)
}

// -------------------- Pagination --------------------

func (s State) HasPrev() bool {
	return s.Skip > 0
}

func (s State) HasNext(total int) bool {
	return s.Skip+s.Limit < total
}

// Prev moves one page back, never below zero.
func (s State) Prev() State {
	s.Skip = max(0, s.Skip-s.Limit)
	return s
}

func (s State) Next() State {
	s.Skip += s.Limit
	return s
}
