package portfolio

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// All is the filter value that disables the category or technology predicate.
const All = "All"

// Criteria is the caller-owned filter state. Empty Category or Technology
// behave like All.
type Criteria struct {
	Category   string `form:"category" json:"category"`
	Technology string `form:"technology" json:"technology"`
	Query      string `form:"q" json:"q"`
}

// DefaultCriteria returns the state shown on first load.
func DefaultCriteria() Criteria {
	return Criteria{Category: All, Technology: All}
}

// Normalize fills unset selectors with All.
func (c Criteria) Normalize() Criteria {
	if c.Category == "" {
		c.Category = All
	}
	if c.Technology == "" {
		c.Technology = All
	}
	return c
}

// Filter returns the projects matching all three predicates, in their
// original relative order. It never returns nil.
func Filter(projects []Project, criteria Criteria) []Project {
	m := newMatcher(criteria)
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if m.match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether a single project passes criteria.
func Matches(p Project, criteria Criteria) bool {
	return newMatcher(criteria).match(p)
}

type matcher struct {
	category   string
	technology string
	query      string
	lower      cases.Caser
}

func newMatcher(criteria Criteria) *matcher {
	criteria = criteria.Normalize()
	m := &matcher{
		category:   criteria.Category,
		technology: criteria.Technology,
		lower:      cases.Lower(language.Und),
	}
	if criteria.Query != "" {
		m.query = m.lower.String(criteria.Query)
	}
	return m
}

func (m *matcher) match(p Project) bool {
	if m.category != All && p.Category != m.category {
		return false
	}
	// Tag match is exact and case-sensitive, unlike the free-text search.
	if m.technology != All && !slices.Contains(p.Technologies, m.technology) {
		return false
	}
	if m.query == "" {
		return true
	}
	if m.contains(p.Title) || m.contains(p.Description) {
		return true
	}
	for _, tech := range p.Technologies {
		if m.contains(tech) {
			return true
		}
	}
	return false
}

func (m *matcher) contains(s string) bool {
	return strings.Contains(m.lower.String(s), m.query)
}

// DistinctTechnologies returns every technology tag in projects once,
// sorted ascending by byte order.
func DistinctTechnologies(projects []Project) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range projects {
		for _, tech := range p.Technologies {
			if _, ok := seen[tech]; ok {
				continue
			}
			seen[tech] = struct{}{}
			out = append(out, tech)
		}
	}
	slices.Sort(out)
	return out
}

// Categories returns All followed by each category in order of first
// appearance.
func Categories(projects []Project) []string {
	out := []string{All}
	for _, p := range projects {
		if p.Category == "" || slices.Contains(out, p.Category) {
			continue
		}
		out = append(out, p.Category)
	}
	return out
}
