package portfolio

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

// DefaultStagger is the delay between consecutive card entrances.
const DefaultStagger = 100 * time.Millisecond

// Entrance schedules one card's entrance animation.
type Entrance struct {
	ID    int           `json:"id"`
	Index int           `json:"index"`
	Delay time.Duration `json:"delay"`
}

// IDs returns the id sequence of a result.
func IDs(projects []Project) []int {
	ids := make([]int, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	return ids
}

// SameIDs compares two id sequences by value and order.
func SameIDs(a, b []int) bool {
	return slices.Equal(a, b)
}

// FormatIDs encodes an id sequence as "1,2,3".
func FormatIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// ParseIDs decodes the output of FormatIDs. Blank input is an empty sequence.
func ParseIDs(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// EntrancePlan staggers every item of result in result order.
func EntrancePlan(result []Project, stagger time.Duration) []Entrance {
	plan := make([]Entrance, len(result))
	for i, p := range result {
		plan[i] = Entrance{ID: p.ID, Index: i, Delay: time.Duration(i) * stagger}
	}
	return plan
}

// Reveal tracks which id sequence is on screen and decides when the
// entrance animation has to run again. It is owned by a single caller and
// is not safe for concurrent use.
type Reveal struct {
	stagger time.Duration
	shown   []int
	primed  bool
}

// NewReveal returns a Reveal that has not shown anything yet, so the first
// Observe always reports a change.
func NewReveal(stagger time.Duration) *Reveal {
	if stagger < 0 {
		stagger = 0
	}
	return &Reveal{stagger: stagger}
}

// ResumeReveal returns a Reveal that already shows ids.
func ResumeReveal(stagger time.Duration, ids []int) *Reveal {
	r := NewReveal(stagger)
	r.shown = slices.Clone(ids)
	r.primed = true
	return r
}

// Observe records result as the visible subset. When its id sequence differs
// from the previous one it returns the entrance plan and true; otherwise nil
// and false.
func (r *Reveal) Observe(result []Project) ([]Entrance, bool) {
	ids := IDs(result)
	if r.primed && SameIDs(r.shown, ids) {
		return nil, false
	}
	r.shown = ids
	r.primed = true
	return EntrancePlan(result, r.stagger), true
}

// Shown returns the id sequence currently on screen.
func (r *Reveal) Shown() []int {
	return slices.Clone(r.shown)
}
