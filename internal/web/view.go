package web

import (
	"fmt"
	"html/template"
	"time"

	"github.com/ashishmaurya/portfolio/internal/portfolio"
)

// summaryTags is how many technology tags a card shows before "+N".
const summaryTags = 3

const placeholderImage = "/static/placeholder.svg"

var templateFuncs = template.FuncMap{
	"ms": func(d time.Duration) int64 { return d.Milliseconds() },
	"image": func(src string) string {
		if src == "" {
			return placeholderImage
		}
		return src
	},
}

type card struct {
	portfolio.Project
	Delay time.Duration
	Tags  []string
	More  int
}

// resultsView is the data behind the results grid fragment.
type resultsView struct {
	Cards []card
	Shown string
	// OOB marks a fragment response that also refreshes the form's
	// "shown" field out of band.
	OOB bool
}

func (v resultsView) Empty() bool {
	return len(v.Cards) == 0
}

// filterView is the data behind the whole portfolio page.
type filterView struct {
	Criteria     portfolio.Criteria
	Categories   []string
	Technologies []string
	Debounce     time.Duration
	Results      resultsView
}

func newResultsView(result []portfolio.Project, plan []portfolio.Entrance) resultsView {
	cards := make([]card, len(result))
	for i, p := range result {
		c := card{Project: p, Tags: p.Technologies}
		if i < len(plan) {
			c.Delay = plan[i].Delay
		}
		if len(c.Tags) > summaryTags {
			c.More = len(c.Tags) - summaryTags
			c.Tags = c.Tags[:summaryTags]
		}
		cards[i] = c
	}
	return resultsView{Cards: cards, Shown: portfolio.FormatIDs(portfolio.IDs(result))}
}

func (v filterView) TechnologyOptions() []string {
	return append([]string{portfolio.All}, v.Technologies...)
}

func (v filterView) SearchTrigger() string {
	if v.Debounce <= 0 {
		return "keyup changed from:#search"
	}
	return fmt.Sprintf("keyup changed delay:%dms from:#search", v.Debounce.Milliseconds())
}
