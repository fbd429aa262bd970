package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ashishmaurya/portfolio/internal/portfolio"
)

// featuredCount is how many projects the home page highlights.
const featuredCount = 2

func (s *Server) handleHome(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":    "Home",
		"active":   "/",
		"intro":    Intro,
		"about":    AboutMe,
		"skills":   Skills,
		"featured": s.catalog.Featured(featuredCount),
	})
}

func (s *Server) handleAbout(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{
		"title":      "About",
		"active":     "/about",
		"about":      AboutMe,
		"experience": WorkHistory,
		"education":  EducationHistory,
	})
}

// criteriaFromQuery reads the filter state the caller sent with the request.
func criteriaFromQuery(c *gin.Context) portfolio.Criteria {
	var criteria portfolio.Criteria
	// Criteria has no validation rules; binding only fails on malformed
	// queries, which fall back to the defaults.
	if err := c.ShouldBindQuery(&criteria); err != nil {
		return portfolio.DefaultCriteria()
	}
	return criteria.Normalize()
}

// handlePortfolio handles GET /portfolio
func (s *Server) handlePortfolio(c *gin.Context) {
	criteria := criteriaFromQuery(c)
	result := s.catalog.Filter(criteria)
	s.metrics.observeFilter("page", len(result))

	plan, _ := portfolio.NewReveal(s.cfg.RevealStagger).Observe(result)

	c.HTML(http.StatusOK, "portfolio.html", gin.H{
		"title":  "Portfolio",
		"active": "/portfolio",
		"view": filterView{
			Criteria:     criteria,
			Categories:   s.catalog.Categories(),
			Technologies: s.catalog.Technologies(),
			Debounce:     s.cfg.SearchDebounce,
			Results:      newResultsView(result, plan),
		},
	})
}

// handleResults handles GET /portfolio/results, the grid fragment swapped in
// on every filter change. The caller reports the ids it currently shows in
// "shown"; when the new result has the same id sequence the response is 204
// and the grid (and its entrance animation) is left alone.
func (s *Server) handleResults(c *gin.Context) {
	criteria := criteriaFromQuery(c)
	result := s.catalog.Filter(criteria)
	s.metrics.observeFilter("fragment", len(result))

	reveal := portfolio.NewReveal(s.cfg.RevealStagger)
	if raw, ok := c.GetQuery("shown"); ok {
		if ids, err := portfolio.ParseIDs(raw); err == nil {
			reveal = portfolio.ResumeReveal(s.cfg.RevealStagger, ids)
		}
	}

	plan, changed := reveal.Observe(result)
	if !changed {
		s.metrics.revealSkipped.Inc()
		c.Status(http.StatusNoContent)
		return
	}

	view := newResultsView(result, plan)
	view.OOB = true
	c.HTML(http.StatusOK, "results.html", view)
}

// handleProjectDetail handles GET /portfolio/projects/:id
func (s *Server) handleProjectDetail(c *gin.Context) {
	partial := c.GetHeader("HX-Request") == "true"
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "not-found.html", gin.H{"title": "Not Found", "partial": partial})
		return
	}
	project, err := s.catalog.ByID(id)
	if err != nil {
		c.HTML(http.StatusNotFound, "not-found.html", gin.H{"title": "Not Found", "partial": partial})
		return
	}

	c.HTML(http.StatusOK, "project.html", gin.H{
		"title":   project.Title,
		"active":  "/portfolio",
		"project": project,
		"partial": partial,
	})
}
