package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ashishmaurya/portfolio/internal/portfolio"
)

type projectsResponse struct {
	Criteria portfolio.Criteria  `json:"criteria"`
	IDs      []int               `json:"ids"`
	Projects []portfolio.Project `json:"projects"`
}

// handleAPIProjects handles GET /api/projects?category=&technology=&q=
func (s *Server) handleAPIProjects(c *gin.Context) {
	criteria := criteriaFromQuery(c)
	result := s.catalog.Filter(criteria)
	s.metrics.observeFilter("api", len(result))

	c.JSON(http.StatusOK, projectsResponse{
		Criteria: criteria,
		IDs:      portfolio.IDs(result),
		Projects: result,
	})
}

// handleAPIProject handles GET /api/projects/:id
func (s *Server) handleAPIProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	project, err := s.catalog.ByID(id)
	if errors.Is(err, portfolio.ErrProjectNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, project)
}

func (s *Server) handleAPITechnologies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"technologies": s.catalog.Technologies()})
}

func (s *Server) handleAPICategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": s.catalog.Categories()})
}
