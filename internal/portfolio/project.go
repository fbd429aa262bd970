package portfolio

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// ErrProjectNotFound is returned by Catalog.ByID for unknown ids.
var ErrProjectNotFound = errors.New("project not found")

// Project represents a portfolio project
type Project struct {
	ID           int      `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	Image        string   `json:"image" yaml:"image"`
	Link         string   `json:"link,omitempty" yaml:"link"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	Role         string   `json:"role" yaml:"role"`
	Company      string   `json:"company" yaml:"company"`
	Duration     string   `json:"duration" yaml:"duration"`
	Category     string   `json:"category" yaml:"category"`
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `yaml:"projects"`
}

// Catalog is the read-only project list together with the indexes derived
// from it at load time.
type Catalog struct {
	projects     []Project
	technologies []string
	categories   []string
}

// NewCatalog validates projects and builds the derived indexes.
func NewCatalog(projects []Project) (*Catalog, error) {
	seen := make(map[int]struct{}, len(projects))
	for _, p := range projects {
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("duplicate project id %d", p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	list := cloneProjects(projects)

	return &Catalog{
		projects:     list,
		technologies: DistinctTechnologies(list),
		categories:   Categories(list),
	}, nil
}

// LoadCatalog reads the project seed. An empty path selects the embedded seed.
func LoadCatalog(path string) (*Catalog, error) {
	data := seedYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read projects file: %w", err)
		}
	}

	var list ProjectList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse projects: %w", err)
	}

	return NewCatalog(list.Projects)
}

// Catalog accessors hand out copies; the list and its indexes never change
// after load.

// All returns all projects in seed order
func (c *Catalog) All() []Project {
	return cloneProjects(c.projects)
}

// ByID returns a copy of a specific project by ID
func (c *Catalog) ByID(id int) (*Project, error) {
	for i := range c.projects {
		if c.projects[i].ID == id {
			p := c.projects[i].clone()
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrProjectNotFound, id)
}

// Technologies returns the technology index.
func (c *Catalog) Technologies() []string {
	return slices.Clone(c.technologies)
}

// Categories returns the category options, "All" first.
func (c *Catalog) Categories() []string {
	return slices.Clone(c.categories)
}

// Filter evaluates criteria against the full list.
func (c *Catalog) Filter(criteria Criteria) []Project {
	return cloneProjects(Filter(c.projects, criteria))
}

// Featured returns up to n projects from the head of the list.
func (c *Catalog) Featured(n int) []Project {
	n = max(0, min(n, len(c.projects)))
	return cloneProjects(c.projects[:n])
}

func (p Project) clone() Project {
	p.Technologies = slices.Clone(p.Technologies)
	return p
}

func cloneProjects(projects []Project) []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		out[i] = p.clone()
	}
	return out
}
