package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ashishmaurya/portfolio/internal/portfolio"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects matching a filter",
	Long: `List the projects the portfolio page would show for a filter.

Examples:
  portfolio projects --category Personal
  portfolio projects --tech React.js --query seo`,
	Args: cobra.NoArgs,
	RunE: runProjects,
}

var technologiesCmd = &cobra.Command{
	Use:   "technologies",
	Short: "Print the technology filter options",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		for _, tech := range catalog.Technologies() {
			fmt.Fprintln(cmd.OutOrStdout(), tech)
		}
		return nil
	},
}

var projectsCriteria = portfolio.DefaultCriteria()

func init() {
	flags := projectsCmd.Flags()
	flags.StringVarP(&projectsCriteria.Category, "category", "c", portfolio.All, "Category to show")
	flags.StringVarP(&projectsCriteria.Technology, "tech", "t", portfolio.All, "Technology tag to show (exact match)")
	flags.StringVarP(&projectsCriteria.Query, "query", "q", "", "Case-insensitive search text")
}

func runProjects(cmd *cobra.Command, args []string) error {
	_, catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	return printProjects(cmd.OutOrStdout(), catalog.Filter(projectsCriteria))
}

func printProjects(out io.Writer, projects []portfolio.Project) error {
	if len(projects) == 0 {
		_, err := fmt.Fprintln(out, "No projects found")
		return err
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tTECHNOLOGIES")
	for _, p := range projects {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Title, p.Category, strings.Join(p.Technologies, ", "))
	}
	return w.Flush()
}
