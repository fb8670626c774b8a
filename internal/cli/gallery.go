package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	colorwish "github.com/nikas90/kids-coloring-ai"
)

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Browse the featured coloring pages",
	Long:  "Lists the sample coloring pages featured on the dashboard.",
	RunE:  runGallery,
}

func init() {
	rootCmd.AddCommand(galleryCmd)
}

func runGallery(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	pages := app.client.Catalog.SamplePages()

	if wantYAML() {
		return printYAML(pages)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tDIFFICULTY\tDESCRIPTION")
	for _, page := range pages {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", page.ID, page.Title, page.Difficulty, page.Description)
	}
	return w.Flush()
}

func formatCreations(creations []colorwish.Creation) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCREATED\tDESCRIPTION")
	for _, c := range creations {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.ID, c.Title, c.CreatedAt.Format("Jan 2, 2006"), c.Description)
	}
	return w.Flush()
}
