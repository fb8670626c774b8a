package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var creationsCmd = &cobra.Command{
	Use:   "creations",
	Short: "Your saved colorings",
}

var creationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your creations",
	Long:  "Lists the creations in your gallery. Requires being signed in.",
	RunE:  runCreationsList,
}

func init() {
	creationsCmd.AddCommand(creationsListCmd)
	rootCmd.AddCommand(creationsCmd)
}

func runCreationsList(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	if !app.session.Snapshot().IsAuthenticated {
		return fmt.Errorf("not signed in; run `colorctl login` first")
	}

	creations := app.client.Catalog.DemoCreations()

	if wantYAML() {
		return printYAML(creations)
	}

	return formatCreations(creations)
}
