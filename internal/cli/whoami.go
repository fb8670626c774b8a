package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	snap := app.session.Snapshot()
	if !snap.IsAuthenticated {
		fmt.Println("Not signed in. Run `colorctl login` to sign in.")
		return nil
	}

	if wantYAML() {
		return printYAML(snap.User)
	}

	fmt.Printf("Signed in as %s <%s>", snap.User.Username, snap.User.Email)
	if snap.User.AgeRange != "" {
		fmt.Printf(" (%s)", snap.User.AgeRange)
	}
	fmt.Println()
	return nil
}
