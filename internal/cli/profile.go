package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nikas90/kids-coloring-ai/forms"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE:  runWhoami,
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	Long: `Update your profile. Changes apply locally to the stored session;
fields you do not pass keep their current values.

Examples:
  colorctl profile update --username sammy
  colorctl profile update --email new@example.com --age-range "9-12 years"`,
	RunE: runProfileUpdate,
}

func init() {
	profileUpdateCmd.Flags().String("username", "", "new display name")
	profileUpdateCmd.Flags().String("email", "", "new email")
	profileUpdateCmd.Flags().String("age-range", "", "new age range")
	profileUpdateCmd.Flags().String("avatar", "", "new avatar URL")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileUpdate(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	snap := app.session.Snapshot()
	if !snap.IsAuthenticated {
		return fmt.Errorf("not signed in; run `colorctl login` first")
	}

	// Start from the current profile so validation sees the merged result,
	// the same way the form is pre-filled in the product.
	form := forms.Profile{
		Username: snap.User.Username,
		Email:    snap.User.Email,
		AgeRange: snap.User.AgeRange,
	}
	if v, _ := cmd.Flags().GetString("username"); v != "" {
		form.Username = v
	}
	if v, _ := cmd.Flags().GetString("email"); v != "" {
		form.Email = v
	}
	if v, _ := cmd.Flags().GetString("age-range"); v != "" {
		form.AgeRange = v
	}

	if errs := form.Validate(); errs != nil {
		return errs
	}

	update := form.Update()
	update.Avatar, _ = cmd.Flags().GetString("avatar")

	user, err := app.session.UpdateProfile(update)
	if err != nil {
		return err
	}

	fmt.Printf("Profile updated: %s <%s>\n", user.Username, user.Email)
	return nil
}
