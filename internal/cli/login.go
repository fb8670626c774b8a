package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nikas90/kids-coloring-ai/forms"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to ColorWish",
	Long: `Sign in with your email and password.

On success the session is stored on disk, so later commands stay
authenticated until you log out or the credential expires.

Examples:
  colorctl login --email you@example.com --password secret1
  COLORWISH_PASSWORD=secret1 colorctl login --email you@example.com`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password (or COLORWISH_PASSWORD)")
	_ = loginCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	if password == "" {
		password = envPassword()
	}

	form := forms.Login{Email: email, Password: password}
	if errs := form.Validate(); errs != nil {
		return errs
	}

	app, err := newApp()
	if err != nil {
		return err
	}

	user, err := app.session.Login(cmd.Context(), form.Email, form.Password)
	if err != nil {
		return err
	}

	fmt.Printf("Welcome back, %s!\n", user.Username)
	return nil
}
