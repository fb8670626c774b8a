package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	colorwish "github.com/nikas90/kids-coloring-ai"
	"github.com/nikas90/kids-coloring-ai/forms"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a ColorWish account",
	Long: `Create an account and sign in with it.

All fields are validated locally before anything is sent; the confirmation
password in particular never leaves this machine.

Age ranges: ` + strings.Join(colorwish.AgeRanges, ", ") + `

Example:
  colorctl register \
    --username sam \
    --email sam@example.com \
    --password secret1 \
    --confirm-password secret1 \
    --age-range "6-8 years"`,
	RunE: runRegister,
}

func init() {
	registerCmd.Flags().String("username", "", "display name")
	registerCmd.Flags().String("email", "", "account email")
	registerCmd.Flags().String("password", "", "password (min 6 characters)")
	registerCmd.Flags().String("confirm-password", "", "password confirmation")
	registerCmd.Flags().String("age-range", "", "age range")
	_ = registerCmd.MarkFlagRequired("username")
	_ = registerCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	form := forms.Register{}
	form.Username, _ = cmd.Flags().GetString("username")
	form.Email, _ = cmd.Flags().GetString("email")
	form.Password, _ = cmd.Flags().GetString("password")
	form.ConfirmPassword, _ = cmd.Flags().GetString("confirm-password")
	form.AgeRange, _ = cmd.Flags().GetString("age-range")

	if errs := form.Validate(); errs != nil {
		return errs
	}

	app, err := newApp()
	if err != nil {
		return err
	}

	user, err := app.session.Register(cmd.Context(), form.Request())
	if err != nil {
		return err
	}

	fmt.Printf("Account created. Welcome, %s!\n", user.Username)
	return nil
}
