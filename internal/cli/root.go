// Package cli implements the colorctl command tree. Commands are the
// product's user flows — sign in, register, profile, dashboard gallery, my
// creations — driving the session manager and API client.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	colorwish "github.com/nikas90/kids-coloring-ai"
	"github.com/nikas90/kids-coloring-ai/session"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "colorctl",
	Short: "ColorWish account and gallery client",
	Long: `colorctl is the command-line client for the ColorWish coloring-book service.

It keeps one signed-in session per machine, persisted under your user config
directory, so commands stay authenticated across invocations until you log
out or the credential expires.

Examples:
  # Sign in and look around
  colorctl login --email you@example.com --password secret1
  colorctl whoami
  colorctl gallery

  # Create an account
  colorctl register \
    --username sam \
    --email sam@example.com \
    --password secret1 \
    --confirm-password secret1 \
    --age-range "6-8 years"

  # Update your profile locally
  colorctl profile update --username sammy

  # Sign out
  colorctl logout`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.colorwish/config.yaml)")
	rootCmd.PersistentFlags().String("api-url", colorwish.DefaultBaseURL, "ColorWish API base URL")
	rootCmd.PersistentFlags().String("session-file", "", "session file path (default <config dir>/colorwish/session.json)")
	rootCmd.PersistentFlags().Duration("timeout", colorwish.DefaultTimeout, "HTTP request timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "output format (text|yaml)")

	_ = viper.BindPFlag("api-url", rootCmd.PersistentFlags().Lookup("api-url"))
	_ = viper.BindPFlag("session-file", rootCmd.PersistentFlags().Lookup("session-file"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".colorwish"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	viper.SetEnvPrefix("COLORWISH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Missing config file is fine; flags and env cover everything.
	_ = viper.ReadInConfig()
}

// app wires the client and session manager for one command invocation.
type app struct {
	client  *colorwish.Client
	session *session.Manager
}

// newApp builds the client/session pair and hydrates the stored session.
func newApp() (*app, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	storage, err := session.NewFileStorage(viper.GetString("session-file"))
	if err != nil {
		return nil, fmt.Errorf("open session storage: %w", err)
	}

	mgr := session.NewManager(session.Config{
		Storage: storage,
		Logger:  logger,
		Navigate: func() {
			fmt.Fprintln(os.Stderr, "Your session has expired. Run `colorctl login` to sign in again.")
		},
	})

	client := colorwish.NewClient(viper.GetString("api-url"),
		colorwish.WithTimeout(viper.GetDuration("timeout")),
		colorwish.WithTokenSource(mgr),
		colorwish.WithUnauthorizedHook(mgr.Expire),
	)
	mgr.Attach(client)
	mgr.Hydrate()

	return &app{client: client, session: mgr}, nil
}

// envPassword reads a password supplied via COLORWISH_PASSWORD, so it never
// has to appear in shell history.
func envPassword() string {
	return viper.GetString("password")
}
