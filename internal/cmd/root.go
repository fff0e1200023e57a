// Package cmd implements the saasconnector command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"saasconnector/internal/app"
	"saasconnector/internal/config"
	"saasconnector/pkg/metrics"
)

// VersionInfo holds build information.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

//nolint:gochecknoglobals // Package-level version info for CLI commands
var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
	BuiltBy: "unknown",
}

// SetVersionInfo updates the build information.
func SetVersionInfo(v, c, d, b string) {
	versionInfo.Version = v
	versionInfo.Commit = c
	versionInfo.Date = d
	versionInfo.BuiltBy = b
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// state is shared by the root command and its subcommands for one execution.
type state struct {
	cfgFile    string
	envFile    string
	verbose    bool
	appOptions []app.Option

	viper *viper.Viper
	app   *app.App
}

// NewRootCommand builds the command tree. opts are passed to the application on startup.
func NewRootCommand(opts ...app.Option) *cobra.Command {
	s := &state{appOptions: opts}

	root := &cobra.Command{
		Use:   "saasconnector",
		Short: "Call e-commerce and delivery SaaS APIs from the command line",
		Long: `saasconnector talks to Horoshop, InSales, Tiu, InPost and Courierist.
Responses are printed as indented JSON.

Credentials are read from $HOME/.config/saasconnector/config.yaml, SAAS_*
environment variables or a .env file, e.g. SAAS_HOROSHOP_PASSWORD.`,
		SilenceUsage:      true,
		PersistentPreRunE: s.initialize,
		PersistentPostRun: s.finish,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&s.cfgFile, "config", "", "config file (default is $HOME/.config/saasconnector/config.yaml)")
	flags.StringVar(&s.envFile, "env-file", ".env", "dotenv file loaded before the environment is read")
	flags.BoolVarP(&s.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-format", "", "log format: text or json")
	flags.Duration("timeout", 0, "HTTP request timeout")
	flags.Float64("rate-limit", 0, "maximum requests per second, 0 disables throttling")
	flags.Bool("insecure", false, "skip TLS certificate verification")

	root.AddCommand(
		newVersionCommand(),
		newConfigCommand(s),
		newHoroshopCommand(s),
		newInSalesCommand(s),
		newTiuCommand(s),
		newInPostCommand(s),
		newCourieristCommand(s),
	)

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoglobals // Flag name to config key
var flagKeys = map[string]string{
	"log-level":  "log_level",
	"log-format": "log_format",
	"timeout":    "http.timeout",
	"rate-limit": "http.rate_limit",
	"insecure":   "http.insecure_skip_verify",
}

func (s *state) initialize(cmd *cobra.Command, _ []string) error {
	if err := loadEnvFile(s.envFile, cmd.Flags().Changed("env-file")); err != nil {
		return err
	}

	v, err := config.NewViper(s.cfgFile)
	if err != nil {
		return err
	}
	for name, key := range flagKeys {
		// Unchanged flags must not shadow the config file or environment.
		if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
			if err := v.BindPFlag(key, flag); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	opts := append([]app.Option{app.WithVerbose(s.verbose)}, s.appOptions...)
	application, err := app.New(cmd.Context(), cfg, opts...)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if used := v.ConfigFileUsed(); used != "" {
		application.Logger.DebugContext(cmd.Context(), "Using config file", "path", used)
	}

	s.viper = v
	s.app = application
	return nil
}

func (s *state) finish(cmd *cobra.Command, _ []string) {
	if s.app == nil {
		return
	}
	counts, err := metrics.RequestCounts(s.app.Registry)
	if err != nil {
		s.app.Logger.WarnContext(cmd.Context(), "Failed to gather request metrics", "error", err)
		return
	}
	for vendor, count := range counts {
		s.app.Logger.DebugContext(cmd.Context(), "API requests", "vendor", vendor, "count", count)
	}
}

// loadEnvFile loads a dotenv file without overriding variables already set. A missing default
// file is ignored.
func loadEnvFile(path string, explicit bool) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if !explicit && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
