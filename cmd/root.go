package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"leadline/internal/app"
	"leadline/internal/auth"
	"leadline/internal/cache"
	"leadline/internal/clipboard"
	"leadline/internal/config"
	"leadline/internal/leadapi"
	"leadline/internal/log"
	"leadline/internal/mode"
	"leadline/internal/prefs"
	"leadline/internal/ui/styles"
	"leadline/internal/webhook"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "leadline",
	Short:   "A terminal ui for the sales lead dashboard",
	Long:    `A terminal user interface for browsing, searching and editing sales leads against the remote lead API, with optimistic inline edits and persisted view preferences.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/leadline/config.yaml)")
	rootCmd.Flags().Bool("debug", false,
		"write debug logs to ~/.config/leadline/debug.log")
	rootCmd.Flags().Int("lead", 0,
		"open the lead with this id for editing after the first page loads")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("api.base_url", defaults.API.BaseURL)
	viper.SetDefault("api.timeout", defaults.API.Timeout)
	viper.SetDefault("webhook.url", defaults.Webhook.URL)
	viper.SetDefault("webhook.timeout", defaults.Webhook.Timeout)
	viper.SetDefault("state_path", defaults.StatePath)
	viper.SetDefault("cache_ttl", defaults.CacheTTL)
	viper.SetDefault("debounce", defaults.Debounce)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, _ := os.UserHomeDir()
		// A project-local .leadline/ takes precedence over the user config.
		viper.AddConfigPath(".leadline")
		viper.AddConfigPath(filepath.Join(home, ".config", "leadline"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create a commented default.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			home, _ := os.UserHomeDir()
			defaultPath := filepath.Join(home, ".config", "leadline", "config.yaml")
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug || os.Getenv("LEADLINE_DEBUG") != "" {
		home, _ := os.UserHomeDir()
		cleanup, err := log.Init(filepath.Join(home, ".config", "leadline", "debug.log"))
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		defer cleanup()
	}

	styles.ApplyTheme(cfg.Theme.Muted, cfg.Theme.Error, cfg.Theme.Success)

	store := prefs.Open(cfg.StatePath)
	deepLinkID, _ := cmd.Flags().GetInt("lead")

	services := mode.Services{
		Config:     &cfg,
		API:        leadapi.New(cfg.API.BaseURL, cfg.API.Timeout),
		Hook:       webhook.New(cfg.Webhook.URL, cfg.Webhook.Timeout),
		Prefs:      store,
		Gate:       auth.NewGate(store),
		Results:    cache.New(cfg.CacheTTL),
		Clipboard:  clipboard.System{},
		DeepLinkID: deepLinkID,
	}

	model := app.New(services)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
