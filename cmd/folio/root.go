package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/content"
	"folio/internal/trace"
	"folio/internal/ui"
)

var (
	cfgFile string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Browse a developer portfolio in the terminal",
	Long: `folio renders a portfolio (profile, photo gallery, experience, skills,
projects and contact links) as a scrolling terminal page. Content comes from
a YAML file; without one a built-in sample is shown.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "folio.yml", "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with FOLIO_* overrides")
	rootCmd.PersistentFlags().String("content", "", "portfolio YAML file (overrides config)")

	rootCmd.Flags().Duration("reveal-delay", 0, "per-character delay of the tagline")
	rootCmd.Flags().Duration("carousel-interval", 0, "time each photo stays up")
	rootCmd.Flags().Int("lookahead", 0, "lines below the top edge used to pick the active section")
	rootCmd.Flags().String("log-file", "", "write debug logs to this file")
	rootCmd.Flags().String("trace-endpoint", "", "OTLP/HTTP endpoint for session traces")
}

// loadConfig loads the config file and environment, then applies any flags
// that were set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile, envFile)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("content") {
		cfg.Content, _ = flags.GetString("content")
	}
	if flags.Changed("reveal-delay") {
		cfg.RevealDelay, _ = flags.GetDuration("reveal-delay")
	}
	if flags.Changed("carousel-interval") {
		cfg.CarouselInterval, _ = flags.GetDuration("carousel-interval")
	}
	if flags.Changed("lookahead") {
		cfg.Lookahead, _ = flags.GetInt("lookahead")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("trace-endpoint") {
		cfg.Trace.Endpoint, _ = flags.GetString("trace-endpoint")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setupLogging sends the standard logger to path, or discards it so nothing
// is written over the TUI.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "folio")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return func() { f.Close() }, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	portfolio, err := content.Load(cfg.Content)
	if err != nil {
		return err
	}
	if err := portfolio.Validate(); err != nil {
		return fmt.Errorf("invalid content: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rec, err := trace.NewRecorder(ctx, trace.Options{
		Endpoint:    cfg.Trace.Endpoint,
		ServiceName: cfg.Trace.ServiceName,
		Insecure:    cfg.Trace.Insecure,
	})
	if err != nil {
		log.Printf("tracing disabled: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rec.Shutdown(shutdownCtx); err != nil {
			log.Printf("trace shutdown: %v", err)
		}
	}()

	opts := ui.Options{
		Portfolio:        portfolio,
		RevealDelay:      cfg.RevealDelay,
		CarouselInterval: cfg.CarouselInterval,
		ScrollThrottle:   cfg.ScrollThrottle,
		Lookahead:        cfg.Lookahead,
	}
	if rec != nil {
		opts.Recorder = rec
		log.Printf("tracing session %s to %s", rec.SessionID, cfg.Trace.Endpoint)
	}
	model, err := ui.NewAppModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model.AsTeaModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err = p.Run()
	return err
}
