package cli

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/stressd/internal/config"
	"github.com/wesleyorama2/stressd/internal/logging"
	"github.com/wesleyorama2/stressd/internal/output"
	"github.com/wesleyorama2/stressd/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long: `Start the stressd web server.

Settings come from the defaults, then the optional --config file
(YAML, JSON or TOML), then any flag given explicitly:

  stressd serve
  stressd serve --port 8080
  stressd serve --config stressd.yaml --log-level debug`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().StringP("config", "c", "", "Path to a YAML, JSON or TOML config file")
	cmd.Flags().String("host", config.DefaultHost, "Interface to bind")
	cmd.Flags().IntP("port", "p", config.DefaultPort, "TCP port to listen on")
	cmd.Flags().String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	cmd.Flags().String("log-format", config.DefaultLogFormat, "Log format: text or json")
	cmd.Flags().Bool("no-color", false, "Disable colored output")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	// SIGTERM is handled from here on, including while config loads and the
	// listener opens.
	stop := server.Register(&server.ShutdownHandler{Out: cmd.OutOrStdout(), Exit: os.Exit})
	defer stop()

	cfg, err := loadServeConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cmd.ErrOrStderr(), logging.LevelFromString(cfg.Log.Level), cfg.Log.Format)
	defer func() { _ = logger.Sync() }()

	srv := server.New(cfg.Server, logger)
	ln, err := srv.Listen()
	if err != nil {
		return err
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	noColor = output.ColorDisabled(os.Stdout, noColor)
	output.PrintBanner(cmd.OutOrStdout(), output.SchemeFor(noColor), "http://"+ln.Addr().String(), server.Routes)

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

// loadServeConfig layers defaults, the config file and explicitly set flags.
func loadServeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Server.Host, _ = flags.GetString("host")
	}
	if flags.Changed("port") {
		cfg.Server.Port, _ = flags.GetInt("port")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Log.Format, _ = flags.GetString("log-format")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
