package commands

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rkanban/cmd/rkanban/output"
	"rkanban/internal/di"
	"rkanban/internal/domain/entity"
	"rkanban/internal/infrastructure/config"
	"rkanban/internal/infrastructure/logging"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"

	// Global flags
	outputFormat string
	configPath   string
	logLevel     string
	quiet        bool

	// Shared instances
	cfg       *config.Config
	loader    *config.Loader
	container *di.Container
	printer   *output.Printer
	formatter *output.Formatter
	logCloser io.Closer
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rkanban",
	Short: "Terminal client for a remote Kanban board",
	Long: `rkanban keeps a local copy of your Kanban board in step with the board server.

Changes are applied to the local board right away and then sent to the server.
When the server rejects a change the whole board is fetched again.

Examples:
  # Log in once; the token is stored per server
  rkanban login --email ada@example.com

  # Launch the interactive board
  rkanban
  rkanban tui

  # Show the board
  rkanban board show

  # Create a task in the "Todo" list
  rkanban task create --title "Fix login bug" --list Todo --priority high

  # Move a task to another list
  rkanban task move 64f1c2 Done`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			return logCloser.Close()
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		output.NewPrinter(os.Stderr).Error("%v", describe(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRunE = setup

	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json, yaml, ids")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")

	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
			printVersion()
			return nil
		}
		if len(args) > 0 {
			return cmd.Help()
		}
		return tuiCmd.RunE(cmd, args)
	}
}

// setup loads config, logging and the container before any command runs
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if configPath != "" {
		loader, err = config.LoadFrom(configPath)
	} else {
		loader, err = config.NewLoader()
	}
	if err != nil {
		return fmt.Errorf("failed to create config loader: %w", err)
	}

	cfg, err = loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	// The TUI owns the terminal, so only it logs to the configured file
	logFile := ""
	if usesTerminal(cmd) {
		logFile = cfg.Log.File
	}
	logCloser, err = logging.Setup(cfg.Log.Level, logFile)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	container, err = di.InitializeContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}

	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	formatter = output.NewFormatter(format, os.Stdout)
	printer = output.DefaultPrinter()
	printer.SetQuiet(quiet)

	log.WithFields(log.Fields{
		"command": cmd.CommandPath(),
		"api":     cfg.API.BaseURL,
	}).Debug("command starting")
	return nil
}

// usesTerminal reports whether cmd draws a full-screen UI
func usesTerminal(cmd *cobra.Command) bool {
	if cmd == tuiCmd {
		return true
	}
	if cmd == rootCmd {
		showVersion, _ := cmd.Flags().GetBool("version")
		return !showVersion
	}
	return false
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("rkanban version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Built:      %s\n", BuildDate)
}

// describe turns sync failures into a short, user-facing message
func describe(err error) error {
	if sf, ok := entity.AsSyncFailure(err); ok {
		if sf.StatusCode == http.StatusUnauthorized || errors.Is(sf, entity.ErrNotAuthenticated) {
			return fmt.Errorf("%s: not logged in (run 'rkanban login')", sf.Op)
		}
	}
	return err
}

// loadBoard fetches the board from the server into the local store
func loadBoard(ctx context.Context) error {
	if !container.Session.Authenticated() {
		return fmt.Errorf("not logged in: run 'rkanban login' or set RKANBAN_TOKEN")
	}
	if _, err := container.RefreshBoardUseCase.Execute(ctx); err != nil {
		return fmt.Errorf("failed to load board: %w", err)
	}
	if err := container.CachedBoardUseCase.Persist(); err != nil {
		log.WithError(err).Warn("failed to update board cache")
	}
	return nil
}

// resolveList finds a list by ID or by case-insensitive title
func resolveList(ref string) (entity.List, error) {
	board := container.Store.Snapshot()
	if l, ok := board.List(ref); ok {
		return l, nil
	}
	var match []entity.List
	for _, l := range board.Lists() {
		if strings.EqualFold(l.Title(), ref) {
			match = append(match, l)
		}
	}
	switch len(match) {
	case 0:
		return entity.List{}, &entity.NotFoundError{Kind: "list", ID: ref}
	case 1:
		return match[0], nil
	default:
		return entity.List{}, fmt.Errorf("list title '%s' is ambiguous; use the list ID", ref)
	}
}

// printNotices shows notices recorded while the command ran
func printNotices() {
	for _, n := range container.Tracker.Notices() {
		printer.Notice(n)
	}
}

// resolveArgs fills missing leading arguments from piped input, so that
// "rkanban task list -o ids | rkanban task delete" works
func resolveArgs(args []string, expected int) ([]string, error) {
	if len(args) >= expected {
		return args, nil
	}

	piped, err := readPipedArgs()
	if err != nil {
		return nil, err
	}
	needed := expected - len(args)
	if len(piped) < needed {
		return nil, fmt.Errorf("accepts %d arg(s), received %d", expected, len(args)+len(piped))
	}
	return append(piped[:needed:needed], args...), nil
}

func readPipedArgs() ([]string, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return nil, err
	}
	if stat.Mode()&os.ModeCharDevice != 0 {
		return nil, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}
	return extractArgsFromInput(data), nil
}

// extractArgsFromInput takes the first field of the first non-empty line.
// Lines are either "id<TAB>title" or "id :: title".
func extractArgsFromInput(data []byte) []string {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if i := strings.IndexByte(line, '\t'); i >= 0 {
			return []string{line[:i]}
		}
		if i := strings.Index(line, " :: "); i >= 0 {
			return []string{line[:i]}
		}
		return strings.Fields(line)[:1]
	}
	return nil
}
