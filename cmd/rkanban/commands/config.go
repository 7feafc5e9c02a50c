package commands

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"rkanban/cmd/rkanban/output"
	"rkanban/internal/infrastructure/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage rkanban configuration settings.

Configuration is stored in YAML format at:
  ~/.config/rkanban/config.yml

Environment variables override the file: RKANBAN_API_URL, RKANBAN_API_TIMEOUT,
RKANBAN_TOKEN, RKANBAN_LOG_LEVEL, RKANBAN_DATA_PATH, RKANBAN_COMMIT_TIMEOUT.

Examples:
  # Show the effective configuration
  rkanban config show

  # Edit config in editor
  rkanban config edit

  # Show config file location
  rkanban config path

  # Reset config to defaults
  rkanban config reset`,
}

// configShowCmd shows the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		shown := *cfg
		if shown.API.Token != "" {
			shown.API.Token = "(set from environment)"
		}
		if formatter.Structured() {
			return formatter.Print(shown)
		}
		return output.NewFormatter(output.FormatYAML, os.Stdout).Print(shown)
	},
}

// configEditCmd opens the config file in an editor
var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit config in editor",
	Long: `Open the configuration file in your default editor.

The editor is determined by the EDITOR environment variable (default: vi).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := loader.GetConfigPath()
		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}

		printer.Info("Opening config file: %s", configPath)
		editorCmd := exec.Command(editor, configPath)
		editorCmd.Stdin = os.Stdin
		editorCmd.Stdout = os.Stdout
		editorCmd.Stderr = os.Stderr
		if err := editorCmd.Run(); err != nil {
			return fmt.Errorf("failed to run editor: %w", err)
		}

		if _, err := loader.Load(); err != nil {
			printer.Warning("The edited config does not load: %v", err)
			return nil
		}
		printer.Success("Config file edited")
		return nil
	},
}

// configPathCmd shows the config file path
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(loader.GetConfigPath())
		return nil
	},
}

// configResetCmd resets the config to defaults
var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset config to defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			printer.Warning("This will overwrite %s", loader.GetConfigPath())
			printer.Info("Use --force to confirm")
			return nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		if err := loader.Save(config.Default(home)); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		printer.Success("Config reset to defaults")
		return nil
	},
}

func init() {
	configResetCmd.Flags().BoolP("force", "f", false, "Overwrite without asking")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configResetCmd)
	rootCmd.AddCommand(configCmd)
}
