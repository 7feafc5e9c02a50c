package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	authEmail    string
	authPassword string
)

// loginCmd signs in and stores the token
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the board server",
	Long: `Log in with email and password. The token is stored under the data path,
one file per server, and picked up by running boards.

The password is read from standard input when --password is not given.

Examples:
  # Log in interactively
  rkanban login --email ada@example.com

  # Log in from a script
  echo "$PASSWORD" | rkanban login --email ada@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, password, err := credentials()
		if err != nil {
			return err
		}
		if err := container.LoginUseCase.Execute(cmd.Context(), email, password); err != nil {
			return err
		}
		printer.Success("Logged in as %s", email)
		printer.Subtle("Token stored at %s", container.Tokens.Path())
		return nil
	},
}

// registerCmd creates an account
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account on the board server",
	Long: `Register a new account. Log in afterwards with 'rkanban login'.

Examples:
  rkanban register --email ada@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, password, err := credentials()
		if err != nil {
			return err
		}
		if err := container.RegisterUseCase.Execute(cmd.Context(), email, password); err != nil {
			return err
		}
		printer.Success("Registered %s", email)
		printer.Info("Run 'rkanban login --email %s' to sign in", email)
		return nil
	},
}

// logoutCmd forgets the stored token
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored login",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := container.LogoutUseCase.Execute(); err != nil {
			return fmt.Errorf("failed to log out: %w", err)
		}
		printer.Success("Logged out")
		return nil
	},
}

// credentials returns the flag values, prompting for what is missing
func credentials() (string, string, error) {
	reader := bufio.NewReader(os.Stdin)
	email := strings.TrimSpace(authEmail)
	if email == "" {
		fmt.Fprint(os.Stderr, "Email: ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", "", fmt.Errorf("failed to read email: %w", err)
		}
		email = strings.TrimSpace(line)
	}
	password := authPassword
	if password == "" {
		if stat, err := os.Stdin.Stat(); err == nil && stat.Mode()&os.ModeCharDevice != 0 {
			fmt.Fprint(os.Stderr, "Password: ")
		}
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", "", fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	return email, password, nil
}

func init() {
	for _, cmd := range []*cobra.Command{loginCmd, registerCmd} {
		cmd.Flags().StringVarP(&authEmail, "email", "e", "", "Account email")
		cmd.Flags().StringVarP(&authPassword, "password", "p", "", "Account password (read from stdin when omitted)")
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(logoutCmd)
}
