package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Zel143/fittrack/internal/store"
)

var registerCmd = &cobra.Command{
	Use:   "register <username> <email> <password>",
	Short: "Create a new account",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := st.Register(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			var uniq *store.UniquenessError
			if errors.As(err, &uniq) {
				color.Red("✗ That %s is already taken", uniq.Column)
				return err
			}
			return err
		}
		color.Green("✓ Registered %s (user id %d)", user.Username, user.ID)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <username> <password>",
	Short: "Verify credentials and print the account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := st.Authenticate(cmd.Context(), args[0], args[1])
		if err != nil {
			if errors.Is(err, store.ErrInvalidCredentials) {
				color.Red("✗ Invalid credentials")
			}
			return err
		}
		color.Green("✓ Welcome back, %s", user.Username)
		fmt.Printf("  user id: %d\n", user.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
}
