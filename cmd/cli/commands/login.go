package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	loginCmd.Flags().StringP("username", "u", "", "username to authenticate as")
	loginCmd.Flags().StringP("password", "p", "", "password")
	_ = loginCmd.MarkFlagRequired("username")
	_ = loginCmd.MarkFlagRequired("password")
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the API",
	Long:  "Authenticate against the API and store the issued token for later commands.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		response, err := apiClient.Login(context.Background(), username, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		fmt.Printf("Logged in as %s (%s)\n", response.Username, response.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the stored token",
	RunE: func(_ *cobra.Command, _ []string) error {
		apiClient.Logout()
		fmt.Println("Logged out")
		return nil
	},
}

// GetLoginCmd returns the login command
func GetLoginCmd() *cobra.Command {
	return loginCmd
}

func init() {
	RootCmd.AddCommand(logoutCmd)
}
