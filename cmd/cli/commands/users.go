package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/David-H-Afonso/gamesdatabase/pkg/api/v1/client"
)

func init() {
	userCmd.AddCommand(listUsersCmd)
	userCmd.AddCommand(createUserCmd)
	userCmd.AddCommand(deleteUserCmd)

	createUserCmd.Flags().StringP("username", "u", "", "username of the user to be created")
	createUserCmd.Flags().StringP("password", "p", "", "password for the new user")
	createUserCmd.Flags().StringP("role", "r", "standard", "role of the new user (standard or admin)")
	_ = createUserCmd.MarkFlagRequired("username")
	_ = createUserCmd.MarkFlagRequired("password")

	deleteUserCmd.Flags().UintP("id", "i", 0, "ID of the user to be deleted")
	_ = deleteUserCmd.MarkFlagRequired("id")
}

var userCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage users (admin only)",
}

// GetUsersCmd returns the users command
func GetUsersCmd() *cobra.Command {
	return userCmd
}

var listUsersCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE: func(_ *cobra.Command, _ []string) error {
		response, err := apiClient.ListUsers(context.Background())
		if err != nil {
			return fmt.Errorf("error fetching users: %w", err)
		}
		return printJSON(response)
	},
}

var createUserCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	RunE: func(cmd *cobra.Command, _ []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")
		role, _ := cmd.Flags().GetString("role")

		response, err := apiClient.CreateUser(context.Background(), &client.UserRequest{
			Username: username,
			Password: password,
			Role:     role,
		})
		if err != nil {
			return fmt.Errorf("error creating a user: %w", err)
		}
		return printJSON(response)
	},
}

var deleteUserCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a user",
	RunE: func(cmd *cobra.Command, _ []string) error {
		userID, _ := cmd.Flags().GetUint("id")

		if err := apiClient.DeleteUser(context.Background(), userID); err != nil {
			return fmt.Errorf("error while deleting user: %w", err)
		}
		fmt.Println("User deleted successfully")
		return nil
	},
}
