package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/David-H-Afonso/gamesdatabase/internal/filter"
	"github.com/David-H-Afonso/gamesdatabase/pkg/api/v1/client"
)

func init() {
	viewsCmd.AddCommand(listViewsCmd)
	viewsCmd.AddCommand(createViewCmd)
	viewsCmd.AddCommand(deleteViewCmd)
	viewsCmd.AddCommand(reorderViewsCmd)

	createViewCmd.Flags().StringP("name", "n", "", "name of the view")
	createViewCmd.Flags().StringP("config", "c", "", "JSON file holding the view configuration")
	createViewCmd.Flags().Bool("public", false, "make the view visible to other users")
	_ = createViewCmd.MarkFlagRequired("name")

	deleteViewCmd.Flags().UintP("id", "i", 0, "ID of the view to delete")
	_ = deleteViewCmd.MarkFlagRequired("id")

	reorderViewsCmd.Flags().UintSlice("ids", nil, "view IDs in their new display order")
	_ = reorderViewsCmd.MarkFlagRequired("ids")
}

var viewsCmd = &cobra.Command{
	Use:   "views",
	Short: "Manage saved views",
}

// GetViewsCmd returns the views command
func GetViewsCmd() *cobra.Command {
	return viewsCmd
}

var listViewsCmd = &cobra.Command{
	Use:   "list",
	Short: "List views",
	RunE: func(_ *cobra.Command, _ []string) error {
		response, err := apiClient.ListViews(context.Background())
		if err != nil {
			return fmt.Errorf("error fetching views: %w", err)
		}
		return printJSON(response)
	},
}

var createViewCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a view",
	Long:  "Create a named view, optionally with a filter/sort configuration read from a JSON file.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, _ := cmd.Flags().GetString("name")
		configPath, _ := cmd.Flags().GetString("config")
		public, _ := cmd.Flags().GetBool("public")

		req := &client.ViewRequest{Name: name, IsPublic: public}
		if configPath != "" {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return fmt.Errorf("error reading configuration: %w", err)
			}
			var cfg filter.ViewConfiguration
			if err := json.Unmarshal(data, &cfg); err != nil {
				return fmt.Errorf("error parsing configuration: %w", err)
			}
			req.Configuration = &cfg
		}

		response, err := apiClient.CreateView(context.Background(), req)
		if err != nil {
			return fmt.Errorf("error creating view: %w", err)
		}
		return printJSON(response)
	},
}

var deleteViewCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a view",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetUint("id")

		if err := apiClient.DeleteView(context.Background(), id); err != nil {
			return fmt.Errorf("error deleting view: %w", err)
		}
		fmt.Println("View deleted successfully")
		return nil
	},
}

var reorderViewsCmd = &cobra.Command{
	Use:   "reorder",
	Short: "Reorder views",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ids, _ := cmd.Flags().GetUintSlice("ids")

		if err := apiClient.ReorderViews(context.Background(), ids); err != nil {
			return fmt.Errorf("error reordering views: %w", err)
		}
		fmt.Println("Views reordered successfully")
		return nil
	},
}
