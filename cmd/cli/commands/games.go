package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/David-H-Afonso/gamesdatabase/internal/db/models"
)

func init() {
	gamesCmd.AddCommand(listGamesCmd)
	gamesCmd.AddCommand(getGameCmd)
	gamesCmd.AddCommand(createGameCmd)
	gamesCmd.AddCommand(deleteGameCmd)
	gamesCmd.AddCommand(exportGamesCmd)
	gamesCmd.AddCommand(importGamesCmd)

	listGamesCmd.Flags().Int("page", 1, "page number")
	listGamesCmd.Flags().Int("page-size", models.DefaultPageSize, "page size")
	listGamesCmd.Flags().String("search", "", "substring search on the game name")
	listGamesCmd.Flags().String("view", "", "apply a saved view by name")
	listGamesCmd.Flags().String("sort-by", "", "column to sort by")
	listGamesCmd.Flags().Bool("desc", false, "sort descending")

	getGameCmd.Flags().UintP("id", "i", 0, "ID of the game")
	_ = getGameCmd.MarkFlagRequired("id")

	createGameCmd.Flags().StringP("name", "n", "", "name of the game")
	_ = createGameCmd.MarkFlagRequired("name")

	deleteGameCmd.Flags().UintP("id", "i", 0, "ID of the game to delete")
	_ = deleteGameCmd.MarkFlagRequired("id")

	exportGamesCmd.Flags().StringP("output", "o", "games.csv", "file to write the CSV snapshot to")

	importGamesCmd.Flags().StringP("input", "f", "", "CSV snapshot file to import")
	_ = importGamesCmd.MarkFlagRequired("input")
}

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "Manage the game collection",
}

// GetGamesCmd returns the games command
func GetGamesCmd() *cobra.Command {
	return gamesCmd
}

var listGamesCmd = &cobra.Command{
	Use:   "list",
	Short: "List games",
	Long:  `List games with optional quick filters, or through a saved view.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")
		search, _ := cmd.Flags().GetString("search")
		view, _ := cmd.Flags().GetString("view")
		sortBy, _ := cmd.Flags().GetString("sort-by")
		desc, _ := cmd.Flags().GetBool("desc")

		params := &models.GameQueryParameters{
			Page:           page,
			PageSize:       pageSize,
			Search:         search,
			ViewName:       view,
			SortBy:         sortBy,
			SortDescending: desc,
		}

		response, err := apiClient.ListGames(context.Background(), params)
		if err != nil {
			return fmt.Errorf("error fetching games: %w", err)
		}
		return printJSON(response)
	},
}

var getGameCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a game",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetUint("id")

		response, err := apiClient.GetGame(context.Background(), id)
		if err != nil {
			return fmt.Errorf("error fetching game: %w", err)
		}
		return printJSON(response)
	},
}

var createGameCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a game",
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, _ := cmd.Flags().GetString("name")

		response, err := apiClient.CreateGame(context.Background(), &models.Game{Name: name})
		if err != nil {
			return fmt.Errorf("error creating game: %w", err)
		}
		return printJSON(response)
	},
}

var deleteGameCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a game",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetUint("id")

		if err := apiClient.DeleteGame(context.Background(), id); err != nil {
			return fmt.Errorf("error deleting game: %w", err)
		}
		fmt.Println("Game deleted successfully")
		return nil
	},
}

var exportGamesCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the collection as CSV",
	RunE: func(cmd *cobra.Command, _ []string) error {
		output, _ := cmd.Flags().GetString("output")

		snapshot, err := apiClient.ExportCSV(context.Background())
		if err != nil {
			return fmt.Errorf("error exporting games: %w", err)
		}
		if err := os.WriteFile(output, snapshot, 0o644); err != nil {
			return fmt.Errorf("error writing snapshot: %w", err)
		}
		fmt.Printf("Exported collection to %s\n", output)
		return nil
	},
}

var importGamesCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a CSV snapshot",
	RunE: func(cmd *cobra.Command, _ []string) error {
		input, _ := cmd.Flags().GetString("input")

		snapshot, err := os.ReadFile(input)
		if err != nil {
			return fmt.Errorf("error reading snapshot: %w", err)
		}
		result, err := apiClient.ImportCSV(context.Background(), snapshot)
		if err != nil {
			return fmt.Errorf("error importing games: %w", err)
		}
		fmt.Printf("Imported %d games, skipped %d\n", result.Imported, result.Skipped)
		return nil
	},
}
