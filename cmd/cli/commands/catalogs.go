package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/David-H-Afonso/gamesdatabase/internal/db/models"
)

// catalogOps adapts the typed per-catalog client methods into one shape the
// CLI can dispatch on.
type catalogOps struct {
	list    func(ctx context.Context) (any, error)
	create  func(ctx context.Context, base models.CatalogBase) (any, error)
	delete  func(ctx context.Context, id uint) error
	reorder func(ctx context.Context, ids []uint) error
}

// catalogTypes maps the CLI catalog argument onto the client methods
var catalogTypes = map[string]catalogOps{
	"platforms": {
		list: func(ctx context.Context) (any, error) { return apiClient.ListPlatforms(ctx) },
		create: func(ctx context.Context, base models.CatalogBase) (any, error) {
			return apiClient.CreatePlatform(ctx, &models.Platform{CatalogBase: base})
		},
		delete:  func(ctx context.Context, id uint) error { return apiClient.DeletePlatform(ctx, id) },
		reorder: func(ctx context.Context, ids []uint) error { return apiClient.ReorderPlatforms(ctx, ids) },
	},
	"statuses": {
		list: func(ctx context.Context) (any, error) { return apiClient.ListStatuses(ctx) },
		create: func(ctx context.Context, base models.CatalogBase) (any, error) {
			return apiClient.CreateStatus(ctx, &models.Status{CatalogBase: base})
		},
		delete:  func(ctx context.Context, id uint) error { return apiClient.DeleteStatus(ctx, id) },
		reorder: func(ctx context.Context, ids []uint) error { return apiClient.ReorderStatuses(ctx, ids) },
	},
	"play-with": {
		list: func(ctx context.Context) (any, error) { return apiClient.ListPlayWith(ctx) },
		create: func(ctx context.Context, base models.CatalogBase) (any, error) {
			return apiClient.CreatePlayWith(ctx, &models.PlayWith{CatalogBase: base})
		},
		delete:  func(ctx context.Context, id uint) error { return apiClient.DeletePlayWith(ctx, id) },
		reorder: func(ctx context.Context, ids []uint) error { return apiClient.ReorderPlayWith(ctx, ids) },
	},
	"played-statuses": {
		list: func(ctx context.Context) (any, error) { return apiClient.ListPlayedStatuses(ctx) },
		create: func(ctx context.Context, base models.CatalogBase) (any, error) {
			return apiClient.CreatePlayedStatus(ctx, &models.PlayedStatus{CatalogBase: base})
		},
		delete:  func(ctx context.Context, id uint) error { return apiClient.DeletePlayedStatus(ctx, id) },
		reorder: func(ctx context.Context, ids []uint) error { return apiClient.ReorderPlayedStatuses(ctx, ids) },
	},
}

func catalogFor(name string) (catalogOps, error) {
	ops, ok := catalogTypes[name]
	if !ok {
		return catalogOps{}, fmt.Errorf("unknown catalog %q (want platforms, statuses, play-with or played-statuses)", name)
	}
	return ops, nil
}

func init() {
	catalogsCmd.AddCommand(listCatalogCmd)
	catalogsCmd.AddCommand(createCatalogCmd)
	catalogsCmd.AddCommand(deleteCatalogCmd)
	catalogsCmd.AddCommand(reorderCatalogCmd)

	createCatalogCmd.Flags().StringP("name", "n", "", "name of the item")
	createCatalogCmd.Flags().String("color", "", "display color")
	_ = createCatalogCmd.MarkFlagRequired("name")

	deleteCatalogCmd.Flags().UintP("id", "i", 0, "ID of the item to delete")
	_ = deleteCatalogCmd.MarkFlagRequired("id")

	reorderCatalogCmd.Flags().UintSlice("ids", nil, "item IDs in their new display order")
	_ = reorderCatalogCmd.MarkFlagRequired("ids")
}

var catalogsCmd = &cobra.Command{
	Use:   "catalogs",
	Short: "Manage catalogs (platforms, statuses, play-with, played-statuses)",
}

// GetCatalogsCmd returns the catalogs command
func GetCatalogsCmd() *cobra.Command {
	return catalogsCmd
}

var listCatalogCmd = &cobra.Command{
	Use:   "list <catalog>",
	Short: "List catalog items",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		ops, err := catalogFor(args[0])
		if err != nil {
			return err
		}
		response, err := ops.list(context.Background())
		if err != nil {
			return fmt.Errorf("error fetching catalog: %w", err)
		}
		return printJSON(response)
	},
}

var createCatalogCmd = &cobra.Command{
	Use:   "create <catalog>",
	Short: "Create a catalog item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ops, err := catalogFor(args[0])
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("name")
		color, _ := cmd.Flags().GetString("color")

		response, err := ops.create(context.Background(), models.CatalogBase{
			Name:     name,
			Color:    color,
			IsActive: true,
		})
		if err != nil {
			return fmt.Errorf("error creating catalog item: %w", err)
		}
		return printJSON(response)
	},
}

var deleteCatalogCmd = &cobra.Command{
	Use:   "delete <catalog>",
	Short: "Delete a catalog item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ops, err := catalogFor(args[0])
		if err != nil {
			return err
		}
		id, _ := cmd.Flags().GetUint("id")

		if err := ops.delete(context.Background(), id); err != nil {
			return fmt.Errorf("error deleting catalog item: %w", err)
		}
		fmt.Println("Catalog item deleted successfully")
		return nil
	},
}

var reorderCatalogCmd = &cobra.Command{
	Use:   "reorder <catalog>",
	Short: "Reorder catalog items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ops, err := catalogFor(args[0])
		if err != nil {
			return err
		}
		ids, _ := cmd.Flags().GetUintSlice("ids")

		if err := ops.reorder(context.Background(), ids); err != nil {
			return fmt.Errorf("error reordering catalog: %w", err)
		}
		fmt.Println("Catalog reordered successfully")
		return nil
	},
}
