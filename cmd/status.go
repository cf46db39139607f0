package cmd

import (
	"context"
	"fmt"
	"os"

	"pseudo-manager/core/database"

	"github.com/spf13/cobra"
)

// graphTables are the tables the graph store expects after migration.
var graphTables = []string{"node_groups", "nodes", "group_nodes"}

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of the backing services",
	Long:  `Checks database connectivity, the graph schema and object storage access.`,
	Run: func(cmd *cobra.Command, args []string) {
		runStatus(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(statusCmd)
}

func runStatus(ctx context.Context) {
	app, err := setup()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Println("\n--- Pseudo Manager Status ---")
	fmt.Printf("Database:       %s (%s)\n", app.cfg.Database.Name, app.cfg.Database.Driver)

	for _, table := range graphTables {
		if !database.TableExists(app.db, table) {
			fmt.Printf("  %-14s MISSING\n", table)
			continue
		}
		columns, err := database.GetTableColumns(app.db, table)
		if err != nil {
			fmt.Printf("  %-14s error: %v\n", table, err)
			continue
		}
		fmt.Printf("  %-14s %d columns\n", table, len(columns))
	}

	exists, err := app.client.BucketExists(ctx, app.cfg.Storage.Bucket)
	switch {
	case err != nil:
		fmt.Printf("Storage:        error: %v\n", err)
	case exists:
		fmt.Printf("Storage:        bucket %q reachable\n", app.cfg.Storage.Bucket)
	default:
		fmt.Printf("Storage:        bucket %q missing (run install to create it)\n", app.cfg.Storage.Bucket)
	}
	fmt.Println("-----------------------------")
}
