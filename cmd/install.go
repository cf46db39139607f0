package cmd

import (
	"context"
	"fmt"
	"os"

	"pseudo-manager/core/storage"
	"pseudo-manager/feature/family"
	"pseudo-manager/feature/family/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	installDescription string
	installFormat      string
)

// installCmd represents the install command
var installCmd = &cobra.Command{
	Use:   "install [dirpath] [label]",
	Short: "Create a new family from a directory of pseudo potential files",
	Long: `Parses every file in the directory into a pseudo potential record,
validates the set (one record per element) and stores the family with its
records in the graph store and object storage.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runInstall(cmd.Context(), args[0], args[1])
	},
}

func init() {
	installCmd.Flags().StringVarP(&installDescription, "description", "d", "", "description of the family")
	installCmd.Flags().StringVarP(&installFormat, "format", "f", models.FormatUPF, "record format accepted by the family")
	RootCmd.AddCommand(installCmd)
}

func runInstall(ctx context.Context, dirpath, label string) {
	app, err := setup()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	// Make sure the content bucket exists before the first upload.
	if err := storage.EnsureBucket(ctx, app.client, app.cfg.Storage.Bucket, app.cfg.Storage.Region); err != nil {
		app.logger.Fatal("Bucket bootstrap failed", zap.Error(err))
	}

	app.logger.Info("Installing family...",
		zap.String("label", label),
		zap.String("dirpath", dirpath),
		zap.String("format", installFormat),
	)

	detail, err := app.service.CreateFamily(ctx, dirpath, family.Definition{
		Label:       label,
		Description: installDescription,
		Format:      installFormat,
	})
	if err != nil {
		app.logger.Fatal("Install failed", zap.Error(err))
	}

	// Pretty Console Output
	fmt.Println("\n--- Family Installed ---")
	fmt.Printf("Label:          %s\n", detail.Label)
	if detail.Description != "" {
		fmt.Printf("Description:    %s\n", detail.Description)
	}
	fmt.Printf("Format:         %s\n", detail.Format)
	fmt.Printf("Records:        %d\n", detail.RecordCount)
	fmt.Printf("Elements:       %v\n", detail.Elements)
	fmt.Println("------------------------")
}
