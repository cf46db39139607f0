package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verifyPurgeOrphans bool

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [label]",
	Short: "Verify the content integrity of a stored family",
	Long: `Reconciles a family's records against object storage: every record must
have readable content whose checksum matches the one recorded at store time.
With --purge-orphans, objects without a node row are deleted afterwards.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runVerify(cmd.Context(), args[0])
	},
}

func init() {
	verifyCmd.Flags().BoolVar(&verifyPurgeOrphans, "purge-orphans", false, "delete storage objects that have no node row")
	RootCmd.AddCommand(verifyCmd)
}

func runVerify(ctx context.Context, label string) {
	app, err := setup()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	app.logger.Info("Verifying family...", zap.String("label", label))
	report, err := app.service.VerifyFamily(ctx, label)
	if err != nil {
		app.logger.Fatal("Verify failed", zap.Error(err))
	}

	status := "PASS"
	statusColor := "\033[32m" // Green
	if !report.Clean() {
		status = "FAIL"
		statusColor = "\033[31m" // Red
	}
	resetColor := "\033[0m"

	fmt.Println("\n--- Family Verify Report ---")
	fmt.Printf("Label:          %s\n", report.Label)
	fmt.Printf("Records:        %d\n", report.TotalRecords)
	fmt.Printf("Verified:       %d\n", report.VerifiedRecords)
	fmt.Printf("Status:         %s%s%s\n", statusColor, status, resetColor)

	if len(report.MissingContent) > 0 {
		fmt.Println("\nMissing content:")
		for _, m := range report.MissingContent {
			fmt.Printf("- %s\n", m)
		}
	}
	if len(report.ChecksumErrors) > 0 {
		fmt.Println("\nChecksum mismatches:")
		for _, m := range report.ChecksumErrors {
			fmt.Printf("- %s\n", m)
		}
	}
	fmt.Printf("Took:           %s\n", report.ExecutionTime)
	fmt.Println("----------------------------")

	if verifyPurgeOrphans {
		purgeOrphans(ctx, app)
	}
}

func purgeOrphans(ctx context.Context, app *appContext) {
	orphans, err := app.service.Repo().OrphanedObjects(ctx)
	if err != nil {
		app.logger.Fatal("Orphan scan failed", zap.Error(err))
	}
	if len(orphans) == 0 {
		fmt.Println("No orphaned objects found.")
		return
	}

	for _, key := range orphans {
		if err := app.service.Repo().RemoveObject(ctx, key); err != nil {
			app.logger.Fatal("Orphan purge failed", zap.String("key", key), zap.Error(err))
		}
		app.logger.Info("Removed orphaned object", zap.String("key", key))
	}
	fmt.Printf("Purged %d orphaned object(s).\n", len(orphans))
}
