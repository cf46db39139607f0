package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var familyElement string

// familyCmd represents the family inspection command
var familyCmd = &cobra.Command{
	Use:   "family [label]",
	Short: "View the contents of a stored family",
	Long: `Shows the summary of a stored family: its format, description and the
elements it defines a pseudo potential for. With --element, looks up the
record for a single element instead.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runFamilyDetail(cmd.Context(), args[0])
	},
}

func init() {
	familyCmd.Flags().StringVarP(&familyElement, "element", "e", "", "show the record for a single element")
	RootCmd.AddCommand(familyCmd)
}

func runFamilyDetail(ctx context.Context, label string) {
	app, err := setup()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if familyElement != "" {
		record, err := app.service.GetPseudo(ctx, label, familyElement)
		if err != nil {
			app.logger.Fatal("Pseudo lookup failed", zap.Error(err))
		}

		fmt.Println("\n--- Pseudo Potential ---")
		fmt.Printf("Family:         %s\n", label)
		fmt.Printf("Element:        %s\n", record.Element)
		fmt.Printf("Filename:       %s\n", record.Filename)
		fmt.Printf("Format:         %s\n", record.Format)
		fmt.Printf("MD5:            %s\n", record.MD5)
		fmt.Printf("Size:           %d bytes\n", record.Size)
		fmt.Printf("Node ID:        %s\n", record.NodeID)
		fmt.Println("------------------------")
		return
	}

	detail, err := app.service.GetFamilyDetail(ctx, label)
	if err != nil {
		app.logger.Fatal("Family detail failed", zap.Error(err))
	}

	fmt.Println("\n--- Family Detail ---")
	fmt.Printf("Label:          %s\n", detail.Label)
	if detail.Description != "" {
		fmt.Printf("Description:    %s\n", detail.Description)
	}
	fmt.Printf("Format:         %s\n", detail.Format)
	fmt.Printf("Records:        %d\n", detail.RecordCount)
	fmt.Printf("Elements:       %v\n", detail.Elements)
	fmt.Println("---------------------")
}
