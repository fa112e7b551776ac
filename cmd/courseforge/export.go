package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/courseforge/courseforge/internal/pdf"
)

func newExportCommand() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export <file.md>",
		Short: "Export a course markdown file as PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := pdf.ExportFile(args[0], outputPath)
			if err != nil {
				return fmt.Errorf("pdf.ExportFile(%s) > %w", args[0], err)
			}

			fmt.Printf("PDF written to %s\n", written)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output PDF path")

	return cmd
}
