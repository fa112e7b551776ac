package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/courseforge/courseforge/internal/course"
)

func newParseCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a course markdown file and summarize its contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("os.ReadFile(%s) > %w", args[0], err)
			}

			parsed := course.ParseText(string(data))

			if asJSON {
				encoded, err := json.MarshalIndent(parsed, "", "  ")
				if err != nil {
					return fmt.Errorf("json.MarshalIndent > %w", err)
				}
				fmt.Println(string(encoded))
				return nil
			}

			bold := color.New(color.Bold)
			if _, err := bold.Printf("%s\n", parsed.Title); err != nil {
				return err
			}
			for _, module := range parsed.Modules {
				fmt.Printf("  %s: %d flashcards, %d quiz questions\n",
					module.Title, len(module.Flashcards), len(module.Quiz))
			}
			fmt.Printf("%d modules in total\n", len(parsed.Modules))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the parsed course as JSON")

	return cmd
}
