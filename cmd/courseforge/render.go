package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/courseforge/courseforge/internal/course"
)

func newRenderCommand() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "render <file.json>",
		Short: "Render generated course JSON as course markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("os.ReadFile(%s) > %w", args[0], err)
			}

			var ai course.AIGeneratedCourse
			if err := json.Unmarshal(data, &ai); err != nil {
				return fmt.Errorf("json.Unmarshal > %w", err)
			}

			return writeOutput(outputPath, course.Serialize(course.Normalize(ai)))
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write markdown to a file instead of stdout")

	return cmd
}
