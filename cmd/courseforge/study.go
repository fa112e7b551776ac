package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/courseforge/courseforge/internal/cli"
	"github.com/courseforge/courseforge/internal/course"
)

func newStudyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "study <file>",
		Short: "Study a course interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("os.ReadFile(%s) > %w", args[0], err)
			}

			parsed := course.ParseText(string(data))
			if len(parsed.Modules) == 0 {
				return fmt.Errorf("no modules found in %s", args[0])
			}

			return cli.NewStudySession(parsed).Run(cmd.Context())
		},
	}
}
