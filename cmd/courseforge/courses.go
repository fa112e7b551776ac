package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/courseforge/courseforge/internal/store"
)

func newCoursesCommand() *cobra.Command {
	coursesCmd := &cobra.Command{
		Use:   "courses",
		Short: "Inspect stored courses",
	}

	coursesCmd.AddCommand(newCoursesListCommand())
	coursesCmd.AddCommand(newCoursesShowCommand())

	return coursesCmd
}

func newCoursesListCommand() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's stored courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			entries, err := store.New(cfg.Store.Directory).List(userID)
			if err != nil {
				return fmt.Errorf("store.List(%s) > %w", userID, err)
			}

			if len(entries) == 0 {
				fmt.Println("No stored courses.")
				return nil
			}
			for _, entry := range entries {
				fmt.Printf("%s\t%s\t%s\n", entry.CreatedAt.Format("2006-01-02 15:04"), entry.Filename, entry.Title)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "User id")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newCoursesShowCommand() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a stored course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			markdown, err := store.New(cfg.Store.Directory).Get(userID, args[0])
			if err != nil {
				return fmt.Errorf("store.Get(%s, %s) > %w", userID, args[0], err)
			}

			fmt.Print(markdown)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "User id")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
