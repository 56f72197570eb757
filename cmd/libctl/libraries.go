package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"libfront/internal/core/domain/models"
)

func newLibrariesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "libraries",
		Short: "Manage libraries",
	}
	cmd.AddCommand(newLibrariesListCmd(), newLibrariesAddCmd(), newLibrariesRemoveCmd())
	return cmd
}

func newLibrariesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List libraries",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			libraries, err := client.ListLibraries(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tLOCATION")
			for _, l := range libraries {
				fmt.Fprintf(w, "%s\t%s\t%s\n", l.ID, l.Name, l.Location)
			}
			return w.Flush()
		},
	}
}

func newLibrariesAddCmd() *cobra.Command {
	var in models.LibraryInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a library",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Name == "" {
				return fmt.Errorf("--name is required")
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			l, err := client.CreateLibrary(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Printf("Created library %s (%s)\n", l.ID, l.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "library name")
	cmd.Flags().StringVar(&in.Location, "location", "", "library location")
	cmd.Flags().StringVar(&in.Description, "description", "", "library description")
	return cmd
}

func newLibrariesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := client.DeleteLibrary(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted library %s\n", args[0])
			return nil
		},
	}
}
