package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"libfront/internal/core/domain/models"
)

func newBooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Manage books",
	}
	cmd.AddCommand(newBooksListCmd(), newBooksGetCmd(), newBooksAddCmd(), newBooksRemoveCmd())
	return cmd
}

func newBooksListCmd() *cobra.Command {
	var filter models.BookFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			books, err := client.ListBooks(cmd.Context(), filter)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tAVAILABLE\tLIBRARY")
			for _, b := range books {
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n", b.ID, b.Title, b.Author, b.Available, b.LibraryID)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&filter.Title, "title", "", "filter by title")
	cmd.Flags().StringVar(&filter.Author, "author", "", "filter by author")
	cmd.Flags().StringVar(&filter.LibraryID, "library", "", "filter by library id")
	return cmd
}

func newBooksGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			b, err := client.GetBook(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("ID:        %s\n", b.ID)
			fmt.Printf("Title:     %s\n", b.Title)
			fmt.Printf("Author:    %s\n", b.Author)
			if b.ISBN != "" {
				fmt.Printf("ISBN:      %s\n", b.ISBN)
			}
			fmt.Printf("Available: %t\n", b.Available)
			fmt.Printf("Library:   %s\n", b.LibraryID)
			return nil
		},
	}
}

func newBooksAddCmd() *cobra.Command {
	var in models.BookInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to a library",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Title == "" || in.Author == "" || in.LibraryID == "" {
				return fmt.Errorf("--title, --author and --library are required")
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			b, err := client.CreateBook(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Printf("Created book %s (%s)\n", b.ID, b.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "book title")
	cmd.Flags().StringVar(&in.Author, "author", "", "book author")
	cmd.Flags().StringVar(&in.ISBN, "isbn", "", "ISBN")
	cmd.Flags().StringVar(&in.LibraryID, "library", "", "owning library id")
	return cmd
}

func newBooksRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := client.DeleteBook(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted book %s\n", args[0])
			return nil
		},
	}
}
