package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"libfront/internal/core/domain/models"
)

func newLoansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loans",
		Short: "Manage loans",
	}
	cmd.AddCommand(newLoansListCmd(), newLoansCheckoutCmd(), newLoansReturnCmd())
	return cmd
}

func newLoansListCmd() *cobra.Command {
	var filter models.LoanFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List loans, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			loans, err := client.ListLoans(cmd.Context(), filter)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tBOOK\tMEMBER\tLOANED\tSTATUS")
			for _, l := range loans {
				status := "open"
				if l.Returned {
					status = "returned"
					if l.ReturnDate != nil {
						status = "returned " + l.ReturnDate.Format("2006-01-02")
					}
				}
				book := l.BookID
				if l.Book != nil {
					book = l.Book.Title
				}
				member := l.MemberID
				if l.Member != nil {
					member = l.Member.Name
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", l.ID, book, member, l.LoanDate.Format("2006-01-02"), status)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&filter.BookID, "book", "", "filter by book id")
	cmd.Flags().StringVar(&filter.MemberID, "member", "", "filter by member id")
	cmd.Flags().BoolVar(&filter.ActiveOnly, "active", false, "only open loans")
	return cmd
}

func newLoansCheckoutCmd() *cobra.Command {
	var in models.LoanInput

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Loan a book to a member",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.BookID == "" || in.MemberID == "" {
				return fmt.Errorf("--book and --member are required")
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			l, err := client.CreateLoan(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Printf("Created loan %s\n", l.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.BookID, "book", "", "book id")
	cmd.Flags().StringVar(&in.MemberID, "member", "", "member id")
	return cmd
}

func newLoansReturnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "return <id>",
		Short: "Close an open loan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			if _, err := client.ReturnLoan(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Returned loan %s\n", args[0])
			return nil
		},
	}
}
