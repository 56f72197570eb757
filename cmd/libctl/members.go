package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"libfront/internal/core/domain/models"
)

func newMembersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Manage members",
	}
	cmd.AddCommand(newMembersListCmd(), newMembersAddCmd(), newMembersRemoveCmd())
	return cmd
}

func newMembersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List members",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			members, err := client.ListMembers(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE")
			for _, m := range members {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.Name, m.Email, m.Phone)
			}
			return w.Flush()
		},
	}
}

func newMembersAddCmd() *cobra.Command {
	var in models.MemberInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a member",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Name == "" || in.Email == "" {
				return fmt.Errorf("--name and --email are required")
			}

			password, err := readPassword("Initial password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			in.Password = password

			client, err := newClient()
			if err != nil {
				return err
			}

			m, err := client.CreateMember(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Printf("Created member %s (%s)\n", m.ID, m.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "member name")
	cmd.Flags().StringVar(&in.Email, "email", "", "member email")
	cmd.Flags().StringVar(&in.Phone, "phone", "", "member phone")
	return cmd
}

func newMembersRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := client.DeleteMember(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted member %s\n", args[0])
			return nil
		},
	}
}
