// Copyright (c) 2026 Pendataan Akun Team
// Pendataan Akun - reusable account readiness tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Harisproject21/Pendataan-Akun/internal/core"
	"github.com/Harisproject21/Pendataan-Akun/internal/i18n"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <email> <used-date>",
		Short: "Add an account",
		Long: `Adds an account. The email must end with @gmail.com and the used date
must be written as YYYY-MM-DD. The ready date is computed automatically.`,
		Example: `  pendataan-akun add "Alice" alice@gmail.com 2024-01-20`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := a.session.AddAccount(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("msg.added", acc.String(), acc.ReadyDate))
			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid account id %q: %w", args[0], err)
			}
			out := cmd.OutOrStdout()

			var label string
			for _, acc := range a.store.Accounts() {
				if acc.ID == id {
					label = acc.String()
					break
				}
			}
			if label == "" {
				fmt.Fprintln(out, i18n.T("cli.not_found", id))
				return nil
			}

			if !yes && isTerminal(int(os.Stdin.Fd())) {
				fmt.Fprint(out, i18n.T("cli.confirm_delete", id, label))
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, _ := reader.ReadString('\n')
				answer = strings.ToLower(strings.TrimSpace(answer))
				if answer != "y" && answer != "yes" {
					fmt.Fprintln(out, i18n.T("cli.delete_aborted"))
					return nil
				}
			}

			if err := a.session.DeleteAccount(cmd.Context(), id); err != nil {
				if errors.Is(err, core.ErrNotFound) {
					fmt.Fprintln(out, i18n.T("cli.not_found", id))
					return nil
				}
				return err
			}
			fmt.Fprintln(out, i18n.T("cli.deleted", id))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking for confirmation")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var search, filter string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List accounts with readiness status",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.session.SetSearch(search)
			if err := a.session.SetFilterMode(filter); err != nil {
				return err
			}
			return listAccounts(cmd, a.session)
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive substring matched against name and email")
	cmd.Flags().StringVarP(&filter, "filter", "f", string(core.FilterAll), "Readiness filter: all, ready or notready")
	return cmd
}

// listAccounts prints the session's visible accounts as an aligned table.
func listAccounts(cmd *cobra.Command, s *core.Session) error {
	out := cmd.OutOrStdout()
	visible := s.Visible()
	if s.Store().Len() == 0 {
		fmt.Fprintln(out, i18n.T("msg.empty"))
		return nil
	}
	if len(visible) == 0 {
		fmt.Fprintln(out, i18n.T("msg.no_match"))
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\t%s\t%s\t%s\t%s\t%s\n",
		i18n.T("col.name"), i18n.T("col.email"), i18n.T("col.used_date"),
		i18n.T("col.ready_date"), i18n.T("col.status"))
	for _, acc := range visible {
		status := i18n.T("status.not_ready")
		if s.IsReady(acc) {
			status = i18n.T("status.ready")
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", acc.ID, acc.Name, acc.Email, acc.UsedDate, acc.ReadyDate, status)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out, i18n.T("msg.count", len(visible), s.Store().Len()))
	return nil
}
