package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/bbtree/internal/cli/formatter"
	"github.com/alexanderramin/bbtree/internal/domain"
	"github.com/spf13/cobra"
)

var errHistoryDisabled = &domain.ConfigError{
	Msg: "run history is disabled; set db_path in the config file or BBTREE_DB",
}

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List recorded conversions, or show one with its snapshots",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.History == nil {
				return errHistoryDisabled
			}
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				run, snaps, err := app.History.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.FormatRun(run, snaps))
				return nil
			}

			runs, err := app.History.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatHistory(runs, time.Now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	return cmd
}
