package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/bbtree/internal/cli/formatter"
	"github.com/alexanderramin/bbtree/internal/contract"
	"github.com/alexanderramin/bbtree/internal/domain"
	"github.com/alexanderramin/bbtree/internal/tree"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTreeCmd(app *App) *cobra.Command {
	var (
		sense  string
		follow bool
	)

	cmd := &cobra.Command{
		Use:   "tree <vbcfile>",
		Short: "Print the final search tree in the terminal",
		Long: `Print the search tree of a VBC log in the terminal. With --follow the
tree is kept up to date while the solver appends to the log; on a terminal
this opens a scrollable live view, otherwise the tree is printed once the
log is closed or the command is interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.BuildRequest{InputPath: args[0]}
			if sense != "" {
				s, err := domain.ParseSense(sense)
				if err != nil {
					return err
				}
				req.Sense = s
			}

			var (
				snap *tree.Snapshot
				err  error
			)
			switch {
			case follow && app.Interactive:
				snap, err = runLiveTree(cmd.Context(), app, req, cmd.OutOrStdout())
			case follow:
				snap, err = app.Convert.Watch(cmd.Context(), req, nil)
			default:
				snap, err = app.Convert.Build(cmd.Context(), req)
			}
			if err != nil {
				return err
			}

			printTree(cmd.OutOrStdout(), *snap)
			return nil
		},
	}

	cmd.Flags().StringVarP(&sense, "probtype", "t", "", "Problem sense (min or max) for logs without U/L records")
	cmd.Flags().BoolVar(&follow, "follow", false, "Keep watching the log and update the tree as records are appended")
	return cmd
}

func printTree(out io.Writer, snap tree.Snapshot) {
	fmt.Fprint(out, formatter.FormatSearchTree(snap))
	fmt.Fprintf(out, "\n%s\n", treeSummary(snap))
}

func treeSummary(snap tree.Snapshot) string {
	return fmt.Sprintf("%s %d records, %d nodes, %d feasible, incumbent %s",
		formatter.SenseBadge(snap.Sense), snap.Records, len(snap.Nodes), snap.Feasible(),
		formatter.Bold(domain.Nice(snap.Incumbent)))
}

// runLiveTree watches the log in the background and shows every new state
// in a full-screen view until the user quits or the watch ends.
func runLiveTree(ctx context.Context, app *App, req contract.BuildRequest, out io.Writer) (*tree.Snapshot, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newLiveTreeModel(req.InputPath),
		tea.WithContext(ctx),
		tea.WithOutput(out),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	var (
		final    *tree.Snapshot
		watchErr error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		final, watchErr = app.Convert.Watch(ctx, req, func(s tree.Snapshot) {
			p.Send(snapshotMsg{snap: s})
		})
		p.Send(watchDoneMsg{err: watchErr})
	}()

	_, runErr := p.Run()
	cancel()
	<-done

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return nil, fmt.Errorf("live view: %w", runErr)
	}
	if watchErr != nil {
		return nil, watchErr
	}
	return final, nil
}
