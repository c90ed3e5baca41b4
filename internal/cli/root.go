package cli

import (
	"log/slog"

	"github.com/alexanderramin/bbtree/internal/config"
	"github.com/alexanderramin/bbtree/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services and settings used by CLI commands.
type App struct {
	Convert service.ConvertService
	History service.HistoryService // nil when no history database is configured
	Config  config.Config
	// LogLevel is lowered to debug by --verbose. May be nil.
	LogLevel *slog.LevelVar
	// Interactive is set when stdout is a terminal and enables the live
	// view of "tree --follow".
	Interactive bool
}

// NewRootCmd creates the top-level "bbtree" command. Given a file argument
// and no subcommand it behaves like "bbtree convert".
func NewRootCmd(app *App) *cobra.Command {
	opts := &convertOptions{}

	root := &cobra.Command{
		Use:   "bbtree [vbcfile]",
		Short: "Convert branch-and-bound VBC logs into Graphviz search trees",
		Long: `bbtree replays a VBC tree log written by a branch-and-bound solver and
draws the search tree with Graphviz. Nodes are colored by their state and by
their bounds against the best known solution.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runConvert(cmd, app, opts, args[0])
		},
	}
	bindConvertFlags(root.Flags(), opts, app.Config)

	root.AddCommand(
		newConvertCmd(app),
		newTreeCmd(app),
		newHistoryCmd(app),
	)

	return root
}
