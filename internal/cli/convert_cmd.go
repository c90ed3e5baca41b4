package cli

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/alexanderramin/bbtree/internal/cli/formatter"
	"github.com/alexanderramin/bbtree/internal/config"
	"github.com/alexanderramin/bbtree/internal/contract"
	"github.com/alexanderramin/bbtree/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type convertOptions struct {
	output    string
	rankDir   string
	legend    bool
	delay     float64
	frequency int
	sense     string
	formats   []string
	noRender  bool
	follow    bool
	verbose   bool
}

func newConvertCmd(app *App) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <vbcfile>",
		Short: "Render a VBC log as a Graphviz search tree",
		Example: `  bbtree convert tree.vbc
  bbtree convert tree.vbc -f 50 -d 0.5 --format svg
  bbtree convert solver.vbc --follow -t min`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, app, opts, args[0])
		},
	}
	bindConvertFlags(cmd.Flags(), opts, app.Config)
	return cmd
}

// bindConvertFlags registers the conversion flags; config values become
// the flag defaults.
func bindConvertFlags(fs *pflag.FlagSet, o *convertOptions, cfg config.Config) {
	fs.StringVarP(&o.output, "output", "o", "", "Base name of generated files (default: the vbc file name)")
	fs.StringVarP(&o.rankDir, "rankdir", "r", cfg.RankDir, "Layout direction: TB, LR, BT or RL")
	fs.BoolVarP(&o.legend, "legend", "l", cfg.Legend, "Add a color legend to the graph")
	fs.Float64VarP(&o.delay, "delay", "d", 0, "Seconds to wait after each periodic snapshot")
	fs.IntVarP(&o.frequency, "frequency", "f", 0, "Render a snapshot every N records (0: final tree only)")
	fs.StringVarP(&o.sense, "probtype", "t", "", "Problem sense (min or max) for logs without U/L records")
	fs.StringVar(&o.sense, "sense", "", "Alias for --probtype")
	fs.StringSliceVar(&o.formats, "format", cfg.Formats, "Graphviz output format, repeatable")
	fs.BoolVar(&o.noRender, "no-render", false, "Only write the .dot file")
	fs.BoolVar(&o.follow, "follow", false, "Keep watching the log for appended records until interrupted")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "Log every applied record")
}

func (o *convertOptions) request(input string) (contract.ConvertRequest, error) {
	req := contract.NewConvertRequest(input)
	if o.output != "" {
		req.OutputBase = o.output
	}
	if o.sense != "" {
		s, err := domain.ParseSense(o.sense)
		if err != nil {
			return req, err
		}
		req.Sense = s
	}
	if math.IsNaN(o.delay) || math.IsInf(o.delay, 0) {
		return req, &domain.ConfigError{Msg: fmt.Sprintf("invalid delay %v", o.delay)}
	}
	req.RankDir = o.rankDir
	req.Legend = o.legend
	req.Delay = time.Duration(o.delay * float64(time.Second))
	req.Frequency = o.frequency
	req.Formats = o.formats
	req.NoRender = o.noRender
	req.Follow = o.follow
	return req, nil
}

func runConvert(cmd *cobra.Command, app *App, opts *convertOptions, input string) error {
	if opts.verbose && app.LogLevel != nil {
		app.LogLevel.Set(slog.LevelDebug)
	}
	req, err := opts.request(input)
	if err != nil {
		return err
	}
	resp, err := app.Convert.Convert(cmd.Context(), req)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatConvertSummary(resp))
	return nil
}
