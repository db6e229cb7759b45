package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialreach/builder"
	"github.com/katalvlaran/socialreach/config"
	"github.com/katalvlaran/socialreach/ingest"
	"github.com/katalvlaran/socialreach/internal/logging"
	"github.com/katalvlaran/socialreach/metrics"
	"github.com/katalvlaran/socialreach/pipeline"
	"github.com/katalvlaran/socialreach/reach"
	"github.com/katalvlaran/socialreach/report"
)

// Flag names shared between commands and config overrides.
const (
	flagConfig          = "config"
	flagLogLevel        = "log-level"
	flagLogFormat       = "log-format"
	flagMetricsTextfile = "metrics-textfile"
	flagNodes           = "nodes"
	flagEdges           = "edges"
	flagStart           = "start"
	flagMaxHops         = "max-hops"
	flagTieBreak        = "tie-break"
	flagCacheSize       = "cache-size"
	flagOutput          = "output"
)

// app holds state shared by the command tree for one invocation.
type app struct {
	out        io.Writer
	configPath string
	cfg        *config.Config
	metrics    *metrics.Metrics
}

func newApp(out io.Writer) *app {
	return &app{out: out, metrics: metrics.New()}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "socialreach",
		Short:         "Most popular person and bounded reach in a social graph",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, flagConfig, "", "YAML config file")
	pf.String(flagLogLevel, config.DefaultLogLevel, "log level: debug, info, warn, error")
	pf.String(flagLogFormat, config.DefaultLogFormat, "log format: text or json")
	pf.String(flagMetricsTextfile, "", "write Prometheus metrics to this file after the run")

	root.AddCommand(a.runCmd(), a.popularCmd(), a.reachCmd(), a.generateCmd())
	return root
}

// inputFlags registers the table and output flags used by graph commands.
func inputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String(flagNodes, "", "node table CSV")
	f.String(flagEdges, "", "edge table CSV")
	f.String(flagOutput, config.DefaultOutput, "output format: text or json")
	f.String(flagTieBreak, config.DefaultTieBreak, "tie-break policy: lowest-id or first-seen")
}

// setup loads the config, applies changed flags and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	fs := cmd.Flags()
	strs := map[string]*string{
		flagLogLevel:        &cfg.Log.Level,
		flagLogFormat:       &cfg.Log.Format,
		flagMetricsTextfile: &cfg.MetricsTextfile,
		flagNodes:           &cfg.Nodes,
		flagEdges:           &cfg.Edges,
		flagStart:           &cfg.Start,
		flagTieBreak:        &cfg.TieBreak,
		flagOutput:          &cfg.Output,
	}
	for name, dst := range strs {
		if fs.Changed(name) {
			*dst, _ = fs.GetString(name)
		}
	}
	ints := map[string]*int{
		flagMaxHops:   &cfg.MaxHops,
		flagCacheSize: &cfg.CacheSize,
	}
	for name, dst := range ints {
		if fs.Changed(name) {
			*dst, _ = fs.GetInt(name)
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

	return nil
}

// flushMetrics writes the textfile when one was configured.
func (a *app) flushMetrics() error {
	if a.cfg == nil || a.cfg.MetricsTextfile == "" {
		return nil
	}
	return a.metrics.WriteTextfile(a.cfg.MetricsTextfile)
}

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Print the most popular person and the share of the graph they reach",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := pipeline.Run(cmd.Context(), a.cfg, a.metrics)
			if out != nil {
				if werr := report.Write(a.out, a.cfg.Output, out.Summary); werr != nil {
					return werr
				}
			}
			return err
		},
	}
	inputFlags(cmd)
	cmd.Flags().String(flagStart, "", "start from the first person whose name contains this text (default: the most popular person)")
	cmd.Flags().Int(flagMaxHops, config.DefaultMaxHops, "hop limit")
	return cmd
}

func (a *app) popularCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "popular",
		Short: "Print the person with the most outgoing edges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			g, err := pipeline.Load(ctx, a.cfg, a.metrics)
			if err != nil {
				return err
			}
			top, err := pipeline.Popular(ctx, g, a.cfg.TieBreak, a.metrics)
			if err != nil {
				return err
			}
			if a.cfg.Output == report.FormatJSON {
				return report.WriteJSON(a.out, report.NewSummary(top, nil, g.Adjacency.Len()))
			}
			_, err = fmt.Fprintf(a.out, "The most popular person is %s (follows %d)\n", top.Name, top.OutDegree)
			return err
		},
	}
	inputFlags(cmd)
	return cmd
}

func (a *app) reachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reach NAME...",
		Short: "Print how much of the graph each named person reaches",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := pipeline.Load(ctx, a.cfg, a.metrics)
			if err != nil {
				return err
			}
			q, err := pipeline.NewQuerier(g, a.cfg.CacheSize, a.metrics)
			if err != nil {
				return err
			}
			total := g.Adjacency.Len()

			var missing []string
			for _, name := range args {
				res, err := q.Reach(ctx, name, a.cfg.MaxHops)
				switch {
				case errors.Is(err, reach.ErrStartNotFound):
					missing = append(missing, name)
					fmt.Fprintf(a.out, "no such person: %s\n", name)
					continue
				case err != nil:
					return err
				}
				if err := a.writeReach(res, total); err != nil {
					return err
				}
			}
			if len(missing) > 0 {
				return fmt.Errorf("%w: %s", reach.ErrStartNotFound, strings.Join(missing, ", "))
			}
			return nil
		},
	}
	inputFlags(cmd)
	cmd.Flags().Int(flagMaxHops, config.DefaultMaxHops, "hop limit")
	cmd.Flags().Int(flagCacheSize, config.DefaultCacheSize, "cached query results")
	return cmd
}

func (a *app) writeReach(res *reach.Result, total int) error {
	pct, err := report.Ratio(res.Reached, total)
	if a.cfg.Output == report.FormatJSON {
		s := report.Summary{
			Start:          res.StartName,
			MaxHops:        res.MaxHops,
			Reached:        res.Reached,
			Total:          total,
			Ratio:          pct,
			RatioAvailable: err == nil,
		}
		return report.WriteJSON(a.out, s)
	}
	ratio := "n/a"
	if err == nil {
		ratio = report.FormatRatio(pct)
	}
	_, werr := fmt.Fprintf(a.out, "%s reaches %d of %d in %d steps (%s)\n",
		res.StartName, res.Reached, total, res.MaxHops, ratio)
	return werr
}

// generatorKinds lists the accepted --kind values.
var generatorKinds = []string{"path", "cycle", "star", "random"}

func (a *app) generateCmd() *cobra.Command {
	var (
		kind      string
		n         int
		p         float64
		seed      int64
		dupNames  int
		idOffset  uint64
		nodesPath string
		edgesPath string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic node and edge table pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var ctor builder.Constructor
			switch kind {
			case "path":
				ctor = builder.Path(n)
			case "cycle":
				ctor = builder.Cycle(n)
			case "star":
				ctor = builder.Star(n)
			case "random":
				ctor = builder.RandomSparse(n, p)
			default:
				return fmt.Errorf("%w: --kind must be one of %s", config.ErrInvalid, strings.Join(generatorKinds, ", "))
			}
			opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithIDOffset(idOffset)}
			if dupNames > 0 {
				opts = append(opts, builder.WithDuplicateNames(dupNames))
			}

			ds, err := builder.BuildDataset(opts, ctor)
			if err != nil {
				return fmt.Errorf("%w: %v", config.ErrInvalid, err)
			}
			if err := ingest.SaveFiles(ds, nodesPath, edgesPath); err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Info("dataset written",
				"kind", kind, "nodes", len(ds.Nodes), "edges", len(ds.Edges),
				"nodes_path", nodesPath, "edges_path", edgesPath)
			_, err = fmt.Fprintf(a.out, "wrote %d nodes to %s and %d edges to %s\n",
				len(ds.Nodes), nodesPath, len(ds.Edges), edgesPath)
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&kind, "kind", "star", "topology: "+strings.Join(generatorKinds, ", "))
	f.IntVar(&n, "n", 10, "number of people")
	f.Float64Var(&p, "p", 0.1, "edge probability for --kind random")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.IntVar(&dupNames, "dup-names", 0, "reuse only this many distinct names (0 = all distinct)")
	f.Uint64Var(&idOffset, "id-offset", 0, "first node id")
	f.StringVar(&nodesPath, "out-nodes", "nodes.csv", "node table output path")
	f.StringVar(&edgesPath, "out-edges", "edges.csv", "edge table output path")
	return cmd
}
