package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/btree-query-bench/btree/cli"
	"github.com/btree-query-bench/btree/index"
	"github.com/btree-query-bench/btree/index/btree"
	"github.com/btree-query-bench/btree/index/listindex"
	"github.com/btree-query-bench/btree/index/lsm"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type options struct {
	degree   int
	workload string
	n        int
	seed     int64
	style    string
	verify    bool
	reference string
	noColor  bool
	logLevel string

	logger *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "btree",
		Short: "Build, inspect and query an in-memory B-tree of integer keys",
		Long: `Builds a B-tree with minimum degree t from the keys given as arguments,
or from a generated workload when no keys are given, and then prints,
searches or checks it.

Keys may be separated by spaces or commas. Put negative keys after "--"
so they are not read as flags:

  btree print -t 3 -- -5 3 8`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	pf := rootCmd.PersistentFlags()
	pf.IntVarP(&opts.degree, "degree", "t", 2, "Minimum degree of the tree (>= 2)")
	pf.StringVarP(&opts.workload, "workload", "w", string(CLRS), "Key workload when no keys are given: sequential, reverse, random or clrs")
	pf.IntVarP(&opts.n, "count", "n", 20, "Number of generated keys")
	pf.Int64Var(&opts.seed, "seed", 42, "Seed for the random workload")
	pf.BoolVar(&opts.verify, "verify", false, "Cross-check every lookup against a reference index")
	pf.StringVar(&opts.reference, "reference", "list", "Reference index for --verify: list (linear scan) or lsm (in-memory Pebble)")
	pf.BoolVar(&opts.noColor, "no-color", false, "Disable coloured output")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	printCmd := &cobra.Command{
		Use:   "print [--] [keys...]",
		Short: "Draw the tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			bt, ref, err := opts.load(args)
			if err != nil {
				return err
			}
			defer closeReference(ref)
			switch opts.style {
			case "plain":
				return bt.Render(cmd.OutOrStdout())
			case "treeprint":
				_, err := fmt.Fprint(cmd.OutOrStdout(), bt.Outline().String())
				return err
			}
			return fmt.Errorf("unknown style %q (want plain or treeprint)", opts.style)
		},
	}
	printCmd.Flags().StringVar(&opts.style, "style", "plain", "Rendering style: plain or treeprint")

	var probes []int64
	searchCmd := &cobra.Command{
		Use:   "search [--] [keys...]",
		Short: "Report which probe keys are in the tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(probes) == 0 {
				return fmt.Errorf("no probe keys, use --keys")
			}
			bt, ref, err := opts.load(args)
			if err != nil {
				return err
			}
			err = search(cmd, bt, ref, probes)
			if cerr := closeReference(ref); err == nil {
				err = cerr
			}
			return err
		},
	}
	searchCmd.Flags().Int64SliceVarP(&probes, "keys", "k", nil, "Comma separated keys to look up")

	checkCmd := &cobra.Command{
		Use:   "check [--] [keys...]",
		Short: "Verify the tree's structural invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			bt, ref, err := opts.load(args)
			if err != nil {
				return err
			}
			defer closeReference(ref)
			if err := bt.Check(); err != nil {
				return err
			}
			if ref != nil && ref.Len() != bt.Len() {
				return fmt.Errorf("tree holds %d keys, reference holds %d", bt.Len(), ref.Len())
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "ok %s\n", bt.Stats())
			return nil
		},
	}

	replCmd := &cobra.Command{
		Use:   "repl [--] [keys...]",
		Short: "Start an interactive shell on a tree",
		Long:  "Starts an interactive shell. The tree is empty unless keys are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			bt, err := btree.New(opts.degree)
			if err != nil {
				return err
			}
			keys, err := parseKeys(args)
			if err != nil {
				return err
			}
			for _, k := range keys {
				bt.Insert(k)
			}
			return cli.NewCli(bufio.NewScanner(cmd.InOrStdin()), cmd.OutOrStdout(), bt).Start()
		},
	}

	rootCmd.AddCommand(printCmd, searchCmd, checkCmd, replCmd)
	return rootCmd
}

func (o *options) setup(cmd *cobra.Command) error {
	if o.noColor {
		color.NoColor = true
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", o.logLevel, err)
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

// maxCount bounds generated workloads so random keys in [1, 10n] fit an
// int64.
const maxCount = 10_000_000

// load builds the tree from args, or from the configured workload when args
// is empty. The reference index is only built when --verify is set; the
// caller closes it.
func (o *options) load(args []string) (*btree.Tree, index.Index, error) {
	bt, err := btree.New(o.degree)
	if err != nil {
		return nil, nil, err
	}

	keys, err := parseKeys(args)
	if err != nil {
		return nil, nil, err
	}
	if len(keys) == 0 {
		w, err := parseWorkload(o.workload)
		if err != nil {
			return nil, nil, err
		}
		if o.n < 0 || o.n > maxCount {
			return nil, nil, fmt.Errorf("invalid --count %d: must be between 0 and %d", o.n, maxCount)
		}
		keys = GenerateKeys(w, o.n, o.seed)
		o.logger.Debug("generated workload", "workload", w, "n", len(keys), "seed", o.seed)
	}

	var ref index.Index
	if o.verify {
		if ref, err = newReference(o.reference); err != nil {
			return nil, nil, err
		}
		o.logger.Debug("verifying against reference", "reference", o.reference)
	}
	for _, k := range keys {
		bt.Insert(k)
		if ref != nil {
			ref.Insert(k)
		}
	}
	if err := referenceErr(ref); err != nil {
		closeReference(ref)
		return nil, nil, err
	}

	s := bt.Stats()
	o.logger.Debug("tree loaded", "degree", s.Degree, "keys", s.Keys, "height", s.Height, "nodes", s.Nodes)
	return bt, ref, nil
}

func newReference(name string) (index.Index, error) {
	switch name {
	case "list":
		return listindex.NewListIndex(), nil
	case "lsm":
		l, err := lsm.Open()
		if err != nil {
			return nil, err
		}
		return l, nil
	}
	return nil, fmt.Errorf("unknown reference %q (want list or lsm)", name)
}

// referenceErr reports a failure kept by a reference whose methods cannot
// return errors.
func referenceErr(ref index.Index) error {
	if e, ok := ref.(interface{ Err() error }); ok {
		return e.Err()
	}
	return nil
}

func closeReference(ref index.Index) error {
	if c, ok := ref.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func search(cmd *cobra.Command, bt *btree.Tree, ref index.Index, probes []int64) error {
	out := cmd.OutOrStdout()
	found := color.New(color.FgGreen)
	absent := color.New(color.FgYellow)

	for _, k := range probes {
		x, ok := bt.Search(k)
		if ref != nil {
			want := ref.Contains(k)
			if err := referenceErr(ref); err != nil {
				return err
			}
			if want != ok {
				return fmt.Errorf("lookup of %d disagrees with reference: tree=%t reference=%t", k, ok, want)
			}
		}
		if ok {
			found.Fprintf(out, "%d found in %s\n", k, x)
		} else {
			absent.Fprintf(out, "%d absent\n", k)
		}
	}
	return nil
}

func parseKeys(args []string) ([]int64, error) {
	var keys []int64
	for _, a := range args {
		for _, f := range strings.Split(a, ",") {
			if f == "" {
				continue
			}
			k, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid key %q: %w", f, err)
			}
			keys = append(keys, k)
		}
	}
	return keys, nil
}
