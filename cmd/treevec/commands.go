package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/treevec/hop"
	"github.com/katalvlaran/treevec/mlcs"
	"github.com/katalvlaran/treevec/treevec"
)

// cli carries the resolved configuration from the root command to its
// subcommands.
type cli struct {
	configPath string
	flags      Config
	cfg        Config
	log        *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{flags: DefaultConfig()}
	root := &cobra.Command{
		Use:           "treevec",
		Short:         "Encode phylogenetic trees as vectors and compare them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.configure(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "YAML config file")
	pf.StringVar(&c.flags.LogLevel, "log-level", c.flags.LogLevel, "debug, info, warn or error")
	pf.StringVarP(&c.flags.Output, "output", "o", c.flags.Output, "vector output: text, json or yaml")
	pf.StringVar(&c.flags.Format, "format", c.flags.Format, "text layout: lengths or names")
	pf.BoolVar(&c.flags.Compact, "compact", c.flags.Compact, "omit leaf labels and names in text layout")
	pf.IntVar(&c.flags.Workers, "workers", c.flags.Workers, "segments compared concurrently")

	root.AddCommand(
		c.encodeCmd(),
		c.decodeCmd(),
		c.compareCmd(),
		c.lcsCmd(),
	)

	return root
}

// configure loads the config file and lets explicitly set flags override it.
func (c *cli) configure(cmd *cobra.Command) error {
	cfg, err := LoadConfig(c.configPath)
	if err != nil {
		return err
	}
	fs := cmd.Flags()
	if fs.Changed("log-level") {
		cfg.LogLevel = c.flags.LogLevel
	}
	if fs.Changed("output") {
		cfg.Output = c.flags.Output
	}
	if fs.Changed("format") {
		cfg.Format = c.flags.Format
	}
	if fs.Changed("compact") {
		cfg.Compact = c.flags.Compact
	}
	if fs.Changed("workers") {
		cfg.Workers = c.flags.Workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	c.log = cfg.Logger(cmd.ErrOrStderr())

	return nil
}

func (c *cli) encodeCmd() *cobra.Command {
	var leaves string
	cmd := &cobra.Command{
		Use:   "encode NEWICK",
		Short: "Print the vector of a Newick tree",
		Long: `Encode a Newick tree. Leaf indices come from the JSON map given with
--leaves; without it leaves are numbered left to right.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := readLeafIndexFile(leaves)
			if err != nil {
				return err
			}
			v, err := treevec.EncodeNewick(args[0], idx)
			if err != nil {
				return err
			}
			c.log.Info("encoded tree", "leaves", v.N(), "internal", v.InternalCount())

			return writeVector(cmd.OutOrStdout(), v, c.cfg.Output, c.cfg.FormatOptions())
		},
	}
	cmd.Flags().StringVarP(&leaves, "leaves", "l", "", "JSON file mapping leaf names to indices")

	return cmd
}

func (c *cli) decodeCmd() *cobra.Command {
	var leaves string
	cmd := &cobra.Command{
		Use:   "decode VECTORFILE",
		Short: "Print the Newick tree of a vector",
		Long: `Decode a vector file written by encode in the form selected by --output.
The compact text layout needs the leaf map given with --leaves.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := readLeafIndexFile(leaves)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			v, err := readVector(f, c.cfg.Output, idx.Names(), c.cfg.FormatOptions())
			if err != nil {
				return err
			}
			s, err := v.Newick()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)

			return err
		},
	}
	cmd.Flags().StringVarP(&leaves, "leaves", "l", "", "JSON file mapping leaf names to indices")

	return cmd
}

func (c *cli) compareCmd() *cobra.Command {
	var seq, distance bool
	cmd := &cobra.Command{
		Use:   "compare FILE",
		Short: "Print the hop similarity of two trees",
		Long: `Compare two trees. FILE holds four lines: the first Newick tree, its
JSON leaf map, the second Newick tree and its JSON leaf map.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			p, err := readPair(f)
			if err != nil {
				return err
			}
			a, err := treevec.EncodeNewick(p.TreeA, p.IndexA)
			if err != nil {
				return fmt.Errorf("first tree: %w", err)
			}
			b, err := treevec.EncodeNewick(p.TreeB, p.IndexB)
			if err != nil {
				return fmt.Errorf("second tree: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, v := range []treevec.Vector{a, b} {
				if err := writeVector(out, v, c.cfg.Output, c.cfg.FormatOptions()); err != nil {
					return err
				}
			}

			opts := []hop.Option{hop.WithWorkers(c.cfg.Workers), hop.WithLogger(c.log)}
			sim, err := hop.Similarity(a, b, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "similarity: %d\n", sim)

			if distance {
				d, err := hop.Distance(a, b, opts...)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "distance: %d\n", d)
			}
			if seq {
				m, err := hop.Alignment(a, b, opts...)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "alignment: %s\n", formatAlignment(m))
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&seq, "seq", false, "also print one longest alignment")
	cmd.Flags().BoolVar(&distance, "distance", false, "also print the hop distance")

	return cmd
}

func (c *cli) lcsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lcs FILE",
		Short: "Print a longest common subsequence of integer sequences",
		Long: `FILE holds one sequence per line, integers separated by whitespace.
Repeated values count at their first occurrence only.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			seqs, err := readSequences(f)
			if err != nil {
				return err
			}
			res, err := mlcs.LCS(seqs, mlcs.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			c.log.Info("lcs computed", "sequences", len(seqs), "length", res.Length)

			path := make([]string, len(res.Path))
			for i, x := range res.Path {
				path[i] = fmt.Sprint(x)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "length: %d\npath: %s\n", res.Length, strings.Join(path, " "))

			return nil
		},
	}
}

// formatAlignment writes matched labels as sets and leaf markers as bare
// indices.
func formatAlignment(m []hop.Match) string {
	parts := make([]string, len(m))
	for i, x := range m {
		if x.Leaf {
			leaf, _ := x.Label.Min()
			parts[i] = fmt.Sprint(leaf)
			continue
		}
		parts[i] = x.Label.String()
	}

	return strings.Join(parts, " ")
}
