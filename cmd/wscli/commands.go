package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"crosswarped.com/wordsearch"
	"crosswarped.com/wordsearch/internal/config"
	"crosswarped.com/wordsearch/internal/wordbank"
)

type rootOptions struct {
	configPath string
	logLevel   string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

type generateOptions struct {
	words       []string
	file        string
	width       int
	height      int
	maxAttempts int
	seed        uint64
	seedSet     bool
	fill        bool
	dedupe      bool
	solution    bool

	profileFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "wscli",
		Short:         "Generate word-search puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if opts.configPath == "" || cmd.Flags().Changed("log-level") {
				cfg.Log.Level = opts.logLevel
			}
			if opts.verbose {
				cfg.Log.Level = "debug"
				cfg.Log.Development = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err := cfg.Log.Logger()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "debug|info|warn|error")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newGenerateCmd(opts), newValidateBankCmd(opts))
	return rootCmd
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [word...]",
		Short: "Place words on a grid and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.words = append(opts.words, args...)
			opts.seedSet = cmd.Flags().Changed("seed")
			applyGeneratorDefaults(cmd, opts, root.cfg.Generator)
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), opts, root.logger)
		},
	}
	f := cmd.Flags()
	f.StringSliceVar(&opts.words, "words", nil, "comma separated words")
	f.StringVarP(&opts.file, "file", "f", "", "file to load words from, one per line")
	f.IntVar(&opts.width, "width", 0, "grid width (default from config)")
	f.IntVar(&opts.height, "height", 0, "grid height (default from config)")
	f.IntVar(&opts.maxAttempts, "max-attempts", 0, "outer attempt budget (default from config)")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed (default: time based)")
	f.BoolVar(&opts.fill, "fill", false, "fill empty cells with random letters")
	f.BoolVar(&opts.dedupe, "dedupe", false, "place repeated words once")
	f.BoolVar(&opts.solution, "solution", false, "also print the placements")
	f.StringVar(&opts.profileFile, "profile-file", "", "write a CPU profile to this file")
	return cmd
}

func applyGeneratorDefaults(cmd *cobra.Command, opts *generateOptions, def config.GeneratorConfig) {
	flags := cmd.Flags()
	if !flags.Changed("width") {
		opts.width = def.Width
	}
	if !flags.Changed("height") {
		opts.height = def.Height
	}
	if !flags.Changed("max-attempts") {
		opts.maxAttempts = def.MaxAttempts
	}
	if !flags.Changed("fill") {
		opts.fill = def.Fill
	}
	if !flags.Changed("dedupe") {
		opts.dedupe = def.Deduplicate
	}
}

func loadBank(ctx context.Context, words []string, file string) ([]string, error) {
	bank := wordbank.Normalize(words)
	if file != "" {
		fromFile, err := wordbank.FromFile(ctx, file)
		if err != nil {
			return nil, err
		}
		bank = append(bank, fromFile...)
	}
	if len(bank) == 0 {
		return nil, errors.New("no words given; pass them as arguments, --words or --file")
	}
	return bank, nil
}

func runGenerate(ctx context.Context, out io.Writer, opts *generateOptions, logger *zap.Logger) error {
	bank, err := loadBank(ctx, opts.words, opts.file)
	if err != nil {
		return err
	}

	if opts.profileFile != "" {
		f, err := os.Create(opts.profileFile)
		if err != nil {
			return fmt.Errorf("create profile file: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	params := wordsearch.GenerateParams{
		Bank:        bank,
		Width:       opts.width,
		Height:      opts.height,
		MaxAttempts: opts.maxAttempts,
		Fill:        opts.fill,
		Deduplicate: opts.dedupe,
	}
	if opts.seedSet {
		params.Seed = &opts.seed
	}

	logger.Debug("generating",
		zap.Int("words", len(bank)),
		zap.Int("width", opts.width),
		zap.Int("height", opts.height),
		zap.Int("max_attempts", opts.maxAttempts),
	)
	puzzle, err := wordsearch.Generate(params)
	if err != nil {
		return err
	}
	logger.Info("generated",
		zap.Uint64("seed", puzzle.Seed),
		zap.Int("attempts", puzzle.Stats.Attempts),
		zap.Int("candidates", puzzle.Stats.Candidates),
		zap.Duration("duration", puzzle.Stats.Duration),
	)
	logger.Debug("solution", zap.String("grid", puzzle.Solution().DebugString()))

	fmt.Fprint(out, puzzle.Grid.Repr())
	if opts.solution {
		fmt.Fprintf(out, "\nseed: %d\n", puzzle.Seed)
		for _, pl := range puzzle.Placements {
			fmt.Fprintf(out, "%-*s (%d,%d) %s\n", longest(bank), pl.Word, pl.Start.Row, pl.Start.Col, pl.Direction)
		}
	}
	return nil
}

func longest(words []string) int {
	n := 0
	for _, w := range words {
		n = max(n, len(w))
	}
	return n
}

func newValidateBankCmd(root *rootOptions) *cobra.Command {
	var (
		file          string
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "validate-bank [word...]",
		Short: "Report words that cannot be placed on a grid of the given size",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("width") {
				width = root.cfg.Generator.Width
			}
			if !cmd.Flags().Changed("height") {
				height = root.cfg.Generator.Height
			}
			bank, err := loadBank(cmd.Context(), args, file)
			if err != nil {
				return err
			}
			rejected := wordbank.Check(bank, width, height)
			out := cmd.OutOrStdout()
			for _, r := range rejected {
				fmt.Fprintf(out, "%d: %s\n", r.Line, r.Reason)
			}
			if len(rejected) > 0 {
				return fmt.Errorf("%d of %d words rejected for a %dx%d grid", len(rejected), len(bank), width, height)
			}
			fmt.Fprintf(out, "all %d words fit a %dx%d grid\n", len(bank), width, height)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "file to load words from, one per line")
	cmd.Flags().IntVar(&width, "width", 0, "grid width (default from config)")
	cmd.Flags().IntVar(&height, "height", 0, "grid height (default from config)")
	return cmd
}
