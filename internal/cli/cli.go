package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/campus-events/internal/config"
	"github.com/pfrederiksen/campus-events/internal/event"
	"github.com/pfrederiksen/campus-events/internal/filter"
	"github.com/pfrederiksen/campus-events/internal/logger"
	"github.com/pfrederiksen/campus-events/internal/snapshot"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// globalOptions are shared by every subcommand
type globalOptions struct {
	configPath string
	verbose    bool
	logLevel   string
}

// env is the resolved runtime for one command invocation
type env struct {
	cfg *config.Config
	loc *time.Location
	log *logger.Logger
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "campus-events",
		Short: "Browse the daily campus events snapshot",
		Long: `A CLI tool to browse the daily campus events snapshot.
Loads the published snapshot once and filters it locally by category,
date range and free-text search.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default "+config.DefaultConfigPath+")")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides config)")

	cmd.AddCommand(
		newListCmd(opts),
		newExpandCmd(opts),
		newCategoriesCmd(opts),
		newSourcesCmd(opts),
	)

	return cmd
}

// setup loads configuration and builds the logger for a command
func (o *globalOptions) setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	levelText := cfg.Log.Level
	if o.logLevel != "" {
		levelText = o.logLevel
	}
	if o.verbose {
		levelText = string(logger.LevelDebug)
	}
	level, err := logger.ParseLevel(levelText)
	if err != nil {
		return nil, err
	}
	log := logger.New(level, cmd.ErrOrStderr())
	logger.SetDefault(log)

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, loc: loc, log: log}, nil
}

// loadBatch loads the snapshot from the flag value or the configured source
func (e *env) loadBatch(ctx context.Context, cmd *cobra.Command, source string) (*snapshot.Result, error) {
	if source == "" {
		source = e.cfg.Snapshot.Source
	}
	if source == "" {
		return nil, fmt.Errorf("--snapshot is required (or set snapshot.source in config, or %s)", config.EnvSnapshotSource)
	}

	loader, err := snapshot.New(source,
		snapshot.WithTimeout(e.cfg.Snapshot.Timeout),
		snapshot.WithLogger(e.log),
		snapshot.WithStdin(cmd.InOrStdin()),
	)
	if err != nil {
		return nil, err
	}

	res, err := loader.Load(ctx)
	if t, ok := loader.Metrics().Snapshot().Timings["snapshot.load"]; ok {
		e.log.Debug("Snapshot load timing", logger.Fields{
			"source":   loader.Source(),
			"duration": t.Total.String(),
		})
	}
	return res, err
}

type listOptions struct {
	snapshot       string
	category       string
	dateRange      string
	search         string
	now            string
	format         string
	sort           string
	strictCategory bool
}

func newListCmd(global *globalOptions) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events matching category, date range and search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, global, opts)
		},
	}

	cmd.Flags().StringVar(&opts.snapshot, "snapshot", "", "Snapshot file, URL, or - for stdin")
	cmd.Flags().StringVar(&opts.category, "category", filter.AllCategories, "Category, or All")
	cmd.Flags().StringVar(&opts.dateRange, "range", string(filter.RangeUpcoming), "Date range: upcoming, today, week, month or weekend")
	cmd.Flags().StringVar(&opts.search, "search", "", "Free-text search")
	cmd.Flags().StringVar(&opts.now, "now", "", "Reference date (YYYY-MM-DD or RFC3339), default current time")
	cmd.Flags().StringVar(&opts.format, "format", string(FormatText), "Output format: text, json or ics")
	cmd.Flags().StringVar(&opts.sort, "sort", string(SortNone), "Display order: none, date or title")
	cmd.Flags().BoolVar(&opts.strictCategory, "strict-category", false, "Match categories by exact tag only")

	return cmd
}

// runList is the main command logic
func runList(cmd *cobra.Command, global *globalOptions, opts *listOptions) error {
	format := OutputFormat(strings.ToLower(opts.format))
	if !format.Valid() {
		return fmt.Errorf("invalid format: %s (must be 'text', 'json' or 'ics')", opts.format)
	}

	sortOrder := SortOrder(strings.ToLower(opts.sort))
	if !sortOrder.Valid() {
		return fmt.Errorf("invalid sort: %s (must be 'none', 'date' or 'title')", opts.sort)
	}

	dateRange, err := filter.ParseDateRange(opts.dateRange)
	if err != nil {
		return err
	}

	e, err := global.setup(cmd)
	if err != nil {
		return err
	}

	now, err := parseNow(opts.now, e.loc)
	if err != nil {
		return err
	}

	f := filter.Filter{
		Category:  filter.ParseCategory(opts.category, e.cfg.CategoryList()),
		DateRange: dateRange,
		Search:    opts.search,
	}

	res, err := e.loadBatch(cmd.Context(), cmd, opts.snapshot)
	if err != nil {
		return err
	}

	matcher := filter.LooseCategory
	if opts.strictCategory {
		matcher = filter.StrictCategory
	}
	pipeline := filter.NewPipeline(
		filter.WithVocabulary(e.cfg.Vocabulary()),
		filter.WithAllowlist(e.cfg.Allowlist()),
		filter.WithCategoryMatcher(matcher),
		filter.WithLocation(e.loc),
	)

	start := time.Now()
	matched := pipeline.Apply(res.Batch.Events, f, now)
	e.log.Debug("Filter applied", logger.Fields{
		"filter":   f.String(),
		"total":    len(res.Batch.Events),
		"matched":  len(matched),
		"duration": time.Since(start).String(),
	})

	result := &OutputResult{
		CheckedAt:   now,
		Filter:      f,
		Events:      sortEvents(matched, sortOrder),
		EventCount:  len(matched),
		TotalCount:  len(res.Batch.Events),
		LastUpdated: res.Batch.LastUpdated,
	}

	if err := WriteOutput(cmd.OutOrStdout(), result, format, global.verbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func newExpandCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "expand <query>",
		Short: "Show the search terms a query expands to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := global.setup(cmd)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			vocab := e.cfg.Vocabulary()
			for _, term := range vocab.Expand(query) {
				marker := ""
				if vocab.IsWholeWord(term) {
					marker = " (whole word)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", term, marker)
			}
			return nil
		},
	}
}

func newCategoriesCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the configured categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := global.setup(cmd)
			if err != nil {
				return err
			}
			for _, c := range e.cfg.CategoryList() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func newSourcesCmd(global *globalOptions) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Show the snapshot's grounding sources and update time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := global.setup(cmd)
			if err != nil {
				return err
			}
			res, err := e.loadBatch(cmd.Context(), cmd, source)
			if err != nil {
				return err
			}
			return writeSources(cmd.OutOrStdout(), res.Batch, e.loc)
		},
	}

	cmd.Flags().StringVar(&source, "snapshot", "", "Snapshot file, URL, or - for stdin")
	return cmd
}

func writeSources(w io.Writer, batch *event.Batch, loc *time.Location) error {
	if batch.LastUpdated.IsZero() {
		fmt.Fprintln(w, "Last updated: unknown")
	} else {
		fmt.Fprintf(w, "Last updated: %s\n", batch.LastUpdated.In(loc).Format("Mon Jan 2, 2006 3:04 PM MST"))
	}

	if len(batch.Sources) == 0 {
		fmt.Fprintln(w, "No sources.")
		return nil
	}
	for _, src := range batch.Sources {
		title := src.Title
		if title == "" {
			title = src.URI
		}
		if _, err := fmt.Fprintf(w, "- %s\n  %s\n", title, src.URI); err != nil {
			return err
		}
	}
	return nil
}

// parseNow parses the --now flag. A bare date means midnight in loc.
func parseNow(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Now().In(loc), nil
	}
	if day, ok := event.ParseDate(value); ok {
		y, m, d := day.Date()
		t := time.Date(y, m, d, 0, 0, 0, 0, loc)
		// Where DST skips midnight, time.Date lands on the previous day
		for t.Day() != d {
			t = t.Add(time.Hour)
		}
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: use YYYY-MM-DD or RFC3339", value)
	}
	return t.In(loc), nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, snapshot.ErrLoad) {
			fmt.Fprintln(os.Stderr, "The snapshot could not be loaded. Run the command again to retry.")
		}
		os.Exit(ExitError)
	}
}
