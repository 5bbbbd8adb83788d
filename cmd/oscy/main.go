// Command oscy inspects backend data from the terminal with the same cores
// the web tier uses.
//
// Usage:
//
//	oscy topfive ceremony --iteration 96
//	oscy topfive category --id 1
//	oscy stats ceremony --iteration 96 --table people --q nolan
//	oscy stats category --id 1 --select 2
//	oscy timeline --id 1
//	oscy images warm --from 90 --to 96
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/oscy/oscy-web/internal/awards"
	"github.com/oscy/oscy-web/internal/backend"
	"github.com/oscy/oscy-web/internal/config"
	"github.com/oscy/oscy-web/internal/db"
	"github.com/oscy/oscy-web/internal/imdb"
	"github.com/oscy/oscy-web/internal/statstable"
	"github.com/oscy/oscy-web/internal/tmdb"
	"github.com/oscy/oscy-web/internal/topfive"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:          "oscy",
		Short:        "oscy data inspection CLI",
		SilenceUsage: true,
	}

	root.AddCommand(topFiveCmd())
	root.AddCommand(statsCmd())
	root.AddCommand(timelineCmd())
	root.AddCommand(imagesCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// topfive command
// --------------------------------------------------------------------------

func topFiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topfive",
		Short: "Show headline winners",
	}
	cmd.AddCommand(topFiveCeremonyCmd())
	cmd.AddCommand(topFiveCategoryCmd())
	return cmd
}

func topFiveCeremonyCmd() *cobra.Command {
	var iteration int
	cmd := &cobra.Command{
		Use:   "ceremony",
		Short: "Top five of a single ceremony",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, env *session) error {
				n, err := env.client.Ceremony(ctx, iteration)
				if err != nil {
					return err
				}
				tf, err := topfive.Ceremony(*n)
				if errors.Is(err, topfive.ErrPending) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s ceremony: results pending\n", awards.Ordinal(iteration))
					return nil
				}
				if err != nil {
					return err
				}
				return printTopFive(ctx, cmd.OutOrStdout(), env, tf, n.Editions[0].Categories)
			})
		},
	}
	cmd.Flags().IntVar(&iteration, "iteration", 0, "Ceremony iteration (1 = 1927/28)")
	cmd.MarkFlagRequired("iteration")
	return cmd
}

func topFiveCategoryCmd() *cobra.Command {
	var id int
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Five most recent decided winners of a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, env *session) error {
				detail, err := env.client.Category(ctx, id)
				if err != nil {
					return err
				}
				cats := awards.NewestFirst(detail.Nominations.Editions)
				fmt.Fprintln(cmd.OutOrStdout(), detail.DisplayName())
				return printTopFive(ctx, cmd.OutOrStdout(), env, topfive.Categories(cats), cats)
			})
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "Category id")
	cmd.MarkFlagRequired("id")
	return cmd
}

func printTopFive(ctx context.Context, out io.Writer, env *session, tf topfive.TopFive, cats []awards.Category) error {
	images := env.images.ResolveAll(ctx, tf.IMDbIDs())
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLOT\tCATEGORY\tIMDB\tIMAGE")
	for slot, e := range tf.Entries {
		if e == nil {
			fmt.Fprintf(tw, "%d\t-\t-\t-\n", slot)
			continue
		}
		u := "-"
		if e.IMDbID != "" {
			var err error
			if u, err = imdb.URL(e.IMDbID); err != nil {
				return err
			}
		}
		img := "-"
		if images[slot] != nil {
			img = *images[slot]
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", slot, cats[e.Index].CommonName, u, img)
	}
	return tw.Flush()
}

// --------------------------------------------------------------------------
// stats command
// --------------------------------------------------------------------------

type tableFlags struct {
	column    int
	direction string
	query     string
	selected  int
}

func (f *tableFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.column, "col", 1, "Active column index")
	cmd.Flags().StringVar(&f.direction, "dir", "desc", "Sort direction (asc, desc)")
	cmd.Flags().StringVar(&f.query, "q", "", "Search query")
	cmd.Flags().IntVar(&f.selected, "select", -1, "Column to select after applying the state")
}

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print sortable statistics tables",
	}
	cmd.AddCommand(statsCeremonyCmd())
	cmd.AddCommand(statsCategoryCmd())
	return cmd
}

func statsCeremonyCmd() *cobra.Command {
	var (
		iteration int
		table     string
		flags     tableFlags
	)
	cmd := &cobra.Command{
		Use:   "ceremony",
		Short: "Title or people statistics of a ceremony",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, env *session) error {
				n, err := env.client.Ceremony(ctx, iteration)
				if err != nil {
					return err
				}
				switch table {
				case "titles":
					return printTable(cmd.OutOrStdout(), n.Stats.TitleStats, statstable.CeremonyTitleColumns, "title", flags)
				case "people":
					return printTable(cmd.OutOrStdout(), n.Stats.EntityStats, statstable.CeremonyEntityColumns, "aliases", flags)
				}
				return fmt.Errorf("--table must be titles or people, got %q", table)
			})
		},
	}
	cmd.Flags().IntVar(&iteration, "iteration", 0, "Ceremony iteration")
	cmd.Flags().StringVar(&table, "table", "titles", "Table (titles, people)")
	cmd.MarkFlagRequired("iteration")
	flags.register(cmd)
	return cmd
}

func statsCategoryCmd() *cobra.Command {
	var (
		id    int
		flags tableFlags
	)
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Career statistics of everyone nominated in a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, env *session) error {
				detail, err := env.client.Category(ctx, id)
				if err != nil {
					return err
				}
				return printTable(cmd.OutOrStdout(), detail.Nominations.Stats.EntityStats, statstable.CategoryEntityColumns, "aliases", flags)
			})
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "Category id")
	cmd.MarkFlagRequired("id")
	flags.register(cmd)
	return cmd
}

func printTable[R statstable.Record](out io.Writer, records []R, cols []statstable.Column, searchKey string, f tableFlags) error {
	tbl, err := statstable.New(records, cols, searchKey)
	if err != nil {
		return err
	}
	dir, err := statstable.ParseDirection(f.direction)
	if err != nil {
		return err
	}
	if err := tbl.SetState(statstable.State{Column: f.column, Direction: dir, Query: f.query}); err != nil {
		return err
	}
	if f.selected >= 0 {
		if _, _, err := tbl.Select(f.selected); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	header := []string{"#"}
	for i, c := range cols {
		name := c.Name
		if i == tbl.State().Column {
			name += " (" + string(tbl.State().Direction) + ")"
		}
		header = append(header, name)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for i, r := range tbl.Rows() {
		row := []string{fmt.Sprint(i + 1)}
		for _, c := range cols {
			v, _ := r.Field(c.SortKey)
			row = append(row, statstable.String(v))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if tbl.Empty() {
		fmt.Fprintln(tw, "(no results)")
	}
	return tw.Flush()
}

// --------------------------------------------------------------------------
// timeline command
// --------------------------------------------------------------------------

func timelineCmd() *cobra.Command {
	var id int
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Naming history of a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, env *session) error {
				detail, err := env.client.Category(ctx, id)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s (%d ceremonies)\n", detail.DisplayName(), awards.CeremonyCount(detail.CategoryNames))
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				for _, item := range awards.Timeline(detail.CategoryNames) {
					fmt.Fprintf(tw, "%d-%d\t%s-%s\t%s\n", item.StartYear, item.EndYear,
						awards.Ordinal(item.StartIteration), awards.Ordinal(item.EndIteration), item.Name)
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "Category id")
	cmd.MarkFlagRequired("id")
	return cmd
}

// --------------------------------------------------------------------------
// images command
// --------------------------------------------------------------------------

func imagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images",
		Short: "Manage the TMDB image cache",
	}
	cmd.AddCommand(imagesWarmCmd())
	return cmd
}

func imagesWarmCmd() *cobra.Command {
	var from, to int
	cmd := &cobra.Command{
		Use:   "warm",
		Short: "Resolve and store top-five images for a range of ceremonies",
		RunE: func(cmd *cobra.Command, args []string) error {
			if from < 1 || to < from {
				return fmt.Errorf("need 1 <= --from <= --to, got %d..%d", from, to)
			}
			return run(func(ctx context.Context, env *session) error {
				if !env.images.Enabled() {
					return fmt.Errorf("TMDB_API_KEY is required")
				}
				start := time.Now()
				var resolved, missing, skipped int
				for iteration := from; iteration <= to; iteration++ {
					n, err := env.client.Ceremony(ctx, iteration)
					if errors.Is(err, backend.ErrNotFound) {
						skipped++
						continue
					}
					if err != nil {
						return err
					}
					tf, err := topfive.Ceremony(*n)
					if err != nil {
						logger.Info("Skipping ceremony", "iteration", iteration, "reason", err)
						skipped++
						continue
					}
					for _, u := range env.images.ResolveAll(ctx, tf.IMDbIDs()) {
						if u != nil {
							resolved++
						} else {
							missing++
						}
					}
				}
				logger.Info("Image warm finished",
					"from", from, "to", to,
					"resolved", resolved, "missing", missing, "skipped", skipped,
					"persisted", env.persisted,
					"duration", time.Since(start).Round(time.Second))
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&from, "from", 1, "First ceremony iteration")
	cmd.Flags().IntVar(&to, "to", 1, "Last ceremony iteration")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

type session struct {
	cfg       *config.Config
	client    *backend.Client
	images    *tmdb.Resolver
	persisted bool
}

// run handles config loading, optional DB connection, and context cancellation.
func run(fn func(ctx context.Context, env *session) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	e := &session{cfg: cfg}
	var store tmdb.Store
	if cfg.DatabaseURL != "" {
		pool, err := db.New(ctx, cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()
		store = pool
		e.persisted = true
	}

	e.client = backend.NewClient(cfg.BackendOrigin(), cfg.BackendRPS,
		backend.WithHTTPClient(&http.Client{Timeout: cfg.BackendTimeout}),
		backend.WithLogger(logger))
	e.images = tmdb.NewResolver(tmdb.Config{
		APIKey:            cfg.TMDBAPIKey,
		RequestsPerSecond: cfg.TMDBRPS,
		Attempts:          cfg.TMDBRetryAttempts,
		RetryDelay:        cfg.TMDBRetryDelay,
	}, nil, store, nil, logger)

	return fn(ctx, e)
}
