package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tanmay/wordtrail/internal/progression"
	"github.com/tanmay/wordtrail/internal/remote"
	"github.com/tanmay/wordtrail/internal/store"
	"github.com/tanmay/wordtrail/internal/wordstats"
)

var rootCmd = &cobra.Command{
	Use:   "wordtrail",
	Short: "Vocabulary learning tracker",
	Long:  "Wordtrail — local-first vocabulary learning progress with opportunistic server sync.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WORDTRAIL_DB env var)")

	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then WORDTRAIL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// deps bundles the opened store and the services built over it.
type deps struct {
	store      *store.Store
	tracker    *wordstats.Tracker
	engine     *progression.Engine
	reconciler *remote.Reconciler
	syncCfg    remote.Config
}

// buildDeps opens the store and wires the services. The caller must
// invoke the cleanup function when done.
func buildDeps(cmd *cobra.Command) (*deps, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	history, err := st.HistoryRepo()
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("open history repo: %w", err)
	}
	events, err := st.EventRepo()
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("open event repo: %w", err)
	}

	syncCfg := remote.ConfigFromEnv()
	catRepo := st.CategoryRepo()
	progRepo := st.ProgressRepo()

	var pusher progression.Pusher
	var reconciler *remote.Reconciler
	if syncCfg.Enabled() {
		client := remote.NewClient(syncCfg)
		pusher = client
		reconciler = remote.NewReconciler(client, catRepo, progRepo, events)
	}

	d := &deps{
		store:      st,
		tracker:    wordstats.NewTracker(st.WordStatRepo(), history, events, progRepo),
		engine:     progression.NewEngine(catRepo, progRepo, events, pusher),
		reconciler: reconciler,
		syncCfg:    syncCfg,
	}
	return d, func() { st.Close() }, nil
}
