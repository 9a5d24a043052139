package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/lexiz/internal/catalog"
	"github.com/abhisek/lexiz/internal/config"
	"github.com/abhisek/lexiz/internal/logger"
	"github.com/abhisek/lexiz/internal/progress"
	"github.com/abhisek/lexiz/internal/stats"
	"github.com/abhisek/lexiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lexiz",
	Short: "Spaced-repetition vocabulary trainer",
	Long:  "Lexiz — a spaced-repetition scheduler that tracks word retention and builds graded practice sessions.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEXIZ_DB)")
	rootCmd.PersistentFlags().String("user", "", "User ID whose progress to use (overrides config)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to catalog JSON (overrides config)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(versionCmd)
}

// appEnv bundles the wired-up collaborators every command needs.
type appEnv struct {
	cfg      *config.Config
	log      *zap.Logger
	store    *store.Store
	repo     *store.ProgressRepo
	catalog  *catalog.Catalog
	progress *progress.Store
	stats    *stats.Aggregator
}

// openEnv loads config, opens the store, loads the catalog, and
// restores the user's progress records.
func openEnv(cmd *cobra.Command) (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		cfg.UserID = u
	}
	if c, _ := cmd.Flags().GetString("catalog"); c != "" {
		cfg.CatalogPath = c
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
	} else if err := store.EnsureDir(dbPath); err != nil {
		return nil, fmt.Errorf("create DB dir: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	cat, err := catalog.LoadFile(cfg.CatalogPath, log)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	repo := st.ProgressRepo(log)
	prog := progress.NewStore(cfg.UserID)
	records, err := repo.Load(cmd.Context(), cfg.UserID)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load progress: %w", err)
	}
	prog.Restore(records)

	return &appEnv{
		cfg:      cfg,
		log:      log,
		store:    st,
		repo:     repo,
		catalog:  cat,
		progress: prog,
		stats:    stats.NewAggregator(cat, prog),
	}, nil
}

func (e *appEnv) close() {
	e.store.Close()
	_ = e.log.Sync()
}
