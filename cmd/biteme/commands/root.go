package commands

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bitemeapp/biteme/internal/catalog"
	"github.com/bitemeapp/biteme/internal/config"
	"github.com/bitemeapp/biteme/internal/domain"
	"github.com/bitemeapp/biteme/internal/scale"
	"github.com/bitemeapp/biteme/internal/session"
	"github.com/bitemeapp/biteme/internal/store"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	// Wired in setup, shared by all commands.
	cfg      *config.Config
	log      *zap.Logger
	st       domain.Store
	cat      *catalog.Loader
	servings *scale.Servings
	eng      *session.Engine
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "biteme",
	Short: "biteme - local-first recipe box and cooking log",
	Long: `biteme keeps a recipe catalog cached locally and tracks everything you
cook: favorites, ratings, notes, a shopping list, and a week-streak
cooking log. All state lives in a local database; the catalog refreshes
from the published manifest when its version changes.`,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return setup() },
	PersistentPostRun: func(cmd *cobra.Command, args []string) { teardown() },
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config.yaml (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
}

// setup wires the store, catalog, and engines. A store that cannot open
// downgrades to a no-op store so read paths keep working.
func setup() error {
	_ = godotenv.Load()

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	log, err = newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.DatabasePath(), log)
	if err != nil {
		log.Warn("store unavailable, continuing without persistence", zap.Error(err))
		st = store.NewNoOp(log)
	} else {
		st = db
	}

	cat = catalog.New(cfg.CatalogURL, st, log,
		catalog.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}))
	servings = scale.NewServings(st)
	eng = session.New(cat, st, log)
	return nil
}

func teardown() {
	if st != nil {
		if err := st.Close(); err != nil {
			log.Warn("closing store", zap.Error(err))
		}
	}
	if log != nil {
		_ = log.Sync()
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", level, err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}
