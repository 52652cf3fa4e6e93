package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/candlecard/internal/config"
	"github.com/jask/candlecard/internal/content"
	"github.com/jask/candlecard/internal/database"
	"github.com/jask/candlecard/internal/logging"
	"github.com/jask/candlecard/internal/tui"
)

// runtime is what every subcommand shares after the persistent pre-run.
type runtime struct {
	cfg    config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rt := &runtime{}
	var (
		recipient string
		skipIntro bool
		seed      uint64
	)

	play := func(cmd *cobra.Command, args []string) error {
		if recipient != "" {
			rt.cfg.UI.Recipient = recipient
		}
		if skipIntro {
			rt.cfg.Intro.Skip = true
		}
		return runPlay(cmd.Context(), rt, seed)
	}

	root := &cobra.Command{
		Use:   "candlecard",
		Short: "A birthday card you have to earn",
		Long: `candlecard blows out the candles, opens the card and walks the
birthday person through a memory quiz, a word search and a timeline
before revealing the final message.

Run without arguments to start the card.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			logger, err := logging.New(cfg.Log)
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			rt.cfg, rt.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if rt.logger != nil {
				_ = rt.logger.Sync()
			}
		},
		RunE: play,
	}

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Start the card",
		RunE:  play,
	}
	for _, c := range []*cobra.Command{root, playCmd} {
		c.Flags().StringVar(&recipient, "recipient", "", "Name shown on the card (overrides ui.recipient)")
		c.Flags().BoolVar(&skipIntro, "skip-intro", false, "Go straight to the puzzles")
		c.Flags().Uint64Var(&seed, "seed", 0, "Seed for the word grid and timeline shuffle (0 = random)")
	}

	root.AddCommand(playCmd, newContentCmd(rt), newGridCmd(rt))
	return root
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// openStore migrates and opens the content database and seeds it on first use.
func openStore(ctx context.Context, rt *runtime) (*content.Store, func(), error) {
	path := rt.cfg.Database.Path
	if err := database.RunMigrations(path); err != nil {
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}
	store := content.NewStore(db)
	if err := store.Seed(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("seed content: %w", err)
	}
	rt.logger.Debug("content database ready", zap.String("path", path))
	return store, func() { _ = db.Close() }, nil
}

// loadCatalog imports the configured pack, if any, and reads the catalog back.
func loadCatalog(ctx context.Context, rt *runtime, store *content.Store) (content.Catalog, error) {
	if pack := rt.cfg.Content.Pack; pack != "" {
		c, err := content.ReadPackFile(pack)
		if err != nil {
			return content.Catalog{}, err
		}
		if err := c.Normalize().Validate(rt.cfg.WordSearch.Size); err != nil {
			return content.Catalog{}, fmt.Errorf("pack %s: %w", pack, err)
		}
		if err := store.Import(ctx, c); err != nil {
			return content.Catalog{}, err
		}
		rt.logger.Info("content pack imported", zap.String("pack", pack))
	}
	c, err := store.Load(ctx)
	if err != nil {
		return content.Catalog{}, fmt.Errorf("load content: %w", err)
	}
	if err := c.Validate(rt.cfg.WordSearch.Size); err != nil {
		return content.Catalog{}, fmt.Errorf("stored content: %w", err)
	}
	return c, nil
}

func runPlay(ctx context.Context, rt *runtime, seed uint64) error {
	store, closeDB, err := openStore(ctx, rt)
	if err != nil {
		return err
	}
	defer closeDB()

	catalog, err := loadCatalog(ctx, rt, store)
	if err != nil {
		return err
	}

	rt.logger.Info("session starting",
		zap.Int("questions", len(catalog.Questions)),
		zap.Int("words", len(catalog.Words)),
		zap.Bool("skip_intro", rt.cfg.Intro.Skip))

	app := tui.New(tui.Options{
		Config:  rt.cfg,
		Catalog: catalog,
		Rand:    newRand(seed),
		Logger:  rt.logger.Named("tui"),
	})
	if _, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
