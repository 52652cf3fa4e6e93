package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/candlecard/internal/content"
	"github.com/jask/candlecard/internal/wordsearch"
)

func newContentCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Manage the card's questions, words and memories",
	}

	importCmd := &cobra.Command{
		Use:   "import [pack.yaml]",
		Short: "Replace the stored content with a YAML pack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := content.ReadPackFile(args[0])
			if err != nil {
				return err
			}
			c = c.Normalize()
			if err := c.Validate(rt.cfg.WordSearch.Size); err != nil {
				return fmt.Errorf("pack %s: %w", args[0], err)
			}
			store, closeDB, err := openStore(cmd.Context(), rt)
			if err != nil {
				return err
			}
			defer closeDB()
			if err := store.Import(cmd.Context(), c); err != nil {
				return err
			}
			rt.logger.Info("content pack imported", zap.String("pack", args[0]))
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d questions, %d words, %d memories\n",
				len(c.Questions), len(c.Words), len(c.Memories))
			return nil
		},
	}

	var out string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the stored content as a YAML pack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeDB, err := openStore(cmd.Context(), rt)
			if err != nil {
				return err
			}
			defer closeDB()
			c, err := store.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load content: %w", err)
			}
			if out == "" || out == "-" {
				return content.WritePack(cmd.OutOrStdout(), c)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := content.WritePack(f, c); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}
	exportCmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")

	cmd.AddCommand(importCmd, exportCmd)
	return cmd
}

func newGridCmd(rt *runtime) *cobra.Command {
	var seed uint64
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print a word search grid for the stored words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeDB, err := openStore(cmd.Context(), rt)
			if err != nil {
				return err
			}
			defer closeDB()
			c, err := store.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load content: %w", err)
			}
			l := wordsearch.Generate(c.Words, wordsearch.Options{
				Size:         rt.cfg.WordSearch.Size,
				WordAttempts: rt.cfg.WordSearch.WordAttempts,
				GridAttempts: rt.cfg.WordSearch.GridAttempts,
				Rand:         newRand(seed),
			})
			w := cmd.OutOrStdout()
			for _, row := range l.Grid.Rows() {
				fmt.Fprintln(w, strings.Join(strings.Split(row, ""), " "))
			}
			fmt.Fprintln(w)
			for _, p := range l.Placements {
				fmt.Fprintf(w, "%-8s row %2d col %2d  %s\n", p.Word, p.Start.Y+1, p.Start.X+1, arrow(p.Dir))
			}
			switch {
			case l.Fallback:
				fmt.Fprintln(w, "\nplacement failed; static fallback grid")
				if len(l.Dropped) > 0 {
					fmt.Fprintf(w, "dropped: %s\n", strings.Join(l.Dropped, ", "))
				}
			default:
				fmt.Fprintf(w, "\nplaced after %d grid attempt(s)\n", l.Attempts)
			}
			return nil
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for placement (0 = random)")
	return cmd
}

func arrow(d wordsearch.Dir) string {
	switch d {
	case wordsearch.Dir{DX: 1, DY: 0}:
		return "→"
	case wordsearch.Dir{DX: 0, DY: 1}:
		return "↓"
	case wordsearch.Dir{DX: 1, DY: 1}:
		return "↘"
	case wordsearch.Dir{DX: 1, DY: -1}:
		return "↗"
	}
	return "?"
}
