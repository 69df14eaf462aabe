package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vocabdeck/internal/ai"
	"vocabdeck/internal/app"
	"vocabdeck/internal/config"
	"vocabdeck/internal/domain"
	"vocabdeck/internal/repository/sqlite"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dbPath  string
	verbose bool
)

func main() {
	// Default database location
	home, _ := os.UserHomeDir()
	defaultDB := filepath.Join(home, ".vocabdeck", "vocabdeck.db")

	if err := newRootCmd(defaultDB).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(defaultDB string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "vocabctl",
		Short:        "Maintain a local vocabdeck collection",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "database path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")

	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(dueCmd())
	rootCmd.AddCommand(reviewCmd())
	rootCmd.AddCommand(wordsCmd())
	rootCmd.AddCommand(addCmd())
	return rootCmd
}

// openApp loads every service from the local database
func openApp() (*app.App, func(), error) {
	logger := zap.NewNop()
	if verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			return nil, nil, err
		}
	}

	cfg, err := config.LoadLocal()
	if err != nil {
		return nil, nil, err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, nil, fmt.Errorf("create db dir: %w", err)
	}
	store, err := sqlite.New(dbPath)
	if err != nil {
		return nil, nil, err
	}

	gateway := ai.NewClient(ai.Options{
		APIKey:  cfg.AI.APIKey,
		Model:   cfg.AI.Model,
		BaseURL: cfg.AI.BaseURL,
	}, logger)

	a := app.New(store, gateway, app.Options{
		BulkWordCount: cfg.BulkWordCount,
		Calendar:      domain.NewCalendar(cfg.Location),
	}, logger)
	if err := a.Load(); err != nil {
		store.Close()
		return nil, nil, err
	}

	closeFn := func() {
		store.Close()
		_ = logger.Sync()
	}
	return a, closeFn, nil
}

func exportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a backup file",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			a, closeFn, err := openApp()
			if err != nil {
				return err
			}
			defer closeFn()

			data, name, err := a.Backup.Export(a.Calendar.Today())
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = name
			}
			if err := os.WriteFile(outPath, data, 0644); err != nil {
				return fmt.Errorf("write backup: %w", err)
			}

			fmt.Fprintf(out, "Exported %d words to %s\n", a.Vocabulary.Count(), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default toeic_vocab_backup_<date>.json)")
	return cmd
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Replace the stored data with a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			a, closeFn, err := openApp()
			if err != nil {
				return err
			}
			defer closeFn()

			report, err := a.Backup.Import(data)
			if len(report.Failed) > 0 {
				fmt.Fprintf(out, "Failed: %s\n", strings.Join(report.Failed, ", "))
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Written: %s\n", strings.Join(report.Written, ", "))
			if len(report.Null) > 0 {
				fmt.Fprintf(out, "Unchanged (null): %s\n", strings.Join(report.Null, ", "))
			}
			if len(report.Skipped) > 0 {
				fmt.Fprintf(out, "Skipped (not a string): %s\n", strings.Join(report.Skipped, ", "))
			}
			fmt.Fprintf(out, "Words: %d\n", a.Vocabulary.Count())
			return nil
		},
	}
}

func dueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "due",
		Short: "List words due for review today",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			a, closeFn, err := openApp()
			if err != nil {
				return err
			}
			defer closeFn()

			today := a.Calendar.Today()
			due := a.Vocabulary.DueWords(today)
			if len(due) == 0 {
				fmt.Fprintln(out, "Nothing due today.")
				return nil
			}

			fmt.Fprintf(out, "Due on %s (%d):\n\n", today, len(due))
			for _, w := range due {
				fmt.Fprintf(out, "  %s  %-20s %s\n", shortID(w.ID), w.Word, w.ChineseDefinition)
			}
			return nil
		},
	}
}

func reviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review [id] [again|good|easy]",
		Short: "Record a review rating",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			rating, err := domain.ParseRating(args[1])
			if err != nil {
				return err
			}

			a, closeFn, err := openApp()
			if err != nil {
				return err
			}
			defer closeFn()

			w, err := findWord(a, args[0])
			if err != nil {
				return err
			}

			outcome, _, err := a.Vocabulary.RecordReview(w.ID, rating)
			if err != nil {
				return err
			}
			a.Progress.RecordReview()

			fmt.Fprintf(out, "%s: next review %s (interval %d)\n", w.Word, outcome.DueDate, outcome.Interval)
			return nil
		},
	}
}

func wordsCmd() *cobra.Command {
	var tag, query string

	cmd := &cobra.Command{
		Use:   "words",
		Short: "List the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			a, closeFn, err := openApp()
			if err != nil {
				return err
			}
			defer closeFn()

			var words []domain.Word
			switch {
			case tag != "":
				words = a.Vocabulary.WordsWithTag(tag)
			case query != "":
				words = a.Vocabulary.Search(query)
			default:
				words = a.Vocabulary.Words()
			}

			for _, w := range words {
				fmt.Fprintf(out, "  %s  %-20s due %s  %s\n", shortID(w.ID), w.Word, w.DueDate, strings.Join(w.Tags, ","))
			}
			fmt.Fprintf(out, "\n%d words\n", len(words))
			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "only words with this tag")
	cmd.Flags().StringVarP(&query, "search", "s", "", "match word or definitions")
	return cmd
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [word]",
		Short: "Define a word with the AI and add it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			a, closeFn, err := openApp()
			if err != nil {
				return err
			}
			defer closeFn()

			stub, err := a.Vocabulary.Define(context.Background(), strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("%s", ai.UserMessage(err))
			}
			w, err := a.Vocabulary.Add(stub)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Added %s %s: %s\n", w.Word, w.Phonetic, w.ChineseDefinition)
			return nil
		},
	}
}

// findWord resolves a full id or an id prefix of at least 4 characters
func findWord(a *app.App, id string) (domain.Word, error) {
	if w, ok := a.Vocabulary.Get(id); ok {
		return w, nil
	}
	if len(id) < 4 {
		return domain.Word{}, fmt.Errorf("word %q not found", id)
	}

	var match *domain.Word
	for _, w := range a.Vocabulary.Words() {
		if strings.HasPrefix(w.ID, id) {
			if match != nil {
				return domain.Word{}, fmt.Errorf("id prefix %q is ambiguous", id)
			}
			w := w
			match = &w
		}
	}
	if match == nil {
		return domain.Word{}, fmt.Errorf("word %q not found", id)
	}
	return *match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
