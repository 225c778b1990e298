package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"time"

	"github.com/spf13/cobra"

	"github.com/mnordli/stufflend/internal/console"
	"github.com/mnordli/stufflend/internal/service"
	"github.com/mnordli/stufflend/internal/storage"
	"github.com/mnordli/stufflend/internal/storage/memory"
	"github.com/mnordli/stufflend/internal/storage/sqlite"
	"github.com/mnordli/stufflend/pkg/logging"
)

const dateLayout = "2006-01-02"

// Validation patterns are injected into the domain, not hard-coded there;
// these defaults accept common addresses and digit-only phone numbers.
const (
	defaultEmailPattern = `^[\w.-]+@[\w.-]+\.[a-zA-Z]{2,}$`
	defaultPhonePattern = `^\d+$`
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		storeKind string
		startDate string
		seed      bool
		debug     bool
	)

	cmd := &cobra.Command{
		Use:          "stufflend",
		Short:        "Stufflend — lend and borrow items for credits",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if debug {
				logging.SetupWithLevel(slog.LevelDebug)
			} else {
				logging.Setup()
			}
			return run(cmd.Context(), storeKind, startDate, seed)
		},
	}

	cmd.Flags().StringVar(&storeKind, "store", "memory", "storage backend: memory or sqlite")
	cmd.Flags().StringVar(&startDate, "date", "", "current date as YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVar(&seed, "seed", false, "load demo data on startup")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	return cmd
}

func openStore(kind string) (storage.Store, error) {
	switch kind {
	case "memory":
		return memory.New(), nil
	case "sqlite":
		return sqlite.New()
	default:
		return nil, fmt.Errorf("unknown store %q (want memory or sqlite)", kind)
	}
}

func run(ctx context.Context, storeKind, startDate string, seed bool) error {
	store, err := openStore(storeKind)
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("Storage initialized", "backend", storeKind)

	emailPattern, err := regexp.Compile(getEnv("EMAIL_PATTERN", defaultEmailPattern))
	if err != nil {
		return fmt.Errorf("invalid EMAIL_PATTERN: %w", err)
	}
	phonePattern, err := regexp.Compile(getEnv("PHONE_PATTERN", defaultPhonePattern))
	if err != nil {
		return fmt.Errorf("invalid PHONE_PATTERN: %w", err)
	}

	current := time.Now().Truncate(24 * time.Hour)
	if startDate != "" {
		current, err = time.Parse(dateLayout, startDate)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
	}

	members := service.NewMemberService(store, emailPattern, phonePattern)
	credits := service.NewCreditService(store)
	items := service.NewItemService(store, store, store)
	contracts := service.NewContractService(store, store, store, credits, current)

	ui := console.New(os.Stdin, os.Stdout, members, items, contracts, credits)
	if seed {
		if err := ui.Seed(ctx); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
		slog.Info("Demo data loaded")
	}

	ui.Run(ctx)
	return nil
}
