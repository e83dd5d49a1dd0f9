// Command importer bulk-loads words from an .xlsx or .csv file into a
// user's active deck.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aliskhannn/flashcards-bot/internal/config"
	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/flashcards-bot/internal/importer"
	"github.com/aliskhannn/flashcards-bot/internal/infra/llm"
	"github.com/aliskhannn/flashcards-bot/internal/infra/postgres"
	"github.com/aliskhannn/flashcards-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/flashcards-bot/internal/logger"
	"github.com/aliskhannn/flashcards-bot/internal/service"
)

func main() {
	var (
		filePath   = flag.String("file", "", "path to the .xlsx or .csv file")
		userID     = flag.Int64("user", 0, "telegram user id that receives the cards")
		sheet      = flag.String("sheet", "", "sheet name (xlsx only, defaults to the first sheet)")
		column     = flag.String("column", "1", "column with words, as a letter (A) or 1-based number")
		skipHeader = flag.Bool("skip-header", false, "skip the first row")
		batchSize  = flag.Int("batch", importer.DefaultBatchSize, "words per AddWords call")
	)
	flag.Parse()

	if *filePath == "" || *userID <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zapLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zapLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := run(ctx, cfg, zapLogger, *userID, importer.Config{
		FilePath:   *filePath,
		SheetName:  *sheet,
		Column:     *column,
		SkipHeader: *skipHeader,
		BatchSize:  *batchSize,
	})
	if err != nil {
		zapLogger.Fatal("import failed", zap.Error(err))
	}

	fmt.Printf("Processed: %d\nCreated:   %d\nReused:    %d\nSkipped:   %d\nErrors:    %d\n",
		res.TotalProcessed, res.Created, res.Reused, res.Skipped, len(res.Errors))
	for _, e := range res.Errors {
		fmt.Println("  -", e)
	}
}

func run(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger, userID int64, importCfg importer.Config) (*importer.Result, error) {
	dsn, err := cfg.DB.DSN()
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(dsn); err != nil {
			return nil, err
		}
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	generator := llm.NewGenerator(llm.Config{
		APIKey:         cfg.OpenAI.APIKey,
		Model:          cfg.OpenAI.Model,
		BaseURL:        cfg.OpenAI.BaseURL,
		Timeout:        cfg.OpenAI.Timeout,
		SourceLanguage: cfg.Languages.Source,
		TargetLanguage: cfg.Languages.Target,
	}, zapLogger.Named("llm"))

	flashcards := service.NewFlashcardService(
		postgres.NewTransactor(pool),
		service.Repositories{
			Users:     repository.NewUserRepository(pool),
			Cards:     repository.NewCardRepository(pool),
			Decks:     repository.NewDeckRepository(pool),
			UserCards: repository.NewUserCardRepository(pool),
		},
		generator,
		service.Languages{Source: cfg.Languages.Source, Target: cfg.Languages.Target},
		zapLogger.Named("flashcards"),
	)

	profile := entities.NewProfile(userID, "", "", "")

	return importer.New(flashcards, zapLogger.Named("importer")).Import(ctx, profile, importCfg)
}
