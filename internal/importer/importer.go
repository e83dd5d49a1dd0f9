package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/flashcards-bot/internal/service"
)

const DefaultBatchSize = 20

var ErrUnsupportedFormat = errors.New("unsupported file format")

// WordAdder is implemented by service.FlashcardService.
type WordAdder interface {
	AddWords(ctx context.Context, profile entities.Profile, words []string) ([]service.CreationResult, error)
}

// Config defines the import configuration.
type Config struct {
	FilePath   string // .xlsx or .csv
	SheetName  string // xlsx only, first sheet when empty
	Column     string // column letter ("A") or 1-based number ("1")
	SkipHeader bool
	BatchSize  int
}

// Result holds the outcome of an import.
type Result struct {
	TotalProcessed int
	Created        int // new canonical cards
	Reused         int // existing cards linked to the user
	Skipped        int // blank cells and words already in the deck
	Errors         []string
}

// Importer adds words read from a spreadsheet to a user's active deck.
type Importer struct {
	adder  WordAdder
	logger *zap.Logger
}

func New(adder WordAdder, logger *zap.Logger) *Importer {
	return &Importer{adder: adder, logger: logger}
}

// Import reads the file and feeds its words to the service in batches.
func (i *Importer) Import(ctx context.Context, profile entities.Profile, cfg Config) (*Result, error) {
	col, err := columnIndex(cfg.Column)
	if err != nil {
		return nil, err
	}

	rows, err := readRows(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.SkipHeader && len(rows) > 0 {
		rows = rows[1:]
	}

	result := &Result{Errors: make([]string, 0)}

	words := make([]string, 0, len(rows))
	for _, row := range rows {
		result.TotalProcessed++

		if col >= len(row) || strings.TrimSpace(row[col]) == "" {
			result.Skipped++
			continue
		}
		words = append(words, strings.TrimSpace(row[col]))
	}

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	for start := 0; start < len(words); start += batchSize {
		batch := words[start:min(start+batchSize, len(words))]

		results, err := i.adder.AddWords(ctx, profile, batch)
		if err != nil {
			return result, fmt.Errorf("add words %d-%d: %w", start+1, start+len(batch), err)
		}

		for _, r := range results {
			switch {
			case r.Failed():
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", r.Input, r.Error))
			case !r.LinkedToUser:
				result.Skipped++
			case r.CreatedCard:
				result.Created++
			default:
				result.Reused++
			}
		}

		i.logger.Info("batch imported",
			zap.Int("from", start+1),
			zap.Int("to", start+len(batch)),
			zap.Int("total", len(words)),
		)
	}

	return result, nil
}

func readRows(cfg Config) ([][]string, error) {
	switch ext := strings.ToLower(filepath.Ext(cfg.FilePath)); ext {
	case ".xlsx", ".xlsm":
		return readExcel(cfg.FilePath, cfg.SheetName)
	case ".csv":
		return readCSV(cfg.FilePath)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("get rows of %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // allow ragged rows
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// columnIndex converts "A" or "1" into a 0-based index.
func columnIndex(column string) (int, error) {
	column = strings.TrimSpace(column)
	if column == "" {
		return 0, nil
	}

	if n, err := strconv.Atoi(column); err == nil {
		if n < 1 {
			return 0, fmt.Errorf("column must be positive, got %d", n)
		}
		return n - 1, nil
	}

	n, err := excelize.ColumnNameToNumber(column)
	if err != nil {
		return 0, fmt.Errorf("parse column %q: %w", column, err)
	}
	return n - 1, nil
}
