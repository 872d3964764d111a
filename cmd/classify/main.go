// Command classify reads a JSON array of plant records, classifies each one
// against the environment profile catalog, and writes the enriched results.
//
// Usage:
//
//	go run ./cmd/classify -in data/plants.json -out classified.json
//
// With no flags it reads stdin and writes stdout. Configuration comes from
// the environment: LOG_LEVEL, LOG_FORMAT, CACHE_SIZE, PROFILE_OVERRIDES.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/couchcryptid/vivarium-match/internal/cache"
	"github.com/couchcryptid/vivarium-match/internal/config"
	"github.com/couchcryptid/vivarium-match/internal/domain"
	"github.com/couchcryptid/vivarium-match/internal/engine"
	"github.com/couchcryptid/vivarium-match/internal/observability"
)

// classifiedPlant is the output row: the input record plus the ranked
// profiles and the enclosure size estimate.
type classifiedPlant struct {
	domain.PlantRecord
	Classification domain.Classification `json:"classification"`
	Enclosure      domain.SizeEstimate   `json:"enclosure"`
}

func main() {
	if err := run(); err != nil {
		slog.Error("classify failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	inPath := flag.String("in", "", "input JSON file of plant records (default stdin)")
	outPath := flag.String("out", "", "output JSON file (default stdout)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	catalog, err := config.LoadProfileCatalog(cfg.ProfileOverrides)
	if err != nil {
		return err
	}
	if cfg.ProfileOverrides != "" {
		logger.Info("profile overrides applied", "path", cfg.ProfileOverrides)
	}

	records, err := readRecords(*inPath)
	if err != nil {
		return err
	}

	classifier := engine.New(catalog, cache.NewLRU(cfg.CacheSize), logger, metrics)

	out := make([]classifiedPlant, len(records))
	for i, rec := range records {
		out[i] = classifiedPlant{
			PlantRecord:    rec,
			Classification: classifier.Classify(rec),
			Enclosure:      classifier.EstimateEnclosure(rec),
		}
	}

	logger.Info("classification complete", "plants", len(out))
	return writeResults(*outPath, out)
}

func readRecords(path string) ([]domain.PlantRecord, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var records []domain.PlantRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding plant records: %w", err)
	}
	return records, nil
}

func writeResults(path string, results []classifiedPlant) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	return nil
}
