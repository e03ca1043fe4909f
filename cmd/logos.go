package cmd

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/rm-hull/prop-firms-api/internal/logos"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Logos looks up a logo for every firm and prints the results as JSON.
func Logos(concurrency int) error {
	app, err := bootstrap()
	if err != nil {
		return err
	}

	ctx := context.Background()
	snapshot := app.source.Load(ctx)

	finder := logos.NewFinder(&http.Client{Timeout: app.cfg.FetchTimeout()})
	start := time.Now()
	results := finder.FindAll(ctx, snapshot.Directory.Firms, concurrency)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return err
	}

	found := 0
	for _, r := range results {
		if r.Logo != "" {
			found++
		}
	}
	log.Printf("found %d/%d logos in %v", found, len(results), time.Since(start))
	return nil
}
