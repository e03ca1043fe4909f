package internal

import (
	"context"
	"log"

	"github.com/rm-hull/prop-firms-api/internal/firms"
	"github.com/rm-hull/prop-firms-api/internal/metrics"
	"github.com/rm-hull/prop-firms-api/internal/models"
)

// Snapshot is one load of the firm directory together with how it was parsed.
type Snapshot struct {
	Parsed    models.ParseResult
	Directory *firms.Directory
	Live      bool
	Error     string
}

// FirmSource picks between the live sheet and the bundled fallback list.
type FirmSource struct {
	client   SheetClient
	fallback *firms.Directory
}

func NewFirmSource(client SheetClient, fallback *firms.Directory) *FirmSource {
	if fallback == nil {
		fallback = firms.NewDirectory(nil)
	}
	return &FirmSource{client: client, fallback: fallback}
}

// Fetch loads the live sheet and reports any failure to the caller.
func (src *FirmSource) Fetch(ctx context.Context, nocache bool) (*Snapshot, error) {
	text, err := src.client.FetchCSV(ctx, nocache)
	if err != nil {
		return nil, err
	}
	return src.snapshot(text), nil
}

// Refresh reloads the live sheet regardless of what is cached.
func (src *FirmSource) Refresh(ctx context.Context) (*Snapshot, error) {
	text, err := src.client.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	return src.snapshot(text), nil
}

func (src *FirmSource) snapshot(text string) *Snapshot {
	parsed := Parse(text)
	dir := firms.BuildDirectory(parsed.Rows)
	metrics.RowIssues.Set(float64(len(dir.Issues)))

	return &Snapshot{Parsed: parsed, Directory: dir, Live: true}
}

// Load never fails: when the live sheet is unavailable the bundled list is
// served instead. Firms without a key or name are dropped either way.
func (src *FirmSource) Load(ctx context.Context) *Snapshot {
	snapshot, err := src.Fetch(ctx, false)
	if err == nil {
		snapshot.Directory = snapshot.Directory.Complete()
		return snapshot
	}

	log.Printf("falling back to bundled firm list: %v", err)
	metrics.FallbackLoads.Inc()
	return &Snapshot{
		Parsed:    models.ParseResult{Rows: []models.Row{}, Errors: []models.ParseError{}},
		Directory: src.fallback.Complete(),
		Live:      false,
		Error:     err.Error(),
	}
}

func (src *FirmSource) Fallback() *firms.Directory {
	return src.fallback
}
