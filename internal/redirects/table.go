// Package redirects builds the slug -> destination table behind /go/:slug.
package redirects

import (
	"context"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"

	"github.com/rm-hull/prop-firms-api/internal"
	"github.com/rm-hull/prop-firms-api/internal/affiliates"
	"github.com/rm-hull/prop-firms-api/internal/firms"
	"github.com/rm-hull/prop-firms-api/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	SourceStatic   = "static"
	SourceSheet    = "sheet"
	SourceFallback = "fallback"
)

type Table struct {
	entries []models.Redirect
	bySlug  map[string]int
}

// Build collects redirects from the static config, the live directory and the
// bundled directory, in that order. The first entry for a slug wins and firms
// without any outbound link are skipped. Either directory may be nil.
func Build(static map[string]string, live, fallback *firms.Directory, builder *affiliates.Builder) *Table {
	t := &Table{
		entries: []models.Redirect{},
		bySlug:  make(map[string]int),
	}

	for _, slug := range slices.Sorted(maps.Keys(static)) {
		t.add(slug, static[slug], SourceStatic)
	}
	t.addDirectory(live, builder, SourceSheet)
	t.addDirectory(fallback, builder, SourceFallback)

	return t
}

// Load builds the table from whatever the source currently serves. Sheet
// entries are only used when the sheet itself could be read.
func Load(ctx context.Context, source *internal.FirmSource, builder *affiliates.Builder, static map[string]string) *Table {
	snapshot := source.Load(ctx)

	var live *firms.Directory
	if snapshot.Live {
		live = snapshot.Directory
	}
	return Build(static, live, source.Fallback(), builder)
}

func (t *Table) addDirectory(dir *firms.Directory, builder *affiliates.Builder, source string) {
	if dir == nil {
		return
	}
	for _, firm := range dir.Firms {
		t.add(firm.Key, builder.SignupLink(firm), source)
	}
}

func (t *Table) add(slug, destination, source string) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	destination = strings.TrimSpace(destination)
	if slug == "" || destination == "" {
		return
	}
	if _, exists := t.bySlug[slug]; exists {
		return
	}
	t.bySlug[slug] = len(t.entries)
	t.entries = append(t.entries, models.Redirect{Slug: slug, Destination: destination, Source: source})
}

func (t *Table) Lookup(slug string) (models.Redirect, bool) {
	idx, ok := t.bySlug[strings.ToLower(slug)]
	if !ok {
		return models.Redirect{}, false
	}
	return t.entries[idx], true
}

func (t *Table) Entries() []models.Redirect {
	return slices.Clone(t.entries)
}

func (t *Table) Len() int {
	return len(t.entries)
}

func (t *Table) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t.entries); err != nil {
		return errors.Wrap(err, "failed to encode redirect table")
	}
	return nil
}
