package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rm-hull/prop-firms-api/internal/redirects"
)

// Redirects writes the current slug -> destination table as JSON, for hosts
// that serve /go/ links statically.
func Redirects(out string) error {
	app, err := bootstrap()
	if err != nil {
		return err
	}

	table := redirects.Load(context.Background(), app.source, app.builder, app.cfg.Redirects)

	var w io.Writer = os.Stdout
	if out != "" && out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", out, err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Printf("failed to close %s: %v", out, err)
			}
		}()
		w = f
	}

	if err := table.WriteJSON(w); err != nil {
		return err
	}
	log.Printf("wrote %d redirects", table.Len())
	return nil
}
