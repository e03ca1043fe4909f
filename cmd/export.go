package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/rm-hull/prop-firms-api/internal/export"
)

func Export(out string) error {
	app, err := bootstrap()
	if err != nil {
		return err
	}

	snapshot := app.source.Load(context.Background())
	if !snapshot.Live {
		log.Printf("exporting bundled firm list: %s", snapshot.Error)
	}

	if err := export.SaveAs(out, snapshot.Directory.Firms, app.builder); err != nil {
		return fmt.Errorf("failed to export firms: %w", err)
	}
	log.Printf("exported %d firms to %s", snapshot.Directory.Len(), out)
	return nil
}
