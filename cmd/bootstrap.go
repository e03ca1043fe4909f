package cmd

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/rm-hull/godx"

	"github.com/rm-hull/prop-firms-api/internal"
	"github.com/rm-hull/prop-firms-api/internal/affiliates"
	"github.com/rm-hull/prop-firms-api/internal/config"
	"github.com/rm-hull/prop-firms-api/internal/fallback"
)

type app struct {
	cfg     *config.Config
	client  internal.SheetClient
	source  *internal.FirmSource
	builder *affiliates.Builder
}

// bootstrap initialises shared resources used by every command: the layered
// config, the sheet client and the firm source that falls back to the bundled
// list.
func bootstrap() (*app, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	godx.GitVersion()
	godx.EnvironmentVars()
	godx.UserInfo()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.SheetCSVURL == "" {
		log.Println("WARNING: no sheet URL configured, serving the bundled firm list only")
	}

	if _, err := fallback.Map(); err != nil {
		return nil, fmt.Errorf("bundled firm list is invalid: %w", err)
	}

	client := internal.NewSheetClient(cfg.SheetCSVURL, cfg.Revalidate(), cfg.FetchTimeout())

	return &app{
		cfg:     cfg,
		client:  client,
		source:  internal.NewFirmSource(client, fallback.Directory()),
		builder: affiliates.NewBuilder(cfg.Affiliates),
	}, nil
}
