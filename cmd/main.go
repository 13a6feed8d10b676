package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/prajwalw/tempobill/app"
	"github.com/prajwalw/tempobill/internal/config"
	"github.com/prajwalw/tempobill/internal/service"
	"github.com/prajwalw/tempobill/pkg/tempo"
)

func main() {
	// A missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	tempoClient := tempo.New(cfg.TempoBaseURL, cfg.TempoAPIToken)

	consultant := service.
		NewConsultant(cfg.BillingMode, cfg.ConsultantRate, tempoClient).
		WithUnitPolicy(cfg.MonthlyUnitPolicy).
		WithName(cfg.ConsultantName).
		WithUserID(cfg.ConsultantUserID)

	app := app.New(slog.Default(), consultant, cfg.APIToken).
		WithHost(cfg.Host).
		WithPort(cfg.Port)

	// Run the server
	err = app.Serve()
	if err != nil {
		fmt.Println(err)
	}
}
