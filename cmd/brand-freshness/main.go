package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/diillson/brand-freshness-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/brand-freshness-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/brand-freshness-dashboard-go/internal/adapter/driven/source"
	"github.com/diillson/brand-freshness-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/brand-freshness-dashboard-go/internal/application/usecase"
	"github.com/diillson/brand-freshness-dashboard-go/pkg/console"
	"github.com/diillson/brand-freshness-dashboard-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso; a fonte de dados é escolhida pelas flags
	dashboardUseCase := usecase.NewDashboardUseCase(
		source.NewSourceRepository,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	app.SetDashboardUseCase(dashboardUseCase)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
