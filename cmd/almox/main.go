package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/almoxarifado/internal/app"
	"github.com/jhoicas/almoxarifado/internal/interfaces/cli"
	"github.com/jhoicas/almoxarifado/pkg/config"
	"github.com/jhoicas/almoxarifado/pkg/logger"
)

func main() {
	root := cli.NewRootCommand(cli.Options{
		Out: os.Stdout,
		Build: func(ctx context.Context) (*app.Container, error) {
			cfg, err := config.Load()
			if err != nil {
				return nil, fmt.Errorf("cargar configuración: %w", err)
			}
			// Los logs van a stderr para no mezclarse con las tablas.
			log := logger.New(logger.Config{
				Env:    cfg.App.Env,
				Level:  cfg.App.LogLevel,
				Output: os.Stderr,
			})
			return app.Build(ctx, cfg, log)
		},
	})
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
}
