package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mayday/internal/config"
	"mayday/internal/game/simulation"
	"mayday/internal/logging"
	"mayday/internal/telemetry"

	"github.com/labstack/gommon/log"
)

func main() {
	settings, err := config.Load(".")
	if err != nil {
		log.Fatal(err)
	}

	lg := logging.New("mayday-server", settings.LogLevel, settings.LogsDir)
	defer lg.Close()
	lg.Infof("Starting headless with seed %d, density %v, layout %v", settings.Seed, settings.Density, settings.Layout)

	sim, err := simulation.NewSimulation(settings.SimulationConfig(lg.Logger))
	if err != nil {
		lg.Fatal(err)
	}
	guard := telemetry.NewGuard(sim)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := newTelemetryServer(settings, guard, lg.Logger)
	if srv != nil {
		go func() {
			lg.Infof("Telemetry listening on %s", settings.TelemetryAddress)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				lg.Errorf("telemetry server: %v", err)
				stop()
			}
		}()
	} else {
		lg.Info("Telemetry disabled")
	}

	run(ctx, guard, settings.TPS)

	lg.Info("Shutting down")
	if srv == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Errorf("telemetry shutdown: %v", err)
	}
}
