package main

import (
	"net/http"

	"mayday/internal/config"
	"mayday/internal/telemetry"

	"github.com/labstack/gommon/log"
)

// newTelemetryServer returns nil when telemetry is disabled.
func newTelemetryServer(settings config.Settings, source telemetry.Source, lg *log.Logger) *http.Server {
	if !settings.TelemetryEnabled {
		return nil
	}
	return &http.Server{
		Addr:    settings.TelemetryAddress,
		Handler: telemetry.New(source, lg),
	}
}
