package telemetry

import (
	"time"

	"repair-server/confs"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"
)

var connectTimeout = 5 * time.Second

// InitNewRelic returns nil, nil when New Relic is disabled or unlicensed.
// An application that fails to connect is shut down before returning.
func InitNewRelic(cfg confs.NewRelicConfig) (*newrelic.Application, error) {
	if !cfg.Enabled || cfg.LicenseKey == "" {
		return nil, nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.AppName),
		newrelic.ConfigLicense(cfg.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(true),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create New Relic application")
	}

	if err := app.WaitForConnection(connectTimeout); err != nil {
		app.Shutdown(connectTimeout)
		return nil, errors.Wrap(err, "New Relic did not connect")
	}

	return app, nil
}
