package logstyle

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lmittmann/tint"

	"goidioms/internal/ux"
)

var errUserMissing = errors.New("user not found")

func runTinted(ctx context.Context, p *ux.Printer) error {
	logger := slog.New(tint.NewHandler(p.Writer(), &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "15:04:05",
		NoColor:    p.Plain(),
	}))

	p.Stepf("a third-party handler behind the same slog front:")
	logger.Info(eventStart, "component", componentName)
	logger.Warn(eventLookup, "user_id", lookupUserID, tint.Err(errUserMissing))
	logger.Info(eventShutdown, "uptime", sampleUptime)

	p.Notef("The Handler interface is the whole contract, so the ecosystem")
	p.Notef("competes on rendering: tint colors levels, dims timestamps and")
	p.Notef("paints tint.Err attributes red, and no call site knows it is")
	p.Notef("installed. Styling obeys the plain flag here via NoColor.")
	return nil
}
