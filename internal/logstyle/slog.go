package logstyle

import (
	"context"
	"log/slog"

	"goidioms/internal/ux"
)

func runSlog(ctx context.Context, p *ux.Printer) error {
	p.Stepf("slog with a TextHandler:")
	text := slog.New(slog.NewTextHandler(p.Writer(), nil))
	text.Info(eventStart, "component", componentName)
	text.Warn(eventLookup, "user_id", lookupUserID)
	text.Info(eventShutdown, "uptime", sampleUptime)

	p.Stepf("swap the handler and the same calls emit JSON:")
	js := slog.New(slog.NewJSONHandler(p.Writer(), nil))
	js.Info(eventStart, "component", componentName)
	js.Warn(eventLookup, "user_id", lookupUserID)
	js.Info(eventShutdown, "uptime", sampleUptime)

	p.Stepf("With pins shared attrs, WithGroup namespaces the rest:")
	req := js.With("component", componentName).WithGroup("req")
	req.Warn(eventLookup, "user_id", lookupUserID, "attempt", 2)

	p.Stepf("the dangling key from the folk era is loud now:")
	text.Info("lookup", "user_id")

	p.Stepf("levels are data, adjustable at run time:")
	lvl := new(slog.LevelVar)
	gated := slog.New(slog.NewTextHandler(p.Writer(), &slog.HandlerOptions{Level: lvl}))
	gated.Debug("cache warmed", "entries", 128)
	p.Bulletf("a debug line was just dropped at the default Info threshold")
	lvl.Set(slog.LevelDebug)
	gated.Debug("cache warmed", "entries", 128)
	p.Bulletf("after LevelVar.Set(Debug) the same call prints")

	p.Notef("Call sites state what happened and name their data; the handler")
	p.Notef("owns rendering, destination and threshold. The two handlers above")
	p.Notef("served the same calls, which is the point: structure stopped being")
	p.Notef("a formatting habit and became the API.")
	return nil
}
