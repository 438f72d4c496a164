package logstyle

import (
	"context"
	"log"

	"goidioms/internal/ux"
)

func runStdlog(ctx context.Context, p *ux.Printer) error {
	logger := log.New(p.Writer(), "directory: ", log.Ldate|log.Ltime)

	p.Stepf("package log: a prefix, flags and printf prose:")
	logger.Printf("%s, component %s", eventStart, componentName)
	logger.Printf("WARN %s for id %d", eventLookup, lookupUserID)
	logger.Printf("%s after %s", eventShutdown, sampleUptime)

	p.Notef("Everything a reader needs is in the sentence, which means")
	p.Notef("everything a machine needs is also in the sentence. There are no")
	p.Notef("levels, so WARN is spelled by hand, and the only query language")
	p.Notef("this format will ever have is grep.")
	return nil
}
