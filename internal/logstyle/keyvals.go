package logstyle

import (
	"context"
	"fmt"
	"log"
	"strings"

	"goidioms/internal/ux"
)

// kvLine appends alternating key/value pairs to a message, the folk
// convention structured logging grew out of. A dangling key is dropped.
func kvLine(msg string, kvs ...any) string {
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(kvs); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kvs[i], kvs[i+1])
	}
	return b.String()
}

func runKeyvals(ctx context.Context, p *ux.Printer) error {
	logger := log.New(p.Writer(), "", log.Ldate|log.Ltime)

	p.Stepf("the same events, structure spelled by hand:")
	logger.Print(kvLine(eventStart, "component", componentName))
	logger.Print(kvLine(eventLookup, "level", "warn", "user_id", lookupUserID))
	logger.Print(kvLine(eventShutdown, "uptime", sampleUptime))

	p.Stepf("the convention is social, not checked:")
	p.Failf("kvLine(\"lookup\", \"user_id\") = %q, the dangling key just vanished", kvLine("lookup", "user_id"))

	p.Notef("key=value lines grep AND parse, which is why half the fleet wrote")
	p.Notef("them long before the standard library did. But nothing holds the")
	p.Notef("convention up: pairs drift out of alignment, values with spaces")
	p.Notef("break naive parsers, and every team quotes differently.")
	return nil
}
