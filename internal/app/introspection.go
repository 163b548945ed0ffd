package app

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// MermaidGraphIntrospector is an implementation of the Introspector interface that generates a Mermaid graph
// representation of the application's configuration and dependencies, and registers it in the dependency container.
type MermaidGraphIntrospector struct {
}

// Introspect generates a Mermaid graph from the provided introspection report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	mermaidGraph := mermaid.GenerateIntrospectionGraph(r)
	depend.RegisterNamed(mermaidGraph, "introspection-graph-mermaid")
	return nil
}

// ReportLoggerIntrospector logs which configuration keys were read at startup and
// which of them fell back to their default values.
type ReportLoggerIntrospector struct {
	Logger *log.Logger
}

// Introspect writes one summary line for the configuration accesses in the report.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger := i.Logger
	if logger == nil {
		resolved, err := depend.Resolve[*log.Logger]()
		if err != nil {
			logger = log.Default()
		} else {
			logger = resolved
		}
	}

	provided, defaulted := splitConfigKeys(r.Configs)
	logger.Printf("ReportLoggerIntrospector: %d config keys read; provided=[%s] defaulted=[%s]",
		len(provided)+len(defaulted),
		strings.Join(provided, ","),
		strings.Join(defaulted, ","),
	)
	return nil
}

// splitConfigKeys returns the sorted, de-duplicated keys read from a provider and those that used a default.
func splitConfigKeys(accesses []introspection.ConfigAccess) (provided []string, defaulted []string) {
	seen := map[string]bool{}
	for _, a := range accesses {
		if seen[a.Key] {
			continue
		}
		seen[a.Key] = true
		if a.UsedDefault {
			defaulted = append(defaulted, a.Key)
		} else {
			provided = append(provided, a.Key)
		}
	}
	sort.Strings(provided)
	sort.Strings(defaulted)
	return provided, defaulted
}
