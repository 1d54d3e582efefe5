// Package analyzers provides all custom static analyzers for nerbench.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/ersonp/nerbench/tools/nerbench-lint/analyzers/loopcall"
	"github.com/ersonp/nerbench/tools/nerbench-lint/analyzers/regexloop"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		loopcall.Analyzer,
		regexloop.Analyzer,
	}
}
