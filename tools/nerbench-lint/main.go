// nerbench-lint is a custom static analyzer for nerbench performance patterns.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/ersonp/nerbench/tools/nerbench-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
