// Package khelp renders the human-readable list of targets of a catalog.
package khelp

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/birdayz/ktarget/kdef"
)

// TargetsText lists every target in declaration order with its description,
// default marker and direct dependencies.
//
//	Targets (with their direct dependencies):
//
//	  Restore
//	  Compile (default)  -> Restore  compiles the sources
func TargetsText(c *kdef.Catalog) string {
	var sb strings.Builder
	sb.WriteString("Targets (with their direct dependencies):\n\n")

	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	for _, t := range c.Targets() {
		name := t.Name
		if t.IsDefault {
			name += " (default)"
		}

		deps := ""
		if len(t.Dependencies) > 0 {
			deps = "-> " + strings.Join(kdef.Names(t.Dependencies), ", ")
		}

		fmt.Fprintf(tw, "  %s\t%s\t%s\n", name, deps, t.Description)
	}
	_ = tw.Flush()

	return strings.TrimRight(sb.String(), " \n") + "\n"
}
