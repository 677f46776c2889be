package robdd

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// statsString renders the short summary returned by Engine.Stats, grounded
// on rudd's stdio.go Stats()/gcstats(), trimmed to the fields that still
// apply once resizing and reference counting are gone: variable count,
// arena size, live (post-sweep) node count, and apply-cache occupancy.
func statsString(e *Engine) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "variables:\t%d\n", e.Varnum())
	fmt.Fprintf(w, "arena size:\t%d\n", len(e.nodes))
	fmt.Fprintf(w, "live nodes:\t%d\n", e.Size())
	fmt.Fprintf(w, "apply cache entries:\t%d\n", len(e.applyCache))
	w.Flush()
	return b.String()
}
