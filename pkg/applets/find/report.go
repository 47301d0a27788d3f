package find

import (
	"fmt"
	"io"
	"sort"
)

// Report prints matches sorted ascending, one per tab-indented line, or a
// notice when there are none. The input slice is left untouched.
func Report(w io.Writer, matches []string) {
	if len(matches) == 0 {
		fmt.Fprintln(w, "no matches found")
		return
	}
	sorted := append([]string(nil), matches...)
	sort.Strings(sorted)
	fmt.Fprintln(w, "matches found:")
	for _, p := range sorted {
		fmt.Fprintf(w, "\t%s\n", p)
	}
}
