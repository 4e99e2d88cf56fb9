package serialize

import (
	"fmt"
	"io"
	"strings"
)

// FormatInitializerList renders legs as a brace-enclosed initializer list,
// one Leg(...) entry per line with the distance fixed to two decimals.
func FormatInitializerList(legs []Leg) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, l := range legs {
		fmt.Fprintf(&sb, "Leg(%q, %q, %.2f),\n", l.Origin, l.Destination, l.Distance)
	}
	sb.WriteString("};")
	return sb.String()
}

// WriteInitializerList writes FormatInitializerList(legs) followed by a newline.
func WriteInitializerList(w io.Writer, legs []Leg) error {
	_, err := io.WriteString(w, FormatInitializerList(legs)+"\n")
	return err
}
