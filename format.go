package interval

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Textual forms of the two non-proper states.
const (
	emptyText     = "empty interval"
	undefinedText = "undefined interval"
)

// String returns "[inf, sup]" with each endpoint in its shortest
// round-trip decimal form, or the literal text of the empty or undefined
// state.
func (x Interval) String() string {
	switch x.form {
	case empty:
		return emptyText
	case undef:
		return undefinedText
	}
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(endpointText(x.inf))
	b.WriteString(", ")
	b.WriteString(endpointText(x.sup))
	b.WriteByte(']')
	return b.String()
}

var _ fmt.Stringer = Interval{}

// endpointText formats f in the shortest form that parses back to the
// same float64, keeping a decimal point or exponent so that a singleton
// prints as [2.0, 2.0] rather than [2, 2].
func endpointText(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Format implements fmt.Formatter. The verbs 'v', 's' and 'q' print the
// String form; 'f', 'e', 'E', 'g' and 'G' apply the verb and the state's
// precision to both endpoints. Empty and undefined intervals print their
// String form under every supported verb.
func (x Interval) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		io.WriteString(s, x.String())
	case 'q':
		fmt.Fprintf(s, "%q", x.String())
	case 'f', 'e', 'E', 'g', 'G':
		if x.form != proper {
			io.WriteString(s, x.String())
			return
		}
		prec, ok := s.Precision()
		if !ok {
			prec = -1
			if verb == 'f' || verb == 'e' || verb == 'E' {
				prec = 6
			}
		}
		io.WriteString(s, "[")
		io.WriteString(s, strconv.FormatFloat(x.inf, byte(verb), prec, 64))
		io.WriteString(s, ", ")
		io.WriteString(s, strconv.FormatFloat(x.sup, byte(verb), prec, 64))
		io.WriteString(s, "]")
	default:
		fmt.Fprintf(s, "%%!%c(interval.Interval=%s)", verb, x.String())
	}
}

var _ fmt.Formatter = Interval{}
