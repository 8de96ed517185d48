package ranges

import (
	"strconv"
	"strings"
)

// String renders r as an explicit, comma-separated combo list (card pairs,
// with a ":weight" suffix whenever the weight isn't the default 100). This
// is not the most compact notation a human would write, but it round-trips
// exactly through FromString, which is the only property callers depend on.
func (r HandRange) String() string {
	var sb strings.Builder
	for i, c := range r.combos {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(c.A.String())
		sb.WriteString(c.B.String())
		if c.Weight != 100 {
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(c.Weight))
		}
	}
	return sb.String()
}
