package physics

import (
	"strconv"

	"github.com/san-kum/bounce/internal/dynamo"
)

// White is used whenever a color string cannot be parsed.
const White dynamo.Color = 0xFFFFFF

// ParseHexColor converts "#RRGGBB" into a packed color. Malformed input
// falls back to white instead of failing.
func ParseHexColor(s string) dynamo.Color {
	if len(s) != 7 || s[0] != '#' {
		return White
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return White
	}
	return dynamo.Color(v)
}
