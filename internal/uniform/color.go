package uniform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"golang.org/x/image/colornames"
)

// RGB is a linear colour with channels in [0,1]. A *RGB is the mutable
// holder the parameter panel edits.
type RGB [3]float32

// Black is the default colour for materials without one.
var Black = RGB{}

// ParseColor accepts "#rgb", "#rrggbb", "rgb(r, g, b)" with 0-255 or
// percentage channels, and SVG colour names.
func ParseColor(s string) (RGB, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(str, "#"):
		return parseHex(str[1:])
	case strings.HasPrefix(str, "rgb(") && strings.HasSuffix(str, ")"):
		return parseFunc(str[4 : len(str)-1])
	}
	if c, ok := colornames.Map[str]; ok {
		return RGB{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}, nil
	}
	return RGB{}, fmt.Errorf("%w: unrecognised colour %q", ErrInvalidValue, s)
}

// MustParseColor is ParseColor for literals known to be valid.
func MustParseColor(s string) RGB {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(h string) (RGB, error) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: hex colour #%s must have 3 or 6 digits", ErrInvalidValue, h)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: hex colour #%s: %v", ErrInvalidValue, h, err)
	}
	return RGB{
		float32(n>>16&0xff) / 255,
		float32(n>>8&0xff) / 255,
		float32(n&0xff) / 255,
	}, nil
}

func parseFunc(args string) (RGB, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("%w: rgb() needs 3 channels, got %d", ErrInvalidValue, len(parts))
	}
	var c RGB
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if pct, ok := strings.CutSuffix(p, "%"); ok {
			f, err := strconv.ParseFloat(pct, 64)
			if err != nil {
				return RGB{}, fmt.Errorf("%w: channel %q: %v", ErrInvalidValue, p, err)
			}
			c[i] = float32(f / 100)
			continue
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: channel %q: %v", ErrInvalidValue, p, err)
		}
		c[i] = float32(f) / 255
	}
	return c, nil
}

// String formats the colour so that ParseColor returns it unchanged:
// "#rrggbb" when every channel is an exact byte, rgb() percentages otherwise.
func (c RGB) String() string {
	var b [3]uint8
	exact := true
	for i, v := range c {
		b[i] = uint8(math32.Round(math32.Max(0, math32.Min(1, v)) * 255))
		if float32(b[i])/255 != v {
			exact = false
		}
	}
	if exact {
		return fmt.Sprintf("#%02x%02x%02x", b[0], b[1], b[2])
	}
	return fmt.Sprintf("rgb(%s%%, %s%%, %s%%)", pct(c[0]), pct(c[1]), pct(c[2]))
}

// pct prints v*100 with the fewest digits that still parse back to v.
func pct(v float32) string {
	short := strconv.FormatFloat(float64(v*100), 'f', -1, 32)
	if f, err := strconv.ParseFloat(short, 64); err == nil && float32(f/100) == v {
		return short
	}
	return strconv.FormatFloat(float64(v)*100, 'f', -1, 64)
}
