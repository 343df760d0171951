// Package colorutils normalises the colour representations of slide backends
// into a single RGBA record.
package colorutils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/brandquad/decomposer/backend"
	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a colour with an alpha channel in 0..255.
type RGBA struct {
	Red   int `json:"red"`
	Green int `json:"green"`
	Blue  int `json:"blue"`
	Alpha int `json:"alpha"`
}

// Hex returns the colour as #rrggbb, ignoring alpha.
func (c RGBA) Hex() string {
	return colorful.Color{
		R: float64(c.Red) / 255,
		G: float64(c.Green) / 255,
		B: float64(c.Blue) / 255,
	}.Hex()
}

// Packed returns the colour in the packed form understood by Resolve.
func (c RGBA) Packed() int64 {
	inv := 255 - clamp(c.Alpha)
	return int64(uint32(inv)<<24 | uint32(clamp(c.Red))<<16 | uint32(clamp(c.Green))<<8 | uint32(clamp(c.Blue)))
}

// Policy adjusts a resolved colour in place.
type Policy func(c *RGBA)

// PlaceholderFillPolicy makes the default placeholder fill (114,159,207)
// fully transparent, whatever transparency the source declares.
func PlaceholderFillPolicy(c *RGBA) {
	if c.Red == 114 && c.Green == 159 && c.Blue == 207 {
		c.Alpha = 0
	}
}

// Resolver resolves colours and applies its policies in order.
type Resolver struct {
	policies []Policy
}

func NewResolver(policies ...Policy) Resolver {
	return Resolver{policies: policies}
}

func (r Resolver) Resolve(v any) *RGBA {
	c := Resolve(v)
	if c == nil {
		return nil
	}
	for _, p := range r.policies {
		p(c)
	}
	return c
}

// Resolve converts v into an RGBA record. v is either a packed 32 bit integer
// (high byte is the inverse alpha) or a backend.ColorObject. nil and
// unsupported values resolve to nil.
func Resolve(v any) *RGBA {
	switch c := v.(type) {
	case nil:
		return nil
	case backend.ColorObject:
		return fromObject(c)
	case *backend.ColorObject:
		if c == nil {
			return nil
		}
		return fromObject(*c)
	case RGBA:
		return &c
	case *RGBA:
		if c == nil {
			return nil
		}
		cp := *c
		return &cp
	}
	n, ok := packed(v)
	if !ok {
		return nil
	}
	u := uint32(n)
	return &RGBA{
		Red:   int(u >> 16 & 0xff),
		Green: int(u >> 8 & 0xff),
		Blue:  int(u & 0xff),
		Alpha: 255 - int(u>>24&0xff),
	}
}

func fromObject(c backend.ColorObject) *RGBA {
	return &RGBA{
		Red:   int(c.Red),
		Green: int(c.Green),
		Blue:  int(c.Blue),
		Alpha: clamp(255 - int(math.Round(c.Transparency*2.55))),
	}
}

func packed(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	}
	return 0, false
}

// FromHex parses #rrggbb, rrggbb or aarrggbb (GoPPT ARGB form).
func FromHex(s string) (*RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	alpha := 255
	if len(s) == 8 {
		a, err := strconv.ParseUint(s[:2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("bad alpha in %q: %w", s, err)
		}
		alpha = int(a)
		s = s[2:]
	}
	col, err := colorful.Hex("#" + s)
	if err != nil {
		return nil, err
	}
	r, g, b := col.RGB255()
	return &RGBA{Red: int(r), Green: int(g), Blue: int(b), Alpha: alpha}, nil
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
