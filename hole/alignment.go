package hole

import (
	"fmt"
	"strings"
)

// Alignment selects the plane of a hole that lies on z=0.
// The zero value is not a valid alignment.
type Alignment int

const (
	_ Alignment = iota
	// Top puts the top face on z=0 so the hole extends downwards.
	Top
	// Center puts the middle of the hole on z=0.
	Center
	// Bottom puts the bottom face on z=0 so the hole extends upwards.
	Bottom
)

func (a Alignment) String() string {
	switch a {
	case Top:
		return "top"
	case Center:
		return "center"
	case Bottom:
		return "bottom"
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

func (a Alignment) valid() bool {
	return a == Top || a == Center || a == Bottom
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, fmt.Errorf("%v: %w", a, ErrAlignment)
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "top":
		*a = Top
	case "center":
		*a = Center
	case "bottom":
		*a = Bottom
	default:
		return fmt.Errorf("%q: %w", text, ErrAlignment)
	}
	return nil
}

// offset returns the shift along z that moves a bottom-aligned hole of
// height h to alignment a.
func (a Alignment) offset(h float64) (float64, error) {
	switch a {
	case Top:
		return -h, nil
	case Center:
		return -h / 2, nil
	case Bottom:
		return 0, nil
	}
	return 0, fmt.Errorf("%v: %w", a, ErrAlignment)
}
