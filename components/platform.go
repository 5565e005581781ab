package components

import "fmt"

// PlatformKind tags a platform as the ground or a floating pad.
type PlatformKind uint8

const (
	KindGround PlatformKind = iota
	KindPad
)

// String returns the layout name of the kind.
func (k PlatformKind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindPad:
		return "pad"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParsePlatformKind maps a layout name to a kind.
// "sand" and "lilypad" are accepted as aliases.
func ParsePlatformKind(s string) (PlatformKind, error) {
	switch s {
	case "ground", "sand":
		return KindGround, nil
	case "pad", "lilypad":
		return KindPad, nil
	default:
		return 0, fmt.Errorf("unknown platform kind %q", s)
	}
}

// Platform is a static collision rectangle.
type Platform struct {
	Rect
	Kind PlatformKind
}
