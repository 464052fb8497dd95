package pattern

import (
	"fmt"
	"strings"
)

// Anchor names a movable date derived from Easter Sunday.
type Anchor int

const (
	EasterFriday Anchor = iota + 1
	EasterSunday
	EasterMonday
)

// Anchors lists every known anchor in calendar order.
var Anchors = []Anchor{EasterFriday, EasterSunday, EasterMonday}

var anchorNames = map[Anchor]string{
	EasterFriday: "easterFriday",
	EasterSunday: "easterSunday",
	EasterMonday: "easterMonday",
}

// ParseAnchor accepts the camelCase form used in pattern files ("easterMonday")
// as well as the upper snake case form ("EASTER_MONDAY").
func ParseAnchor(s string) (Anchor, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
	for a, name := range anchorNames {
		if strings.ToLower(name) == key {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown anchor %q", s)
}

// OffsetDays returns the distance of the anchor from Easter Sunday.
func (a Anchor) OffsetDays() int {
	switch a {
	case EasterFriday:
		return -2
	case EasterMonday:
		return 1
	default:
		return 0
	}
}

func (a Anchor) String() string {
	if name, ok := anchorNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Anchor(%d)", int(a))
}

// MarshalText implements encoding.TextMarshaler.
func (a Anchor) MarshalText() ([]byte, error) {
	if _, ok := anchorNames[a]; !ok {
		return nil, fmt.Errorf("unknown anchor %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Anchor) UnmarshalText(text []byte) error {
	parsed, err := ParseAnchor(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
