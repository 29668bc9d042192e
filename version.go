package wsrp

import "fmt"

// Version is the WSRP protocol version a producer or consumer speaks.
type Version int

const (
	V1 Version = 1
	V2 Version = 2
)

func (v Version) String() string {
	switch v {
	case V1:
		return "v1"
	case V2:
		return "v2"
	}
	return fmt.Sprintf("v%d", int(v))
}

// ParseVersion accepts 1, 2, "1", "2", "v1" and "v2".
func ParseVersion(value string) (Version, error) {
	switch value {
	case "1", "v1":
		return V1, nil
	case "2", "v2":
		return V2, nil
	}
	return 0, fmt.Errorf("unknown WSRP version %q", value)
}
