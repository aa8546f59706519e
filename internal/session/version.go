package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadVersion is returned when major or minor cannot be extracted.
var ErrBadVersion = errors.New("invalid version")

// Version: версия Nix; Patch отсутствует, если его не было в строке.
type Version struct {
	Major    uint16
	Minor    uint16
	Patch    uint16
	HasPatch bool
}

// V builds a version without a patch component.
func V(major, minor uint16) Version {
	return Version{Major: major, Minor: minor}
}

// ParseVersion reads a free-form version string. Major, minor and patch
// are the leading digits of the first three dot-separated parts; major and
// minor are required, a patch part without digits is treated as absent.
// So "2.4pre20211006_53e4794" is 2.4, "2pre.4" is 2.4 and "2.18.1" is 2.18.1.
func ParseVersion(s string) (Version, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ".", 4)
	if len(parts) < 2 {
		return Version{}, fmt.Errorf("%w %q: need major and minor", ErrBadVersion, s)
	}
	var nums [2]uint16
	for i := range nums {
		n, ok, err := parseNumber(parts[i])
		if err != nil {
			return Version{}, fmt.Errorf("%w %q: %w", ErrBadVersion, s, err)
		}
		if !ok {
			return Version{}, fmt.Errorf("%w %q: need major and minor", ErrBadVersion, s)
		}
		nums[i] = n
	}
	v := Version{Major: nums[0], Minor: nums[1]}
	if len(parts) > 2 {
		// у патча ошибки не фатальны
		if n, ok, err := parseNumber(parts[2]); ok && err == nil {
			v.Patch, v.HasPatch = n, true
		}
	}
	return v, nil
}

// parseNumber reads the leading digits of part. ok is false when there are none.
func parseNumber(part string) (n uint16, ok bool, err error) {
	digits := leadingDigits(part)
	if digits == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseUint(digits, 10, 16)
	if err != nil {
		return 0, false, err
	}
	return uint16(v), true, nil
}

// MustParseVersion is ParseVersion for constants; it panics on error.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

// Compare orders versions by (major, minor, patch); a missing patch is 0.
func (v Version) Compare(o Version) int {
	switch {
	case v.Major != o.Major:
		return cmpU16(v.Major, o.Major)
	case v.Minor != o.Minor:
		return cmpU16(v.Minor, o.Minor)
	default:
		return cmpU16(v.Patch, o.Patch)
	}
}

func cmpU16(a, b uint16) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (v Version) Less(o Version) bool { return v.Compare(o) < 0 }

// AtLeast reports whether v is major.minor or newer.
func (v Version) AtLeast(major, minor uint16) bool {
	return v.Compare(V(major, minor)) >= 0
}

func (v Version) String() string {
	if v.HasPatch {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// MarshalText lets the version travel through TOML and JSON as a string.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Version) UnmarshalText(b []byte) error {
	parsed, err := ParseVersion(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
