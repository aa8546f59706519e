// Package session carries run-wide, read-only context for rules: the Nix
// version the code is linted against.
package session

// Default is assumed when neither the config nor `nix --version` says
// otherwise.
var Default = V(2, 4)

// Info is immutable after construction and safe to share between goroutines.
type Info struct {
	version Version
}

func New(v Version) *Info {
	return &Info{version: v}
}

// FromString parses v and builds an Info.
func FromString(v string) (*Info, error) {
	parsed, err := ParseVersion(v)
	if err != nil {
		return nil, err
	}
	return New(parsed), nil
}

func (i *Info) Version() Version {
	if i == nil {
		return Default
	}
	return i.version
}
