package checkful

import (
	"fmt"
)

type packagedFunc struct {
	pkgPath string
	name    string
}

// SigAssertType describes varieties of recognized assertion entry points.
type SigAssertType int

const (
	SigAssertTypeInvalid SigAssertType = iota

	// SigAssertTypeThat is the generic entry point: asserted value
	// plus an optional constraint argument.
	SigAssertTypeThat

	// SigAssertTypeNotNil demands its subject argument to be non-nil.
	SigAssertTypeNotNil

	// SigAssertTypeTrue demands its subject argument to be true.
	SigAssertTypeTrue
)

var sigAssertTypeValueMap = map[SigAssertType]string{
	SigAssertTypeThat:   "that",
	SigAssertTypeNotNil: "notnil",
	SigAssertTypeTrue:   "true",
}

func (s SigAssertType) String() string {
	v, ok := sigAssertTypeValueMap[s]
	if !ok {
		return fmt.Sprintf("invalid(%d)", s)
	}

	return v
}

// UnmarshalText for setting values with configs, CLI, etc.
func (s *SigAssertType) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range sigAssertTypeValueMap {
		if v == text {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("unknown assertion entry type %q", text)
}

// SigScopeType describes varieties of assertion scoping.
type SigScopeType int

const (
	SigScopeTypeInvalid SigScopeType = iota

	// SigScopeTypeSoft collects assertion failures instead of
	// aborting execution; assertions inside prove nothing locally.
	SigScopeTypeSoft
)

var sigScopeTypeValueMap = map[SigScopeType]string{
	SigScopeTypeSoft: "soft",
}

func (s SigScopeType) String() string {
	v, ok := sigScopeTypeValueMap[s]
	if !ok {
		return fmt.Sprintf("invalid(%d)", s)
	}

	return v
}

func (s *SigScopeType) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range sigScopeTypeValueMap {
		if v == text {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("unknown assertion scope type %q", text)
}
