// Package types provides type definitions for structured data used throughout the franchise-advisor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// HoursCommitment classifies how much weekly time the user wants to spend
// running the business once it is up.
type HoursCommitment string

// HoursCommitment values
const (
	HoursOwner   HoursCommitment = "owner"
	HoursSemi    HoursCommitment = "semi"
	HoursPassive HoursCommitment = "passive"
)

// SizePreference classifies the user's preferred franchise system size.
type SizePreference string

// SizePreference values
const (
	SizeSmall  SizePreference = "small"
	SizeLarge  SizePreference = "large"
	SizeEither SizePreference = "either"
)

// Profile is the accumulating record of one conversation's answers.
// Every field starts unset/empty and is written once by the stage machine
// as the dialogue moves forward; re-prompt loops never touch other fields.
type Profile struct {
	Name      string          `json:"name,omitempty"`
	Interests []string        `json:"interests"`
	Capital   int             `json:"capital,omitempty"` // dollars; 0 means not yet collected
	Hours     HoursCommitment `json:"hours,omitempty"`
	Size      SizePreference  `json:"size,omitempty"`
}

// HasInterests reports whether the interests field has been collected.
func (p *Profile) HasInterests() bool {
	return len(p.Interests) > 0
}

// HasCapital reports whether a capital figure has been collected.
func (p *Profile) HasCapital() bool {
	return p.Capital > 0
}

// HasHours reports whether a time commitment has been collected.
func (p *Profile) HasHours() bool {
	return p.Hours != ""
}

// HasSize reports whether a size preference has been collected.
func (p *Profile) HasSize() bool {
	return p.Size != ""
}
