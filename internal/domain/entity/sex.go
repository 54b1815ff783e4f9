// Package entity contains the core business objects of the project.
package entity

// Sex represents the sex category used to select the BMR formula constants.
// The Mifflin-St Jeor equation only defines constant sets for two categories;
// this limitation is inherited from the formula itself.
type Sex string

const (
	// SexMale selects the male constant set (+5) of the Mifflin-St Jeor equation.
	SexMale Sex = "male"
	// SexFemale selects the female constant set (-161) of the Mifflin-St Jeor equation.
	SexFemale Sex = "female"
)

// String returns the string representation of the Sex.
func (s Sex) String() string {
	return string(s)
}

// IsValid checks if the Sex is a valid value.
func (s Sex) IsValid() bool {
	switch s {
	case SexMale, SexFemale:
		return true
	default:
		return false
	}
}
