package peptide

import "strings"

// Reason explains why a raw sequence was rejected by the validator.
type Reason int

const (
	OK Reason = iota
	InvalidResidue
	TooShort
	TooLong
)

func (r Reason) String() string {
	switch r {
	case OK:
		return "ok"
	case InvalidResidue:
		return "invalid_residue"
	case TooShort:
		return "too_short"
	case TooLong:
		return "too_long"
	}
	return "unknown"
}

// Default length bounds for dataset cleaning.
const (
	DefaultMinLength = 5
	DefaultMaxLength = 100
)

// Stats counts validation outcomes across a loading run. Callers own the
// TotalLoaded and Duplicates counters; Validate maintains the rest.
type Stats struct {
	TotalLoaded int
	InvalidAA   int
	TooShort    int
	TooLong     int
	Duplicates  int
	Valid       int
}

// Validator checks raw sequences against the standard alphabet and a length
// window. The zero value is unusable; use NewValidator.
type Validator struct {
	MinLength int
	MaxLength int
	Stats     Stats
}

// NewValidator creates a validator with the given length bounds. Bounds of 0
// fall back to the cleaning defaults (5-100).
func NewValidator(minLen, maxLen int) *Validator {
	if minLen <= 0 {
		minLen = DefaultMinLength
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxLength
	}
	return &Validator{MinLength: minLen, MaxLength: maxLen}
}

// Validate uppercases and trims raw, then checks residues and length.
// On success it returns the cleaned sequence and OK. On failure the returned
// sequence is empty and the Reason identifies the rejection; the matching
// Stats counter is incremented either way.
func (v *Validator) Validate(raw string) (string, Reason) {
	seq := strings.ToUpper(strings.TrimSpace(raw))

	if !IsStandard(seq) {
		v.Stats.InvalidAA++
		return "", InvalidResidue
	}
	if len(seq) < v.MinLength {
		v.Stats.TooShort++
		return "", TooShort
	}
	if len(seq) > v.MaxLength {
		v.Stats.TooLong++
		return "", TooLong
	}

	v.Stats.Valid++
	return seq, OK
}
