package models

import "fmt"

// Form field names accepted by the attestation endpoint
const (
	FieldSex          = "sex"
	FieldFirstName    = "firstname"
	FieldLastName     = "lastname"
	FieldBirthday     = "birthday"
	FieldPlaceOfBirth = "place_of_birth"
	FieldAddress      = "address"
	FieldCity         = "city"
	FieldPostcode     = "postcode"
	FieldReason       = "reason"
)

// SubmissionFields lists every accepted form field in declaration order
var SubmissionFields = []string{
	FieldSex,
	FieldFirstName,
	FieldLastName,
	FieldBirthday,
	FieldPlaceOfBirth,
	FieldAddress,
	FieldCity,
	FieldPostcode,
	FieldReason,
}

// Sex is the declared sex of the person signing the attestation
type Sex string

const (
	SexMale   Sex = "H"
	SexFemale Sex = "F"
)

// Grammar holds the gendered tokens used when composing the declaration
type Grammar struct {
	Suffix    string
	Honorific string
}

// ParseSex converts a raw form value into a Sex
func ParseSex(value string) (Sex, error) {
	switch Sex(value) {
	case SexMale:
		return SexMale, nil
	case SexFemale:
		return SexFemale, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSex, value)
}

// Grammar returns the agreement suffix and honorific for the sex.
// Only two variants exist; an unknown value panics since ParseSex guards construction.
func (s Sex) Grammar() Grammar {
	switch s {
	case SexMale:
		return Grammar{Suffix: "", Honorific: "M."}
	case SexFemale:
		return Grammar{Suffix: "e", Honorific: "Mme"}
	}
	panic(fmt.Sprintf("models: unknown sex %q", string(s)))
}

// Submission is a validated attestation request.
// Build it through validation; Sex must be SexMale or SexFemale or Grammar panics.
type Submission struct {
	Sex          Sex    `json:"sex"`
	FirstName    string `json:"firstname"`
	LastName     string `json:"lastname"`
	Birthday     string `json:"birthday"`
	PlaceOfBirth string `json:"place_of_birth"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Postcode     string `json:"postcode"`
	Reason       string `json:"reason"`
}
