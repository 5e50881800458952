package models

// Gender of an athlete. Empty means not specified.
type Gender string

const (
	GenderUnspecified Gender = ""
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
)
