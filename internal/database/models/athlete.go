package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Athlete is a sportsperson owned by a single user. TeamID is nil when the
// athlete is not on any team; no other "unassigned" value is ever stored.
type Athlete struct {
	BaseModel
	UserID             uuid.UUID  `json:"userId" gorm:"type:uuid;not null;index"`
	TeamID             *uuid.UUID `json:"teamId" gorm:"type:uuid;index"`
	FirstName          string     `json:"firstName" gorm:"not null;size:100"`
	LastName           string     `json:"lastName" gorm:"not null;size:100"`
	MiddleName         string     `json:"middleName,omitempty" gorm:"size:100"`
	BirthDate          time.Time  `json:"birthDate" gorm:"not null"`
	Address            string     `json:"address,omitempty" gorm:"size:300"`
	Gender             Gender     `json:"gender,omitempty" gorm:"type:varchar(10)"`
	Phone              string     `json:"phone,omitempty" gorm:"size:30"`
	Email              string     `json:"email,omitempty" gorm:"size:255"`
	SocialMedia        string     `json:"socialMedia,omitempty" gorm:"size:300"`
	Role               string     `json:"role,omitempty" gorm:"size:100"`
	SportsRank         string     `json:"sportsRank,omitempty" gorm:"size:100"`
	Notes              string     `json:"notes,omitempty"`
	School             string     `json:"school,omitempty" gorm:"size:200"`
	University         string     `json:"university,omitempty" gorm:"size:200"`
	CurrentInstitution string     `json:"currentInstitution" gorm:"not null;size:200"`
	Coach              string     `json:"coach" gorm:"not null;size:200"`
	CoachContact       string     `json:"coachContact,omitempty" gorm:"size:200"`
	DateOfAdmission    time.Time  `json:"dateOfAdmission" gorm:"not null"`
	Photo              string     `json:"photo,omitempty" gorm:"size:500"`
	PhotoPublicID      string     `json:"-" gorm:"size:200"`

	// Relationships
	PreviousCoaches     []PreviousCoach      `json:"previousCoaches,omitempty" gorm:"foreignKey:AthleteID;constraint:OnDelete:CASCADE"`
	MedicalExaminations []MedicalExamination `json:"medicalExaminations,omitempty" gorm:"foreignKey:AthleteID;constraint:OnDelete:CASCADE"`
	Relatives           []Relative           `json:"relatives,omitempty" gorm:"foreignKey:AthleteID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Athlete
func (Athlete) TableName() string {
	return "athletes"
}

// IsAssigned reports whether the athlete is on any team.
func (a *Athlete) IsAssigned() bool {
	return a.TeamID != nil
}

// BelongsTo reports whether the athlete is on the given team.
func (a *Athlete) BelongsTo(teamID uuid.UUID) bool {
	return SameTeam(a.TeamID, &teamID)
}

// ParseTeamRef normalizes a raw team reference. Empty strings, whitespace and
// the literal "null" all mean "unassigned" and yield nil.
func ParseTeamRef(raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "null") {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid team reference %q: %w", raw, err)
	}
	if id == uuid.Nil {
		return nil, nil
	}
	return &id, nil
}

// SameTeam compares two team references. Two unassigned references are equal.
func SameTeam(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// PreviousCoach records a coach the athlete trained with before
type PreviousCoach struct {
	BaseModel
	AthleteID           uuid.UUID  `json:"athleteId" gorm:"type:uuid;not null;index"`
	UserID              uuid.UUID  `json:"userId" gorm:"type:uuid;not null;index"`
	PreviousCoach       string     `json:"previousCoach" gorm:"not null;size:200"`
	PreviousInstitution string     `json:"previousInstitution,omitempty" gorm:"size:200"`
	CoachContacts       string     `json:"coachContacts,omitempty" gorm:"size:200"`
	EntryDate           *time.Time `json:"entryDate,omitempty"`
	ExitDate            *time.Time `json:"exitDate,omitempty"`
}

// TableName returns the table name for PreviousCoach
func (PreviousCoach) TableName() string {
	return "previous_coaches"
}

// MedicalExamination is a single health check of an athlete
type MedicalExamination struct {
	BaseModel
	AthleteID          uuid.UUID `json:"athleteId" gorm:"type:uuid;not null;index"`
	UserID             uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`
	DoctorName         string    `json:"doctorName" gorm:"not null;size:200"`
	HealthStatus       string    `json:"healthStatus" gorm:"not null;size:200"`
	MedicalInstitution string    `json:"medicalInstitution,omitempty" gorm:"size:200"`
	ExaminationDate    time.Time `json:"examinationDate" gorm:"not null"`
}

// TableName returns the table name for MedicalExamination
func (MedicalExamination) TableName() string {
	return "medical_examinations"
}

// Relative is a contact person of an athlete
type Relative struct {
	BaseModel
	AthleteID    uuid.UUID `json:"athleteId" gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`
	Name         string    `json:"name" gorm:"not null;size:200"`
	Contacts     string    `json:"contacts" gorm:"not null;size:200"`
	Relationship string    `json:"relationship,omitempty" gorm:"size:100"`
}

// TableName returns the table name for Relative
func (Relative) TableName() string {
	return "relatives"
}
