package models

import "time"

type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "pending"
	StatusReviewed    ApplicationStatus = "reviewed"
	StatusInterviewed ApplicationStatus = "interviewed"
	StatusHired       ApplicationStatus = "hired"
	StatusRejected    ApplicationStatus = "rejected"
)

// ApplicationStatuses lists the five legal states in pipeline order.
var ApplicationStatuses = []ApplicationStatus{
	StatusPending, StatusReviewed, StatusInterviewed, StatusHired, StatusRejected,
}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusInterviewed, StatusHired, StatusRejected:
		return true
	}
	return false
}

// StatusChange is one entry of an application's append-only audit trail.
type StatusChange struct {
	Status    ApplicationStatus `bson:"status" json:"status"`
	ChangedAt time.Time         `bson:"changedAt" json:"changedAt"`
	ChangedBy string            `bson:"changedBy" json:"changedBy"`
	Notes     string            `bson:"notes,omitempty" json:"notes,omitempty"`
}

type Application struct {
	ApplicationID  string            `bson:"applicationid" json:"applicationid"`
	FirstName      string            `bson:"firstName" json:"firstName"`
	LastName       string            `bson:"lastName" json:"lastName"`
	Email          string            `bson:"email" json:"email"`
	Phone          string            `bson:"phone" json:"phone"`
	Position       string            `bson:"position" json:"position"`
	Experience     string            `bson:"experience" json:"experience"`
	Education      string            `bson:"education" json:"education"`
	Skills         []string          `bson:"skills,omitempty" json:"skills,omitempty"`
	ExpectedSalary string            `bson:"salary,omitempty" json:"salary,omitempty"`
	CoverLetter    string            `bson:"coverLetter,omitempty" json:"coverLetter,omitempty"`
	Documents      Documents         `bson:"documents,omitempty" json:"documents,omitempty"`
	Status         ApplicationStatus `bson:"status" json:"status"`
	AppliedDate    time.Time         `bson:"appliedDate" json:"appliedDate"`
	Notes          string            `bson:"notes,omitempty" json:"notes,omitempty"`
	InterviewDate  time.Time         `bson:"interviewDate,omitempty" json:"interviewDate,omitempty"`
	ApplicantID    string            `bson:"applicantId,omitempty" json:"applicantId,omitempty"`
	StatusHistory  []StatusChange    `bson:"statusHistory,omitempty" json:"statusHistory,omitempty"`
}
