package models

import "time"

type JobStatus string

const (
	JobActive JobStatus = "active"
	JobPaused JobStatus = "paused"
	JobClosed JobStatus = "closed"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobActive, JobPaused, JobClosed:
		return true
	}
	return false
}

type JobType string

const (
	JobFullTime   JobType = "full-time"
	JobPartTime   JobType = "part-time"
	JobContract   JobType = "contract"
	JobInternship JobType = "internship"
)

func (t JobType) Valid() bool {
	switch t {
	case JobFullTime, JobPartTime, JobContract, JobInternship:
		return true
	}
	return false
}

type Job struct {
	JobID            string    `bson:"jobid" json:"jobid"`
	Title            string    `bson:"title" json:"title"`
	Department       string    `bson:"department" json:"department"`
	Location         string    `bson:"location" json:"location"`
	Type             JobType   `bson:"type" json:"type"`
	Description      string    `bson:"description" json:"description"`
	Requirements     []string  `bson:"requirements" json:"requirements"`
	Benefits         []string  `bson:"benefits" json:"benefits"`
	SalaryRange      string    `bson:"salaryRange,omitempty" json:"salaryRange,omitempty"`
	Status           JobStatus `bson:"status" json:"status"`
	CreatedDate      time.Time `bson:"createdDate" json:"createdDate"`
	UpdatedAt        time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	ApplicationCount int       `bson:"applicationCount,omitempty" json:"applicationCount,omitempty"`
	OwnerID          string    `bson:"ownerId,omitempty" json:"ownerId,omitempty"`
}
