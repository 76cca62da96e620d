package models

import "time"

type DocumentSlot string

const (
	SlotResume      DocumentSlot = "resume"
	SlotCoverLetter DocumentSlot = "coverLetter"
	SlotPortfolio   DocumentSlot = "portfolio"
)

func (s DocumentSlot) Valid() bool {
	switch s {
	case SlotResume, SlotCoverLetter, SlotPortfolio:
		return true
	}
	return false
}

type UploadStatus string

const (
	UploadPending UploadStatus = "pending_upload"
	UploadDone    UploadStatus = "uploaded"
	UploadFailed  UploadStatus = "failed"
)

// Document is the stored metadata for one attachment slot.
// URL is set only when Status is "uploaded".
type Document struct {
	Name       string       `bson:"name" json:"name"`
	Size       int64        `bson:"size" json:"size"`
	MimeType   string       `bson:"mimeType" json:"mimeType"`
	UploadedAt time.Time    `bson:"uploadedAt" json:"uploadedAt"`
	Status     UploadStatus `bson:"status" json:"status"`
	URL        string       `bson:"url,omitempty" json:"url,omitempty"`
}

// Documents holds the three optional attachment slots of an application.
type Documents struct {
	Resume      *Document `bson:"resume,omitempty" json:"resume,omitempty"`
	CoverLetter *Document `bson:"coverLetter,omitempty" json:"coverLetter,omitempty"`
	Portfolio   *Document `bson:"portfolio,omitempty" json:"portfolio,omitempty"`
}

// Get returns the document in the named slot, or nil if the slot is empty.
func (d *Documents) Get(slot DocumentSlot) *Document {
	switch slot {
	case SlotResume:
		return d.Resume
	case SlotCoverLetter:
		return d.CoverLetter
	case SlotPortfolio:
		return d.Portfolio
	}
	return nil
}

// Set replaces the document in the named slot.
func (d *Documents) Set(slot DocumentSlot, doc *Document) {
	switch slot {
	case SlotResume:
		d.Resume = doc
	case SlotCoverLetter:
		d.CoverLetter = doc
	case SlotPortfolio:
		d.Portfolio = doc
	}
}
