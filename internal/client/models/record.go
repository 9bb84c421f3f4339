// Package models defines the report record types exchanged with the remote
// store and the save payload the form controller produces.
package models

import "github.com/go-playground/validator/v10"

// Status is the lifecycle state of a record. The only transition is
// Draft -> Submitted, through an explicit save; it never reverses.
type Status string

const (
	StatusDraft     Status = "Draft"
	StatusSubmitted Status = "Submitted"
)

// Record is one quarterly progress report as served by the remote store.
//
// ID is zero for records that have never been saved; once the store assigns
// an id it is stable. CanEdit is computed per viewer by the server and gates
// every form field client-side. EditApproved is set when an administrator
// has granted a one-time edit exception for a submitted record.
type Record struct {
	ID           int64   `json:"id"`
	Status       Status  `json:"status"`
	OfficeName   string  `json:"officeName"`
	OfficeCode   string  `json:"officeCode"`
	Region       string  `json:"region"`
	Quarter      string  `json:"quarter"`
	Details      Details `json:"details"`
	CanEdit      bool    `json:"can_edit"`
	EditApproved bool    `json:"edit_approved"`
}

// SavePayload is the full-overwrite body of a save request. Status is always
// supplied by the caller (Draft vs Submit action), never inferred. A nil ID
// requests creation; the server assigns the id.
type SavePayload struct {
	ID         *int64  `json:"id"`
	Status     Status  `json:"status" validate:"required,oneof=Draft Submitted"`
	OfficeName string  `json:"officeName" validate:"required"`
	OfficeCode string  `json:"officeCode" validate:"required"`
	Region     string  `json:"region" validate:"required"`
	Quarter    string  `json:"quarter" validate:"required"`
	Details    Details `json:"details"`
}

var validate = validator.New()

// Validate checks the payload against its struct tags. Submissions must
// carry all core fields; drafts are allowed through incomplete and are not
// validated by the caller.
func (p SavePayload) Validate() error {
	return validate.Struct(p)
}
