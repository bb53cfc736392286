// tryout/model.go
package tryout

import (
	"gorm.io/gorm"
)

// Status is the tryout request state machine: pending is the only non-terminal
// state. Recruitment also lands on "approved"; there is no separate
// "recruited" state, the two are deliberately conflated.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed. A rejected or
// approved candidate has to submit a new request.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// TryoutRequest is a public application to join a team. UserID is set only
// when the submitter was signed in; anonymous submissions are allowed but can
// never be recruited.
type TryoutRequest struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null"`
	Email   string `json:"email" gorm:"not null"`
	IGN     string `json:"ign" gorm:"not null"`
	Discord string `json:"discord"`
	Game    string `json:"game" gorm:"not null"`
	Role    string `json:"role"`
	Status  Status `json:"status" gorm:"type:varchar(10);not null;default:'pending';index"`
	UserID  *uint  `json:"user_id" gorm:"index"`
}

type CreateTryoutRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100" example:"John Doe"`
	Email   string `json:"email" binding:"required,email" example:"john@example.com"`
	IGN     string `json:"ign" binding:"required,min=2,max=50" example:"Exo_John"`
	Discord string `json:"discord" binding:"max=50" example:"john#1234"`
	Game    string `json:"game" binding:"required,max=100" example:"PUBG Mobile"`
	Role    string `json:"role" binding:"max=50"`
}

// UpdateTryoutStatusRequest only moves the state machine; everything else on
// a request is immutable after submission.
type UpdateTryoutStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}
