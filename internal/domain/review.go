package domain

import (
	"time"

	"gopkg.in/guregu/null.v4"
)

type Review struct {
	ID         int         `json:"id"`
	UserID     int         `json:"user_id"`
	FacilityID int         `json:"facility_id"`
	Rating     int         `json:"rating"` // 1..5
	Comment    null.String `json:"comment"`
	CreatedAt  time.Time   `json:"created_at"`
}

type ReviewDTO struct {
	FacilityID int    `json:"facility_id" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}
