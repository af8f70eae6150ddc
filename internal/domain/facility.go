package domain

import "gopkg.in/guregu/null.v4"

type ParkingFacility struct {
	ID              int         `json:"id"`
	Name            string      `json:"name"`
	Address         string      `json:"address"`
	City            string      `json:"city"`
	State           string      `json:"state"`
	ZipCode         string      `json:"zip_code"`
	Description     null.String `json:"description"`
	Latitude        float64     `json:"latitude"`
	Longitude       float64     `json:"longitude"`
	TotalSpaces     int         `json:"total_spaces"`
	HourlyRate      float64     `json:"hourly_rate"`
	DailyRate       null.Float  `json:"daily_rate"`
	HasEVCharging   bool        `json:"has_ev_charging"`
	HasCovered      bool        `json:"has_covered"`
	HasDisabled     bool        `json:"has_disabled"`
	Has24HourAccess bool        `json:"has_24_hour_access"`
	HasSecurity     bool        `json:"has_security"`
	ImageUrls       []string    `json:"image_urls"`
	Rating          float64     `json:"rating"`       // derived, maintained by the rating aggregator
	ReviewCount     int         `json:"review_count"` // derived
	OwnerID         int         `json:"owner_id"`
}

type ParkingFacilityDTO struct {
	Name            string   `json:"name" binding:"required"`
	Address         string   `json:"address" binding:"required"`
	City            string   `json:"city" binding:"required"`
	State           string   `json:"state" binding:"required"`
	ZipCode         string   `json:"zip_code" binding:"required"`
	Description     string   `json:"description"`
	Latitude        float64  `json:"latitude" binding:"required"`
	Longitude       float64  `json:"longitude" binding:"required"`
	TotalSpaces     int      `json:"total_spaces" binding:"required,min=1"`
	HourlyRate      float64  `json:"hourly_rate" binding:"required,min=0"`
	DailyRate       *float64 `json:"daily_rate"`
	HasEVCharging   bool     `json:"has_ev_charging"`
	HasCovered      bool     `json:"has_covered"`
	HasDisabled     bool     `json:"has_disabled"`
	Has24HourAccess bool     `json:"has_24_hour_access"`
	HasSecurity     bool     `json:"has_security"`
	ImageUrls       []string `json:"image_urls"`
}
