package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCanceled  BookingStatus = "canceled"
	BookingCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Booking struct {
	ID            int           `json:"id"`
	UserID        int           `json:"user_id"`
	FacilityID    int           `json:"facility_id"`
	SlotID        int           `json:"slot_id"`
	VehicleID     int           `json:"vehicle_id"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	TotalAmount   float64       `json:"total_amount"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
	QRCode        string        `json:"qr_code"`
}

type CreateBookingDTO struct {
	FacilityID  int       `json:"facility_id" binding:"required"`
	SlotID      int       `json:"slot_id" binding:"required"`
	VehicleID   int       `json:"vehicle_id" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	TotalAmount float64   `json:"total_amount" binding:"required,min=0"`
}
