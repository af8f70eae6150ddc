package domain

type Vehicle struct {
	ID           int    `json:"id"`
	UserID       int    `json:"user_id"`
	LicensePlate string `json:"license_plate"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	VehicleType  string `json:"vehicle_type"` // sedan, suv, ev, truck, ...
	IsDefault    bool   `json:"is_default"`
}

type VehicleDTO struct {
	LicensePlate string `json:"license_plate" binding:"required"`
	Make         string `json:"make" binding:"required"`
	Model        string `json:"model" binding:"required"`
	VehicleType  string `json:"vehicle_type" binding:"required"`
	IsDefault    bool   `json:"is_default"`
}
