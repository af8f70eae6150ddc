package domain

type SlotStatus string

const (
	SlotAvailable   SlotStatus = "available"
	SlotOccupied    SlotStatus = "occupied"
	SlotMaintenance SlotStatus = "maintenance"
	SlotReserved    SlotStatus = "reserved"
)

type SlotType string

const (
	SlotTypeStandard SlotType = "standard"
	SlotTypeDisabled SlotType = "disabled"
	SlotTypeEV       SlotType = "ev"
	SlotTypeReserved SlotType = "reserved"
)

type ParkingSlot struct {
	ID         int        `json:"id"`
	FacilityID int        `json:"facility_id"`
	SlotNumber string     `json:"slot_number"` // facility-local label, e.g. "A7"
	Level      int        `json:"level"`
	SlotType   SlotType   `json:"slot_type"`
	Status     SlotStatus `json:"status"`
}

type ParkingSlotDTO struct {
	SlotNumber string `json:"slot_number" binding:"required"`
	Level      int    `json:"level" binding:"omitempty,min=1"`
	SlotType   string `json:"slot_type" binding:"omitempty,oneof=standard disabled ev reserved"`
}

// SlotStatusEvent is broadcast over the websocket feed whenever a slot
// changes status, so the slot map UI can update without polling.
type SlotStatusEvent struct {
	FacilityID int        `json:"facility_id"`
	SlotID     int        `json:"slot_id"`
	SlotNumber string     `json:"slot_number"`
	Status     SlotStatus `json:"status"`
}
