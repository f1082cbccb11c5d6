package domain

import "time"

// WasteType is the plastic category of a recycling submission.
type WasteType string

const (
	WasteTypePET   WasteType = "PET"
	WasteTypeHDPE  WasteType = "HDPE"
	WasteTypeLDPE  WasteType = "LDPE"
	WasteTypePP    WasteType = "PP"
	WasteTypePS    WasteType = "PS"
	WasteTypeOther WasteType = "OTHER"
)

func (t WasteType) Valid() bool {
	switch t {
	case WasteTypePET, WasteTypeHDPE, WasteTypeLDPE, WasteTypePP, WasteTypePS, WasteTypeOther:
		return true
	}
	return false
}

type WasteLog struct {
	ID           int32     `json:"id"`
	UserID       int32     `json:"user_id"`
	StationID    int32     `json:"station_id"`
	WasteType    WasteType `json:"waste_type"`
	WeightKg     float64   `json:"weight_kg"`
	PointsEarned int32     `json:"points_earned"`
	Verified     bool      `json:"verified"`
	VerifiedBy   *int32    `json:"verified_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
