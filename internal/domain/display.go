package domain

// Display metadata for enum values, consumed by the mobile and admin UIs.
// Presentation only; nothing here carries business meaning.

type Display struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var rentalStatusDisplay = map[RentalStatus]Display{
	RentalStatusActive:    {Label: "Active", Color: "#2196F3"},
	RentalStatusCompleted: {Label: "Completed", Color: "#4CAF50"},
	RentalStatusCancelled: {Label: "Cancelled", Color: "#9E9E9E"},
	RentalStatusOverdue:   {Label: "Overdue", Color: "#F44336"},
}

var batteryStatusDisplay = map[BatteryStatus]Display{
	BatteryStatusAvailable:   {Label: "Available", Color: "#4CAF50"},
	BatteryStatusRented:      {Label: "In Use", Color: "#2196F3"},
	BatteryStatusCharging:    {Label: "Charging", Color: "#FF9800"},
	BatteryStatusMaintenance: {Label: "Maintenance", Color: "#9E9E9E"},
	BatteryStatusRetired:     {Label: "Retired", Color: "#607D8B"},
}

var batteryHealthDisplay = map[BatteryHealth]Display{
	BatteryHealthExcellent: {Label: "Excellent", Color: "#4CAF50"},
	BatteryHealthGood:      {Label: "Good", Color: "#8BC34A"},
	BatteryHealthFair:      {Label: "Fair", Color: "#FFC107"},
	BatteryHealthPoor:      {Label: "Poor", Color: "#FF9800"},
	BatteryHealthCritical:  {Label: "Critical", Color: "#F44336"},
}

var paymentStatusDisplay = map[PaymentStatus]Display{
	PaymentStatusPending:   {Label: "Pending", Color: "#FF9800"},
	PaymentStatusCompleted: {Label: "Paid", Color: "#4CAF50"},
	PaymentStatusFailed:    {Label: "Failed", Color: "#F44336"},
	PaymentStatusCancelled: {Label: "Cancelled", Color: "#9E9E9E"},
	PaymentStatusRefunded:  {Label: "Refunded", Color: "#2196F3"},
}

var unknownDisplay = Display{Label: "Unknown", Color: "#9E9E9E"}

func (s RentalStatus) Display() Display {
	if d, ok := rentalStatusDisplay[s]; ok {
		return d
	}
	return unknownDisplay
}

func (s BatteryStatus) Display() Display {
	if d, ok := batteryStatusDisplay[s]; ok {
		return d
	}
	return unknownDisplay
}

func (h BatteryHealth) Display() Display {
	if d, ok := batteryHealthDisplay[h]; ok {
		return d
	}
	return unknownDisplay
}

func (s PaymentStatus) Display() Display {
	if d, ok := paymentStatusDisplay[s]; ok {
		return d
	}
	return unknownDisplay
}
