package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatteryEligibleForRental(t *testing.T) {
	tests := []struct {
		name     string
		status   BatteryStatus
		charge   int32
		health   BatteryHealth
		eligible bool
	}{
		{"Available charged good", BatteryStatusAvailable, 25, BatteryHealthGood, true},
		{"At minimum charge", BatteryStatusAvailable, 20, BatteryHealthGood, true},
		{"Excellent full charge", BatteryStatusAvailable, 100, BatteryHealthExcellent, true},
		{"Fair health allowed", BatteryStatusAvailable, 50, BatteryHealthFair, true},
		{"Below minimum charge", BatteryStatusAvailable, 10, BatteryHealthGood, false},
		{"Just below minimum", BatteryStatusAvailable, 19, BatteryHealthGood, false},
		{"Poor health", BatteryStatusAvailable, 90, BatteryHealthPoor, false},
		{"Already rented", BatteryStatusRented, 80, BatteryHealthGood, false},
		{"Charging", BatteryStatusCharging, 80, BatteryHealthGood, false},
		{"In maintenance", BatteryStatusMaintenance, 80, BatteryHealthGood, false},
		{"Retired", BatteryStatusRetired, 80, BatteryHealthGood, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Battery{Status: tt.status, ChargePercentage: tt.charge, Health: tt.health}
			assert.Equal(t, tt.eligible, b.EligibleForRental())
		})
	}
}

func TestDisplayLookups(t *testing.T) {
	assert.Equal(t, "Overdue", RentalStatusOverdue.Display().Label)
	assert.Equal(t, "In Use", BatteryStatusRented.Display().Label)
	assert.Equal(t, "Critical", BatteryHealthCritical.Display().Label)
	assert.Equal(t, "Paid", PaymentStatusCompleted.Display().Label)

	// Unknown values fall back to a neutral display.
	assert.Equal(t, "Unknown", RentalStatus("bogus").Display().Label)
}
