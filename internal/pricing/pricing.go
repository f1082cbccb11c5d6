package pricing

import (
	"fmt"
	"math"
	"time"

	"ecolithswap-backend/internal/domain"
)

// BilledHours converts an elapsed rental duration into billable hours:
// the duration is rounded up to whole hours with a one-hour minimum.
func BilledHours(start, end time.Time) (int32, error) {
	if end.Before(start) {
		return 0, fmt.Errorf("end time %s precedes start time %s: %w",
			end.Format(time.RFC3339), start.Format(time.RFC3339), domain.ErrValidation)
	}
	hours := int32(math.Ceil(end.Sub(start).Hours()))
	if hours < 1 {
		hours = 1
	}
	return hours, nil
}

// RentalCost computes the total charge for a rental: the base cost plus
// the billed hours at the snapshotted hourly rate.
func RentalCost(start, end time.Time, hourlyRate, baseCost float64) (float64, error) {
	hours, err := BilledHours(start, end)
	if err != nil {
		return 0, err
	}
	return baseCost + float64(hours)*hourlyRate, nil
}

// creditRates maps each plastic category to points awarded per kilogram.
var creditRates = map[domain.WasteType]float64{
	domain.WasteTypePET:  10,
	domain.WasteTypeHDPE: 8,
	domain.WasteTypeLDPE: 6,
	domain.WasteTypePP:   7,
	domain.WasteTypePS:   5,
}

// fallbackCreditRate applies to OTHER and any unrecognized category.
const fallbackCreditRate = 4

// WasteCredits computes the points earned for a waste submission,
// rounded to the nearest whole point.
func WasteCredits(wasteType domain.WasteType, weightKg float64) int32 {
	rate, ok := creditRates[wasteType]
	if !ok {
		rate = fallbackCreditRate
	}
	return int32(math.Round(weightKg * rate))
}
