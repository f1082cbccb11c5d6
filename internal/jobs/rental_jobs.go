package jobs

import (
	"context"
	"time"

	"ecolithswap-backend/internal/logger"
)

// MarkOverdueRentals flags active rentals that have been out longer than
// the configured maximum duration. Overdue rentals stay open and keep
// accruing cost until returned.
func (jr *JobRunner) MarkOverdueRentals() {
	jr.runWithRecovery("MarkOverdueRentals", func() {
		ctx := context.Background()

		cutoff := time.Now().Add(-time.Duration(jr.config.Rental.MaxDurationHours) * time.Hour)
		count, err := jr.store.RentalRepository.MarkOverdue(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to mark overdue rentals", "error", err)
			return
		}

		logger.Info("Marked rentals as overdue",
			"count", count,
			"started_before", cutoff.Format(time.RFC3339))
	})
}
