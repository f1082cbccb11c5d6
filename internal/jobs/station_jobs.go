package jobs

import (
	"context"

	"ecolithswap-backend/internal/logger"
)

// ReconcileStationCounts rewrites each station's available_batteries
// column from the actual battery rows. The count is denormalized for
// cheap reads and drifts when battery rows change outside the rental
// transaction, such as manual status updates.
func (jr *JobRunner) ReconcileStationCounts() {
	jr.runWithRecovery("ReconcileStationCounts", func() {
		ctx := context.Background()

		count, err := jr.store.StationRepository.ReconcileAvailableCounts(ctx)
		if err != nil {
			logger.Error("Failed to reconcile station counts", "error", err)
			return
		}

		if count > 0 {
			logger.Info("Reconciled station battery counts", "stations_updated", count)
		} else {
			logger.Debug("Station battery counts already consistent")
		}
	})
}
