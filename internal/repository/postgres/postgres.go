package postgres

import (
	"database/sql"

	"ecolithswap-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.StationRepository
	repository.BatteryRepository
	repository.RentalRepository
	repository.WasteLogRepository
	repository.PaymentRepository
	repository.StatsRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		UserRepository:     NewUserRepository(db),
		StationRepository:  NewStationRepository(db),
		BatteryRepository:  NewBatteryRepository(db),
		RentalRepository:   NewRentalRepository(db),
		WasteLogRepository: NewWasteLogRepository(db),
		PaymentRepository:  NewPaymentRepository(db),
		StatsRepository:    NewStatsRepository(db),
	}
}
