package domain

// UserDashboard is the summary panel shown to a customer.
type UserDashboard struct {
	ActiveRental  *Rental `json:"active_rental,omitempty"`
	TotalRentals  int32   `json:"total_rentals"`
	TotalSpent    float64 `json:"total_spent"`
	PointsEarned  int32   `json:"points_earned"`
	PointsBalance int32   `json:"points_balance"`
	WasteKg       float64 `json:"waste_kg"`
}

// AdminDashboard is the platform-wide summary for the admin console.
type AdminDashboard struct {
	TotalUsers        int32            `json:"total_users"`
	ActiveStations    int32            `json:"active_stations"`
	BatteriesByStatus map[string]int32 `json:"batteries_by_status"`
	RentalsByStatus   map[string]int32 `json:"rentals_by_status"`
	TotalRevenue      float64          `json:"total_revenue"`
	TotalWasteKg      float64          `json:"total_waste_kg"`
	PointsAwarded     int32            `json:"points_awarded"`
}
