package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"ecolithswap-backend/internal/domain"
	"ecolithswap-backend/internal/security"
	"ecolithswap-backend/internal/service"
)

// Services bundles everything the router needs.
type Services struct {
	Auth      service.AuthService
	Users     service.UserService
	Stations  service.StationService
	Batteries service.BatteryService
	Rentals   service.RentalService
	Waste     service.WasteService
	Payments  service.PaymentService
	Dashboard service.DashboardService
}

// NewRouter assembles the full /api/v1 surface.
//
// Three tiers of access: public (auth, station discovery), authenticated
// (rentals, waste, payments, own profile), and staff (admin or
// station_manager via RequireRole).
func NewRouter(svcs Services, tokens security.TokenManager) http.Handler {
	authHandler := NewAuthHandler(svcs.Auth)
	userHandler := NewUserHandler(svcs.Users)
	stationHandler := NewStationHandler(svcs.Stations)
	batteryHandler := NewBatteryHandler(svcs.Batteries)
	rentalHandler := NewRentalHandler(svcs.Rentals)
	wasteHandler := NewWasteHandler(svcs.Waste)
	paymentHandler := NewPaymentHandler(svcs.Payments)
	dashboardHandler := NewDashboardHandler(svcs.Dashboard)

	root := mux.NewRouter()
	root.Use(LoggingMiddleware)

	api := root.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Public routes.
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)
	api.HandleFunc("/stations", stationHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/stations/nearby", stationHandler.Nearby).Methods(http.MethodGet)
	api.HandleFunc("/stations/{id}", stationHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/stations/{id}/batteries", batteryHandler.ListByStation).Methods(http.MethodGet)

	// Authenticated routes.
	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tokens))

	authed.HandleFunc("/users/me", userHandler.GetProfile).Methods(http.MethodGet)
	authed.HandleFunc("/users/me", userHandler.UpdateProfile).Methods(http.MethodPut)

	authed.HandleFunc("/rentals", rentalHandler.Start).Methods(http.MethodPost)
	authed.HandleFunc("/rentals", rentalHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/rentals/{id}", rentalHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/rentals/{id}/return", rentalHandler.End).Methods(http.MethodPost)
	authed.HandleFunc("/rentals/{id}/cancel", rentalHandler.Cancel).Methods(http.MethodPost)

	authed.HandleFunc("/waste", wasteHandler.Submit).Methods(http.MethodPost)
	authed.HandleFunc("/waste/me", wasteHandler.ListMine).Methods(http.MethodGet)

	authed.HandleFunc("/payments", paymentHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/payments/me", paymentHandler.ListMine).Methods(http.MethodGet)

	authed.HandleFunc("/dashboard/me", dashboardHandler.UserSummary).Methods(http.MethodGet)

	// Staff routes. Station managers handle day-to-day operations,
	// admins everything else.
	staff := authed.NewRoute().Subrouter()
	staff.Use(RequireRole(domain.UserRoleStationManager))

	staff.HandleFunc("/batteries", batteryHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/batteries/{id}", batteryHandler.Get).Methods(http.MethodGet)
	staff.HandleFunc("/batteries/{id}/status", batteryHandler.UpdateStatus).Methods(http.MethodPut)
	staff.HandleFunc("/stations/{id}/maintenance", stationHandler.SetMaintenance).Methods(http.MethodPut)
	staff.HandleFunc("/waste/unverified", wasteHandler.ListUnverified).Methods(http.MethodGet)
	staff.HandleFunc("/waste/{id}/verify", wasteHandler.Verify).Methods(http.MethodPost)
	staff.HandleFunc("/payments/{id}/status", paymentHandler.UpdateStatus).Methods(http.MethodPut)

	// Admin-only routes.
	admin := authed.PathPrefix("/admin").Subrouter()
	admin.Use(RequireRole(domain.UserRoleAdmin))

	admin.HandleFunc("/users", userHandler.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/active", userHandler.SetUserActive).Methods(http.MethodPut)
	admin.HandleFunc("/stations", stationHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/stations/{id}", stationHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/stations/{id}", stationHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/batteries", batteryHandler.Add).Methods(http.MethodPost)
	admin.HandleFunc("/batteries/{id}", batteryHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/batteries/{id}", batteryHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/dashboard", dashboardHandler.AdminSummary).Methods(http.MethodGet)

	return root
}
