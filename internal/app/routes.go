package app

import (
	"github.com/balanco/balanco/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// User
	r.HandleFunc("/api/user", deps.UserHandler.CreateUser).Methods("POST")
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user/current", deps.UserHandler.UpdateUser).Methods("PUT")
	r.HandleFunc("/api/user", deps.UserHandler.GetAvailableUsers).Methods("GET")
	r.HandleFunc("/api/user/{userId}", deps.UserHandler.DeleteUser).Methods("DELETE")

	// Diagnostic
	r.HandleFunc("/api/diagnostic", deps.DiagnosticHandler.GetDiagnostic).Methods("GET")
	r.HandleFunc("/api/diagnostic", deps.DiagnosticHandler.SaveDiagnostic).Methods("PUT")
	r.HandleFunc("/api/diagnostic/changes", deps.ChangesetHandler.ComputeChanges).Methods("POST")
	r.HandleFunc("/api/diagnostic/prefill", deps.PrefillHandler.Prefill).Methods("POST")

	// Cost of living
	r.HandleFunc("/api/cost-of-living", deps.CostOfLivingHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/cost-of-living", deps.CostOfLivingHandler.Create).Methods("POST")
	r.HandleFunc("/api/cost-of-living/{itemId}", deps.CostOfLivingHandler.Update).Methods("PUT")
	r.HandleFunc("/api/cost-of-living/{itemId}", deps.CostOfLivingHandler.Delete).Methods("DELETE")

	// Debt mapping
	r.HandleFunc("/api/debt-mapping", deps.DebtMappingHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/debt-mapping", deps.DebtMappingHandler.Create).Methods("POST")
	r.HandleFunc("/api/debt-mapping/{itemId}", deps.DebtMappingHandler.Update).Methods("PUT")
	r.HandleFunc("/api/debt-mapping/{itemId}", deps.DebtMappingHandler.Delete).Methods("DELETE")

	// Insight and report
	r.HandleFunc("/api/insight", deps.InsightHandler.GetInsight).Methods("GET")
	r.HandleFunc("/api/report", deps.ReportHandler.GetReport).Methods("GET")
	r.HandleFunc("/api/report/csv", deps.ReportHandler.GetReportCsv).Methods("GET")

	// Google integration
	r.HandleFunc("/api/integrations/google/auth", deps.GoogleAuth.OAuthLogin).Methods("GET")
	r.HandleFunc("/api/integrations/google/auth/callback", deps.GoogleAuth.OAuthCallback).Methods("GET")
	r.HandleFunc("/api/integrations/google/auth", deps.GoogleAuth.OAuthLogout).Methods("DELETE")
	r.HandleFunc("/api/integrations/google/profile", deps.GoogleHandler.GetProfile).Methods("GET")
}
