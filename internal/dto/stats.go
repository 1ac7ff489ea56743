package dto

import "github.com/stitchworks/trim_inventory_app/internal/core/domain"

// DashboardStatsResponse defines the aggregate figures for the dashboard.
type DashboardStatsResponse struct {
	TotalMaterials int64 `json:"totalMaterials"`
	EnteredToday   int64 `json:"enteredToday"`
	IssuedToday    int64 `json:"issuedToday"`
}

// ToDashboardStatsResponse converts domain stats to the response DTO.
func ToDashboardStatsResponse(s *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalMaterials: s.TotalMaterials,
		EnteredToday:   s.EnteredToday,
		IssuedToday:    s.IssuedToday,
	}
}
