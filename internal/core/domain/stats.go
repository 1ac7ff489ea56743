package domain

// DashboardStats holds the aggregate figures shown on the dashboard.
// EnteredToday and IssuedToday are sums of quantities moved during the
// current calendar day, not counts of transactions.
type DashboardStats struct {
	TotalMaterials int64 `json:"totalMaterials"`
	EnteredToday   int64 `json:"enteredToday"`
	IssuedToday    int64 `json:"issuedToday"`
}
