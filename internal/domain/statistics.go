package domain

// TrainerStats holds the aggregate figures shown on a trainer's dashboard.
type TrainerStats struct {
	TotalClients       int     `json:"total_clients"`
	ActiveClients      int     `json:"active_clients"` // clients with progress activity in the last 30 days
	TodaysSessions     int     `json:"todays_sessions"`
	MonthlyRevenue     float64 `json:"monthly_revenue"`
	ProgressCompletion float64 `json:"progress_completion"` // percentage of completed program exercises
	ClientGrowth       float64 `json:"client_growth"`       // percent change vs previous 30-day period
}
