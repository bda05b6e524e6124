package dto

const (
	RatingExcellent        = "excellent"
	RatingGood             = "good"
	RatingAverage          = "average"
	RatingNeedsImprovement = "needs_improvement"
)

type DailyReportResponse struct {
	Date              string  `json:"date"`
	TotalRequests     int     `json:"total_requests"`
	CompletedRequests int     `json:"completed_requests"`
	UrgentRequests    int     `json:"urgent_requests"`
	CompletionRate    float64 `json:"completion_rate"`
	ArchiveURL        string  `json:"archive_url,omitempty"`
}

type TechnicianPerformanceResponse struct {
	TechnicianID         string  `json:"technician_id"`
	WindowDays           int     `json:"window_days"`
	TotalOrders          int     `json:"total_orders"`
	CompletedOrders      int     `json:"completed_orders"`
	CompletionRate       float64 `json:"completion_rate"`
	AvgCompletionMinutes float64 `json:"avg_completion_minutes"`
	Rating               string  `json:"rating"`
}
