package dto

// DashboardStats admin overview counters
type DashboardStats struct {
	Saints            int64  `json:"saints"`
	ActiveSaints      int64  `json:"activeSaints"`
	Locations         int64  `json:"locations"`
	Schedules         int64  `json:"schedules"`
	CurrentSchedules  int64  `json:"currentSchedules"`
	UpcomingSchedules int64  `json:"upcomingSchedules"`
	UpcomingDays      int    `json:"upcomingDays"`
	Today             string `json:"today"`
}
