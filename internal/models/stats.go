package models

// Shapes consumed by the admin dashboard charts.

type CategoryStat struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type EarningsByDate struct {
	Name   string  `json:"name"` // YYYY-MM-DD bucket
	Amount float64 `json:"amount"`
}

type AdminStats struct {
	TotalEvents   int64            `json:"totalEvents"`
	TotalUsers    int64            `json:"totalUsers"`
	TotalJoined   int64            `json:"totalJoined"`
	TotalEarnings float64          `json:"totalEarnings"`
	ChartData     []EarningsByDate `json:"chartData"`
	CategoryStats []CategoryStat   `json:"categoryStats"`
}
