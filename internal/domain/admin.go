package domain

// DashboardStats summarizes the store for the admin back office
type DashboardStats struct {
	Users        int64   `json:"users"`
	Games        int64   `json:"games"`
	Categories   int64   `json:"categories"`
	Reviews      int64   `json:"reviews"`
	Purchases    int64   `json:"purchases"`
	CoinTurnover float64 `json:"coin_turnover"`
}

// CategorySummary is a category with its game count, for admin listings
type CategorySummary struct {
	Category *Category `json:"category"`
	Games    int64     `json:"games"`
}

// AdminUseCase defines the interface for back-office reporting
type AdminUseCase interface {
	Dashboard() (*DashboardStats, error)
	CategorySummaries() ([]*CategorySummary, error)
}
