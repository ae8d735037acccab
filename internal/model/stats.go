package model

// Stats is a point-in-time snapshot computed from the in-memory collections.
type Stats struct {
	TotalProducts int     `json:"totalProducts"`
	TotalOrders   int     `json:"totalOrders"`
	TotalSales    float64 `json:"totalSales"`
	PendingOrders int     `json:"pendingOrders"`
}
