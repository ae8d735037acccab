package model

// Category is derived from the product list on every request, never stored.
// One entry exists per distinct category name, in first-seen order.
type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
}
