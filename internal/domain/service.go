package domain

type ServicePrice struct {
	Duration string `json:"duration"`
	Price    string `json:"price"`
}

// Service is a catalog entry. Bookings reference services by title, not by
// a foreign key, so titles must stay unique within the catalog.
type Service struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Prices      []ServicePrice `json:"prices"`
}
