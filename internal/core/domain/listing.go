package domain

// Listing is a bookable travel offering. Owned by administrators, readable
// by anyone.
type Listing struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Img         string  `json:"img"`
}

// ListingDetail is a listing together with its rating aggregate.
type ListingDetail struct {
	Listing
	RatingAverage float64 `json:"rating_average"`
	RatingCount   int     `json:"rating_count"`
}
