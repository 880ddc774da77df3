package domain

// SearchQuery is a validated flight search. ReturnDate is set only for
// round trips. Dates are calendar dates in YYYY-MM-DD form.
type SearchQuery struct {
	TripType      TripType `json:"tripType"`
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	DepartureDate string   `json:"departureDate"`
	ReturnDate    string   `json:"returnDate,omitempty"`
	Adults        int      `json:"adults"`
	Children      int      `json:"children"`
	Infants       int      `json:"infants"`
	CabinClass    string   `json:"cabinClass"`
	Currency      string   `json:"currency,omitempty"`
}
