package flights

import "time"

type FlightResponse struct {
	ID             string    `json:"id"`
	Number         string    `json:"number"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	DepartureTime  time.Time `json:"departure_time"`
	ArrivalTime    time.Time `json:"arrival_time"`
	AircraftTypeID string    `json:"aircraft_type_id"`
	AircraftType   string    `json:"aircraft_type,omitempty"`
	BaseFare       float64   `json:"base_fare"`
	Status         Status    `json:"status"`
	TotalSeats     int       `json:"total_seats"`
	OccupiedCount  int       `json:"occupied_count"`
	AvailableSeats int       `json:"available_seats"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type PaginatedFlights struct {
	Flights    []FlightResponse `json:"flights"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}

// SeatMapResponse renders the cabin grid with live occupancy and
// per-seat fares.
type SeatMapResponse struct {
	FlightID    string           `json:"flight_id"`
	Number      string           `json:"number"`
	BaseFare    float64          `json:"base_fare"`
	Rows        int              `json:"rows"`
	SeatsPerRow int              `json:"seats_per_row"`
	Seats       []SeatMapSeat    `json:"seats"`
	Classes     []SeatClassBrief `json:"classes"`
}

type SeatMapSeat struct {
	Code     string  `json:"code"`
	Row      int     `json:"row"`
	Letter   string  `json:"letter"`
	Class    string  `json:"class"`
	Window   bool    `json:"window"`
	Aisle    bool    `json:"aisle"`
	Fare     float64 `json:"fare"`
	Occupied bool    `json:"occupied"`
}

type SeatClassBrief struct {
	ClassName      string  `json:"class_name"`
	RowStart       int     `json:"row_start"`
	RowEnd         int     `json:"row_end"`
	FareMultiplier float64 `json:"fare_multiplier"`
}

type FareQuoteResponse struct {
	FlightID string          `json:"flight_id"`
	BaseFare float64         `json:"base_fare"`
	Seats    []SeatFareQuote `json:"seats"`
	Total    float64         `json:"total"`
}

type SeatFareQuote struct {
	Code string  `json:"code"`
	Fare float64 `json:"fare"`
}

// ToResponse converts a Flight into its API projection.
func (f *Flight) ToResponse() FlightResponse {
	resp := FlightResponse{
		ID:             f.ID.String(),
		Number:         f.Number,
		Origin:         f.Origin,
		Destination:    f.Destination,
		DepartureTime:  f.DepartureTime,
		ArrivalTime:    f.ArrivalTime,
		AircraftTypeID: f.AircraftTypeID.String(),
		BaseFare:       f.BaseFare,
		Status:         f.Status,
		OccupiedCount:  len(f.OccupiedSeats),
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}

	if f.AircraftType != nil {
		resp.AircraftType = f.AircraftType.Name
		resp.TotalSeats = f.AircraftType.TotalSeats
		available := f.AircraftType.TotalSeats - len(f.OccupiedSeats)
		if available < 0 {
			available = 0
		}
		resp.AvailableSeats = available
	}

	return resp
}
