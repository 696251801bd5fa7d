package flights

import "time"

type FlightListQuery struct {
	Page        int    `form:"page" binding:"omitempty,min=1"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Date        string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Origin      string `form:"origin" binding:"omitempty,max=64"`
	Destination string `form:"destination" binding:"omitempty,max=64"`
	Status      string `form:"status" binding:"omitempty,oneof=scheduled cancelled departed"`
}

type CreateFlightRequest struct {
	Number         string    `json:"number" binding:"required,min=2,max=10"`
	Origin         string    `json:"origin" binding:"required,min=3,max=64"`
	Destination    string    `json:"destination" binding:"required,min=3,max=64"`
	DepartureTime  time.Time `json:"departure_time" binding:"required"`
	ArrivalTime    time.Time `json:"arrival_time" binding:"omitempty"`
	AircraftTypeID string    `json:"aircraft_type_id" binding:"required,uuid"`
	BaseFare       *float64  `json:"base_fare" binding:"omitempty,min=0"`
}

type FareQuoteQuery struct {
	// Comma-separated seat codes, e.g. "1A,14C".
	Seats string `form:"seats" binding:"required"`
}
