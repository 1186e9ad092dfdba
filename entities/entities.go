package entities

import (
	"time"
)

// Category is one seating tier of a showtime. The upstream API returns
// numeric fields as strings.
type Category struct {
	PriceDesc  string `json:"PriceDesc"`
	MaxSeats   string `json:"MaxSeats"`
	SeatsAvail string `json:"SeatsAvail"`
	CurPrice   string `json:"CurPrice"`
}

type ShowTime struct {
	ShowTime   string     `json:"ShowTime"`
	Categories []Category `json:"Categories"`
}

type Venue struct {
	VenueName string     `json:"VenueName"`
	ShowTimes []ShowTime `json:"ShowTimes"`
}

type ShowDetail struct {
	Venues []Venue `json:"Venues"`
}

// ShowtimeResponse is the nested document returned by the showtime endpoint.
type ShowtimeResponse struct {
	ShowDetails []ShowDetail `json:"ShowDetails"`
}

// ShowtimeRecord is one flattened venue/showtime/category entry with the
// derived booking numbers.
type ShowtimeRecord struct {
	VenueName     string  `json:"venueName"`
	ShowTime      string  `json:"showTime"`
	Category      string  `json:"category"`
	MaxSeats      int     `json:"maxSeats"`
	SeatsAvail    int     `json:"seatsAvail"`
	BookedTickets int     `json:"bookedTickets"`
	Price         float64 `json:"price"`
	Collection    float64 `json:"collection"`
}

// MovieCityAggregate holds the summed totals for one (movie, city) pair.
type MovieCityAggregate struct {
	Movie         string  `json:"movie"`
	City          string  `json:"city"`
	Collection    float64 `json:"collection"`
	SeatsAvail    int     `json:"seatsAvail"`
	BookedTickets int     `json:"bookedTickets"`
	Shows         int     `json:"shows"`
	OccupancyRate float64 `json:"occupancyRate"`
}

// GrandTotal sums every aggregate of a query. Occupancy is recomputed from
// the grand sums, never averaged from per-movie rates.
type GrandTotal struct {
	Collection    float64 `json:"collection"`
	SeatsAvail    int     `json:"seatsAvail"`
	BookedTickets int     `json:"bookedTickets"`
	Shows         int     `json:"shows"`
	OccupancyRate float64 `json:"occupancyRate"`
}

// MovieCityResult is the presenter surface for one (movie, city) pair.
type MovieCityResult struct {
	Movie     string             `json:"movie"`
	MovieCode string             `json:"movieCode"`
	City      string             `json:"city"`
	CityCode  string             `json:"cityCode"`
	Records   []ShowtimeRecord   `json:"records"`
	Aggregate MovieCityAggregate `json:"aggregate"`
}

type QueryResult struct {
	Results []MovieCityResult `json:"results"`
	Total   GrandTotal        `json:"total"`
}

// MovieSelection pairs the upstream event code with its display name, in the
// order the user picked it.
type MovieSelection struct {
	Code string
	Name string
}

// WorkItem is one (city, movie) pair of a query cross-product.
type WorkItem struct {
	City  Region
	Movie MovieSelection
}

// SummaryEntry is the persisted per-(movie, city) summary row.
type SummaryEntry struct {
	Movie         string    `json:"movie"`
	City          string    `json:"city"`
	ShowDate      string    `json:"showDate"`
	Collection    float64   `json:"collection"`
	SeatsAvail    int       `json:"seatsAvail"`
	BookedTickets int       `json:"bookedTickets"`
	Shows         int       `json:"shows"`
	OccupancyRate float64   `json:"occupancyRate"`
	LoggedAt      time.Time `json:"loggedAt"`
}
