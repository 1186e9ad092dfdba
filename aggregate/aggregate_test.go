package aggregate

import (
	"testing"

	"github.com/nikhilpabolu99/bmsproject/entities"
	"github.com/nikhilpabolu99/bmsproject/timeband"
	"github.com/stretchr/testify/assert"
)

func record(venue, showtime string, maxSeats, seatsAvail int, price float64) entities.ShowtimeRecord {
	booked := maxSeats - seatsAvail
	return entities.ShowtimeRecord{
		VenueName:     venue,
		ShowTime:      showtime,
		MaxSeats:      maxSeats,
		SeatsAvail:    seatsAvail,
		BookedTickets: booked,
		Price:         price,
		Collection:    float64(booked) * price,
	}
}

func TestAccumulatorTwoCategoriesOneShow(t *testing.T) {
	t.Parallel()
	acc := Begin("Pushpa 2", "Hyderabad")
	acc.Add(record("PVR", "2:30 PM", 100, 40, 250.00))
	acc.Add(record("PVR", "2:30 PM", 50, 50, 300.00))

	agg := acc.Finalize()
	assert.Equal(t, "Pushpa 2", agg.Movie)
	assert.Equal(t, "Hyderabad", agg.City)
	assert.Equal(t, 15000.00, agg.Collection)
	assert.Equal(t, 90, agg.SeatsAvail)
	assert.Equal(t, 60, agg.BookedTickets)
	assert.Equal(t, 1, agg.Shows, "two categories of the same venue+showtime count as one show")
	assert.Equal(t, 40.00, agg.OccupancyRate)
}

func TestAccumulatorDistinctShows(t *testing.T) {
	t.Parallel()
	acc := Begin("Movie", "City")
	acc.Add(record("PVR", "2:30 PM", 10, 5, 100))
	acc.Add(record("PVR", "2:30 PM", 10, 5, 150))
	acc.Add(record("PVR", "2:30 PM", 10, 5, 200))
	acc.Add(record("PVR", "6:00 PM", 10, 5, 100))
	acc.Add(record("INOX", "2:30 PM", 10, 5, 100))

	agg := acc.Finalize()
	assert.Equal(t, 3, agg.Shows)
}

func TestFinalizeZeroDenominator(t *testing.T) {
	t.Parallel()
	agg := Begin("Movie", "City").Finalize()
	assert.Equal(t, 0.0, agg.OccupancyRate, "no seats at all must yield 0, not NaN")
	assert.Equal(t, 0, agg.Shows)
	assert.Equal(t, 0.0, agg.Collection)
}

func TestOccupancyRounding(t *testing.T) {
	t.Parallel()
	acc := Begin("Movie", "City")
	// 1 booked out of 3 total -> 33.333...% -> 33.33
	acc.Add(record("PVR", "2:30 PM", 3, 2, 100))
	assert.Equal(t, 33.33, acc.Finalize().OccupancyRate)
}

func TestGrandTotalOrderIndependence(t *testing.T) {
	t.Parallel()
	a := entities.MovieCityAggregate{Collection: 15000, SeatsAvail: 90, BookedTickets: 60, Shows: 1}
	b := entities.MovieCityAggregate{Collection: 5000, SeatsAvail: 10, BookedTickets: 40, Shows: 2}
	c := entities.MovieCityAggregate{Collection: 0, SeatsAvail: 0, BookedTickets: 0, Shows: 0}

	var forward entities.GrandTotal
	for _, agg := range []entities.MovieCityAggregate{a, b, c} {
		MergeIntoGrandTotal(&forward, agg)
	}
	var backward entities.GrandTotal
	for _, agg := range []entities.MovieCityAggregate{c, b, a} {
		MergeIntoGrandTotal(&backward, agg)
	}

	assert.Equal(t, forward, backward)
	assert.Equal(t, 20000.00, forward.Collection)
	assert.Equal(t, 100, forward.SeatsAvail)
	assert.Equal(t, 100, forward.BookedTickets)
	assert.Equal(t, 3, forward.Shows)
	// Grand occupancy comes from the grand sums: 100/(100+100)
	assert.Equal(t, 50.00, forward.OccupancyRate)
}

func TestFilterView(t *testing.T) {
	t.Parallel()
	matinee := record("PVR", "2:30 PM", 100, 40, 250)
	evening := record("PVR", "8:15 PM", 100, 50, 250)
	full := &entities.QueryResult{
		Results: []entities.MovieCityResult{
			{
				Movie:   "Movie",
				City:    "City",
				Records: []entities.ShowtimeRecord{matinee, evening},
			},
		},
	}
	acc := Begin("Movie", "City")
	acc.Add(matinee)
	acc.Add(evening)
	full.Results[0].Aggregate = acc.Finalize()
	MergeIntoGrandTotal(&full.Total, full.Results[0].Aggregate)

	view := FilterView(full, timeband.Matinee)
	assert.Len(t, view.Results, 1)
	assert.Len(t, view.Results[0].Records, 1)
	assert.Equal(t, "2:30 PM", view.Results[0].Records[0].ShowTime)
	assert.Equal(t, 1, view.Results[0].Aggregate.Shows)
	assert.Equal(t, 15000.00, view.Total.Collection)

	all := FilterView(full, timeband.All)
	assert.Len(t, all.Results[0].Records, 2)
	assert.Equal(t, full.Total, all.Total)
}
