package aggregate

import (
	"math"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/nikhilpabolu99/bmsproject/entities"
	"github.com/nikhilpabolu99/bmsproject/timeband"
)

// showKey identifies one screening. Several price categories of the same
// venue and showtime count as a single show.
type showKey struct {
	Venue    string
	ShowTime string
}

// Accumulator folds ShowtimeRecords for one (movie, city) pair.
type Accumulator struct {
	Movie         string
	City          string
	Collection    float64
	SeatsAvail    int
	BookedTickets int
	shows         mapset.Set[showKey]
}

// Begin opens a fresh accumulator with all counters at zero.
func Begin(movie, city string) *Accumulator {
	return &Accumulator{
		Movie: movie,
		City:  city,
		shows: mapset.NewSet[showKey](),
	}
}

func (a *Accumulator) Add(record entities.ShowtimeRecord) {
	a.Collection += record.Collection
	a.SeatsAvail += record.SeatsAvail
	a.BookedTickets += record.BookedTickets
	a.shows.Add(showKey{Venue: record.VenueName, ShowTime: record.ShowTime})
}

// Finalize closes the accumulator into an aggregate. Occupancy is defined
// as 0 when no seats were seen at all.
func (a *Accumulator) Finalize() entities.MovieCityAggregate {
	return entities.MovieCityAggregate{
		Movie:         a.Movie,
		City:          a.City,
		Collection:    a.Collection,
		SeatsAvail:    a.SeatsAvail,
		BookedTickets: a.BookedTickets,
		Shows:         a.shows.Cardinality(),
		OccupancyRate: occupancy(a.BookedTickets, a.SeatsAvail),
	}
}

// MergeIntoGrandTotal adds one pair's sums into the running grand total and
// recomputes the grand occupancy from the grand sums.
func MergeIntoGrandTotal(total *entities.GrandTotal, agg entities.MovieCityAggregate) {
	total.Collection += agg.Collection
	total.SeatsAvail += agg.SeatsAvail
	total.BookedTickets += agg.BookedTickets
	total.Shows += agg.Shows
	total.OccupancyRate = occupancy(total.BookedTickets, total.SeatsAvail)
}

// FilterView rebuilds a QueryResult keeping only the records whose showtime
// falls inside the requested band. Aggregates and the grand total are
// recomputed from the surviving records.
func FilterView(result *entities.QueryResult, band timeband.Band) *entities.QueryResult {
	filtered := &entities.QueryResult{}
	for _, pair := range result.Results {
		acc := Begin(pair.Movie, pair.City)
		var records []entities.ShowtimeRecord
		for _, record := range pair.Records {
			if !timeband.Matches(record.ShowTime, band) {
				continue
			}
			records = append(records, record)
			acc.Add(record)
		}
		agg := acc.Finalize()
		filtered.Results = append(filtered.Results, entities.MovieCityResult{
			Movie:     pair.Movie,
			MovieCode: pair.MovieCode,
			City:      pair.City,
			CityCode:  pair.CityCode,
			Records:   records,
			Aggregate: agg,
		})
		MergeIntoGrandTotal(&filtered.Total, agg)
	}
	return filtered
}

// occupancy is booked/(avail+booked) as a percentage, rounded to 2 decimal
// places, and 0 when the denominator is 0.
func occupancy(booked, avail int) float64 {
	denom := avail + booked
	if denom == 0 {
		return 0
	}
	rate := float64(booked) / float64(denom) * 100
	return math.Round(rate*100) / 100
}
