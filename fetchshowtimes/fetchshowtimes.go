package fetchshowtimes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/nikhilpabolu99/bmsproject/aggregate"
	"github.com/nikhilpabolu99/bmsproject/client"
	"github.com/nikhilpabolu99/bmsproject/entities"
	"github.com/nikhilpabolu99/bmsproject/flatten"
	"github.com/nikhilpabolu99/bmsproject/persistence"
	"github.com/nikhilpabolu99/bmsproject/team"
	"github.com/nikhilpabolu99/bmsproject/timeband"
)

var (
	// ErrEmptyInput aborts a query before any network activity when the
	// city, movie set, or date is missing.
	ErrEmptyInput = errors.New("city, movies and date must all be selected")
	// ErrQueryInProgress rejects a second Run while one is still running.
	ErrQueryInProgress = errors.New("a query is already in progress")
)

type QueryOptions struct {
	Cities       []entities.Region
	Movies       []entities.MovieSelection
	Date         string // calendar date with separators, e.g. "2024-05-01"
	Band         timeband.Band
	ShowtimesUrl string
	RequestDelay int
	Client       client.BoxOffice
	Persistence  persistence.Persistence
	Completed    *int64
}

// Runner executes one query at a time over the full cities x movies
// cross-product.
type Runner struct {
	inFlight atomic.Bool
}

func NewRunner() *Runner {
	return &Runner{}
}

// Run fetches, flattens and aggregates every (city, movie) pair of the
// selection, strictly sequentially and in the order the user picked them.
// Pair-scoped failures are reported and skipped; the worst case is a
// partial result set with zero-valued totals, never an aborted query.
func (r *Runner) Run(ctx context.Context, options *QueryOptions) (*entities.QueryResult, error) {
	if len(options.Cities) == 0 || len(options.Movies) == 0 || strings.TrimSpace(options.Date) == "" {
		return nil, ErrEmptyInput
	}
	if !r.inFlight.CompareAndSwap(false, true) {
		return nil, ErrQueryInProgress
	}
	defer r.inFlight.Store(false)

	dateCode := FormatDateCode(options.Date)

	var workItems []entities.WorkItem
	for _, city := range options.Cities {
		for _, movie := range options.Movies {
			workItems = append(workItems, entities.WorkItem{City: city, Movie: movie})
		}
	}

	// One worker keeps the pairs strictly sequential; errored pairs are
	// skipped and never sink the rest of the query.
	pairTeam := team.Team[entities.WorkItem, entities.MovieCityResult]{
		WorkerCount: 1,
		Worker: func(item entities.WorkItem) (entities.MovieCityResult, error) {
			result, err := r.fetchPair(item, dateCode, options)
			if options.Completed != nil {
				atomic.AddInt64(options.Completed, 1)
			}
			if options.RequestDelay > 0 {
				time.Sleep(time.Duration(options.RequestDelay) * time.Millisecond)
			}
			return result, err
		},
		OnError: func(item entities.WorkItem, err error) {
			fmt.Printf("\n⚠️  Skipping city %s, movie %s: %v\n", item.City.RegionName, item.Movie.Name, err)
		},
	}
	pairResults := pairTeam.Run(workItems)

	queryResult := &entities.QueryResult{}
	for _, pair := range pairResults {
		queryResult.Results = append(queryResult.Results, pair)
		aggregate.MergeIntoGrandTotal(&queryResult.Total, pair.Aggregate)

		if options.Persistence != nil {
			entry := entities.SummaryEntry{
				Movie:         pair.Movie,
				City:          pair.City,
				ShowDate:      options.Date,
				Collection:    pair.Aggregate.Collection,
				SeatsAvail:    pair.Aggregate.SeatsAvail,
				BookedTickets: pair.Aggregate.BookedTickets,
				Shows:         pair.Aggregate.Shows,
				OccupancyRate: pair.Aggregate.OccupancyRate,
				LoggedAt:      time.Now(),
			}
			if err := options.Persistence.WriteSummary(ctx, entry); err != nil {
				fmt.Printf("\n⚠️  Failed to persist summary for %s / %s: %v\n", pair.Movie, pair.City, err)
			}
		}
	}
	return queryResult, nil
}

// fetchPair fetches and aggregates one (city, movie) pair. Malformed
// category entries are skipped individually; records outside the requested
// band are excluded but still well-formed under All.
func (r *Runner) fetchPair(item entities.WorkItem, dateCode string, options *QueryOptions) (entities.MovieCityResult, error) {
	url := fmt.Sprintf(options.ShowtimesUrl, item.Movie.Code, item.City.RegionCode, item.City.RegionCode, dateCode)
	doc, err := options.Client.CallShowtimes(url, item.City.RegionCode)
	if err != nil {
		return entities.MovieCityResult{}, err
	}

	acc := aggregate.Begin(item.Movie.Name, item.City.RegionName)
	var records []entities.ShowtimeRecord
	for record, err := range flatten.Records(doc) {
		if err != nil {
			fmt.Printf("\n⚠️  Skipping category for movie %s in %s: %v\n", item.Movie.Name, item.City.RegionName, err)
			continue
		}
		if !timeband.Matches(record.ShowTime, options.Band) {
			continue
		}
		records = append(records, record)
		acc.Add(record)
	}

	return entities.MovieCityResult{
		Movie:     item.Movie.Name,
		MovieCode: item.Movie.Code,
		City:      item.City.RegionName,
		CityCode:  item.City.RegionCode,
		Records:   records,
		Aggregate: acc.Finalize(),
	}, nil
}

// FormatDateCode strips the separators from a calendar date, producing the
// 8-digit code the showtime endpoint expects ("2024-05-01" -> "20240501").
func FormatDateCode(date string) string {
	return strings.NewReplacer("-", "", "/", "").Replace(date)
}
