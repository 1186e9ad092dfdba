package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/nikhilpabolu99/bmsproject/client"
	"github.com/nikhilpabolu99/bmsproject/constant"
	"github.com/nikhilpabolu99/bmsproject/entities"
	"github.com/nikhilpabolu99/bmsproject/fetchshowtimes"
	"github.com/nikhilpabolu99/bmsproject/persistence"
	"github.com/nikhilpabolu99/bmsproject/regions"
	"github.com/nikhilpabolu99/bmsproject/timeband"
	"github.com/nikhilpabolu99/bmsproject/utils"
)

func main() {
	cityCodes := flag.String("cities", "", "Comma-separated region codes, e.g. BANG,HYD")
	movieList := flag.String("movies", "", "Comma-separated movie selections as code=name pairs")
	date := flag.String("date", time.Now().Format("2006-01-02"), "Show date (YYYY-MM-DD)")
	bandName := flag.String("band", "all", "Time band: all, early-morning, noon, matinee, first-show, second-show")
	requestDelay := flag.Int("delay", 100, "Delay between requests in milliseconds")
	outputFile := flag.String("out", "", "Output file for the full query result (JSON)")
	persistMode := flag.String("persist", "", "Persist summaries: 'file' or 'postgres'")
	flag.Parse()

	cities, movies, err := parseSelection(*cityCodes, *movieList)
	if err != nil {
		panic(fmt.Sprintf("Invalid selection: %v", err))
	}
	band, err := timeband.FromName(*bandName)
	if err != nil {
		panic(fmt.Sprintf("Invalid band: %v", err))
	}

	box := client.New()
	if err := regions.EnsureCached(box); err != nil {
		panic(fmt.Sprintf("Failed to cache regions: %v", err))
	}
	allRegions, err := regions.LoadCached()
	if err != nil {
		panic(fmt.Sprintf("Failed to load regions: %v", err))
	}
	fmt.Printf("🏙️  Loaded %d regions\n", len(allRegions))

	var selectedCities []entities.Region
	for _, city := range cities {
		selectedCities = append(selectedCities, regions.Lookup(city, allRegions))
	}

	ctx := context.Background()
	store, cleanup, err := buildPersistence(ctx, *persistMode)
	if err != nil {
		panic(fmt.Sprintf("Failed to set up persistence: %v", err))
	}
	defer cleanup()

	totalRequests := int64(len(selectedCities) * len(movies))
	fmt.Printf("Total requests to make: %d\n", totalRequests)

	var completed int64 = 0
	stopProgress := make(chan struct{})
	go utils.ReportProgress(&completed, totalRequests, stopProgress)

	runner := fetchshowtimes.NewRunner()
	result, err := runner.Run(ctx, &fetchshowtimes.QueryOptions{
		Cities:       selectedCities,
		Movies:       movies,
		Date:         *date,
		Band:         band,
		ShowtimesUrl: constant.SHOWTIMES_URL,
		RequestDelay: *requestDelay,
		Client:       box,
		Persistence:  store,
		Completed:    &completed,
	})
	close(stopProgress)
	if err != nil {
		panic(fmt.Sprintf("Query failed: %v", err))
	}

	utils.PrintSummary(result)

	if *outputFile != "" {
		if err := utils.WriteResultsToFile(result, *outputFile); err != nil {
			panic(fmt.Sprintf("Failed to write results: %v", err))
		}
	}
}

func parseSelection(cityCodes, movieList string) ([]string, []entities.MovieSelection, error) {
	var cities []string
	for _, code := range strings.Split(cityCodes, ",") {
		if code = strings.TrimSpace(code); code != "" {
			cities = append(cities, code)
		}
	}

	var movies []entities.MovieSelection
	for _, item := range strings.Split(movieList, ",") {
		if item = strings.TrimSpace(item); item == "" {
			continue
		}
		code, name, found := strings.Cut(item, "=")
		if !found {
			name = code
		}
		movies = append(movies, entities.MovieSelection{Code: code, Name: name})
	}

	if len(cities) == 0 || len(movies) == 0 {
		return nil, nil, fmt.Errorf("both -cities and -movies are required")
	}
	return cities, movies, nil
}

func buildPersistence(ctx context.Context, mode string) (persistence.Persistence, func(), error) {
	switch mode {
	case "":
		return nil, func() {}, nil
	case "file":
		return persistence.NewFilePersistence("summaries.log"), func() {}, nil
	case "postgres":
		pool, err := persistence.NewPostgresPool(ctx)
		if err != nil {
			return nil, nil, err
		}
		if err := persistence.InitPostgresSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return persistence.NewPostgresPersistence(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown persistence mode %q", mode)
	}
}
