package flatten

import (
	"errors"
	"fmt"
	"iter"
	"strconv"

	"github.com/nikhilpabolu99/bmsproject/entities"
)

// ErrMalformedRecord marks one category entry whose numeric fields are
// missing, non-numeric, or inconsistent. The caller skips the record and
// keeps flattening; one bad category must not drop a venue's other entries.
var ErrMalformedRecord = errors.New("malformed record")

// Records walks ShowDetails -> Venues -> ShowTimes -> Categories and yields
// one ShowtimeRecord per category entry. The sequence is lazy and can be
// ranged over more than once.
func Records(doc *entities.ShowtimeResponse) iter.Seq2[entities.ShowtimeRecord, error] {
	return func(yield func(entities.ShowtimeRecord, error) bool) {
		for _, detail := range doc.ShowDetails {
			for _, venue := range detail.Venues {
				for _, showtime := range venue.ShowTimes {
					for _, category := range showtime.Categories {
						record, err := buildRecord(venue.VenueName, showtime.ShowTime, category)
						if !yield(record, err) {
							return
						}
					}
				}
			}
		}
	}
}

func buildRecord(venueName, showTime string, category entities.Category) (entities.ShowtimeRecord, error) {
	maxSeats, err := parseSeats(category.MaxSeats, "MaxSeats")
	if err != nil {
		return entities.ShowtimeRecord{}, err
	}
	seatsAvail, err := parseSeats(category.SeatsAvail, "SeatsAvail")
	if err != nil {
		return entities.ShowtimeRecord{}, err
	}
	if seatsAvail > maxSeats {
		// Booked tickets would go negative; treat as a data anomaly.
		return entities.ShowtimeRecord{}, fmt.Errorf("%w: SeatsAvail %d exceeds MaxSeats %d", ErrMalformedRecord, seatsAvail, maxSeats)
	}
	price, err := parsePrice(category.CurPrice)
	if err != nil {
		return entities.ShowtimeRecord{}, err
	}
	booked := maxSeats - seatsAvail
	return entities.ShowtimeRecord{
		VenueName:     venueName,
		ShowTime:      showTime,
		Category:      category.PriceDesc,
		MaxSeats:      maxSeats,
		SeatsAvail:    seatsAvail,
		BookedTickets: booked,
		Price:         price,
		Collection:    float64(booked) * price,
	}, nil
}

func parseSeats(raw, field string) (int, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: missing %s", ErrMalformedRecord, field)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformedRecord, field, raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s %d is negative", ErrMalformedRecord, field, n)
	}
	return n, nil
}

func parsePrice(raw string) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: missing CurPrice", ErrMalformedRecord)
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: CurPrice %q is not a number", ErrMalformedRecord, raw)
	}
	if price < 0 {
		return 0, fmt.Errorf("%w: CurPrice %v is negative", ErrMalformedRecord, price)
	}
	return price, nil
}
