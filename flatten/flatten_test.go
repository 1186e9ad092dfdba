package flatten

import (
	"encoding/json"
	"testing"

	"github.com/nikhilpabolu99/bmsproject/entities"
	"github.com/stretchr/testify/assert"
)

const showtimeDoc = `{
	"ShowDetails": [
		{
			"Venues": [
				{
					"VenueName": "PVR Orion Mall",
					"ShowTimes": [
						{
							"ShowTime": "2:30 PM",
							"Categories": [
								{"PriceDesc": "RECLINER", "MaxSeats": "100", "SeatsAvail": "40", "CurPrice": "250.00"},
								{"PriceDesc": "PRIME", "MaxSeats": "50", "SeatsAvail": "50", "CurPrice": "300.00"}
							]
						},
						{
							"ShowTime": "8:00 PM",
							"Categories": [
								{"PriceDesc": "PRIME", "MaxSeats": "80", "SeatsAvail": "20", "CurPrice": "180.50"}
							]
						}
					]
				},
				{
					"VenueName": "INOX Garuda",
					"ShowTimes": [
						{
							"ShowTime": "6:15 PM",
							"Categories": [
								{"PriceDesc": "CLASSIC", "MaxSeats": "120", "SeatsAvail": "90", "CurPrice": "150"}
							]
						}
					]
				}
			]
		}
	]
}`

func parseDoc(t *testing.T, raw string) *entities.ShowtimeResponse {
	t.Helper()
	var doc entities.ShowtimeResponse
	assert.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return &doc
}

func TestRecords(t *testing.T) {
	t.Parallel()
	doc := parseDoc(t, showtimeDoc)

	var records []entities.ShowtimeRecord
	for record, err := range Records(doc) {
		assert.NoError(t, err)
		records = append(records, record)
	}

	assert.Len(t, records, 4)

	first := records[0]
	assert.Equal(t, "PVR Orion Mall", first.VenueName)
	assert.Equal(t, "2:30 PM", first.ShowTime)
	assert.Equal(t, "RECLINER", first.Category)
	assert.Equal(t, 100, first.MaxSeats)
	assert.Equal(t, 40, first.SeatsAvail)
	assert.Equal(t, 60, first.BookedTickets)
	assert.Equal(t, 250.00, first.Price)
	assert.Equal(t, 15000.00, first.Collection)

	second := records[1]
	assert.Equal(t, 0, second.BookedTickets)
	assert.Equal(t, 0.00, second.Collection)

	last := records[3]
	assert.Equal(t, "INOX Garuda", last.VenueName)
	assert.Equal(t, 30, last.BookedTickets)
	assert.Equal(t, 4500.00, last.Collection)
}

func TestRecordsIsRestartable(t *testing.T) {
	t.Parallel()
	doc := parseDoc(t, showtimeDoc)
	seq := Records(doc)

	count := func() int {
		n := 0
		for _, err := range seq {
			assert.NoError(t, err)
			n++
		}
		return n
	}
	assert.Equal(t, 4, count())
	assert.Equal(t, 4, count(), "ranging a second time must restart the walk")
}

func TestRecordsMalformedCategorySkipped(t *testing.T) {
	t.Parallel()
	doc := parseDoc(t, `{
		"ShowDetails": [{"Venues": [{
			"VenueName": "PVR",
			"ShowTimes": [{
				"ShowTime": "2:30 PM",
				"Categories": [
					{"PriceDesc": "BAD", "MaxSeats": "lots", "SeatsAvail": "40", "CurPrice": "250"},
					{"PriceDesc": "GOOD", "MaxSeats": "100", "SeatsAvail": "40", "CurPrice": "250"}
				]
			}]
		}]}]
	}`)

	var good []entities.ShowtimeRecord
	var failures int
	for record, err := range Records(doc) {
		if err != nil {
			assert.ErrorIs(t, err, ErrMalformedRecord)
			failures++
			continue
		}
		good = append(good, record)
	}

	assert.Equal(t, 1, failures, "one bad category must not drop the venue's other categories")
	assert.Len(t, good, 1)
	assert.Equal(t, "GOOD", good[0].Category)
}

func TestRecordsMissingField(t *testing.T) {
	t.Parallel()
	doc := parseDoc(t, `{
		"ShowDetails": [{"Venues": [{
			"VenueName": "PVR",
			"ShowTimes": [{
				"ShowTime": "2:30 PM",
				"Categories": [{"PriceDesc": "NOPRICE", "MaxSeats": "100", "SeatsAvail": "40"}]
			}]
		}]}]
	}`)

	for _, err := range Records(doc) {
		assert.ErrorIs(t, err, ErrMalformedRecord)
	}
}

func TestRecordsSeatsAvailExceedsMax(t *testing.T) {
	t.Parallel()
	doc := parseDoc(t, `{
		"ShowDetails": [{"Venues": [{
			"VenueName": "PVR",
			"ShowTimes": [{
				"ShowTime": "2:30 PM",
				"Categories": [{"PriceDesc": "ODD", "MaxSeats": "40", "SeatsAvail": "100", "CurPrice": "250"}]
			}]
		}]}]
	}`)

	for _, err := range Records(doc) {
		assert.ErrorIs(t, err, ErrMalformedRecord, "negative booked tickets must surface as an anomaly")
	}
}

func TestRecordsEmptyDocument(t *testing.T) {
	t.Parallel()
	doc := &entities.ShowtimeResponse{}
	for range Records(doc) {
		t.Fatal("expected no records")
	}
}
