package utils

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/nikhilpabolu99/bmsproject/entities"
)

func ReportProgress(completed *int64, total int64, stop chan struct{}) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			current := atomic.LoadInt64(completed)
			percent := float64(current) / float64(total) * 100
			fmt.Printf("\rProgress: %d/%d (%.2f%%) completed", current, total, percent)
		case <-stop:
			// Final progress update
			current := atomic.LoadInt64(completed)
			percent := float64(current) / float64(total) * 100
			fmt.Printf("\rProgress: %d/%d (%.2f%%) completed", current, total, percent)
			return
		}
	}
}

// PrintSummary writes the per-movie and grand summaries to stdout.
func PrintSummary(result *entities.QueryResult) {
	for _, pair := range result.Results {
		agg := pair.Aggregate
		fmt.Printf("\n🎬 %s — %s\n", agg.Movie, agg.City)
		fmt.Printf("   Collection: %.2f | Seats Available: %d | Booked: %d | Shows: %d | Occupancy: %.2f%%\n",
			agg.Collection, agg.SeatsAvail, agg.BookedTickets, agg.Shows, agg.OccupancyRate)
	}
	total := result.Total
	fmt.Printf("\n🏁 Total Collection: %.2f | Seats Available: %d | Booked: %d | Shows: %d | Occupancy: %.2f%%\n",
		total.Collection, total.SeatsAvail, total.BookedTickets, total.Shows, total.OccupancyRate)
}
