package constant

import (
	"os"
	"path/filepath"
)

const (
	REGIONS_URL = "https://in.bookmyshow.com/api/explore/v1/discover/regions"
	// SHOWTIMES_URL takes eventCode, regionCode, subRegion and an 8-digit dateCode
	SHOWTIMES_URL = "https://in.bookmyshow.com/api/movies-data/showtimes-by-event?appCode=MOBAND2&appVersion=14304&language=en&eventCode=%s&regionCode=%s&subRegion=%s&dateCode=%s"
)

var (
	FilesPath string
)

func init() {
	wd, err := os.Getwd()
	if err != nil {
		panic("cannot determine working directory: " + err.Error())
	}
	FilesPath = filepath.Join(wd, "files")
}
