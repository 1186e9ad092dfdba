package entities

type Region struct {
	RegionCode string `json:"RegionCode"`
	RegionName string `json:"RegionName"`
}

// RegionsFile is the two-list regions document returned by the upstream
// discover endpoint.
type RegionsFile struct {
	BookMyShow struct {
		TopCities   []Region `json:"TopCities"`
		OtherCities []Region `json:"OtherCities"`
	} `json:"BookMyShow"`
}
