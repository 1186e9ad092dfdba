package regions

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/nikhilpabolu99/bmsproject/client"
	"github.com/nikhilpabolu99/bmsproject/constant"
	"github.com/nikhilpabolu99/bmsproject/entities"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// MergeAndSort combines the top and other city lists into one slice sorted
// ascending by display name with locale-aware comparison. A region present
// in both source lists appears twice.
func MergeAndSort(file *entities.RegionsFile) []entities.Region {
	all := make([]entities.Region, 0, len(file.BookMyShow.TopCities)+len(file.BookMyShow.OtherCities))
	all = append(all, file.BookMyShow.TopCities...)
	all = append(all, file.BookMyShow.OtherCities...)

	c := collate.New(language.English)
	sort.SliceStable(all, func(i, j int) bool {
		return c.CompareString(all[i].RegionName, all[j].RegionName) < 0
	})
	return all
}

// EnsureCached fetches the regions document unless files/regions.json
// already exists, mirroring how cinema lists are cached between runs.
func EnsureCached(box client.BoxOffice) error {
	path := filepath.Join(constant.FilesPath, "regions.json")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	regionsFile, err := box.GetRegions()
	if err != nil {
		return fmt.Errorf("failed to fetch regions: %w", err)
	}
	data, err := json.MarshalIndent(regionsFile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal regions: %w", err)
	}
	if err := os.MkdirAll(constant.FilesPath, 0755); err != nil {
		return fmt.Errorf("failed to create files dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write regions.json: %w", err)
	}
	return nil
}

// LoadCached reads the cached regions document and returns the merged,
// sorted city list.
func LoadCached() ([]entities.Region, error) {
	data, err := os.ReadFile(filepath.Join(constant.FilesPath, "regions.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to open regions.json: %w", err)
	}
	var file entities.RegionsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse regions.json: %w", err)
	}
	return MergeAndSort(&file), nil
}

// Lookup resolves a region code to its display name; unknown codes fall
// back to the code itself.
func Lookup(code string, all []entities.Region) entities.Region {
	for _, region := range all {
		if region.RegionCode == code {
			return region
		}
	}
	return entities.Region{RegionCode: code, RegionName: code}
}
