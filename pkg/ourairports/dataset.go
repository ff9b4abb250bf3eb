package ourairports

import (
	"fmt"
	"strings"
)

// DefaultBaseURL is where the OurAirports project publishes its CSV exports.
const DefaultBaseURL = "https://davidmegginson.github.io/ourairports-data/"

// Dataset names one of the six OurAirports CSV exports.
type Dataset string

const (
	DatasetAirports           Dataset = "airports"
	DatasetRunways            Dataset = "runways"
	DatasetNavaids            Dataset = "navaids"
	DatasetAirportFrequencies Dataset = "airport-frequencies"
	DatasetCountries          Dataset = "countries"
	DatasetRegions            Dataset = "regions"
)

// Datasets lists every dataset in a stable order.
func Datasets() []Dataset {
	return []Dataset{
		DatasetAirports,
		DatasetRunways,
		DatasetNavaids,
		DatasetAirportFrequencies,
		DatasetCountries,
		DatasetRegions,
	}
}

// ParseDataset accepts a dataset name, ignoring case. "frequencies" is
// accepted for airport-frequencies.
func ParseDataset(s string) (Dataset, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "frequencies" || name == "airport_frequencies" {
		return DatasetAirportFrequencies, nil
	}
	for _, d := range Datasets() {
		if string(d) == name {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDataset, s)
}

// FileName is the CSV file name the dataset is published under.
func (d Dataset) FileName() string {
	return string(d) + ".csv"
}

func (d Dataset) String() string {
	return string(d)
}

// SourceURL joins a base URL and the dataset file name.
func (d Dataset) SourceURL(baseURL string) string {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL + d.FileName()
}

// DefaultSourceURL returns the upstream URL of the dataset.
func DefaultSourceURL(d Dataset) string {
	return d.SourceURL(DefaultBaseURL)
}
