// Package ourairports decodes the public OurAirports CSV exports into typed,
// immutable in-memory tables.
//
// # Datasets
//
// Six files are published under DefaultBaseURL:
//
//	airports.csv             -> Table[*Airport]
//	runways.csv              -> Table[*Runway]
//	navaids.csv              -> Table[*Navaid]
//	airport-frequencies.csv  -> Table[*AirportFrequency]
//	countries.csv            -> Table[*Country]
//	regions.csv              -> Table[*Region]
//
// Each file is fetched with a single GET (see HTTPFetcher), fully buffered and
// parsed with header-driven column mapping, so column order does not matter
// and unknown columns are ignored.
//
// # Decoding
//
// Cells are decoded strictly:
//   - booleans accept yes/no and 1/0 in any case
//   - keywords are split on commas and trimmed
//   - controlled vocabularies (continent, airport type, navaid type, usage
//     type, power) are closed enums; unknown codes fail
//   - optional numeric columns are absent when the cell is empty
//
// The first cell that fails aborts the whole load with a *DecodeError naming
// the dataset, row, column and offending value. A transport failure, timeout
// or non-2xx status yields a *FetchError. No partial table is returned.
//
// # Identity
//
// Records are identified by their numeric id only. KeyOf, SameEntity,
// CompareByID, SortByID and DedupByID are the only notions of equality and
// ordering; two records with the same id are the same entity even when other
// fields differ. Tables iterate in ascending id order, and a repeated id in
// the source keeps the last row.
//
// # Serialization
//
// Every record implements json.Marshaler and json.Unmarshaler using the CSV
// column names as keys, and enums encode as their CSV codes, so a record
// survives a JSON round trip unchanged. Absent optional values encode as null.
package ourairports
