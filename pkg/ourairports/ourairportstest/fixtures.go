// Package ourairportstest provides small OurAirports CSV fixtures and an HTTP
// server that publishes them, for tests of packages that load datasets.
package ourairportstest

const AirportsCSV = `"id","ident","type","name","latitude_deg","longitude_deg","elevation_ft","continent","iso_country","iso_region","municipality","scheduled_service","gps_code","iata_code","local_code","home_link","wikipedia_link","keywords"
6523,"00A","heliport","Total Rf Heliport",40.070985,-74.933689,11,"NA","US","US-PA","Bensalem","no","K00A",,"00A","https://www.penndot.pa.gov/TravelInPA/airports-pa/Pages/Total-RF-Heliport.aspx",,
2434,"EGLL","large_airport","London Heathrow Airport",51.4706,-0.461941,83,"EU","GB","GB-ENG","London","yes","EGLL","LHR",,"http://www.heathrowairport.com/","https://en.wikipedia.org/wiki/Heathrow_Airport","LON, Londres"
317861,"GB-0001","closed","Old Field",51.5,-1.0,,"EU","GB","GB-ENG",,"no",,,,,,
3632,"KLAX","large_airport","Los Angeles International Airport",33.942501,-118.407997,125,"NA","US","US-CA","Los Angeles","yes","KLAX","LAX","LAX","https://www.flylax.com/","https://en.wikipedia.org/wiki/Los_Angeles_International_Airport",
`

const RunwaysCSV = `"id","airport_ref","airport_ident","length_ft","width_ft","surface","lighted","closed","le_ident","le_latitude_deg","le_longitude_deg","le_elevation_ft","le_heading_degT","le_displaced_threshold_ft","he_ident","he_latitude_deg","he_longitude_deg","he_elevation_ft","he_heading_degT","he_displaced_threshold_ft"
269408,6523,"00A",80,80,"ASPH-G",1,0,"H1",,,,,,,,,,,
232758,2434,"EGLL",12799,164,"ASP",1,0,"09L",51.4775,-0.484975,79,89.6,1013,"27R",51.4777,-0.433217,78,269.6,
232759,2434,"EGLL",12008,164,"ASP",1,0,"09R",51.4648,-0.482586,75,89.6,1007,"27L",51.465,-0.434116,77,269.6,
`

const NavaidsCSV = `"id","filename","ident","name","type","frequency_khz","latitude_deg","longitude_deg","elevation_ft","iso_country","dme_frequency_khz","dme_channel","dme_latitude_deg","dme_longitude_deg","dme_elevation_ft","slaved_variation_deg","magnetic_variation_deg","usageType","power","associated_airport"
85224,"London_VOR-DME_GB","LON","London","VOR-DME",113600,51.486999511719,-0.4672219753265,80,"GB",113600,"083X",,,,-1.0,-0.14,"TERMINAL","HIGH","EGLL"
85225,"Biggin_VOR-DME_GB","BIG","Biggin","VOR-DME",115100,51.330600738525,0.034944001585245,600,"GB",115100,"098X",51.33,0.03,620,-2.0,-0.5,"BOTH","HIGH","EGKB"
90000,"Abbey_NDB_US","AB","Abbey","NDB",356,40.0,-75.0,,"US",,,,,,,,"LO",,
`

const AirportFrequenciesCSV = `"id","airport_ref","airport_ident","type","description","frequency_mhz"
70000,6523,"00A","UNIC","CTAF",122.9
60907,2434,"EGLL","TWR","TWR",118.5
60906,2434,"EGLL","ATIS","ATIS",128.075
`

const CountriesCSV = `"id","code","name","continent","wikipedia_link","keywords"
302755,"US","United States","NA","https://en.wikipedia.org/wiki/United_States","America"
302672,"GB","United Kingdom","EU","https://en.wikipedia.org/wiki/United_Kingdom","Great Britain,UK"
`

const RegionsCSV = `"id","code","local_code","name","continent","iso_country","wikipedia_link","keywords"
306084,"US-PA","PA","Pennsylvania","NA","US","https://en.wikipedia.org/wiki/Pennsylvania",
303859,"GB-ENG","ENG","England","EU","GB","https://en.wikipedia.org/wiki/England",
306077,"US-CA","CA","California","NA","US","https://en.wikipedia.org/wiki/California",
`

// Files returns every fixture keyed by its published file name.
func Files() map[string]string {
	return map[string]string{
		"airports.csv":            AirportsCSV,
		"runways.csv":             RunwaysCSV,
		"navaids.csv":             NavaidsCSV,
		"airport-frequencies.csv": AirportFrequenciesCSV,
		"countries.csv":           CountriesCSV,
		"regions.csv":             RegionsCSV,
	}
}
