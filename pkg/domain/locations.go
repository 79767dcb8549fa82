package domain

// LocationID identifies one of the fixed facility audit sites.
type LocationID string

// Facility site identifiers.
const (
	LocationAgouraHills   LocationID = "agoura_hills"
	LocationArcadia       LocationID = "arcadia"
	LocationBeverlyHills  LocationID = "beverly_hills"
	LocationCanyonCountry LocationID = "canyon_country"
	LocationCulverCity    LocationID = "culver_city"
	LocationDowney        LocationID = "downey"
	LocationGlendale      LocationID = "glendale"
	LocationHollywood     LocationID = "hollywood"
	LocationLaCanada      LocationID = "la_canada"
	LocationLaMirada      LocationID = "la_mirada"
	LocationMissionHills  LocationID = "mission_hills"
	LocationNorthridge    LocationID = "northridge"
	LocationPicoRivera    LocationID = "pico_rivera"
	LocationPasadena      LocationID = "pasadena"
	LocationTarzana       LocationID = "tarzana"
	LocationSanFernando   LocationID = "san_fernando"
	LocationSantaMonica   LocationID = "santa_monica"
	LocationTorrance      LocationID = "torrance"
	LocationValencia      LocationID = "valencia"
	LocationVanNuys       LocationID = "van_nuys"
	LocationWestHills     LocationID = "west_hills"
	LocationWhittier      LocationID = "whittier"
)

var locationNames = map[LocationID]string{
	LocationAgouraHills:   "Agoura Hills",
	LocationArcadia:       "Arcadia",
	LocationBeverlyHills:  "Beverly Hills",
	LocationCanyonCountry: "Canyon Country",
	LocationCulverCity:    "Culver City",
	LocationDowney:        "Downey",
	LocationGlendale:      "Glendale",
	LocationHollywood:     "Hollywood",
	LocationLaCanada:      "La Canada",
	LocationLaMirada:      "La Mirada",
	LocationMissionHills:  "Mission Hills",
	LocationNorthridge:    "Northridge",
	LocationPicoRivera:    "Pico Rivera",
	LocationPasadena:      "Pasadena",
	LocationTarzana:       "Tarzana",
	LocationSanFernando:   "San Fernando",
	LocationSantaMonica:   "Santa Monica",
	LocationTorrance:      "Torrance",
	LocationValencia:      "Valencia",
	LocationVanNuys:       "Van Nuys",
	LocationWestHills:     "West Hills",
	LocationWhittier:      "Whittier",
}

// Locations returns all facility identifiers in stable display order.
func Locations() []LocationID {
	return []LocationID{
		LocationAgouraHills, LocationArcadia, LocationBeverlyHills,
		LocationCanyonCountry, LocationCulverCity, LocationDowney,
		LocationGlendale, LocationHollywood, LocationLaCanada,
		LocationLaMirada, LocationMissionHills, LocationNorthridge,
		LocationPicoRivera, LocationPasadena, LocationTarzana,
		LocationSanFernando, LocationSantaMonica, LocationTorrance,
		LocationValencia, LocationVanNuys, LocationWestHills,
		LocationWhittier,
	}
}

// Valid reports whether l is a known facility identifier.
func (l LocationID) Valid() bool {
	_, ok := locationNames[l]
	return ok
}

// DisplayName returns the human-readable site name, falling back to the raw
// identifier for unknown values.
func (l LocationID) DisplayName() string {
	if name, ok := locationNames[l]; ok {
		return name
	}
	return string(l)
}
