package engine

// excludedPlaceTypes is the static set of type tags that disqualify a
// place outright, before any scoring: administrative, medical, retail,
// transit, religious and educational categories, plus lodging. A place
// carrying any of these tags is skipped without fetching its reviews.
var excludedPlaceTypes = buildExclusionSet()

func buildExclusionSet() map[string]struct{} {
	tags := []string{
		// Lodging
		"lodging", "hotel", "motel", "inn", "rv_park", "campground",

		// Medical
		"hospital", "doctor", "dentist", "pharmacy", "drugstore",
		"physiotherapist", "veterinary_care", "health",

		// Administrative / civic
		"local_government_office", "city_hall", "courthouse", "embassy",
		"police", "fire_station", "post_office", "bank", "atm",
		"insurance_agency", "lawyer", "accounting", "real_estate_agency",
		"funeral_home", "cemetery",

		// Transit
		"airport", "bus_station", "train_station", "transit_station",
		"subway_station", "light_rail_station", "taxi_stand", "parking",
		"gas_station", "car_rental",

		// Religious
		"church", "mosque", "synagogue", "hindu_temple", "place_of_worship",

		// Educational
		"school", "primary_school", "secondary_school", "university",
		"library",

		// Retail
		"department_store", "shopping_mall", "supermarket", "grocery_store",
		"convenience_store", "hardware_store", "home_goods_store",
		"furniture_store", "electronics_store", "clothing_store",
		"shoe_store", "jewelry_store", "car_dealer", "car_repair",
		"car_wash", "laundry", "storage",
	}

	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}

// IsExcluded reports whether any of the type tags is in the exclusion set.
func IsExcluded(typeTags []string) bool {
	for _, tag := range typeTags {
		if _, ok := excludedPlaceTypes[tag]; ok {
			return true
		}
	}
	return false
}
