package geopool

import "github.com/mcoot/geofinder-go/internal/model"

func heading(deg float64) *float64 {
	return &deg
}

// DefaultPool returns the built-in Charlottesville/UVA location set
func DefaultPool() []model.Location {
	return []model.Location{
		{Name: "The Rotunda", Lat: 38.0356, Lng: -78.5034, Heading: heading(180), Category: "grounds"},
		{Name: "The Corner", Lat: 38.0343, Lng: -78.5010, Heading: heading(90), Category: "downtown"},
		{Name: "Downtown Mall - East End", Lat: 38.0298, Lng: -78.4763, Heading: heading(270), Category: "downtown"},
		{Name: "Downtown Mall - West End", Lat: 38.0293, Lng: -78.4830, Heading: heading(90), Category: "downtown"},
		{Name: "Scott Stadium", Lat: 38.0311, Lng: -78.5138, Heading: heading(45), Category: "athletics"},
		{Name: "Barracks Road Shopping Center", Lat: 38.0453, Lng: -78.5057, Heading: heading(180), Category: "shopping"},
		{Name: "UVA Medical Center", Lat: 38.0297, Lng: -78.5009, Heading: heading(0), Category: "grounds"},
		{Name: "Lambeth Field", Lat: 38.0378, Lng: -78.5093, Heading: heading(135), Category: "athletics"},
		{Name: "Grounds - Old Cabell Hall", Lat: 38.0352, Lng: -78.5054, Heading: heading(0), Category: "grounds"},
		{Name: "Charlottesville Amtrak Station", Lat: 38.0317, Lng: -78.4916, Heading: heading(90), Category: "downtown"},
		{Name: "Dairy Market", Lat: 38.0250, Lng: -78.4792, Heading: heading(180), Category: "downtown"},
		{Name: "IX Art Park", Lat: 38.0242, Lng: -78.4795, Heading: heading(270), Category: "parks"},
		{Name: "Belmont Bridge", Lat: 38.0275, Lng: -78.4825, Heading: heading(45), Category: "downtown"},
		{Name: "McIntire Park", Lat: 38.0420, Lng: -78.4870, Heading: heading(180), Category: "parks"},
		{Name: "Alderman Library", Lat: 38.0365, Lng: -78.5055, Heading: heading(90), Category: "grounds"},
		{Name: "Memorial Gym", Lat: 38.0338, Lng: -78.5075, Heading: heading(0), Category: "athletics"},
		{Name: "Newcomb Hall", Lat: 38.0355, Lng: -78.5070, Heading: heading(270), Category: "grounds"},
		{Name: "Clark Hall", Lat: 38.0328, Lng: -78.5095, Heading: heading(45), Category: "grounds"},
		{Name: "Rugby Road", Lat: 38.0385, Lng: -78.5038, Heading: heading(180), Category: "grounds"},
		{Name: "Amphitheater", Lat: 38.0348, Lng: -78.5020, Heading: heading(90), Category: "grounds"},
		{Name: "John Paul Jones Arena", Lat: 38.0461, Lng: -78.5068, Heading: heading(0), Category: "athletics"},
		{Name: "Fontaine Research Park", Lat: 38.0190, Lng: -78.5150, Heading: heading(90), Category: "grounds"},
		{Name: "Stonefield", Lat: 38.0570, Lng: -78.4980, Heading: heading(180), Category: "shopping"},
		{Name: "Pantops Shopping Center", Lat: 38.0350, Lng: -78.4570, Heading: heading(270), Category: "shopping"},
		{Name: "Lee Park / Market Street Park", Lat: 38.0310, Lng: -78.4790, Heading: heading(0), Category: "parks"},
	}
}
