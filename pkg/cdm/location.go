package cdm

import "math"

const earthRadiusMetres = 6371000.0

// Location is a GeoJSON style point - coordinates are longitude, latitude
type Location struct {
	Type        string    `json:"type" groups:"basic"`
	Coordinates []float64 `json:"coordinates" groups:"basic"`
}

func NewLocation(latitude float64, longitude float64) *Location {
	return &Location{
		Type:        "Point",
		Coordinates: []float64{longitude, latitude},
	}
}

func (l *Location) Longitude() float64 {
	return l.Coordinates[0]
}

func (l *Location) Latitude() float64 {
	return l.Coordinates[1]
}

func (l *Location) Valid() bool {
	return l != nil && l.Type == "Point" && len(l.Coordinates) == 2
}

// Distance returns the great-circle distance to the other location in metres
func (l *Location) Distance(other *Location) float64 {
	lat1 := l.Latitude() * math.Pi / 180
	lat2 := other.Latitude() * math.Pi / 180
	deltaLat := (other.Latitude() - l.Latitude()) * math.Pi / 180
	deltaLon := (other.Longitude() - l.Longitude()) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMetres * c
}
