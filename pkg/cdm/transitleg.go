package cdm

// TransitLegDetail is the ordered stop list and optional shape for the ride
// portion of a transit route option, fetched once the user boards.
type TransitLegDetail struct {
	RouteID  string `json:"route" groups:"basic"`
	Headsign string `json:"headsign,omitempty" groups:"basic"`

	Stops []TransitLegStop `json:"stops" groups:"basic"`

	// Encoded polyline of the ride, may be empty
	Shape string `json:"shape,omitempty" groups:"detailed"`
}

type TransitLegStop struct {
	StopID   string    `json:"stop_id" groups:"basic"`
	Name     string    `json:"name" groups:"basic"`
	Location *Location `json:"location,omitempty" groups:"detailed"`
}
