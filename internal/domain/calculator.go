package domain

// CalculatorSettings is the single configuration record behind the public
// cost calculator. The estimate formula itself lives in the website, not
// here; the admin panel only edits the inputs.
type CalculatorSettings struct {
	BasePrice                float64            `json:"basePrice"`
	ServiceMultipliers       map[string]float64 `json:"serviceMultipliers"`
	MaterialMultipliers      map[string]float64 `json:"materialMultipliers"`
	RoomMultiplierPercentage float64            `json:"roomMultiplierPercentage"`
	BaseRoomCount            int                `json:"baseRoomCount"`
}
