package constants

// Redis key formats
const (
	// Climate cache: one entry per farmer identity, not per district, so two
	// farmers in the same district keep independent refresh timing.
	KeyFarmerClimate = "weather:%s" // Format: weather:{phone_number}
)
