package config

// DuplicateConfig holds settings for duplicate game detection.
type DuplicateConfig struct {
	// Suppress drops games whose final position was already reported
	Suppress bool `json:"suppress"`

	// ExactMatch also requires the same number of plies
	ExactMatch bool `json:"exact_match"`
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}
