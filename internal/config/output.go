package config

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// JSONFormat writes one JSON document per run instead of text
	JSONFormat bool `json:"json"`

	// ShowBoard appends the final position to each text report
	ShowBoard bool `json:"show_board"`

	// ShowCaptures lists captured pieces in each text report
	ShowCaptures bool `json:"show_captures"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowCaptures: true,
	}
}
