package request

// GenerateRequest is the request body for generating a string.
// File sources are not accepted over HTTP.
type GenerateRequest struct {
	// Length is "N" or "LO-HI"
	Length   string   `json:"length"`
	Alphabet []string `json:"alphabet,omitempty"`
	Classes  []string `json:"classes,omitempty"`
	Unique   bool     `json:"unique,omitempty"`
	Seed     *int64   `json:"seed,omitempty"`
}
