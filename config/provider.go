package config

// Provider defines the api for configuration providers to
// implement to expose binding information.
// output can be a pointer to a struct, slice or map[string]any.
type Provider interface {
	Unmarshal(path string, output any) error
}
