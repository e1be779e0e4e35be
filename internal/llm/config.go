// Package llm provides the optional LLM client used to turn upskilling
// plans into prose. All deterministic outputs of the engine work without it.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for narrative generation
type Config struct {
	Provider Provider
	Model    string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    "gemini-2.5-flash",
	}
}

// WithModel returns a new Config with a different model
func (c *Config) WithModel(model string) *Config {
	return &Config{
		Provider: c.Provider,
		Model:    model,
	}
}
