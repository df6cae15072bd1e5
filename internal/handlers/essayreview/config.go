// internal/handlers/essayreview/config.go
package essayreview

type Config struct {
	Temperature float32
	MaxTokens   int
	// MaxEssayLength bounds the accepted essay size in characters.
	MaxEssayLength int
}

func LoadConfig() *Config {
	return &Config{
		Temperature:    0.5,
		MaxTokens:      1500,
		MaxEssayLength: 20000,
	}
}
