// internal/handlers/aisearch/config.go
package aisearch

type Config struct {
	// Lower temperature and a smaller token budget than the match endpoint:
	// query interpretation is a classification task, not prose generation.
	Temperature float32
	MaxTokens   int
	// ContextLimit bounds how many reference records go into the prompt.
	ContextLimit int
	// MaxPerCategory bounds each result list on both paths.
	MaxPerCategory int
}

func LoadConfig() *Config {
	return &Config{
		Temperature:    0.3,
		MaxTokens:      1000,
		ContextLimit:   20,
		MaxPerCategory: 10,
	}
}
