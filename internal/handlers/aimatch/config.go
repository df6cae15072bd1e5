// internal/handlers/aimatch/config.go
package aimatch

type Config struct {
	// Temperature and MaxTokens are tuned higher than the search endpoint:
	// matching answers are longer and benefit from more varied phrasing.
	Temperature float32
	MaxTokens   int
	// ContextLimit bounds how many reference records go into the prompt.
	ContextLimit int
	// MaxMatches bounds the ranked result list on both paths.
	MaxMatches int
}

func LoadConfig() *Config {
	return &Config{
		Temperature:  0.7,
		MaxTokens:    2500,
		ContextLimit: 20,
		MaxMatches:   10,
	}
}
