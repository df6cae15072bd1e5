// internal/common/aws/config.go
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
)

// loadConfig resolves credentials from the default chain (env vars, shared
// config, instance role) with the region pinned from app config.
func loadConfig(ctx context.Context, region string) (aws.Config, error) {
	if region == "" {
		return aws.Config{}, fmt.Errorf("aws region is required")
	}
	return awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
}
