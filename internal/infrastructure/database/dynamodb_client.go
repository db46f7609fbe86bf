package database

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBSettings is read from the environment.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
type DynamoDBSettings struct {
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string
}

func DynamoDBSettingsFromEnv() DynamoDBSettings {
	return DynamoDBSettings{
		Region:    getenvDefault("AWS_REGION", "us-east-1"),
		AccessKey: getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		SecretKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		Endpoint:  os.Getenv("DYNAMODB_ENDPOINT"),
	}
}

// ConnectDynamoDB builds the order store client.
func ConnectDynamoDB(ctx context.Context, s DynamoDBSettings) (*dynamodb.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(s.Region),
		// Local DynamoDB does not validate credentials, but the SDK requires them.
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s.AccessKey, s.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load dynamodb config: %w", err)
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if s.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.Endpoint)
		}
	}), nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
