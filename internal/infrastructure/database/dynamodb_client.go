package database

import (
	"context"

	appconfig "lesson_billing/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the service configuration.
// DynamoDBEndpoint, when set, points the client at a local DynamoDB.
func ConnectDynamoDB(ctx context.Context, cfg *appconfig.Config) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(awsCfg, clientOptions(cfg)...), nil
}

func NewAWSConfig(ctx context.Context, cfg *appconfig.Config) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.AWSRegion),
		config.WithCredentialsProvider(creds),
	)
}

func clientOptions(cfg *appconfig.Config) []func(*dynamodb.Options) {
	if cfg.DynamoDBEndpoint == "" {
		return nil
	}
	return []func(*dynamodb.Options){
		func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		},
	}
}
