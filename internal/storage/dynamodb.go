package storage

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog"
	"github.com/scholarsportal/askdata/internal/types"
)

// chatDayItem is the table shape for one cached chat record: one item
// per record, partitioned by day.
type chatDayItem struct {
	DateKey  string           `dynamodbav:"DateKey"`
	RecordID string           `dynamodbav:"RecordID"`
	Record   types.ChatRecord `dynamodbav:"Record"`
}

// DynamoDBStore implements Store using AWS DynamoDB.
type DynamoDBStore struct {
	client *dynamodb.Client
	config CacheConfig
	logger zerolog.Logger
}

// NewDynamoDBStore creates a new DynamoDB store.
func NewDynamoDBStore(ctx context.Context, cfg CacheConfig, logger zerolog.Logger) (*DynamoDBStore, error) {
	var client *dynamodb.Client

	if cfg.Mode == CacheModeLocal {
		// For local mode, build the client directly without
		// LoadDefaultConfig. LoadDefaultConfig queries the EC2 IMDS
		// endpoint which hangs when static credentials are intended.
		client = dynamodb.New(dynamodb.Options{
			Region:       cfg.Region,
			BaseEndpoint: aws.String(cfg.Endpoint),
			Credentials:  credentials.NewStaticCredentialsProvider("local", "local", ""),
		})
	} else {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		client = dynamodb.NewFromConfig(awsCfg)
	}

	store := &DynamoDBStore{
		client: client,
		config: cfg,
		logger: logger,
	}

	// Create tables in local mode
	if cfg.Mode == CacheModeLocal {
		if err := CreateTablesIfNotExist(ctx, client, cfg, logger); err != nil {
			return nil, err
		}
	}

	logger.Info().
		Str("mode", string(cfg.Mode)).
		Str("region", cfg.Region).
		Msg("day cache store initialized")

	return store, nil
}

func (s *DynamoDBStore) SaveDayRecords(ctx context.Context, dateKey string, records []types.ChatRecord) error {
	for _, record := range records {
		item, err := attributevalue.MarshalMap(chatDayItem{
			DateKey:  dateKey,
			RecordID: strconv.FormatInt(record.ID, 10),
			Record:   record,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal chat record: %w", err)
		}

		_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(s.config.ChatRecordsTable),
			Item:      item,
		})
		if err != nil {
			return fmt.Errorf("failed to save chat record: %w", err)
		}
	}
	return nil
}

func (s *DynamoDBStore) GetDayRecords(ctx context.Context, dateKey string) ([]types.ChatRecord, error) {
	keyCond := expression.Key("DateKey").Equal(expression.Value(dateKey))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build expression: %w", err)
	}

	result, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(s.config.ChatRecordsTable),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query chat records: %w", err)
	}

	var items []chatDayItem
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chat records: %w", err)
	}

	records := make([]types.ChatRecord, 0, len(items))
	for _, item := range items {
		records = append(records, item.Record)
	}
	return records, nil
}

func (s *DynamoDBStore) SaveRun(ctx context.Context, run types.RunRecord) error {
	item, err := attributevalue.MarshalMap(run)
	if err != nil {
		return fmt.Errorf("failed to marshal run record: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.config.RunJournalTable),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to save run record: %w", err)
	}
	return nil
}

func (s *DynamoDBStore) GetRuns(ctx context.Context, dateKey string) ([]types.RunRecord, error) {
	keyCond := expression.Key("DateKey").Equal(expression.Value(dateKey))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build expression: %w", err)
	}

	result, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(s.config.RunJournalTable),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query run records: %w", err)
	}

	var runs []types.RunRecord
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &runs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run records: %w", err)
	}
	return runs, nil
}

// NewStore creates the appropriate store based on configuration.
func NewStore(ctx context.Context, logger zerolog.Logger) (Store, error) {
	cfg := LoadCacheConfig()

	switch cfg.Mode {
	case CacheModeLocal, CacheModeAWS:
		return NewDynamoDBStore(ctx, cfg, logger)
	default:
		logger.Info().Msg("day cache disabled (CACHE_MODE=none)")
		return NewNoopStore(), nil
	}
}
