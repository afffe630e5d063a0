package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
)

// CreateTablesIfNotExist creates DynamoDB tables for local development.
func CreateTablesIfNotExist(ctx context.Context, client *dynamodb.Client, config CacheConfig, logger zerolog.Logger) error {
	tables := []struct {
		name string
		pk   string
		sk   string
	}{
		{config.ChatRecordsTable, "DateKey", "RecordID"},
		{config.RunJournalTable, "DateKey", "RunID"},
	}

	for _, table := range tables {
		_, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
			TableName: aws.String(table.name),
		})
		if err == nil {
			logger.Info().Str("table", table.name).Msg("table already exists")
			continue
		}

		_, err = client.CreateTable(ctx, &dynamodb.CreateTableInput{
			TableName: aws.String(table.name),
			KeySchema: []dbtypes.KeySchemaElement{
				{AttributeName: aws.String(table.pk), KeyType: dbtypes.KeyTypeHash},
				{AttributeName: aws.String(table.sk), KeyType: dbtypes.KeyTypeRange},
			},
			AttributeDefinitions: []dbtypes.AttributeDefinition{
				{AttributeName: aws.String(table.pk), AttributeType: dbtypes.ScalarAttributeTypeS},
				{AttributeName: aws.String(table.sk), AttributeType: dbtypes.ScalarAttributeTypeS},
			},
			BillingMode: dbtypes.BillingModePayPerRequest,
		})
		if err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.name, err)
		}
		logger.Info().Str("table", table.name).Msg("table created")
	}

	return nil
}

// TruncateAll deletes all items from both tables (scan + batch delete).
// Intended for local development resets only.
func (s *DynamoDBStore) TruncateAll(ctx context.Context) error {
	tables := []struct {
		name string
		pk   string
		sk   string
	}{
		{s.config.ChatRecordsTable, "DateKey", "RecordID"},
		{s.config.RunJournalTable, "DateKey", "RunID"},
	}

	for _, table := range tables {
		if err := s.truncateTable(ctx, table.name, table.pk, table.sk); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table.name, err)
		}
	}
	return nil
}

func (s *DynamoDBStore) truncateTable(ctx context.Context, name, pk, sk string) error {
	proj := expression.NamesList(expression.Name(pk), expression.Name(sk))
	expr, err := expression.NewBuilder().WithProjection(proj).Build()
	if err != nil {
		return fmt.Errorf("failed to build expression: %w", err)
	}

	var startKey map[string]dbtypes.AttributeValue
	for {
		out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:                aws.String(name),
			ProjectionExpression:     expr.Projection(),
			ExpressionAttributeNames: expr.Names(),
			ExclusiveStartKey:        startKey,
		})
		if err != nil {
			return fmt.Errorf("failed to scan table: %w", err)
		}

		for _, item := range out.Items {
			_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
				TableName: aws.String(name),
				Key: map[string]dbtypes.AttributeValue{
					pk: item[pk],
					sk: item[sk],
				},
			})
			if err != nil {
				return fmt.Errorf("failed to delete item: %w", err)
			}
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	s.logger.Info().Str("table", name).Msg("table truncated")
	return nil
}
