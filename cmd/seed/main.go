package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"bidtrack/internal/adapter/persistence/repository"
	"bidtrack/internal/domain/entities"
	"bidtrack/internal/infrastructure/auth"
	"bidtrack/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
)

// Provisions the DynamoDB tables the service queries against, upserts one
// workforce account per role and prints a day-long dev token for each so the
// API can be exercised with curl right away.
func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "bidtrack-seed").Logger()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	awsCfg, err := database.LoadAWSConfig(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load AWS configuration")
	}
	ddb := database.ConnectDynamoDB(awsCfg)

	for _, spec := range tableSpecs() {
		if err := createTable(ctx, ddb, spec, logger); err != nil {
			logger.Fatal().Err(err).Str("table", spec.name).Msg("Failed to create table")
		}
	}

	users := repository.NewUserDynamoRepository(ddb)
	now := time.Now().UTC()
	for _, u := range seedUsers() {
		u.CreatedAt = now
		u.UpdatedAt = now
		if _, err := users.Put(ctx, u); err != nil {
			logger.Fatal().Err(err).Str("uid", u.UID).Msg("Failed to seed user")
		}

		token, err := auth.IssueToken(u, 24*time.Hour)
		if err != nil {
			logger.Fatal().Err(err).Str("uid", u.UID).Msg("Failed to issue dev token")
		}
		fmt.Printf("%-10s %-12s Bearer %s\n", u.Role, u.UID, token)
	}

	logger.Info().Msg("Seed complete")
}

type tableSpec struct {
	name    string
	hashKey string
	indexes []indexSpec
}

type indexSpec struct {
	name    string
	hashKey string
	sortKey string
}

// tableSpecs mirrors the table requirements documented on each repository.
func tableSpecs() []tableSpec {
	return []tableSpec{
		{
			name:    getEnv("PROPOSALS_TABLE", "proposals"),
			hashKey: "id",
			indexes: []indexSpec{
				{name: "created_by_uid-index", hashKey: "created_by_uid", sortKey: "created_at"},
				{name: "record_type-index", hashKey: "record_type", sortKey: "created_at"},
			},
		},
		{
			name:    getEnv("ACTIVITIES_TABLE", "activities"),
			hashKey: "id",
			indexes: []indexSpec{
				{name: "proposal_id-index", hashKey: "proposal_id", sortKey: "ts"},
				{name: "performed_by-index", hashKey: "performed_by_uid", sortKey: "ts"},
				{name: "record_type-index", hashKey: "record_type", sortKey: "ts"},
			},
		},
		{
			name:    getEnv("NOTIFICATIONS_TABLE", "notifications"),
			hashKey: "id",
			indexes: []indexSpec{
				{name: "recipient_uid-index", hashKey: "recipient_uid", sortKey: "created_at"},
				{name: "recipient_role-index", hashKey: "recipient_role", sortKey: "created_at"},
			},
		},
		{
			name:    getEnv("FILES_TABLE", "files"),
			hashKey: "id",
			indexes: []indexSpec{
				{name: "proposal_id-index", hashKey: "proposal_id", sortKey: "created_at"},
			},
		},
		{
			name:    getEnv("USERS_TABLE", "users"),
			hashKey: "uid",
		},
	}
}

func seedUsers() []entities.User {
	return []entities.User{
		{UID: "bdm-1", Email: "bianca@bidtrack.dev", Name: "Bianca Monte", Role: entities.RoleBDM},
		{UID: "estimator-1", Email: "elias@bidtrack.dev", Name: "Elias Moraes", Role: entities.RoleEstimator},
		{UID: "coo-1", Email: "carla@bidtrack.dev", Name: "Carla Ohana", Role: entities.RoleCOO},
		{UID: "director-1", Email: "diego@bidtrack.dev", Name: "Diego Ramos", Role: entities.RoleDirector},
	}
}

func createTable(ctx context.Context, ddb *dynamodb.Client, spec tableSpec, logger zerolog.Logger) error {
	seen := map[string]bool{spec.hashKey: true}
	defs := []types.AttributeDefinition{{
		AttributeName: aws.String(spec.hashKey),
		AttributeType: types.ScalarAttributeTypeS,
	}}

	var gsis []types.GlobalSecondaryIndex
	for _, idx := range spec.indexes {
		for _, key := range []string{idx.hashKey, idx.sortKey} {
			if seen[key] {
				continue
			}
			seen[key] = true
			defs = append(defs, types.AttributeDefinition{
				AttributeName: aws.String(key),
				AttributeType: types.ScalarAttributeTypeS,
			})
		}
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName: aws.String(idx.name),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(idx.hashKey), KeyType: types.KeyTypeHash},
				{AttributeName: aws.String(idx.sortKey), KeyType: types.KeyTypeRange},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(spec.name),
		BillingMode: types.BillingModePayPerRequest,
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(spec.hashKey), KeyType: types.KeyTypeHash},
		},
		AttributeDefinitions: defs,
	}
	if len(gsis) > 0 {
		in.GlobalSecondaryIndexes = gsis
	}

	if _, err := ddb.CreateTable(ctx, in); err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			logger.Info().Str("table", spec.name).Msg("Table already exists")
			return nil
		}
		return err
	}

	waiter := dynamodb.NewTableExistsWaiter(ddb)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.name)}, 2*time.Minute); err != nil {
		return err
	}

	logger.Info().Str("table", spec.name).Msg("Table created")
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
