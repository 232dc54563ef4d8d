package docstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-redis/redis/v8"

	"guest-portal-backend/internal/alerts"
	"guest-portal-backend/internal/env"
)

// DynamoStore backs the document store with DynamoDB, one table per
// collection. DynamoDB has no native timestamp scalar and no snapshot
// listeners: timestamps are stored as epoch milliseconds, and Subscribe is
// driven by redis pub/sub invalidations published after every write, each
// notification triggering a re-list that is delivered as a full snapshot.
type DynamoStore struct {
	svc   *dynamodb.Client
	redis *redis.Client
	bus   *alerts.Bus
}

type DynamoConfig struct {
	Region    string
	KeyID     string
	Secret    string
	Token     string
	Endpoint  string
	RedisAddr string
	RedisPass string
}

func DynamoConfigFromEnv() DynamoConfig {
	return DynamoConfig{
		Region:    env.Get(env.AWSRegion),
		KeyID:     env.Get(env.AWSID),
		Secret:    env.Get(env.AWSSecret),
		Token:     env.Get(env.AWSToken),
		Endpoint:  env.Get(env.DynamoDBEndpoint),
		RedisAddr: env.Get(env.RedisURL),
		RedisPass: env.Get(env.RedisPass),
	}
}

func NewDynamoStore(ctx context.Context, cfg DynamoConfig, bus *alerts.Bus) (*DynamoStore, error) {
	if bus == nil {
		bus = alerts.Default
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.KeyID != "" && cfg.Secret != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(cfg.KeyID, cfg.Secret, cfg.Token)),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("dynamo store: load aws config: %w", err)
	}

	clientOpts := []func(*dynamodb.Options){}
	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}

	return &DynamoStore{
		svc: dynamodb.NewFromConfig(awsCfg, clientOpts...),
		redis: redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       0,
		}),
		bus: bus,
	}, nil
}

func (s *DynamoStore) Get(ctx context.Context, collection, id string) (Document, error) {
	res, err := s.svc.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(collection),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("dynamo get %s/%s: %w", collection, id, err)
	}
	if res.Item == nil {
		return nil, ErrNotFound
	}

	var doc Document
	if err := attributevalue.UnmarshalMap(res.Item, &doc); err != nil {
		return nil, fmt.Errorf("dynamo get %s/%s: unmarshal: %w", collection, id, err)
	}
	return decodeTimestamps(doc), nil
}

func (s *DynamoStore) List(ctx context.Context, collection string, q Query) ([]Document, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(collection)}
	if len(q.Filters) > 0 {
		expr, values, names := buildFilterExpression(q.Filters)
		input.FilterExpression = aws.String(expr)
		input.ExpressionAttributeValues = values
		input.ExpressionAttributeNames = names
	}

	var docs []Document
	var lastKey map[string]types.AttributeValue
	for {
		input.ExclusiveStartKey = lastKey
		res, err := s.svc.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("dynamo list %s: %w", collection, err)
		}
		for _, item := range res.Items {
			var doc Document
			if err := attributevalue.UnmarshalMap(item, &doc); err != nil {
				return nil, fmt.Errorf("dynamo list %s: unmarshal: %w", collection, err)
			}
			docs = append(docs, decodeTimestamps(doc))
		}
		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = res.LastEvaluatedKey
	}

	// Scans return items unordered; sort client-side.
	sortDocuments(docs, q)
	return docs, nil
}

func (s *DynamoStore) Create(ctx context.Context, collection, id string, doc Document) error {
	doc = Sanitize(doc)
	doc["id"] = id

	item, err := attributevalue.MarshalMap(encodeTimestamps(doc))
	if err != nil {
		return fmt.Errorf("dynamo create %s/%s: marshal: %w", collection, id, err)
	}
	_, err = s.svc.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(collection),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("dynamo create %s/%s: %w", collection, id, err)
	}

	s.notify(ctx, collection)
	return nil
}

func (s *DynamoStore) Update(ctx context.Context, collection, id string, doc Document) error {
	doc = Sanitize(doc)
	doc = encodeTimestamps(doc)
	if len(doc) == 0 {
		return nil
	}

	exprParts := make([]string, 0, len(doc))
	values := make(map[string]types.AttributeValue, len(doc))
	names := make(map[string]string, len(doc))
	i := 0
	for field, value := range doc {
		if field == "id" {
			continue
		}
		av, err := attributevalue.Marshal(value)
		if err != nil {
			return fmt.Errorf("dynamo update %s/%s: marshal %s: %w", collection, id, field, err)
		}
		nameKey := fmt.Sprintf("#f%d", i)
		valueKey := fmt.Sprintf(":v%d", i)
		exprParts = append(exprParts, fmt.Sprintf("%s = %s", nameKey, valueKey))
		names[nameKey] = field
		values[valueKey] = av
		i++
	}
	if len(exprParts) == 0 {
		return nil
	}

	_, err := s.svc.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(collection),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String("SET " + strings.Join(exprParts, ", ")),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ConditionExpression:       aws.String("attribute_exists(id)"),
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return ErrNotFound
		}
		return fmt.Errorf("dynamo update %s/%s: %w", collection, id, err)
	}

	s.notify(ctx, collection)
	return nil
}

func (s *DynamoStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.svc.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(collection),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return fmt.Errorf("dynamo delete %s/%s: %w", collection, id, err)
	}

	s.notify(ctx, collection)
	return nil
}

// Subscribe lists once for the initial snapshot, then re-lists on every
// invalidation published for the collection. Failures go to the alert bus;
// the returned handle always works.
func (s *DynamoStore) Subscribe(collection string, q Query, fn SnapshotFunc) func() {
	ctx, cancel := context.WithCancel(context.Background())
	sub := s.redis.Subscribe(ctx, changeChannel(collection))

	go func() {
		refresh := func() bool {
			docs, err := s.List(ctx, collection, q)
			if err != nil {
				if ctx.Err() != nil {
					return false
				}
				s.bus.Publish(alerts.Event{
					Context: alerts.ContextFor(collection),
					Message: err.Error(),
				})
				return false
			}
			fn(docs)
			return true
		}

		if !refresh() {
			return
		}
		for range sub.Channel() {
			if !refresh() {
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			_ = sub.Close()
		})
	}
}

func (s *DynamoStore) notify(ctx context.Context, collection string) {
	if err := s.redis.Publish(ctx, changeChannel(collection), "changed").Err(); err != nil {
		s.bus.Publish(alerts.Event{
			Context: alerts.ContextFor(collection),
			Message: fmt.Sprintf("change notification failed: %v", err),
		})
	}
}

func changeChannel(collection string) string {
	return "docstore:" + collection
}

func buildFilterExpression(filters []Filter) (string, map[string]types.AttributeValue, map[string]string) {
	parts := make([]string, 0, len(filters))
	values := make(map[string]types.AttributeValue, len(filters))
	names := make(map[string]string, len(filters))
	for i, f := range filters {
		nameKey := fmt.Sprintf("#n%d", i)
		valueKey := fmt.Sprintf(":f%d", i)
		av, err := attributevalue.Marshal(f.Value)
		if err != nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s = %s", nameKey, valueKey))
		names[nameKey] = f.Field
		values[valueKey] = av
	}
	return strings.Join(parts, " AND "), values, names
}
