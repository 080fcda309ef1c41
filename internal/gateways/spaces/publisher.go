package spaces

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/pumppro/rankengine/internal/domain/leaderboard"
)

// ObjectPutter is the part of the S3 client the publisher needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher writes leaderboard pages as JSON to an S3-compatible bucket.
type Publisher struct {
	client ObjectPutter
	bucket string
	prefix string
}

// NewPublisher connects to DigitalOcean Spaces in region.
func NewPublisher(ctx context.Context, key, secret, region, bucket, prefix string) (*Publisher, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(key, secret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load spaces config: %w", err)
	}

	return NewPublisherWithClient(s3.NewFromConfig(cfg), bucket, prefix), nil
}

func NewPublisherWithClient(client ObjectPutter, bucket, prefix string) *Publisher {
	return &Publisher{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Key returns the object key a page is stored under. Monthly pages are keyed
// by period, the others by dimension only.
func (p *Publisher) Key(page *leaderboard.Page) string {
	name := "latest.json"
	if page.Dimension == leaderboard.DimensionMonthly {
		name = fmt.Sprintf("%04d-%02d.json", page.Year, page.Month)
	}
	return path.Join(p.prefix, string(page.Dimension), name)
}

// Publish uploads page and returns its object key.
func (p *Publisher) Publish(ctx context.Context, page *leaderboard.Page) (string, error) {
	body, err := json.Marshal(page)
	if err != nil {
		return "", fmt.Errorf("failed to encode leaderboard: %w", err)
	}

	key := p.Key(page)
	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(p.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String("application/json"),
		CacheControl: aws.String("no-cache"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	slog.Info("Leaderboard published",
		slog.String("type", "rank"),
		slog.String("dimension", string(page.Dimension)),
		slog.String("bucket", p.bucket),
		slog.String("key", key),
		slog.Int("entries", len(page.Entries)))
	return key, nil
}
