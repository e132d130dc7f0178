package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Client wraps the S3 client used for listing photos.
type Client struct {
	s3Client  *s3.Client
	bucket    string
	publicURL string
}

var client *Client

// Init builds the S3 client from S3_* env vars. Leaving S3_BUCKET unset
// disables photo uploads without failing startup.
func Init() error {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		return nil
	}

	region := os.Getenv("S3_REGION")
	if region == "" {
		region = "us-east-1"
	}
	endpoint := os.Getenv("S3_ENDPOINT_URL")

	awsConfig, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			os.Getenv("S3_ACCESS_KEY_ID"),
			os.Getenv("S3_SECRET_ACCESS_KEY"),
			"",
		)),
	)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := strings.TrimRight(os.Getenv("S3_PUBLIC_URL"), "/")
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}

	client = &Client{s3Client: s3Client, bucket: bucket, publicURL: publicURL}
	return nil
}

func Enabled() bool {
	return client != nil
}

// Upload stores an object and returns its public URL.
func Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	if client == nil {
		return "", fmt.Errorf("storage not configured")
	}

	_, err := client.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(client.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return client.publicURL + "/" + key, nil
}
