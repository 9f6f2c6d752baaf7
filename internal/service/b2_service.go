package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/celebrateug/media-api/configs"
)

// B2Service talks to the Backblaze B2 bucket through its S3-compatible
// endpoint.
type B2Service interface {
	Upload(ctx context.Context, key string, file []byte, contentType string) error
	SignedReadURL(ctx context.Context, key string, expires time.Duration) (string, error)
	PublicURL(key string) string
}

type b2Service struct {
	config  cfg.Config
	client  *s3.Client
	presign *s3.PresignClient
}

func NewB2Service(c cfg.Config) B2Service {
	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(c.B2.KeyID, c.B2.ApplicationKey, "")),
		config.WithRegion(c.B2.Region),
	)
	if err != nil {
		slog.Info(err.Error())
		log.Fatal(err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(c.B2.S3Endpoint)
	})

	return &b2Service{
		config:  c,
		client:  client,
		presign: s3.NewPresignClient(client),
	}
}

func (s *b2Service) Upload(ctx context.Context, key string, file []byte, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.config.B2.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file),
		ContentType: aws.String(contentType),
	}

	_, err := s.client.PutObject(ctx, input)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return nil
}

func (s *b2Service) SignedReadURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(s.config.B2.BucketName),
		Key:    aws.String(key),
	}

	req, err := s.presign.PresignGetObject(ctx, input, s3.WithPresignExpires(expires))
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	return req.URL, nil
}

func (s *b2Service) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", s.config.B2.PublicURL, key)
}
