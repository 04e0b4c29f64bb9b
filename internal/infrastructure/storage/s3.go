package storage

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const presignTTL = 15 * time.Minute

// Config captures the S3 (or S3-compatible, e.g. MinIO) settings for
// resume and avatar uploads.
type Config struct {
	Region    string
	Bucket    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// Uploader issues presigned PUT/GET URLs so clients upload files directly to
// object storage; the API never proxies file bytes.
type Uploader struct {
	cfg     Config
	presign *s3.PresignClient
}

// NewUploader builds the S3 client once at startup.
func NewUploader(ctx context.Context, cfg Config) (*Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Uploader{cfg: cfg, presign: s3.NewPresignClient(client)}, nil
}

// PresignedUpload holds everything the client needs to upload one object.
type PresignedUpload struct {
	Key       string
	UploadURL string
	ExpiresIn time.Duration
}

// PresignPut returns a presigned PUT URL for a new object. Keys are
// namespaced by kind (resume/avatar) and date, with a random suffix so
// uploads never collide.
func (u *Uploader) PresignPut(ctx context.Context, kind, filename string) (*PresignedUpload, error) {
	key := objectKey(kind, filename)

	req, err := u.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(u.cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return nil, fmt.Errorf("presign put: %w", err)
	}

	return &PresignedUpload{
		Key:       key,
		UploadURL: req.URL,
		ExpiresIn: presignTTL,
	}, nil
}

// PresignTTL returns the lifetime applied to presigned URLs.
func (u *Uploader) PresignTTL() time.Duration {
	return presignTTL
}

// PresignGet returns a presigned GET URL for an already-uploaded object.
func (u *Uploader) PresignGet(ctx context.Context, key string) (string, error) {
	req, err := u.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(u.cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", fmt.Errorf("presign get: %w", err)
	}
	return req.URL, nil
}

func objectKey(kind, filename string) string {
	d := time.Now().UTC()
	return fmt.Sprintf("%s/%d/%02d/%02d/%s%s", kind, d.Year(), d.Month(), d.Day(), uuid.New(), path.Ext(filename))
}
