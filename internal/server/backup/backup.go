// Package backup exports account snapshots to S3-compatible object storage.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/exactauth/internal/cryptox"
	"github.com/dmitrijs2005/exactauth/internal/logging"
	sc "github.com/dmitrijs2005/exactauth/internal/server/config"
	"github.com/dmitrijs2005/exactauth/internal/server/models"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}

	now = time.Now
)

// Config addresses the bucket. URLValidity of zero skips the presigned
// download link. A non-empty Passphrase seals the snapshot with cryptox.
type Config struct {
	Region       string
	AccessKey    string
	SecretKey    string
	Bucket       string
	BaseEndpoint string
	URLValidity  time.Duration
	Passphrase   string
}

func ConfigFrom(c *sc.Config) Config {
	return Config{
		Region:       c.S3Region,
		AccessKey:    c.S3RootUser,
		SecretKey:    c.S3RootPassword,
		Bucket:       c.S3Bucket,
		BaseEndpoint: c.S3BaseEndpoint,
		URLValidity:  15 * time.Minute,
		Passphrase:   c.BackupPassphrase,
	}
}

// Record is one account in a snapshot. It carries the stored hash, never a
// plaintext secret.
type Record struct {
	ID           string    `json:"id"`
	Identifier   string    `json:"identifier"`
	PasswordHash string    `json:"password_hash"`
	IsStaff      bool      `json:"is_staff"`
	IsSuperuser  bool      `json:"is_superuser"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Snapshot struct {
	GeneratedAt time.Time `json:"generated_at"`
	Count       int       `json:"count"`
	Accounts    []Record  `json:"accounts"`
}

// Result describes an uploaded snapshot.
type Result struct {
	Key         string
	Count       int
	Encrypted   bool
	DownloadURL string
}

// Key is the object key for a snapshot taken at t.
func Key(t time.Time) string {
	return "accounts/" + t.UTC().Format("20060102T150405Z") + ".json"
}

// SealedSuffix is appended to the key of an encrypted snapshot.
const SealedSuffix = ".enc"

// Decode parses a downloaded snapshot, opening it with passphrase when it
// was sealed.
func Decode(body []byte, passphrase string) (*Snapshot, error) {
	if passphrase != "" {
		plain, err := cryptox.Open(body, []byte(passphrase))
		if err != nil {
			return nil, err
		}
		body = plain
	}

	var s Snapshot
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &s, nil
}

func NewSnapshot(at time.Time, accounts []*models.Account) Snapshot {
	s := Snapshot{GeneratedAt: at.UTC(), Count: len(accounts), Accounts: make([]Record, 0, len(accounts))}
	for _, a := range accounts {
		s.Accounts = append(s.Accounts, Record{
			ID:           a.ID,
			Identifier:   a.Identifier,
			PasswordHash: a.PasswordHash,
			IsStaff:      a.IsStaff,
			IsSuperuser:  a.IsSuperuser,
			IsActive:     a.IsActive,
			CreatedAt:    a.CreatedAt,
			UpdatedAt:    a.UpdatedAt,
		})
	}
	return s
}

type Exporter struct {
	cfg    Config
	logger logging.Logger
}

func NewExporter(cfg Config, l logging.Logger) *Exporter {
	return &Exporter{cfg: cfg, logger: l.With("module", "backup")}
}

func (e *Exporter) client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(e.cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			e.cfg.AccessKey,
			e.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if e.cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(e.cfg.BaseEndpoint)
		}
		o.UsePathStyle = true
	}), nil
}

// Export uploads a snapshot of accounts and, when configured, returns a
// presigned link to download it.
func (e *Exporter) Export(ctx context.Context, accounts []*models.Account) (*Result, error) {
	at := now()
	body, err := json.MarshalIndent(NewSnapshot(at, accounts), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	key, contentType := Key(at), "application/json"
	if e.cfg.Passphrase != "" {
		if body, err = cryptox.Seal(body, []byte(e.cfg.Passphrase)); err != nil {
			return nil, fmt.Errorf("seal snapshot: %w", err)
		}
		key += SealedSuffix
		contentType = "application/octet-stream"
	}

	client, err := e.client(ctx)
	if err != nil {
		return nil, err
	}

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("upload snapshot: %w", err)
	}

	res := &Result{Key: key, Count: len(accounts), Encrypted: e.cfg.Passphrase != ""}
	if e.cfg.URLValidity > 0 {
		req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
			Bucket: aws.String(e.cfg.Bucket),
			Key:    aws.String(key),
		}, s3.WithPresignExpires(e.cfg.URLValidity))
		if err != nil {
			return nil, fmt.Errorf("presign snapshot: %w", err)
		}
		res.DownloadURL = req.URL
	}

	e.logger.Info(ctx, "snapshot exported", "bucket", e.cfg.Bucket, "key", key, "count", res.Count, "encrypted", res.Encrypted)
	return res, nil
}
