package backup

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/exactauth/internal/logging"
	sc "github.com/dmitrijs2005/exactauth/internal/server/config"
	"github.com/dmitrijs2005/exactauth/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubSeams(t *testing.T) {
	t.Helper()
	origLoad, origNew, origPut, origPre, origPresign, origNow :=
		loadDefaultAWSConfig, newS3ClientFromConfig, putObject, newS3PresignClient, presignGetObject, now
	t.Cleanup(func() {
		loadDefaultAWSConfig, newS3ClientFromConfig, putObject, newS3PresignClient, presignGetObject, now =
			origLoad, origNew, origPut, origPre, origPresign, origNow
	})

	now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.FixedZone("X", 3600)) }
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		return aws.Config{Region: lo.Region}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var o s3.Options
		for _, fn := range optFns {
			fn(&o)
		}
		assert.True(t, o.UsePathStyle)
		assert.Equal(t, "http://127.0.0.1:9000", aws.ToString(o.BaseEndpoint))
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }
}

func testConfig() Config {
	return ConfigFrom(&sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3Bucket:       "exactauth-backups",
		S3BaseEndpoint: "http://127.0.0.1:9000",
	})
}

func TestKey(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.FixedZone("X", 3600))
	assert.Equal(t, "accounts/20260304T040607Z.json", Key(at))
}

func TestExport(t *testing.T) {
	stubSeams(t)

	var uploaded Snapshot
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		assert.Equal(t, "exactauth-backups", aws.ToString(in.Bucket))
		assert.Equal(t, "accounts/20260304T040607Z.json", aws.ToString(in.Key))
		body, err := io.ReadAll(in.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &uploaded))
		return &s3.PutObjectOutput{}, nil
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "http://127.0.0.1:9000/exactauth-backups/" + aws.ToString(in.Key)}, nil
	}

	accounts := []*models.Account{
		{ID: "1", Identifier: "mena", PasswordHash: "$argon2id$a", IsActive: true},
		{ID: "2", Identifier: "Mena", PasswordHash: "!", IsStaff: true},
	}
	res, err := NewExporter(testConfig(), logging.Nop()).Export(context.Background(), accounts)
	require.NoError(t, err)

	assert.Equal(t, "accounts/20260304T040607Z.json", res.Key)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, "http://127.0.0.1:9000/exactauth-backups/accounts/20260304T040607Z.json", res.DownloadURL)

	require.Len(t, uploaded.Accounts, 2)
	assert.Equal(t, "Mena", uploaded.Accounts[1].Identifier)
	assert.Equal(t, "!", uploaded.Accounts[1].PasswordHash)
}

func TestExport_NoPresign(t *testing.T) {
	stubSeams(t)
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return &s3.PutObjectOutput{}, nil
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		t.Fatal("presign should not be called")
		return nil, nil
	}

	cfg := testConfig()
	cfg.URLValidity = 0
	res, err := NewExporter(cfg, logging.Nop()).Export(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, res.DownloadURL)
	assert.Equal(t, 0, res.Count)
}

func TestExport_Errors(t *testing.T) {
	stubSeams(t)
	ctx := context.Background()

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no config")
	}
	_, err := NewExporter(testConfig(), logging.Nop()).Export(ctx, nil)
	assert.ErrorContains(t, err, "load aws config")

	stubSeams(t)
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return nil, errors.New("bucket missing")
	}
	_, err = NewExporter(testConfig(), logging.Nop()).Export(ctx, nil)
	assert.ErrorContains(t, err, "upload snapshot")

	stubSeams(t)
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return &s3.PutObjectOutput{}, nil
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("sign failed")
	}
	_, err = NewExporter(testConfig(), logging.Nop()).Export(ctx, nil)
	assert.ErrorContains(t, err, "presign snapshot")
}

func TestExport_Sealed(t *testing.T) {
	stubSeams(t)

	var body []byte
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		assert.Equal(t, "accounts/20260304T040607Z.json.enc", aws.ToString(in.Key))
		assert.Equal(t, "application/octet-stream", aws.ToString(in.ContentType))
		var err error
		body, err = io.ReadAll(in.Body)
		require.NoError(t, err)
		return &s3.PutObjectOutput{}, nil
	}

	cfg := testConfig()
	cfg.URLValidity = 0
	cfg.Passphrase = "correct horse"
	accounts := []*models.Account{{ID: "1", Identifier: "Mena", PasswordHash: "$argon2id$a"}}

	res, err := NewExporter(cfg, logging.Nop()).Export(context.Background(), accounts)
	require.NoError(t, err)
	assert.True(t, res.Encrypted)
	assert.NotContains(t, string(body), "Mena")

	_, err = Decode(body, "wrong")
	assert.Error(t, err)

	snap, err := Decode(body, "correct horse")
	require.NoError(t, err)
	require.Len(t, snap.Accounts, 1)
	assert.Equal(t, "Mena", snap.Accounts[0].Identifier)
}

func TestDecode_Plain(t *testing.T) {
	snap, err := Decode([]byte(`{"count":1,"accounts":[{"identifier":"mena"}]}`), "")
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Count)

	_, err = Decode([]byte("{"), "")
	assert.ErrorContains(t, err, "decode snapshot")
}

func TestConfigFrom_Passphrase(t *testing.T) {
	cfg := ConfigFrom(&sc.Config{BackupPassphrase: "pp"})
	assert.Equal(t, "pp", cfg.Passphrase)
	assert.Equal(t, 15*time.Minute, cfg.URLValidity)
}
