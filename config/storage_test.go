package config

import (
	"context"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3ConfigDisabledWithoutBucket(t *testing.T) {
	s3cfg, err := NewS3Config(context.Background(), &Config{})
	assert.ErrorIs(t, err, ErrStorageDisabled)
	assert.Nil(t, s3cfg)
}

func TestPresignURLs(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIATESTKEY")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test-secret")
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")

	s3cfg, err := NewS3Config(context.Background(), &Config{S3Bucket: "fitlog-pictures", S3Region: "us-east-1"})
	require.NoError(t, err)

	raw, err := s3cfg.PresignUpload(context.Background(), "profile-pictures/u/p.png", "image/png", 15*time.Minute)
	require.NoError(t, err)
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Contains(t, u.Host, "fitlog-pictures")
	assert.Equal(t, "/profile-pictures/u/p.png", u.Path)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))

	raw, err = s3cfg.PresignDownload(context.Background(), "profile-pictures/u/p.png", time.Hour)
	require.NoError(t, err)
	u, err = url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "3600", u.Query().Get("X-Amz-Expires"))
}
