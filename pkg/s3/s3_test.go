package s3

import (
	"testing"

	"lv33global/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectURL_AWS(t *testing.T) {
	client, err := NewClient(&config.Config{
		AWSRegion:    "eu-west-1",
		S3BucketName: "assets",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://assets.s3.eu-west-1.amazonaws.com/uploads/1-logo.png", client.ObjectURL("uploads/1-logo.png"))
}

func TestObjectURL_MinIO(t *testing.T) {
	client, err := NewClient(&config.Config{
		AWSRegion:    "us-east-1",
		AWSEndpoint:  "http://minio:9000",
		S3UseSSL:     "false",
		S3BucketName: "assets",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://minio:9000/assets/uploads/1-logo.png", client.ObjectURL("uploads/1-logo.png"))
}

func TestObjectURL_MinIOWithSSL(t *testing.T) {
	client, err := NewClient(&config.Config{
		AWSRegion:    "us-east-1",
		AWSEndpoint:  "https://files.example.com",
		S3UseSSL:     "true",
		S3BucketName: "assets",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://files.example.com/assets/key", client.ObjectURL("key"))
}
