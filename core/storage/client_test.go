package storage_test

import (
	"context"
	"errors"
	"testing"

	"pseudo-manager/core/storage"
	"pseudo-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "pseudos",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("AlreadyExists", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "pseudos").Return(true, nil)

		err := storage.EnsureBucket(ctx, mockClient, "pseudos", "")
		assert.NoError(t, err)
		mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("CreatesMissingBucket", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "pseudos").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "pseudos", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil)

		err := storage.EnsureBucket(ctx, mockClient, "pseudos", "us-east-1")
		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("CheckFailure", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "pseudos").Return(false, errors.New("connection refused"))

		err := storage.EnsureBucket(ctx, mockClient, "pseudos", "")
		assert.Error(t, err)
	})
}
