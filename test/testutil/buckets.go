package testutil

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type TestBucket struct {
	Client  *minio.Client
	Name    string
	Cleanup func() error
}

// SetupTestBucket (re)creates a bucket and opens it for anonymous reads, so
// the public URLs the storage layer hands out are actually fetchable.
func SetupTestBucket(endpoint, accessKey, secretKey, name string) (*TestBucket, error) {
	ctx := context.Background()

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create minio client: %w", err)
	}

	// if it already exists, wipe its contents
	exists, err := client.BucketExists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("could not check bucket %q: %w", name, err)
	}
	if exists {
		for obj := range client.ListObjects(ctx, name, minio.ListObjectsOptions{Recursive: true}) {
			if obj.Err != nil {
				continue
			}
			_ = client.RemoveObject(ctx, name, obj.Key, minio.RemoveObjectOptions{})
		}
	} else {
		if err := client.MakeBucket(ctx, name, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("could not create bucket %q: %w", name, err)
		}
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [{
			"Effect": "Allow",
			"Principal": {"AWS": ["*"]},
			"Action": ["s3:GetObject"],
			"Resource": ["arn:aws:s3:::%s/*"]
		}]
	}`, name)
	if err := client.SetBucketPolicy(ctx, name, policy); err != nil {
		return nil, fmt.Errorf("could not set read policy on %q: %w", name, err)
	}

	cleanup := func() error {
		for obj := range client.ListObjects(ctx, name, minio.ListObjectsOptions{Recursive: true}) {
			if obj.Err != nil {
				continue
			}
			_ = client.RemoveObject(ctx, name, obj.Key, minio.RemoveObjectOptions{})
		}
		if err := client.RemoveBucket(ctx, name); err != nil {
			return fmt.Errorf("could not remove bucket %q: %w", name, err)
		}
		return nil
	}

	return &TestBucket{Client: client, Name: name, Cleanup: cleanup}, nil
}
