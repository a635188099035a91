package menu

import (
	"context"
	"fmt"

	"menu-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// ListObjectNames enumerates every object in the image bucket, unfiltered,
// in listing order. The resolver treats the result purely as text; object
// content is never read here.
func ListObjectNames(ctx context.Context, client storage.Client, bucket string) ([]string, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	names := []string{}
	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		names = append(names, obj.Key)
	}
	return names, nil
}
