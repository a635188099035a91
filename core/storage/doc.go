// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the menu sync needs: listing the image bucket, reading single
// objects and minting long-lived presigned read URLs. The abstraction
// supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (see
// core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the image bucket.
//   - ListObjects: Enumerates objects (the resolver's candidate set).
//   - GetObject: Retrieves content as a stream.
//   - PresignedGetObject: Mints a credential-free read URL for one object.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "menu-images")
package storage
