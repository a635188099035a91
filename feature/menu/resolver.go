package menu

import (
	"context"
	"fmt"
	"strings"
	"time"

	"menu-manager/core/storage"
	"menu-manager/core/utils"
)

// ImageResolver resolves a declared file name against the bucket's object
// names and returns a retrieval URL, or "" when nothing matches.
type ImageResolver interface {
	Resolve(ctx context.Context, fileName string, objectNames []string) (string, error)
}

// Resolver is the storage-backed ImageResolver. A match is turned into a
// presigned read URL with the configured expiry.
type Resolver struct {
	client storage.Client
	bucket string
	expiry time.Duration
}

// NewResolver creates a resolver minting URLs against the given bucket.
func NewResolver(client storage.Client, bucket string, expiry time.Duration) *Resolver {
	return &Resolver{client: client, bucket: bucket, expiry: expiry}
}

// Resolve finds the stored object matching fileName and mints a read URL for
// it. An empty fileName or a miss yields ("", nil); only the presign call
// itself can fail.
func (r *Resolver) Resolve(ctx context.Context, fileName string, objectNames []string) (string, error) {
	match, ok := FindMatch(fileName, objectNames)
	if !ok {
		return "", nil
	}
	u, err := r.client.PresignedGetObject(ctx, r.bucket, match, r.expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", match, err)
	}
	return u.String(), nil
}

// FindMatch locates the stored object a declared file name refers to.
//
// Both sides are compared in normalized form (see utils.NormalizeName). Two
// targets are tried, the name as declared and the name with a ".png" suffix,
// since the spreadsheet usually omits the extension. An exact pass runs
// first; only when it finds nothing does the fuzzy pass look for substring
// containment in either direction. First candidate in listing order wins.
//
// The fuzzy pass can false-positive on very short names that happen to occur
// inside unrelated object names. That is an accepted trade-off for a
// hand-maintained sheet, not something this function tries to outsmart.
func FindMatch(fileName string, objectNames []string) (string, bool) {
	if fileName == "" {
		return "", false
	}

	target := utils.NormalizeName(fileName)
	targetPNG := utils.NormalizeName(fileName + ".png")

	normalized := make([]string, len(objectNames))
	for i, name := range objectNames {
		normalized[i] = utils.NormalizeName(name)
	}

	for i, n := range normalized {
		if n == target || n == targetPNG {
			return objectNames[i], true
		}
	}

	for i, n := range normalized {
		if strings.Contains(n, target) || strings.Contains(target, n) {
			return objectNames[i], true
		}
	}

	return "", false
}

// NeedsResolution reports whether a row's declared image reference requires
// a storage lookup: it is empty, or it is a storage-scheme reference rather
// than a resolvable URL.
func NeedsResolution(imageURL string) bool {
	return imageURL == "" || strings.HasPrefix(imageURL, "gs://")
}
