package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"

	"github.com/developer2iverto/Dresscollections-sub000/models"
)

// S3CatalogArchive writes point-in-time JSON backups of the catalog.
type S3CatalogArchive struct {
	client *s3.Client
	bucket string
	prefix string
}

func NewS3CatalogArchive(client *s3.Client, bucket, prefix string) *S3CatalogArchive {
	if prefix == "" {
		prefix = "catalog/snapshots"
	}
	return &S3CatalogArchive{client: client, bucket: bucket, prefix: strings.TrimSuffix(prefix, "/")}
}

// ArchiveKey is the object key a snapshot is stored under.
func ArchiveKey(prefix string, snapshot models.CatalogSnapshot) string {
	return fmt.Sprintf("%s/catalog-v%06d-%s.json",
		strings.TrimSuffix(prefix, "/"),
		snapshot.Version,
		snapshot.UpdatedAt.UTC().Format("20060102T150405Z"),
	)
}

// Archive uploads the snapshot and returns its object key.
func (a *S3CatalogArchive) Archive(ctx context.Context, snapshot models.CatalogSnapshot) (string, error) {
	body, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encode catalog backup")
	}

	key := ArchiveKey(a.prefix, snapshot)
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", errors.Wrap(err, "upload catalog backup")
	}
	return key, nil
}
