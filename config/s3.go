package config

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	log "github.com/sirupsen/logrus"
)

// NewS3Client builds an S3 client from the default AWS credential chain.
// It returns nil when no backup bucket is configured.
func NewS3Client(ctx context.Context, cfg *Config) *s3.Client {
	if cfg.CatalogBackupBucket == "" {
		log.Println("⚠️ CATALOG_BACKUP_BUCKET not set, catalog backups disabled")
		return nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		log.Printf("⚠️ failed to load AWS config, catalog backups disabled: %v", err)
		return nil
	}
	return s3.NewFromConfig(awsCfg)
}
