package stores

import (
	"context"
	"social-docstore/config"
	"social-docstore/core"
	"social-docstore/stores/aws"
	"social-docstore/stores/filesystem"
	"social-docstore/stores/memory"
	"social-docstore/stores/redis"
	"social-docstore/stores/sqlite"

	"github.com/sirupsen/logrus"
)

func GetStore(ctx context.Context, cfg *config.Config) (core.DocumentStore, error) {
	var (
		store core.DocumentStore
		err   error
	)

	storageField := logrus.Fields{
		"storageType": cfg.StorageType,
	}

	switch cfg.StorageType {
	case config.StorageFilesystem:
		storageField["basePath"] = cfg.LocalStoragePath
		store, err = filesystem.NewDocumentStore(cfg.LocalStoragePath)
	case config.StorageSQLite:
		storageField["dataSourceName"] = cfg.DataSourceName
		store, err = sqlite.NewDocumentStore(cfg.DataSourceName)
	case config.StorageS3:
		storageField["bucketName"] = cfg.S3BucketName
		store, err = aws.NewDocumentStore(ctx, cfg.S3BucketName, cfg.S3Prefix)
	case config.StorageRedis:
		storageField["redisURL"] = cfg.RedisURL
		store, err = redis.NewDocumentStore(cfg.RedisURL)
	default:
		store = memory.NewDocumentStore()
		storageField["storageType"] = "in-memory"
	}
	if err != nil {
		return nil, err
	}
	logrus.WithFields(storageField).Info("Use storage")
	return store, nil
}
