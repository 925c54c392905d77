package stores

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/developer2iverto/Dresscollections-sub000/models"
)

const DefaultLocalCatalogKey = "catalog:local:products"

// RedisCatalogStore mirrors the whole catalog under a single key. Every
// save overwrites the previous value.
type RedisCatalogStore struct {
	client *redis.Client
	key    string
}

func NewRedisCatalogStore(client *redis.Client, key string) *RedisCatalogStore {
	if key == "" {
		key = DefaultLocalCatalogKey
	}
	return &RedisCatalogStore{client: client, key: key}
}

func (s *RedisCatalogStore) Load(ctx context.Context) ([]models.Product, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get local catalog")
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, errors.Wrap(err, "decode local catalog")
	}
	return products, nil
}

func (s *RedisCatalogStore) Save(ctx context.Context, products []models.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return errors.Wrap(err, "encode local catalog")
	}
	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return errors.Wrap(err, "redis set local catalog")
	}
	return nil
}
