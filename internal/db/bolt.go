package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	bolt "go.etcd.io/bbolt"
)

// Bolt buckets. Index buckets map a case-folded natural key to the owning record id.
var (
	BucketApplyNow        = []byte("apply_now_settings")
	BucketCategories      = []byte("categories")
	BucketCategoryNames   = []byte("categories_name_ci")
	BucketLoans           = []byte("loans")
	BucketCommodityPrices = []byte("commodity_prices")
	BucketCommodityKeys   = []byte("commodity_prices_key")
)

// BoltConfig configures the embedded bbolt document store.
type BoltConfig struct {
	Path    string
	NoSync  bool
	Timeout time.Duration
}

// OpenBolt opens the bbolt file at cfg.Path and creates every bucket the repositories use.
func OpenBolt(cfg BoltConfig) (*bolt.DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("boltdb: path is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = time.Second
	}

	bdb, err := bolt.Open(cfg.Path, 0o600, &bolt.Options{Timeout: cfg.Timeout, NoSync: cfg.NoSync})
	if err != nil {
		return nil, fmt.Errorf("boltdb: open: %w", err)
	}

	if err := CreateBuckets(bdb); err != nil {
		bdb.Close()
		return nil, err
	}

	log.Info().Str("path", cfg.Path).Msg("opened bolt store")
	return bdb, nil
}

// CreateBuckets makes sure all buckets exist. Safe to call repeatedly.
func CreateBuckets(bdb *bolt.DB) error {
	return bdb.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{
			BucketApplyNow,
			BucketCategories,
			BucketCategoryNames,
			BucketLoans,
			BucketCommodityPrices,
			BucketCommodityKeys,
		} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("boltdb: create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
}

// BoltGet decodes the JSON value stored under key. It returns nil, nil when the key is absent.
func BoltGet[T any](b *bolt.Bucket, key string) (*T, error) {
	data := b.Get([]byte(key))
	if data == nil {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("boltdb: decode %s: %w", key, err)
	}
	return &v, nil
}

// BoltPut stores v as JSON under key.
func BoltPut(b *bolt.Bucket, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("boltdb: encode %s: %w", key, err)
	}
	return b.Put([]byte(key), data)
}

// BoltAll decodes every value in the bucket, in key order.
func BoltAll[T any](b *bolt.Bucket) ([]T, error) {
	var out []T
	err := b.ForEach(func(k, v []byte) error {
		var item T
		if err := json.Unmarshal(v, &item); err != nil {
			return fmt.Errorf("boltdb: decode %s: %w", k, err)
		}
		out = append(out, item)
		return nil
	})
	return out, err
}
