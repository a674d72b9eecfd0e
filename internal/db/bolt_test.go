package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func TestOpenBolt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loanboard.db")

	bdb, err := OpenBolt(BoltConfig{Path: path, NoSync: true})
	require.NoError(t, err)
	defer bdb.Close()

	err = bdb.View(func(tx *bolt.Tx) error {
		for _, b := range [][]byte{BucketApplyNow, BucketCategories, BucketCategoryNames, BucketLoans, BucketCommodityPrices, BucketCommodityKeys} {
			assert.NotNil(t, tx.Bucket(b), string(b))
		}
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, CreateBuckets(bdb))
}

func TestOpenBoltRequiresPath(t *testing.T) {
	_, err := OpenBolt(BoltConfig{})
	require.Error(t, err)
}
