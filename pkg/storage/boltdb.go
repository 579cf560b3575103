package storage

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	bolt "go.etcd.io/bbolt"

	"github.com/axiom-labs-org/core/pkg/types"
)

var (
	// Bucket names
	bucketBlocks   = []byte("blocks")
	bucketReceipts = []byte("receipts")
	bucketMeta     = []byte("meta")

	keyHead = []byte("head")
)

// BoltArchive implements Archive using BoltDB
type BoltArchive struct {
	db *bolt.DB
}

// NewBoltArchive creates a new BoltDB-backed archive
func NewBoltArchive(dataDir string) (*BoltArchive, error) {
	dbPath := filepath.Join(dataDir, "axiom.db")

	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(btx *bolt.Tx) error {
		buckets := [][]byte{
			bucketBlocks,
			bucketReceipts,
			bucketMeta,
		}

		for _, bucket := range buckets {
			if _, err := btx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})

	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltArchive{db: db}, nil
}

// Close closes the database
func (a *BoltArchive) Close() error {
	return a.db.Close()
}

// PutBlock stores a block record with its receipts and advances the head
func (a *BoltArchive) PutBlock(record *BlockRecord, receipts []ReceiptRecord) error {
	return a.db.Update(func(btx *bolt.Tx) error {
		blockData, err := json.Marshal(record)
		if err != nil {
			return err
		}
		if err := btx.Bucket(bucketBlocks).Put(record.Hash.Bytes(), blockData); err != nil {
			return err
		}

		receiptData, err := json.Marshal(receipts)
		if err != nil {
			return err
		}
		if err := btx.Bucket(bucketReceipts).Put(record.Hash.Bytes(), receiptData); err != nil {
			return err
		}

		return btx.Bucket(bucketMeta).Put(keyHead, record.Hash.Bytes())
	})
}

// GetBlock retrieves a block record by block hash
func (a *BoltArchive) GetBlock(hash types.Hash) (*BlockRecord, error) {
	var record BlockRecord
	err := a.db.View(func(btx *bolt.Tx) error {
		data := btx.Bucket(bucketBlocks).Get(hash.Bytes())
		if data == nil {
			return fmt.Errorf("block not found: %s", hash)
		}
		return json.Unmarshal(data, &record)
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetReceipts retrieves the receipts of a block by block hash
func (a *BoltArchive) GetReceipts(hash types.Hash) ([]ReceiptRecord, error) {
	var receipts []ReceiptRecord
	err := a.db.View(func(btx *bolt.Tx) error {
		data := btx.Bucket(bucketReceipts).Get(hash.Bytes())
		if data == nil {
			return fmt.Errorf("receipts not found for block: %s", hash)
		}
		return json.Unmarshal(data, &receipts)
	})
	if err != nil {
		return nil, err
	}
	return receipts, nil
}

// Head returns the hash of the most recently archived block
func (a *BoltArchive) Head() (types.Hash, bool, error) {
	var head types.Hash
	var found bool
	err := a.db.View(func(btx *bolt.Tx) error {
		data := btx.Bucket(bucketMeta).Get(keyHead)
		if data == nil {
			return nil
		}
		h, err := types.HashFromBytes(data)
		if err != nil {
			return err
		}
		head = h
		found = true
		return nil
	})
	return head, found, err
}
