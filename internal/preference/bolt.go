package preference

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// BucketName 偏好数据所在的 bucket
const BucketName = "preferences"

// BoltStore 基于 bbolt 文件的偏好存储
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt 打开（必要时创建）bbolt 文件
// 参数:
//   - path: 数据文件路径，父目录不存在时自动创建
//
// 返回:
//   - *BoltStore: 存储实例，使用完毕后需要 Close
//   - error: 打开失败
func OpenBolt(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create preference dir: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open preference db: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, e := tx.CreateBucketIfNotExists([]byte(BucketName))
		return e
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create preference bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Get 实现 Store
func (s *BoltStore) Get(_ context.Context, key string) (string, bool, error) {
	var (
		value string
		found bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketName))
		if b == nil {
			return nil
		}
		// bbolt 返回的切片只在事务内有效，这里复制成字符串
		if v := b.Get([]byte(key)); v != nil {
			value, found = string(v), true
		}
		return nil
	})
	if errors.Is(err, bolt.ErrDatabaseNotOpen) {
		return "", false, ErrClosed
	}
	return value, found, err
}

// Set 实现 Store
func (s *BoltStore) Set(_ context.Context, key, value string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, e := tx.CreateBucketIfNotExists([]byte(BucketName))
		if e != nil {
			return e
		}
		return b.Put([]byte(key), []byte(value))
	})
	if errors.Is(err, bolt.ErrDatabaseNotOpen) {
		return ErrClosed
	}
	return err
}

// Delete 实现 Store
func (s *BoltStore) Delete(_ context.Context, key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketName))
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
	if errors.Is(err, bolt.ErrDatabaseNotOpen) {
		return ErrClosed
	}
	return err
}

// Close 关闭数据文件
func (s *BoltStore) Close() error {
	return s.db.Close()
}
