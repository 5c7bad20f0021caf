// Package storage is the key/value layer under the run history. A bucket is a
// named keyspace; keys are strings and values are opaque bytes.
package storage

import "errors"

var ErrBucketNotFound = errors.New("bucket not found")

// Backend is implemented by the bbolt and in-memory stores.
type Backend interface {
	// CreateBucket creates a bucket if it does not exist yet.
	CreateBucket(name string) error

	Put(bucket, key string, value []byte) error
	// Get returns nil, nil for a missing key.
	Get(bucket, key string) ([]byte, error)
	Delete(bucket, key string) error

	// ForEach visits the bucket's keys in ascending order.
	ForEach(bucket string, fn func(key string, value []byte) error) error

	Close() error
}

// Open returns a bbolt backend for path, or a memory backend when path is empty.
func Open(path string) (Backend, error) {
	if path == "" {
		return NewMemoryBackend(), nil
	}
	return NewBboltBackend(path)
}
