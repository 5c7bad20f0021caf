package storage

import (
	"encoding/json"
	"fmt"
)

// PutJSON stores v JSON-encoded under key.
func PutJSON(b Backend, bucket, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return b.Put(bucket, key, data)
}

// GetJSON decodes the value under key into v. It reports false, without
// touching v, when the key does not exist.
func GetJSON(b Backend, bucket, key string, v any) (bool, error) {
	data, err := b.Get(bucket, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return true, nil
}

// DecodeJSON unmarshals a value read through ForEach.
func DecodeJSON(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode JSON: %w", err)
	}
	return nil
}
