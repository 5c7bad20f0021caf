package storage

import (
	"bytes"
	"errors"
	"slices"
	"testing"
)

// backendTestSuite runs the same checks against any Backend implementation.
func backendTestSuite(t *testing.T, newBackend func() (Backend, func(), error)) {
	setup := func(t *testing.T) Backend {
		t.Helper()
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		t.Cleanup(cleanup)
		if err := backend.CreateBucket("runs"); err != nil {
			t.Fatalf("CreateBucket failed: %v", err)
		}
		return backend
	}

	t.Run("CreateBucketIdempotent", func(t *testing.T) {
		backend := setup(t)
		backend.Put("runs", "a", []byte("1"))

		if err := backend.CreateBucket("runs"); err != nil {
			t.Fatalf("CreateBucket should be idempotent: %v", err)
		}
		got, _ := backend.Get("runs", "a")
		if string(got) != "1" {
			t.Errorf("recreating a bucket lost its contents, got %q", got)
		}
	})

	t.Run("PutAndGet", func(t *testing.T) {
		backend := setup(t)

		value := []byte("value1")
		if err := backend.Put("runs", "key1", value); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		value[0] = 'X'

		got, err := backend.Get("runs", "key1")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, []byte("value1")) {
			t.Errorf("Get returned %s, want value1", got)
		}

		got, err = backend.Get("runs", "missing")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != nil {
			t.Errorf("Get should return nil for a missing key, got %s", got)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		backend := setup(t)
		backend.Put("runs", "key1", []byte("value1"))

		if err := backend.Delete("runs", "key1"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if got, _ := backend.Get("runs", "key1"); got != nil {
			t.Error("key should not exist after deletion")
		}
	})

	t.Run("ForEachOrdered", func(t *testing.T) {
		backend := setup(t)
		for _, k := range []string{"c", "a", "b"} {
			backend.Put("runs", k, []byte("v"+k))
		}

		var keys []string
		err := backend.ForEach("runs", func(k string, v []byte) error {
			if string(v) != "v"+k {
				t.Errorf("key %s has value %s", k, v)
			}
			keys = append(keys, k)
			return nil
		})
		if err != nil {
			t.Fatalf("ForEach failed: %v", err)
		}
		if !slices.Equal(keys, []string{"a", "b", "c"}) {
			t.Errorf("ForEach visited %v", keys)
		}
	})

	t.Run("MissingBucket", func(t *testing.T) {
		backend := setup(t)

		if err := backend.Put("nope", "k", nil); !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("Put: expected ErrBucketNotFound, got %v", err)
		}
		if _, err := backend.Get("nope", "k"); !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("Get: expected ErrBucketNotFound, got %v", err)
		}
		err := backend.ForEach("nope", func(string, []byte) error { return nil })
		if !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("ForEach: expected ErrBucketNotFound, got %v", err)
		}
	})

	t.Run("JSON", func(t *testing.T) {
		backend := setup(t)

		type record struct {
			Name  string `json:"name"`
			Value int    `json:"value"`
		}
		original := record{Name: "test", Value: 42}
		if err := PutJSON(backend, "runs", "key1", original); err != nil {
			t.Fatalf("PutJSON failed: %v", err)
		}

		var got record
		ok, err := GetJSON(backend, "runs", "key1", &got)
		if err != nil || !ok {
			t.Fatalf("GetJSON returned ok=%v err=%v", ok, err)
		}
		if got != original {
			t.Errorf("got %+v, want %+v", got, original)
		}

		ok, err = GetJSON(backend, "runs", "missing", &got)
		if err != nil || ok {
			t.Errorf("GetJSON on a missing key returned ok=%v err=%v", ok, err)
		}
	})
}
