package keyvalue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/natefinch/atomic"
)

// File is a Store backed by a single JSON file holding all keys. Every
// write replaces the file atomically, a half-written file can never be
// loaded back.
type File struct {
	mu     sync.Mutex
	path   string
	values map[string]json.RawMessage
}

// OpenFile opens a file-backed store, loading the existing content if the
// file is present.
func OpenFile(path string) (*File, error) {
	f := &File{
		path:   path,
		values: make(map[string]json.RawMessage),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}

	err = json.Unmarshal(data, &f.values)
	if err != nil {
		return nil, fmt.Errorf("storage file %s is not valid JSON: %w", path, err)
	}

	return f, nil
}

func (f *File) Get(key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	value, ok := f.values[key]
	if !ok {
		return nil, false, nil
	}

	return []byte(value), true, nil
}

func (f *File) Set(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !json.Valid(value) {
		return fmt.Errorf("value for key %q is not valid JSON", key)
	}

	f.values[key] = json.RawMessage(value)
	return f.flush()
}

func (f *File) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.values, key)
	return f.flush()
}

// flush writes the whole map. Callers must hold the mutex.
func (f *File) flush() error {
	data, err := json.MarshalIndent(f.values, "", "\t")
	if err != nil {
		return err
	}

	err = atomic.WriteFile(f.path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to write storage file: %w", err)
	}

	return nil
}

func (f *File) Ping() error {
	return nil
}

func (f *File) Close() error {
	return nil
}
