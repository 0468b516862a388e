package suppliers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

// Persister is the persistence policy behind Store. Save always receives the
// full list and replaces whatever was stored before.
type Persister interface {
	Load(ctx context.Context) ([]Supplier, error)
	Save(ctx context.Context, list []Supplier) error
}

// FilePersister keeps the list as a pretty-printed JSON array on disk.
type FilePersister struct {
	Path string
}

// NewFilePersister constructs a FilePersister writing to path.
func NewFilePersister(path string) *FilePersister {
	return &FilePersister{Path: path}
}

// Load reads the JSON file. A missing file is an empty list.
func (p *FilePersister) Load(ctx context.Context) ([]Supplier, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("suppliers: read %s: %w", p.Path, err)
	}
	return decodeList(data)
}

// Save rewrites the whole file.
func (p *FilePersister) Save(ctx context.Context, list []Supplier) error {
	data, err := encodeList(list)
	if err != nil {
		return err
	}
	if err := os.WriteFile(p.Path, data, 0o644); err != nil {
		return fmt.Errorf("suppliers: write %s: %w", p.Path, err)
	}
	return nil
}

// RedisPersister stores the same JSON document under a single Redis key.
type RedisPersister struct {
	client *redis.Client
	key    string
}

// NewRedisPersister constructs a RedisPersister.
func NewRedisPersister(client *redis.Client, key string) *RedisPersister {
	return &RedisPersister{client: client, key: key}
}

// Load fetches the document. A missing key is an empty list.
func (p *RedisPersister) Load(ctx context.Context) ([]Supplier, error) {
	data, err := p.client.Get(ctx, p.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("suppliers: redis get %s: %w", p.key, err)
	}
	return decodeList(data)
}

// Save overwrites the document without expiry.
func (p *RedisPersister) Save(ctx context.Context, list []Supplier) error {
	data, err := encodeList(list)
	if err != nil {
		return err
	}
	if err := p.client.Set(ctx, p.key, data, 0).Err(); err != nil {
		return fmt.Errorf("suppliers: redis set %s: %w", p.key, err)
	}
	return nil
}

func encodeList(list []Supplier) ([]byte, error) {
	if list == nil {
		list = []Supplier{}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("suppliers: encode: %w", err)
	}
	return data, nil
}

func decodeList(data []byte) ([]Supplier, error) {
	var list []Supplier
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("suppliers: decode: %w", err)
	}
	return list, nil
}

var (
	_ Persister = (*FilePersister)(nil)
	_ Persister = (*RedisPersister)(nil)
)
