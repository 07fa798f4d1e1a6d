package tabular

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyTable = "tab:%s"

var TTLTable = 30 * time.Second

// Cache is an opt-in read-through layer in front of a Store, for
// deployments where hitting the sheets API on every request is too slow.
// Cached snapshots expire quickly and the appended-to tab is invalidated on
// write; without the cache every read is a fresh full scan.
type Cache struct {
	Store
	Redis *redis.Client
}

func NewRedis(addr string) *redis.Client {
	r := redis.NewClient(&redis.Options{Addr: addr})
	_ = r.WithTimeout(2 * time.Second)
	return r
}

func (c Cache) ReadTable(ctx context.Context, tab string) (Table, error) {
	key := fmt.Sprintf(keyTable, tab)
	if b, err := c.Redis.Get(ctx, key).Bytes(); err == nil {
		var t Table
		if json.Unmarshal(b, &t) == nil {
			return t, nil
		}
	}
	t, err := c.Store.ReadTable(ctx, tab)
	if err != nil {
		return Table{}, err
	}
	if b, err := json.Marshal(t); err == nil {
		_ = c.Redis.Set(ctx, key, b, TTLTable).Err()
	}
	return t, nil
}

func (c Cache) AppendRow(ctx context.Context, tab string, row []string) error {
	if err := c.Store.AppendRow(ctx, tab, row); err != nil {
		return err
	}
	_ = c.Redis.Del(ctx, fmt.Sprintf(keyTable, tab)).Err()
	return nil
}
