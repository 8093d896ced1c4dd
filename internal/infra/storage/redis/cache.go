package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"

	"github.com/gabapcia/timenode/internal/scanner"
)

// cacheAddressesKey is the set of tracked addresses.
//
//	"<prefix>:cache:addresses"
func (c *client) cacheAddressesKey() string {
	return c.key("cache", "addresses")
}

// cacheEntryKey holds the JSON encoded entry of one address.
//
//	"<prefix>:cache:entry:<address>"
func (c *client) cacheEntryKey(address common.Address) string {
	return c.key("cache", "entry", address.Hex())
}

// Get returns the entry stored for address. Tracked addresses always carry an
// entry, so a missing key means the address is not tracked.
func (c *client) Get(ctx context.Context, address common.Address) (scanner.CacheEntry, bool, error) {
	raw, err := c.conn.Get(ctx, c.cacheEntryKey(address)).Bytes()
	if errors.Is(err, redis.Nil) {
		return scanner.CacheEntry{}, false, nil
	}
	if err != nil {
		return scanner.CacheEntry{}, false, err
	}

	var entry scanner.CacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return scanner.CacheEntry{}, false, err
	}

	return entry, true, nil
}

// Set stores entry and adds address to the tracked set in one transaction.
func (c *client) Set(ctx context.Context, address common.Address, entry scanner.CacheEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	_, err = c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, c.cacheEntryKey(address), raw, 0)
		pipe.SAdd(ctx, c.cacheAddressesKey(), address.Hex())
		return nil
	})
	return err
}

// Delete forgets address. Deleting an untracked address is not an error.
func (c *client) Delete(ctx context.Context, address common.Address) error {
	_, err := c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, c.cacheEntryKey(address))
		pipe.SRem(ctx, c.cacheAddressesKey(), address.Hex())
		return nil
	})
	return err
}

func (c *client) Stored(ctx context.Context) ([]common.Address, error) {
	members, err := c.conn.SMembers(ctx, c.cacheAddressesKey()).Result()
	if err != nil {
		return nil, err
	}

	addresses := make([]common.Address, 0, len(members))
	for _, member := range members {
		addresses = append(addresses, common.HexToAddress(member))
	}

	return addresses, nil
}

func (c *client) IsEmpty(ctx context.Context) (bool, error) {
	n, err := c.conn.SCard(ctx, c.cacheAddressesKey()).Result()
	if err != nil {
		return false, err
	}

	return n == 0, nil
}

// Compile-time assertion to ensure client implements the scanner.Cache interface.
var _ scanner.Cache = new(client)
