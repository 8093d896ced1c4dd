package redis

import (
	"context"
	"encoding/json"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"

	"github.com/gabapcia/timenode/internal/pkg/types"
	"github.com/gabapcia/timenode/internal/router"
)

const (
	statsActionClaim   = "claim"
	statsActionExecute = "execute"
)

// statsRecord is one send made by an account.
type statsRecord struct {
	Action  string         `json:"action"`
	Target  common.Address `json:"target"`
	Success bool           `json:"success"`
	// Amount is the deposit of a claim or the bounty of an execution.
	Amount *big.Int  `json:"amount,omitempty"`
	At     time.Time `json:"at"`
}

// statsAccountsKey is the set of accounts with at least one record.
//
//	"<prefix>:stats:accounts"
func (c *client) statsAccountsKey() string {
	return c.key("stats", "accounts")
}

// statsRecordsKey is the list of records of account, oldest first.
//
//	"<prefix>:stats:records:<account>"
func (c *client) statsRecordsKey(account common.Address) string {
	return c.key("stats", "records", account.Hex())
}

func (c *client) record(ctx context.Context, account common.Address, rec statsRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	_, err = c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, c.statsRecordsKey(account), raw)
		pipe.SAdd(ctx, c.statsAccountsKey(), account.Hex())
		return nil
	})
	return err
}

func (c *client) RecordClaim(ctx context.Context, account, target common.Address, success bool, deposit *big.Int) error {
	return c.record(ctx, account, statsRecord{
		Action:  statsActionClaim,
		Target:  target,
		Success: success,
		Amount:  deposit,
		At:      time.Now().UTC(),
	})
}

func (c *client) RecordExecution(ctx context.Context, account, target common.Address, success bool, bounty *big.Int) error {
	return c.record(ctx, account, statsRecord{
		Action:  statsActionExecute,
		Target:  target,
		Success: success,
		Amount:  bounty,
		At:      time.Now().UTC(),
	})
}

func (c *client) records(ctx context.Context, account common.Address) ([]statsRecord, error) {
	values, err := c.conn.LRange(ctx, c.statsRecordsKey(account), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	records := make([]statsRecord, 0, len(values))
	for _, value := range values {
		var rec statsRecord
		if err := json.Unmarshal([]byte(value), &rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

// FailedClaims lists, once each and in first failure order, the targets
// account failed to claim.
func (c *client) FailedClaims(ctx context.Context, account common.Address) ([]common.Address, error) {
	records, err := c.records(ctx, account)
	if err != nil {
		return nil, err
	}

	var (
		seen   = types.NewSet[common.Address]()
		failed = make([]common.Address, 0)
	)
	for _, rec := range records {
		if rec.Action != statsActionClaim || rec.Success || seen.Has(rec.Target) {
			continue
		}
		seen.Add(rec.Target)
		failed = append(failed, rec.Target)
	}

	return failed, nil
}

// ClearAll drops the records of every account.
func (c *client) ClearAll(ctx context.Context) error {
	accounts, err := c.conn.SMembers(ctx, c.statsAccountsKey()).Result()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(accounts)+1)
	for _, account := range accounts {
		keys = append(keys, c.statsRecordsKey(common.HexToAddress(account)))
	}
	keys = append(keys, c.statsAccountsKey())

	return c.conn.Del(ctx, keys...).Err()
}

// Compile-time assertion to ensure client implements the router.StatsStore interface.
var _ router.StatsStore = new(client)
