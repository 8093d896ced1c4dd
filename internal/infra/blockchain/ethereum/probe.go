package ethereum

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gabapcia/timenode/internal/pkg/logger"
	"github.com/gabapcia/timenode/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/timenode/internal/txpool"
)

// SupportsLogFilters installs and removes a pending log filter for the
// claim and execute topics. A node side rejection means no support.
func (c *Client) SupportsLogFilters(ctx context.Context) (bool, error) {
	c.mu.RLock()
	raw := c.raw
	c.mu.RUnlock()

	filter := map[string]any{
		"fromBlock": "pending",
		"toBlock":   "pending",
		"topics":    [][]common.Hash{{txpool.ClaimedTopic, txpool.ExecutedTopic}},
	}

	result, err := raw.Fetch(ctx, "eth_newFilter", filter)
	if errors.Is(err, jsonrpc.ErrProviderReturnedError) {
		logger.Warn(ctx, "provider rejected pending log filter", "provider.url", c.URL(), "error", err)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var id string
	if err := json.Unmarshal(result, &id); err != nil {
		return false, err
	}

	if _, err := raw.Fetch(ctx, "eth_uninstallFilter", id); err != nil {
		logger.Warn(ctx, "failed to uninstall probe filter", "filter.id", id, "error", err)
	}

	return true, nil
}
