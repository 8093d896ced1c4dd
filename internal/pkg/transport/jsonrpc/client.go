// Package jsonrpc is a minimal JSON-RPC 2.0 client used for raw node calls
// that have no typed wrapper in ethclient, such as filter installation probes.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/google/uuid"
)

// ErrProviderReturnedError indicates that the node answered with a JSON-RPC error object.
var ErrProviderReturnedError = errors.New("provider error")

type response struct {
	JsonRPC string `json:"jsonrpc"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Result json.RawMessage `json:"result"`
}

// Err converts the response error object, if any, into a Go error.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// Client sends a single JSON-RPC call and returns its raw result.
type Client interface {
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

// httpClient speaks JSON-RPC over plain HTTP POST requests.
type httpClient struct {
	providerEndpoint string
	httpClient       *http.Client
}

var _ Client = (*httpClient)(nil)

// Fetch posts one request with a random UUID id.
func (c *httpClient) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	return data.Result, data.Err()
}

// NewClient returns a Client posting to providerEndpoint with http.DefaultClient.
func NewClient(providerEndpoint string) *httpClient {
	return NewClientWithHTTP(http.DefaultClient, providerEndpoint)
}

// NewClientWithHTTP returns a Client posting to providerEndpoint through client.
func NewClientWithHTTP(client *http.Client, providerEndpoint string) *httpClient {
	return &httpClient{
		providerEndpoint: providerEndpoint,
		httpClient:       client,
	}
}

// rpcClient issues calls over an already dialed go-ethereum RPC connection,
// which may be a websocket or IPC transport.
type rpcClient struct {
	conn *rpc.Client
}

var _ Client = (*rpcClient)(nil)

// Fetch performs the call over the shared connection. Node side errors are
// wrapped with ErrProviderReturnedError.
func (c *rpcClient) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	var result json.RawMessage
	if err := c.conn.CallContext(ctx, &result, method, params...); err != nil {
		var rpcErr rpc.Error
		if errors.As(err, &rpcErr) {
			return nil, fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, rpcErr.ErrorCode(), rpcErr.Error())
		}
		return nil, err
	}

	return result, nil
}

// NewRPCClient adapts conn to Client.
func NewRPCClient(conn *rpc.Client) *rpcClient {
	return &rpcClient{conn: conn}
}
