package session

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mpcwallet/tkeyring/client/types"
)

const publicKeyFetchTimeout = 30 * time.Second

// KeypairGenerator is the capability used to fill the keypair cache.
type KeypairGenerator func(ctx context.Context) (*types.Keypair, error)

// CredentialCache holds the rendezvous server's public key and the
// local handshake keypair for the lifetime of the process. Fills are
// single-writer: concurrent first callers coalesce into one fetch or
// one generation, later callers get the cached value.
type CredentialCache struct {
	mu            chan struct{} // see lock(); held across the network fetch
	serverOptions *types.ServerOptions
	keypair       *types.Keypair
	generate      KeypairGenerator
	client        *http.Client
}

func NewCredentialCache(generate KeypairGenerator) *CredentialCache {
	return &CredentialCache{
		mu:       make(chan struct{}, 1),
		generate: generate,
		client:   &http.Client{Timeout: publicKeyFetchTimeout},
	}
}

// lock acquires the cache lock, honoring context cancellation so a
// caller is never stuck behind a slow fill it no longer wants.
func (c *CredentialCache) lock(ctx context.Context) error {
	select {
	case c.mu <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *CredentialCache) unlock() {
	<-c.mu
}

// GetServerOptions returns the cached server options when the URL
// matches the last fetch, otherwise fetches {url}/public-key and
// replaces the cache.
func (c *CredentialCache) GetServerOptions(ctx context.Context, serverURL string) (*types.ServerOptions, error) {
	if err := c.lock(ctx); err != nil {
		return nil, err
	}
	defer c.unlock()

	if c.serverOptions != nil && c.serverOptions.ServerURL == serverURL {
		return c.serverOptions, nil
	}

	normalized, err := NormalizeServerURL(serverURL)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize server url %q: %w", serverURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, normalized+"/public-key", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build public key request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch server public key: %v: %w", err, types.ErrServerUnreachable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d fetching public key: %w", resp.StatusCode, types.ErrServerUnreachable)
	}

	serverPublicKey, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read server public key: %v: %w", err, types.ErrServerUnreachable)
	}

	c.serverOptions = &types.ServerOptions{
		ServerURL:       serverURL,
		ServerPublicKey: string(serverPublicKey),
	}
	return c.serverOptions, nil
}

// GetKeypair returns the cached handshake keypair, generating it on
// first use. One keypair serves all sessions of the process.
func (c *CredentialCache) GetKeypair(ctx context.Context) (*types.Keypair, error) {
	if err := c.lock(ctx); err != nil {
		return nil, err
	}
	defer c.unlock()

	if c.keypair != nil {
		return c.keypair, nil
	}

	keypair, err := c.generate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate keypair: %v: %w", err, types.ErrEngineFailure)
	}

	c.keypair = keypair
	return c.keypair, nil
}

// NormalizeServerURL rewrites websocket schemes to their HTTP
// counterparts and strips trailing slashes. Pure, no side effects.
func NormalizeServerURL(serverURL string) (string, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return "", err
	}

	switch u.Scheme {
	case "ws":
		u.Scheme = "http"
	case "wss":
		u.Scheme = "https"
	}

	return strings.TrimRight(u.String(), "/"), nil
}
