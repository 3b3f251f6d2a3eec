package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/calegray/drivetoc/internal/store"
)

const (
	deviceEndpoint = "https://oauth2.googleapis.com/device/code"
	tokenEndpoint  = "https://oauth2.googleapis.com/token"

	// Read-only Drive access for the traversal, Docs access for the output.
	scopes = "https://www.googleapis.com/auth/drive.readonly https://www.googleapis.com/auth/documents"
)

type DeviceCodeClient struct {
	ClientID     string
	ClientSecret string
	Store        *store.TokenStore
	httpClient   *http.Client

	mu     sync.RWMutex
	cached *store.Tokens
}

func NewDeviceCodeClient(clientID, clientSecret string, st *store.TokenStore) *DeviceCodeClient {
	c := &DeviceCodeClient{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Store:        st,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
	if t, err := st.Load(context.Background()); err == nil {
		c.setCached(t)
	}
	return c
}

func (c *DeviceCodeClient) setCached(t *store.Tokens) { c.mu.Lock(); c.cached = t; c.mu.Unlock() }
func (c *DeviceCodeClient) getCached() *store.Tokens {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cached
}

type authRoundTripper struct {
	base http.RoundTripper
	c    *DeviceCodeClient
}

func (rt *authRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	tok, err := rt.c.getValidToken(ctx)
	if err != nil {
		return nil, err
	}
	req2 := req.Clone(ctx)
	req2.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	return rt.base.RoundTrip(req2)
}

// AuthorizedClient returns an http.Client that injects a valid Bearer token
// into every request, refreshing behind the scenes when needed.
func (c *DeviceCodeClient) AuthorizedClient(ctx context.Context) *http.Client {
	base := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        64,
		MaxIdleConnsPerHost: 16,
		IdleConnTimeout:     90 * time.Second,
	}
	rt := &authRoundTripper{base: base, c: c}
	return &http.Client{Transport: rt, Timeout: 60 * time.Second}
}

func (c *DeviceCodeClient) EnsureLogin(ctx context.Context) error {
	if _, err := c.getValidToken(ctx); err == nil {
		return nil
	}
	log.Println("Starting device code flow...")
	return c.deviceCodeFlow(ctx)
}

func (c *DeviceCodeClient) getValidToken(ctx context.Context) (*store.Tokens, error) {
	if t := c.getCached(); t != nil && time.Until(t.ExpiresAt) > 2*time.Minute {
		return t, nil
	}
	if t, err := c.Store.Load(ctx); err == nil {
		if time.Until(t.ExpiresAt) > 2*time.Minute {
			c.setCached(t)
			return t, nil
		}
		if nt, err := c.refresh(ctx, t.RefreshToken); err == nil {
			c.setCached(nt)
			return nt, nil
		}
	}
	return nil, errors.New("no valid token")
}

func (c *DeviceCodeClient) deviceCodeFlow(ctx context.Context) error {
	vals := url.Values{}
	vals.Set("client_id", c.ClientID)
	vals.Set("scope", scopes)

	resp, err := c.httpClient.PostForm(deviceEndpoint, vals)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("device code http %d: %s", resp.StatusCode, string(b))
	}

	var d struct {
		DeviceCode      string `json:"device_code"`
		UserCode        string `json:"user_code"`
		VerificationURL string `json:"verification_url"`
		ExpiresIn       int    `json:"expires_in"`
		Interval        int    `json:"interval"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
		return err
	}

	log.Printf("Go to: %s and enter code: %s", d.VerificationURL, d.UserCode)

	interval := d.Interval
	if interval <= 0 {
		interval = 5
	}

	deadline := time.Now().Add(time.Duration(d.ExpiresIn) * time.Second)
	for time.Now().Before(deadline) {
		time.Sleep(time.Duration(interval) * time.Second)
		nt, done, err := c.pollToken(ctx, d.DeviceCode)
		if err != nil {
			return err
		}
		if done {
			if err := c.Store.Save(ctx, nt); err != nil {
				return err
			}
			c.setCached(nt)
			return nil
		}
	}
	return errors.New("device code expired before authorization")
}

func (c *DeviceCodeClient) pollToken(ctx context.Context, deviceCode string) (*store.Tokens, bool, error) {
	vals := url.Values{}
	vals.Set("grant_type", "urn:ietf:params:oauth:grant-type:device_code")
	vals.Set("client_id", c.ClientID)
	vals.Set("client_secret", c.ClientSecret)
	vals.Set("device_code", deviceCode)

	req, _ := http.NewRequestWithContext(ctx, "POST", tokenEndpoint, bytes.NewBufferString(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == 200 {
		var t struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
			ExpiresIn    int    `json:"expires_in"`
			TokenType    string `json:"token_type"`
		}
		if err := json.Unmarshal(b, &t); err != nil {
			return nil, false, err
		}
		if t.TokenType != "Bearer" {
			return nil, false, fmt.Errorf("unexpected token type %s", t.TokenType)
		}
		return &store.Tokens{
			AccessToken:  t.AccessToken,
			RefreshToken: t.RefreshToken,
			ExpiresAt:    time.Now().Add(time.Duration(t.ExpiresIn) * time.Second),
		}, true, nil
	}

	var e struct {
		Error     string `json:"error"`
		ErrorDesc string `json:"error_description"`
	}
	_ = json.Unmarshal(b, &e)
	if e.Error == "authorization_pending" || e.Error == "slow_down" {
		return nil, false, nil
	}
	return nil, false, fmt.Errorf("token poll http %d: %s", resp.StatusCode, string(b))
}

func (c *DeviceCodeClient) refresh(ctx context.Context, refreshToken string) (*store.Tokens, error) {
	vals := url.Values{}
	vals.Set("grant_type", "refresh_token")
	vals.Set("client_id", c.ClientID)
	vals.Set("client_secret", c.ClientSecret)
	vals.Set("refresh_token", refreshToken)

	req, _ := http.NewRequestWithContext(ctx, "POST", tokenEndpoint, bytes.NewBufferString(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("refresh http %d: %s", resp.StatusCode, string(b))
	}

	var t struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int    `json:"expires_in"`
	}
	if err := json.Unmarshal(b, &t); err != nil {
		return nil, err
	}
	nt := &store.Tokens{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(t.ExpiresIn) * time.Second),
	}
	// Google omits the refresh token on refresh responses; keep the old one.
	if nt.RefreshToken == "" {
		nt.RefreshToken = refreshToken
	}
	if err := c.Store.Save(ctx, nt); err != nil {
		return nil, err
	}
	c.setCached(nt)
	return nt, nil
}
