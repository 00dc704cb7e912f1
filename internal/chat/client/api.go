// Package client implements the conversation view's sync behavior: a
// fixed-interval polling loop, a scroll-following viewport, debounced
// typing signals and an explicitly-owned state container. It talks to the
// same endpoints the browser pages do.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"chatline/internal/dbmysql"
)

// API is the server surface the controller polls and posts against.
type API interface {
	Conversation(ctx context.Context, otherID uint) ([]*dbmysql.Message, error)
	Send(ctx context.Context, receiverID uint, content string) (*dbmysql.Message, error)
	Delete(ctx context.Context, messageID uint, forBoth bool) error
	Typing(ctx context.Context, isTyping bool) error
}

// requestTimeout bounds every fetch. The polling loop self-heals, so a
// conservative few-second cap is enough; there is no retry or backoff.
const requestTimeout = 5 * time.Second

type HTTPClient struct {
	base  string
	token string
	http  *http.Client
}

func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		base:  strings.TrimRight(baseURL, "/"),
		token: token,
		http:  &http.Client{Timeout: requestTimeout},
	}
}

func (c *HTTPClient) Conversation(ctx context.Context, otherID uint) ([]*dbmysql.Message, error) {
	var out struct {
		Messages []*dbmysql.Message `json:"messages"`
	}
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/messages/conversation/%d", otherID), nil, &out)
	if err != nil {
		return nil, err
	}
	return out.Messages, nil
}

func (c *HTTPClient) Send(ctx context.Context, receiverID uint, content string) (*dbmysql.Message, error) {
	body := map[string]interface{}{
		"receiver_id": receiverID,
		"content":     content,
	}
	var out struct {
		Message *dbmysql.Message `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/messages", body, &out); err != nil {
		return nil, err
	}
	return out.Message, nil
}

func (c *HTTPClient) Delete(ctx context.Context, messageID uint, forBoth bool) error {
	body := map[string]interface{}{"for_both": forBoth}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/messages/%d", messageID), body, nil)
}

func (c *HTTPClient) Typing(ctx context.Context, isTyping bool) error {
	body := map[string]interface{}{"is_typing": isTyping}
	return c.do(ctx, http.MethodPost, "/user/typing", body, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
