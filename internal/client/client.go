// Package client 封装与工作台服务端的 HTTP API 交互
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"seller-workspace/internal/model"
	"seller-workspace/internal/service"
	"seller-workspace/internal/translation"
)

// DefaultTimeout 请求超时时间
const DefaultTimeout = 30 * time.Second

// APIError 服务端返回的业务错误
type APIError struct {
	Status  int    // HTTP 状态码
	Code    int    // 业务状态码
	Message string // 提示信息
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (http %d): %s", e.Code, e.Status, e.Message)
}

// IsCode 判断 err 是否为指定业务状态码的 APIError
func IsCode(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// Client API 客户端
// baseURL: 例如 http://localhost:8080
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient 创建 API 客户端
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// apiResponse 通用响应
type apiResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// --- 买家 ---

// ListBuyers 获取买家列表
func (c *Client) ListBuyers(ctx context.Context, search, level string) ([]service.BuyerView, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	if level != "" {
		q.Set("level", level)
	}
	var out []service.BuyerView
	err := c.do(ctx, http.MethodGet, "/api/v1/buyers", q, nil, &out)
	return out, err
}

// SelectBuyer 切换当前会话
func (c *Client) SelectBuyer(ctx context.Context, buyerID string) (*service.Snapshot, error) {
	var out service.Snapshot
	if err := c.do(ctx, http.MethodPost, "/api/v1/buyers/"+url.PathEscape(buyerID)+"/select", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- 消息 ---

// Messages 获取会话消息，buyerID 为空时返回当前会话
func (c *Client) Messages(ctx context.Context, buyerID string) ([]service.MessageView, error) {
	q := url.Values{}
	if buyerID != "" {
		q.Set("buyer_id", buyerID)
	}
	var out []service.MessageView
	err := c.do(ctx, http.MethodGet, "/api/v1/messages", q, nil, &out)
	return out, err
}

// SendMessage 向当前买家发送消息
func (c *Client) SendMessage(ctx context.Context, content string) (*service.Snapshot, error) {
	var out service.Snapshot
	if err := c.do(ctx, http.MethodPost, "/api/v1/messages", nil, map[string]string{"content": content}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Product 获取商品详情
func (c *Client) Product(ctx context.Context, productID string) (*model.ProductInfo, error) {
	var out model.ProductInfo
	if err := c.do(ctx, http.MethodGet, "/api/v1/products/"+url.PathEscape(productID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendProduct 向当前买家推荐商品，未知商品不做任何事
func (c *Client) SendProduct(ctx context.Context, productID string) (*service.Snapshot, error) {
	var out service.Snapshot
	if err := c.do(ctx, http.MethodPost, "/api/v1/products/"+url.PathEscape(productID)+"/send", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- 回复建议 ---

// Suggestions 获取当前的回复建议，regenerate 为 true 时先重新生成
func (c *Client) Suggestions(ctx context.Context, regenerate bool) ([]model.ReplySuggestion, error) {
	var out []model.ReplySuggestion
	var err error
	if regenerate {
		err = c.do(ctx, http.MethodPost, "/api/v1/suggestions/generate", nil, nil, &out)
	} else {
		err = c.do(ctx, http.MethodGet, "/api/v1/suggestions", nil, nil, &out)
	}
	return out, err
}

// SendSuggestion 发送一条回复建议
func (c *Client) SendSuggestion(ctx context.Context, suggestionID string) (*service.Snapshot, error) {
	var out service.Snapshot
	if err := c.do(ctx, http.MethodPost, "/api/v1/suggestions/"+url.PathEscape(suggestionID)+"/send", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- 翻译 ---

// Translate 翻译文本
func (c *Client) Translate(ctx context.Context, req translation.Request) (*translation.Response, error) {
	var out translation.Response
	if err := c.do(ctx, http.MethodPost, "/api/v1/translate", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- 设置 ---

// AgentSettings 获取客服 agent 设置
func (c *Client) AgentSettings(ctx context.Context) (*model.AgentSettings, error) {
	var out model.AgentSettings
	if err := c.do(ctx, http.MethodGet, "/api/v1/settings/agent", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetAgentSettings 恢复默认的客服 agent 设置
func (c *Client) ResetAgentSettings(ctx context.Context) (*model.AgentSettings, error) {
	var out model.AgentSettings
	if err := c.do(ctx, http.MethodDelete, "/api/v1/settings/agent", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- 通用请求封装 ---

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return fmt.Errorf("decode response (http %d): %w", resp.StatusCode, err)
	}
	if apiResp.Code != 0 {
		return &APIError{Status: resp.StatusCode, Code: apiResp.Code, Message: apiResp.Message}
	}

	if out != nil && len(apiResp.Data) > 0 {
		if err := json.Unmarshal(apiResp.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}
