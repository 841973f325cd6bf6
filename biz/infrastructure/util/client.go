package util

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"campus-lms/biz/infrastructure/config"
	"campus-lms/biz/infrastructure/util/log"
)

var client *HttpClient

// HttpClient 是一个简单的 HTTP 客户端，用于调用外部AI服务
type HttpClient struct {
	Client *http.Client
}

// NewHttpClient 创建一个新的 HttpClient 实例
func NewHttpClient() *HttpClient {
	return &HttpClient{
		Client: &http.Client{},
	}
}

func GetHttpClient() *HttpClient {
	if client == nil {
		client = NewHttpClient()
	}
	return client
}

// SendRequest 发送 HTTP 请求
func (c *HttpClient) SendRequest(ctx context.Context, method, url string, headers map[string]string, body interface{}) (map[string]interface{}, error) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("请求体序列化失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("发送请求失败: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Error("关闭响应失败: %v", closeErr)
		}
	}()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应失败: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code: %d, response body: %s", resp.StatusCode, responseBody)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(responseBody, &result); err != nil {
		return nil, fmt.Errorf("响应体解析失败: %w", err)
	}
	return result, nil
}

// ChatCompletion 依次尝试配置的AI服务，全部失败时返回错误，由上层走兜底回复
func (c *HttpClient) ChatCompletion(ctx context.Context, messages []map[string]string) (map[string]interface{}, error) {
	cfg := config.GetConfig()
	timeout := time.Duration(cfg.Api.ChatTimeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	var lastErr error
	for _, url := range cfg.Api.ChatURLs {
		reqCtx, cancel := context.WithTimeout(ctx, timeout)
		resp, err := c.SendRequest(reqCtx, http.MethodPost, url, nil, map[string]any{
			"messages": messages,
		})
		cancel()
		if err != nil {
			log.CtxError(ctx, "AI服务调用失败 [url: %s]: %v", url, err)
			lastErr = err
			continue
		}
		return resp, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("没有可用的AI服务")
	}
	return nil, lastErr
}
