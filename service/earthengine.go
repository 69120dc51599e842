package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"soilwatch/config"

	"github.com/golang-jwt/jwt/v5"
)

// GEE 访问端点（测试中可替换）
const (
	geeTokenURL = "https://oauth2.googleapis.com/token"
	geeMapsURL  = "https://earthengine.googleapis.com/v1/projects/earthengine-legacy/maps"
	geeScope    = "https://www.googleapis.com/auth/earthengine.readonly"
)

// GEEClient Google Earth Engine 只读客户端
// 凭证不完整时处于禁用状态：不发起任何网络请求
type GEEClient struct {
	cfg      config.GEEConfig
	tokenURL string
	mapsURL  string
	client   *http.Client
}

// NewGEEClient 创建 GEE 客户端
func NewGEEClient(cfg config.GEEConfig) *GEEClient {
	return &GEEClient{
		cfg:      cfg,
		tokenURL: geeTokenURL,
		mapsURL:  geeMapsURL,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled 凭证是否完整
func (c *GEEClient) Enabled() bool {
	return c.cfg.Enabled()
}

// signAssertion 用服务账号私钥签发 RS256 断言
func (c *GEEClient) signAssertion(now time.Time) (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(c.cfg.PrivateKey))
	if err != nil {
		return "", fmt.Errorf("解析服务账号私钥失败: %w", err)
	}

	claims := jwt.MapClaims{
		"iss":   c.cfg.ServiceAccountEmail,
		"scope": geeScope,
		"aud":   c.tokenURL,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("签发 GEE 断言失败: %w", err)
	}
	return signed, nil
}

// exchangeToken 用断言换取访问令牌
func (c *GEEClient) exchangeToken(assertion string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "urn:ietf:params:oauth:grant-type:jwt-bearer")
	form.Set("assertion", assertion)

	resp, err := c.client.Post(c.tokenURL, "application/x-www-form-urlencoded",
		bytes.NewBufferString(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("GEE 令牌交换请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("GEE 令牌交换返回 %d: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("解析令牌响应失败: %w", err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("令牌响应缺少 access_token")
	}
	return payload.AccessToken, nil
}

// Probe 请求坐标处 Sentinel-1 影像镶嵌图层
// 当前仅用于探测 GEE 可达性，调用方拿到任何错误都会回退到合成数据
func (c *GEEClient) Probe(latitude, longitude float64) error {
	if !c.Enabled() {
		return fmt.Errorf("GEE 凭证未配置")
	}

	assertion, err := c.signAssertion(time.Now())
	if err != nil {
		return err
	}
	token, err := c.exchangeToken(assertion)
	if err != nil {
		return err
	}

	// Image.visualize(ImageCollection.mosaic(filterBounds(S1_GRD, Point(lng, lat))))
	body := map[string]any{
		"expression": map[string]any{
			"functionInvocationValue": map[string]any{
				"functionName": "Image.visualize",
				"arguments": map[string]any{
					"image": map[string]any{
						"functionInvocationValue": map[string]any{
							"functionName": "ImageCollection.mosaic",
							"arguments": map[string]any{
								"collection": map[string]any{
									"functionInvocationValue": map[string]any{
										"functionName": "ImageCollection.filterBounds",
										"arguments": map[string]any{
											"collection": map[string]any{
												"valueReference": "COPERNICUS/S1_GRD",
											},
											"geometry": map[string]any{
												"functionInvocationValue": map[string]any{
													"functionName": "Geometry.Point",
													"arguments": map[string]any{
														"coordinates": []float64{longitude, latitude},
													},
												},
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}

	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, c.mapsURL, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("GEE 影像请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("GEE 影像请求返回 %d", resp.StatusCode)
	}
	return nil
}
