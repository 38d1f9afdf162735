package usda

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

// Client implements IUSDA.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a new FoodData Central client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  hc,
	}, nil
}

// Search runs a free-text food search.
func (c *Client) Search(ctx context.Context, query string, pageSize int) ([]Food, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	payload, err := json.Marshal(searchBody{GeneralSearchInput: query, PageSize: pageSize})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := c.baseURL + "/fdc/v1/foods/search?api_key=" + url.QueryEscape(c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("failed to parse response: invalid JSON")
	}
	return parseFoods(raw), nil
}

// parseFoods accepts both the flat search shape (nutrientName/value) and
// the nested detail shape (nutrient.name/amount).
func parseFoods(raw []byte) []Food {
	var foods []Food
	gjson.GetBytes(raw, "foods").ForEach(func(_, f gjson.Result) bool {
		food := Food{Description: firstString(f, "description", "foodName", "dataType")}
		f.Get("foodNutrients").ForEach(func(_, n gjson.Result) bool {
			name := firstString(n, "nutrientName", "nutrient.name")
			if name == "" {
				return true
			}
			value := n.Get("value")
			if !value.Exists() {
				value = n.Get("amount")
			}
			food.Nutrients = append(food.Nutrients, Nutrient{
				Name:  name,
				Unit:  firstString(n, "unitName", "nutrient.unitName"),
				Value: value.Float(),
			})
			return true
		})
		foods = append(foods, food)
		return true
	})
	return foods
}

func firstString(r gjson.Result, paths ...string) string {
	for _, p := range paths {
		if s := r.Get(p).String(); s != "" {
			return s
		}
	}
	return ""
}
