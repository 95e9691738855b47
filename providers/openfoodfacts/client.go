package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://world.openfoodfacts.org"

// Product is the slice of an OpenFoodFacts record this app consumes.
type Product struct {
	Name         string
	Brand        string
	Serving      string
	CaloriesKcal float64
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

type offResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductName string         `json:"product_name"`
		Brands      string         `json:"brands"`
		ServingSize string         `json:"serving_size"`
		Nutriments  map[string]any `json:"nutriments"`
	} `json:"product"`
}

// LookupBarcode resolves a barcode to a product. A barcode with no product
// behind it returns (nil, nil); errors are network, status, or decode
// failures only.
func (c *Client) LookupBarcode(ctx context.Context, barcode string) (*Product, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	url := fmt.Sprintf("%s/api/v2/product/%s.json", base, barcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create openfoodfacts request: %w", err)
	}
	req.Header.Set("User-Agent", "reality-check-api/1.0 (+https://github.com/reality-check/api-go)")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute openfoodfacts request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read openfoodfacts response: %w", err)
	}
	// OpenFoodFacts answers 404 for unknown barcodes; that is a miss, not
	// a failure.
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openfoodfacts request failed with status %d", resp.StatusCode)
	}

	var parsed offResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode openfoodfacts response: %w", err)
	}
	if parsed.Status != 1 || strings.TrimSpace(parsed.Product.ProductName) == "" {
		return nil, nil
	}

	serving := strings.TrimSpace(parsed.Product.ServingSize)
	if serving == "" {
		serving = "1 serving"
	}

	return &Product{
		Name:         strings.TrimSpace(parsed.Product.ProductName),
		Brand:        strings.TrimSpace(parsed.Product.Brands),
		Serving:      serving,
		CaloriesKcal: nutrientValue(parsed.Product.Nutriments, "energy-kcal"),
	}, nil
}

func nutrientValue(nutriments map[string]any, base string) float64 {
	for _, key := range []string{base + "_serving", base + "_100g"} {
		if v, ok := parseFloatAny(nutriments[key]); ok {
			return v
		}
	}
	return 0
}

func parseFloatAny(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
