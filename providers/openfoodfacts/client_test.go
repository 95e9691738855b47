package openfoodfacts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupBarcodeFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/product/737628064502.json", r.URL.Path)
		w.Write([]byte(`{
			"status": 1,
			"product": {
				"product_name": "Rice Noodles",
				"brands": "Thai Kitchen",
				"serving_size": "57 g",
				"nutriments": {"energy-kcal_serving": 190}
			}
		}`))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL}
	product, err := client.LookupBarcode(context.Background(), "737628064502")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Rice Noodles", product.Name)
	assert.Equal(t, "Thai Kitchen", product.Brand)
	assert.Equal(t, "57 g", product.Serving)
	assert.Equal(t, 190.0, product.CaloriesKcal)
}

func TestLookupBarcodeFallsBackToPer100g(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": 1,
			"product": {
				"product_name": "Dark Chocolate",
				"nutriments": {"energy-kcal_100g": 540}
			}
		}`))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL}
	product, err := client.LookupBarcode(context.Background(), "123")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, 540.0, product.CaloriesKcal)
	assert.Equal(t, "1 serving", product.Serving)
}

func TestLookupBarcodeNotFoundIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": 0, "product": {}}`))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL}
	product, err := client.LookupBarcode(context.Background(), "000")
	assert.NoError(t, err)
	assert.Nil(t, product)
}

func TestLookupBarcode404IsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL}
	product, err := client.LookupBarcode(context.Background(), "000")
	assert.NoError(t, err)
	assert.Nil(t, product)
}

func TestLookupBarcodeServerErrorFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL}
	_, err := client.LookupBarcode(context.Background(), "123")
	assert.Error(t, err)
}

func TestLookupBarcodeMalformedPayloadFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL}
	_, err := client.LookupBarcode(context.Background(), "123")
	assert.Error(t, err)
}
