package controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reality-check/api-go/providers/openfoodfacts"
	"github.com/reality-check/api-go/types"
)

type BarcodeController struct {
	Client *openfoodfacts.Client
}

func NewBarcodeController() *BarcodeController {
	return &BarcodeController{Client: &openfoodfacts.Client{}}
}

// LookupBarcode resolves a barcode to a pre-filled food item. An unknown
// barcode is a found:false response, not an error.
func (bc *BarcodeController) LookupBarcode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Barcode is required", "success": false})
		return
	}

	product, err := bc.Client.LookupBarcode(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Barcode lookup failed, please try again", "success": false})
		return
	}
	if product == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "found": false})
		return
	}

	name := product.Name
	if product.Brand != "" {
		name = product.Brand + " " + product.Name
	}

	food := types.FoodItem{
		Name:             name,
		Serving:          product.Serving,
		Servings:         1,
		BaseCaloriesKcal: product.CaloriesKcal,
		// Rough chew-time estimate: one minute per 100 kcal, at least one.
		BaseEatMinutes: math.Max(1, math.Round(product.CaloriesKcal/100)),
	}
	food.SetServings(1)

	c.JSON(http.StatusOK, gin.H{"success": true, "found": true, "food": food})
}
