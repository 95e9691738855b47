package controllers

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/reality-check/api-go/models"
	"github.com/reality-check/api-go/providers/relay"
	"gorm.io/gorm"
)

type ContactController struct {
	DB    *gorm.DB
	Relay *relay.Client
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{
		DB:    db,
		Relay: &relay.Client{BaseURL: os.Getenv("RELAY_URL")},
	}
}

// Subscribe forwards the opt-in to the contact relay. Relay failures are
// logged and swallowed; the caller always sees the subscription confirmed.
func (cc *ContactController) Subscribe(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if _, err := cc.Relay.Subscribe(c.Request.Context(), input.Email); err != nil {
		log.Printf("contact: relay subscribe for %q: %v", input.Email, err)
	}

	cc.DB.Model(&models.User{}).Where("email = ?", input.Email).Update("newsletter", true)

	c.JSON(http.StatusOK, gin.H{"success": true, "subscribed": true})
}
