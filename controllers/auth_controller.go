package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/reality-check/api-go/config"
	"github.com/reality-check/api-go/models"
	"github.com/reality-check/api-go/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB           *gorm.DB
	GoogleConfig *config.GoogleConfig
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:           db,
		GoogleConfig: config.NewGoogleConfig(),
	}
}

func (ac *AuthController) Register(c *gin.Context) {
	var input struct {
		Name     string   `json:"name" binding:"required"`
		Email    string   `json:"email" binding:"required,email"`
		Password string   `json:"password" binding:"required,min=6"`
		WeightKg *float64 `json:"weightKg"`
		HeightCm *float64 `json:"heightCm"`
		Sex      *string  `json:"sex"`
		Age      *int     `json:"age"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password", "success": false})
		return
	}
	hashedPasswordStr := string(hashedPassword)

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: &hashedPasswordStr,
		Provider: "email",
		WeightKg: input.WeightKg,
		HeightCm: input.HeightCm,
		Sex:      input.Sex,
		Age:      input.Age,
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered", "success": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if user.Password == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	ac.issueTokens(c, &user)
}

// GoogleSignIn exchanges a Google ID token for this API's tokens, creating
// the account on first sight of the email.
func (ac *AuthController) GoogleSignIn(c *gin.Context) {
	var input struct {
		IDToken string `json:"idToken" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if !ac.GoogleConfig.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google sign-in is not configured", "success": false})
		return
	}

	info, err := ac.GoogleConfig.VerifyIDToken(input.IDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google token", "success": false})
		return
	}

	var user models.User
	err = ac.DB.Where("email = ?", info.Email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		user = models.User{
			Name:     info.Name,
			Email:    info.Email,
			GoogleID: &info.ID,
			Provider: "google",
		}
		if err := ac.DB.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create account", "success": false})
			return
		}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not look up account", "success": false})
		return
	} else if user.GoogleID == nil {
		user.GoogleID = &info.ID
		ac.DB.Save(&user)
	}

	ac.issueTokens(c, &user)
}

func (ac *AuthController) issueTokens(c *gin.Context, user *models.User) {
	accessTokenBase := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(),
	})

	refreshTokenBase := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	accessToken, err := accessTokenBase.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token", "success": false})
		return
	}
	refreshToken, err := refreshTokenBase.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token", "success": false})
		return
	}

	ac.DB.Create(&models.RefreshToken{
		UserID:         user.ID,
		Token:          refreshToken,
		ExpirationDate: time.Now().Add(time.Hour * 24 * 30),
	})

	c.JSON(http.StatusOK, gin.H{
		"token_type":    "Bearer",
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          gin.H{"id": user.ID, "email": user.Email, "name": user.Name},
		"success":       true,
	})
}

func (ac *AuthController) RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var refreshToken models.RefreshToken
	if err := ac.DB.Where("token = ?", input.RefreshToken).First(&refreshToken).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token", "success": false})
		return
	}

	if time.Now().After(refreshToken.ExpirationDate) {
		ac.DB.Delete(&refreshToken)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token expired", "success": false})
		return
	}

	var user models.User
	if err := ac.DB.First(&user, refreshToken.UserID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found", "success": false})
		return
	}

	// Rotate: drop the old token; issueTokens stores the replacement.
	ac.DB.Delete(&refreshToken)
	ac.issueTokens(c, &user)
}

func (ac *AuthController) Logout(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	ac.DB.Where("user_id = ?", claims.UserID).Delete(&models.RefreshToken{})

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}

func (ac *AuthController) GetProfile(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var user models.User
	if err := ac.DB.First(&user, claims.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (ac *AuthController) UpdateProfile(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		Name     *string  `json:"name"`
		WeightKg *float64 `json:"weightKg"`
		HeightCm *float64 `json:"heightCm"`
		Sex      *string  `json:"sex"`
		Age      *int     `json:"age"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var user models.User
	if err := ac.DB.First(&user, claims.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.WeightKg != nil {
		user.WeightKg = input.WeightKg
	}
	if input.HeightCm != nil {
		user.HeightCm = input.HeightCm
	}
	if input.Sex != nil {
		user.Sex = input.Sex
	}
	if input.Age != nil {
		user.Age = input.Age
	}

	if err := ac.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update profile", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
