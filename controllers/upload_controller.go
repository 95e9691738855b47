package controllers

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/reality-check/api-go/config"
	"github.com/reality-check/api-go/utils"
	"gorm.io/gorm"
)

// UploadController hands out presigned R2 URLs for food photos so image
// bytes never pass through the API server.
type UploadController struct {
	DB       *gorm.DB
	R2Client *s3.Client
	R2Config *config.R2Config
}

type PresignedURLRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	FileSize    int64  `json:"fileSize" binding:"required"`
}

type PresignedURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresIn"`
}

func NewUploadController(db *gorm.DB) *UploadController {
	r2Config := config.GetR2Config()

	r2Client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r2Config.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			r2Config.AccessKeyID,
			r2Config.SecretAccessKey,
			"",
		),
		Region: r2Config.Region,
	})

	return &UploadController{
		DB:       db,
		R2Client: r2Client,
		R2Config: r2Config,
	}
}

func (uc *UploadController) GetPresignedURL(c *gin.Context) {
	user := utils.GetUser(c)
	var req PresignedURLRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !uc.isValidPhoto(req.ContentType, req.FileSize) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid photo type or size"})
		return
	}

	key := uc.generateFileKey(user.UserID, req.FileName)

	presignedURL, err := uc.createPresignedURL(key, req.ContentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload URL"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: PresignedURLResponse{
			UploadURL: presignedURL,
			FileURL:   fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, key),
			Key:       key,
			ExpiresIn: 3600,
		},
		Message: "Presigned URL generated successfully",
	})
}

func (uc *UploadController) ConfirmUpload(c *gin.Context) {
	user := utils.GetUser(c)
	var req struct {
		Key string `json:"key" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exists, err := uc.verifyFileExists(req.Key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify file upload"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found in storage"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"key":        req.Key,
			"fileUrl":    fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, req.Key),
			"uploadedBy": user.UserID,
			"uploadedAt": time.Now(),
		},
		Message: "Upload confirmed successfully",
	})
}

func (uc *UploadController) DeleteFile(c *gin.Context) {
	user := utils.GetUser(c)
	key := c.Param("key")

	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File key is required"})
		return
	}

	if !uc.verifyFileOwnership(key, user.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	if err := uc.deleteFile(key); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Message: "File deleted successfully",
	})
}

func (uc *UploadController) isValidPhoto(contentType string, fileSize int64) bool {
	validTypes := []string{
		"image/jpeg", "image/jpg", "image/png", "image/webp", "image/heic",
	}

	valid := false
	for _, validType := range validTypes {
		if contentType == validType {
			valid = true
			break
		}
	}
	if !valid {
		return false
	}

	// Photo size limit: 10MB
	return fileSize <= 10*1024*1024
}

func (uc *UploadController) generateFileKey(userID uint, fileName string) string {
	ext := filepath.Ext(fileName)
	id := uuid.New().String()
	timestamp := time.Now().Unix()

	return fmt.Sprintf("uploads/meals/%d/%d_%s%s", userID, timestamp, id, ext)
}

func (uc *UploadController) createPresignedURL(key, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(uc.R2Config.BucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	presigner := s3.NewPresignClient(uc.R2Client)
	req, err := presigner.PresignPutObject(context.TODO(), input, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

func (uc *UploadController) verifyFileExists(key string) (bool, error) {
	input := &s3.HeadObjectInput{
		Bucket: aws.String(uc.R2Config.BucketName),
		Key:    aws.String(key),
	}

	if _, err := uc.R2Client.HeadObject(context.TODO(), input); err != nil {
		return false, nil
	}
	return true, nil
}

func (uc *UploadController) deleteFile(key string) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(uc.R2Config.BucketName),
		Key:    aws.String(key),
	}

	_, err := uc.R2Client.DeleteObject(context.TODO(), input)
	return err
}

func (uc *UploadController) verifyFileOwnership(key string, userID uint) bool {
	// Key format: uploads/meals/{userID}/{timestamp}_{uuid}.{ext}
	parts := strings.Split(key, "/")
	if len(parts) < 3 {
		return false
	}
	return fmt.Sprintf("%d", userID) == parts[2]
}
