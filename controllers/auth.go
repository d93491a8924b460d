package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"student-showcase-api/middleware"
	"student-showcase-api/repository"
)

// AuthController issues admin bearer tokens.
type AuthController struct {
	admins      repository.AdminStore
	allowlist   []string
	jwtSecret   string
	tokenExpiry time.Duration
}

func NewAuthController(admins repository.AdminStore, allowlist []string, jwtSecret string, tokenExpiry time.Duration) *AuthController {
	if tokenExpiry <= 0 {
		tokenExpiry = 24 * time.Hour
	}
	return &AuthController{
		admins:      admins,
		allowlist:   allowlist,
		jwtSecret:   jwtSecret,
		tokenExpiry: tokenExpiry,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles admin authentication
func (ctl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	// Non-allowlisted emails fail before the credential check
	if !ctl.allowed(req.Email) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	admin, err := ctl.admins.FindByEmail(req.Email)
	if err != nil || !admin.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := ctl.generateToken(admin.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"email": admin.Email,
	})
}

func (ctl *AuthController) allowed(email string) bool {
	if len(ctl.allowlist) == 0 {
		return true
	}
	for _, candidate := range ctl.allowlist {
		if strings.EqualFold(strings.TrimSpace(candidate), email) {
			return true
		}
	}
	return false
}

// generateToken creates the JWT for an admin session
func (ctl *AuthController) generateToken(email string) (string, error) {
	claims := middleware.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ctl.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ctl.jwtSecret))
}
