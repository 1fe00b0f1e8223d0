// File: /controllers/auth_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"programlaz-api/models"
	"programlaz-api/utils"
)

type AuthController struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthController(db *gorm.DB, jwtSecret string) *AuthController {
	return &AuthController{
		db:        db,
		jwtSecret: jwtSecret,
	}
}

type RegisterRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	PasswordConfirm string `json:"password_confirm" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if req.Password != req.PasswordConfirm {
		utils.SendValidationError(c, "Passwords do not match")
		return
	}

	if !utils.IsValidPassword(req.Password) {
		utils.SendValidationError(c, "Password must contain at least two of: uppercase, lowercase, digits")
		return
	}

	var existingUser models.User
	if err := ac.db.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		utils.SendError(c, http.StatusConflict, "Email already registered")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	if err := ac.db.Create(&user).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := ac.generateToken(user)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	user.Password = ""
	c.JSON(http.StatusCreated, AuthResponse{Token: token, User: user})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	var user models.User
	if err := ac.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := ac.generateToken(user)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, AuthResponse{Token: token, User: user})
}

// GetProfile returns the authenticated user's account
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := ac.db.First(&user, "id = ?", userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, user)
}

func (ac *AuthController) generateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"is_admin": user.IsAdmin,
		"exp":      time.Now().Add(7 * 24 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}
