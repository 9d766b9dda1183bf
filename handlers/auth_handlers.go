package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"preorder/config"
	"preorder/database"
	"preorder/models"
)

// HandleLogin authenticates a user and issues a JWT.
func HandleLogin(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Email and password are required"})
	}

	var user models.User
	var passwordHash string
	query := `
		SELECT id, name, email, role, is_active, password_hash, created_at, updated_at
		FROM users WHERE email = $1
	`
	if err := db.QueryRow(ctx, query, req.Email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Role, &user.IsActive,
		&passwordHash, &user.CreatedAt, &user.UpdatedAt,
	); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Invalid credentials"})
	}

	if !user.IsActive {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"status": "error", "message": "Account is disabled"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Invalid credentials"})
	}

	claims := models.JwtClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to issue token"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{"token": signed, "user": user}})
}

// HandleInitializeAdmin creates the first admin user if none exists.
// Guarded by the INIT_TOKEN header so it can't be hit casually.
func HandleInitializeAdmin(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	initToken := config.AppConfig.InitToken
	if initToken == "" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"status": "error", "message": "INIT_TOKEN not configured"})
	}
	if c.Get("X-Init-Token") != initToken {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Invalid initialization token"})
	}

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if req.Name == "" || req.Email == "" || len(req.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Name, email and a password of at least 8 characters are required"})
	}

	var adminCount int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM users WHERE role = 'admin'").Scan(&adminCount); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to check existing admins"})
	}
	if adminCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": "error", "message": "An admin already exists"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to hash password"})
	}

	var userID int
	err = db.QueryRow(ctx, `
		INSERT INTO users (name, email, role, is_active, password_hash)
		VALUES ($1, $2, 'admin', true, $3)
		RETURNING id
	`, req.Name, req.Email, string(hash)).Scan(&userID)
	if err != nil {
		log.Printf("Error creating initial admin: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create admin"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": fiber.Map{"userId": userID}})
}
