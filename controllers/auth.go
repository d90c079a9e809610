package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/barbersalon/salon-api/middleware"
	"github.com/barbersalon/salon-api/models"
	"github.com/barbersalon/salon-api/store"
	"github.com/barbersalon/salon-api/utils"
)

type AuthController struct {
	users store.UserStore
}

func NewAuthController(users store.UserStore) *AuthController {
	return &AuthController{users: users}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges admin credentials for a JWT.
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Email and password are required",
		})
	}

	user, err := ctl.users.GetUserByEmail(c.UserContext(), req.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
				Message: "Invalid email or password",
			})
		}
		return internalError(c, "login", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "Invalid email or password",
		})
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"admin":   user.IsAdmin,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(middleware.JWTSecret())
	if err != nil {
		return internalError(c, "sign token", err)
	}

	return c.JSON(fiber.Map{
		"token": signed,
		"user": fiber.Map{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"is_admin": user.IsAdmin,
		},
	})
}
