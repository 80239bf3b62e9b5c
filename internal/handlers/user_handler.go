package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sfailla/ecommerce-shop/internal/auth"
	"github.com/Sfailla/ecommerce-shop/internal/models"
	"github.com/Sfailla/ecommerce-shop/internal/repository"
)

// authTokenHeader carries the freshly minted token alongside the body field
// so clients can pick either.
const authTokenHeader = "x-auth-token"

// UserStore extends the generic store with the email lookup login needs.
type UserStore interface {
	Store[models.User]
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserHandler handles user CRUD plus signup token issuance and login.
type UserHandler struct {
	*Resource[models.User]
	users  UserStore
	tokens *auth.TokenIssuer
}

// NewUserHandler creates the user controller.
func NewUserHandler(users UserStore, tokens *auth.TokenIssuer, log *slog.Logger) *UserHandler {
	return &UserHandler{
		Resource: NewResource[models.User](users, "user", "users", log),
		users:    users,
		tokens:   tokens,
	}
}

// Create registers a new user. The password is replaced with its bcrypt hash
// before persistence, and a signed token is attached to both the
// x-auth-token header and the response body.
func (h *UserHandler) Create(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		respondBadRequest(c, err)
		return
	}

	hashed, err := auth.HashPassword(user.Password)
	if err != nil {
		respondError(c, h.log, err, "user not found")
		return
	}
	user.Password = hashed

	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		respondError(c, h.log, err, "user not found")
		return
	}

	token, err := h.tokens.Issue(&user)
	if err != nil {
		respondError(c, h.log, err, "user not found")
		return
	}

	c.Header(authTokenHeader, token)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "user created successfully",
		"user":    user,
		"token":   token,
	})
}

// Login authenticates a user by email and password and issues a token.
// Unknown email and bad password are both 401, with distinct messages.
func (h *UserHandler) Login(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), creds.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "user not found",
			})
			return
		}
		respondError(c, h.log, err, "user not found")
		return
	}

	if err := auth.CheckPassword(creds.Password, user.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "invalid password",
		})
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		respondError(c, h.log, err, "user not found")
		return
	}

	c.Header(authTokenHeader, token)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "user logged in successfully",
		"user":    user,
		"token":   token,
	})
}
