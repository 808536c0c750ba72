package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dailydiet/dailydiet/internal/config"
	"github.com/dailydiet/dailydiet/internal/users"
	"github.com/dailydiet/dailydiet/pkg/logger"
	"github.com/dailydiet/dailydiet/pkg/metrics"
)

// CreateUserRequest is the registration body
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// UsersHandler holds dependencies for the registration endpoint
type UsersHandler struct {
	cfg      *config.Config
	usersSvc *users.Service
}

func NewUsersHandler(cfg *config.Config, u *users.Service) *UsersHandler {
	return &UsersHandler{cfg: cfg, usersSvc: u}
}

// Register routes under /user
func (h *UsersHandler) Register(rg *gin.RouterGroup) {
	u := rg.Group("/user")
	u.POST("", h.Create)
}

// Create registers the caller once and issues the session cookie. The body
// is validated before the cookie check, so a malformed body is 400 even for
// an already-registered caller.
func (h *UsersHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// an empty cookie value counts as no token, same as the resolver
	if token, err := c.Cookie(h.cfg.Session.CookieName); err == nil && token != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user already created"})
		return
	}

	u, err := h.usersSvc.Register(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		logger.Errorf("user registration failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	// the user id is the bearer token: path-scoped to the whole service,
	// 7-day validity, unsigned (trust on possession)
	maxAge := int(h.cfg.Session.TTL.Seconds())
	c.SetCookie(h.cfg.Session.CookieName, u.ID, maxAge, "/", "", false, false)

	metrics.UsersRegistered.Inc()
	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully!"})
}
