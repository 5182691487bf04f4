package http

import (
	"net/http"

	"lv33global/pkg/logger"
	"lv33global/services/backoffice/internal/entity"
	"lv33global/services/backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      log,
	}
}

type SignupRequest struct {
	Username string `form:"username" json:"username"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

type UserResponse struct {
	Message string       `json:"message"`
	User    *entity.User `json:"user"`
}

// Signup godoc
// @Summary      Register a new user
// @Description  Creates a user with a bcrypt-hashed password. Emails are unique.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      SignupRequest  true  "Signup data"
// @Success      201      {object}  UserResponse
// @Failure      400      {object}  MessageResponse
// @Failure      409      {object}  MessageResponse
// @Failure      500      {object}  MessageResponse
// @Router       /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Invalid request body.")
		return
	}

	user, err := h.authUseCase.Signup(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err, "", "Server error. Please try again later.")
		return
	}

	c.JSON(http.StatusCreated, UserResponse{
		Message: "User registered successfully!",
		User:    user,
	})
}

// Login godoc
// @Summary      Check credentials
// @Description  Verifies a username and password. No session or token is issued.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Login credentials"
// @Success      200      {object}  UserResponse
// @Failure      400      {object}  MessageResponse
// @Failure      401      {object}  MessageResponse
// @Failure      500      {object}  MessageResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Invalid request body.")
		return
	}

	user, err := h.authUseCase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.logger, err, "", "Server error. Please try again later.")
		return
	}

	c.JSON(http.StatusOK, UserResponse{
		Message: "Login successful",
		User:    user,
	})
}
