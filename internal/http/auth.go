package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/buzzwords/internal/apperrors"
	"github.com/mrlokans/buzzwords/internal/audit"
	"github.com/mrlokans/buzzwords/internal/auth"
)

const (
	MsgLoginSuccessful  = "Login successful"
	MsgLoginFailed      = "Error during login"
	MsgUserCreated      = "User created successfully"
	MsgUserCreateFailed = "Error creating user"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthController struct {
	auth   *auth.Service
	audit  *audit.Service
	logger *zap.Logger
}

func NewAuthController(authService *auth.Service, auditService *audit.Service, logger *zap.Logger) *AuthController {
	return &AuthController{auth: authService, audit: auditService, logger: logger}
}

// Login handles POST /auth/login.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, ac.logger, err, MsgLoginFailed)
		return
	}

	user, err := ac.auth.Login(c.Request.Context(), req.Username, req.Password)
	ac.audit.LogAuth(req.Username, "login", c.ClientIP(), c.Request.UserAgent(), err)
	if err != nil {
		respondError(c, ac.logger, err, MsgLoginFailed)
		return
	}

	c.JSON(http.StatusOK, Envelope{Success: true, Message: MsgLoginSuccessful, User: user})
}

// Signup handles POST /auth/signup. Rejected input answers 200 with
// success false; only store failures are 500.
func (ac *AuthController) Signup(c *gin.Context) {
	var input auth.SignupInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, ac.logger, err, MsgUserCreateFailed)
		return
	}

	user, err := ac.auth.Signup(c.Request.Context(), input)
	ac.audit.LogAuth(input.Username, "signup", c.ClientIP(), c.Request.UserAgent(), err)
	if err != nil {
		status, body := failure(c, ac.logger, err, MsgUserCreateFailed)
		if apperrors.KindOf(err) != apperrors.KindInternal {
			status = http.StatusOK
		}
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusCreated, Envelope{Success: true, Message: MsgUserCreated, User: user})
}
