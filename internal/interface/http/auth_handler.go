package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-job-board/internal/application"
	"github.com/oksasatya/go-job-board/internal/interface/middleware"
	"github.com/oksasatya/go-job-board/pkg/helpers"
	"github.com/oksasatya/go-job-board/pkg/response"
)

type AuthHandler struct {
	Svc     *application.AuthService
	Cookies *helpers.Manager
	Logger  *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, cookies *helpers.Manager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Cookies: cookies, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	sess, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Fail(c, h.Logger, err)
		return
	}
	h.Cookies.SetSession(c, sess.Token, sess.TTL)
	response.Success(c, http.StatusCreated, gin.H{"user": toUserView(sess.User)}, "user registered", gin.H{"expires_at": sess.ExpiresAt})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	sess, err := h.Svc.Login(c.Request.Context(), application.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}, application.ClientInfo{
		IP:        middleware.ClientIP(c),
		UserAgent: c.GetHeader("User-Agent"),
	})
	if err != nil {
		response.Fail(c, h.Logger, err)
		return
	}
	h.Cookies.SetSession(c, sess.Token, sess.TTL)
	response.Success(c, http.StatusOK, gin.H{"user": toUserView(sess.User)}, "login successful", gin.H{"expires_at": sess.ExpiresAt})
}

// Logout always succeeds and overwrites the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, nil, "logged out", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	token, _ := c.Cookie(helpers.SessionCookie)
	u, err := h.Svc.Resolve(c.Request.Context(), token)
	if err != nil {
		response.Fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": toUserView(u)}, "authenticated", nil)
}
