package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/dance-school/internal/dto"
	"github.com/BruksfildServices01/dance-school/internal/httperr"
	"github.com/BruksfildServices01/dance-school/internal/httpresp"
	"github.com/BruksfildServices01/dance-school/internal/usecase/account"
)

type AuthHandler struct {
	register *account.RegisterUser
	login    *account.Login
	log      logrus.FieldLogger
}

func NewAuthHandler(
	register *account.RegisterUser,
	login *account.Login,
	log logrus.FieldLogger,
) *AuthHandler {
	return &AuthHandler{register: register, login: login, log: log}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=100"`
	FullName string `json:"full_name" binding:"max=100"`
	Password string `json:"password" binding:"required,max=72"`
}

// TokenRequest follows the OAuth2 password form: the email goes in username.
type TokenRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	user, err := h.register.Execute(c.Request.Context(), account.RegisterUserInput{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.Created(c, user)
}

// Token accepts form or JSON bodies.
func (h *AuthHandler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	out, err := h.login.Execute(c.Request.Context(), account.LoginInput{
		Email:    req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.TokenResponse{
		AccessToken: out.AccessToken,
		TokenType:   out.TokenType,
	})
}
