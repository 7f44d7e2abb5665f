package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yogawp/todolist-api/internal/application"
	"github.com/yogawp/todolist-api/internal/interface/middleware"
	"github.com/yogawp/todolist-api/pkg/helpers"
	"github.com/yogawp/todolist-api/pkg/response"
	"github.com/yogawp/todolist-api/pkg/validation"
)

type AuthHandler struct {
	Auth    *application.AuthService
	JWT     *helpers.JWTManager
	Cookies *helpers.CookieManager
	Logger  *logrus.Logger
}

func NewAuthHandler(auth *application.AuthService, jwt *helpers.JWTManager, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Auth: auth, JWT: jwt, Logger: logger, Cookies: helpers.NewCookieManager(cookieDomain, cookieSecure)}
}

func clientMeta(c *gin.Context) application.RequestMeta {
	ip := c.GetString("real_ip")
	if ip == "" {
		ip = c.ClientIP()
	}
	return application.RequestMeta{IP: ip, UserAgent: c.GetHeader("User-Agent")}
}

// setSessionCookie signs the sid into the session cookie.
func (h *AuthHandler) setSessionCookie(c *gin.Context, sid string) {
	token, exp, err := h.JWT.GenerateSessionToken(sid)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("session token signing failed")
		}
		return
	}
	h.Cookies.SetSession(c, token, exp)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /login: credential check, session rotation, and a
// one-time plaintext bearer token in the response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}

	user, sess, token, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password, clientMeta(c))
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "The provided credentials do not match our records.", nil)
		return
	}
	h.setSessionCookie(c, sess.ID)
	response.Success(c, http.StatusOK, gin.H{
		"user":  toUserJSON(user),
		"token": token,
	}, "Login successful", nil)
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

// Register handles POST /register: self-service signup, role is always
// "user", and the new account is logged in via a fresh session.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}

	_, sess, err := h.Auth.Register(c.Request.Context(), req.Name, req.Email, req.Password, clientMeta(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.setSessionCookie(c, sess.ID)
	response.NoContent(c)
}

// Logout handles POST /logout. Only the web session dies; bearer
// tokens issued to the same user survive. The fresh anonymous session
// rotates the anti-forgery token.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		response.Error[any](c, http.StatusUnauthorized, "unauthenticated", nil)
		return
	}
	fresh, err := h.Auth.Logout(c.Request.Context(), sess, clientMeta(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.setSessionCookie(c, fresh.ID)
	response.NoContent(c)
}

type createTokenRequest struct {
	TokenName string `json:"token_name" binding:"required"`
}

// CreateToken handles POST /tokens/create: an authenticated session
// mints a named bearer token without re-entering the password.
func (h *AuthHandler) CreateToken(c *gin.Context) {
	var req createTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	actor := middleware.ActorFrom(c)
	if actor == nil {
		response.Error[any](c, http.StatusUnauthorized, "unauthenticated", nil)
		return
	}
	token, err := h.Auth.IssueNamedToken(c.Request.Context(), actor, req.TokenName, clientMeta(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"token": token}, "token created", nil)
}

// CSRFToken handles GET /token: returns the session's raw anti-forgery
// token, creating an anonymous session when the caller has none yet.
func (h *AuthHandler) CSRFToken(c *gin.Context) {
	if cookie, err := c.Cookie(helpers.SessionCookieName); err == nil && cookie != "" {
		if claims, err := h.JWT.ParseSessionToken(cookie); err == nil {
			if sess, _, err := h.Auth.ResolveSession(c.Request.Context(), claims.SessionID); err == nil {
				c.String(http.StatusOK, sess.CSRFToken)
				return
			}
		}
	}

	sess, err := h.Auth.AnonymousSession(c.Request.Context(), clientMeta(c))
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	h.setSessionCookie(c, sess.ID)
	c.String(http.StatusOK, sess.CSRFToken)
}
