package controller

import (
	"errors"

	"wisely_backend/internal/config"
	"wisely_backend/internal/service"
	"wisely_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	AuthService *service.AuthService
	UserService *service.UserService
	Cfg         *config.Config
}

func NewAuthController(authService *service.AuthService, userService *service.UserService, cfg *config.Config) *AuthController {
	return &AuthController{
		AuthService: authService,
		UserService: userService,
		Cfg:         cfg,
	}
}

// swagger:model LoginRequest
type LoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// Login godoc
// @Summary Log in with an identity-provider ID token
// @Description Verifies the ID token, upserts the user profile and opens a week-long session
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Identity provider ID token"
// @Success 200 {object} util.Response{data=object} "Login successful"
// @Failure 400 {object} util.Response "ID token required"
// @Failure 401 {object} util.Response "Invalid ID token"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "ID token required")
		return
	}

	user, token, err := c.AuthService.Login(ctx.Request.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, util.ErrInvalidIDToken) {
			util.Error(ctx, 401, "Invalid ID token")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	maxAge := int(c.Cfg.Session.TTL.Seconds())
	secure := c.Cfg.Server.Mode == "release"
	ctx.SetCookie(c.Cfg.Session.CookieName, token, maxAge, "/", "", secure, true)

	util.Success(ctx, gin.H{
		"message": "Login successful",
		"user":    user,
	})
}

// Logout godoc
// @Summary Log out
// @Description Destroys the server-side session and clears the cookie
// @Tags auth
// @Produce json
// @Success 200 {object} util.Response{data=object} "Logged out"
// @Router /api/logout [get]
func (c *AuthController) Logout(ctx *gin.Context) {
	if token := sessionToken(ctx, c.Cfg.Session.CookieName); token != "" {
		c.AuthService.Logout(ctx.Request.Context(), token)
	}

	secure := c.Cfg.Server.Mode == "release"
	ctx.SetCookie(c.Cfg.Session.CookieName, "", -1, "/", "", secure, true)

	util.Success(ctx, gin.H{"message": "Logged out"})
}

// GetAuthUser godoc
// @Summary Get the logged-in user
// @Tags auth
// @Produce json
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/auth/user [get]
func (c *AuthController) GetAuthUser(ctx *gin.Context) {
	userID := util.CurrentUserID(ctx)
	if userID == "" {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.Get(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Unauthorized(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, user)
}

// UploadAvatar godoc
// @Summary Upload a profile image
// @Tags auth
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Image file"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "Missing file"
// @Router /api/auth/user/avatar [post]
func (c *AuthController) UploadAvatar(ctx *gin.Context) {
	userID := util.CurrentUserID(ctx)
	if userID == "" {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("avatar")
	if err != nil {
		util.BadRequest(ctx, "avatar file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := c.UserService.UpdateAvatar(ctx.Request.Context(), userID, file, fileHeader.Size, fileHeader.Filename, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"profileImageUrl": url})
}

func sessionToken(ctx *gin.Context, cookieName string) string {
	if cookie, err := ctx.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}
