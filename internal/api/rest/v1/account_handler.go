package v1

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/MGTheTrain/specfem-web/internal/domain/users"
	"github.com/MGTheTrain/specfem-web/internal/infrastructure/rendering"
	"github.com/MGTheTrain/specfem-web/internal/pkg/config"
	"github.com/MGTheTrain/specfem-web/internal/pkg/forms"
	"github.com/MGTheTrain/specfem-web/internal/pkg/httputil"

	"github.com/gin-gonic/gin"
)

var passwordField = forms.Key(users.AccountPrefix, "password")

// AccountHandler defines the interface for login, logout and registration
type AccountHandler interface {
	LoginPage(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	RegisterForm(ctx *gin.Context)
	Register(ctx *gin.Context)
}

type accountHandler struct {
	accountService users.AccountService
	pages          PageRenderer
	auth           *config.AuthSettings
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService users.AccountService, pages PageRenderer, auth *config.AuthSettings) AccountHandler {
	return &accountHandler{
		accountService: accountService,
		pages:          pages,
		auth:           auth,
	}
}

// LoginPage renders the login form
func (handler *accountHandler) LoginPage(ctx *gin.Context) {
	handler.renderLogin(ctx, http.StatusOK, &rendering.LoginPage{Next: ctx.Query("next")})
}

// Login checks the credentials and sets the session cookie
func (handler *accountHandler) Login(ctx *gin.Context) {
	username := ctx.PostForm("username")
	password := ctx.PostForm("password")
	next := ctx.PostForm("next")

	token, err := handler.accountService.Authenticate(ctx, username, password)
	if errors.Is(err, users.ErrInvalidCredentials) {
		handler.renderLogin(ctx, http.StatusUnauthorized, &rendering.LoginPage{
			Username: username,
			Next:     next,
			Error:    "Please enter a correct username and password.",
		})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, newErrorResponse("login failed: %v", err))
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(handler.auth.CookieName, token, int(handler.auth.TokenTTL.Seconds()), "/", "", handler.auth.SecureCookie, true)
	ctx.Redirect(http.StatusFound, safeNext(next))
}

// Logout clears the session cookie and returns to the login page
func (handler *accountHandler) Logout(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(handler.auth.CookieName, "", -1, "/", "", handler.auth.SecureCookie, true)
	ctx.Redirect(http.StatusFound, LoginPath)
}

// RegisterForm returns an empty registration form, or the caller's profile when signed in
func (handler *accountHandler) RegisterForm(ctx *gin.Context) {
	userID, signedIn := httputil.UserID(ctx)
	if !signedIn {
		ctx.JSON(http.StatusOK, ProfileFormResponse{Values: map[string]string{}})
		return
	}

	info, err := handler.accountService.Profile(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, newErrorResponse("could not load profile: %v", err))
		return
	}
	values, err := users.ProfileValues(info.ProfileParameters)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, newErrorResponse("%v", err))
		return
	}

	ctx.JSON(http.StatusOK, ProfileFormResponse{Values: values})
}

// Register creates an account with its profile, or updates the caller's profile when signed in
func (handler *accountHandler) Register(ctx *gin.Context) {
	values, err := postedValues(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, newErrorResponse("invalid form data"))
		return
	}

	registration, errs := decodeRegistration(values)

	if userID, signedIn := httputil.UserID(ctx); signedIn {
		handler.updateProfile(ctx, userID, values, registration, errs)
		return
	}

	if errs.Any() {
		errs.Merge(registration.Validate())
		echoProfileForm(ctx, values, errs)
		return
	}

	if _, _, err := handler.accountService.Register(ctx, registration); err != nil {
		var validationErr *forms.ValidationError
		if errors.As(err, &validationErr) {
			echoProfileForm(ctx, values, validationErr.Errors)
			return
		}
		ctx.JSON(http.StatusInternalServerError, newErrorResponse("%v", err))
		return
	}

	ctx.Redirect(http.StatusSeeOther, LoginPath)
}

func (handler *accountHandler) updateProfile(ctx *gin.Context, userID string, values map[string]string, registration *users.Registration, errs forms.Errors) {
	profileErrs := forms.Errors{}
	for field, msgs := range errs {
		if !strings.HasPrefix(field, users.AccountPrefix) {
			profileErrs[field] = msgs
		}
	}
	if profileErrs.Any() {
		profileErrs.Merge(users.ValidateProfile(&registration.Profile))
		echoProfileForm(ctx, values, profileErrs)
		return
	}

	if _, err := handler.accountService.UpdateProfile(ctx, userID, &registration.Profile); err != nil {
		var validationErr *forms.ValidationError
		if errors.As(err, &validationErr) {
			echoProfileForm(ctx, values, validationErr.Errors)
			return
		}
		ctx.JSON(http.StatusInternalServerError, newErrorResponse("%v", err))
		return
	}

	ctx.Redirect(http.StatusSeeOther, BasePath+"/")
}

func (handler *accountHandler) renderLogin(ctx *gin.Context, status int, page *rendering.LoginPage) {
	page.Action = LoginPath
	page.RegisterURL = BasePath + "/register"

	var buf bytes.Buffer
	if err := handler.pages.RenderLogin(&buf, page); err != nil {
		ctx.JSON(http.StatusInternalServerError, newErrorResponse("%v", err))
		return
	}
	ctx.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// echoProfileForm re-displays the submitted values, never the password
func echoProfileForm(ctx *gin.Context, values map[string]string, errs forms.Errors) {
	echoed := make(map[string]string, len(values))
	for key, value := range values {
		if key != passwordField {
			echoed[key] = value
		}
	}
	ctx.JSON(http.StatusUnprocessableEntity, ProfileFormResponse{Values: echoed, Errors: errs})
}

// safeNext only follows redirects that stay inside the application
func safeNext(next string) string {
	if strings.HasPrefix(next, BasePath+"/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return BasePath + "/"
}
