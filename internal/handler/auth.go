package handler

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/wanderlist/wanderlist/internal/config"
	"github.com/wanderlist/wanderlist/internal/ctxkeys"
	"github.com/wanderlist/wanderlist/internal/model"
	"github.com/wanderlist/wanderlist/internal/service"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
)

type authHandler struct {
	authService       *service.AuthService
	activityService   *service.ActivityService
	googleOAuthConfig *oauth2.Config
	githubOAuthConfig *oauth2.Config
}

func NewAuthHandler(authService *service.AuthService, activityService *service.ActivityService, cfg *config.Config) *authHandler {
	return &authHandler{
		authService:     authService,
		activityService: activityService,
		googleOAuthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.AppURL + "/auth/google/callback",
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email"},
			Endpoint:     google.Endpoint,
		},
		githubOAuthConfig: &oauth2.Config{
			ClientID:     cfg.GitHubClientID,
			ClientSecret: cfg.GitHubClientSecret,
			RedirectURL:  cfg.AppURL + "/auth/github/callback",
			Scopes:       []string{"user:email"},
			Endpoint:     github.Endpoint,
		},
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *authHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Register(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			respondError(w, http.StatusConflict, "Email already registered")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.issueSession(w, user)
	respondJSON(w, http.StatusCreated, user)
}

func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrPasswordLogin) {
			respondError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		slog.Error("login failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	h.issueSession(w, user)
	h.activityService.Track(user.ID, model.ActionLogin, "", "", clientIP(r), r.UserAgent())

	slog.Info("user logged in with password", "user_id", user.ID, "email", user.Email)
	respondJSON(w, http.StatusOK, user)
}

func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Me returns the authenticated user.
func (h *authHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	respondJSON(w, http.StatusOK, user)
}

func (h *authHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.authService.SendPasswordResetLink(req.Email)
	if err != nil && !errors.Is(err, service.ErrInvalidEmail) {
		slog.Error("failed to send password reset link", "error", err)
	}

	// Always the same answer, so the endpoint cannot confirm whether
	// an address has an account.
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "If an account exists for that email, a reset link has been sent",
	})
}

func (h *authHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.ResetPassword(req.Token, req.Password)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.issueSession(w, user)
	respondJSON(w, http.StatusOK, user)
}

func (h *authHandler) issueSession(w http.ResponseWriter, user *model.User) {
	jwtToken, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate JWT", "error", err, "user_id", user.ID)
		return
	}
	h.authService.SetJWTCookie(w, jwtToken, time.Now().Add(h.authService.JWTExpiry()))
}

// GoogleAuth redirects the user to the Google OAuth consent screen.
func (h *authHandler) GoogleAuth(w http.ResponseWriter, r *http.Request) {
	state := generateOAuthState()
	h.setStateCookie(w, r, state)

	url := h.googleOAuthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// GoogleCallback handles the OAuth callback from Google.
func (h *authHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if !h.validState(w, r) {
		slog.Warn("google oauth state validation failed")
		respondError(w, http.StatusBadRequest, "OAuth authentication failed")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		slog.Warn("google oauth callback missing code")
		respondError(w, http.StatusBadRequest, "OAuth authentication failed")
		return
	}

	token, err := h.googleOAuthConfig.Exchange(context.Background(), code)
	if err != nil {
		slog.Error("google oauth token exchange failed", "error", err)
		respondError(w, http.StatusBadGateway, "OAuth authentication failed")
		return
	}

	client := h.googleOAuthConfig.Client(context.Background(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		slog.Error("failed to get google user info", "error", err)
		respondError(w, http.StatusBadGateway, "OAuth authentication failed")
		return
	}
	defer func() {
		closeErr := resp.Body.Close()
		if closeErr != nil {
			slog.Error("failed to close response body", "error", closeErr)
		}
	}()

	var userInfo struct {
		Email string `json:"email"`
	}
	err = json.NewDecoder(resp.Body).Decode(&userInfo)
	if err != nil {
		slog.Error("failed to decode google user info", "error", err)
		respondError(w, http.StatusBadGateway, "OAuth authentication failed")
		return
	}

	h.completeOAuth(w, r, userInfo.Email, "google")
}

// GitHubAuth redirects the user to the GitHub OAuth consent screen.
func (h *authHandler) GitHubAuth(w http.ResponseWriter, r *http.Request) {
	state := generateOAuthState()
	h.setStateCookie(w, r, state)

	url := h.githubOAuthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// GitHubCallback handles the OAuth callback from GitHub.
func (h *authHandler) GitHubCallback(w http.ResponseWriter, r *http.Request) {
	if !h.validState(w, r) {
		slog.Warn("github oauth state validation failed")
		respondError(w, http.StatusBadRequest, "OAuth authentication failed")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		slog.Warn("github oauth callback missing code")
		respondError(w, http.StatusBadRequest, "OAuth authentication failed")
		return
	}

	token, err := h.githubOAuthConfig.Exchange(context.Background(), code)
	if err != nil {
		slog.Error("github oauth token exchange failed", "error", err)
		respondError(w, http.StatusBadGateway, "OAuth authentication failed")
		return
	}

	client := h.githubOAuthConfig.Client(context.Background(), token)
	resp, err := client.Get("https://api.github.com/user")
	if err != nil {
		slog.Error("failed to get github user info", "error", err)
		respondError(w, http.StatusBadGateway, "OAuth authentication failed")
		return
	}
	defer func() {
		closeErr := resp.Body.Close()
		if closeErr != nil {
			slog.Error("failed to close response body", "error", closeErr)
		}
	}()

	var userInfo struct {
		Email string `json:"email"`
	}
	err = json.NewDecoder(resp.Body).Decode(&userInfo)
	if err != nil {
		slog.Error("failed to decode github user info", "error", err)
		respondError(w, http.StatusBadGateway, "OAuth authentication failed")
		return
	}

	// GitHub hides private emails from /user; fall back to the emails
	// endpoint and take the primary address.
	if userInfo.Email == "" {
		emailResp, err := client.Get("https://api.github.com/user/emails")
		if err != nil {
			slog.Error("failed to get github user emails", "error", err)
			respondError(w, http.StatusBadGateway, "OAuth authentication failed")
			return
		}
		defer func() {
			closeErr := emailResp.Body.Close()
			if closeErr != nil {
				slog.Error("failed to close email response body", "error", closeErr)
			}
		}()

		var emails []struct {
			Email   string `json:"email"`
			Primary bool   `json:"primary"`
		}
		err = json.NewDecoder(emailResp.Body).Decode(&emails)
		if err != nil {
			slog.Error("failed to decode github emails", "error", err)
			respondError(w, http.StatusBadGateway, "OAuth authentication failed")
			return
		}

		for _, e := range emails {
			if e.Primary {
				userInfo.Email = e.Email
				break
			}
		}
	}

	if userInfo.Email == "" {
		slog.Warn("github oauth: no email found")
		respondError(w, http.StatusBadRequest, "Could not retrieve email from GitHub")
		return
	}

	h.completeOAuth(w, r, userInfo.Email, "github")
}

func (h *authHandler) completeOAuth(w http.ResponseWriter, r *http.Request, email, provider string) {
	user, err := h.authService.AuthenticateOAuth(email, provider)
	if err != nil {
		slog.Error("oauth authentication failed", "error", err, "email", email)
		respondError(w, http.StatusInternalServerError, "Authentication failed")
		return
	}

	h.issueSession(w, user)
	h.activityService.Track(user.ID, model.ActionLogin, "", "", clientIP(r), r.UserAgent())

	slog.Info("user logged in with oauth", "user_id", user.ID, "email", user.Email, "provider", provider)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *authHandler) setStateCookie(w http.ResponseWriter, r *http.Request, state string) {
	cfg := ctxkeys.Config(r.Context())
	isProduction := cfg != nil && cfg.IsProduction()

	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		Secure:   isProduction, // based on APP_ENV, safer than r.TLS behind load balancers
		SameSite: http.SameSiteLaxMode,
		MaxAge:   600,
	})
}

// validState checks the OAuth state parameter against the state cookie
// and clears the cookie.
func (h *authHandler) validState(w http.ResponseWriter, r *http.Request) bool {
	state := r.URL.Query().Get("state")
	cookie, err := r.Cookie("oauth_state")

	http.SetCookie(w, &http.Cookie{
		Name:   "oauth_state",
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	return err == nil && state != "" && cookie.Value == state
}

// generateOAuthState creates a cryptographically secure random state
// token for the OAuth CSRF check.
func generateOAuthState() string {
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	if err != nil {
		panic("failed to generate oauth state: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(bytes)
}
