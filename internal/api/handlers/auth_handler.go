package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/isdelr/auth-service-be/internal/auth"
	"github.com/isdelr/auth-service-be/internal/services"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles HTTP requests for signup, login and logout.
type AuthHandler struct {
	service  services.AuthServiceProvider
	cookies  auth.CookiePolicy
	validate *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.AuthServiceProvider, cookies auth.CookiePolicy) *AuthHandler {
	v := validator.New()
	// Report field errors under their json names so clients see "password",
	// not "Password".
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &AuthHandler{service: service, cookies: cookies, validate: v}
}

// SignupPayload defines the structure for signup requests.
type SignupPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=2"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Signup handles new user registration. On success the session cookie is set
// and a summary of the created user is returned; the password hash never
// leaves the service.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload SignupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(payload); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": fieldMessages(fieldErrs)})
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	user, token, err := h.service.Signup(r.Context(), payload.Email, payload.Password, payload.Name)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			writeError(w, http.StatusConflict, "User with this email already exists")
			return
		}
		log.Error().Err(err).Str("email", payload.Email).Msg("Signup failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.SetCookie(w, h.cookies.Session(token))
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Signup successful",
		"user":    user.Summary(),
	})
}

// Login handles user authentication. Every credential failure gets the same
// generic response regardless of whether the email exists.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := h.validate.Struct(payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	user, token, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Warn().Str("email", payload.Email).Msg("Failed login attempt")
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Error().Err(err).Str("email", payload.Email).Msg("Login failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.SetCookie(w, h.cookies.Session(token))
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    user.Summary(),
	})
}

// Logout clears the session cookie. It is unconditional: no authentication
// is required and the response is the same whether or not a session existed.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.cookies.Expired())
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// Me returns the account behind the current session cookie.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user id from context")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := h.service.CurrentUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to load current user")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, user.Summary())
}

func fieldMessages(errs validator.ValidationErrors) map[string][]string {
	msgs := make(map[string][]string, len(errs))
	for _, fe := range errs {
		msgs[fe.Field()] = append(msgs[fe.Field()], fieldMessage(fe))
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "email":
		return "Invalid email address"
	case "password":
		return "Password must be at least 8 characters"
	case "name":
		return "Name is required"
	default:
		return "Invalid value"
	}
}
