package handler

import (
	"errors"
	"strings"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"
	ucauth "career-compass/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

type registerRequest struct {
	Name      string `json:"name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type googleAuthRequest struct {
	Credential string `json:"credential"`
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/auth/google", h.GoogleAuth)
	r.Post("/auth/refresh", h.Refresh)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Name:      req.Name,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Password2: req.Password2,
	})
	if err != nil {
		var vErr *ucauth.ValidationError
		if errors.As(err, &vErr) {
			return middleware.NewFieldError(fiber.StatusBadRequest, vErr.Fields)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.Message(c, fiber.StatusCreated, "User registered successfully")
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Username and password are required", nil)
	}

	res, err := h.uc.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ucauth.ErrInvalidCredentials) {
			return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid username or password", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.JSON(c, fiber.StatusOK, dto.LoginResponse{
		Access:   res.Tokens.Access,
		Refresh:  res.Tokens.Refresh,
		Username: res.User.Username,
		Email:    res.User.Email,
		Name:     res.User.Name,
	})
}

func (h *AuthHandler) GoogleAuth(c fiber.Ctx) error {
	var req googleAuthRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}
	if strings.TrimSpace(req.Credential) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "No credential provided", nil)
	}

	res, isNew, err := h.uc.GoogleLogin(c.Context(), req.Credential)
	if err != nil {
		if errors.Is(err, ucauth.ErrInvalidToken) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid identity token", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.JSON(c, fiber.StatusOK, dto.GoogleAuthResponse{
		Access:    res.Tokens.Access,
		Refresh:   res.Tokens.Refresh,
		Email:     res.User.Email,
		Name:      res.User.Name,
		IsNewUser: isNew,
	})
}

func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	tok, ok := bearerFromAuthorizationHeader(c.Get("Authorization"))
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	pair, err := h.uc.Refresh(c.Context(), tok)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRefreshTokenExpired):
			return middleware.NewAppError(fiber.StatusUnauthorized, "Refresh token expired", err)
		case errors.Is(err, usecase.ErrInvalidRefreshToken), errors.Is(err, usecase.ErrUnauthorized):
			return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid refresh token", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
		}
	}

	return response.JSON(c, fiber.StatusOK, dto.RefreshResponse{Access: pair.Access, Refresh: pair.Refresh})
}

func bearerFromAuthorizationHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	if tok == "" {
		return "", false
	}
	return tok, true
}
