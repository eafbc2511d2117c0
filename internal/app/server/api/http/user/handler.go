package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"snipmark/internal/domain/session"
	"snipmark/internal/domain/user"
)

type Handler struct {
	service    user.Servicer
	session    session.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, session session.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		session:    session,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
}

// register создает пользователя и сразу выдает сессионный токен, чтобы клиенту
// не нужен был второй запрос на логин.
func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	userID, err := h.service.Register(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailTaken):
			return nil, huma.Error409Conflict("Email already registered")
		case errors.Is(err, user.ErrInvalidInput):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		default:
			return nil, err
		}
	}

	token, err := h.session.Create(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &registerOutput{
		Body: RegisterResponse{ID: userID, Token: token, Status: "Ok"},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) || errors.Is(err, user.ErrInvalidCredentials) {
			return nil, huma.Error401Unauthorized("Invalid credentials")
		}
		return nil, err
	}

	token, err := h.session.Create(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &loginOutput{
		Body: LoginResponse{Token: token, Status: "Ok"},
	}, nil
}
