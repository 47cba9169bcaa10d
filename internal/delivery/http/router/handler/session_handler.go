package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler exposes the resolver state and role switching.
type SessionHandler struct {
	resolver usecase.ResolverUsecase
	uc       usecase.UserUsecase
	logger   *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(resolver usecase.ResolverUsecase, uc usecase.UserUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		resolver: resolver,
		uc:       uc,
		logger:   logger,
	}
}

// resolutionDTO is the wire form of a resolution snapshot.
type resolutionDTO struct {
	State      entity.ResolutionState `json:"state"`
	Profile    *entity.Profile        `json:"profile,omitempty"`
	ActiveRole entity.Role            `json:"activeRole,omitempty"`
	Degraded   bool                   `json:"degraded"`
	Error      string                 `json:"error,omitempty"`
}

func toResolutionDTO(res entity.Resolution) resolutionDTO {
	dto := resolutionDTO{
		State:      res.State,
		Profile:    res.Profile,
		ActiveRole: res.ActiveRole,
		Degraded:   res.Degraded,
	}
	if res.Err != nil {
		dto.Error = res.Err.Error()
	}

	return dto
}

// GetSession returns the current resolution snapshot.
func (h *SessionHandler) GetSession(c echo.Context) error {
	return response.Success(c, http.StatusOK, toResolutionDTO(h.resolver.Current()), "Session state retrieved")
}

// setActiveRoleRequest is the payload for switching the transient UI role.
type setActiveRoleRequest struct {
	Role entity.Role `json:"role" validate:"required,oneof=buyer seller supplier"`
}

// SetActiveRole switches the transient role selection. The selected role may
// be one the profile does not enable yet; the response carries the profile so
// the client can redirect to onboarding in that case.
func (h *SessionHandler) SetActiveRole(c echo.Context) error {
	var req setActiveRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.resolver.SetActiveRole(req.Role); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toResolutionDTO(h.resolver.Current()), "Active role switched")
}

// ActivateRole enables an additional role on the profile and creates the
// vendor profile backing it.
func (h *SessionHandler) ActivateRole(c echo.Context) error {
	identityID, ok := c.Get(middleware.KeyIdentityID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	var input *usecase.ActivateRoleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role activation input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	profile, err := h.uc.ActivateRole(c.Request().Context(), identityID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Role activated")
}
