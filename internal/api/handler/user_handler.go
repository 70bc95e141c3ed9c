package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uqcareers/jobboard-api/internal/core/ports"
)

// UserHandler serves account administration (super_admin only).
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type userRow struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type updateRoleResponse struct {
	OK bool `json:"ok"`
}

// List returns every account.
//
// @Summary      List user accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userRow
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	users, err := h.userService.List(c.Request().Context(), p)
	if err != nil {
		return err
	}

	rows := make([]userRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, userRow{ID: u.ID, Username: u.Username, Role: string(u.Role)})
	}
	return c.JSON(http.StatusOK, rows)
}

// UpdateRole sets the target account's role.
//
// @Summary      Update a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Target user id"
// @Param        body  body      updateRoleRequest  true  "New role (regular, vip or super_admin)"
// @Success      200   {object}  updateRoleResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/{id}/role [put]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.userService.UpdateRole(c.Request().Context(), p, c.Param("id"), req.Role); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updateRoleResponse{OK: true})
}
