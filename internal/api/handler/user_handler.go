package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/disruptive-studio/content-platform/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns users matching the optional query filters, with the assigned
// topic expanded.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        username  query  string  false  "Filter by username"
// @Param        role      query  string  false  "Filter by role"
// @Success      200  {object}  map[string]any
// @Router       /users/list [get]
func (h *UserHandler) List(c echo.Context) error {
	filter := ports.Filter{}
	if username := c.QueryParam("username"); username != "" {
		filter["username"] = username
	}
	if role := c.QueryParam("role"); role != "" {
		filter["role"] = role
	}

	users, err := h.userService.Find(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"data": users})
}

// Detail returns a single user by id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "User id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) Detail(c echo.Context) error {
	user, err := h.userService.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"data": user})
}
