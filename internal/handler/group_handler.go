package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /groups/{manager|delivery-crew}/users のHTTP（managerのみ）
type GroupHandler struct {
	uc *usecase.GroupUsecase
}

// DI
func NewGroupHandler(uc *usecase.GroupUsecase) *GroupHandler {
	return &GroupHandler{uc: uc}
}

type AddGroupUserRequest struct {
	UserID int64 `json:"user_id"`
}

func (h *GroupHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/groups")
	g.Use(middleware.AuthJWT(cfg))

	g.GET("/manager/users", h.listFor(model.RoleManager))
	g.POST("/manager/users", h.addFor(model.RoleManager))
	g.DELETE("/manager/users/:id", h.removeFor(model.RoleManager))

	g.GET("/delivery-crew/users", h.listFor(model.RoleDeliveryCrew))
	g.POST("/delivery-crew/users", h.addFor(model.RoleDeliveryCrew))
	g.DELETE("/delivery-crew/users/:id", h.removeFor(model.RoleDeliveryCrew))
}

func (h *GroupHandler) listFor(group model.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := getUserIDFromContext(c); !ok {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		}

		out, err := h.uc.ListMembers(c.Request().Context(), getRoleFromContext(c), group)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, out)
	}
}

func (h *GroupHandler) addFor(group model.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := getUserIDFromContext(c); !ok {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		}

		var req AddGroupUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
		}

		out, err := h.uc.AddMember(c.Request().Context(), getRoleFromContext(c), group, req.UserID)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, out)
	}
}

func (h *GroupHandler) removeFor(group model.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := getUserIDFromContext(c); !ok {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		}

		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
		}

		if err := h.uc.RemoveMember(c.Request().Context(), getRoleFromContext(c), group, id); err != nil {
			return writeError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
