package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/user-listing-service/internal/model"
	"github.com/maxviazov/user-listing-service/internal/service"
	"github.com/maxviazov/user-listing-service/pkg/response"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler { return &UserHandler{svc: svc} }

func (h *UserHandler) Register(r gin.IRouter) {
	r.GET("/users", h.list)
}

// list handles GET /users?search=&page=&page_size=.
// Absent or empty numbers fall back to defaults; range checks are the service's job.
func (h *UserHandler) list(c *gin.Context) {
	var ferrs []service.FieldError
	page, fe := intQuery(c, "page", service.DefaultPage)
	if fe != nil {
		ferrs = append(ferrs, *fe)
	}
	pageSize, fe := intQuery(c, "page_size", service.DefaultPageSize)
	if fe != nil {
		ferrs = append(ferrs, *fe)
	}
	if len(ferrs) > 0 {
		response.WriteError(c, service.NewInvalidInputError(ferrs))
		return
	}

	res, err := h.svc.ListUsers(c.Request.Context(), model.ListUsersParams{
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func intQuery(c *gin.Context, name string, def int) (int, *service.FieldError) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &service.FieldError{Field: name, Message: "must be a valid integer"}
	}
	return v, nil
}
