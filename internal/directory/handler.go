package directory

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Search(c echo.Context) error {
	results, err := h.service.Search(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, results)
}

func (h *Handler) ListStudents(c echo.Context) error {
	students, err := h.service.ListStudents(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, students)
}

func (h *Handler) ListTeachers(c echo.Context) error {
	teachers, err := h.service.ListTeachers(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, teachers)
}
