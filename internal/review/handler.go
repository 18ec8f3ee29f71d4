package review

import (
	"net/http"

	"SmartStudentHub/internal/student"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type reviewRequest struct {
	Feedback string `json:"feedback"`
}

func (h *Handler) ListPending(c echo.Context) error {
	items, err := h.service.ListPending(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Approve(c echo.Context) error {
	var req reviewRequest
	_ = c.Bind(&req)

	err := h.service.Approve(c.Request().Context(), c.Param("studentId"), c.Param("certificateId"), req.Feedback)
	if err != nil {
		return c.JSON(reviewErrStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Certificate approved"})
}

func (h *Handler) Reject(c echo.Context) error {
	var req reviewRequest
	_ = c.Bind(&req)

	err := h.service.Reject(c.Request().Context(), c.Param("studentId"), c.Param("certificateId"), req.Feedback)
	if err != nil {
		return c.JSON(reviewErrStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Certificate rejected"})
}

func reviewErrStatus(err error) int {
	switch err {
	case student.ErrNotFound, student.ErrCertificateNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
