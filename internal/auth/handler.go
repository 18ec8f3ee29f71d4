package auth

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

func (h *Handler) RegisterStudent(c echo.Context) error {
	var req StudentRegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	st, err := h.service.RegisterStudent(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"message":   "Student registered successfully",
		"studentId": st.StudentID,
	})
}

func (h *Handler) LoginStudent(c echo.Context) error {
	var cred Credential
	if err := c.Bind(&cred); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	st, err := h.service.LoginStudent(c.Request().Context(), cred)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message":   "Login successful",
		"studentId": st.StudentID,
		"name":      st.Name,
	})
}

func (h *Handler) RegisterTeacher(c echo.Context) error {
	var req TeacherRegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	teacher, err := h.service.RegisterTeacher(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"message":   "Teacher registered successfully",
		"teacherId": teacher.TeacherID,
	})
}

func (h *Handler) LoginTeacher(c echo.Context) error {
	var cred Credential
	if err := c.Bind(&cred); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	teacher, err := h.service.LoginTeacher(c.Request().Context(), cred)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message":   "Login successful",
		"teacherId": teacher.TeacherID,
		"name":      teacher.Name,
	})
}

func (h *Handler) RegisterAdmin(c echo.Context) error {
	var req AdminRegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	admin, err := h.service.RegisterAdmin(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"message": "Admin registered successfully",
		"adminId": admin.AdminID,
		"name":    admin.Name,
	})
}

func (h *Handler) LoginAdmin(c echo.Context) error {
	var cred Credential
	if err := c.Bind(&cred); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	admin, err := h.service.LoginAdmin(c.Request().Context(), cred)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Login successful",
		"adminId": admin.AdminID,
		"name":    admin.Name,
	})
}
