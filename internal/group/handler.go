package group

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

type groupRequest struct {
	Name       string   `json:"name" validate:"required"`
	College    string   `json:"college" validate:"required"`
	Department string   `json:"department" validate:"required"`
	Teacher    string   `json:"teacher" validate:"required"`
	Students   []string `json:"students"`
	CreatedBy  string   `json:"createdBy" validate:"required"`
}

func (h *Handler) CreateGroup(c echo.Context) error {
	var req groupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	g := &Group{
		Name:       req.Name,
		College:    req.College,
		Department: req.Department,
		Teacher:    req.Teacher,
		Students:   req.Students,
		CreatedBy:  req.CreatedBy,
	}
	created, err := h.service.CreateGroup(c.Request().Context(), g)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"message": "Group created", "group": created})
}

func (h *Handler) UpdateGroup(c echo.Context) error {
	var req groupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	g := &Group{
		Name:       req.Name,
		College:    req.College,
		Department: req.Department,
		Teacher:    req.Teacher,
		Students:   req.Students,
	}
	updated, err := h.service.UpdateGroup(c.Request().Context(), c.Param("groupId"), g)
	if err != nil {
		return c.JSON(groupErrStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"message": "Group updated", "group": updated})
}

func (h *Handler) GroupsForCreator(c echo.Context) error {
	groups, err := h.service.GroupsForCreator(c.Request().Context(), c.Param("adminId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, groups)
}

func (h *Handler) GroupsForTeacher(c echo.Context) error {
	groups, err := h.service.GroupsForTeacher(c.Request().Context(), c.Param("teacherId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, groups)
}

func (h *Handler) SendMessage(c echo.Context) error {
	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	m, err := h.service.SendMessage(c.Request().Context(), req)
	if err != nil {
		return c.JSON(groupErrStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"message": "Message sent", "sentTo": len(m.Recipients)})
}

func (h *Handler) MessagesForStudent(c echo.Context) error {
	messages, err := h.service.MessagesForStudent(c.Request().Context(), c.Param("studentId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, messages)
}

func (h *Handler) MarkRead(c echo.Context) error {
	err := h.service.MarkRead(c.Request().Context(), c.Param("messageId"), c.Param("studentId"))
	if err != nil {
		return c.JSON(groupErrStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Message marked as read"})
}

func (h *Handler) UnreadCount(c echo.Context) error {
	count, err := h.service.UnreadCount(c.Request().Context(), c.Param("studentId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]int64{"unreadCount": count})
}

func groupErrStatus(err error) int {
	switch err {
	case ErrGroupNotFound, ErrMessageNotFound, ErrRecipientNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
