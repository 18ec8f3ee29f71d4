package group

import (
	"context"
	"errors"
	"fmt"
	"html"
	"time"

	"SmartStudentHub/internal/config"
	"SmartStudentHub/internal/student"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var ErrInvalidSenderType = errors.New("Sender must be a teacher or admin")

type Service struct {
	groups   GroupRepository
	messages MessageRepository
	students student.Repository
	email    *config.EmailService
	logger   *zap.Logger
}

func NewService(groups GroupRepository, messages MessageRepository, students student.Repository, email *config.EmailService, logger *zap.Logger) *Service {
	return &Service{
		groups:   groups,
		messages: messages,
		students: students,
		email:    email,
		logger:   logger,
	}
}

func (s *Service) CreateGroup(ctx context.Context, g *Group) (*Group, error) {
	if g.Students == nil {
		g.Students = []string{}
	}
	if err := s.groups.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Service) UpdateGroup(ctx context.Context, groupID string, g *Group) (*Group, error) {
	id, err := primitive.ObjectIDFromHex(groupID)
	if err != nil {
		return nil, ErrGroupNotFound
	}
	if err := s.groups.Update(ctx, id, g); err != nil {
		return nil, err
	}
	return s.groups.FindByID(ctx, id)
}

func (s *Service) GroupsForTeacher(ctx context.Context, teacherID string) ([]*Group, error) {
	return s.groups.FindByTeacher(ctx, teacherID)
}

func (s *Service) GroupsForCreator(ctx context.Context, adminID string) ([]*Group, error) {
	return s.groups.FindByCreator(ctx, adminID)
}

type SendMessageRequest struct {
	SenderID   string `json:"senderId" validate:"required"`
	SenderName string `json:"senderName" validate:"required"`
	SenderType string `json:"senderType" validate:"required,oneof=teacher admin"`
	GroupID    string `json:"groupId" validate:"required"`
	Subject    string `json:"subject" validate:"required"`
	Message    string `json:"message" validate:"required"`
}

// SendMessage materializes one Message with a recipient snapshot per current
// group member. Group membership changes after the send do not retroactively
// affect the message.
func (s *Service) SendMessage(ctx context.Context, req SendMessageRequest) (*Message, error) {
	if req.SenderType != "teacher" && req.SenderType != "admin" {
		return nil, ErrInvalidSenderType
	}

	groupID, err := primitive.ObjectIDFromHex(req.GroupID)
	if err != nil {
		return nil, ErrGroupNotFound
	}
	g, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}

	recipients := make([]Recipient, 0, len(g.Students))
	emails := make(map[string]string)
	for _, studentID := range g.Students {
		name := ""
		if st, err := s.students.FindByStudentID(ctx, studentID); err == nil && st != nil {
			name = st.Name
			emails[studentID] = st.Email
		}
		recipients = append(recipients, Recipient{
			StudentID:   studentID,
			StudentName: name,
			IsRead:      false,
		})
	}

	m := &Message{
		SenderID:   req.SenderID,
		SenderName: req.SenderName,
		SenderType: req.SenderType,
		Recipients: recipients,
		Subject:    req.Subject,
		Message:    req.Message,
		GroupID:    req.GroupID,
		GroupName:  g.Name,
	}
	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}

	s.notifyRecipients(ctx, m, emails)
	return m, nil
}

// notifyRecipients sends best-effort email copies; delivery failures are
// logged and never fail the broadcast.
func (s *Service) notifyRecipients(ctx context.Context, m *Message, emails map[string]string) {
	if s.email == nil || !s.email.Enabled() {
		return
	}
	body := fmt.Sprintf("<p>%s</p><p>— %s</p>", html.EscapeString(m.Message), html.EscapeString(m.SenderName))
	for studentID, address := range emails {
		if address == "" {
			continue
		}
		if err := s.email.SendEmail(ctx, address, m.Subject, body); err != nil {
			s.logger.Warn("Failed to email message copy",
				zap.String("studentId", studentID), zap.Error(err))
		}
	}
}

func (s *Service) MessagesForStudent(ctx context.Context, studentID string) ([]*Message, error) {
	return s.messages.FindByRecipient(ctx, studentID)
}

func (s *Service) MarkRead(ctx context.Context, messageID, studentID string) error {
	id, err := primitive.ObjectIDFromHex(messageID)
	if err != nil {
		return ErrMessageNotFound
	}
	return s.messages.MarkRead(ctx, id, studentID, time.Now())
}

func (s *Service) UnreadCount(ctx context.Context, studentID string) (int64, error) {
	return s.messages.CountUnread(ctx, studentID)
}
