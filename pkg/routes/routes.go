package pkg

import (
	"context"
	"net/http"
	"os"

	"SmartStudentHub/internal/auth"
	"SmartStudentHub/internal/college"
	"SmartStudentHub/internal/config"
	"SmartStudentHub/internal/directory"
	"SmartStudentHub/internal/group"
	"SmartStudentHub/internal/review"
	"SmartStudentHub/internal/student"
	"SmartStudentHub/pkg/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

var HubModules = fx.Module("hub",
	fx.Provide(
		config.NewLogger,
		config.NewMongoDBConfig,
		config.NewMongoDBClient,
		config.NewCloudinaryConfig,
		config.NewMediaService,
		config.NewResendConfig,
		config.NewEmailService,
		student.NewRepository,
		student.NewService,
		student.NewHandler,
		auth.NewTeacherRepository,
		auth.NewAdminRepository,
		auth.NewService,
		auth.NewHandler,
		college.NewRepository,
		college.NewService,
		college.NewHandler,
		review.NewService,
		review.NewHandler,
		group.NewGroupRepository,
		group.NewMessageRepository,
		group.NewService,
		group.NewHandler,
		directory.NewService,
		directory.NewHandler,
		NewEchoServer,
	),
	fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: logger}
	}),
	fx.Invoke(RegisterRoutes),
)

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func NewEchoServer(lc fx.Lifecycle, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &Validator{validate: validator.New()}
	middleware.SetupMiddleware(e, logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Server starting", zap.String("port", port))
			go func() {
				if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
					logger.Fatal("Failed to start the server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down the server ...")
			return e.Shutdown(ctx)
		},
	})
	return e
}

func RegisterRoutes(
	e *echo.Echo,
	authHandler *auth.Handler,
	studentHandler *student.Handler,
	collegeHandler *college.Handler,
	reviewHandler *review.Handler,
	groupHandler *group.Handler,
	directoryHandler *directory.Handler,
) {
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Smart Student Hub Dashboard - Please use the frontend application")
	})
	e.GET("/api/test", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Backend connected successfully!"})
	})

	// Auth
	e.POST("/api/register", authHandler.RegisterStudent)
	e.POST("/api/login", authHandler.LoginStudent)
	e.POST("/api/teacher/register", authHandler.RegisterTeacher)
	e.POST("/api/teacher/login", authHandler.LoginTeacher)
	e.POST("/api/admin/register", authHandler.RegisterAdmin)
	e.POST("/api/admin/login", authHandler.LoginAdmin)

	// Colleges
	e.GET("/api/colleges", collegeHandler.List)

	// Student aggregate
	e.GET("/api/students/:studentId", studentHandler.GetStudent)
	e.GET("/api/profile/:studentId", studentHandler.GetProfile)
	e.PUT("/api/profile/:studentId", studentHandler.UpdateProfile)

	e.GET("/api/certificates/:studentId", studentHandler.ListPersonalCertificates)
	e.POST("/api/certificates", studentHandler.AddPersonalCertificate)
	e.DELETE("/api/certificates/:studentId/:certificateId", studentHandler.DeletePersonalCertificate)

	e.GET("/api/academic-certificates/:studentId", studentHandler.ListAcademicCertificates)
	e.POST("/api/academic-certificates", studentHandler.AddAcademicCertificate)
	e.DELETE("/api/academic-certificates/:studentId/:certificateId", studentHandler.DeleteAcademicCertificate)

	e.GET("/api/projects/:studentId", studentHandler.ListProjects)
	e.POST("/api/projects", studentHandler.AddProject)
	e.DELETE("/api/projects/:studentId/:projectId", studentHandler.DeleteProject)

	// Semester marks
	e.GET("/api/students/:studentId/marks", studentHandler.GetMarks)
	e.POST("/api/teacher/marks/:studentId", studentHandler.RecordMarks)
	e.PUT("/api/teacher/marks/:studentId", studentHandler.UpdateMarks)

	// Review workflow
	e.GET("/api/review/academic-certificates", reviewHandler.ListPending)
	e.POST("/api/review/academic-certificates/:studentId/:certificateId/approve", reviewHandler.Approve)
	e.POST("/api/review/academic-certificates/:studentId/:certificateId/reject", reviewHandler.Reject)

	// Groups & messaging
	e.POST("/api/groups", groupHandler.CreateGroup)
	e.GET("/api/groups/:adminId", groupHandler.GroupsForCreator)
	e.PUT("/api/groups/:groupId", groupHandler.UpdateGroup)
	e.GET("/api/teacher/groups/:teacherId", groupHandler.GroupsForTeacher)
	e.POST("/api/messages/send", groupHandler.SendMessage)
	e.GET("/api/messages/student/:studentId", groupHandler.MessagesForStudent)
	e.PUT("/api/messages/:messageId/read/:studentId", groupHandler.MarkRead)
	e.GET("/api/messages/unread-count/:studentId", groupHandler.UnreadCount)

	// Directory
	e.GET("/api/search/students", directoryHandler.Search)
	e.GET("/api/admin/students", directoryHandler.ListStudents)
	e.GET("/api/admin/teachers", directoryHandler.ListTeachers)
}
