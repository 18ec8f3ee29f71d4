package student

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"SmartStudentHub/internal/config"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Handler struct {
	service  *Service
	uploader config.MediaUploader
	logger   *zap.Logger
}

func NewHandler(service *Service, uploader config.MediaUploader, logger *zap.Logger) *Handler {
	return &Handler{service: service, uploader: uploader, logger: logger}
}

// profileTextFields maps request field names to profile document fields.
var profileTextFields = map[string]string{
	"aadharNumber":    "aadhar_number",
	"mobileNumber":    "mobile_number",
	"collegeEmail":    "college_email",
	"linkedinProfile": "linkedin_profile",
	"githubProfile":   "github_profile",
}

// profileFileFields maps upload slots to profile document fields.
var profileFileFields = map[string]string{
	"profileImage":       "profile_image",
	"class10Certificate": "class10_certificate",
	"class12Certificate": "class12_certificate",
	"diplomaCertificate": "diploma_certificate",
	"bachelorDegree":     "bachelor_degree",
	"masterDegree":       "master_degree",
	"doctorDegree":       "doctor_degree",
}

func errStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrCertificateNotFound),
		errors.Is(err, ErrProjectNotFound), errors.Is(err, ErrSemesterNotFound):
		return http.StatusNotFound
	case errors.Is(err, config.ErrMediaNotConfigured), errors.Is(err, config.ErrUploadFailed):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func (h *Handler) GetStudent(c echo.Context) error {
	st, err := h.service.GetStudent(c.Request().Context(), c.Param("studentId"))
	if err != nil {
		return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, st)
}

func (h *Handler) GetProfile(c echo.Context) error {
	profile, err := h.service.GetProfile(c.Request().Context(), c.Param("studentId"))
	if err != nil {
		return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile performs a partial profile update. Text fields overwrite only
// when present in the form; file slots are replaced only when a new file (or a
// non-empty URL string) is supplied.
func (h *Handler) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()
	params, err := c.FormParams()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	fields := make(map[string]string)
	for name, docField := range profileTextFields {
		if _, ok := params[name]; ok {
			fields[docField] = params.Get(name)
		}
	}
	for name, docField := range profileFileFields {
		file, ferr := c.FormFile(name)
		if ferr == nil && file != nil {
			url, uerr := h.uploadFile(ctx, file)
			if uerr != nil {
				h.logger.Error("File upload failed", zap.String("field", name), zap.Error(uerr))
				return c.JSON(errStatus(uerr), map[string]string{"error": uerr.Error()})
			}
			fields[docField] = url
		} else if v := params.Get(name); v != "" {
			fields[docField] = v
		}
	}

	profile, err := h.service.UpdateProfile(ctx, c.Param("studentId"), fields)
	if err != nil {
		return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"message": "Profile updated", "profile": profile})
}

func (h *Handler) ListPersonalCertificates(c echo.Context) error {
	certs, err := h.service.ListPersonalCertificates(c.Request().Context(), c.Param("studentId"))
	if err != nil {
		return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, certs)
}

func (h *Handler) AddPersonalCertificate(c echo.Context) error {
	ctx := c.Request().Context()

	image, err := h.resolveImage(c)
	if err != nil {
		return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
	}

	cert := &PersonalCertificate{
		Name:     c.FormValue("name"),
		Image:    image,
		URL:      c.FormValue("url"),
		Date:     c.FormValue("date"),
		Category: c.FormValue("category"),
		Issuer:   c.FormValue("issuer"),
	}

	created, err := h.service.AddPersonalCertificate(ctx, c.FormValue("studentId"), cert)
	if err != nil {
		return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"message": "Certificate added", "certificate": created})
}

func (h *Handler) DeletePersonalCertificate(c echo.Context) error {
	err := h.service.DeletePersonalCertificate(c.Request().Context(), c.Param("studentId"), c.Param("certificateId"))
	if err != nil {
		return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Certificate deleted"})
}

func (h *Handler) ListAcademicCertificates(c echo.Context) error {
	certs, err := h.service.ListAcademicCertificates(c.Request().Context(), c.Param("studentId"))
	if err != nil {
		return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, certs)
}

func (h *Handler) AddAcademicCertificate(c echo.Context) error {
	ctx := c.Request().Context()

	image, err := h.resolveImage(c)
	if err != nil {
		return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
	}

	cert := &AcademicCertificate{
		Domain:           c.FormValue("domain"),
		CertificateName:  c.FormValue("certificateName"),
		Image:            image,
		CertificateURL:   c.FormValue("certificateUrl"),
		Date:             c.FormValue("date"),
		IssuedBy:         c.FormValue("issuedBy"),
		Description:      c.FormValue("description"),
		Skills:           h.service.ParseSkills(c.FormValue("skills")),
		Duration:         c.FormValue("duration"),
		Location:         c.FormValue("location"),
		OrganizationType: c.FormValue("organizationType"),
	}

	created, err := h.service.AddAcademicCertificate(ctx, c.FormValue("studentId"), cert)
	if err != nil {
		return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"message": "Certificate submitted", "certificate": created})
}

func (h *Handler) DeleteAcademicCertificate(c echo.Context) error {
	err := h.service.DeleteAcademicCertificate(c.Request().Context(), c.Param("studentId"), c.Param("certificateId"))
	if err != nil {
		return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Certificate deleted"})
}

type projectRequest struct {
	StudentID   string `json:"studentId" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	GithubLink  string `json:"githubLink" validate:"required"`
	DeployLink  string `json:"deployLink"`
}

func (h *Handler) ListProjects(c echo.Context) error {
	projects, err := h.service.ListProjects(c.Request().Context(), c.Param("studentId"))
	if err != nil {
		return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, projects)
}

func (h *Handler) AddProject(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	project := &Project{
		Title:       req.Title,
		Description: req.Description,
		GithubLink:  req.GithubLink,
		DeployLink:  req.DeployLink,
	}
	created, err := h.service.AddProject(c.Request().Context(), req.StudentID, project)
	if err != nil {
		return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"message": "Project added", "project": created})
}

func (h *Handler) DeleteProject(c echo.Context) error {
	err := h.service.DeleteProject(c.Request().Context(), c.Param("studentId"), c.Param("projectId"))
	if err != nil {
		return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Project deleted"})
}

type marksRequest struct {
	Semester int       `json:"semester" validate:"required,min=1"`
	Year     int       `json:"year" validate:"required"`
	SGPA     float64   `json:"sgpa" validate:"required,min=0,max=10"`
	Subjects []Subject `json:"subjects"`
}

func (h *Handler) GetMarks(c echo.Context) error {
	st, err := h.service.GetStudent(c.Request().Context(), c.Param("studentId"))
	if err != nil {
		return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
	}
	marks := st.SemesterMarks
	if marks == nil {
		marks = []SemesterRecord{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"semesterMarks": marks, "cgpa": st.CGPA})
}

func (h *Handler) RecordMarks(c echo.Context) error {
	record, err := h.bindMarks(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	st, err := h.service.RecordSemesterMarks(c.Request().Context(), c.Param("studentId"), record)
	if err != nil {
		return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":       "Marks recorded",
		"semesterMarks": st.SemesterMarks,
		"cgpa":          st.CGPA,
	})
}

func (h *Handler) UpdateMarks(c echo.Context) error {
	record, err := h.bindMarks(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	st, err := h.service.UpdateSemesterMarks(c.Request().Context(), c.Param("studentId"), record)
	if err != nil {
		return c.JSON(errStatus(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":       "Marks updated",
		"semesterMarks": st.SemesterMarks,
		"cgpa":          st.CGPA,
	})
}

func (h *Handler) bindMarks(c echo.Context) (SemesterRecord, error) {
	var req marksRequest
	if err := c.Bind(&req); err != nil {
		return SemesterRecord{}, errors.New("Invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return SemesterRecord{}, err
	}
	subjects := req.Subjects
	if subjects == nil {
		subjects = []Subject{}
	}
	return SemesterRecord{
		Semester: req.Semester,
		Year:     req.Year,
		SGPA:     req.SGPA,
		Subjects: subjects,
	}, nil
}

// resolveImage prefers an uploaded file, falling back to an image URL passed
// in the request body.
func (h *Handler) resolveImage(c echo.Context) (string, error) {
	file, err := c.FormFile("image")
	if err == nil && file != nil {
		return h.uploadFile(c.Request().Context(), file)
	}
	return c.FormValue("image"), nil
}

// uploadFile hands the file to the media service. Upstream failures surface as
// ErrUploadFailed so they map to a 500, not a client error.
func (h *Handler) uploadFile(ctx context.Context, header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	url, err := h.uploader.Upload(ctx, src, header.Filename)
	if err != nil {
		if errors.Is(err, config.ErrMediaNotConfigured) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", config.ErrUploadFailed, err)
	}
	return url, nil
}
