package student

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Certificate review states.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Academic certificate domains.
var Domains = []string{"internship", "skill", "event", "workshop"}

// Profile holds the contact fields and certificate-degree image slots of a
// student. Image fields store hosted media URLs, never file bytes.
type Profile struct {
	ProfileImage       string  `bson:"profile_image,omitempty" json:"profileImage,omitempty"`
	AadharNumber       string  `bson:"aadhar_number,omitempty" json:"aadharNumber,omitempty"`
	MobileNumber       string  `bson:"mobile_number,omitempty" json:"mobileNumber,omitempty"`
	CollegeEmail       string  `bson:"college_email,omitempty" json:"collegeEmail,omitempty"`
	Class10Certificate string  `bson:"class10_certificate,omitempty" json:"class10Certificate,omitempty"`
	Class12Certificate string  `bson:"class12_certificate,omitempty" json:"class12Certificate,omitempty"`
	DiplomaCertificate string  `bson:"diploma_certificate,omitempty" json:"diplomaCertificate,omitempty"`
	BachelorDegree     string  `bson:"bachelor_degree,omitempty" json:"bachelorDegree,omitempty"`
	MasterDegree       string  `bson:"master_degree,omitempty" json:"masterDegree,omitempty"`
	DoctorDegree       string  `bson:"doctor_degree,omitempty" json:"doctorDegree,omitempty"`
	LinkedinProfile    string  `bson:"linkedin_profile,omitempty" json:"linkedinProfile,omitempty"`
	GithubProfile      string  `bson:"github_profile,omitempty" json:"githubProfile,omitempty"`
	CurrentSGPA        float64 `bson:"current_sgpa" json:"currentSGPA"`
	OverallCGPA        float64 `bson:"overall_cgpa" json:"overallCGPA"`
}

type PersonalCertificate struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Image       string             `bson:"image" json:"image"`
	URL         string             `bson:"url,omitempty" json:"url,omitempty"`
	Date        string             `bson:"date" json:"date"`
	Category    string             `bson:"category" json:"category"`
	Issuer      string             `bson:"issuer" json:"issuer"`
	SubmittedAt time.Time          `bson:"submitted_at" json:"submittedAt"`
}

type AcademicCertificate struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Domain           string             `bson:"domain" json:"domain"`
	CertificateName  string             `bson:"certificate_name" json:"certificateName"`
	Image            string             `bson:"image" json:"image"`
	CertificateURL   string             `bson:"certificate_url,omitempty" json:"certificateUrl,omitempty"`
	Date             string             `bson:"date" json:"date"`
	IssuedBy         string             `bson:"issued_by" json:"issuedBy"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	Skills           []string           `bson:"skills" json:"skills"`
	Duration         string             `bson:"duration,omitempty" json:"duration,omitempty"`
	Location         string             `bson:"location,omitempty" json:"location,omitempty"`
	OrganizationType string             `bson:"organization_type,omitempty" json:"organizationType,omitempty"`
	Status           string             `bson:"status" json:"status"`
	Feedback         string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
	SubmittedAt      time.Time          `bson:"submitted_at" json:"submittedAt"`
	ReviewedAt       *time.Time         `bson:"reviewed_at,omitempty" json:"reviewedAt,omitempty"`
}

type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	GithubLink  string             `bson:"github_link" json:"githubLink"`
	DeployLink  string             `bson:"deploy_link,omitempty" json:"deployLink,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}

type Subject struct {
	Name  string  `bson:"name" json:"name"`
	Marks float64 `bson:"marks" json:"marks"`
	Grade string  `bson:"grade" json:"grade"`
}

type SemesterRecord struct {
	Semester int       `bson:"semester" json:"semester"`
	Year     int       `bson:"year" json:"year"`
	SGPA     float64   `bson:"sgpa" json:"sgpa"`
	Subjects []Subject `bson:"subjects" json:"subjects"`
}

// Student is the aggregate root. Certificates, projects and semester marks
// are embedded sub-documents with no identity outside their parent.
type Student struct {
	ID                   primitive.ObjectID    `bson:"_id,omitempty" json:"_id"`
	StudentID            string                `bson:"student_id" json:"studentId"`
	Name                 string                `bson:"name" json:"name"`
	Email                string                `bson:"email" json:"email"`
	Password             string                `bson:"password" json:"-"`
	College              string                `bson:"college" json:"college"`
	Department           string                `bson:"department" json:"department"`
	Year                 int                   `bson:"year" json:"year"`
	Semester             int                   `bson:"semester" json:"semester"`
	RollNumber           string                `bson:"roll_number" json:"rollNumber"`
	Profile              Profile               `bson:"profile" json:"profile"`
	PersonalCertificates []PersonalCertificate `bson:"personal_certificates" json:"personalCertificates"`
	AcademicCertificates []AcademicCertificate `bson:"academic_certificates" json:"academicCertificates"`
	Projects             []Project             `bson:"projects" json:"projects"`
	Skills               map[string]int        `bson:"skills" json:"skills"`
	SemesterMarks        []SemesterRecord      `bson:"semester_marks" json:"semesterMarks"`
	CGPA                 float64               `bson:"cgpa" json:"cgpa"`
	CreatedAt            time.Time             `bson:"created_at" json:"createdAt"`
	UpdatedAt            time.Time             `bson:"updated_at" json:"updatedAt"`
}

// Summary is the projection returned by listing and search endpoints.
type Summary struct {
	StudentID  string  `bson:"student_id" json:"studentId"`
	Name       string  `bson:"name" json:"name"`
	Email      string  `bson:"email" json:"email"`
	College    string  `bson:"college" json:"college"`
	Department string  `bson:"department" json:"department"`
	Year       int     `bson:"year" json:"year"`
	Semester   int     `bson:"semester" json:"semester"`
	RollNumber string  `bson:"roll_number" json:"rollNumber"`
	CGPA       float64 `bson:"cgpa" json:"cgpa"`
	Profile    Profile `bson:"profile" json:"profile"`
}

func ValidDomain(domain string) bool {
	for _, d := range Domains {
		if d == domain {
			return true
		}
	}
	return false
}
