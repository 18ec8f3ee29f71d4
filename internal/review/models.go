package review

import "time"

// PendingCertificate flattens one pending academic certificate with its
// owning student's identity for the cross-student review queue.
type PendingCertificate struct {
	StudentID        string    `json:"studentId"`
	StudentName      string    `json:"studentName"`
	CertificateID    string    `json:"certificateId"`
	Domain           string    `json:"domain"`
	CertificateName  string    `json:"certificateName"`
	Image            string    `json:"image"`
	CertificateURL   string    `json:"certificateUrl"`
	Date             string    `json:"date"`
	IssuedBy         string    `json:"issuedBy"`
	Description      string    `json:"description"`
	Skills           []string  `json:"skills"`
	Duration         string    `json:"duration"`
	Location         string    `json:"location"`
	OrganizationType string    `json:"organizationType"`
	SubmittedAt      time.Time `json:"submittedAt"`
}
