package auth

import (
	"math/rand"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const idCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hashed), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func randomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = idCharset[rand.Intn(len(idCharset))]
	}
	return string(b)
}

// collegeInitials derives the uppercase initials of each word in the college
// name, e.g. "X College" -> "XC".
func collegeInitials(college string) string {
	var initials strings.Builder
	for _, word := range strings.Fields(college) {
		initials.WriteRune(unicode.ToUpper([]rune(word)[0]))
	}
	return initials.String()
}

// GenerateStudentID produces the opaque identifier issued once at
// registration: college initials followed by 6 random characters.
func GenerateStudentID(college string) string {
	return collegeInitials(college) + randomString(6)
}

func GenerateTeacherID(college string) string {
	return "T" + collegeInitials(college) + randomString(6)
}

func GenerateAdminID() string {
	return "ADM" + randomString(8)
}

