package service

import (
	"strings"

	"github.com/rishi-ann/redlix-portal/internal/util"
)

// AdminService checks the single environment-configured admin credential.
type AdminService struct {
	email        string
	password     string
	passwordHash string
}

func NewAdminService(email, password, passwordHash string) *AdminService {
	return &AdminService{
		email:        email,
		password:     password,
		passwordHash: passwordHash,
	}
}

func (s *AdminService) Configured() bool {
	return s.email != "" && (s.password != "" || s.passwordHash != "")
}

// Login reports whether email and password match the configured admin.
// Both comparisons always run so a wrong email takes as long as a wrong
// password.
func (s *AdminService) Login(email, password string) bool {
	if !s.Configured() {
		return false
	}

	emailOK := util.ConstantTimeEqual(strings.ToLower(strings.TrimSpace(email)), strings.ToLower(s.email))

	var passwordOK bool
	if s.passwordHash != "" {
		passwordOK = util.CheckPasswordHash(password, s.passwordHash)
	} else {
		passwordOK = util.ConstantTimeEqual(password, s.password)
	}

	return emailOK && passwordOK
}
