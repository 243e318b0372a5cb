package model

import (
	"strings"
	"time"
)

type Comment struct {
	ID          int64
	RequestID   int64
	AuthorEmail string
	AuthorName  string
	AuthorRole  Role
	Content     string
	Archived    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AuthorRole derives a comment author's role on a request from their email.
// The PL responsible wins over the VP when one person holds both seats.
func AuthorRole(req *PricingRequest, email string) Role {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return RoleCommercial
	}
	if strings.EqualFold(req.PLEmail, email) {
		return RolePL
	}
	if req.VPEmail != nil && strings.EqualFold(*req.VPEmail, email) {
		return RoleVP
	}
	return RoleCommercial
}
