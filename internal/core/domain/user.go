package domain

import "time"

const (
	RoleStudent   = "student"
	RoleRecruiter = "recruiter"
)

// ValidRole reports whether role is one of the supported account roles.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleRecruiter
}

// Profile holds the mutable, non-credential part of a user account.
type Profile struct {
	Bio                string   `json:"bio,omitempty"`
	Skills             []string `json:"skills,omitempty"`
	ResumeURL          string   `json:"resume_url,omitempty"`
	ResumeOriginalName string   `json:"resume_original_name,omitempty"`
	AvatarURL          string   `json:"avatar_url,omitempty"`
}

// User models an account in the credential store. Email is unique and the
// role is fixed at registration; only Profile fields change afterwards.
type User struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullname"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sanitized returns a copy with the password hash cleared, safe to hand to
// any serialization path regardless of struct tags.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}
