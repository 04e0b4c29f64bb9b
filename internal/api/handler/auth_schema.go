package handler

import "github.com/talentbridge/job-portal/internal/core/domain"

// messageResponse is the minimal success envelope.
type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type registerRequest struct {
	FullName    string `json:"fullname"     validate:"required"`
	Email       string `json:"email"        validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Password    string `json:"password"     validate:"required,min=6"`
	Role        string `json:"role"         validate:"required,oneof=student recruiter"`
	AvatarURL   string `json:"avatar_url"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=student recruiter"`
}

type updateProfileRequest struct {
	FullName           string   `json:"fullname"`
	Email              string   `json:"email" validate:"omitempty,email"`
	PhoneNumber        string   `json:"phone_number"`
	Bio                string   `json:"bio"`
	Skills             []string `json:"skills"`
	ResumeURL          string   `json:"resume_url"`
	ResumeOriginalName string   `json:"resume_original_name"`
}

// userResponse carries the sanitized user view: the password hash is cleared
// by the service and additionally hidden by the domain struct's json tags.
type userResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *domain.User `json:"user,omitempty"`
}
