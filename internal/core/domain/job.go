package domain

import "time"

// Job is a posting created by a recruiter against one of their companies.
type Job struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Requirements    []string  `json:"requirements"`
	Salary          int64     `json:"salary"`
	ExperienceLevel int       `json:"experience_level"`
	Location        string    `json:"location"`
	JobType         string    `json:"job_type"`
	Positions       int       `json:"positions"`
	CompanyID       string    `json:"company_id"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
}
