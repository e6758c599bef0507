package model

import "time"

// Student represents a single student row.
//
// ID and CreatedAt are assigned by storage on insert. StudentCode is the
// unique business identifier and is never changed after creation; the update
// path only touches FullName, Email and Major.
type Student struct {
	ID          int       `json:"id"`
	StudentCode string    `json:"student_code"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Major       string    `json:"major"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateStudentRequest is the payload for creating a student. It binds from
// HTML form fields on the page surface and from JSON on the API surface.
type CreateStudentRequest struct {
	StudentCode string `form:"studentCode" json:"student_code" binding:"required,min=2,max=20"`
	FullName    string `form:"fullName" json:"full_name" binding:"required,min=2,max=100"`
	Email       string `form:"email" json:"email" binding:"required,email,max=255"`
	Major       string `form:"major" json:"major" binding:"required,min=2,max=100"`
}

// UpdateStudentRequest is the payload for updating an existing student.
// StudentCode is deliberately absent — it is immutable after creation.
type UpdateStudentRequest struct {
	FullName string `form:"fullName" json:"full_name" binding:"required,min=2,max=100"`
	Email    string `form:"email" json:"email" binding:"required,email,max=255"`
	Major    string `form:"major" json:"major" binding:"required,min=2,max=100"`
}
