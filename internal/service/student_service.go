package service

import (
	"context"
	"strings"

	"github.com/akademika/student-admin/internal/model"
)

// StudentStore is the persistence contract the service depends on. The pgx
// repository satisfies it in production; tests use an in-memory fake.
type StudentStore interface {
	ListAll(ctx context.Context) ([]model.Student, error)
	GetByID(ctx context.Context, id int) (*model.Student, error)
	Create(ctx context.Context, s *model.Student) error
	Update(ctx context.Context, s *model.Student) error
	Delete(ctx context.Context, id int) error
}

// StudentService handles student business logic.
type StudentService struct {
	store StudentStore
}

// NewStudentService creates a new StudentService.
func NewStudentService(store StudentStore) *StudentService {
	return &StudentService{store: store}
}

// List retrieves all students, newest first. Returns an empty slice (never
// nil) when the table is empty.
func (s *StudentService) List(ctx context.Context) ([]model.Student, error) {
	students, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []model.Student{}
	}
	return students, nil
}

// GetByID retrieves a student by ID.
func (s *StudentService) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return s.store.GetByID(ctx, id)
}

// Create inserts a new student from the create payload and returns the stored
// record with its storage-assigned id and created_at.
func (s *StudentService) Create(ctx context.Context, req *model.CreateStudentRequest) (*model.Student, error) {
	student := &model.Student{
		StudentCode: strings.TrimSpace(req.StudentCode),
		FullName:    strings.TrimSpace(req.FullName),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Major:       strings.TrimSpace(req.Major),
	}
	if err := s.store.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Update modifies the mutable fields of an existing student. The stored
// student_code is untouched regardless of input.
func (s *StudentService) Update(ctx context.Context, id int, req *model.UpdateStudentRequest) (*model.Student, error) {
	student := &model.Student{
		ID:       id,
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Major:    strings.TrimSpace(req.Major),
	}
	if err := s.store.Update(ctx, student); err != nil {
		return nil, err
	}
	// Re-read so the caller sees the immutable fields too.
	return s.store.GetByID(ctx, id)
}

// Delete removes a student by ID.
func (s *StudentService) Delete(ctx context.Context, id int) error {
	return s.store.Delete(ctx, id)
}
