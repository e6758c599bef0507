package repository

import (
	"context"
	"errors"

	"github.com/akademika/student-admin/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrStudentNotFound is returned when no row matches the requested ID,
	// including updates and deletes that affected zero rows.
	ErrStudentNotFound = errors.New("student not found")
	// ErrDuplicateCode is returned when an insert collides with an existing
	// student_code.
	ErrDuplicateCode = errors.New("student with this code already exists")
)

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// ListAll retrieves every student ordered by id descending (newest first).
func (r *StudentRepository) ListAll(ctx context.Context) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, student_code, full_name, email, major, created_at
		 FROM students ORDER BY id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.StudentCode, &s.FullName, &s.Email, &s.Major, &s.CreatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	s := &model.Student{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, student_code, full_name, email, major, created_at
		 FROM students WHERE id = $1`, id,
	).Scan(&s.ID, &s.StudentCode, &s.FullName, &s.Email, &s.Major, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return s, nil
}

// Create inserts a new student and reflects the storage-assigned id and
// created_at back into s.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (student_code, full_name, email, major)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		s.StudentCode, s.FullName, s.Email, s.Major,
	).Scan(&s.ID, &s.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateCode
		}
		return err
	}
	return nil
}

// Update modifies a student's mutable fields. student_code is never updated.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE students SET full_name = $1, email = $2, major = $3 WHERE id = $4`,
		s.FullName, s.Email, s.Major, s.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}
	return nil
}

// Delete removes a student by ID.
func (r *StudentRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}
	return nil
}
