package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akademika/student-admin/internal/model"
	"github.com/akademika/student-admin/internal/repository"
)

// memStore is an in-memory StudentStore that mirrors the repository's
// contract, including its sentinel errors.
type memStore struct {
	students map[int]model.Student
	nextID   int
}

func newMemStore() *memStore {
	return &memStore{students: make(map[int]model.Student), nextID: 1}
}

func (m *memStore) ListAll(_ context.Context) ([]model.Student, error) {
	var out []model.Student
	for _, s := range m.students {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memStore) GetByID(_ context.Context, id int) (*model.Student, error) {
	s, ok := m.students[id]
	if !ok {
		return nil, repository.ErrStudentNotFound
	}
	return &s, nil
}

func (m *memStore) Create(_ context.Context, s *model.Student) error {
	for _, existing := range m.students {
		if existing.StudentCode == s.StudentCode {
			return repository.ErrDuplicateCode
		}
	}
	s.ID = m.nextID
	s.CreatedAt = time.Now().UTC()
	m.nextID++
	m.students[s.ID] = *s
	return nil
}

func (m *memStore) Update(_ context.Context, s *model.Student) error {
	existing, ok := m.students[s.ID]
	if !ok {
		return repository.ErrStudentNotFound
	}
	existing.FullName = s.FullName
	existing.Email = s.Email
	existing.Major = s.Major
	m.students[s.ID] = existing
	return nil
}

func (m *memStore) Delete(_ context.Context, id int) error {
	if _, ok := m.students[id]; !ok {
		return repository.ErrStudentNotFound
	}
	delete(m.students, id)
	return nil
}

func seed(t *testing.T, svc *StudentService, code, name, email, major string) *model.Student {
	t.Helper()
	s, err := svc.Create(context.Background(), &model.CreateStudentRequest{
		StudentCode: code,
		FullName:    name,
		Email:       email,
		Major:       major,
	})
	require.NoError(t, err)
	return s
}

func TestListEmptyReturnsEmptySlice(t *testing.T) {
	svc := NewStudentService(newMemStore())

	students, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, students)
	assert.Empty(t, students)
}

func TestCreateAssignsIDAndCreatedAt(t *testing.T) {
	svc := NewStudentService(newMemStore())

	s := seed(t, svc, "S001", "Ann", "a@x.com", "CS")

	assert.NotZero(t, s.ID, "storage-assigned id must be reflected back")
	assert.False(t, s.CreatedAt.IsZero(), "storage-assigned created_at must be reflected back")

	students, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "S001", students[0].StudentCode)
	assert.Equal(t, "Ann", students[0].FullName)
	assert.Equal(t, "a@x.com", students[0].Email)
	assert.Equal(t, "CS", students[0].Major)
}

func TestCreateNormalizesInput(t *testing.T) {
	svc := NewStudentService(newMemStore())

	s := seed(t, svc, "  S001 ", "  Ann  ", "  Ann@X.COM ", " CS ")

	assert.Equal(t, "S001", s.StudentCode)
	assert.Equal(t, "Ann", s.FullName)
	assert.Equal(t, "ann@x.com", s.Email)
	assert.Equal(t, "CS", s.Major)
}

func TestCreateDuplicateCode(t *testing.T) {
	svc := NewStudentService(newMemStore())
	seed(t, svc, "S001", "Ann", "a@x.com", "CS")

	_, err := svc.Create(context.Background(), &model.CreateStudentRequest{
		StudentCode: "S001",
		FullName:    "Bob",
		Email:       "b@x.com",
		Major:       "Math",
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateCode)
}

func TestListOrdersByIDDescending(t *testing.T) {
	svc := NewStudentService(newMemStore())
	seed(t, svc, "S001", "Ann", "a@x.com", "CS")
	seed(t, svc, "S002", "Bob", "b@x.com", "Math")
	seed(t, svc, "S003", "Cid", "c@x.com", "Physics")

	students, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 3)
	assert.Equal(t, "S003", students[0].StudentCode, "newest first")
	assert.Equal(t, "S002", students[1].StudentCode)
	assert.Equal(t, "S001", students[2].StudentCode)
}

func TestUpdatePreservesIDAndCode(t *testing.T) {
	svc := NewStudentService(newMemStore())
	created := seed(t, svc, "S001", "Ann", "a@x.com", "CS")

	updated, err := svc.Update(context.Background(), created.ID, &model.UpdateStudentRequest{
		FullName: "Ann Lee",
		Email:    "ann.lee@x.com",
		Major:    "Math",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "S001", updated.StudentCode, "student code is immutable")
	assert.Equal(t, "Ann Lee", updated.FullName)
	assert.Equal(t, "ann.lee@x.com", updated.Email)
	assert.Equal(t, "Math", updated.Major)

	students, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, students, 1, "update must not create a new row")
}

func TestUpdateNonexistent(t *testing.T) {
	svc := NewStudentService(newMemStore())

	_, err := svc.Update(context.Background(), 99, &model.UpdateStudentRequest{
		FullName: "Ghost",
		Email:    "g@x.com",
		Major:    "CS",
	})
	assert.ErrorIs(t, err, repository.ErrStudentNotFound)
}

func TestDeleteNonexistentLeavesSetUnchanged(t *testing.T) {
	svc := NewStudentService(newMemStore())
	seed(t, svc, "S001", "Ann", "a@x.com", "CS")

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, repository.ErrStudentNotFound)

	students, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, students, 1)
}

func TestGetByIDNonexistent(t *testing.T) {
	svc := NewStudentService(newMemStore())

	s, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrStudentNotFound)
	assert.Nil(t, s, "absent result, not a default-valued record")
}
