package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akademika/student-admin/internal/model"
	"github.com/akademika/student-admin/internal/response"
)

type apiEnvelope struct {
	Data struct {
		Student  *model.Student  `json:"student"`
		Students []model.Student `json:"students"`
		Message  string          `json:"message"`
	} `json:"data"`
	Error *struct {
		Code   response.ErrCode  `json:"code"`
		Fields map[string]string `json:"fields"`
	} `json:"error"`
	Metadata struct {
		RequestID string `json:"request_id"`
	} `json:"metadata"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func TestAPIListEmpty(t *testing.T) {
	r, _ := newAPIRig(t)

	w := doJSON(r, http.MethodGet, "/api/v1/students", "")

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.NotNil(t, env.Data.Students)
	assert.Empty(t, env.Data.Students)
	assert.NotEmpty(t, env.Metadata.RequestID)
}

func TestAPICreateAndGet(t *testing.T) {
	r, _ := newAPIRig(t)

	w := doJSON(r, http.MethodPost, "/api/v1/students",
		`{"student_code":"S001","full_name":"Ann","email":"a@x.com","major":"CS"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	require.NotNil(t, env.Data.Student)
	assert.Equal(t, 1, env.Data.Student.ID)
	assert.Equal(t, "S001", env.Data.Student.StudentCode)
	assert.False(t, env.Data.Student.CreatedAt.IsZero())

	w = doJSON(r, http.MethodGet, "/api/v1/students/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	env = decodeEnvelope(t, w.Body.Bytes())
	require.NotNil(t, env.Data.Student)
	assert.Equal(t, "Ann", env.Data.Student.FullName)
}

func TestAPICreateValidationFields(t *testing.T) {
	r, _ := newAPIRig(t)

	w := doJSON(r, http.MethodPost, "/api/v1/students",
		`{"student_code":"S001","full_name":"Ann","email":"nope","major":"CS"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	require.NotNil(t, env.Error)
	assert.Equal(t, response.ErrValidation, env.Error.Code)
	assert.Contains(t, env.Error.Fields, "email")
}

func TestAPICreateDuplicateConflict(t *testing.T) {
	r, store := newAPIRig(t)
	mustSeed(t, store, "S001", "Ann", "a@x.com", "CS")

	w := doJSON(r, http.MethodPost, "/api/v1/students",
		`{"student_code":"S001","full_name":"Bob","email":"b@x.com","major":"Math"}`)

	require.Equal(t, http.StatusConflict, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	require.NotNil(t, env.Error)
	assert.Equal(t, response.ErrConflict, env.Error.Code)
}

func TestAPIGetNotFound(t *testing.T) {
	r, _ := newAPIRig(t)

	w := doJSON(r, http.MethodGet, "/api/v1/students/42", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	require.NotNil(t, env.Error)
	assert.Equal(t, response.ErrNotFound, env.Error.Code)
}

func TestAPIGetBadID(t *testing.T) {
	r, _ := newAPIRig(t)

	w := doJSON(r, http.MethodGet, "/api/v1/students/abc", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	require.NotNil(t, env.Error)
	assert.Equal(t, response.ErrInvalidID, env.Error.Code)
}

func TestAPIUpdatePreservesCode(t *testing.T) {
	r, store := newAPIRig(t)
	mustSeed(t, store, "S001", "Ann", "a@x.com", "CS")

	w := doJSON(r, http.MethodPut, "/api/v1/students/1",
		`{"full_name":"Ann Lee","email":"ann.lee@x.com","major":"Math"}`)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	require.NotNil(t, env.Data.Student)
	assert.Equal(t, "S001", env.Data.Student.StudentCode)
	assert.Equal(t, "Ann Lee", env.Data.Student.FullName)
	assert.Equal(t, 1, env.Data.Student.ID)
}

func TestAPIDelete(t *testing.T) {
	r, store := newAPIRig(t)
	mustSeed(t, store, "S001", "Ann", "a@x.com", "CS")

	w := doJSON(r, http.MethodDelete, "/api/v1/students/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/v1/students/1", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	require.NotNil(t, env.Error)
	assert.Equal(t, response.ErrNotFound, env.Error.Code)
}
