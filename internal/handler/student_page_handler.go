package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/akademika/student-admin/internal/model"
	"github.com/akademika/student-admin/internal/repository"
	"github.com/akademika/student-admin/internal/response"
	"github.com/akademika/student-admin/internal/service"
	"github.com/akademika/student-admin/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// StudentPageHandler serves the server-rendered HTML surface: a single
// /student endpoint dispatched on the `action` parameter.
//
// GET actions: list (default), new, edit, delete.
// POST actions: insert, update.
//
// Mutations follow PRG: every state change answers with a 302 back to the
// list carrying a `message` or `error` query parameter.
type StudentPageHandler struct {
	studentService *service.StudentService
	log            zerolog.Logger
}

// NewStudentPageHandler creates a new StudentPageHandler.
func NewStudentPageHandler(studentService *service.StudentService, log zerolog.Logger) *StudentPageHandler {
	return &StudentPageHandler{studentService: studentService, log: log}
}

// DispatchGet routes GET /student by its action discriminator.
func (h *StudentPageHandler) DispatchGet(c *gin.Context) {
	switch c.Query("action") {
	case "", "list":
		h.showList(c)
	case "new":
		h.showNewForm(c)
	case "edit":
		h.showEditForm(c)
	case "delete":
		h.deleteStudent(c)
	default:
		h.renderError(c, http.StatusBadRequest, response.ErrInvalidAction)
	}
}

// DispatchPost routes POST /student by its action discriminator.
func (h *StudentPageHandler) DispatchPost(c *gin.Context) {
	switch c.PostForm("action") {
	case "insert":
		h.insertStudent(c)
	case "update":
		h.updateStudent(c)
	default:
		h.renderError(c, http.StatusBadRequest, response.ErrInvalidAction)
	}
}

// showList renders the student table, newest first, with any flash message
// carried over from a preceding redirect.
func (h *StudentPageHandler) showList(c *gin.Context) {
	students, err := h.studentService.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("List students failed")
		h.renderError(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.HTML(http.StatusOK, "students/list", gin.H{
		"Title":    "Students",
		"Students": students,
		"Message":  c.Query("message"),
		"Error":    c.Query("error"),
	})
}

// showNewForm renders the empty add form.
func (h *StudentPageHandler) showNewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "students/form", gin.H{
		"Title": "Add Student",
	})
}

// showEditForm renders the form pre-filled with the requested student.
func (h *StudentPageHandler) showEditForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		response.RedirectError(c, response.ErrInvalidID)
		return
	}

	student, err := h.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			response.RedirectError(c, response.ErrNotFound)
			return
		}
		h.log.Error().Err(err).Int("id", id).Msg("Get student failed")
		response.RedirectError(c, response.ErrInternal)
		return
	}

	c.HTML(http.StatusOK, "students/form", gin.H{
		"Title":   "Edit Student",
		"Student": student,
	})
}

// deleteStudent removes the requested student and redirects to the list.
func (h *StudentPageHandler) deleteStudent(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		response.RedirectError(c, response.ErrInvalidID)
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			response.RedirectError(c, response.ErrNotFound)
			return
		}
		h.log.Error().Err(err).Int("id", id).Msg("Delete student failed")
		response.RedirectError(c, response.ErrInternal)
		return
	}

	response.RedirectMessage(c, "Student deleted successfully.")
}

// insertStudent creates a student from the posted form fields.
func (h *StudentPageHandler) insertStudent(c *gin.Context) {
	var req model.CreateStudentRequest
	if fields := validator.BindForm(c, &req); fields != nil {
		response.RedirectError(c, response.ErrValidation)
		return
	}

	if _, err := h.studentService.Create(c.Request.Context(), &req); err != nil {
		if errors.Is(err, repository.ErrDuplicateCode) {
			response.RedirectError(c, response.ErrConflict)
			return
		}
		h.log.Error().Err(err).Str("student_code", req.StudentCode).Msg("Insert student failed")
		response.RedirectError(c, response.ErrInternal)
		return
	}

	response.RedirectMessage(c, "Student added successfully.")
}

// updateStudent modifies the mutable fields of an existing student. The
// form never carries student_code back; it is immutable after creation.
func (h *StudentPageHandler) updateStudent(c *gin.Context) {
	id, err := strconv.Atoi(c.PostForm("id"))
	if err != nil {
		response.RedirectError(c, response.ErrInvalidID)
		return
	}

	var req model.UpdateStudentRequest
	if fields := validator.BindForm(c, &req); fields != nil {
		response.RedirectError(c, response.ErrValidation)
		return
	}

	if _, err := h.studentService.Update(c.Request.Context(), id, &req); err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			response.RedirectError(c, response.ErrNotFound)
			return
		}
		h.log.Error().Err(err).Int("id", id).Msg("Update student failed")
		response.RedirectError(c, response.ErrInternal)
		return
	}

	response.RedirectMessage(c, "Student updated successfully.")
}

// renderError shows a terminal error page in the shared layout.
func (h *StudentPageHandler) renderError(c *gin.Context, statusCode int, code response.ErrCode) {
	c.HTML(statusCode, "error", gin.H{
		"Title": "Error",
		"Error": response.GetMessage(code),
	})
}
