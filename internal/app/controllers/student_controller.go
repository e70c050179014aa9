package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emurray/registrar/internal/app/models"
	"github.com/emurray/registrar/internal/app/services"
	"github.com/emurray/registrar/internal/pkg/apperrors"
	"github.com/emurray/registrar/internal/pkg/validation"
)

// StudentController handles the student pages
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// ListStudents renders the students listing, optionally filtered by the
// search query parameter
func (c *StudentController) ListStudents(ctx *gin.Context) {
	search := ctx.Query("search")

	students, err := c.studentService.ListStudents(ctx, search)
	if err != nil {
		renderStoreFailure(ctx, err, "/")
		return
	}

	ctx.HTML(http.StatusOK, "students.html", gin.H{
		"Students": students,
		"Search":   search,
	})
}

// ShowAddForm renders an empty create form
func (c *StudentController) ShowAddForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "student_add.html", gin.H{
		"Student": &models.Student{},
	})
}

// CreateStudent handles the create form submission. Invalid input
// re-renders the form with every violation and the submitted values
// preserved; a taken identifier re-renders with a conflict message.
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	student := &models.Student{
		SID:  ctx.PostForm("sid"),
		Name: ctx.PostForm("name"),
	}

	var formErrors []string
	ageStr := ctx.PostForm("age")
	age, err := strconv.Atoi(ageStr)
	if err != nil {
		formErrors = append(formErrors, "Age must be a whole number")
	}
	student.Age = age

	if err := c.studentService.CreateStudent(ctx, student); err != nil {
		var fieldErrors validation.FieldErrors
		switch {
		case errors.As(err, &fieldErrors):
			formErrors = append(formErrors, fieldErrors...)
			ctx.HTML(http.StatusBadRequest, "student_add.html", gin.H{
				"Student": student,
				"Errors":  formErrors,
			})
		case errors.Is(err, apperrors.ErrStudentIDAlreadyExists):
			formErrors = append(formErrors, "A student with ID "+student.SID+" already exists")
			ctx.HTML(http.StatusConflict, "student_add.html", gin.H{
				"Student": student,
				"Errors":  formErrors,
			})
		default:
			renderStoreFailure(ctx, err, "/students")
		}
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/students")
}

// ShowEditForm renders the edit form for an existing student
func (c *StudentController) ShowEditForm(ctx *gin.Context) {
	sid := ctx.Param("sid")

	student, err := c.studentService.GetStudentBySID(ctx, sid)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			renderError(ctx, http.StatusNotFound, "Not Found",
				"Student "+sid+" not found.", "/students", "Back to Students Page")
			return
		}
		renderStoreFailure(ctx, err, "/students")
		return
	}

	ctx.HTML(http.StatusOK, "student_edit.html", gin.H{
		"Student": student,
	})
}

// UpdateStudent handles the edit form submission. The identifier comes
// from the path and cannot be changed.
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	student := &models.Student{
		SID:  ctx.Param("sid"),
		Name: ctx.PostForm("name"),
	}

	var formErrors []string
	age, err := strconv.Atoi(ctx.PostForm("age"))
	if err != nil {
		formErrors = append(formErrors, "Age must be a whole number")
	}
	student.Age = age

	if err := c.studentService.UpdateStudent(ctx, student); err != nil {
		var fieldErrors validation.FieldErrors
		switch {
		case errors.As(err, &fieldErrors):
			formErrors = append(formErrors, fieldErrors...)
			ctx.HTML(http.StatusBadRequest, "student_edit.html", gin.H{
				"Student": student,
				"Errors":  formErrors,
			})
		case errors.Is(err, apperrors.ErrStudentNotFound):
			renderError(ctx, http.StatusNotFound, "Not Found",
				"Student "+student.SID+" not found.", "/students", "Back to Students Page")
		default:
			renderStoreFailure(ctx, err, "/students")
		}
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/students")
}
