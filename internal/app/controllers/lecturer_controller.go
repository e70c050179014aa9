package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emurray/registrar/internal/app/services"
)

// LecturerController handles the lecturer pages
type LecturerController struct {
	lecturerService services.LecturerService
}

// NewLecturerController creates a new LecturerController
func NewLecturerController(lecturerService services.LecturerService) *LecturerController {
	return &LecturerController{
		lecturerService: lecturerService,
	}
}

// ListLecturers renders all lecturers sorted by identifier
func (c *LecturerController) ListLecturers(ctx *gin.Context) {
	lecturers, err := c.lecturerService.GetAllLecturers(ctx)
	if err != nil {
		renderStoreFailure(ctx, err, "/")
		return
	}

	ctx.HTML(http.StatusOK, "lecturers.html", gin.H{
		"Lecturers": lecturers,
	})
}

// DeleteLecturer runs the guarded deletion. A deleted lecturer redirects
// back to the listing; a blocked deletion is a normal page, not an error
// response, because the request itself was processed fine.
func (c *LecturerController) DeleteLecturer(ctx *gin.Context) {
	lecturerID := ctx.Param("lid")

	result, err := c.lecturerService.DeleteLecturer(ctx, lecturerID)
	if err != nil {
		renderStoreFailure(ctx, err, "/lecturers")
		return
	}

	switch result.Status {
	case services.DeleteStatusDeleted:
		ctx.Redirect(http.StatusFound, "/lecturers")

	case services.DeleteStatusBlocked:
		ctx.HTML(http.StatusOK, "lecturer_message.html", gin.H{
			"Title":   "Cannot Delete Lecturer",
			"Message": "Cannot delete lecturer " + result.LecturerID + ": the following modules still reference it.",
			"Modules": result.Modules,
		})

	case services.DeleteStatusNotFound:
		ctx.HTML(http.StatusNotFound, "lecturer_message.html", gin.H{
			"Title":   "Lecturer Not Found",
			"Message": "Lecturer " + result.LecturerID + " not found.",
		})
	}
}
