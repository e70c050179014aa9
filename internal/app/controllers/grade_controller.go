package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emurray/registrar/internal/app/services"
)

// GradeController handles the grades page
type GradeController struct {
	gradeService services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService services.GradeService) *GradeController {
	return &GradeController{
		gradeService: gradeService,
	}
}

// ListGrades renders the joined grades listing
func (c *GradeController) ListGrades(ctx *gin.Context) {
	grades, err := c.gradeService.ListGrades(ctx)
	if err != nil {
		renderStoreFailure(ctx, err, "/")
		return
	}

	ctx.HTML(http.StatusOK, "grades.html", gin.H{
		"Grades": grades,
	})
}
