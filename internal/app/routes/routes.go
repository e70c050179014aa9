package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emurray/registrar/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	gradeController *controllers.GradeController,
	lecturerController *controllers.LecturerController,
	dashboardController *controllers.DashboardController,
) {
	// Home navigation page
	router.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "home.html", nil)
	})

	// Student routes
	students := router.Group("/students")
	{
		students.GET("", studentController.ListStudents)
		students.GET("/add", studentController.ShowAddForm)
		students.POST("/add", studentController.CreateStudent)
		students.GET("/edit/:sid", studentController.ShowEditForm)
		students.POST("/edit/:sid", studentController.UpdateStudent)
	}

	// Grades listing
	router.GET("/grades", gradeController.ListGrades)

	// Lecturer routes; deletion goes through the referential-integrity guard
	lecturers := router.Group("/lecturers")
	{
		lecturers.GET("", lecturerController.ListLecturers)
		lecturers.GET("/delete/:lid", lecturerController.DeleteLecturer)
	}

	// Dashboard and exports
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("", dashboardController.ShowDashboard)
		dashboard.GET("/export/:resource", dashboardController.ExportResource)
	}
}
