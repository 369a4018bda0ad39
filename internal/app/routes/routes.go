package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/okandemir/schoolhub/internal/app/controllers"
	"github.com/okandemir/schoolhub/internal/app/models"
	"github.com/okandemir/schoolhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	staffController *controllers.StaffController,
	userController *controllers.UserController,
	attendanceController *controllers.AttendanceController,
	gradeController *controllers.GradeController,
	financeController *controllers.FinanceController,
	reportController *controllers.ReportController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/complete-registration", authController.CompleteRegistration)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/profile", authController.GetProfile)

		// Student routes: reads for every authenticated user,
		// mutations restricted to admins.
		students := authenticated.Group("/students")
		{
			students.GET("", studentController.ListStudents)
			students.GET("/:id", studentController.GetStudentByID)

			studentsAdmin := students.Group("")
			studentsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				studentsAdmin.POST("", studentController.CreateStudent)
				studentsAdmin.PUT("/:id", studentController.UpdateStudent)
				studentsAdmin.DELETE("/:id", studentController.DeleteStudent)
				studentsAdmin.POST("/save", studentController.SaveStudent)
			}
		}

		// Staff management is admin-only.
		staff := authenticated.Group("/staff")
		staff.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			staff.GET("", staffController.ListStaff)
			staff.GET("/:id", staffController.GetStaffByID)
			staff.POST("", staffController.CreateStaff)
			staff.PUT("/:id", staffController.UpdateStaff)
			staff.DELETE("/:id", staffController.DeleteStaff)
		}

		// User account management is admin-only.
		users := authenticated.Group("/users")
		users.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			users.GET("", userController.ListUsers)
			users.POST("", userController.CreateUser)
			users.PUT("/:id", userController.UpdateUser)
			users.DELETE("/:id", userController.DeleteUser)
			users.POST("/:id/invite", userController.InviteUser)
		}

		attendance := authenticated.Group("/attendance")
		{
			attendance.GET("", attendanceController.ListAttendance)
			attendance.POST("/batch", attendanceController.RecordBatch)
		}

		grades := authenticated.Group("/grades")
		{
			grades.GET("", gradeController.ListGrades)
			grades.GET("/:id", gradeController.GetGradeByID)
			grades.POST("", gradeController.SaveGrade)
		}

		finance := authenticated.Group("/finance")
		{
			finance.GET("", financeController.ListRecords)
			finance.POST("", financeController.CreateRecord)
			finance.PUT("/:id/status", financeController.UpdateStatus)
		}

		reports := authenticated.Group("/reports")
		{
			reports.GET("/:studentId", reportController.GetReports)

			reportsAdmin := reports.Group("")
			reportsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				reportsAdmin.POST("/generate", reportController.GenerateReport)
			}
		}

		authenticated.GET("/dashboard/stats", dashboardController.GetStats)
	}
}
