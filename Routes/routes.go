package Routes

import (
	"net/http"

	"github.com/rdclab2001/rdc-backend/Controllers"
	"github.com/rdclab2001/rdc-backend/Middleware"
	"github.com/rdclab2001/rdc-backend/SSE"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine, api *Controllers.API) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	// Public routes
	router.GET("/health", Controllers.Health)
	router.POST("/login", Controllers.Login)
	router.GET("/logout", Controllers.Logout)
	router.POST("/forgot", api.Forgot)
	router.POST("/verify-otp", api.VerifyOtp)
	router.POST("/reset-password", api.ResetPassword)
	router.POST("/book-test", api.BookTest)
	router.POST("/add-appointment", Controllers.AddAppointment)
	router.GET("/download-pdf/:filename", Controllers.DownloadPdf)
	router.GET("/send-whatsapp", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "https://wa.me/")
	})

	// Authorized routes
	authorized := router.Group("/")
	authorized.Use(Middleware.JwtAuthMiddleware())
	{
		authorized.GET("/user", Controllers.CurrentUser)
		authorized.GET("/dashboard", Controllers.Dashboard)
		authorized.GET("/appointments", Controllers.FetchAppointments)
		authorized.GET("/website-leads", Controllers.FetchLeads)
		authorized.GET("/get-lead-count", Controllers.LeadCount)
		authorized.GET("/get-all-patients", Controllers.GetAllPatients)
		authorized.POST("/update-appointment-status", Controllers.UpdateAppointmentStatus)
		authorized.POST("/update-lead-status", Controllers.UpdateLeadStatus)
		authorized.GET("/download-excel", Controllers.DownloadExcel)
		authorized.POST("/convert-and-send-report", api.ConvertAndSendReport)
		authorized.GET("/events", SSE.Stream)
	}
}
