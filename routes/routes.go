package routes

import (
	"net/http"

	"talentrack/applications"
	"talentrack/auth"
	"talentrack/jobs"
	"talentrack/middleware"
	"talentrack/profile"
	"talentrack/ratelim"
	"talentrack/stats"

	"github.com/julienschmidt/httprouter"
)

func hrOnly(h httprouter.Handle) httprouter.Handle {
	return middleware.Authenticate(middleware.RequireRole(h, "hr", "admin"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", rl.Limit(middleware.Authenticate(auth.RefreshToken)))
}

func AddBoardRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/board/jobs", jobs.GetBoardJobs)
	router.GET("/api/board/jobs/:jobid", jobs.GetBoardJob)
	router.GET("/api/board/jobs/:jobid/qr", jobs.JobQR)
	router.POST("/api/board/jobs/:jobid/apply", rl.Limit(middleware.OptionalAuth(applications.ApplyToJob)))
}

func AddJobRoutes(router *httprouter.Router) {
	router.GET("/api/jobs", hrOnly(jobs.GetJobs))
	router.POST("/api/jobs", hrOnly(jobs.CreateJob))
	router.GET("/api/jobs/:jobid", hrOnly(jobs.GetJob))
	router.PUT("/api/jobs/:jobid", hrOnly(jobs.UpdateJob))
	router.PATCH("/api/jobs/:jobid/status", hrOnly(jobs.UpdateJobStatus))
	router.DELETE("/api/jobs/:jobid", hrOnly(jobs.DeleteJob))
}

func AddApplicationRoutes(router *httprouter.Router) {
	router.GET("/api/applications", hrOnly(applications.GetApplications))
	router.POST("/api/applications", hrOnly(applications.CreateApplication))
	router.GET("/api/applications/:id", hrOnly(applications.GetApplication))
	router.PUT("/api/applications/:id", hrOnly(applications.UpdateApplication))
	router.PATCH("/api/applications/:id/status", hrOnly(applications.UpdateApplicationStatus))
	router.DELETE("/api/applications/:id", hrOnly(applications.DeleteApplication))
	router.POST("/api/applications/:id/documents/:slot", hrOnly(applications.UploadDocument))
	router.GET("/api/applications/:id/export", hrOnly(applications.ExportApplicationPDF))

	router.GET("/api/my/applications", middleware.Authenticate(applications.GetMyApplications))
}

func AddProfileRoutes(router *httprouter.Router) {
	router.GET("/api/profile", middleware.Authenticate(profile.GetProfile))
	router.PUT("/api/profile", middleware.Authenticate(profile.UpdateProfile))
	router.POST("/api/profile/picture", middleware.Authenticate(profile.UploadProfilePicture))
}

func AddStatsRoutes(router *httprouter.Router) {
	router.GET("/api/stats/dashboard", hrOnly(stats.GetDashboard))
}

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}
