package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/danuwg/opcert_backend_v1/internal/cert"
	"github.com/danuwg/opcert_backend_v1/internal/config"
	"github.com/danuwg/opcert_backend_v1/internal/controllers"
	"github.com/danuwg/opcert_backend_v1/internal/middleware"
	"github.com/danuwg/opcert_backend_v1/internal/ws"
)

// Register wires every endpoint. Everything except login sits behind JWT
// auth; user administration is additionally admin-gated.
func Register(r *gin.Engine, db *gorm.DB, cfg *config.Config, hub *ws.StatusHub) {
	authCtl := &controllers.AuthController{
		DB:        db,
		JWTSecret: cfg.JWTSecret,
		ExpiresIn: cfg.JWTExpiry(),
	}
	adminCtl := &controllers.AdminController{DB: db}
	operatorCtl := &controllers.OperatorController{DB: db}
	certCtl := &controllers.CertificationController{
		DB:   db,
		Hub:  hub,
		Gate: cert.DocumentGate{MaxBytes: cfg.CertUploadMaxBytes},
	}
	evalCtl := &controllers.EvaluationController{
		DB:   db,
		Hub:  hub,
		Gate: cert.DocumentGate{MaxBytes: cfg.EvalUploadMaxBytes},
	}
	exportCtl := &controllers.ExportController{DB: db}

	authMW := middleware.AuthMiddleware(db, middleware.AuthConfig{
		JWTSecret:    cfg.JWTSecret,
		JWTExpiresIn: cfg.JWTExpiry(),
	})

	api := r.Group("/api/v1")
	api.POST("/auth/login", authCtl.Login)

	authed := api.Group("")
	authed.Use(authMW)
	{
		authed.GET("/auth/me", authCtl.Me)
		authed.POST("/auth/logout", authCtl.Logout)

		admin := authed.Group("/admin")
		admin.Use(middleware.RequireRoles("admin"))
		{
			admin.POST("/users", authCtl.Register)
			admin.GET("/users", adminCtl.ListUsers)
			admin.GET("/users/:user_id", adminCtl.GetUser)
			admin.PUT("/users/:user_id", adminCtl.UpdateUser)
			admin.DELETE("/users/:user_id", adminCtl.DeleteUser)
		}

		authed.GET("/operators", operatorCtl.List)
		authed.GET("/operators/:nik", operatorCtl.Get)
		authed.GET("/operators/:nik/photo", operatorCtl.Photo)

		authed.GET("/certifications/:nik", certCtl.Get)
		authed.POST("/certifications", certCtl.Create)
		authed.POST("/certifications/:nik/documents", certCtl.UploadDocument)
		authed.GET("/export/certifications", exportCtl.Certifications)

		authed.GET("/evaluations/:nik", evalCtl.Get)
		authed.POST("/evaluations", evalCtl.Save)
	}

	wsGroup := r.Group("/ws")
	wsGroup.Use(authMW)
	wsGroup.GET("/status", ws.StatusHandler(hub))
}
