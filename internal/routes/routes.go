package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NovaMenteServices/clinic-manager/internal/audit"
	"github.com/NovaMenteServices/clinic-manager/internal/cache"
	"github.com/NovaMenteServices/clinic-manager/internal/config"
	"github.com/NovaMenteServices/clinic-manager/internal/handlers"
	infraRepo "github.com/NovaMenteServices/clinic-manager/internal/infra/repository"
	"github.com/NovaMenteServices/clinic-manager/internal/middleware"
	"github.com/NovaMenteServices/clinic-manager/internal/token"
	ucAccount "github.com/NovaMenteServices/clinic-manager/internal/usecase/account"
	ucAuth "github.com/NovaMenteServices/clinic-manager/internal/usecase/auth"
	ucPatient "github.com/NovaMenteServices/clinic-manager/internal/usecase/patient"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, cacheClient cache.Client) {

	// ------------------------------
	// Infra
	// ------------------------------
	patientRepo := infraRepo.NewPatientGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)

	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ------------------------------
	// Use cases
	// ------------------------------
	loginUC := ucAuth.NewLogin(userRepo, tokens)
	checkTokenUC := ucAuth.NewCheckToken(userRepo, tokens)

	listPatientsUC := ucPatient.NewList(patientRepo)
	getPatientUC := ucPatient.NewGet(patientRepo)
	createPatientUC := ucPatient.NewCreate(patientRepo, auditDispatcher)
	updatePatientUC := ucPatient.NewUpdate(patientRepo, auditDispatcher)
	togglePatientUC := ucPatient.NewToggleActive(patientRepo, auditDispatcher)
	deletePatientUC := ucPatient.NewDelete(patientRepo, auditDispatcher)

	listUsersUC := ucAccount.NewList(userRepo)
	getUserUC := ucAccount.NewGet(userRepo)
	createUserUC := ucAccount.NewCreate(userRepo, auditDispatcher)
	updateUserUC := ucAccount.NewUpdate(userRepo, auditDispatcher)
	toggleUserUC := ucAccount.NewToggleActive(userRepo, auditDispatcher)
	deleteUserUC := ucAccount.NewDelete(userRepo, auditDispatcher)

	// ------------------------------
	// Handlers
	// ------------------------------
	authHandler := handlers.NewAuthHandler(loginUC, checkTokenUC)
	meHandler := handlers.NewMeHandler(userRepo)

	patientHandler := handlers.NewPatientHandler(
		listPatientsUC,
		getPatientUC,
		createPatientUC,
		updatePatientUC,
		togglePatientUC,
		deletePatientUC,
	)

	userHandler := handlers.NewUserHandler(
		listUsersUC,
		getUserUC,
		createUserUC,
		updateUserUC,
		toggleUserUC,
		deleteUserUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ------------------------------
	// Rotas
	// ------------------------------
	api := r.Group("/api")
	{
		api.POST(
			"/auth/login",
			middleware.LoginRateLimiter(cacheClient, cfg.LoginRateLimit, cfg.LoginRatePeriod),
			authHandler.Login,
		)
		api.POST("/auth/check-token", authHandler.CheckToken)

		// Rotas autenticadas: token válido + conta ativa.
		secured := api.Group("/")
		secured.Use(
			middleware.Authenticate(tokens),
			middleware.RequireActive(userRepo),
		)
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/patients", patientHandler.List)
			secured.GET("/patients/:id", patientHandler.Get)
			secured.POST("/patients", patientHandler.Create)
			secured.PUT("/patients/:id", patientHandler.Update)
			secured.PATCH("/patients/:id/toggle-active", patientHandler.ToggleActive)
			secured.DELETE("/patients/:id", patientHandler.Delete)

			// Administração: somente admins.
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin(userRepo))
			{
				admin.GET("/users", userHandler.List)
				admin.GET("/users/:id", userHandler.Get)
				admin.POST("/users", userHandler.Create)
				admin.PUT("/users/:id", userHandler.Update)
				admin.PATCH("/users/:id/toggle-active", userHandler.ToggleActive)
				admin.DELETE("/users/:id", userHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
