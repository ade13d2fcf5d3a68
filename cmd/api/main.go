package main

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/timeclock-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/repository/postgresql"
	exceptionService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/exceptions"
	reconcileService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/reconcile"
	catalogService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/shiftcatalog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	punchRepo := postgresql.NewPunchRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	ruleRepo := postgresql.NewRuleRepository(db)
	exceptionRepo := postgresql.NewExceptionRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	reconciliationService := reconcileService.NewReconciliationService(
		db,
		punchRepo,
		shiftRepo,
		assignmentRepo,
		ruleRepo,
		exceptionRepo,
		cfg.Location(),
		cfg.Reconcile,
	)
	shiftCatalogService := catalogService.NewCatalogService(shiftRepo, assignmentRepo, ruleRepo)
	attendanceExceptionService := exceptionService.NewExceptionService(exceptionRepo)

	punchHandler := appHTTP.NewPunchHandler(reconciliationService)
	catalogHandler := appHTTP.NewCatalogHandler(shiftCatalogService)
	exceptionHandler := appHTTP.NewExceptionHandler(attendanceExceptionService)

	scheduler := cron.NewScheduler()
	reconcileJobs := cron.NewReconcileJobs(punchRepo, reconciliationService, cfg.Reconcile.CronInterval)
	reconcileJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, punchHandler, catalogHandler, exceptionHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Starting server on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
