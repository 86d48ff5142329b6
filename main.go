package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/projectdesk/api/v1"
	"github.com/projectdesk/config"
	"github.com/projectdesk/console"
	"github.com/projectdesk/database"
	"github.com/projectdesk/middleware"
	"github.com/projectdesk/repositories"
	"github.com/projectdesk/services"
)

func main() {
	config.LoadEnv()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	db, err := database.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	// Composition root: repositories, then services.
	customerRepo := repositories.NewCustomerRepository(db)
	employeeRepo := repositories.NewEmployeeRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	linkRepo := repositories.NewProjectEmployeeRepository(db)

	customerService := services.NewCustomerService(customerRepo)
	employeeService := services.NewEmployeeService(employeeRepo)
	projectService := services.NewProjectService(projectRepo, employeeRepo, customerRepo, linkRepo)

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		serve(customerService, employeeService, projectService)
		return
	}

	console.NewApp(customerService, employeeService, projectService, linkRepo).Run()
}

// serve runs the REST API
func serve(
	customers *services.CustomerService,
	employees *services.EmployeeService,
	projects *services.ProjectService,
) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	v1.RegisterRoutes(router.Group("/api/v1"), customers, employees, projects)

	port := config.GetEnv("PORT", "8080")
	log.Info().Str("port", port).Msg("projectdesk API starting")
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
