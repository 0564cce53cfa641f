package main

import (
	"flag"
	"fmt"
	"log"

	"streamify/api/handlers"
	"streamify/api/middleware"
	"streamify/api/routes"
	"streamify/config"
	"streamify/db"
	"streamify/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	err := config.LoadConfig(configPath)
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	log.Println("Starting server...")

	if err := db.ConnectDB(); err != nil {
		panic("Failed to connect to the database: " + err.Error())
	}

	if err := services.InitRedis(); err != nil {
		panic("Failed to connect to Redis: " + err.Error())
	}
	defer services.CloseRedis()

	// Брокер опционален: без него события просто не публикуются
	if err := services.InitRabbitMQ(); err != nil {
		log.Printf("Warning: RabbitMQ initialization failed: %v", err)
	}
	defer services.CloseRabbitMQ()

	gateway, err := services.NewStreamGateway(config.AppConfig.Stream)
	if err != nil {
		panic("Failed to initialize stream gateway: " + err.Error())
	}

	themeService := services.NewThemeService(services.RedisClient)
	handlers.Init(gateway, themeService)

	router := gin.Default()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.PrometheusMiddleware("streamify"))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.PublicApi(router)

	addr := fmt.Sprintf(":%d", config.AppConfig.Backend.Port)
	if config.AppConfig.Backend.Port == 0 {
		addr = ":8080"
	}
	if err := router.Run(addr); err != nil {
		panic(err)
	}
}
