package main

// go run cmd/space_catalog/main.go

import (
	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"

	"space_catalog/internal/app/config"
	"space_catalog/internal/app/dsn"
	"space_catalog/internal/app/handler"
	"space_catalog/internal/app/pkg"
	"space_catalog/internal/app/repository"

	_ "space_catalog/docs" // Swagger docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(func(c *gin.Context) {
		logrus.Infof("Incoming request: %s %s", c.Request.Method, c.Request.URL.Path)
	})

	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	postgresString := dsn.FromEnv()

	rep, errRep := repository.New(postgresString, conf.RedisEndpoint, conf.RedisPassword)
	if errRep != nil {
		logrus.Fatalf("error initializing repository: %v", errRep)
	}

	var minioClient *minio.Client
	if conf.MinioEndpoint != "" {
		minioClient, err = minio.New(conf.MinioEndpoint, &minio.Options{
			Creds: credentials.NewStaticV4(conf.MinioAccessKey, conf.MinioSecretKey, ""),
		})
		if err != nil {
			logrus.Fatalf("error initializing minio client: %v", err)
		}
	}

	hand := handler.NewHandler(rep, minioClient, conf.MinioBucket)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	application := pkg.NewApp(conf, router, hand)
	application.RunApp()
}
