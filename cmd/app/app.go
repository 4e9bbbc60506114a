package main

import (
	"github.com/DRSN-tech/storefront-backend/internal/app"
	"github.com/joho/godotenv"
)

// @title						Storefront Backend API
// @version					1.0
// @description				Каталог конного снаряжения: витрина, админ-панель и загрузка изображений
// @BasePath					/api/v1
// @securityDefinitions.apikey	CookieAuth
// @in							cookie
// @name						sb-access-token
func main() {
	_ = godotenv.Load()

	app.Run()
}
