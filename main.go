// @title IELTS Prep 后端 API
// @version 1.0
// @description 雅思备考平台的后端服务器。

// @contact.name API支持

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"ielts_prep_backend/internal/app"
	"ielts_prep_backend/internal/config"
	"ielts_prep_backend/pkg/configwatcher"
	"ielts_prep_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 配置热更新：对通过指针读取配置的组件即时生效
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		*cfg = *newCfg
	})

	application.Run()
}
