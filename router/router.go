package router

import (
	"io/fs"
	"net/http"
	"time"

	"soilwatch/api"
	"soilwatch/config"
	_ "soilwatch/docs"
	"soilwatch/middleware"
	"soilwatch/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// 嵌入的静态文件 - 分析看板页面
	staticFS, _ := fs.Sub(web.StaticFS, ".")
	r.GET("/", func(c *gin.Context) {
		content, err := fs.ReadFile(staticFS, "index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "加载页面失败")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	})

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 路由组
	v1 := r.Group("/api/v1")
	{
		// 土壤湿度分析（无限流：同一坐标重复请求各自独立生成）
		analyzeHandler := api.NewAnalyzeHandler(cfg)
		v1.POST("/analyze", analyzeHandler.Analyze)

		// 分析历史
		recordHandler := api.NewRecordHandler()
		analyses := v1.Group("/analyses")
		{
			analyses.GET("", recordHandler.List)

			// 可视化投影
			analyses.GET("/map", api.NewMapHandler().GetMapView)
			analyses.GET("/charts", api.NewChartHandler().GetChartData)
			analyses.GET("/export", middleware.IPRateLimit(10, time.Minute), api.NewExportHandler().ExportExcel)

			analyses.GET("/:id", recordHandler.Get)
			analyses.DELETE("/:id", recordHandler.Delete)
		}

		// 研究内容（静态数据）
		contentHandler := api.NewContentHandler()
		content := v1.Group("/content")
		{
			content.GET("/satellite-datasets", contentHandler.GetSatelliteDatasets)
			content.GET("/models", contentHandler.GetModels)
			content.GET("/climate-projections", contentHandler.GetClimateProjections)
			content.GET("/species", contentHandler.GetSpecies)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
// 头部与前端/边缘函数客户端约定保持一致，OPTIONS 预检不进入业务逻辑
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
