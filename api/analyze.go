package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"soilwatch/config"
	"soilwatch/database"
	"soilwatch/models"
	"soilwatch/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 分析请求默认值
const (
	defaultBufferSize = 1000
	defaultStartDate  = "2024-01-01"
	defaultEndDate    = "2024-12-31"
)

// AnalyzeHandler 区域分析处理器
type AnalyzeHandler struct {
	generator *service.Generator
	gee       *service.GEEClient
}

// NewAnalyzeHandler 创建区域分析处理器
func NewAnalyzeHandler(cfg *config.Config) *AnalyzeHandler {
	return &AnalyzeHandler{
		generator: service.NewGenerator(cfg.Generator.Variant),
		gee:       service.NewGEEClient(cfg.GEE),
	}
}

// AnalyzeRequest 区域分析请求
// latitude/longitude 必填；坐标取值不做范围校验，越界值按约定静默接受
type AnalyzeRequest struct {
	Latitude   *float64 `json:"latitude" binding:"required"`
	Longitude  *float64 `json:"longitude" binding:"required"`
	BufferSize *int     `json:"bufferSize"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
}

// AnalyzeErrorResponse 分析接口错误载荷
type AnalyzeErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// Analyze 分析指定坐标的土壤湿度与植被恢复潜力
// 成功时直接返回 AnalysisResult 裸载荷；任何失败统一为 500 + {error, details}
// @Summary 区域分析
// @Description 对给定经纬度生成土壤湿度、植被指数与生长潜力分析结果，并尽力持久化一条记录
// @Tags 分析
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "分析请求"
// @Success 200 {object} service.AnalysisResult "分析结果"
// @Failure 500 {object} AnalyzeErrorResponse "请求解析失败或缺少必填坐标"
// @Router /api/v1/analyze [post]
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// 约定：请求体问题与内部错误共用同一个 500 错误信封
		c.JSON(http.StatusInternalServerError, AnalyzeErrorResponse{
			Error:   err.Error(),
			Details: "Failed to analyze soil moisture data",
		})
		return
	}

	bufferSize := defaultBufferSize
	if req.BufferSize != nil {
		bufferSize = *req.BufferSize
	}
	startDate := req.StartDate
	if startDate == "" {
		startDate = defaultStartDate
	}
	endDate := req.EndDate
	if endDate == "" {
		endDate = defaultEndDate
	}

	latitude, longitude := *req.Latitude, *req.Longitude
	log.Printf("开始区域分析: lat=%.4f lng=%.4f buffer=%dm range=%s~%s",
		latitude, longitude, bufferSize, startDate, endDate)

	// GEE 只在凭证完整时探测；无论结果如何都落到合成数据
	if h.gee.Enabled() {
		if err := h.gee.Probe(latitude, longitude); err != nil {
			log.Printf("GEE 调用失败，回退合成数据: %v", err)
		}
	} else {
		log.Println("GEE 凭证未配置，直接使用合成数据")
	}

	result := h.generator.Generate(latitude, longitude, bufferSize, startDate, endDate)

	// 尽力而为的异步入库：失败只记日志，不影响响应
	db := database.DB
	go persistAnalysis(db, result)

	c.JSON(http.StatusOK, result)
}

// persistAnalysis 将分析结果写为一行历史记录
func persistAnalysis(db *gorm.DB, result *service.AnalysisResult) {
	if db == nil {
		log.Println("分析记录入库跳过: 数据库未初始化")
		return
	}

	row, err := buildAnalysisRow(result)
	if err != nil {
		log.Printf("分析记录序列化失败 (lat=%.4f lng=%.4f): %v",
			result.Location.Latitude, result.Location.Longitude, err)
		return
	}

	if err := db.Create(row).Error; err != nil {
		log.Printf("分析记录入库失败 (lat=%.4f lng=%.4f): %v",
			result.Location.Latitude, result.Location.Longitude, err)
	}
}

// buildAnalysisRow 把结果的四个统计块编码为 JSON 列
func buildAnalysisRow(result *service.AnalysisResult) (*models.AreaAnalysis, error) {
	soilMoisture, err := json.Marshal(result.SoilMoisture)
	if err != nil {
		return nil, err
	}
	vegetation, err := json.Marshal(result.VegetationIndices)
	if err != nil {
		return nil, err
	}
	soilProps, err := json.Marshal(result.SoilProperties)
	if err != nil {
		return nil, err
	}
	growth, err := json.Marshal(result.GrowthPotential)
	if err != nil {
		return nil, err
	}

	return &models.AreaAnalysis{
		Latitude:          result.Location.Latitude,
		Longitude:         result.Location.Longitude,
		LocationName:      result.Location.Area,
		SoilMoisture:      string(soilMoisture),
		VegetationIndices: string(vegetation),
		SoilProperties:    string(soilProps),
		GrowthPotential:   string(growth),
		AnalyzedAt:        time.Now(),
	}, nil
}
