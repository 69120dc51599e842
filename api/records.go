package api

import (
	"encoding/json"
	"strconv"
	"time"

	"soilwatch/database"
	"soilwatch/models"
	"soilwatch/service"

	"github.com/gin-gonic/gin"
)

// RecordHandler 分析历史记录处理器
type RecordHandler struct{}

// NewRecordHandler 创建分析历史记录处理器
func NewRecordHandler() *RecordHandler {
	return &RecordHandler{}
}

// AnalysisPoint 历史记录的扁平投影，供列表/地图/图表消费
type AnalysisPoint struct {
	ID              uint                          `json:"id"`
	Latitude        float64                       `json:"latitude"`
	Longitude       float64                       `json:"longitude"`
	LocationName    string                        `json:"location_name"`
	SoilMoisture    service.StoredSoilMoisture    `json:"soil_moisture"`
	GrowthPotential service.StoredGrowthPotential `json:"growth_potential"`
	AnalyzedAt      time.Time                     `json:"analyzed_at"`
}

// AnalysisDetail 单条历史记录的完整视图（JSON 列原样下发）
type AnalysisDetail struct {
	ID                uint            `json:"id"`
	Latitude          float64         `json:"latitude"`
	Longitude         float64         `json:"longitude"`
	LocationName      string          `json:"location_name"`
	SoilMoisture      json.RawMessage `json:"soil_moisture"`
	VegetationIndices json.RawMessage `json:"vegetation_indices"`
	SoilProperties    json.RawMessage `json:"soil_properties"`
	GrowthPotential   json.RawMessage `json:"growth_potential"`
	AnalyzedAt        time.Time       `json:"analyzed_at"`
}

// toAnalysisPoint 行投影；任一 JSON 列解码失败视为坏行，返回 false 过滤掉
func toAnalysisPoint(row models.AreaAnalysis) (AnalysisPoint, bool) {
	var moisture service.StoredSoilMoisture
	if err := json.Unmarshal([]byte(row.SoilMoisture), &moisture); err != nil {
		return AnalysisPoint{}, false
	}
	var growth service.StoredGrowthPotential
	if err := json.Unmarshal([]byte(row.GrowthPotential), &growth); err != nil {
		return AnalysisPoint{}, false
	}
	return AnalysisPoint{
		ID:              row.ID,
		Latitude:        row.Latitude,
		Longitude:       row.Longitude,
		LocationName:    row.LocationName,
		SoilMoisture:    moisture,
		GrowthPotential: growth,
		AnalyzedAt:      row.AnalyzedAt,
	}, true
}

// List 分页获取分析历史
// @Summary 分析历史列表
// @Description 按分析时间倒序分页返回历史记录的扁平投影
// @Tags 历史记录
// @Produce json
// @Param page query int false "页码，默认 1"
// @Param page_size query int false "每页数量，默认 20，最大 100"
// @Success 200 {object} Response{data=PageResponse} "获取成功"
// @Router /api/v1/analyses [get]
func (h *RecordHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var total int64
	if err := database.DB.Model(&models.AreaAnalysis{}).Count(&total).Error; err != nil {
		InternalError(c, "查询分析历史失败: "+err.Error())
		return
	}

	var rows []models.AreaAnalysis
	if err := database.DB.
		Order("analyzed_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error; err != nil {
		InternalError(c, "查询分析历史失败: "+err.Error())
		return
	}

	points := make([]AnalysisPoint, 0, len(rows))
	for _, row := range rows {
		if p, ok := toAnalysisPoint(row); ok {
			points = append(points, p)
		}
	}

	Success(c, PageResponse{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		List:     points,
	})
}

// Get 获取单条分析记录详情
// @Summary 分析记录详情
// @Tags 历史记录
// @Produce json
// @Param id path int true "记录ID"
// @Success 200 {object} Response{data=AnalysisDetail} "获取成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/analyses/{id} [get]
func (h *RecordHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		BadRequest(c, "无效的记录ID")
		return
	}

	var row models.AreaAnalysis
	if err := database.DB.First(&row, id).Error; err != nil {
		NotFound(c, "分析记录不存在")
		return
	}

	Success(c, AnalysisDetail{
		ID:                row.ID,
		Latitude:          row.Latitude,
		Longitude:         row.Longitude,
		LocationName:      row.LocationName,
		SoilMoisture:      json.RawMessage(row.SoilMoisture),
		VegetationIndices: json.RawMessage(row.VegetationIndices),
		SoilProperties:    json.RawMessage(row.SoilProperties),
		GrowthPotential:   json.RawMessage(row.GrowthPotential),
		AnalyzedAt:        row.AnalyzedAt,
	})
}

// Delete 删除分析记录
// @Summary 删除分析记录
// @Tags 历史记录
// @Produce json
// @Param id path int true "记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/analyses/{id} [delete]
func (h *RecordHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		BadRequest(c, "无效的记录ID")
		return
	}

	result := database.DB.Delete(&models.AreaAnalysis{}, id)
	if result.Error != nil {
		InternalError(c, "删除分析记录失败: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		NotFound(c, "分析记录不存在")
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
