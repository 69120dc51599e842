package api

import (
	"fmt"
	"strconv"

	"soilwatch/database"
	"soilwatch/models"

	"github.com/gin-gonic/gin"
)

// 默认地图视角（Noamundi 矿区）与标记圈半径
var defaultMapCenter = [2]float64{22.1564, 85.5184}

const (
	defaultMapZoom   = 12
	markerRadiusM    = 500
	emptyPlaceholder = "No analysis locations to display"
)

// MapView 地图投影：中心点、缩放级别与全部标记
type MapView struct {
	Center      [2]float64  `json:"center"`
	Zoom        int         `json:"zoom"`
	Markers     []MapMarker `json:"markers"`
	Placeholder string      `json:"placeholder,omitempty"`
}

// MapMarker 单个分析点的地图标记（圆圈颜色按湿度分级）
type MapMarker struct {
	ID        uint        `json:"id"`
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	Color     string      `json:"color"`
	Radius    int         `json:"radius"`
	Popup     MarkerPopup `json:"popup"`
}

// MarkerPopup 标记弹窗内容（预格式化字符串）
type MarkerPopup struct {
	LocationName    string `json:"location_name"`
	SoilMoisture    string `json:"soil_moisture"`
	Trend           string `json:"trend"`
	GrowthPotential string `json:"growth_potential"`
	Suitability     string `json:"suitability"`
}

// moistureColor 土壤湿度五级配色：越干越红
func moistureColor(moisture float64) string {
	switch {
	case moisture < 0.10:
		return "#ef4444" // red - very dry
	case moisture < 0.15:
		return "#f97316" // orange - dry
	case moisture < 0.20:
		return "#eab308" // yellow - moderate
	case moisture < 0.25:
		return "#84cc16" // lime - good
	default:
		return "#22c55e" // green - excellent
	}
}

// buildMapView 把历史记录投影成地图视图
// 缺坐标或统计块解码失败的行直接过滤；无有效点时返回占位提示
func buildMapView(rows []models.AreaAnalysis) MapView {
	view := MapView{
		Center:  defaultMapCenter,
		Zoom:    defaultMapZoom,
		Markers: []MapMarker{},
	}

	for _, row := range rows {
		if row.Latitude == 0 || row.Longitude == 0 {
			continue
		}
		point, ok := toAnalysisPoint(row)
		if !ok {
			continue
		}
		moisture, err := strconv.ParseFloat(point.SoilMoisture.Average, 64)
		if err != nil {
			continue
		}
		score, err := strconv.ParseFloat(point.GrowthPotential.Score, 64)
		if err != nil {
			continue
		}

		view.Markers = append(view.Markers, MapMarker{
			ID:        point.ID,
			Latitude:  point.Latitude,
			Longitude: point.Longitude,
			Color:     moistureColor(moisture),
			Radius:    markerRadiusM,
			Popup: MarkerPopup{
				LocationName:    point.LocationName,
				SoilMoisture:    fmt.Sprintf("%.3f m³/m³", moisture),
				Trend:           point.SoilMoisture.Trend,
				GrowthPotential: fmt.Sprintf("%.1f%%", score),
				Suitability:     point.GrowthPotential.Suitability,
			},
		})
	}

	if len(view.Markers) == 0 {
		view.Placeholder = emptyPlaceholder
		return view
	}

	// 以最新分析点为地图中心
	view.Center = [2]float64{view.Markers[0].Latitude, view.Markers[0].Longitude}
	return view
}

// MapHandler 地图投影处理器
type MapHandler struct{}

// NewMapHandler 创建地图投影处理器
func NewMapHandler() *MapHandler {
	return &MapHandler{}
}

// GetMapView 获取全部分析点的地图投影
// @Summary 分析点地图
// @Description 返回全部历史分析点的标记（按湿度五级配色），无数据时返回占位提示
// @Tags 可视化
// @Produce json
// @Success 200 {object} Response{data=MapView} "获取成功"
// @Router /api/v1/analyses/map [get]
func (h *MapHandler) GetMapView(c *gin.Context) {
	var rows []models.AreaAnalysis
	if err := database.DB.Order("analyzed_at DESC").Find(&rows).Error; err != nil {
		InternalError(c, "查询分析点失败: "+err.Error())
		return
	}

	Success(c, buildMapView(rows))
}
