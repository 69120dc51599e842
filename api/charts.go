package api

import (
	"fmt"
	"sort"
	"strconv"

	"soilwatch/database"
	"soilwatch/models"

	"github.com/gin-gonic/gin"
)

// ChartData 两个图表投影：时间线与最近 5 次对比
type ChartData struct {
	Timeline   []TimelinePoint   `json:"timeline"`
	Comparison []ComparisonPoint `json:"comparison"`
}

// TimelinePoint 时间线折线图一个点（湿度换算为百分比）
type TimelinePoint struct {
	Date      string  `json:"date"`
	Moisture  float64 `json:"moisture"`
	Potential float64 `json:"potential"`
}

// ComparisonPoint 最近分析对比柱状图一个点
type ComparisonPoint struct {
	Location  string  `json:"location"`
	Moisture  float64 `json:"moisture"`
	Potential float64 `json:"potential"`
}

// chartRow 校验并解析一行记录；时间戳缺失或统计不可解析的行被过滤
func chartRow(row models.AreaAnalysis) (moisture, score float64, ok bool) {
	if row.AnalyzedAt.IsZero() {
		return 0, 0, false
	}
	point, valid := toAnalysisPoint(row)
	if !valid {
		return 0, 0, false
	}
	moisture, err := strconv.ParseFloat(point.SoilMoisture.Average, 64)
	if err != nil {
		return 0, 0, false
	}
	score, err = strconv.ParseFloat(point.GrowthPotential.Score, 64)
	if err != nil {
		return 0, 0, false
	}
	return moisture, score, true
}

// buildTimeline 按分析时间升序的时间线投影
func buildTimeline(rows []models.AreaAnalysis) []TimelinePoint {
	valid := make([]models.AreaAnalysis, 0, len(rows))
	for _, row := range rows {
		if _, _, ok := chartRow(row); ok {
			valid = append(valid, row)
		}
	}
	sort.Slice(valid, func(i, j int) bool {
		return valid[i].AnalyzedAt.Before(valid[j].AnalyzedAt)
	})

	points := make([]TimelinePoint, 0, len(valid))
	for _, row := range valid {
		moisture, score, _ := chartRow(row)
		points = append(points, TimelinePoint{
			Date:      row.AnalyzedAt.Format("Jan 02"),
			Moisture:  moisture * 100, // 百分比
			Potential: score,
		})
	}
	return points
}

// buildComparison 插入顺序下最近 5 条记录的坐标对比
func buildComparison(rows []models.AreaAnalysis) []ComparisonPoint {
	valid := make([]models.AreaAnalysis, 0, len(rows))
	for _, row := range rows {
		if row.Latitude == 0 || row.Longitude == 0 {
			continue
		}
		if _, _, ok := chartRow(row); ok {
			valid = append(valid, row)
		}
	}
	sort.Slice(valid, func(i, j int) bool { return valid[i].ID < valid[j].ID })
	if len(valid) > 5 {
		valid = valid[len(valid)-5:]
	}

	points := make([]ComparisonPoint, 0, len(valid))
	for _, row := range valid {
		moisture, score, _ := chartRow(row)
		points = append(points, ComparisonPoint{
			Location:  fmt.Sprintf("%.3f, %.3f", row.Latitude, row.Longitude),
			Moisture:  moisture * 100,
			Potential: score,
		})
	}
	return points
}

// ChartHandler 图表投影处理器
type ChartHandler struct{}

// NewChartHandler 创建图表投影处理器
func NewChartHandler() *ChartHandler {
	return &ChartHandler{}
}

// GetChartData 获取图表投影
// @Summary 分析图表数据
// @Description 返回湿度/生长潜力时间线与最近 5 次分析对比；坏行被过滤，全部无效时两组均为空
// @Tags 可视化
// @Produce json
// @Success 200 {object} Response{data=ChartData} "获取成功"
// @Router /api/v1/analyses/charts [get]
func (h *ChartHandler) GetChartData(c *gin.Context) {
	var rows []models.AreaAnalysis
	if err := database.DB.Find(&rows).Error; err != nil {
		InternalError(c, "查询分析记录失败: "+err.Error())
		return
	}

	Success(c, ChartData{
		Timeline:   buildTimeline(rows),
		Comparison: buildComparison(rows),
	})
}
