package api

import (
	"fmt"
	"net/http"
	"time"

	"soilwatch/database"
	"soilwatch/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// ExportExcel 导出分析历史为 Excel
// @Summary 导出分析历史
// @Description 导出全部分析记录为 xlsx，每行一次分析（坐标、湿度、生长潜力、分析时间）
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Excel 文件"
// @Router /api/v1/analyses/export [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	var rows []models.AreaAnalysis
	if err := database.DB.Order("analyzed_at DESC").Find(&rows).Error; err != nil {
		InternalError(c, "查询分析记录失败: "+err.Error())
		return
	}

	// 创建 Excel 文件
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "分析记录"
	f.SetSheetName("Sheet1", sheetName)

	// 设置表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 数据样式
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 24)
	f.SetColWidth(sheetName, "E", "F", 14)
	f.SetColWidth(sheetName, "G", "H", 14)
	f.SetColWidth(sheetName, "I", "I", 20)

	// 写入表头
	headers := []string{"ID", "纬度", "经度", "位置", "平均湿度", "湿度趋势", "生长潜力", "适宜性", "分析时间"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	// 写入数据（坏行投影失败时留空统计列）
	for i, record := range rows {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), record.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), record.Latitude)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), record.Longitude)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), record.LocationName)
		if point, ok := toAnalysisPoint(record); ok {
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), point.SoilMoisture.Average)
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), point.SoilMoisture.Trend)
			f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), point.GrowthPotential.Score)
			f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), point.GrowthPotential.Suitability)
		}
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), record.AnalyzedAt.Format("2006-01-02 15:04:05"))

		// 设置数据样式
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("I%d", row), dataStyle)
	}

	// 设置响应头
	filename := fmt.Sprintf("分析记录_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))

	// 写入响应
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "生成 Excel 失败"})
		return
	}
}
