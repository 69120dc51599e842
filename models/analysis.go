package models

import (
	"time"

	"gorm.io/gorm"
)

// AreaAnalysis 区域分析记录（单次分析入库一行）
// 四个统计块以 JSON 文本整体存储，读取侧按需解码
type AreaAnalysis struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	Latitude          float64        `json:"latitude" gorm:"type:decimal(10,6);not null;index:idx_coord"`
	Longitude         float64        `json:"longitude" gorm:"type:decimal(10,6);not null;index:idx_coord"`
	LocationName      string         `json:"location_name" gorm:"size:100;not null"`
	SoilMoisture      string         `json:"soil_moisture" gorm:"type:json;not null"`
	VegetationIndices string         `json:"vegetation_indices" gorm:"type:json;not null"`
	SoilProperties    string         `json:"soil_properties" gorm:"type:json;not null"`
	GrowthPotential   string         `json:"growth_potential" gorm:"type:json;not null"`
	AnalyzedAt        time.Time      `json:"analyzed_at" gorm:"not null;index"`
	DeletedAt         gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (AreaAnalysis) TableName() string {
	return "area_analyses"
}
