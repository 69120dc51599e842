package service

// 区域分析结果的响应结构
// 字段名与前端约定保持 camelCase，数值统计以定长小数字符串下发

// AnalysisResult 单次区域分析的完整结果
type AnalysisResult struct {
	Location          Location           `json:"location"`
	TimeRange         TimeRange          `json:"timeRange"`
	SoilMoisture      SoilMoisture       `json:"soilMoisture"`
	ClimateDrivers    *ClimateDrivers    `json:"climateDrivers,omitempty"`
	VegetationIndices VegetationIndices  `json:"vegetationIndices"`
	SoilProperties    SoilProperties     `json:"soilProperties"`
	GrowthPotential   GrowthPotential    `json:"growthPotential"`
	DataQuality       DataQuality        `json:"dataQuality"`
}

// Location 分析位置信息
type Location struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Area       string  `json:"area"`
	BufferSize int     `json:"bufferSize"`
}

// TimeRange 分析时间范围（原样回显请求日期）
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SoilMoisture 土壤湿度统计
type SoilMoisture struct {
	Average       string `json:"average"`
	Min           string `json:"min"`
	Max           string `json:"max"`
	Unit          string `json:"unit"`
	Trend         string `json:"trend"`
	WarmingStress string `json:"warmingStress,omitempty"` // climate 变体专有
}

// ClimateDrivers 土壤湿度驱动因子（climate 变体专有）
// 重要性权重与增暖常数为固定值，取自研究论文结论
type ClimateDrivers struct {
	Temperature           float64 `json:"temperature"`
	Precipitation         float64 `json:"precipitation"`
	Evapotranspiration    float64 `json:"evapotranspiration"`
	SurfaceGreenness      float64 `json:"surfaceGreenness"`
	WarmingRate           string  `json:"warmingRate"`
	SoilHeatFluxTrend     string  `json:"soilHeatFluxTrend"`
	ProductivityLagMonths int     `json:"productivityLagMonths"`
}

// VegetationIndex 单个植被指数
type VegetationIndex struct {
	Average     string `json:"average"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description"`
}

// VegetationIndices 植被指数集合
type VegetationIndices struct {
	NDVI VegetationIndex `json:"ndvi"`
	SAVI VegetationIndex `json:"savi"`
	EVI  VegetationIndex `json:"evi"`
}

// SoilProperties 土壤理化性质（带单位的格式化字符串）
type SoilProperties struct {
	OrganicCarbon string `json:"organicCarbon"`
	PH            string `json:"pH"`
	BulkDensity   string `json:"bulkDensity"`
	Texture       string `json:"texture"`
}

// GrowthPotential 植被恢复潜力评估
type GrowthPotential struct {
	Score              string   `json:"score"`
	Suitability        string   `json:"suitability"`
	RecommendedSpecies []string `json:"recommendedSpecies"`
	Limitations        []string `json:"limitations"`
	Recommendations    []string `json:"recommendations"`
}

// DataQuality 数据质量指标
type DataQuality struct {
	CloudCover string `json:"cloudCover"`
	ImageCount int    `json:"imageCount"`
	Confidence string `json:"confidence"`
}

// StoredSoilMoisture 入库行中 soil_moisture 列的投影（地图/图表读取用）
type StoredSoilMoisture struct {
	Average string `json:"average"`
	Min     string `json:"min"`
	Max     string `json:"max"`
	Trend   string `json:"trend"`
}

// StoredGrowthPotential 入库行中 growth_potential 列的投影
type StoredGrowthPotential struct {
	Score       string `json:"score"`
	Suitability string `json:"suitability"`
}

// 趋势与增温胁迫枚举
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"

	StressLow      = "Low"
	StressModerate = "Moderate"
	StressHigh     = "High"
)
