package service

import (
	"strconv"
	"strings"
	"testing"

	"soilwatch/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDecimal(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(s, 64)
	require.NoError(t, err, "应为可解析的小数字符串: %q", s)
	return v
}

func TestGenerator_Baseline(t *testing.T) {
	g := NewGenerator(config.VariantBaseline)

	for i := 0; i < 200; i++ {
		r := g.Generate(22.1564, 85.5184, 1000, "2024-01-01", "2024-12-31")

		// 位置与时间范围原样回显
		assert.Equal(t, 22.1564, r.Location.Latitude)
		assert.Equal(t, 85.5184, r.Location.Longitude)
		assert.Equal(t, "Mine Overburden Area", r.Location.Area)
		assert.Equal(t, 1000, r.Location.BufferSize)
		assert.Equal(t, "2024-01-01", r.TimeRange.Start)
		assert.Equal(t, "2024-12-31", r.TimeRange.End)

		// 湿度统计各自落在固定区间内
		avg := parseDecimal(t, r.SoilMoisture.Average)
		assert.GreaterOrEqual(t, avg, 0.1)
		assert.LessOrEqual(t, avg, 0.4)
		min := parseDecimal(t, r.SoilMoisture.Min)
		assert.GreaterOrEqual(t, min, 0.0)
		assert.LessOrEqual(t, min, 0.1)
		max := parseDecimal(t, r.SoilMoisture.Max)
		assert.GreaterOrEqual(t, max, 0.4)
		assert.LessOrEqual(t, max, 0.6)
		assert.Equal(t, "m³/m³", r.SoilMoisture.Unit)
		assert.Contains(t, []string{TrendIncreasing, TrendStable}, r.SoilMoisture.Trend)

		// baseline 变体不带气候字段
		assert.Empty(t, r.SoilMoisture.WarmingStress)
		assert.Nil(t, r.ClimateDrivers)

		// 生长潜力评分 40-80
		score := parseDecimal(t, r.GrowthPotential.Score)
		assert.GreaterOrEqual(t, score, 40.0)
		assert.LessOrEqual(t, score, 80.0)
		assert.Contains(t, []string{"Moderate", "Good"}, r.GrowthPotential.Suitability)
		assert.Len(t, r.GrowthPotential.RecommendedSpecies, 4)

		// 数据质量
		assert.True(t, strings.HasSuffix(r.DataQuality.CloudCover, "%"))
		assert.GreaterOrEqual(t, r.DataQuality.ImageCount, 10)
		assert.Less(t, r.DataQuality.ImageCount, 30)
		confidence := parseDecimal(t, strings.TrimSuffix(r.DataQuality.Confidence, "%"))
		assert.GreaterOrEqual(t, confidence, 85.0)
		assert.LessOrEqual(t, confidence, 100.0)
	}
}

func TestGenerator_Baseline_IndependentDraws(t *testing.T) {
	// 同一输入两次调用应得到结构相同、数值独立的结果
	g := NewGenerator(config.VariantBaseline)
	a := g.Generate(22.1564, 85.5184, 1000, "2024-01-01", "2024-12-31")
	b := g.Generate(22.1564, 85.5184, 1000, "2024-01-01", "2024-12-31")

	assert.Equal(t, a.Location, b.Location)
	// 200 次独立采样下六个统计量全部相同的概率可忽略
	same := a.SoilMoisture.Average == b.SoilMoisture.Average &&
		a.SoilMoisture.Min == b.SoilMoisture.Min &&
		a.SoilMoisture.Max == b.SoilMoisture.Max &&
		a.GrowthPotential.Score == b.GrowthPotential.Score &&
		a.VegetationIndices.NDVI.Average == b.VegetationIndices.NDVI.Average &&
		a.DataQuality.Confidence == b.DataQuality.Confidence
	assert.False(t, same, "两次调用不应生成完全相同的数值")
}

func TestGenerator_Climate(t *testing.T) {
	g := NewGenerator(config.VariantClimate)

	for i := 0; i < 200; i++ {
		r := g.Generate(22.1564, 85.5184, 1000, "2024-01-01", "2024-12-31")

		avg := parseDecimal(t, r.SoilMoisture.Average)
		assert.Greater(t, avg, 0.0)
		assert.LessOrEqual(t, avg, 0.25)

		// min/max 由 average 固定倍率推导，排序关系结构性成立
		min := parseDecimal(t, r.SoilMoisture.Min)
		max := parseDecimal(t, r.SoilMoisture.Max)
		assert.InDelta(t, avg*0.6, min, 0.002)
		assert.InDelta(t, avg*1.4, max, 0.002)
		assert.LessOrEqual(t, min, avg)
		assert.LessOrEqual(t, avg, max)

		assert.Contains(t, []string{TrendIncreasing, TrendStable, TrendDecreasing}, r.SoilMoisture.Trend)
		assert.Contains(t, []string{StressLow, StressModerate, StressHigh}, r.SoilMoisture.WarmingStress)

		require.NotNil(t, r.ClimateDrivers)
		assert.Equal(t, 30.76, r.ClimateDrivers.Temperature)
		assert.Equal(t, 26.34, r.ClimateDrivers.Precipitation)
		assert.Equal(t, 26.08, r.ClimateDrivers.Evapotranspiration)
		assert.Equal(t, 16.82, r.ClimateDrivers.SurfaceGreenness)
		assert.Equal(t, "0.59°C/decade", r.ClimateDrivers.WarmingRate)
		assert.Equal(t, 1, r.ClimateDrivers.ProductivityLagMonths)
	}
}

func TestClimateMoisture(t *testing.T) {
	// 28°C 无温度惩罚
	assert.InDelta(t, 0.25, climateMoisture(28, 1.0), 1e-9)
	// 36°C 时 tempEffect = 1 - 8*0.03 = 0.76
	assert.InDelta(t, 0.25*0.76, climateMoisture(36, 1.0), 1e-9)
	// 降水因子线性作用
	assert.InDelta(t, 0.25*0.7, climateMoisture(28, 0.7), 1e-9)
	// 极端高温截断到 0
	assert.Equal(t, 0.0, climateMoisture(70, 1.0))
}

func TestClimateThresholds(t *testing.T) {
	// 趋势与增温胁迫共用温度阈值，随温度单调变差
	assert.Equal(t, TrendIncreasing, climateTrend(28.5))
	assert.Equal(t, StressLow, warmingStress(28.5))

	assert.Equal(t, TrendStable, climateTrend(30))
	assert.Equal(t, StressModerate, warmingStress(31.7))

	assert.Equal(t, TrendDecreasing, climateTrend(33))
	assert.Equal(t, StressHigh, warmingStress(35.9))
}

func TestFormatFixed(t *testing.T) {
	assert.Equal(t, "0.123", formatFixed(0.1234, 3))
	assert.Equal(t, "0.200", formatFixed(0.2, 3))
	assert.Equal(t, "6.8", formatFixed(6.75, 1))
	assert.Equal(t, "1.30", formatFixed(1.3, 2))
}
