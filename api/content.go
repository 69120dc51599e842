package api

import (
	"github.com/gin-gonic/gin"
)

// ContentHandler 静态研究内容处理器
// 数据为研究基线中的固定事实表，随二进制分发，不依赖数据库
type ContentHandler struct{}

// NewContentHandler 创建静态内容处理器
func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

// SatelliteDataset 卫星数据源条目
type SatelliteDataset struct {
	Name          string `json:"name"`
	Resolution    string `json:"resolution"`
	Bands         string `json:"bands"`
	Temporal      string `json:"temporal"`
	MLRole        string `json:"ml_role"`
	Preprocessing string `json:"preprocessing"`
}

// ClimateDataset 气候/再分析数据源条目
type ClimateDataset struct {
	Name        string `json:"name"`
	Resolution  string `json:"resolution"`
	Source      string `json:"source"`
	Description string `json:"description"`
	MLRole      string `json:"ml_role"`
}

// SatelliteCatalog 卫星与气候数据目录
type SatelliteCatalog struct {
	Satellite []SatelliteDataset `json:"satellite"`
	Climate   []ClimateDataset   `json:"climate"`
}

var satelliteCatalog = SatelliteCatalog{
	Satellite: []SatelliteDataset{
		{
			Name:          "Sentinel-1 SAR",
			Resolution:    "10m",
			Bands:         "VV, VH",
			Temporal:      "6-12 days",
			MLRole:        "Primary backscatter features for SM regression. VV/VH polarization ratios used as input features in RF and XGBoost models.",
			Preprocessing: "Radiometric calibration → Speckle filtering (Lee 5×5) → Terrain correction → dB conversion",
		},
		{
			Name:          "Sentinel-2 MSI",
			Resolution:    "10-20m",
			Bands:         "13 multispectral",
			Temporal:      "5 days",
			MLRole:        "Optical vegetation indices (NDVI, EVI, SAVI) as proxy features. Band ratios feed CNN feature extractors.",
			Preprocessing: "Atmospheric correction (Sen2Cor) → Cloud masking (SCL) → BRDF normalization → Compositing",
		},
		{
			Name:          "Landsat 8/9",
			Resolution:    "30m",
			Bands:         "11 bands + thermal",
			Temporal:      "16 days",
			MLRole:        "Long-term temporal analysis (1984–present). LST from thermal bands as auxiliary feature for SM-temperature coupling.",
			Preprocessing: "L2SP surface reflectance → Thermal radiance → LST retrieval → Pan-sharpening (15m)",
		},
		{
			Name:          "SRTM DEM",
			Resolution:    "30m",
			Bands:         "Elevation",
			Temporal:      "Static",
			MLRole:        "Topographic features (slope, TWI, curvature) as static predictors. TWI ranked top-5 feature importance in RF models.",
			Preprocessing: "Void filling → Hydrological conditioning → Flow direction/accumulation → TWI computation",
		},
	},
	Climate: []ClimateDataset{
		{Name: "ESA CCI Soil Moisture", Resolution: "0.25° × 0.25°", Source: "esa-soilmoisture-cci.org", Description: "Global SM from passive/active microwave", MLRole: "Target variable for coarse-scale model training & validation"},
		{Name: "MODIS LULC, NDVI, GPP, ET", Resolution: "500 m", Source: "lpdaacsvc.cr.usgs.gov", Description: "Land cover, vegetation indices, productivity", MLRole: "Land cover stratification for model ensembles; GPP as productivity proxy"},
		{Name: "GPM Level-3 Precipitation", Resolution: "0.1° × 0.1°", Source: "daac.gsfc.nasa.gov", Description: "High-res global precipitation", MLRole: "Antecedent precipitation index (API) as lagged feature input"},
		{Name: "GLDAS SM & Temperature", Resolution: "0.25° × 0.25°", Source: "daac.gsfc.nasa.gov", Description: "Land surface model reanalysis", MLRole: "SM baseline for bias correction; LST for thermal stress index"},
		{Name: "FLDAS Soil Heat Flux", Resolution: "0.1° × 0.25°", Source: "daac.gsfc.nasa.gov", Description: "Famine early-warning land data", MLRole: "Soil heat flux as energy balance feature for SM dynamics"},
		{Name: "IMD Precipitation", Resolution: "0.25° × 0.25°", Source: "imdpune.gov.in", Description: "India-specific gridded rainfall", MLRole: "Regional precipitation correction; monsoon onset detection"},
		{Name: "IMD Temperature", Resolution: "1° × 1°", Source: "imdpune.gov.in", Description: "India-specific gridded temperature", MLRole: "Temperature anomaly calculation for warming-stress coupling"},
	},
}

// ModelMetrics 模型验证指标
type ModelMetrics struct {
	R2   string `json:"r2"`
	RMSE string `json:"rmse"`
	MAE  string `json:"mae"`
}

// ModelCard 模型超参数卡片
type ModelCard struct {
	Name              string            `json:"name"`
	Type              string            `json:"type"`
	Hyperparams       map[string]string `json:"hyperparams"`
	Metrics           ModelMetrics      `json:"metrics"`
	Description       string            `json:"description"`
	FeatureImportance []string          `json:"feature_importance"`
}

var modelCards = []ModelCard{
	{
		Name: "Random Forest (RF)",
		Type: "Ensemble — Bagging",
		Hyperparams: map[string]string{
			"n_estimators":      "500",
			"max_depth":         "20",
			"min_samples_split": "5",
			"min_samples_leaf":  "2",
			"max_features":      "sqrt(n_features)",
			"bootstrap":         "True",
			"oob_score":         "True",
		},
		Metrics:     ModelMetrics{R2: "0.87", RMSE: "0.032 m³/m³", MAE: "0.024 m³/m³"},
		Description: "Primary model. Handles non-linear relationships between SAR backscatter and SM. OOB error used for early hyperparameter screening.",
		FeatureImportance: []string{
			"VH/VV Ratio (26.3%)", "NDVI (22.4%)", "TWI (18.7%)",
			"Precipitation lag-1 (14.1%)", "Temperature (8.9%)",
		},
	},
	{
		Name: "XGBoost (Gradient Boosted Trees)",
		Type: "Ensemble — Boosting",
		Hyperparams: map[string]string{
			"n_estimators":          "1000",
			"max_depth":             "8",
			"learning_rate":         "0.05",
			"subsample":             "0.8",
			"colsample_bytree":      "0.7",
			"reg_alpha":             "0.1",
			"reg_lambda":            "1.0",
			"early_stopping_rounds": "50",
		},
		Metrics:     ModelMetrics{R2: "0.89", RMSE: "0.029 m³/m³", MAE: "0.021 m³/m³"},
		Description: "Best performing model. L1/L2 regularization prevents overfitting on small sample sizes. SHAP values used for explainability.",
		FeatureImportance: []string{
			"VH/VV Ratio (28.1%)", "TWI (19.3%)", "NDVI (17.8%)",
			"API-7day (15.2%)", "Slope (9.6%)",
		},
	},
	{
		Name: "Support Vector Regression (SVR)",
		Type: "Kernel Methods",
		Hyperparams: map[string]string{
			"kernel":  "RBF",
			"C":       "100",
			"epsilon": "0.01",
			"gamma":   "scale (1/n_features × σ²)",
		},
		Metrics:     ModelMetrics{R2: "0.83", RMSE: "0.037 m³/m³", MAE: "0.028 m³/m³"},
		Description: "Effective for small datasets. RBF kernel captures non-linearity. GridSearchCV for C-epsilon-gamma optimization.",
		FeatureImportance: []string{
			"Kernel-based (no direct feature importance)",
			"Permutation importance used post-hoc",
		},
	},
	{
		Name: "1D-CNN + LSTM Hybrid",
		Type: "Deep Learning — Temporal",
		Hyperparams: map[string]string{
			"conv_filters": "64, 128",
			"kernel_size":  "3",
			"lstm_units":   "128",
			"dropout":      "0.3",
			"batch_size":   "32",
			"epochs":       "200 (early stop patience=20)",
			"optimizer":    "Adam (lr=1e-3, weight_decay=1e-5)",
			"loss":         "Huber (δ=1.0)",
		},
		Metrics:     ModelMetrics{R2: "0.91", RMSE: "0.026 m³/m³", MAE: "0.019 m³/m³"},
		Description: "Temporal sequence model. CNN extracts spatial features from multi-band input; LSTM captures temporal SM dynamics over 12-month windows.",
		FeatureImportance: []string{
			"Grad-CAM attention maps",
			"Highest activation on VH/VV + precipitation sequences",
		},
	},
}

// CMIP6Model CMIP6 气候模式条目
type CMIP6Model struct {
	Name        string `json:"name"`
	Resolution  string `json:"resolution"`
	Institution string `json:"institution"`
	Source      string `json:"source"`
}

// ProjectionPoint 不同 SSP 情景下的单年投影值
type ProjectionPoint struct {
	Year   string  `json:"year"`
	SSP126 float64 `json:"ssp126"`
	SSP245 float64 `json:"ssp245"`
	SSP585 float64 `json:"ssp585"`
}

// SeasonalImpact 季节尺度影响
type SeasonalImpact struct {
	Season       string  `json:"season"`
	SMChange     float64 `json:"sm_change"`
	TempChange   float64 `json:"temp_change"`
	PrecipChange float64 `json:"precip_change"`
	Risk         string  `json:"risk"`
}

// DriverImportance 土壤湿度驱动因子重要性
type DriverImportance struct {
	Driver     string  `json:"driver"`
	Importance float64 `json:"importance"`
}

// ClimateProjections 气候投影汇总
type ClimateProjections struct {
	Models          []CMIP6Model       `json:"models"`
	SoilMoisture    []ProjectionPoint  `json:"soil_moisture"`
	Temperature     []ProjectionPoint  `json:"temperature"`
	Seasonal        []SeasonalImpact   `json:"seasonal"`
	Drivers         []DriverImportance `json:"drivers"`
	WarmingRate     string             `json:"warming_rate"`
	SoilHeatFlux    string             `json:"soil_heat_flux"`
	ProductivityLag string             `json:"productivity_lag"`
}

var climateProjections = ClimateProjections{
	Models: []CMIP6Model{
		{Name: "GFDL-ESM4", Resolution: "1° × 1°", Institution: "NOAA-GFDL", Source: "esgf-node.llnl.gov"},
		{Name: "CNRM-CM6-1", Resolution: "0.5° × 0.5°", Institution: "CNRM-CERFACS", Source: "esgf-node.llnl.gov"},
		{Name: "HadGEM3-GC31", Resolution: "1.875° × 1.25°", Institution: "UK Met Office", Source: "esgf-node.llnl.gov"},
		{Name: "CanESM5", Resolution: "2.81° × 2.77°", Institution: "CCCma", Source: "esgf-node.llnl.gov"},
	},
	SoilMoisture: []ProjectionPoint{
		{Year: "2020", SSP126: 0.22, SSP245: 0.22, SSP585: 0.22},
		{Year: "2030", SSP126: 0.21, SSP245: 0.20, SSP585: 0.19},
		{Year: "2040", SSP126: 0.21, SSP245: 0.19, SSP585: 0.17},
		{Year: "2050", SSP126: 0.20, SSP245: 0.18, SSP585: 0.15},
		{Year: "2060", SSP126: 0.20, SSP245: 0.17, SSP585: 0.13},
		{Year: "2070", SSP126: 0.20, SSP245: 0.16, SSP585: 0.11},
		{Year: "2080", SSP126: 0.19, SSP245: 0.15, SSP585: 0.10},
		{Year: "2090", SSP126: 0.19, SSP245: 0.14, SSP585: 0.09},
		{Year: "2100", SSP126: 0.19, SSP245: 0.13, SSP585: 0.08},
	},
	Temperature: []ProjectionPoint{
		{Year: "2020", SSP126: 1.2, SSP245: 1.2, SSP585: 1.2},
		{Year: "2030", SSP126: 1.5, SSP245: 1.6, SSP585: 1.8},
		{Year: "2040", SSP126: 1.7, SSP245: 2.0, SSP585: 2.5},
		{Year: "2050", SSP126: 1.8, SSP245: 2.3, SSP585: 3.2},
		{Year: "2060", SSP126: 1.9, SSP245: 2.6, SSP585: 3.9},
		{Year: "2070", SSP126: 1.9, SSP245: 2.8, SSP585: 4.5},
		{Year: "2080", SSP126: 1.9, SSP245: 3.0, SSP585: 5.0},
		{Year: "2090", SSP126: 1.9, SSP245: 3.1, SSP585: 5.4},
		{Year: "2100", SSP126: 1.8, SSP245: 3.2, SSP585: 5.7},
	},
	Seasonal: []SeasonalImpact{
		{Season: "Pre-Monsoon (MAM)", SMChange: -3.2, TempChange: 1.8, PrecipChange: -5.1, Risk: "High"},
		{Season: "Monsoon (JJAS)", SMChange: -4.5, TempChange: 0.9, PrecipChange: 2.3, Risk: "Moderate"},
		{Season: "Post-Monsoon (ON)", SMChange: -2.1, TempChange: 1.2, PrecipChange: -3.8, Risk: "Moderate"},
		{Season: "Winter (DJF)", SMChange: -3.0, TempChange: 1.5, PrecipChange: -7.2, Risk: "High"},
	},
	Drivers: []DriverImportance{
		{Driver: "Temperature", Importance: 30.76},
		{Driver: "Precipitation", Importance: 26.34},
		{Driver: "Evapotranspiration", Importance: 26.08},
		{Driver: "Surface Greenness", Importance: 16.82},
	},
	WarmingRate:     "0.59°C/decade",
	SoilHeatFlux:    "0.16 W/m²/decade",
	ProductivityLag: "1 month",
}

// MoistureClass 湿度分级
type MoistureClass struct {
	Range       string `json:"range"`
	Label       string `json:"label"`
	Suitability string `json:"suitability"`
}

// SpeciesSuitability 树种适宜性条目
type SpeciesSuitability struct {
	Species      string `json:"species"`
	Moisture     string `json:"moisture"`
	PH           string `json:"ph"`
	Slope        string `json:"slope"`
	SuitableArea string `json:"suitable_area"`
	Rating       string `json:"rating"`
}

// SpeciesCatalog 湿度分级与树种适宜性
type SpeciesCatalog struct {
	MoistureClasses []MoistureClass      `json:"moisture_classes"`
	Species         []SpeciesSuitability `json:"species"`
}

var speciesCatalog = SpeciesCatalog{
	MoistureClasses: []MoistureClass{
		{Range: "< 10%", Label: "Very Dry", Suitability: "Low"},
		{Range: "10-15%", Label: "Dry", Suitability: "Low-Moderate"},
		{Range: "15-20%", Label: "Moderate", Suitability: "Moderate"},
		{Range: "20-25%", Label: "Moist", Suitability: "High"},
		{Range: "> 25%", Label: "Very Moist", Suitability: "Very High"},
	},
	Species: []SpeciesSuitability{
		{Species: "Acacia nilotica", Moisture: "15-25%", PH: "6.5-8.5", Slope: "< 30%", SuitableArea: "45%", Rating: "High"},
		{Species: "Azadirachta indica", Moisture: "18-28%", PH: "6.0-8.0", Slope: "< 20%", SuitableArea: "32%", Rating: "High"},
		{Species: "Dalbergia sissoo", Moisture: "20-30%", PH: "6.5-7.5", Slope: "< 15%", SuitableArea: "18%", Rating: "Moderate"},
		{Species: "Leucaena leucocephala", Moisture: "12-22%", PH: "5.5-8.5", Slope: "< 35%", SuitableArea: "52%", Rating: "Very High"},
	},
}

// GetSatelliteDatasets 获取卫星与气候数据目录
// @Summary 卫星数据目录
// @Tags 研究内容
// @Produce json
// @Success 200 {object} Response{data=SatelliteCatalog} "获取成功"
// @Router /api/v1/content/satellite-datasets [get]
func (h *ContentHandler) GetSatelliteDatasets(c *gin.Context) {
	Success(c, satelliteCatalog)
}

// GetModels 获取模型超参数卡片
// @Summary 模型超参数
// @Tags 研究内容
// @Produce json
// @Success 200 {object} Response{data=[]ModelCard} "获取成功"
// @Router /api/v1/content/models [get]
func (h *ContentHandler) GetModels(c *gin.Context) {
	Success(c, modelCards)
}

// GetClimateProjections 获取 CMIP6 气候投影
// @Summary 气候投影
// @Tags 研究内容
// @Produce json
// @Success 200 {object} Response{data=ClimateProjections} "获取成功"
// @Router /api/v1/content/climate-projections [get]
func (h *ContentHandler) GetClimateProjections(c *gin.Context) {
	Success(c, climateProjections)
}

// GetSpecies 获取湿度分级与树种适宜性
// @Summary 树种适宜性
// @Tags 研究内容
// @Produce json
// @Success 200 {object} Response{data=SpeciesCatalog} "获取成功"
// @Router /api/v1/content/species [get]
func (h *ContentHandler) GetSpecies(c *gin.Context) {
	Success(c, speciesCatalog)
}
