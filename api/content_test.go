package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContentRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewContentHandler()
	router.GET("/api/v1/content/satellite-datasets", h.GetSatelliteDatasets)
	router.GET("/api/v1/content/models", h.GetModels)
	router.GET("/api/v1/content/climate-projections", h.GetClimateProjections)
	router.GET("/api/v1/content/species", h.GetSpecies)
	return router
}

func getJSON(t *testing.T, router *gin.Engine, path string, out interface{}) {
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	var resp struct {
		Code int             `json:"code"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 200, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

func TestContentHandler_SatelliteDatasets(t *testing.T) {
	router := newContentRouter()

	var catalog SatelliteCatalog
	getJSON(t, router, "/api/v1/content/satellite-datasets", &catalog)

	require.Len(t, catalog.Satellite, 4)
	require.Len(t, catalog.Climate, 7)
	assert.Equal(t, "Sentinel-1 SAR", catalog.Satellite[0].Name)
	assert.Equal(t, "10m", catalog.Satellite[0].Resolution)
	assert.Equal(t, "ESA CCI Soil Moisture", catalog.Climate[0].Name)
}

func TestContentHandler_Models(t *testing.T) {
	router := newContentRouter()

	var cards []ModelCard
	getJSON(t, router, "/api/v1/content/models", &cards)

	require.Len(t, cards, 4)
	assert.Equal(t, "Random Forest (RF)", cards[0].Name)
	assert.Equal(t, "0.87", cards[0].Metrics.R2)
	assert.Equal(t, "500", cards[0].Hyperparams["n_estimators"])
	assert.NotEmpty(t, cards[0].FeatureImportance)
}

func TestContentHandler_ClimateProjections(t *testing.T) {
	router := newContentRouter()

	var projections ClimateProjections
	getJSON(t, router, "/api/v1/content/climate-projections", &projections)

	require.Len(t, projections.Models, 4)
	require.Len(t, projections.SoilMoisture, 9)
	require.Len(t, projections.Temperature, 9)
	require.Len(t, projections.Seasonal, 4)
	require.Len(t, projections.Drivers, 4)
	assert.Equal(t, "0.59°C/decade", projections.WarmingRate)
}

func TestContentHandler_Species(t *testing.T) {
	router := newContentRouter()

	var catalog SpeciesCatalog
	getJSON(t, router, "/api/v1/content/species", &catalog)

	require.Len(t, catalog.MoistureClasses, 5)
	require.Len(t, catalog.Species, 4)
}
