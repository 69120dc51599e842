package api

import (
	"bytes"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportHandler_ExportExcel(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT .* FROM `area_analyses`").
		WillReturnRows(sqlmock.NewRows(analysisColumns).
			AddRow(analysisRow(1, 22.1564, 85.5184, "0.234", "55.0", now)...))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/analyses/export", NewExportHandler().ExportExcel)

	req := httptest.NewRequest("GET", "/api/v1/analyses/export", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	// 回读生成的 Excel
	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	sheetRows, err := f.GetRows("分析记录")
	require.NoError(t, err)
	require.Len(t, sheetRows, 2)

	assert.Equal(t, []string{"ID", "纬度", "经度", "位置", "平均湿度", "湿度趋势", "生长潜力", "适宜性", "分析时间"}, sheetRows[0])
	assert.Equal(t, "1", sheetRows[1][0])
	assert.Equal(t, "Mine Overburden Area", sheetRows[1][3])
	assert.Equal(t, "0.234", sheetRows[1][4])
	assert.Equal(t, "stable", sheetRows[1][5])
	assert.Equal(t, "2024-06-01 08:00:00", sheetRows[1][8])

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_CorruptRowKeepsBaseColumns(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	corrupt := analysisRow(2, 22.1, 85.1, "0.200", "50.0", time.Now())
	corrupt[4] = "not valid json"
	mock.ExpectQuery("SELECT .* FROM `area_analyses`").
		WillReturnRows(sqlmock.NewRows(analysisColumns).AddRow(corrupt...))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/analyses/export", NewExportHandler().ExportExcel)

	req := httptest.NewRequest("GET", "/api/v1/analyses/export", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	// 坏行保留基础列，统计列留空
	id, err := f.GetCellValue("分析记录", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2", id)
	moisture, err := f.GetCellValue("分析记录", "E2")
	require.NoError(t, err)
	assert.Empty(t, moisture)

	require.NoError(t, mock.ExpectationsWereMet())
}
