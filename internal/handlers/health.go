package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	DB *gorm.DB
}

func (h *HealthHandler) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "CollabLab API running"})
}

// TestDatabase reports store connectivity and up to ten table names.
func (h *HealthHandler) TestDatabase(ctx *gin.Context) {
	response := gin.H{
		"backend":           "running",
		"database":          "not available",
		"connection_status": "not connected",
		"collections":       []string{},
	}

	sqlDB, err := h.DB.DB()

	if err == nil && sqlDB.Ping() == nil {
		response["database"] = "connected"
		response["connection_status"] = "connected"

		if tables, err := h.DB.Migrator().GetTables(); err == nil {
			if len(tables) > 10 {
				tables = tables[:10]
			}
			response["collections"] = tables
		}
	}

	ctx.JSON(http.StatusOK, response)
}
