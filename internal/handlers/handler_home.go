package handlers

import (
	"net/http"

	"github.com/SscSPs/personal_finance_app/internal/utils/mapping"
	"github.com/gin-gonic/gin"
)

// getHealth godoc
// @Summary Show the status of server.
// @Tags root
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// getCatalog godoc
// @Summary Form catalog
// @Description Lists the transaction types, account types, frequencies and categories accepted by the API
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.CatalogResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /catalog [get]
func getCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, mapping.ToCatalogResponse())
}
