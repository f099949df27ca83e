package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/shop-api/internal/app/service"
	apperrors "github.com/ikkim/shop-api/internal/errors"
	"github.com/ikkim/shop-api/internal/middleware"
	"github.com/ikkim/shop-api/internal/report"
)

type ReportController struct {
	shopService service.ShopService
}

func NewReportController(shopService service.ShopService) *ReportController {
	return &ReportController{
		shopService: shopService,
	}
}

// DownloadCatalog streams the catalog workbook
// GET /report/catalog.xlsx
func (ctrl *ReportController) DownloadCatalog(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	snapshot, err := ctrl.shopService.Snapshot()
	if err != nil {
		respondServiceError(c, log, "Failed to snapshot catalog", err, nil)
		return
	}

	data, err := report.BuildCatalogWorkbook(snapshot.Items, snapshot.Carts)
	if err != nil {
		log.Error("Failed to build catalog report", err, nil)
		apperrors.InternalError(c, apperrors.InternalReportError, "Failed to build report")
		return
	}

	log.Info("Catalog report generated", map[string]interface{}{
		"items": len(snapshot.Items),
		"carts": len(snapshot.Carts),
		"bytes": len(data),
	})

	c.Header("Content-Disposition", `attachment; filename="catalog.xlsx"`)
	c.Data(http.StatusOK, report.ContentType, data)
}
