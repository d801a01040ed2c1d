// Package healthz implements the application health endpoint.
package healthz

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the health endpoint.
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Produce	json
// @Success	204
// @Failure	500	{object}	httputil.HTTPError
// @Router		/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		httputil.NewError(c, http.StatusInternalServerError, err)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		httputil.NewError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}
