package aircraft

import (
	"github.com/gin-gonic/gin"
)

func SetupAircraftRoutes(rg *gin.RouterGroup, controller Controller) {
	// Cabin configurations are public; clients need them to render seat
	// maps before anyone signs in.
	types := rg.Group("/aircraft-types")
	{
		types.GET("", controller.ListTypes)
		types.GET("/:typeId", controller.GetType)
	}
}
