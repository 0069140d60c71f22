package cluster

import (
	"github.com/gin-gonic/gin"
)

func Routes(r *gin.RouterGroup, handler Handler) {
	r.POST("/clusters", handler.Generate)
	r.POST("/clusters/preview", handler.Preview)
	r.GET("/clusters", handler.FindAll)
	r.GET("/clusters/:id", handler.Find)
	r.GET("/clusters/:id/descriptor", handler.Descriptor)
	r.DELETE("/clusters/:id", handler.Delete)

	// catalog routes live at the top level, gin does not allow static
	// segments next to the :id wildcard
	r.GET("/defaults", handler.Defaults)
	r.GET("/vendors", handler.Vendors)
	r.GET("/versions", handler.Versions)
}
