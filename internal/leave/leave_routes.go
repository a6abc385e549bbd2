package leave

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leaves := r.Group("/leaves")
	{
		leaves.GET("", handler.GetAll)
		leaves.POST("", handler.Create)
	}

	admin := r.Group("/admin")
	{
		admin.GET("/pending", handler.Pending)
		admin.POST("/leaves/:id/approve", handler.Approve)
		admin.POST("/leaves/:id/reject", handler.Reject)
	}
}
