package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	handler "reimbursement-backend/internal/handlers"
	"reimbursement-backend/internal/repository"
	"reimbursement-backend/internal/services/notification"
	service "reimbursement-backend/internal/services/reimburse"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, log *slog.Logger) {
	reimbursementRepo := repository.NewReimbursementRepository(db)
	memberRepo := repository.NewMemberRepository(db)

	sender := notification.NewLogSender(log)
	svc := service.NewService(reimbursementRepo, memberRepo, sender, log)

	h := handler.NewReimbursementHandler(svc)

	// Health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Reimbursement routes
	reimbursements := r.Group("/reimbursements")
	reimbursements.POST("", h.Create)
	reimbursements.GET("", h.List)
	reimbursements.GET("/:id", h.Get)
	reimbursements.PATCH("/:id", h.Update)
	reimbursements.DELETE("/:id", h.Delete)
}
