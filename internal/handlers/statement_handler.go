package handlers

import (
	"context"
	"net/http"

	"billing-service/internal/domain"
	"billing-service/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StatementService interface {
	Statement(ctx context.Context, q services.StatementQuery) (*domain.Statement, error)
}

type StatementHandler struct {
	logger  *zap.Logger
	service StatementService
}

func NewStatementHandler(logger *zap.Logger, service StatementService) *StatementHandler {
	return &StatementHandler{logger: logger, service: service}
}

// GetStatement handles GET /statements/:buyer_id
// @Summary      Buyer statement
// @Description  Sums the buyer's invoices dated within [start_date, end_date]. Both bounds are optional and inclusive.
// @Tags         statements
// @Produce      json
// @Param        buyer_id    path      string  true   "Buyer ID (UUID)"
// @Param        start_date  query     string  false  "YYYY-MM-DD"
// @Param        end_date    query     string  false  "YYYY-MM-DD"
// @Success      200         {object}  domain.Statement
// @Failure      400         {object}  ErrorResponse  "Malformed identifier or date"
// @Failure      404         {object}  ErrorResponse
// @Router       /statements/{buyer_id} [get]
func (h *StatementHandler) GetStatement(c *gin.Context) {
	st, err := h.service.Statement(c.Request.Context(), services.StatementQuery{
		BuyerID:   c.Param("buyer_id"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, st)
}
