package controllers

import (
	"evcharge/internal/models/request_models"
	"evcharge/internal/services"
	"evcharge/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// ProcessPayment computes the amount for a session, creates the transaction
// and either settles it (cash-equivalents) or returns a gateway redirect URL.
func (p *PaymentController) ProcessPayment(c *gin.Context) {

	var request request_models.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	sessionID, err := uuid.Parse(request.SessionID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid session id")
		return
	}

	response, err := p.paymentService.ProcessPayment(c.Request.Context(), sessionID, request.PaymentMethod, request.ReturnURL)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response, "Payment processed")
}

func (p *PaymentController) QuoteAmount(c *gin.Context) {

	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid session id")
		return
	}

	amount, err := p.paymentService.QuoteAmount(c.Request.Context(), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"session_id": sessionID, "amount": amount}, "Amount calculated")
}
