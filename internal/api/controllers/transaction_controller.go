package controllers

import (
	"evcharge/internal/models/db_models"
	"evcharge/internal/models/response_models"
	"evcharge/internal/services"
	"evcharge/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"
)

type TransactionController struct {
	transactionService services.TransactionServiceInterface
}

func NewTransactionController(transactionService services.TransactionServiceInterface) *TransactionController {
	return &TransactionController{
		transactionService: transactionService,
	}
}

func (t *TransactionController) GetTransaction(c *gin.Context) {

	txnID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	txn, err := t.transactionService.GetTransactionByID(c.Request.Context(), txnID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, transactionResponse(txn), "")
}

func (t *TransactionController) ListMyTransactions(c *gin.Context) {

	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	txns, err := t.transactionService.ListTransactionsByUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, transactionResponses(txns), "")
}

func (t *TransactionController) ListSessionTransactions(c *gin.Context) {

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid session id")
		return
	}

	txns, err := t.transactionService.ListTransactionsBySession(c.Request.Context(), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, transactionResponses(txns), "")
}

func transactionResponse(txn *db_models.Transaction) response_models.TransactionResponse {
	return response_models.TransactionResponse{
		TransactionID: txn.ID,
		SessionID:     txn.SessionID,
		UserID:        txn.UserID,
		Amount:        txn.Amount,
		PaymentMethod: string(txn.Method),
		Status:        string(txn.Status),
		TxnRef:        txn.TxnRef,
		CreatedAt:     txn.CreatedAt,
	}
}

func transactionResponses(txns []db_models.Transaction) []response_models.TransactionResponse {
	out := make([]response_models.TransactionResponse, 0, len(txns))
	for i := range txns {
		out = append(out, transactionResponse(&txns[i]))
	}
	return out
}
