package controllers

import (
	"evcharge/internal/services"
	"evcharge/pkg/utils"
	"github.com/gin-gonic/gin"
	"net/http"
)

type VNPayController struct {
	paymentService services.PaymentServiceInterface
}

func NewVNPayController(paymentService services.PaymentServiceInterface) *VNPayController {
	return &VNPayController{
		paymentService: paymentService,
	}
}

// HandleCallback is the browser return URL. The gateway appends its result
// parameters and signature to the query string.
func (v *VNPayController) HandleCallback(c *gin.Context) {

	response, err := v.paymentService.HandleGatewayCallback(c.Request.Context(), queryParams(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response, "Payment callback processed")
}

// HandleIPN is the server-to-server notification endpoint. VNPay expects the
// fixed RspCode/Message body with HTTP 200 regardless of outcome.
func (v *VNPayController) HandleIPN(c *gin.Context) {
	c.JSON(http.StatusOK, v.paymentService.HandleGatewayIPN(c.Request.Context(), queryParams(c)))
}

// queryParams flattens the request parameters into a single-valued map.
// Form merges the URL query with a form-encoded body, so the GET callback
// and the POST notification share one path.
func queryParams(c *gin.Context) map[string]string {
	_ = c.Request.ParseForm()

	params := make(map[string]string, len(c.Request.Form))
	for key, values := range c.Request.Form {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}
