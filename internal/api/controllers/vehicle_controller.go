package controllers

import (
	"evcharge/internal/models/request_models"
	"evcharge/internal/services"
	"evcharge/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"
)

type VehicleController struct {
	vehicleService services.VehicleServiceInterface
}

func NewVehicleController(vehicleService services.VehicleServiceInterface) *VehicleController {
	return &VehicleController{
		vehicleService: vehicleService,
	}
}

func (v *VehicleController) CreateVehicle(c *gin.Context) {

	userID, err := currentUserID(c)
	if err != nil {
		return
	}

	var request request_models.CreateVehicleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	vehicle, err := v.vehicleService.CreateVehicle(c.Request.Context(), userID, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vehicle, "Vehicle created")
}

func (v *VehicleController) GetVehicle(c *gin.Context) {

	userID, err := currentUserID(c)
	if err != nil {
		return
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid vehicle id")
		return
	}

	vehicle, err := v.vehicleService.GetVehicle(c.Request.Context(), userID, vehicleID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vehicle, "")
}

func (v *VehicleController) ListVehicles(c *gin.Context) {

	userID, err := currentUserID(c)
	if err != nil {
		return
	}

	vehicles, err := v.vehicleService.ListVehicles(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vehicles, "")
}

func (v *VehicleController) UpdateVehicle(c *gin.Context) {

	userID, err := currentUserID(c)
	if err != nil {
		return
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid vehicle id")
		return
	}

	var request request_models.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	vehicle, err := v.vehicleService.UpdateVehicle(c.Request.Context(), userID, vehicleID, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vehicle, "Vehicle updated")
}

func (v *VehicleController) DeleteVehicle(c *gin.Context) {

	userID, err := currentUserID(c)
	if err != nil {
		return
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid vehicle id")
		return
	}

	if err := v.vehicleService.DeleteVehicle(c.Request.Context(), userID, vehicleID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Vehicle deleted")
}
