package controllers

import (
	"evcharge/internal/models/request_models"
	"evcharge/internal/services"
	"evcharge/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"
	"strconv"
)

type StationController struct {
	stationService services.StationServiceInterface
}

func NewStationController(stationService services.StationServiceInterface) *StationController {
	return &StationController{
		stationService: stationService,
	}
}

func (s *StationController) CreateStation(c *gin.Context) {

	var request request_models.CreateStationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	station, err := s.stationService.CreateStation(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, station, "Station created")
}

func (s *StationController) GetStation(c *gin.Context) {

	stationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid station id")
		return
	}

	station, err := s.stationService.GetStation(c.Request.Context(), stationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, station, "")
}

func (s *StationController) ListStations(c *gin.Context) {

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	stations, err := s.stationService.ListStations(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stations, "")
}

func (s *StationController) UpdateStation(c *gin.Context) {

	stationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid station id")
		return
	}

	var request request_models.UpdateStationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	station, err := s.stationService.UpdateStation(c.Request.Context(), stationID, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, station, "Station updated")
}

func (s *StationController) DeleteStation(c *gin.Context) {

	stationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid station id")
		return
	}

	if err := s.stationService.DeleteStation(c.Request.Context(), stationID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Station deleted")
}

func (s *StationController) AddChargingPoint(c *gin.Context) {

	stationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid station id")
		return
	}

	var request request_models.CreateChargingPointRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	point, err := s.stationService.AddChargingPoint(c.Request.Context(), stationID, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, point, "Charging point created")
}

func (s *StationController) UpdateChargingPoint(c *gin.Context) {

	pointID, err := uuid.Parse(c.Param("pointId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid charging point id")
		return
	}

	var request request_models.UpdateChargingPointRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	point, err := s.stationService.UpdateChargingPoint(c.Request.Context(), pointID, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, point, "Charging point updated")
}
