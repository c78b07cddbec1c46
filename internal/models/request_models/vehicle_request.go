package request_models

type CreateVehicleRequest struct {
	PlateNumber   string  `json:"plate_number" binding:"required"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	CapacityKwh   float64 `json:"capacity_kwh"`
	ProductYear   int32   `json:"product_year"`
	ConnectorType string  `json:"connector_type"`
}

type UpdateVehicleRequest struct {
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	CapacityKwh   float64 `json:"capacity_kwh"`
	ProductYear   int32   `json:"product_year"`
	ConnectorType string  `json:"connector_type"`
}
