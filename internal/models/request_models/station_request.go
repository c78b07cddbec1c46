package request_models

type CreateStationRequest struct {
	StationName string  `json:"station_name" binding:"required"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

type UpdateStationRequest struct {
	StationName string  `json:"station_name"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Status      string  `json:"status"`
}

type CreateChargingPointRequest struct {
	PricePerKwh   float64 `json:"price_per_kwh" binding:"required"`
	MaxPowerKw    float64 `json:"max_power_kw"`
	ConnectorType string  `json:"connector_type"`
}

type UpdateChargingPointRequest struct {
	PricePerKwh float64 `json:"price_per_kwh"`
	MaxPowerKw  float64 `json:"max_power_kw"`
	Status      string  `json:"status"`
}
