package dto

// UpdateSettingsRequest cambios parciales de configuración; nil = sin cambio.
type UpdateSettingsRequest struct {
	DateFormat     *string `json:"formatoData"`
	CalculateValue *bool   `json:"calcularValor"`
	Currency       *string `json:"moeda"`
	Theme          *string `json:"theme"`
}
