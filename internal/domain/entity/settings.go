package entity

// Temas de la interfaz.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Formatos de fecha conocidos por los reportes.
const (
	DateFormatPtBR = "pt-BR"
	DateFormatEnUS = "en-US"
	DateFormatISO  = "ISO"
)

// Settings preferencias del usuario, persistidas junto a los datos (clave "config").
type Settings struct {
	DateFormat     string `json:"formatoData"`
	CalculateValue bool   `json:"calcularValor"`
	Currency       string `json:"moeda"`
	Theme          string `json:"theme"`
}

// DefaultSettings valores iniciales de la configuración.
func DefaultSettings() Settings {
	return Settings{
		DateFormat:     DateFormatPtBR,
		CalculateValue: false,
		Currency:       "R$",
		Theme:          ThemeLight,
	}
}

// Layout devuelve el layout de time.Format correspondiente a DateFormat.
func (s Settings) Layout() string {
	switch s.DateFormat {
	case DateFormatEnUS:
		return "01/02/2006"
	case DateFormatISO:
		return "2006-01-02"
	default:
		return "02/01/2006"
	}
}
