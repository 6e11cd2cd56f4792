package weather

// Glyph maps a WMO weather code to its display glyph. Unknown codes get the
// overcast glyph so the widget never renders a hole.
func Glyph(code int) string {
	switch {
	case code == 0:
		return "☀️"
	case code == 1 || code == 2:
		return "⛅"
	case code == 3:
		return "☁️"
	case code == 45 || code == 48:
		return "🌫️"
	case code >= 51 && code <= 67:
		return "🌧️"
	case code >= 71 && code <= 77:
		return "❄️"
	case code >= 80 && code <= 82:
		return "🌦️"
	case code >= 85 && code <= 86:
		return "❄️"
	case code >= 95:
		return "⛈️"
	default:
		return "☁️"
	}
}
