// Package colors отображает цвета между каноническим hex-кодом и
// человекочитаемым именем. Обе функции тотальны и не имеют побочных эффектов;
// таблицы намеренно малы и не являются взаимно обратными.
package colors

import "strings"

var nameToHex = map[string]string{
	"black":  "#000000",
	"white":  "#FFFFFF",
	"red":    "#EF4444",
	"blue":   "#3B82F6",
	"green":  "#10B981",
	"yellow": "#F59E0B",
	"purple": "#8B5CF6",
	"pink":   "#EC4899",
	"brown":  "#92400E",
	"gray":   "#6B7280",
	"navy":   "#1E3A8A",
	"tan":    "#D97706",
}

var hexToName = map[string]string{
	"#000000": "Black",
	"#FFFFFF": "White",
	"#FF0000": "Red",
	"#00FF00": "Green",
	"#0000FF": "Blue",
	"#FFFF00": "Yellow",
	"#FF00FF": "Magenta",
	"#00FFFF": "Cyan",
	"#FFA500": "Orange",
	"#800080": "Purple",
	"#FFC0CB": "Pink",
	"#A52A2A": "Brown",
	"#808080": "Gray",
	"#000080": "Navy",
	"#D2B48C": "Tan",
}

// Style возвращает hex-код цвета для отрисовки. Hex-значения возвращаются
// в верхнем регистре как есть (без проверки корректности цифр), имена ищутся
// в фиксированной таблице, неизвестные имена проходят без изменений.
func Style(color string) string {
	if strings.HasPrefix(color, "#") {
		return strings.ToUpper(color)
	}

	if hex, ok := nameToHex[strings.ToLower(color)]; ok {
		return hex
	}

	return color
}

// DisplayName возвращает человекочитаемое имя цвета. Hex-значения ищутся
// в фиксированной таблице, неизвестные hex-коды и не-hex входы проходят
// без изменений.
func DisplayName(color string) string {
	if strings.HasPrefix(color, "#") {
		if name, ok := hexToName[strings.ToUpper(color)]; ok {
			return name
		}
		return color
	}

	return color
}
