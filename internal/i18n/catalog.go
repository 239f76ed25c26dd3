package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// English needs no entries: keys are the English text. Label keys are
// registered with % escaped, the way Label looks them up.
var spanish = map[string]string{
	"PVP":              "JcJ",
	"Kills":            "Asesinatos",
	"Bow Hits":         "Impactos con arco",
	"Shotgun Hits":     "Impactos con escopeta",
	"Exposure (hours)": "Exposición (horas)",
	"Gathered":         "Recolectado",
	"Other":            "Otros",

	"Deaths":             "Muertes",
	"K/D Ratio":          "Ratio K/D",
	"Headshots":          "Disparos a la cabeza",
	"Bullets Hit":        "Balas acertadas",
	"Bullets Fired":      "Balas disparadas",
	"Hit %%":             "%% de acierto",
	"Headshot %%":        "%% a la cabeza",
	"Scientists":         "Científicos",
	"Boars":              "Jabalíes",
	"Bears":              "Osos",
	"Wolves":             "Lobos",
	"Chickens":           "Gallinas",
	"Deers":              "Ciervos",
	"Horses":             "Caballos",
	"Shots Fired":        "Disparos",
	"Players":            "Jugadores",
	"Buildings":          "Construcciones",
	"Cold":               "Frío",
	"Heat":               "Calor",
	"Comfort":            "Confort",
	"Radiation":          "Radiación",
	"Wood":               "Madera",
	"Stone":              "Piedra",
	"Metal":              "Metal",
	"Scrap":              "Chatarra",
	"Cloth":              "Tela",
	"Leather":            "Cuero",
	"Low Grade":          "Combustible de baja calidad",
	"Voice Chat":         "Chat de voz",
	"Barrels Destroyed":  "Barriles destruidos",
	"Rockets Fired":      "Cohetes disparados",
	"Inventory Opened":   "Inventario abierto",
	"Map Opened":         "Mapa abierto",
	"Wounded":            "Derribado",
	"Blueprints Learned": "Planos aprendidos",

	MsgHoursPlayed:  "Horas jugadas: %d horas",
	MsgHours:        "%d horas",
	MsgDecayResult:  "Tiempo estimado hasta el decay completo: %s",
	MsgDecayNote:    "Nota: Este cálculo asume que no hay Tool Cupboard o está vacío.",
	MsgLookupFailed: "La búsqueda falló",

	"The Steam profile URL is not valid.":    "La URL del perfil de Steam no es válida.",
	"No Steam account uses that name.":       "Ninguna cuenta de Steam usa ese nombre.",
	"The Steam profile could not be found.":  "No se encontró el perfil de Steam.",
	"Steam could not be reached. Try again.": "No se pudo contactar con Steam. Inténtalo de nuevo.",
}

func init() {
	for key, msg := range spanish {
		if err := message.SetString(language.Spanish, key, msg); err != nil {
			panic(fmt.Sprintf("i18n: register %q: %v", key, err))
		}
	}
}
