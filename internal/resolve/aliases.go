package resolve

// builtinAliases maps plan spellings to the name fragment of the icon they
// belong to. Versioned costumes point at the numbered icon (Claude2, Clair3).
var builtinAliases = map[string]string{
	"Baek Ho":               "Backho",
	"Edward":                "Eduardo",
	"Grenmah":               "Grandma",
	"P. Queen Grenmah":      "Grandma2",
	"Rescue Officer Romina": "Romina2",
	"Battle Cook Panfilo":   "Panfilo2",
	"Battle Smith Idge":     "Idge2",
	"Battlefield Claude":    "Claude2",
	"Scavenger Yeganeh":     "Yeganeh2",
	"Sniper Bernelli":       "Berneli2",
	"Sage Emilia":           "Emilia2",
	"Pirate Adelina":        "Adelina2",
	"Mercenary Calyce":      "Calyce2",
	"Cannon Shooter Claire": "Clair2",
	"Cutie Claire":          "Clair3",
	"Designer Karjalainen":  "Karjalainen2",
	"Meister Lorch":         "Lorch2",
	"Conductor Rio":         "Rio2",
	"Valeria Vendetta":      "Valleria2",
	"Sage Sharon":           "Sharon2",
	"Banshee Natalie":       "Natalie2",
	"Cold Hearted Ganazu":   "Ganazu2",
	"Cold Hearted Ganuzu":   "Ganazu2",
	"Reckless Emilia":       "Emilia3",
	"Selva Norte":           "Selva",
	"Catherine Torsche":     "Catherine2",
	"Rescue Knight":         "Rescue",
}

// DefaultAliases returns a copy of the built-in alias table
func DefaultAliases() map[string]string {
	out := make(map[string]string, len(builtinAliases))
	for k, v := range builtinAliases {
		out[k] = v
	}
	return out
}

// MergeAliases overlays extra on base and returns the result as a new map
func MergeAliases(base, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
