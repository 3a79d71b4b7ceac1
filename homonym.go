package turkmenfst

import "strings"

// HomonymSense is one member of a homonym group.
type HomonymSense struct {
	Key             string
	Gloss           string
	AllowsSoftening bool
}

// homonymGroups are the surface-identical stems whose senses differ in
// softening. A colon in the gloss marks the long vowel.
var homonymGroups = map[string][]HomonymSense{
	"at": {
		{"1", "A:T (name)", true},
		{"2", "AT (horse)", false},
	},
	"but": {
		{"1", "BU:T (thigh)", true},
		{"2", "BUT (foundation stone)", false},
	},
	"gurt": {
		{"1", "GU:RT (wolf)", true},
		{"2", "GURT (dried curd)", false},
	},
	"saç": {
		{"1", "SA:Ç (sheet metal)", true},
		{"2", "SAÇ (hair)", false},
	},
	"ýok": {
		{"1", "ÝO:K (non-existent)", true},
		{"2", "ÝOK (trace)", false},
	},
	"ot": {
		{"1", "O:T (fire)", false},
		{"2", "OT (grass)", false},
	},
}

// parseHomonymSense decodes "1=A:T_(name)|yes". Underscores stand for
// spaces because the features column is whitespace-free.
func parseHomonymSense(s string) (HomonymSense, bool) {
	key, rest, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return HomonymSense{}, false
	}
	gloss, soft, _ := strings.Cut(rest, "|")
	return HomonymSense{
		Key:             strings.TrimSpace(key),
		Gloss:           strings.ReplaceAll(gloss, "_", " "),
		AllowsSoftening: soft == "yes" || soft == "true",
	}, true
}
