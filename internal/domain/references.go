package domain

import (
	"encoding/json"
	"strconv"
)

// DraftReference identifica um rascunho criado pelo endpoint de adsubmit.
// Vive só durante uma execução do fluxo de republicação.
type DraftReference struct {
	AdID int64
	// A API às vezes omite action_id; nesse caso assumimos 1
	ActionID int64
}

// DefaultActionID é o valor assumido quando a resposta de criação não traz
// action_id. Área de risco conhecida: pode mascarar uma deriva de contrato.
const DefaultActionID int64 = 1

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}
