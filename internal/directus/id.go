package directus

import (
	"encoding/json"
	"strconv"
)

// ID de registro do Directus. Coleções podem usar inteiro sequencial ou
// UUID, então o tipo aceita os dois e preserva a forma original ao
// serializar de volta.
type ID string

// UnmarshalJSON aceita número ou string JSON.
func (id *ID) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON devolve número cru quando o valor é numérico, string caso
// contrário.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) String() string { return string(id) }
