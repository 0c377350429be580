package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// toJSON marshals v into a jsonb column value. Marshal of the slice and map
// shapes used here cannot fail, so errors collapse to null.
func toJSON(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

// fromJSON unmarshals a jsonb column into out, leaving out untouched on
// null or malformed data.
func fromJSON(data datatypes.JSON, out interface{}) {
	if len(data) == 0 {
		return
	}
	_ = json.Unmarshal(data, out)
}
