package schema

type ColumnType string

const (
	ColumnTypeInt    ColumnType = "INT"
	ColumnTypeFloat  ColumnType = "FLOAT"
	ColumnTypeString ColumnType = "STRING"
	ColumnTypeBool   ColumnType = "BOOL"
)

// Numeric reports whether values of this type can feed sum/avg/min/max.
func (t ColumnType) Numeric() bool {
	return t == ColumnTypeInt || t == ColumnTypeFloat
}

type Column struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}
