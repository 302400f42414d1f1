package entity

// Tipos de conteo físico.
const (
	CountTypeTotal    = "TOTAL"
	CountTypePartial  = "PARTIAL"
	CountTypeCyclical = "CYCLICAL"
)

// IsValidCountType informa si t es un tipo de conteo conocido.
func IsValidCountType(t string) bool {
	switch t {
	case CountTypeTotal, CountTypePartial, CountTypeCyclical:
		return true
	}
	return false
}
