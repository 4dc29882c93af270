package constants

// Mode is the reporting mode of a report record.
type Mode string

// Stable values (stored in the session row and the report JSON).
const (
	ModeAppointment Mode = "ALTA" // alta / reemplazo
	ModeCessation   Mode = "CESE" // cese
)

// IsCessation reports whether m is the cessation mode.
func (m Mode) IsCessation() bool { return m == ModeCessation }
