package report

// Field labels, in the order every presentation uses.
const (
	LabelExpediente      = "Nº de Expediente"
	LabelEstablishment   = "Establecimiento"
	LabelPhone           = "Teléfono"
	LabelDelegation      = "Delegación"
	LabelDivision        = "Repartición"
	LabelTaxID           = "CUIL"
	LabelRole            = "Rol"
	LabelFullName        = "Apellido y Nombre"
	LabelReviewStatus    = "Situación de revista"
	LabelCessationDate   = "Fecha de Cese"
	LabelAppointmentDate = "Fecha de alta"
	LabelPosition        = "Cargo a cubrir"
	LabelCessationReason = "Motivo de Cese"
	LabelReplacedPerson  = "Reemplaza a"
)

// Field is one labelled value of a report.
type Field struct {
	Label string
	Value string
}

// Fields returns the labelled values of r in fixed order; the date and the last row
// change label with the mode.
func (r Record) Fields() []Field {
	dateLabel, modeLabel := LabelAppointmentDate, LabelReplacedPerson
	if r.IsCessation() {
		dateLabel, modeLabel = LabelCessationDate, LabelCessationReason
	}
	return []Field{
		{LabelExpediente, r.ExpedienteID},
		{LabelEstablishment, r.Establishment},
		{LabelPhone, r.Phone},
		{LabelDelegation, r.Delegation},
		{LabelDivision, r.Division},
		{LabelTaxID, r.TaxID},
		{LabelRole, r.Role},
		{LabelFullName, r.FullName},
		{LabelReviewStatus, r.ReviewStatus},
		{dateLabel, r.EffectiveDate},
		{LabelPosition, r.PositionDescription},
		{modeLabel, r.ModeValue()},
	}
}
