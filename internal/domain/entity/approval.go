package entity

import "time"

// Decisiones de aprobación de cuentas.
const (
	DecisionApproved = "approved"
	DecisionRejected = "rejected"
)

// ApprovalDecision es el registro de auditoría de una decisión sobre una
// cuenta pendiente: quién decidió, qué decidió y cuándo.
type ApprovalDecision struct {
	ID        string
	UserID    string // cuenta afectada
	DecidedBy string // admin o manager que decidió
	Decision  string // approved | rejected
	DecidedAt time.Time
}
