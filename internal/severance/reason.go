package severance

import "fmt"

// Reason is the closed set of separation reasons understood by the engine.
type Reason string

const (
	ReasonEmployerTermination  Reason = "employer_termination"
	ReasonResignationValid     Reason = "resignation_valid"
	ReasonResignationVoluntary Reason = "resignation_voluntary"
	ReasonRetirement           Reason = "retirement"
	ReasonMilitary             Reason = "military"
	ReasonMarriageFemale       Reason = "marriage_female"
	ReasonHealth               Reason = "health"
	ReasonDeath                Reason = "death"
	// ReasonJustCauseDismissal is a dismissal for the employee's misconduct
	// (Labour Act art. 25/II).
	ReasonJustCauseDismissal Reason = "just_cause_dismissal"
)

// Reasons returns every known reason in a stable order.
func Reasons() []Reason {
	return []Reason{
		ReasonEmployerTermination,
		ReasonResignationValid,
		ReasonResignationVoluntary,
		ReasonRetirement,
		ReasonMilitary,
		ReasonMarriageFemale,
		ReasonHealth,
		ReasonDeath,
		ReasonJustCauseDismissal,
	}
}

// ParseReason converts a raw value into a Reason.
func ParseReason(value string) (Reason, error) {
	r := Reason(value)
	if !r.Valid() {
		return "", fmt.Errorf("unknown termination reason %q", value)
	}
	return r, nil
}

// Valid reports whether r is one of the known reasons.
func (r Reason) Valid() bool {
	switch r {
	case ReasonEmployerTermination,
		ReasonResignationValid,
		ReasonResignationVoluntary,
		ReasonRetirement,
		ReasonMilitary,
		ReasonMarriageFemale,
		ReasonHealth,
		ReasonDeath,
		ReasonJustCauseDismissal:
		return true
	}
	return false
}

// SeveranceEligible reports whether the separation creates a severance
// entitlement, tenure permitting.
func (r Reason) SeveranceEligible() bool {
	switch r {
	case ReasonEmployerTermination,
		ReasonResignationValid,
		ReasonRetirement,
		ReasonMilitary,
		ReasonMarriageFemale,
		ReasonHealth,
		ReasonDeath:
		return true
	case ReasonResignationVoluntary, ReasonJustCauseDismissal:
		return false
	}
	return false
}

// NoticeEligible reports whether the separation creates a notice indemnity
// when the notice period was not honoured.
func (r Reason) NoticeEligible() bool {
	switch r {
	case ReasonEmployerTermination:
		return true
	case ReasonResignationValid,
		ReasonResignationVoluntary,
		ReasonRetirement,
		ReasonMilitary,
		ReasonMarriageFemale,
		ReasonHealth,
		ReasonDeath,
		ReasonJustCauseDismissal:
		return false
	}
	return false
}

// String implements fmt.Stringer.
func (r Reason) String() string {
	return string(r)
}
