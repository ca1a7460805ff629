package severance

// NoteKind identifies an explanatory note attached to an amount. Rendering
// into a language is left to the caller.
type NoteKind string

const (
	NoteNone NoteKind = ""

	// NoteSeveranceCapApplied: the cap reduced the wage base. Amount holds
	// the uncapped monthly income.
	NoteSeveranceCapApplied NoteKind = "severance_cap_applied"
	// NoteSeveranceUncapped: the cap was switched off although income
	// exceeds it. Amount holds the cap.
	NoteSeveranceUncapped NoteKind = "severance_uncapped"
	// NoteSeveranceUnderOneYear: eligible reason but less than a year worked.
	NoteSeveranceUnderOneYear NoteKind = "severance_under_one_year"
	// NoteSeveranceReasonIneligible: the reason creates no severance right.
	NoteSeveranceReasonIneligible NoteKind = "severance_reason_ineligible"

	// NoteNoticePaid: notice indemnity due. Days holds the notice length.
	NoteNoticePaid NoteKind = "notice_paid"
	// NoteNoticeHonoured: the notice period was worked out or paid already.
	NoteNoticeHonoured NoteKind = "notice_honoured"
	// NoteNoticeNotApplicable: the reason creates no notice indemnity.
	NoteNoticeNotApplicable NoteKind = "notice_not_applicable"
	// NoteNoticeVoluntaryResignation: the employee resigned voluntarily.
	NoteNoticeVoluntaryResignation NoteKind = "notice_voluntary_resignation"
)

// Note is a structured explanation with its numeric payload.
type Note struct {
	Kind   NoteKind `json:"kind"`
	Amount float64  `json:"amount,omitempty"`
	Days   int      `json:"days,omitempty"`
}

// Empty reports whether there is nothing to say.
func (n Note) Empty() bool {
	return n.Kind == NoteNone
}
