// Package workflow implements the article publication state machine.
//
// The engine is a pure function over an immutable snapshot of an article:
// it validates a requested event against the current status and computes
// the resulting state plus any side data (rejection reason, published
// timestamp). It never mutates its input, never performs I/O, and never
// authorizes. Callers consult the access package first and persist the
// outcome with a conditional update keyed on the expected prior status.
package workflow

import (
	"time"

	"news-portal/internal/domain/entity"
)

// Event is a requested article transition.
type Event string

// Workflow events. Submit moves a draft or rejected article into the
// moderation queue; approve and reject are the admin moderation decisions;
// edit and delete do not change status but are gated by it.
const (
	EventSubmit  Event = "submit-for-review"
	EventApprove Event = "approve"
	EventReject  Event = "reject"
	EventEdit    Event = "edit"
	EventDelete  Event = "delete"
)

// Payload carries event-specific input. Only EventReject reads it.
type Payload struct {
	Reason string
}

// Decision is the computed outcome of a legal transition. Callers apply
// it with Apply and persist the result; the engine itself changes nothing.
type Decision struct {
	Status entity.ArticleStatus

	// RejectionReason is set for EventReject.
	RejectionReason string

	// ClearRejectionReason is set when a re-submission wipes the stale
	// reason from a previously rejected article.
	ClearRejectionReason bool

	// PublishedAt is set on the first transition to published only.
	// It is never cleared by any later event.
	PublishedAt *time.Time
}

// Allowed reports whether event is structurally legal from status,
// ignoring content validation and payload. Callers check this before
// authorization so that an impossible transition reports as illegal
// rather than as a permission failure, for every role alike.
func Allowed(status entity.ArticleStatus, event Event) bool {
	if !status.Valid() {
		return false
	}
	switch event {
	case EventSubmit:
		return status == entity.StatusDraft || status == entity.StatusRejected
	case EventApprove, EventReject:
		return status == entity.StatusPending
	case EventEdit:
		return status != entity.StatusPublished
	case EventDelete:
		return status != entity.StatusPublished && status != entity.StatusPending
	}
	return false
}

// Decide validates event against the article's current status and returns
// the Decision to apply. The article is not modified. Calling Decide twice
// with the same snapshot yields the same result.
//
// Errors:
//   - *entity.ValidationError when content or payload fails field checks
//   - *IllegalTransitionError when the event is not legal from the status
func Decide(a *entity.Article, event Event, now time.Time, p Payload) (Decision, error) {
	switch event {
	case EventSubmit:
		return decideSubmit(a)
	case EventApprove:
		return decideApprove(a, now)
	case EventReject:
		return decideReject(a, p)
	case EventEdit:
		return decideEdit(a)
	case EventDelete:
		return decideDelete(a)
	default:
		return Decision{}, &IllegalTransitionError{Status: a.Status, Event: event}
	}
}

func decideSubmit(a *entity.Article) (Decision, error) {
	if a.Status != entity.StatusDraft && a.Status != entity.StatusRejected {
		return Decision{}, &IllegalTransitionError{Status: a.Status, Event: EventSubmit}
	}
	if err := entity.ValidateContent(a); err != nil {
		return Decision{}, err
	}
	return Decision{
		Status:               entity.StatusPending,
		ClearRejectionReason: true,
	}, nil
}

func decideApprove(a *entity.Article, now time.Time) (Decision, error) {
	if a.Status != entity.StatusPending {
		return Decision{}, &IllegalTransitionError{Status: a.Status, Event: EventApprove}
	}
	d := Decision{Status: entity.StatusPublished}
	if a.PublishedAt == nil {
		t := now.UTC()
		d.PublishedAt = &t
	}
	return d, nil
}

func decideReject(a *entity.Article, p Payload) (Decision, error) {
	if a.Status != entity.StatusPending {
		return Decision{}, &IllegalTransitionError{Status: a.Status, Event: EventReject}
	}
	if err := entity.ValidateRejectionReason(p.Reason); err != nil {
		return Decision{}, err
	}
	return Decision{
		Status:          entity.StatusRejected,
		RejectionReason: p.Reason,
	}, nil
}

// decideEdit permits content edits from draft, rejected and pending.
// The pending case exists for admins pre-empting moderation; ownership
// and role checks belong to the access package, and the status does not
// change. Published articles have no edit path for any role.
func decideEdit(a *entity.Article) (Decision, error) {
	switch a.Status {
	case entity.StatusDraft, entity.StatusRejected, entity.StatusPending:
		return Decision{Status: a.Status}, nil
	default:
		return Decision{}, &IllegalTransitionError{Status: a.Status, Event: EventEdit}
	}
}

// decideDelete permits removal only outside the published and pending
// states. A pending article must be rejected before it can be deleted,
// even by an admin.
func decideDelete(a *entity.Article) (Decision, error) {
	if a.Status == entity.StatusPublished || a.Status == entity.StatusPending {
		return Decision{}, &IllegalTransitionError{Status: a.Status, Event: EventDelete}
	}
	return Decision{Status: a.Status}, nil
}

// Apply returns a copy of the article with the decision applied. The
// input article is left untouched, keeping transitions atomic: a failed
// Decide leaves no partial mutation anywhere.
func Apply(a *entity.Article, d Decision) *entity.Article {
	out := a.Clone()
	out.Status = d.Status
	if d.ClearRejectionReason {
		out.RejectionReason = ""
	}
	if d.RejectionReason != "" {
		out.RejectionReason = d.RejectionReason
	}
	if d.PublishedAt != nil && out.PublishedAt == nil {
		out.PublishedAt = d.PublishedAt
	}
	return out
}
