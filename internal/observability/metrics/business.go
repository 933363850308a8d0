package metrics

// Transition outcomes recorded by RecordTransition.
const (
	OutcomeApplied  = "applied"
	OutcomeIllegal  = "illegal"
	OutcomeInvalid  = "invalid"
	OutcomeConflict = "conflict"
)

// RecordTransition records a workflow transition attempt.
// Outcome should be one of the Outcome constants above.
func RecordTransition(event, from, outcome string) {
	TransitionsTotal.WithLabelValues(event, from, outcome).Inc()
}

// RecordAuthzDenial records a denied authorization check for an action.
func RecordAuthzDenial(action string) {
	AuthzDenialsTotal.WithLabelValues(action).Inc()
}

// RecordSaveConflict records a conditional write rejected because the
// persisted status changed between read and write.
func RecordSaveConflict() {
	SaveConflictsTotal.Inc()
}

// UpdateArticlesByStatus updates the per-status article gauges.
// The stats worker calls this periodically.
func UpdateArticlesByStatus(counts map[string]int64) {
	for status, count := range counts {
		ArticlesByStatus.WithLabelValues(status).Set(float64(count))
	}
}

// UpdateCommentsTotal updates the total comment count gauge.
func UpdateCommentsTotal(count int64) {
	CommentsTotal.Set(float64(count))
}

// RecordArticleView records a public article detail page view.
func RecordArticleView() {
	ArticleViewsTotal.Inc()
}
