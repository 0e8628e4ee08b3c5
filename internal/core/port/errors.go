package port

import "errors"

// Error taxonomy shared by usecases and adapters. Handlers map ErrNotFound to
// HTTP 404 and everything else to 500; no failure is retried automatically.
var (
	// ErrNotFound indicates a lookup by identifier matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrPredictionUnavailable covers both non-success responses and network
	// failures when calling the local prediction service. The call is
	// fail-fast; the caller decides whether to try again.
	ErrPredictionUnavailable = errors.New("prediction service unavailable")

	// ErrCampaignPersist is returned when the campaign record cannot be
	// written. Nothing else has happened at that point.
	ErrCampaignPersist = errors.New("campaign persist failed")

	// ErrPrediction is returned when the predictor call inside the ingestion
	// pipeline fails. The campaign record stays persisted.
	ErrPrediction = errors.New("prediction failed")

	// ErrPredictionPersist is returned when the computed prediction cannot be
	// written. The campaign record stays persisted.
	ErrPredictionPersist = errors.New("prediction persist failed")

	// ErrChatUpstream indicates the AI content endpoint returned a
	// non-success status. The wrapped message carries the raw response body
	// for diagnostics.
	ErrChatUpstream = errors.New("chat upstream failure")
)
