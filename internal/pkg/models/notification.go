package models

// NotifyStatus tags the outcome of one notification orchestration pass.
// Callers branch on the status to pick user-facing behaviour; failures
// travel as data, never as panics across the orchestrator boundary.
type NotifyStatus string

const (
	// NotifyDelivered means the message was handed to the transport.
	NotifyDelivered NotifyStatus = "delivered"
	// NotifyConfigurationError means no notifying identity could be
	// resolved for the target (no super admin, orphaned employee). Not
	// user-fixable and never retried.
	NotifyConfigurationError NotifyStatus = "configuration_error"
	// NotifyGatewayUnavailable means the resolved identity has no active
	// email gateway.
	NotifyGatewayUnavailable NotifyStatus = "gateway_unavailable"
	// NotifyTemplateError means template lookup or compilation failed,
	// or the compiled output was missing subject or body.
	NotifyTemplateError NotifyStatus = "template_error"
	// NotifyTransportError means the SMTP send itself failed. The
	// wrapped error distinguishes bad credentials from transient
	// transmission faults.
	NotifyTransportError NotifyStatus = "transport_error"
)

// NotifyResult is the structured outcome of Notify. Err carries the
// underlying cause for logging; MessageID is the transport receipt when
// Status is NotifyDelivered.
type NotifyResult struct {
	Status    NotifyStatus
	MessageID string
	Err       error
}

// Delivered reports whether the pipeline ran to completion.
func (r NotifyResult) Delivered() bool {
	return r.Status == NotifyDelivered
}

// NotificationEvent is published on the message bus after a successful
// dispatch.
type NotificationEvent struct {
	TemplateType TemplateType `json:"template_type"`
	Recipient    string       `json:"recipient"`
	MessageID    string       `json:"message_id"`
}
