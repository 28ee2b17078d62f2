package http

// Assignment fallback modes for tasks the extractor left unassigned.
const (
	assignNone        = "none"
	assignRequester   = "requester"
	assignPlaceholder = "placeholder"
)

// taskSource tags tasks created through the extraction API.
const taskSource = "chat"
