package models

// WorkflowKind names an AI generation workflow.
type WorkflowKind string

const (
	WorkflowTitle       WorkflowKind = "title"
	WorkflowDescription WorkflowKind = "description"
	WorkflowThumbnail   WorkflowKind = "thumbnail"
)

// Valid reports whether k is a known workflow.
func (k WorkflowKind) Valid() bool {
	switch k {
	case WorkflowTitle, WorkflowDescription, WorkflowThumbnail:
		return true
	}
	return false
}

// WorkflowRequest is the payload delivered to a workflow endpoint.
type WorkflowRequest struct {
	Kind    WorkflowKind `json:"-"`
	UserID  string       `json:"userId" validate:"required,uuid"`
	VideoID string       `json:"videoId" validate:"required,uuid"`

	// Prompt is only used by the thumbnail workflow.
	Prompt string `json:"prompt,omitempty" validate:"required_if=Kind thumbnail"`
}

// WorkflowRun identifies a triggered workflow run.
type WorkflowRun struct {
	WorkflowRunID string `json:"workflowRunId"`
}

// StoredFile is an object kept in object storage.
type StoredFile struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
