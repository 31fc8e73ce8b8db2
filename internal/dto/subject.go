package dto

// CreateSubjectRequest is the body of POST /subjects. Name is a pointer so that a
// missing field is a malformed request while an empty one is a validation failure.
type CreateSubjectRequest struct {
	Name *string `json:"name" binding:"required"`
}

// DeleteSubjectResponse confirms a subject deletion.
type DeleteSubjectResponse struct {
	Message string `json:"message"`
}
