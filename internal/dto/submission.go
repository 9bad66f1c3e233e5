package dto

// SubmitAssignmentResponse acknowledges a stored submission. The file URL
// is an opaque reference into blob storage; this layer never parses it.
type SubmitAssignmentResponse struct {
	AssignmentID int64   `json:"AssignmentID"`
	UniversityID int64   `json:"University_ID"`
	Status       string  `json:"status"`
	SubmitDate   string  `json:"SubmitDate"`
	AttachedFile *string `json:"attached_files"`
	Comments     *string `json:"Comments"`
}
