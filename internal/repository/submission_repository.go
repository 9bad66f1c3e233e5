package repository

import "context"

// SubmissionRepository records assignment submissions.
type SubmissionRepository struct {
	store *QueryStore
}

// NewSubmissionRepository constructs a SubmissionRepository.
func NewSubmissionRepository(store *QueryStore) *SubmissionRepository {
	return &SubmissionRepository{store: store}
}

// Record stores a submission against an assignment. fileURL and comments
// are optional; nil passes through as NULL.
func (r *SubmissionRepository) Record(ctx context.Context, assignmentID, universityID int64, fileURL, comments *string) error {
	return r.store.Exec(ctx, QueryRecordSubmission, assignmentID, universityID, fileURL, comments)
}
