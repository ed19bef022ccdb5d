package constants

// JobStatus is the canonical status for rows in parse_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued  JobStatus = "QUEUED"   // queued for processing
	JobStatusRunning JobStatus = "RUNNING"  // in progress
	JobStatusTextOK  JobStatus = "TEXT_OK"  // stage 1 completed (text extracted)
	JobStatusParseOK JobStatus = "PARSE_OK" // stage 2 completed (course + assignments extracted)
	JobStatusFailed  JobStatus = "FAILED"   // terminal failure
)

// AssignmentStatus is the lifecycle state of an assignment record.
// The pipeline only ever emits StatusPending; later transitions belong
// to the CRUD layer.
type AssignmentStatus string

const (
	StatusPending   AssignmentStatus = "pending"
	StatusSubmitted AssignmentStatus = "submitted"
	StatusOverdue   AssignmentStatus = "overdue"
)

// AssignmentStatuses holds the allowed values for the status field on assignments.
var AssignmentStatuses = []string{string(StatusPending), string(StatusSubmitted), string(StatusOverdue)}
