package dealflow

// Stage is a named phase of a deal's lifecycle. Stages are strictly
// ordered; a deal only ever moves along the edges in the transition
// table, never by jumping.
type Stage string

const (
	StageOffer          Stage = "offer"
	StageSigning        Stage = "signing"
	StageLogistics      Stage = "logistics"
	StageProduction     Stage = "production"
	StageReview         Stage = "review"
	StageApproved       Stage = "approved"
	StagePaymentRelease Stage = "payment_release"
	StageCompleted      Stage = "completed"
)

// stageOrder gives every stage its position in the lifecycle.
var stageOrder = map[Stage]int{
	StageOffer:          0,
	StageSigning:        1,
	StageLogistics:      2,
	StageProduction:     3,
	StageReview:         4,
	StageApproved:       5,
	StagePaymentRelease: 6,
	StageCompleted:      7,
}

// Valid reports whether s names a known stage.
func (s Stage) Valid() bool {
	_, ok := stageOrder[s]
	return ok
}

// Before reports whether s comes earlier in the lifecycle than other.
func (s Stage) Before(other Stage) bool {
	return stageOrder[s] < stageOrder[other]
}

// PreProduction reports whether no creator work has been performed yet
// at this stage. The termination policy hinges on this boundary.
func (s Stage) PreProduction() bool {
	return stageOrder[s] < stageOrder[StageProduction]
}

// Status is the deal's overall activity state, orthogonal to stage.
// Anything other than active freezes stage progress for good.
type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusRejected  Status = "rejected"
	StatusDispute   Status = "dispute"
	StatusCompleted Status = "completed"
)

// Terminal reports whether the status permits no further stage transitions.
func (s Status) Terminal() bool {
	return s != StatusActive
}

// Stages returns all stages in lifecycle order.
func Stages() []Stage {
	return []Stage{
		StageOffer,
		StageSigning,
		StageLogistics,
		StageProduction,
		StageReview,
		StageApproved,
		StagePaymentRelease,
		StageCompleted,
	}
}
