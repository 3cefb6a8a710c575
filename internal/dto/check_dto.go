package dto

type SafetyStatus string

const (
	SafetyStatusSafe    SafetyStatus = "safe"
	SafetyStatusUnsafe  SafetyStatus = "unsafe"
	SafetyStatusCaution SafetyStatus = "caution"
)

type CheckRequest struct {
	ProductIdentifier string `json:"productIdentifier" validate:"required"`
	UserId            string `json:"userId" validate:"required"`
}

// CheckResult is the safety verdict with the conflict sets that explain it.
// The sets are always present in the JSON body, empty when nothing matched.
type CheckResult struct {
	Status               SafetyStatus `json:"status"`
	ConflictingAllergens []string     `json:"conflictingAllergens"`
	ConflictingDiets     []string     `json:"conflictingDiets"`
	TraceAllergens       []string     `json:"traceAllergens"`
	IsOfflineResult      bool         `json:"isOfflineResult"`
}
