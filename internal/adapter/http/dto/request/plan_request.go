package request

import "projectdesk/internal/usecase"

// PlanRequest is the creation payload for a project plan. Both fields are
// free text; the workflow gate, not the payload, decides admissibility.
type PlanRequest struct {
	Methodology string `json:"methodology"`
	Baseline    string `json:"baseline"`
}

func (r PlanRequest) ToInput() usecase.PlanInput {
	return usecase.PlanInput{Methodology: r.Methodology, Baseline: r.Baseline}
}
