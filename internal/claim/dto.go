// AngelaMos | 2026
// dto.go

package claim

type SubmitClaimRequest struct {
	PolicyID     string `json:"policyId"     validate:"required,min=1,max=64"`
	Description  string `json:"description"  validate:"required,min=20,max=2000"`
	IncidentDate string `json:"incidentDate" validate:"required,datetime=2006-01-02"`
}
