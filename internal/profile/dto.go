// AngelaMos | 2026
// dto.go

package profile

type ProfileResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Age        int    `json:"age"`
	Location   string `json:"location"`
	FamilySize int    `json:"familySize"`
	Occupation string `json:"occupation"`
	Avatar     string `json:"avatar"`
}

type UpdateProfileRequest struct {
	Name       string `json:"name"       validate:"required,min=1,max=100"`
	Email      string `json:"email"      validate:"required,email,max=255"`
	Age        int    `json:"age"        validate:"required,gte=18,lte=100"`
	Location   string `json:"location"   validate:"required,min=2,max=100"`
	FamilySize int    `json:"familySize" validate:"required,gte=1,lte=20"`
	Occupation string `json:"occupation" validate:"required,min=2,max=100"`
	Avatar     string `json:"avatar"     validate:"omitempty,url,max=500"`
}

func ToProfileResponse(u *User) ProfileResponse {
	return ProfileResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Age:        u.Age,
		Location:   u.Location,
		FamilySize: u.FamilySize,
		Occupation: u.Occupation,
		Avatar:     u.Avatar,
	}
}
