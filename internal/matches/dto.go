// internal/matches/dto.go
package matches

// DTOs for API requests/responses

type LikeDTO struct {
	TargetID string `json:"target_id" validate:"required"`
}

type ListMatchesParams struct {
	Status string `json:"status" validate:"omitempty,oneof=pending matched rejected"`
}
