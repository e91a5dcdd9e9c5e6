package blocks

// BlockUserDTO is the payload for POST /api/v1/blocks.
type BlockUserDTO struct {
	BlockedID string `json:"blocked_id" validate:"required"`
}
