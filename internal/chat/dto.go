package chat

type StartConversationDTO struct {
	TargetID string `json:"target_id" validate:"required"`
}

type ConversationResponse struct {
	ConversationID string `json:"conversation_id"`
}
