package dto

import (
	"github.com/google/uuid"

	"suas_backend/internals/features/messaging/message/model"
)

type CreateMessageRequest struct {
	WorkshopID    uuid.UUID  `json:"workshopId" validate:"required"`
	ParticipantID *uuid.UUID `json:"participantId"`
	Content       string     `json:"content" validate:"required"`
	Tag           string     `json:"tag"`
	URLFile       string     `json:"urlFile"`
	MessageType   string     `json:"messageType"`
}

type UpdateMessageRequest struct {
	Content     *string `json:"content" validate:"omitempty,min=1"`
	Tag         *string `json:"tag"`
	URLFile     *string `json:"urlFile"`
	MessageType *string `json:"messageType"`
}

func (r CreateMessageRequest) ToModel() model.Message {
	return model.Message{
		WorkshopID:    r.WorkshopID,
		ParticipantID: r.ParticipantID,
		Content:       r.Content,
		Tag:           r.Tag,
		URLFile:       r.URLFile,
		MessageType:   r.MessageType,
		IsActive:      true,
	}
}

func (r UpdateMessageRequest) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.Content != nil {
		u["content"] = *r.Content
	}
	if r.Tag != nil {
		u["tag"] = *r.Tag
	}
	if r.URLFile != nil {
		u["url_file"] = *r.URLFile
	}
	if r.MessageType != nil {
		u["message_type"] = *r.MessageType
	}
	return u
}
