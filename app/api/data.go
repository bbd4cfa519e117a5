package api

import "time"

type chatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
}

type chatResponse struct {
	Response  string    `json:"response"`
	SessionID string    `json:"sessionId"`
	Timestamp time.Time `json:"timestamp"`
}

type sentimentRequest struct {
	Text   string `json:"text" validate:"required"`
	UserID string `json:"userId"`
}

type summarizeRequest struct {
	Text   string `json:"text" validate:"required"`
	UserID string `json:"userId"`
}

type transcribeResponse struct {
	Text string `json:"text"`
}
