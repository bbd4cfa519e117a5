package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"aidesk/app/storage"

	"github.com/gofiber/fiber/v2"
)

func (s *Service) handleChat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "message is required")
	}

	userID := req.UserID
	if userID == "" {
		userID = "anonymous"
	}

	reply := s.assistantSvc.Chat(c.UserContext(), req.Message, req.SessionID)

	now := time.Now().UTC()

	if err := s.storageSvc.AddChatMessage(c.UserContext(), &storage.ChatMessage{
		UserID:    userID,
		Message:   req.Message,
		Response:  reply.Response,
		SessionID: reply.SessionID,
		Timestamp: now,
	}); err != nil {
		return err
	}

	s.audit(c.UserContext(), userID, "SendMessage", "Chatbot", fmt.Sprintf("Session: %s", reply.SessionID))

	return c.JSON(chatResponse{
		Response:  reply.Response,
		SessionID: reply.SessionID,
		Timestamp: now,
	})
}

func (s *Service) handleChatHistory(c *fiber.Ctx) error {
	messages, err := s.storageSvc.ListChatMessages(c.UserContext(), c.Params("userId"))
	if err != nil {
		return err
	}

	return c.JSON(messages)
}

func (s *Service) handleSentiment(c *fiber.Ctx) error {
	var req sentimentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "text is required")
	}

	result := s.assistantSvc.AnalyzeSentiment(c.UserContext(), req.Text)

	s.audit(c.UserContext(), userIDOrAnonymous(req.UserID), "AnalyzeSentiment", "Sentiment", "")

	return c.JSON(result)
}

func (s *Service) handleSummarize(c *fiber.Ctx) error {
	var req summarizeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "text is required")
	}

	result := s.assistantSvc.SummarizeDocument(c.UserContext(), req.Text)

	s.audit(c.UserContext(), userIDOrAnonymous(req.UserID), "SummarizeDocument", "DocumentSummary", "")

	return c.JSON(result)
}

func (s *Service) handleAnalyzeImage(c *fiber.Ctx) error {
	data, err := readUpload(c, "image")
	if err != nil {
		return err
	}

	result := s.assistantSvc.AnalyzeImage(c.UserContext(), data)

	s.audit(c.UserContext(), userIDOrAnonymous(c.FormValue("userId")), "AnalyzeImage", "ImageAnalysis", "")

	return c.JSON(result)
}

func (s *Service) handleTranscribeAudio(c *fiber.Ctx) error {
	data, err := readUpload(c, "audio")
	if err != nil {
		return err
	}

	text := s.assistantSvc.TranscribeAudio(c.UserContext(), data)

	return c.JSON(transcribeResponse{Text: text})
}

func readUpload(c *fiber.Ctx, field string) ([]byte, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s file is required", field))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return data, nil
}

// audit failures are logged and swallowed: a feature result that was already
// produced is not discarded because the audit write failed.
func (s *Service) audit(ctx context.Context, userID, action, feature, details string) {
	err := s.storageSvc.AddAuditLog(ctx, &storage.AuditLog{
		UserID:    userID,
		Action:    action,
		Feature:   feature,
		Timestamp: time.Now().UTC(),
		Details:   details,
	})
	if err != nil {
		slog.Error("Failed to write audit log",
			"action", action,
			"error", err,
		)
	}
}

func userIDOrAnonymous(userID string) string {
	if userID == "" {
		return "anonymous"
	}

	return userID
}
