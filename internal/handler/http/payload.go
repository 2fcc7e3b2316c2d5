package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/aniladanir/sms-manager/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// readPayload decodes a json or url encoded form body into a generic key-value map
func readPayload(c *gin.Context) (map[string]any, error) {
	payload := make(map[string]any)
	if c.Request.Body == nil {
		return payload, nil
	}

	switch c.ContentType() {
	case binding.MIMEPOSTForm:
		if err := c.Request.ParseForm(); err != nil {
			return nil, err
		}
		for key, values := range c.Request.PostForm {
			if len(values) > 0 {
				payload[key] = values[0]
			}
		}
	default:
		decoder := json.NewDecoder(c.Request.Body)
		decoder.UseNumber()
		if err := decoder.Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if payload == nil {
			// body was a json null
			payload = make(map[string]any)
		}
	}

	return payload, nil
}

func contactInput(payload map[string]any) domain.ContactInput {
	return domain.ContactInput{
		Name:        stringField(payload, "name"),
		PhoneNumber: stringField(payload, "phoneNumber"),
	}
}

func messageInput(payload map[string]any) (domain.MessageInput, error) {
	senderID, err := idField(payload, "senderId")
	if err != nil {
		return domain.MessageInput{}, err
	}
	receiverID, err := idField(payload, "receiverId")
	if err != nil {
		return domain.MessageInput{}, err
	}

	in := domain.MessageInput{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Body:       stringField(payload, "body"),
	}
	if status := stringField(payload, "status"); status != nil {
		s := domain.MessageStatus(*status)
		in.Status = &s
	}

	return in, nil
}

func stringField(payload map[string]any, key string) *string {
	v, ok := payload[key]
	if !ok || v == nil {
		return nil
	}

	var s string
	switch t := v.(type) {
	case string:
		s = t
	case json.Number:
		s = t.String()
	default:
		s = fmt.Sprint(t)
	}
	return &s
}

func idField(payload map[string]any, key string) (*uint, error) {
	raw := stringField(payload, key)
	if raw == nil {
		return nil, nil
	}

	id, err := strconv.ParseUint(*raw, 10, 0)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}

	u := uint(id)
	return &u, nil
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
