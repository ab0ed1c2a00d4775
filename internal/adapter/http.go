package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-chat-sync/internal/config"
	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/MKhiriev/go-chat-sync/internal/utils"
	"github.com/MKhiriev/go-chat-sync/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It validates the base URL from adapterCfg.HTTPAddress and configures the
// underlying HTTP client with the resolved base URL and request timeout.
// Every response is logged at debug level.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	h := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	h.client.OnAfterResponse(h.logResponse)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = utils.NormalizeBaseURL(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Authenticate implements [ServerAdapter]. It POSTs creds to
// POST /api/auth/{mode}.
func (h *httpServerAdapter) Authenticate(ctx context.Context, mode models.AuthMode, creds models.Credentials) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		Post("/api/auth/" + string(mode))
	if err != nil {
		return models.AuthResponse{}, networkError(string(mode), err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}
	if err = decode(string(mode), resp.Body(), &result); err != nil {
		return models.AuthResponse{}, err
	}
	if !result.Success || result.Token == "" {
		return models.AuthResponse{}, unsuccessful(string(mode), result.Message)
	}

	h.SetToken(result.Token)
	return result, nil
}

// CheckAuth implements [ServerAdapter]. GET /api/auth/check-auth.
func (h *httpServerAdapter) CheckAuth(ctx context.Context) (models.User, error) {
	var result models.UserResponse

	resp, err := h.authedRequest(ctx).
		Get("/api/auth/check-auth")
	if err != nil {
		return models.User{}, networkError("check auth", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}
	if err = decode("check auth", resp.Body(), &result); err != nil {
		return models.User{}, err
	}
	if !result.Success || result.User.ID == "" {
		return models.User{}, unsuccessful("check auth", result.Message)
	}

	return result.User, nil
}

// UpdateProfile implements [ServerAdapter]. PUT /api/auth/update.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	var result models.UserResponse

	resp, err := h.authedRequest(ctx).
		SetBody(update).
		Put("/api/auth/update")
	if err != nil {
		return models.User{}, networkError("update profile", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}
	if err = decode("update profile", resp.Body(), &result); err != nil {
		return models.User{}, err
	}
	if !result.Success {
		return models.User{}, unsuccessful("update profile", result.Message)
	}

	return result.User, nil
}

// GetUsers implements [ServerAdapter]. GET /api/messages/users.
func (h *httpServerAdapter) GetUsers(ctx context.Context) (models.PeerList, error) {
	var result models.UsersResponse

	resp, err := h.authedRequest(ctx).
		Get("/api/messages/users")
	if err != nil {
		return models.PeerList{}, networkError("get users", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PeerList{}, err
	}
	if err = decode("get users", resp.Body(), &result); err != nil {
		return models.PeerList{}, err
	}
	if !result.Success {
		return models.PeerList{}, unsuccessful("get users", result.Message)
	}

	unseen := result.UnseenMessages
	if unseen == nil {
		unseen = make(map[string]int)
	}

	return models.PeerList{Users: result.Users, UnseenByPeer: unseen}, nil
}

// GetMessages implements [ServerAdapter]. GET /api/messages/{peerID}.
func (h *httpServerAdapter) GetMessages(ctx context.Context, peerID string) ([]models.Message, error) {
	var result models.MessagesResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("peerID", peerID).
		Get("/api/messages/{peerID}")
	if err != nil {
		return nil, networkError("get messages", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if err = decode("get messages", resp.Body(), &result); err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, unsuccessful("get messages", result.Message)
	}

	return result.Messages, nil
}

// MarkSeen implements [ServerAdapter]. PUT /api/messages/mark/{messageID}.
func (h *httpServerAdapter) MarkSeen(ctx context.Context, messageID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("messageID", messageID).
		SetBody(struct{}{}).
		Put("/api/messages/mark/{messageID}")
	if err != nil {
		return networkError("mark seen", err)
	}

	return mapHTTPError(resp)
}

// SendMessage implements [ServerAdapter]. POST /api/messages/send/{peerID}.
// The server may answer with either {"message": {...}} or the bare message;
// a missing receiverId is filled with peerID.
func (h *httpServerAdapter) SendMessage(ctx context.Context, peerID string, req models.SendMessageRequest) (models.Message, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("peerID", peerID).
		SetBody(req).
		Post("/api/messages/send/{peerID}")
	if err != nil {
		return models.Message{}, networkError("send message", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}

	msg, err := decodeSentMessage(resp.Body())
	if err != nil {
		return models.Message{}, err
	}
	if msg.ReceiverID == "" {
		msg.ReceiverID = peerID
	}
	if msg.ID == "" {
		msg.ID = req.ID
	}

	return msg, nil
}

func decodeSentMessage(body []byte) (models.Message, error) {
	var wrapped models.SendMessageResponse
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return models.Message{}, fmt.Errorf("decode send message response: %w", err)
	}
	if wrapped.Error != "" {
		return models.Message{}, unsuccessful("send message", wrapped.Error)
	}
	if wrapped.Message != nil {
		return *wrapped.Message, nil
	}

	var bare models.Message
	if err := json.Unmarshal(body, &bare); err != nil {
		return models.Message{}, fmt.Errorf("decode send message response: %w", err)
	}
	if bare.SenderID == "" && bare.ID == "" {
		return models.Message{}, unsuccessful("send message", "empty response")
	}
	return bare, nil
}

func decode(op string, body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpServerAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("http response")
	return nil
}
