package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"travel-crm-service/pkg/httpclient"
	"travel-crm-service/pkg/logger"
)

// WebhookHandler proxies automation calls from the browser to the
// configured webhook endpoint, hiding its URL from the client
type WebhookHandler struct {
	Client     httpclient.HTTPClient
	WebhookURL string
	Logger     logger.LoggerInterface
}

// NewWebhookHandler creates a new instance of WebhookHandler.
// client may be nil when no webhook URL is configured.
func NewWebhookHandler(client httpclient.HTTPClient, webhookURL string, appLogger logger.LoggerInterface) *WebhookHandler {
	return &WebhookHandler{
		Client:     client,
		WebhookURL: webhookURL,
		Logger:     appLogger,
	}
}

// ProxyHandler forwards the request body to the automation webhook and
// relays the upstream status. The response body is always JSON: upstream
// JSON is passed through, anything else is wrapped in a message object.
func (h *WebhookHandler) ProxyHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != http.MethodPost {
		writeProxyMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if h.WebhookURL == "" || h.Client == nil {
		h.Logger.WarnContext(ctx, "Webhook proxy called without a configured webhook URL")
		writeProxyMessage(w, http.StatusBadGateway, "Automation webhook is not configured")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.Logger.ErrorContext(ctx, "Error reading webhook proxy body", "error", err)
		writeProxyMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	headers := map[string]string{"Content-Type": "application/json"}
	if contentType := r.Header.Get("Content-Type"); contentType != "" {
		headers["Content-Type"] = contentType
	}

	resp, err := h.Client.Do(ctx, http.MethodPost, "", bytes.NewReader(body), headers)
	if err != nil {
		h.Logger.ErrorContext(ctx, "Error forwarding to automation webhook", "error", err)
		writeProxyMessage(w, http.StatusBadGateway, "Failed to reach automation webhook")
		return
	}
	defer resp.Body.Close()

	upstream, err := io.ReadAll(resp.Body)
	if err != nil {
		h.Logger.ErrorContext(ctx, "Error reading automation webhook response", "error", err)
		writeProxyMessage(w, http.StatusBadGateway, "Failed to read automation webhook response")
		return
	}

	h.Logger.InfoContext(ctx, "Webhook proxied", "status", resp.StatusCode, "bytes", len(upstream))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") && json.Valid(upstream) {
		w.Write(upstream)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": string(upstream)})
}

// writeProxyMessage writes a plain JSON message outside the API envelope,
// matching what webhook callers expect
func writeProxyMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
