// Package webhook implements the outbound notification channel that
// reports lead changes to a third-party contact endpoint. It is
// decoupled from the primary persistence call: failures here are
// logged and never block or reverse a mutation.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"leadline/internal/lead"
	"leadline/internal/log"
)

// trackedFields are the lead fields whose updates notify the channel.
// Creation notifies unconditionally regardless of which fields are set.
var trackedFields = map[string]struct{}{
	// Personal section
	lead.FieldName:                      {},
	lead.FieldPhone:                     {},
	lead.FieldAddress:                   {},
	lead.FieldAboutHim:                  {},
	lead.FieldAlternativeContactDetails: {},

	// Requirements section
	lead.FieldRequirementDescription: {},
	lead.FieldBudget:                 {},
	lead.FieldPreferredType:          {},
	lead.FieldPurposes:               {},
	lead.FieldPreferredArea:          {},
}

// ShouldNotify reports whether a mutation warrants a notification.
// New leads always notify; updates only when a tracked field changed.
func ShouldNotify(isNew bool, changed ...string) bool {
	if isNew {
		return true
	}
	for _, field := range changed {
		if _, ok := trackedFields[field]; ok {
			return true
		}
	}
	return false
}

// Payload flattens a lead into the string-coerced form the endpoint
// expects: nil/empty values omitted, lists comma-joined, booleans
// mapped to "1"/"0", and the identifier kept numeric when known.
func Payload(l lead.Lead) (map[string]any, error) {
	raw, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("flattening lead: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("flattening lead: %w", err)
	}

	payload := make(map[string]any, len(fields))
	for key, value := range fields {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			if v == "" {
				continue
			}
			payload[key] = v
		case bool:
			if v {
				payload[key] = "1"
			} else {
				payload[key] = "0"
			}
		case []any:
			if len(v) == 0 {
				continue
			}
			parts := make([]string, len(v))
			for i, item := range v {
				parts[i] = fmt.Sprint(item)
			}
			payload[key] = lead.JoinList(parts)
		case float64:
			if key == lead.FieldID {
				payload[key] = int(v)
				continue
			}
			payload[key] = trimFloat(v)
		default:
			payload[key] = fmt.Sprint(v)
		}
	}
	if l.ID != 0 {
		payload["lead_id"] = l.ID
	}
	return payload, nil
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%v", f)
}

// Client posts notifications to the configured endpoint.
type Client struct {
	url  string
	http *http.Client
}

// New creates a notification client. An empty URL disables sending.
func New(url string, timeout time.Duration) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: timeout},
	}
}

// Send posts the flattened lead to the endpoint. A non-2xx status is
// treated as failure. Callers must treat errors as log-only.
func (c *Client) Send(ctx context.Context, l lead.Lead) error {
	if c.url == "" {
		return nil
	}

	payload, err := Payload(l)
	if err != nil {
		return err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook failed with status %d", resp.StatusCode)
	}

	log.Debug(log.CatWebhook, "notification sent", "lead_id", l.ID)
	return nil
}
