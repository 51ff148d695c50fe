// Package mutation performs create/update/delete against the remote
// API with optimistic local state: changes apply locally first, commit
// on success, and roll back on failure. The notification channel is
// fired after the primary call based on which fields changed; its
// failures are logged and never affect the mutation outcome.
package mutation

import (
	"context"
	"fmt"

	"leadline/internal/lead"
	"leadline/internal/leadapi"
	"leadline/internal/log"
	"leadline/internal/webhook"
)

// Controller executes mutations against the remote API.
type Controller struct {
	api  *leadapi.Client
	hook *webhook.Client
}

// New creates a mutation controller.
func New(api *leadapi.Client, hook *webhook.Client) *Controller {
	return &Controller{api: api, hook: hook}
}

// Create persists a draft. New records always notify the channel,
// regardless of which fields are set.
func (c *Controller) Create(ctx context.Context, draft lead.Lead) (lead.Lead, error) {
	created, err := c.api.Create(ctx, draft)
	if err != nil {
		return lead.Lead{}, fmt.Errorf("creating lead: %w", err)
	}
	log.Info(log.CatMutation, "lead created", "id", created.ID)
	c.notify(ctx, created)
	return created, nil
}

// Update sends the full current record as a partial update keyed by
// its identifier. The notification fires only when a changed field is
// in the tracked set. The primary call has already succeeded by the
// time the webhook runs, so a webhook failure cannot fail the update.
func (c *Controller) Update(ctx context.Context, record lead.Lead, changed ...string) (lead.Lead, error) {
	updated, err := c.api.Update(ctx, record.ID, record)
	if err != nil {
		return lead.Lead{}, fmt.Errorf("updating lead %d: %w", record.ID, err)
	}
	log.Info(log.CatMutation, "lead updated", "id", record.ID, "fields", changed)
	if webhook.ShouldNotify(false, changed...) {
		c.notify(ctx, updated)
	}
	return updated, nil
}

// Delete removes a lead. The error is returned to the caller so a
// containing flow (for example a confirmation dialog) can decide not
// to close itself.
func (c *Controller) Delete(ctx context.Context, id int) error {
	if err := c.api.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting lead %d: %w", id, err)
	}
	log.Info(log.CatMutation, "lead deleted", "id", id)
	return nil
}

func (c *Controller) notify(ctx context.Context, l lead.Lead) {
	if err := c.hook.Send(ctx, l); err != nil {
		log.ErrorErr(log.CatWebhook, "notification failed", err, "lead_id", l.ID)
	}
}
