package mutation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadline/internal/lead"
	"leadline/internal/leadapi"
	"leadline/internal/webhook"
)

// newAPIServer echoes mutations back the way the real endpoint does,
// assigning an id on create.
func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var l lead.Lead
		switch r.Method {
		case http.MethodPost:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&l))
			l.ID = 500
			_ = json.NewEncoder(w).Encode(l)
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&l))
			_ = json.NewEncoder(w).Encode(l)
		case http.MethodDelete:
			w.WriteHeader(http.StatusOK)
		}
	}))
}

func newController(t *testing.T, hookCalls *atomic.Int32) *Controller {
	t.Helper()
	api := newAPIServer(t)
	t.Cleanup(api.Close)

	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hookCalls.Add(1)
	}))
	t.Cleanup(hook.Close)

	return New(
		leadapi.New(api.URL, time.Second),
		webhook.New(hook.URL, time.Second),
	)
}

func TestCreate_AlwaysNotifies(t *testing.T) {
	var hookCalls atomic.Int32
	c := newController(t, &hookCalls)

	created, err := c.Create(context.Background(), lead.Lead{Stage: "General Enquiry"})
	require.NoError(t, err)
	assert.Equal(t, 500, created.ID)
	assert.Equal(t, int32(1), hookCalls.Load())
}

func TestUpdate_TrackedFieldNotifies(t *testing.T) {
	var hookCalls atomic.Int32
	c := newController(t, &hookCalls)

	_, err := c.Update(context.Background(), lead.Lead{ID: 5, Phone: "9876543210"}, lead.FieldPhone)
	require.NoError(t, err)
	assert.Equal(t, int32(1), hookCalls.Load())
}

func TestUpdate_UntrackedFieldStaysSilent(t *testing.T) {
	var hookCalls atomic.Int32
	c := newController(t, &hookCalls)

	_, err := c.Update(context.Background(), lead.Lead{ID: 5, Stage: "Visit Done"}, lead.FieldStage)
	require.NoError(t, err)
	assert.Equal(t, int32(0), hookCalls.Load())
}

func TestUpdate_ReturnsServerRecord(t *testing.T) {
	var hookCalls atomic.Int32
	c := newController(t, &hookCalls)

	updated, err := c.Update(context.Background(), lead.Lead{ID: 5, Name: "Suresh"}, lead.FieldName)
	require.NoError(t, err)
	assert.Equal(t, "Suresh", updated.Name)
}

func TestUpdate_APIFailureSkipsNotification(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer api.Close()

	var hookCalls atomic.Int32
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hookCalls.Add(1)
	}))
	defer hook.Close()

	c := New(leadapi.New(api.URL, time.Second), webhook.New(hook.URL, time.Second))
	_, err := c.Update(context.Background(), lead.Lead{ID: 5, Phone: "9876543210"}, lead.FieldPhone)
	require.Error(t, err)
	assert.Equal(t, int32(0), hookCalls.Load())
}

func TestUpdate_WebhookFailureDoesNotFailUpdate(t *testing.T) {
	api := newAPIServer(t)
	defer api.Close()

	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer hook.Close()

	c := New(leadapi.New(api.URL, time.Second), webhook.New(hook.URL, time.Second))
	_, err := c.Update(context.Background(), lead.Lead{ID: 5, Phone: "9876543210"}, lead.FieldPhone)
	assert.NoError(t, err)
}

func TestDelete(t *testing.T) {
	var hookCalls atomic.Int32
	c := newController(t, &hookCalls)

	assert.NoError(t, c.Delete(context.Background(), 5))
}

func TestDelete_FailurePropagates(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer api.Close()

	c := New(leadapi.New(api.URL, time.Second), webhook.New("", time.Second))
	err := c.Delete(context.Background(), 5)
	require.Error(t, err)

	var apiErr *leadapi.APIError
	assert.ErrorAs(t, err, &apiErr)
}
