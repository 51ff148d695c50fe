package leadapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadline/internal/lead"
)

func TestListQuery_Values(t *testing.T) {
	q := ListQuery{
		Page:      2,
		PerPage:   20,
		SortField: "budget",
		SortOrder: "asc",
		Search:    "ramesh",
		Tags:      "Hot Lead,NRI",
		Filters:   map[string]string{"stage": "Visit Done", "assigned_to": "Sharvan"},
	}

	values, err := q.Values()
	require.NoError(t, err)
	assert.Equal(t, "2", values.Get("page"))
	assert.Equal(t, "20", values.Get("per_page"))
	assert.Equal(t, "budget", values.Get("sort_field"))
	assert.Equal(t, "asc", values.Get("sort_order"))
	assert.Equal(t, "ramesh", values.Get("search"))
	assert.Equal(t, "Hot Lead,NRI", values.Get("tags"))
	assert.Equal(t, "Visit Done", values.Get("stage"))
	assert.Equal(t, "Sharvan", values.Get("assigned_to"))
}

func TestListQuery_Values_OmitsEmptyOptionals(t *testing.T) {
	values, err := ListQuery{Page: 1, PerPage: 20}.Values()
	require.NoError(t, err)
	assert.False(t, values.Has("search"))
	assert.False(t, values.Has("tags"))
}

func TestListQuery_Values_SkipsEmptyFilterValues(t *testing.T) {
	values, err := ListQuery{Page: 1, Filters: map[string]string{"stage": ""}}.Values()
	require.NoError(t, err)
	assert.False(t, values.Has("stage"))
}

func TestFlexInt_DecodesBothForms(t *testing.T) {
	var m Meta
	require.NoError(t, json.Unmarshal([]byte(`{"total":"125","page":3,"per_page":"20","total_pages":7}`), &m))
	assert.Equal(t, FlexInt(125), m.Total)
	assert.Equal(t, FlexInt(3), m.Page)
	assert.Equal(t, FlexInt(20), m.PerPage)
	assert.Equal(t, FlexInt(7), m.TotalPages)
}

func TestFlexInt_EmptyStringIsZero(t *testing.T) {
	var f FlexInt
	require.NoError(t, f.UnmarshalJSON([]byte(`""`)))
	assert.Equal(t, FlexInt(0), f)
}

func TestFlexInt_NonNumericStringErrors(t *testing.T) {
	var f FlexInt
	assert.Error(t, f.UnmarshalJSON([]byte(`"many"`)))
}

func TestList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "id", r.URL.Query().Get("sort_field"))
		_, _ = w.Write([]byte(`{
			"data": [{"id": 1, "name": "Ramesh"}, {"id": 2, "name": "Suresh"}],
			"meta": {"total": "2", "page": "1", "per_page": "20", "total_pages": "1"}
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	resp, err := c.List(context.Background(), ListQuery{Page: 1, PerPage: 20, SortField: "id", SortOrder: "desc"})
	require.NoError(t, err)
	require.Len(t, resp.Leads, 2)
	assert.Equal(t, "Ramesh", resp.Leads[0].Name)
	assert.Equal(t, FlexInt(2), resp.Meta.Total)
}

func TestList_EnvelopeErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": null, "error": "query too broad"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.List(context.Background(), ListQuery{Page: 1})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "query too broad", apiErr.Message)
}

func TestGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("id"))
		_, _ = w.Write([]byte(`{"id": 7, "name": "Ramesh", "phone": "9876543210"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	l, err := c.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, l.ID)
	assert.Equal(t, "9876543210", l.Phone)
}

func TestGet_MissingLead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": "no lead with id 999"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var got lead.Lead
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Ramesh", got.Name)
		got.ID = 101
		_ = json.NewEncoder(w).Encode(got)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	created, err := c.Create(context.Background(), lead.Lead{Name: "Ramesh"})
	require.NoError(t, err)
	assert.Equal(t, 101, created.ID)
}

func TestUpdate_SendsFullRecordKeyedByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "5", r.URL.Query().Get("id"))
		var got lead.Lead
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Visit Done", got.Stage)
		_ = json.NewEncoder(w).Encode(got)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	updated, err := c.Update(context.Background(), 5, lead.Lead{ID: 5, Name: "Ramesh", Stage: "Visit Done"})
	require.NoError(t, err)
	assert.Equal(t, "Visit Done", updated.Stage)
}

func TestDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "5", r.URL.Query().Get("id"))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	assert.NoError(t, c.Delete(context.Background(), 5))
}

func TestDo_NonSuccessStatusDecodesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message": "phone is required"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Create(context.Background(), lead.Lead{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "phone is required", apiErr.Message)
}

func TestDo_RetriesServerErrors(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"data": [], "meta": {"total": 0, "page": 1, "per_page": 20, "total_pages": 0}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.List(context.Background(), ListQuery{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestCreate_NeverRetried(t *testing.T) {
	var posts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Create(context.Background(), lead.Lead{Name: "Ramesh"})

	// A replayed POST would duplicate a lead the server may already
	// have persisted, so the failure surfaces after a single attempt.
	require.Error(t, err)
	assert.Equal(t, 1, posts)
}

func TestUpdate_NeverRetried(t *testing.T) {
	var puts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		puts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Update(context.Background(), 5, lead.Lead{ID: 5})

	require.Error(t, err)
	assert.Equal(t, 1, puts)
}

func TestDelete_NeverRetried(t *testing.T) {
	var deletes int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deletes++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	err := c.Delete(context.Background(), 5)

	require.Error(t, err)
	assert.Equal(t, 1, deletes)
}

func TestAPIError_Message(t *testing.T) {
	withMsg := &APIError{StatusCode: 400, Message: "bad input"}
	assert.Contains(t, withMsg.Error(), "bad input")

	bare := &APIError{StatusCode: 500}
	assert.Contains(t, bare.Error(), "500")
	assert.False(t, errors.Is(bare, withMsg))
}
