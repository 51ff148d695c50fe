// Package query implements the list query controller: it owns the
// search term, filters, tags, sort and page, derives the outgoing
// query, fetches matching leads cache-first, and publishes the current
// page of records. State changes that affect which leads match reset
// the page to 1 and clear the cache slot synchronously, before any
// fetch can fire.
package query

import (
	"context"
	"regexp"
	"strings"

	"leadline/internal/auth"
	"leadline/internal/cache"
	"leadline/internal/clipboard"
	"leadline/internal/lead"
	"leadline/internal/leadapi"
	"leadline/internal/log"
	"leadline/internal/prefs"
	"leadline/internal/pubsub"
)

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// DefaultPerPage is the fixed page size.
const DefaultPerPage = 20

var phonePattern = regexp.MustCompile(`^\d{10,}$`)

// Snapshot is the published view of the controller: the current page
// of records, its pagination metadata, and the fetch error state.
type Snapshot struct {
	Leads []lead.Lead
	Meta  leadapi.Meta
	Err   error
}

// Fetch describes one dispatched list fetch. Seq is the request
// generation: responses carrying an older Seq than the latest
// dispatched one are dropped, so out-of-order completions can never
// overwrite newer data.
type Fetch struct {
	Seq      uint64
	Query    leadapi.ListQuery
	HadCache bool
}

// Result carries a completed fetch back to the controller.
type Result struct {
	Seq      uint64
	Resp     leadapi.ListResponse
	Err      error
	HadCache bool
}

// Controller owns query state and the published record list.
type Controller struct {
	api     *leadapi.Client
	results *cache.ResultCache
	store   *prefs.Store
	clip    clipboard.Clipboard
	broker  *pubsub.Broker[Snapshot]
	session auth.Session

	search    string
	filters   map[string]string
	tags      []string
	sortField string
	sortDir   string
	page      int
	perPage   int

	version int    // bumped on every fetch-relevant change; guards the debounce
	seq     uint64 // request generation of the latest dispatched fetch

	leads    []lead.Lead
	meta     leadapi.Meta
	fetchErr error
}

// New creates a controller, restoring persisted query state from the
// preference store. For non-admin sessions the assigned_to filter is
// forced to the account's username.
func New(api *leadapi.Client, results *cache.ResultCache, store *prefs.Store, clip clipboard.Clipboard, session auth.Session) *Controller {
	sortField, sortDir := store.Sort()
	c := &Controller{
		api:       api,
		results:   results,
		store:     store,
		clip:      clip,
		broker:    pubsub.NewBroker[Snapshot](),
		session:   session,
		search:    store.Search(),
		filters:   store.Filters(),
		tags:      store.Tags(),
		sortField: sortField,
		sortDir:   sortDir,
		page:      store.Page(),
		perPage:   DefaultPerPage,
	}
	if !session.Admin {
		c.filters[lead.FieldAssignedTo] = session.Username
	}
	return c
}

// Subscribe returns a channel of published snapshots.
func (c *Controller) Subscribe(ctx context.Context) <-chan pubsub.Event[Snapshot] {
	return c.broker.Subscribe(ctx)
}

// Close releases the controller's broker.
func (c *Controller) Close() {
	c.broker.Close()
}

// Version returns the current change version. A debounce timer armed
// for an older version must not trigger a fetch.
func (c *Controller) Version() int {
	return c.version
}

// Leads returns the published page of records.
func (c *Controller) Leads() []lead.Lead { return c.leads }

// Meta returns the published pagination metadata.
func (c *Controller) Meta() leadapi.Meta { return c.meta }

// Err returns the list-level fetch error, if any. It persists until a
// successful fetch replaces it.
func (c *Controller) Err() error { return c.fetchErr }

// Search returns the current search term.
func (c *Controller) Search() string { return c.search }

// Page returns the current 1-based page.
func (c *Controller) Page() int { return c.page }

// SortField returns the current sort field.
func (c *Controller) SortField() string { return c.sortField }

// SortDir returns the current sort direction.
func (c *Controller) SortDir() string { return c.sortDir }

// Filters returns a copy of the current filter map.
func (c *Controller) Filters() map[string]string {
	out := make(map[string]string, len(c.filters))
	for k, v := range c.filters {
		out[k] = v
	}
	return out
}

// Tags returns a copy of the current tag list.
func (c *Controller) Tags() []string {
	return append([]string(nil), c.tags...)
}

// SetSearch updates the search term and resets the page. If the term
// (after stripping whitespace and plus signs) is a string of ten or
// more digits, it is copied to the clipboard as a convenience;
// clipboard failure is logged and never surfaced.
func (c *Controller) SetSearch(term string) int {
	c.search = term
	c.store.SetSearch(term)
	c.queryChanged()

	digits := strings.NewReplacer(" ", "", "+", "", "\t", "").Replace(term)
	if phonePattern.MatchString(digits) {
		if err := c.clip.Copy(digits); err != nil {
			log.ErrorErr(log.CatClipboard, "copy failed", err)
		} else {
			log.Debug(log.CatClipboard, "copied phone number", "digits", len(digits))
		}
	}
	return c.version
}

// SetFilters replaces the filter map and resets the page.
func (c *Controller) SetFilters(filters map[string]string) int {
	c.filters = make(map[string]string, len(filters))
	for k, v := range filters {
		c.filters[k] = v
	}
	c.store.SetFilters(c.filters)
	c.queryChanged()
	return c.version
}

// SetFilter sets a single filter key and resets the page.
func (c *Controller) SetFilter(key, value string) int {
	c.filters[key] = value
	c.store.SetFilters(c.filters)
	c.queryChanged()
	return c.version
}

// RemoveFilter deletes a filter key and resets the page.
func (c *Controller) RemoveFilter(key string) int {
	delete(c.filters, key)
	c.store.SetFilters(c.filters)
	c.queryChanged()
	return c.version
}

// ClearFilters empties the filter map and tags and resets the page.
// Non-admin sessions keep their forced assigned_to filter: it is
// re-seeded rather than removed.
func (c *Controller) ClearFilters() int {
	if c.session.Admin {
		c.filters = make(map[string]string)
	} else {
		c.filters = map[string]string{lead.FieldAssignedTo: c.session.Username}
	}
	c.tags = nil
	c.store.SetFilters(c.filters)
	c.store.SetTags(nil)
	c.queryChanged()
	return c.version
}

// SetTags replaces the tag list and resets the page. Tags merge into
// the outgoing query as a single comma-joined value.
func (c *Controller) SetTags(tags []string) int {
	c.tags = append([]string(nil), tags...)
	c.store.SetTags(c.tags)
	c.queryChanged()
	return c.version
}

// SetSort selects the sort field and resets the page. Selecting the
// field already sorted descending toggles to ascending; any other
// selection sorts descending.
func (c *Controller) SetSort(field string) int {
	if field == c.sortField && c.sortDir == SortDesc {
		c.sortDir = SortAsc
	} else {
		c.sortDir = SortDesc
	}
	c.sortField = field
	c.store.SetSort(c.sortField, c.sortDir)
	c.queryChanged()
	return c.version
}

// SetPage sets the page directly without touching the rest of the
// query state or the cache.
func (c *Controller) SetPage(page int) int {
	if page < 1 {
		page = 1
	}
	c.page = page
	c.store.SetPage(page)
	c.version++
	return c.version
}

// queryChanged resets the page to 1 and clears the cache slot. The
// clear happens synchronously so a later fetch can never serve a
// result computed under a different query.
func (c *Controller) queryChanged() {
	c.page = 1
	c.store.SetPage(1)
	c.results.Clear()
	c.version++
}

// BuildQuery derives the outgoing query from all current state.
func (c *Controller) BuildQuery() leadapi.ListQuery {
	return leadapi.ListQuery{
		Page:      c.page,
		PerPage:   c.perPage,
		SortField: c.sortField,
		SortOrder: c.sortDir,
		Search:    c.search,
		Tags:      lead.JoinList(c.tags),
		Filters:   c.Filters(),
	}
}

// BeginFetch snapshots the current query and assigns it the next
// request generation. If an unexpired cache entry exists it is served
// synchronously: the published records update immediately and the
// network refresh proceeds in the background.
func (c *Controller) BeginFetch() Fetch {
	c.seq++
	f := Fetch{Seq: c.seq, Query: c.BuildQuery()}

	if entry, ok := c.results.Get(); ok {
		c.leads = entry.Leads
		c.meta = entry.Meta
		c.fetchErr = nil
		f.HadCache = true
		c.publish()
		log.Debug(log.CatQuery, "served cached page", "seq", f.Seq, "leads", len(entry.Leads))
	}
	return f
}

// Do performs the network call for a dispatched fetch. It is safe to
// run off the main loop: it touches only the snapshot it was given.
func (c *Controller) Do(ctx context.Context, f Fetch) Result {
	resp, err := c.api.List(ctx, f.Query)
	return Result{Seq: f.Seq, Resp: resp, Err: err, HadCache: f.HadCache}
}

// Apply folds a completed fetch back into the controller. Responses
// from superseded generations are dropped. A failed fetch after a
// cache hit is silent; a failed fetch with no cache publishes an empty
// record set and a user-visible error.
func (c *Controller) Apply(res Result) bool {
	if res.Seq != c.seq {
		log.Debug(log.CatQuery, "dropping stale response", "seq", res.Seq, "latest", c.seq)
		return false
	}

	if res.Err != nil {
		log.ErrorErr(log.CatQuery, "list fetch failed", res.Err, "seq", res.Seq)
		if res.HadCache {
			// Cached data is already on screen; stay silent.
			return false
		}
		c.leads = nil
		c.meta = leadapi.Meta{}
		c.fetchErr = res.Err
		c.publish()
		return true
	}

	c.leads = res.Resp.Leads
	c.meta = res.Resp.Meta
	c.fetchErr = nil
	c.results.Put(res.Resp.Leads, res.Resp.Meta)
	c.publish()
	return true
}

// ReplaceLead swaps the record with the same identifier in the
// published list, if present. Used by optimistic updates.
func (c *Controller) ReplaceLead(l lead.Lead) {
	for i := range c.leads {
		if c.leads[i].ID == l.ID {
			c.leads[i] = l
			c.publish()
			return
		}
	}
}

// PrependLead puts a newly created record at the top of the published
// list as a temporary visual placeholder until the next refetch
// reconciles pagination and sorting.
func (c *Controller) PrependLead(l lead.Lead) {
	c.leads = append([]lead.Lead{l}, c.leads...)
	c.publish()
}

// RemoveLead drops the record with the given identifier from the
// published list.
func (c *Controller) RemoveLead(id int) {
	for i := range c.leads {
		if c.leads[i].ID == id {
			c.leads = append(c.leads[:i], c.leads[i+1:]...)
			c.publish()
			return
		}
	}
}

func (c *Controller) publish() {
	c.broker.Publish(pubsub.StateEvent, Snapshot{Leads: c.leads, Meta: c.meta, Err: c.fetchErr})
}
