package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/archivelab/meeting-archive/internal/adapter/dto/browse"
	"github.com/archivelab/meeting-archive/internal/domain/entities"
	"github.com/archivelab/meeting-archive/internal/usecase/aggregate"
	"github.com/archivelab/meeting-archive/internal/usecase/export"
	"github.com/archivelab/meeting-archive/internal/usecase/filter"
	"github.com/archivelab/meeting-archive/internal/usecase/graph"
	"github.com/archivelab/meeting-archive/internal/usecase/people"
	"github.com/archivelab/meeting-archive/internal/usecase/topics"
	"github.com/archivelab/meeting-archive/internal/usecase/workgroup"
	pkgvalidator "github.com/archivelab/meeting-archive/pkg/validator"
)

func fixtureMeetings() []*entities.Meeting {
	day := func(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }

	m1 := entities.NewMeeting(entities.MeetingKey{WorkgroupID: "wg-gov", RawDate: "2025-01-05", Index: 0}, "Governance", day(5), "Weekly")
	m1.Host = "Alice"
	m1.PeoplePresent = []string{"Alice", "Bob"}
	m1.TopicsCovered = []string{"Budget", "Roadmap"}
	action, _ := entities.NewActionItem(
		entities.ItemKey{Meeting: entities.MeetingKey{WorkgroupID: "wg-gov", RawDate: "2025-01-05", Index: 0}, Kind: entities.ItemKindAction},
		"Governance", day(5), "Draft charter", "in progress", "Alice", "")
	m1.ActionItems = []*entities.ActionItem{action}
	decision, _ := entities.NewDecision(
		entities.ItemKey{Meeting: entities.MeetingKey{WorkgroupID: "wg-gov", RawDate: "2025-01-05", Index: 0}, Kind: entities.ItemKindDecision},
		"Governance", day(5), "Adopt charter", entities.EffectOtherPeople, "", "")
	m1.Decisions = []*entities.Decision{decision}

	m2 := entities.NewMeeting(entities.MeetingKey{WorkgroupID: "wg-res", RawDate: "2025-01-20", Index: 1}, "Research", day(20), "Monthly")
	m2.Host = "Charlie"
	m2.TopicsCovered = []string{"Budget", "AI Ethics"}

	return []*entities.Meeting{m1, m2}
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	log := zap.NewNop()
	meetings := fixtureMeetings()

	filters := filter.NewService(log)
	peopleExtractor := people.NewExtractor(log)
	explorer := NewExplorer(
		meetings,
		filters,
		aggregate.NewService(log),
		peopleExtractor,
		topics.NewExtractor(),
		graph.NewBuilder(peopleExtractor, filters, log),
		workgroup.NewService(meetings),
		export.NewService(log),
		log,
	)

	e := echo.New()
	e.Validator = pkgvalidator.New()
	RegisterRoutes(e, explorer)
	return e
}

func doRequest(t *testing.T, e *echo.Echo, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) (items []map[string]any, count int) {
	t.Helper()
	var body struct {
		Data  []map[string]any `json:"data"`
		Count int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Data, body.Count
}

func TestListMeetings(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, "/v1/meetings")
	require.Equal(t, http.StatusOK, rec.Code)
	items, count := decodeList(t, rec)
	assert.Equal(t, 2, count)
	assert.Equal(t, "wg-gov_2025-01-05_0", items[0]["id"])
}

func TestListMeetingsFiltered(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, "/v1/meetings?workgroup=Research")
	require.Equal(t, http.StatusOK, rec.Code)
	items, count := decodeList(t, rec)
	require.Equal(t, 1, count)
	assert.Equal(t, "Research", items[0]["workgroup"])

	rec = doRequest(t, e, "/v1/meetings?tags=budget")
	_, count = decodeList(t, rec)
	assert.Equal(t, 2, count)

	rec = doRequest(t, e, "/v1/meetings?start_date=2025-01-10&end_date=2025-01-20")
	items, count = decodeList(t, rec)
	require.Equal(t, 1, count)
	assert.Equal(t, "wg-res_2025-01-20_1", items[0]["id"])
}

func TestListMeetingsRejectsBadDate(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, "/v1/meetings?start_date=15-01-2025")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_request")
}

func TestListDecisions(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, "/v1/decisions")
	require.Equal(t, http.StatusOK, rec.Code)
	items, count := decodeList(t, rec)
	require.Equal(t, 1, count)
	assert.Equal(t, "Adopt charter", items[0]["decision_text"])
	assert.Equal(t, entities.EffectOtherPeople, items[0]["effect"])
}

func TestListActionItems(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, "/v1/action-items?assignee=Alice&status=in+progress")
	require.Equal(t, http.StatusOK, rec.Code)
	items, count := decodeList(t, rec)
	require.Equal(t, 1, count)
	assert.Equal(t, "Draft charter", items[0]["text"])

	rec = doRequest(t, e, "/v1/action-items?status=done")
	_, count = decodeList(t, rec)
	assert.Equal(t, 0, count)
}

func TestListPeople(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, "/v1/people")
	require.Equal(t, http.StatusOK, rec.Code)
	items, count := decodeList(t, rec)
	assert.Equal(t, 3, count)
	assert.Equal(t, "Alice", items[0]["name"])
}

func TestListTopics(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, "/v1/topics")
	require.Equal(t, http.StatusOK, rec.Code)

	var body browse.TopicListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"AI Ethics", "Budget", "Roadmap"}, body.Topics)
	assert.Equal(t, []string{"ai ethics", "budget", "roadmap"}, body.Normalized)
}

func TestListTopicSummaries(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, "/v1/topics/summary")
	require.Equal(t, http.StatusOK, rec.Code)
	items, count := decodeList(t, rec)
	require.Equal(t, 3, count)
	assert.Equal(t, "ai ethics", items[0]["name"])
}

func TestListWorkgroups(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, "/v1/workgroups")
	require.Equal(t, http.StatusOK, rec.Code)
	items, count := decodeList(t, rec)
	require.Equal(t, 2, count)
	assert.Equal(t, "wg-gov", items[0]["id"])
	assert.Equal(t, float64(1), items[0]["meeting_count"])
}

func TestListWorkgroupMeetings(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, "/v1/workgroups/Governance/meetings")
	require.Equal(t, http.StatusOK, rec.Code)
	_, count := decodeList(t, rec)
	assert.Equal(t, 1, count)

	rec = doRequest(t, e, "/v1/workgroups/Governance/meetings?sort=sideways")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, e, "/v1/workgroups/Unknown/meetings")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestGetParticipationGraph(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, "/v1/graphs/participation")
	require.Equal(t, http.StatusOK, rec.Code)

	var body browse.GraphResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Nodes, 5)
	assert.Len(t, body.Edges, 3)
}

func TestGetTopicGraphFiltered(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, "/v1/graphs/topics?workgroup=Research")
	require.Equal(t, http.StatusOK, rec.Code)

	var body browse.GraphResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Nodes, 2)
	require.Len(t, body.Edges, 1)
	assert.Equal(t, 1, body.Edges[0].Weight)
}

func TestExportMeetingsCSV(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, "/v1/export/meetings?format=csv")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "meetings.csv")
	assert.Contains(t, rec.Body.String(), "ID,Workgroup,Date")
}

func TestExportActionItemsDefaultText(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, "/v1/export/action-items")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "action_items.txt")
	assert.Contains(t, rec.Body.String(), "Draft charter")
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, "/v1/export/meetings?format=xml")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthz(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
