package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"testing"
	"time"

	"construction-deepwiki-be/internal/constant"
	"construction-deepwiki-be/internal/dto"
	"construction-deepwiki-be/internal/mapper"
	"construction-deepwiki-be/internal/pkg/logger"
	"construction-deepwiki-be/pkg/events"
)

func TestRecordBuffersCapped(t *testing.T) {
	f := newFixture()
	sessionId := "session_cap"

	for i := 0; i < 150; i++ {
		f.activity.Record(sessionId, fmt.Sprintf("action_%d", i), nil, constant.LogLevelInfo)
	}

	entries := f.activityRepo.Buffer(sessionId).Snapshot()
	if len(entries) != 100 {
		t.Fatalf("buffer length = %d, want 100", len(entries))
	}
	if entries[0].Action != "action_50" {
		t.Errorf("oldest survivor = %s, want action_50", entries[0].Action)
	}
	if entries[99].Action != "action_149" {
		t.Errorf("newest survivor = %s, want action_149", entries[99].Action)
	}
}

func TestRecordFillsDefaults(t *testing.T) {
	f := newFixture()
	sessionId := "session_defaults"

	f.activity.Record(sessionId, "something", nil, constant.LogLevelInfo)

	entries := f.activityRepo.Buffer(sessionId).Snapshot()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	entry := entries[0]
	if entry.Details == nil {
		t.Error("nil details not replaced with empty map")
	}
	if entry.SessionId != sessionId {
		t.Errorf("session id = %q, want %q", entry.SessionId, sessionId)
	}
	if entry.UserAgent != constant.UserAgentBrowser {
		t.Errorf("user agent = %q, want %q", entry.UserAgent, constant.UserAgentBrowser)
	}
	if entry.Timestamp.IsZero() {
		t.Error("timestamp is zero")
	}
}

func TestRecentFiltersAndOrders(t *testing.T) {
	f := newFixture()
	sessionId := "session_recent"

	f.activity.Record(sessionId, "page_view", map[string]interface{}{"page": "a"}, constant.LogLevelInfo)
	f.activity.Record(sessionId, "upload_rejected", nil, constant.LogLevelWarning)
	f.activity.Record(sessionId, "page_view", map[string]interface{}{"page": "b"}, constant.LogLevelInfo)

	recent := f.activity.Recent(sessionId, constant.LogFilterAll, constant.LogFilterAll, 50)
	if len(recent) != 3 {
		t.Fatalf("unfiltered = %d entries, want 3", len(recent))
	}
	if recent[0].Action != "page_view" || recent[0].Details["page"] != "b" {
		t.Errorf("entries not newest first: %+v", recent[0])
	}

	warnings := f.activity.Recent(sessionId, constant.LogLevelWarning, constant.LogFilterAll, 50)
	if len(warnings) != 1 || warnings[0].Action != "upload_rejected" {
		t.Errorf("WARNING filter returned %+v", warnings)
	}

	views := f.activity.Recent(sessionId, constant.LogFilterAll, "page_view", 50)
	if len(views) != 2 {
		t.Errorf("action filter = %d entries, want 2", len(views))
	}

	limited := f.activity.Recent(sessionId, constant.LogFilterAll, constant.LogFilterAll, 2)
	if len(limited) != 2 {
		t.Fatalf("limited = %d entries, want 2", len(limited))
	}
	// The limit keeps the newest entries, not the oldest.
	if limited[0].Details["page"] != "b" {
		t.Errorf("limit dropped the newest entry: %+v", limited[0])
	}
}

func TestMetricsCountsByLevel(t *testing.T) {
	f := newFixture()
	sessionId := "session_metrics"

	f.activity.Record(sessionId, "a", nil, constant.LogLevelInfo)
	f.activity.Record(sessionId, "b", nil, constant.LogLevelInfo)
	f.activity.Record(sessionId, "c", nil, constant.LogLevelWarning)

	metrics := f.activity.Metrics(sessionId)
	want := dto.LogMetricsDTO{Total: 3, Info: 2, Warning: 1, Error: 0}
	if metrics != want {
		t.Errorf("metrics = %+v, want %+v", metrics, want)
	}
}

func TestActionsFirstAppearanceOrder(t *testing.T) {
	f := newFixture()
	sessionId := "session_actions"

	for _, action := range []string{"session_started", "page_view", "navigation", "page_view", "navigation"} {
		f.activity.Record(sessionId, action, nil, constant.LogLevelInfo)
	}

	actions := f.activity.Actions(sessionId)
	want := []string{"session_started", "page_view", "navigation"}
	if len(actions) != len(want) {
		t.Fatalf("actions = %v, want %v", actions, want)
	}
	for i := range want {
		if actions[i] != want[i] {
			t.Errorf("actions[%d] = %q, want %q", i, actions[i], want[i])
		}
	}
}

func TestListReportsFilteredTotal(t *testing.T) {
	f := newFixture()
	sessionId := "session_list"

	for i := 0; i < 5; i++ {
		f.activity.Record(sessionId, "page_view", nil, constant.LogLevelInfo)
	}
	f.activity.Record(sessionId, "export_logs", nil, constant.LogLevelInfo)

	list := f.activity.List(sessionId, constant.LogFilterAll, "page_view", 2)
	if list.Total != 5 {
		t.Errorf("total = %d, want the filtered count 5", list.Total)
	}
	if len(list.Entries) != 2 {
		t.Errorf("entries = %d, want the limited 2", len(list.Entries))
	}
}

func TestExportSnapshotExcludesItself(t *testing.T) {
	f := newFixture()
	sessionId := "session_export"

	f.activity.Record(sessionId, "page_view", map[string]interface{}{"page": "sites_overview"}, constant.LogLevelInfo)
	f.activity.Record(sessionId, "navigation", map[string]interface{}{"to": "overview"}, constant.LogLevelInfo)

	res, data, err := f.activity.Export(sessionId, constant.LogFilterAll, constant.LogFilterAll)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	pattern := regexp.MustCompile(`^construction_app_logs_\d{8}_\d{6}\.json$`)
	if !pattern.MatchString(res.Filename) {
		t.Errorf("filename = %q, want construction_app_logs_<timestamp>.json", res.Filename)
	}
	if res.ExportedCount != 2 {
		t.Errorf("exported count = %d, want 2", res.ExportedCount)
	}

	var exported []dto.ActivityLogDTO
	if err := json.Unmarshal(data, &exported); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(exported) != 2 {
		t.Fatalf("export holds %d entries, want 2", len(exported))
	}
	for _, entry := range exported {
		if entry.Action == constant.ActionExportLogs {
			t.Error("export contains its own export_logs entry")
		}
	}

	// The export action itself still lands in the buffer for the next
	// reader.
	if got := f.countAction(sessionId, constant.ActionExportLogs); got != 1 {
		t.Errorf("export_logs entries in buffer = %d, want 1", got)
	}
}

func TestExportAppliesFilters(t *testing.T) {
	f := newFixture()
	sessionId := "session_export_filter"

	f.activity.Record(sessionId, "page_view", nil, constant.LogLevelInfo)
	f.activity.Record(sessionId, "upload_rejected", nil, constant.LogLevelWarning)

	res, data, err := f.activity.Export(sessionId, constant.LogLevelWarning, constant.LogFilterAll)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if res.ExportedCount != 1 {
		t.Errorf("exported count = %d, want 1", res.ExportedCount)
	}

	var exported []dto.ActivityLogDTO
	if err := json.Unmarshal(data, &exported); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(exported) != 1 || exported[0].Action != "upload_rejected" {
		t.Errorf("filtered export = %+v", exported)
	}
}

func TestRecordPublishesActivityEvent(t *testing.T) {
	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	messages, err := f.pubSub.Subscribe(ctx, constant.TopicActivityEvents)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	f.activity.Record("session_bus", "navigation", map[string]interface{}{"to": "overview"}, constant.LogLevelInfo)

	select {
	case msg := <-messages:
		var event events.BaseEvent
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		msg.Ack()
		if event.Type != constant.EventActivityLogged {
			t.Errorf("event type = %q, want %q", event.Type, constant.EventActivityLogged)
		}
		if events.SessionId(event) != "session_bus" {
			t.Errorf("event session = %q, want session_bus", events.SessionId(event))
		}
		if event.Data["action"] != "navigation" {
			t.Errorf("event action = %v, want navigation", event.Data["action"])
		}
	case <-time.After(time.Second):
		t.Fatal("no activity event published within 1s")
	}
}

// sinkLevelRecorder captures the level GetLogs is asked for.
type sinkLevelRecorder struct {
	nopLogger
	level string
}

func (r *sinkLevelRecorder) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	r.level = level
	return []logger.LogEntry{}, nil
}

func TestSinkLogsTranslatesLevels(t *testing.T) {
	recorder := &sinkLevelRecorder{}
	f := newFixture()
	service := NewActivityService(f.activityRepo, f.publisher, mapper.NewActivityMapper(), recorder)

	cases := []struct {
		in   string
		want string
	}{
		{constant.LogFilterAll, ""},
		{constant.LogLevelWarning, "WARN"},
		{constant.LogLevelInfo, "INFO"},
		{constant.LogLevelError, "ERROR"},
	}
	for _, tc := range cases {
		if _, err := service.SinkLogs(tc.in, 10, 0); err != nil {
			t.Fatalf("SinkLogs(%q): %v", tc.in, err)
		}
		if recorder.level != tc.want {
			t.Errorf("SinkLogs(%q) queried level %q, want %q", tc.in, recorder.level, tc.want)
		}
	}
}
