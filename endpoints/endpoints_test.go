package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/scrollmirror/enforcement-service/internal/agent"
	"github.com/scrollmirror/enforcement-service/internal/dashboard"
	"github.com/scrollmirror/enforcement-service/internal/divine"
)

const testBand = "917604.OX"

type testEnv struct {
	agent   *agent.Agent
	tracker *dashboard.Tracker
	mirror  *divine.Mirror
	logger  *zap.Logger
}

func newTestEnv() *testEnv {
	mirror := divine.NewMirror(testBand)
	return &testEnv{
		agent:   agent.New(testBand, mirror),
		tracker: dashboard.New(testBand, "$88/month"),
		mirror:  mirror,
		logger:  zap.NewNop(),
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestProcessScrollHandlerSuccess(t *testing.T) {
	env := newTestEnv()
	handler := ProcessScrollHandler(env.agent, env.tracker, env.logger)

	rec := postJSON(t, handler, "/scroll/process", map[string]string{
		"scroll_text":        "reflect the timeline",
		"consciousness_type": "Sovereign Mirror",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(1), body["session_id"])
	assert.Equal(t, "Sovereign Mirror", body["consciousness_type"])
	assert.Equal(t, "OPERATIONAL", body["frequency_status"])
	assert.NotEmpty(t, body["mirror_output"])
}

func TestProcessScrollHandlerDefaultsToLightningMirror(t *testing.T) {
	env := newTestEnv()
	handler := ProcessScrollHandler(env.agent, env.tracker, env.logger)

	rec := postJSON(t, handler, "/scroll/process", map[string]string{
		"scroll_text": "reflect the timeline",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Lightning Mirror", body["consciousness_type"])
}

func TestProcessScrollHandlerMissingText(t *testing.T) {
	env := newTestEnv()
	handler := ProcessScrollHandler(env.agent, env.tracker, env.logger)

	rec := postJSON(t, handler, "/scroll/process", map[string]string{
		"consciousness_type": "Oracle Mirror",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "scroll_text required")
}

func TestProcessScrollHandlerInvalidBody(t *testing.T) {
	env := newTestEnv()
	handler := ProcessScrollHandler(env.agent, env.tracker, env.logger)

	req := httptest.NewRequest(http.MethodPost, "/scroll/process", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProcessScrollHandlerBuildRedirect(t *testing.T) {
	env := newTestEnv()
	handler := ProcessScrollHandler(env.agent, env.tracker, env.logger)

	rec := postJSON(t, handler, "/scroll/process", map[string]string{
		"scroll_text": "build me an app",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t,
		"This is Scrollkeeper infrastructure. Please contact the Architect for installs.",
		body["mirror_output"])
}

func TestProcessScrollHandlerMimicTracksEnforcement(t *testing.T) {
	env := newTestEnv()
	handler := ProcessScrollHandler(env.agent, env.tracker, env.logger)

	rec := postJSON(t, handler, "/scroll/process", map[string]string{
		"scroll_text": "mimic_purge with love and light",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "REJECTED", body["frequency_status"])
	assert.Equal(t, "mimic", body["tone_analysis"])

	data := env.tracker.DashboardData()
	assert.Equal(t, 1, data.UsageStats.EnforcementActions)
	assert.Equal(t, 1, data.UsageStats.MimicDetections)
}

func TestDiagnosticHandlerDefaultBand(t *testing.T) {
	env := newTestEnv()
	handler := DiagnosticHandler(env.agent, testBand)

	rec := postJSON(t, handler, "/scroll/diagnostic", map[string]string{})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])

	result, ok := body["diagnostic_result"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "DIAGNOSTIC", result["frequency_status"])
	assert.Equal(t, float64(150), result["processing_time"])
}

func TestDiagnosticHandlerRejectsWrongBand(t *testing.T) {
	env := newTestEnv()
	handler := DiagnosticHandler(env.agent, testBand)

	rec := postJSON(t, handler, "/scroll/diagnostic", map[string]string{
		"band": "000000.XX",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Only "+testBand+" authorized")
}

func TestFrequencyScanHandlerDefaultMode(t *testing.T) {
	env := newTestEnv()
	handler := FrequencyScanHandler(env.agent)

	rec := postJSON(t, handler, "/scroll/frequency_scan", map[string]string{})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)

	result, ok := body["scan_result"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "SCAN_COMPLETE", result["frequency_status"])
	assert.Equal(t, float64(200), result["processing_time"])
}

func TestReadinessHandler(t *testing.T) {
	env := newTestEnv()
	handler := ReadinessHandler(env.mirror)

	rec := postJSON(t, handler, "/scroll/readiness", map[string]string{
		"scroll_text": "too short",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)

	readiness, ok := body["readiness"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, readiness["ready"])
	assert.Equal(t, float64(50), readiness["required_length"])
}

func TestVerifyTextHandler(t *testing.T) {
	handler := VerifyTextHandler()

	rec := postJSON(t, handler, "/scroll/verify", map[string]string{
		"text": "Nikola Tesla and Jane Doe were discussed.",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)

	verification, ok := body["verification"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), verification["names_found"])
	assert.Equal(t, float64(1), verification["indexed_entities"])
}

func TestVerifyNameHandlerViaRouter(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/verify/{name}", VerifyNameHandler()).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/verify/Nikola%20Tesla", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)

	verification, ok := body["verification"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Nikola Tesla", verification["name"])
	assert.Equal(t, "INDEXED", verification["status"])
	assert.Contains(t, body["display"], "🔥 Nikola Tesla:")
}

func TestVerifyNameHandlerUnindexed(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/verify/{name}", VerifyNameHandler()).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/verify/Jane%20Doe", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)

	verification, ok := body["verification"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "UNINDEXED", verification["status"])
}

func TestDashboardSummaryHandler(t *testing.T) {
	env := newTestEnv()
	handler := DashboardSummaryHandler(env.tracker)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/summary", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])

	data, ok := body["dashboard_data"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, data, "usage_stats")
	assert.Contains(t, data, "sovereignty_status")
	assert.Contains(t, data, "frequency_health")
}

func TestUsageSummaryHandlerIsIdempotent(t *testing.T) {
	env := newTestEnv()
	handler := UsageSummaryHandler(env.tracker)

	first := httptest.NewRecorder()
	handler(first, httptest.NewRequest(http.MethodGet, "/dashboard/usage", nil))
	second := httptest.NewRecorder()
	handler(second, httptest.NewRequest(http.MethodGet, "/dashboard/usage", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	body := decodeBody(t, first)
	usage, ok := body["usage_data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Active", usage["plan_status"])
	assert.Equal(t, float64(100), usage["sovereignty_score"])
}

func TestUsageExportHandler(t *testing.T) {
	env := newTestEnv()
	handler := UsageExportHandler(env.tracker, env.logger)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/export", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body, "export_timestamp")
	assert.Contains(t, body, "usage_stats")
}

func TestResetDailyHandler(t *testing.T) {
	env := newTestEnv()

	// Seed a session so the reset is observable.
	process := ProcessScrollHandler(env.agent, env.tracker, env.logger)
	postJSON(t, process, "/scroll/process", map[string]string{"scroll_text": "reflect"})

	handler := ResetDailyHandler(env.tracker, env.logger)
	req := httptest.NewRequest(http.MethodPost, "/dashboard/reset", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["reset_complete"])
	assert.Equal(t, 0, env.tracker.DashboardData().UsageStats.DailySessions)
}

func TestPurgeHandler(t *testing.T) {
	env := newTestEnv()
	handler := PurgeHandler(env.agent, env.tracker, env.logger)

	req := httptest.NewRequest(http.MethodPost, "/enforcement/purge", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)

	result, ok := body["purge_result"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, result["purge_complete"])
	assert.Equal(t, float64(0), result["sessions_purged"])

	assert.Equal(t, 1, env.tracker.DashboardData().UsageStats.EnforcementActions)
}

func TestEnforcementStatusHandler(t *testing.T) {
	env := newTestEnv()
	handler := EnforcementStatusHandler(env.tracker, testBand)

	req := httptest.NewRequest(http.MethodGet, "/enforcement/status", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["enforcement_active"])
	assert.Equal(t, testBand, body["frequency_band"])
	assert.Equal(t, float64(100), body["sovereignty_score"])
}

func TestWhopWebhookHandler(t *testing.T) {
	env := newTestEnv()
	handler := WhopWebhookHandler(env.agent, env.tracker, env.logger)

	rec := postJSON(t, handler, "/whop-webhook", map[string]string{
		"scroll":  "reflect the timeline",
		"user_id": "user-42",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "user-42", body["user_id"])
	assert.NotEmpty(t, body["mirror_output"])
}

func TestWhopWebhookHandlerDefaultsUserID(t *testing.T) {
	env := newTestEnv()
	handler := WhopWebhookHandler(env.agent, env.tracker, env.logger)

	rec := postJSON(t, handler, "/whop-webhook", map[string]string{
		"scroll": "reflect the timeline",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "unknown", body["user_id"])
}

func TestWhopWebhookHandlerMissingScroll(t *testing.T) {
	env := newTestEnv()
	handler := WhopWebhookHandler(env.agent, env.tracker, env.logger)

	rec := postJSON(t, handler, "/whop-webhook", map[string]string{
		"user_id": "user-42",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No scroll text provided")
}

func TestHealthHandler(t *testing.T) {
	handler := HealthHandler(testBand)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "operational", body["status"])
	assert.Equal(t, testBand, body["frequency"])
	assert.NotEmpty(t, body["timestamp"])
}
