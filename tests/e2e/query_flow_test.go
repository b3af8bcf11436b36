//go:build e2e

package e2e_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE2E_ListStatementsByActor(t *testing.T) {
	ts := setupTestServer(t)
	mbox := uniqueMbox()

	first := validStatement(mbox)
	second := validStatement(mbox)
	second["verb"] = map[string]any{"id": "http://adlnet.gov/expapi/verbs/attempted"}
	second["object"] = map[string]any{"id": "http://example.com/quiz/7"}

	for _, payload := range []map[string]any{first, second} {
		status, result := ts.postStatement(t, "/v1/statements", payload, "")
		require.Equal(t, http.StatusOK, status, "create response: %v", result)
	}

	status, result := ts.getJSON(t, "/v1/statements?mbox="+url.QueryEscape(mbox))
	require.Equal(t, http.StatusOK, status, "list response: %v", result)
	assert.Len(t, result["statements"], 2)

	status, result = ts.getJSON(t, "/v1/statements?mbox="+url.QueryEscape(mbox)+
		"&verb="+url.QueryEscape("http://adlnet.gov/expapi/verbs/attempted"))
	require.Equal(t, http.StatusOK, status)

	rows := result["statements"].([]any)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, "http://adlnet.gov/expapi/verbs/attempted", row["verbId"])
}

func TestE2E_ListByEmailMatchesMboxActor(t *testing.T) {
	ts := setupTestServer(t)
	mbox := uniqueMbox()

	status, result := ts.postStatement(t, "/v1/statements", validStatement(mbox), "")
	require.Equal(t, http.StatusOK, status, "create response: %v", result)

	email := mbox[len("mailto:"):]
	status, result = ts.getJSON(t, "/v1/statements?email="+url.QueryEscape(email))
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, result["statements"], 1)
}

func TestE2E_ListUnknownActorIsEmpty(t *testing.T) {
	ts := setupTestServer(t)

	status, result := ts.getJSON(t, "/v1/statements?mbox="+url.QueryEscape(uniqueMbox()))
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, result["statements"], 0)
}

func TestE2E_ListAmbiguousActorQueryRejected(t *testing.T) {
	ts := setupTestServer(t)

	status, result := ts.getJSON(t,
		"/v1/statements?mbox="+url.QueryEscape(uniqueMbox())+"&openid="+url.QueryEscape("https://openid.example.com/jane"))
	require.Equal(t, http.StatusBadRequest, status)

	errBody := result["error"].(map[string]any)
	assert.Equal(t, "invariant", errBody["kind"])
}

func TestE2E_MonthlyActivity(t *testing.T) {
	ts := setupTestServer(t)
	mbox := uniqueMbox()

	for range 3 {
		status, result := ts.postStatement(t, "/v1/statements", validStatement(mbox), "")
		require.Equal(t, http.StatusOK, status, "create response: %v", result)
	}

	now := time.Now().UTC()
	target := fmt.Sprintf("/v1/activity?mbox=%s&year=%d&month=%d",
		url.QueryEscape(mbox), now.Year(), int(now.Month()))

	status, result := ts.getJSON(t, target)
	require.Equal(t, http.StatusOK, status, "activity response: %v", result)

	daysInMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 1, -1).Day()
	days := result["days"].([]any)
	require.Len(t, days, daysInMonth)

	total := 0.0
	for _, d := range days {
		total += d.(map[string]any)["count"].(float64)
	}
	assert.Equal(t, 3.0, total)
}

func TestE2E_AsyncIngestEventuallyRecorded(t *testing.T) {
	ts := setupTestServer(t)
	mbox := uniqueMbox()

	status, result := ts.postStatement(t, "/v1/statements?async=true", validStatement(mbox), "")
	require.Equal(t, http.StatusAccepted, status, "async response: %v", result)
	assert.Nil(t, result["statement"], "async response should carry no statement")

	require.Eventually(t, func() bool {
		status, listed := ts.getJSON(t, "/v1/statements?mbox="+url.QueryEscape(mbox))
		if status != http.StatusOK {
			return false
		}
		rows, ok := listed["statements"].([]any)
		return ok && len(rows) == 1
	}, 5*time.Second, 50*time.Millisecond, "queued statement should be recorded")
}
