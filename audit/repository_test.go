package audit_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/mobility/audit"
)

func elasticsearchStub(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var mu sync.Mutex
	var bodies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, r.Method+" "+r.URL.Path+" "+string(body))
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		switch {
		case strings.HasSuffix(r.URL.Path, "/_search"):
			_, _ = io.WriteString(w, `{"hits":{"hits":[{"_source":{"subject_id":"u1","action":"read","resource_id":"V1","access_granted":true}}]}}`)
		default:
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"result":"created"}`)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &bodies
}

func TestElasticsearchRepository(t *testing.T) {
	srv, bodies := elasticsearchStub(t)
	repo, err := audit.NewElasticsearchRepository(srv.URL)
	require.NoError(t, err)
	svc := audit.NewService(repo)

	err = svc.LogAccess(context.Background(), audit.AuditLog{
		SubjectID: "u1", Role: "user", Action: "claim", ResourceKind: "vehicle", ResourceID: "V1",
		DenyReason: "NOT_OWNER",
	})
	require.NoError(t, err)

	logs, err := svc.QueryLogs(context.Background(), audit.Query{SubjectID: "u1", From: time.Now().Add(-time.Hour)})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "V1", logs[0].ResourceID)
	assert.True(t, logs[0].AccessGranted)

	require.Len(t, *bodies, 2)
	assert.Contains(t, (*bodies)[0], "/authorization-audit/_doc/")
	assert.Contains(t, (*bodies)[0], `"deny_reason":"NOT_OWNER"`)
	assert.Contains(t, (*bodies)[1], `"subject_id":"u1"`)
}
