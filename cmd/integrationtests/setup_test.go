package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"freightbid/internal/lifecycle"
	model "freightbid/internal/models"
	"freightbid/internal/notify"
	"freightbid/internal/objectstore"
	"freightbid/internal/reports"
	"freightbid/internal/repository"
	"freightbid/internal/server"
)

// SetupTestRouter wires the full HTTP stack against in-memory collaborators
// for integration testing.
func SetupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := repository.NewMemoryStore()
	service := lifecycle.NewService(
		store,
		notify.NewLogNotifier(),
		reports.NewFileGenerator(t.TempDir()),
		objectstore.NewMemoryStore(),
	)
	return server.SetupRouter(service)
}

// ExecuteRequest executes an HTTP request as the given actor and returns the
// response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, actor model.Actor, method, url string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor-Name", actor.Name)
	req.Header.Set("X-Actor-Role", string(actor.Role))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request as the given actor and
// parses the JSON envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, actor model.Actor, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, actor, method, url, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// DataObject extracts the envelope's data field as an object.
func DataObject(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response data is not an object: %v", resp["data"])
	}
	return data
}

// DataList extracts the envelope's data field as a list.
func DataList(t *testing.T, resp map[string]any) []any {
	t.Helper()
	if resp["data"] == nil {
		return nil
	}
	data, ok := resp["data"].([]any)
	if !ok {
		t.Fatalf("response data is not a list: %v", resp["data"])
	}
	return data
}
