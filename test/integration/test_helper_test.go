package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
)

// BaseURL points the suite at a running API instance. The suite is skipped
// when it is not set.
var BaseURL = os.Getenv("API_BASE_URL")

func TestMain(m *testing.M) {
	if BaseURL == "" {
		// No running service to test against
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func postJSON(t *testing.T, path string, payload interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	resp, err := http.Post(BaseURL+path, "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func deleteJSON(t *testing.T, path string, payload interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req, err := http.NewRequest(http.MethodDelete, BaseURL+path, bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("build DELETE %s: %v", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE %s: %v", path, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
