package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/notevault/notevault/internal/auth"
	"github.com/notevault/notevault/internal/store"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// newTestServer wires the full route table the way cmd/server does,
// backed by the in-memory store.
func newTestServer() (http.Handler, *store.Memory, *auth.JWTService) {
	st := store.NewMemory()
	jwtService := auth.NewJWTService("test-secret")
	logger := testLogger()

	r := mux.NewRouter()
	r.HandleFunc("/", HomeHandler).Methods("GET")
	r.HandleFunc("/create-account", CreateAccountHandler(st, jwtService, logger)).Methods("POST")
	r.HandleFunc("/login", LoginHandler(st, jwtService, logger)).Methods("POST")

	s := r.PathPrefix("/").Subrouter()
	s.Use(auth.JWTMiddleware(jwtService))
	s.HandleFunc("/get-user", GetUserHandler(st, logger)).Methods("GET")
	s.HandleFunc("/add-note", AddNoteHandler(st, logger)).Methods("POST")
	s.HandleFunc("/edit-note/{noteId}", EditNoteHandler(st, logger)).Methods("POST")
	s.HandleFunc("/delete-note/{noteId}", DeleteNoteHandler(st, logger)).Methods("DELETE")
	s.HandleFunc("/get-all-notes", GetAllNotesHandler(st, logger)).Methods("POST")
	s.HandleFunc("/update-note-pinned/{noteId}", UpdateNotePinnedHandler(st, logger)).Methods("PUT")
	s.HandleFunc("/ai/process", AIProcessHandler("test-key", logger)).Methods("POST")

	return r, st, jwtService
}

func doRequest(t *testing.T, h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return body
}

// createAccount registers a user through the API and returns the
// assigned id and access token.
func createAccount(t *testing.T, h http.Handler, name, email, password string) (int, string) {
	t.Helper()
	payload := fmt.Sprintf(`{"name":%q,"email":%q,"password":%q}`, name, email, password)
	rr := doRequest(t, h, http.MethodPost, "/create-account", "", payload)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create account: status = %d, body = %s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	user, ok := body["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("create account response has no user: %s", rr.Body.String())
	}
	id, ok := user["_id"].(float64)
	if !ok {
		t.Fatalf("create account response has no user id: %s", rr.Body.String())
	}
	token, ok := body["token"].(string)
	if !ok {
		t.Fatalf("create account response has no token: %s", rr.Body.String())
	}
	return int(id), token
}

// addNote creates a note through the API and returns its id.
func addNote(t *testing.T, h http.Handler, token, title, content string) int {
	t.Helper()
	payload := fmt.Sprintf(`{"title":%q,"content":%q}`, title, content)
	rr := doRequest(t, h, http.MethodPost, "/add-note", token, payload)
	if rr.Code != http.StatusOK {
		t.Fatalf("add note: status = %d, body = %s", rr.Code, rr.Body.String())
	}
	note, ok := decodeBody(t, rr)["note"].(map[string]interface{})
	if !ok {
		t.Fatalf("add note response has no note: %s", rr.Body.String())
	}
	id, ok := note["_id"].(float64)
	if !ok {
		t.Fatalf("add note response has no note id: %s", rr.Body.String())
	}
	return int(id)
}
