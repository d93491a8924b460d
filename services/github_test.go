package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"student-showcase-api/models"
)

func dispatchSubmission() *models.Submission {
	return &models.Submission{
		ID:        "sub-1",
		FirstName: "Ana",
		LastName:  "Lee",
		Email:     "ana@x.edu",
		Status:    models.StatusApproved,
		Skills:    models.StringList{"Go"},
	}
}

func TestDispatchSendsRepositoryDispatch(t *testing.T) {
	var (
		gotPath   string
		gotAuth   string
		gotAccept string
		gotBody   dispatchRequest
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	d := NewGitHubDispatcher(GitHubConfig{
		Token:     "tok-123",
		RepoOwner: "showcase-org",
		RepoName:  "student-showcase",
		BaseURL:   server.URL,
	})

	if err := d.Dispatch(dispatchSubmission()); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	if gotPath != "/repos/showcase-org/student-showcase/dispatches" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if gotAccept != "application/vnd.github.v3+json" {
		t.Errorf("accept = %q", gotAccept)
	}
	if gotBody.EventType != "create-student-pr" {
		t.Errorf("event_type = %q", gotBody.EventType)
	}
	payload := gotBody.ClientPayload
	if payload.SubmissionID != "sub-1" || payload.StudentName != "Ana Lee" || payload.StudentEmail != "ana@x.edu" {
		t.Errorf("payload = %+v", payload)
	}

	// submission_data is the full record as an opaque JSON string
	var embedded models.Submission
	if err := json.Unmarshal([]byte(payload.SubmissionData), &embedded); err != nil {
		t.Fatalf("submission_data is not valid JSON: %v", err)
	}
	if embedded.ID != "sub-1" || embedded.Status != models.StatusApproved {
		t.Errorf("embedded submission = %+v", embedded)
	}
}

func TestDispatchWithoutToken(t *testing.T) {
	d := NewGitHubDispatcher(GitHubConfig{RepoOwner: "o", RepoName: "r"})

	err := d.Dispatch(dispatchSubmission())
	if err == nil {
		t.Fatal("expected a deterministic failure without a token")
	}
	if CodeOf(err) != CodeUpstream {
		t.Errorf("code = %q, want upstream", CodeOf(err))
	}
}

func TestDispatchAPIError(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	d := NewGitHubDispatcher(GitHubConfig{
		Token:     "tok",
		RepoOwner: "o",
		RepoName:  "r",
		BaseURL:   server.URL,
	})

	err := d.Dispatch(dispatchSubmission())
	if CodeOf(err) != CodeUpstream {
		t.Fatalf("code = %q, want upstream", CodeOf(err))
	}

	// No internal retry: the orchestrator owns retry policy.
	if calls != 1 {
		t.Errorf("dispatch made %d calls, want 1", calls)
	}
}
