package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"student-showcase-api/models"
)

const dispatchEventType = "create-student-pr"

// Dispatcher fires the external automation that turns an approved submission
// into a pull request. One shot, no internal retry; a failed dispatch is
// retried by approving the submission again.
type Dispatcher interface {
	Dispatch(sub *models.Submission) error
}

// GitHubConfig configures the repository_dispatch target.
type GitHubConfig struct {
	Token     string
	RepoOwner string
	RepoName  string
	BaseURL   string // override for tests; defaults to the public API
	Client    *http.Client
}

// GitHubDispatcher sends repository_dispatch events to the showcase repo. The
// workflow that handles the event opens the PR and reports its URL back
// through the submissions PATCH endpoint.
type GitHubDispatcher struct {
	token     string
	repoOwner string
	repoName  string
	baseURL   string
	client    *http.Client
}

func NewGitHubDispatcher(cfg GitHubConfig) *GitHubDispatcher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.github.com"
	}
	if cfg.Client == nil {
		cfg.Client = &http.Client{Timeout: 15 * time.Second}
	}
	return &GitHubDispatcher{
		token:     cfg.Token,
		repoOwner: cfg.RepoOwner,
		repoName:  cfg.RepoName,
		baseURL:   cfg.BaseURL,
		client:    cfg.Client,
	}
}

type dispatchPayload struct {
	SubmissionID   string `json:"submission_id"`
	StudentName    string `json:"student_name"`
	StudentEmail   string `json:"student_email"`
	SubmissionData string `json:"submission_data"`
}

type dispatchRequest struct {
	EventType     string          `json:"event_type"`
	ClientPayload dispatchPayload `json:"client_payload"`
}

func (d *GitHubDispatcher) Dispatch(sub *models.Submission) error {
	if d.token == "" {
		return NewError(CodeUpstream, "GitHub token not configured", nil)
	}

	raw, err := json.Marshal(sub)
	if err != nil {
		return NewError(CodeInternal, "failed to serialize submission", err)
	}

	body, err := json.Marshal(dispatchRequest{
		EventType: dispatchEventType,
		ClientPayload: dispatchPayload{
			SubmissionID:   sub.ID,
			StudentName:    sub.DisplayName(),
			StudentEmail:   sub.Email,
			SubmissionData: string(raw),
		},
	})
	if err != nil {
		return NewError(CodeInternal, "failed to build dispatch request", err)
	}

	url := fmt.Sprintf("%s/repos/%s/%s/dispatches", d.baseURL, d.repoOwner, d.repoName)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return NewError(CodeInternal, "failed to build dispatch request", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Authorization", "Bearer "+d.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return NewError(CodeUpstream, "failed to reach GitHub", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	// repository_dispatch answers 204 on success
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return NewError(CodeUpstream, fmt.Sprintf("GitHub API error: %d", resp.StatusCode), nil)
	}
	return nil
}
