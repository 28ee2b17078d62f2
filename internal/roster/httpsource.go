package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"taskboard/internal/model"
)

// HTTPSource reads the roster and project lists from the board API.
type HTTPSource struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewHTTPSource creates a roster source backed by the board API.
func NewHTTPSource(baseURL, accessToken string) *HTTPSource {
	return &HTTPSource{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// ListMembers fetches the team roster via GET /api/v1/members.
func (s *HTTPSource) ListMembers(ctx context.Context) ([]model.TeamMember, error) {
	var resp struct {
		Members []struct {
			ID          string `json:"id"`
			Name        string `json:"name"`
			Role        string `json:"role"`
			Description string `json:"description"`
		} `json:"members"`
	}
	if err := s.get(ctx, "/api/v1/members", &resp); err != nil {
		return nil, err
	}

	members := make([]model.TeamMember, 0, len(resp.Members))
	for _, m := range resp.Members {
		members = append(members, model.TeamMember{
			ID:          m.ID,
			Name:        m.Name,
			Role:        model.ParseRole(m.Role),
			Description: m.Description,
		})
	}
	return members, nil
}

// ListProjects fetches the project list via GET /api/v1/projects.
func (s *HTTPSource) ListProjects(ctx context.Context) ([]model.ProjectRef, error) {
	var resp struct {
		Projects []model.ProjectRef `json:"projects"`
	}
	if err := s.get(ctx, "/api/v1/projects", &resp); err != nil {
		return nil, err
	}
	return resp.Projects, nil
}

func (s *HTTPSource) get(ctx context.Context, path string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build roster request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.accessToken))

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call roster API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("roster API error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode roster response: %w", err)
	}
	return nil
}
