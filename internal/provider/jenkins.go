package provider

import (
	"context"
	"fmt"
	"strings"

	"shuttle/internal/domain"
)

// Jenkins lists the top-level jobs of one Jenkins instance.
type Jenkins struct {
	endpoint string
}

// NewJenkins creates a provider for the Jenkins instance at endpoint.
func NewJenkins(endpoint string) *Jenkins {
	return &Jenkins{endpoint: endpoint}
}

// Title implements Provider.
func (j *Jenkins) Title() string {
	return fmt.Sprintf("Jenkins (%s)", j.endpoint)
}

type jenkinsResponse struct {
	Jobs []jenkinsJob `json:"jobs"`
}

type jenkinsJob struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Load implements Provider.
func (j *Jenkins) Load(ctx context.Context) ([]domain.Item, error) {
	url := strings.TrimRight(j.endpoint, "/") + "/api/json"

	var response jenkinsResponse
	if err := getJSON(ctx, url, "", &response); err != nil {
		return nil, fmt.Errorf("%s: %w", j.Title(), err)
	}

	items := make([]domain.Item, 0, len(response.Jobs))
	for _, job := range response.Jobs {
		// Searched by job name, launched by job URL.
		item, err := domain.NewItem(job.Name, job.URL, job.Name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", j.Title(), err)
		}
		items = append(items, item)
	}
	return items, nil
}
