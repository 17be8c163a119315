package huntflow

import (
	"fmt"
	"strings"
)

const statusesPath = "vacancies/statuses"

type Statuses struct {
	Items []*Status
}

type Status struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type statusResponse struct {
	Items []*Status `json:"items"`
}

// GetStatuses fetches the vacancy status list. The list is not paginated.
func (c *Client) GetStatuses() (*Statuses, error) {
	var response statusResponse
	if err := c.getJSON(statusesPath, nil, &response); err != nil {
		return nil, fmt.Errorf("getting vacancy statuses: %w", err)
	}

	return &Statuses{
		Items: response.Items,
	}, nil
}

// FindIDByName returns the id of the first status whose trimmed name
// equals the trimmed query, or nil when no status matches. Unlike
// vacancy and file matching, status names compare case-sensitively with
// no Unicode fold.
func (s *Statuses) FindIDByName(name string) *int {
	name = strings.TrimSpace(name)

	for _, status := range s.Items {
		if strings.TrimSpace(status.Name) != name {
			continue
		}

		id := status.ID
		return &id
	}

	return nil
}
