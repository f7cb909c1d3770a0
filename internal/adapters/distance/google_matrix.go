package distance

import (
	"context"
	"drayage-quote-service/internal/ports"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

type matrixValue struct {
	Value int `json:"value"`
}

type matrixElement struct {
	Status   string       `json:"status"`
	Distance *matrixValue `json:"distance"`
	Duration *matrixValue `json:"duration"`
}

type matrixResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Rows         []struct {
		Elements []matrixElement `json:"elements"`
	} `json:"rows"`
}

// fetchElement retrieves the single origin->destination element of a
// Distance Matrix request.
func (g *GoogleDistanceProvider) fetchElement(
	ctx context.Context,
	origin string,
	destination string,
) (ports.DistanceResult, error) {
	q := url.Values{}
	q.Set("origins", origin)
	q.Set("destinations", destination)
	q.Set("key", g.apiKey)

	endpoint := g.baseURL + "/maps/api/distancematrix/json?" + q.Encode()

	req, err := g.newRequest(ctx, http.MethodGet, endpoint)
	if err != nil {
		return ports.DistanceResult{}, err
	}

	resp, err := g.do(req)
	if err != nil {
		return ports.DistanceResult{}, fmt.Errorf("matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	var mr matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return ports.DistanceResult{}, fmt.Errorf("decode matrix response: %w", err)
	}

	if mr.Status != "OK" {
		if mr.ErrorMessage != "" {
			return ports.DistanceResult{}, fmt.Errorf("matrix status %s: %s", mr.Status, mr.ErrorMessage)
		}
		return ports.DistanceResult{}, fmt.Errorf("matrix status %s", mr.Status)
	}

	if len(mr.Rows) != 1 || len(mr.Rows[0].Elements) != 1 {
		return ports.DistanceResult{}, fmt.Errorf("%w: expected a 1x1 matrix", ErrRouteNotFound)
	}

	el := mr.Rows[0].Elements[0]
	if el.Status != "OK" {
		return ports.DistanceResult{}, fmt.Errorf("%w: element status %s", ErrRouteNotFound, el.Status)
	}
	if el.Distance == nil || el.Duration == nil {
		return ports.DistanceResult{}, fmt.Errorf("%w: element is missing distance or duration", ErrRouteNotFound)
	}

	return ports.DistanceResult{
		DistanceMeters:  el.Distance.Value,
		DurationSeconds: el.Duration.Value,
	}, nil
}
