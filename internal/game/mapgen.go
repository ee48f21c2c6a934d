package game

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"regexp"
	"time"
)

const (
	layoutEndpoint  = "https://openrouter.ai/api/v1/chat/completions"
	layoutModel     = "openrouter/auto"
	layoutHTTPLimit = 1 << 20 // response body cap

	minObstacleSize = 30.0
	maxObstacleSize = 60.0
)

// ErrNoAPIKey is returned when remote layout generation is requested without
// credentials configured.
var ErrNoAPIKey = errors.New("mapgen: no API key configured")

// LayoutSpec is one obstacle rectangle proposed by a layout source.
type LayoutSpec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// MapGenerator produces obstacle layouts, remotely via a chat-completion API
// when a key is configured and locally otherwise.
type MapGenerator struct {
	client   *http.Client
	endpoint string
	apiKey   string
	model    string
}

// NewMapGenerator builds a generator. An empty apiKey disables remote
// generation; Generate then fails fast and callers fall back to RandomLayout.
func NewMapGenerator(apiKey string) *MapGenerator {
	return &MapGenerator{
		client:   &http.Client{Timeout: 8 * time.Second},
		endpoint: layoutEndpoint,
		apiKey:   apiKey,
		model:    layoutModel,
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate asks the remote model for count obstacle rectangles inside a
// width x height map and returns the validated specs.
func (mg *MapGenerator) Generate(ctx context.Context, width, height, count int) ([]LayoutSpec, error) {
	if mg.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	prompt := fmt.Sprintf(
		"Return a JSON array of exactly %d objects with numeric fields x, y, w, h "+
			"describing non-overlapping rectangles inside a %dx%d playfield. "+
			"Sizes between %.0f and %.0f. Reply with the JSON array only.",
		count, width, height, minObstacleSize, maxObstacleSize)

	body, err := json.Marshal(chatRequest{
		Model:    mg.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return nil, fmt.Errorf("mapgen: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, mg.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("mapgen: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+mg.apiKey)

	resp, err := mg.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mapgen: request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mapgen: unexpected status %s", resp.Status)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, layoutHTTPLimit))
	if err != nil {
		return nil, fmt.Errorf("mapgen: read response: %w", err)
	}

	var cr chatResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return nil, fmt.Errorf("mapgen: decode response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return nil, errors.New("mapgen: response has no choices")
	}

	specs, err := extractLayout(cr.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	return clampSpecs(specs, width, height), nil
}

// layoutArrayRe locates the first JSON array in free-form model output, which
// is often wrapped in prose or code fences.
var layoutArrayRe = regexp.MustCompile(`(?s)\[.*\]`)

// extractLayout parses the message content as a spec array, falling back to
// the first bracketed region when the content is not pure JSON.
func extractLayout(content string) ([]LayoutSpec, error) {
	var specs []LayoutSpec
	if err := json.Unmarshal([]byte(content), &specs); err == nil {
		return specs, nil
	}
	m := layoutArrayRe.FindString(content)
	if m == "" {
		return nil, fmt.Errorf("mapgen: no JSON array in response content %q", truncate(content, 80))
	}
	if err := json.Unmarshal([]byte(m), &specs); err != nil {
		return nil, fmt.Errorf("mapgen: parse extracted array: %w", err)
	}
	return specs, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// clampSpecs drops malformed rectangles and clamps the rest into the map.
func clampSpecs(specs []LayoutSpec, width, height int) []LayoutSpec {
	out := specs[:0]
	for _, s := range specs {
		if s.W <= 0 || s.H <= 0 {
			continue
		}
		if s.W < minObstacleSize {
			s.W = minObstacleSize
		}
		if s.H < minObstacleSize {
			s.H = minObstacleSize
		}
		if s.W > maxObstacleSize*2 {
			s.W = maxObstacleSize * 2
		}
		if s.H > maxObstacleSize*2 {
			s.H = maxObstacleSize * 2
		}
		if s.X < 0 {
			s.X = 0
		}
		if s.Y < 0 {
			s.Y = 0
		}
		if s.X+s.W > float64(width) {
			s.X = float64(width) - s.W
		}
		if s.Y+s.H > float64(height) {
			s.Y = float64(height) - s.H
		}
		out = append(out, s)
	}
	return out
}

// RandomLayout is the local fallback layout source.
func RandomLayout(rng *rand.Rand, width, height, count int) []LayoutSpec {
	specs := make([]LayoutSpec, 0, count)
	for i := 0; i < count; i++ {
		w := minObstacleSize + rng.Float64()*(maxObstacleSize-minObstacleSize)
		h := minObstacleSize + rng.Float64()*(maxObstacleSize-minObstacleSize)
		specs = append(specs, LayoutSpec{
			X: 50 + rng.Float64()*(float64(width)-100-w),
			Y: 50 + rng.Float64()*(float64(height)-100-h),
			W: w,
			H: h,
		})
	}
	return specs
}
