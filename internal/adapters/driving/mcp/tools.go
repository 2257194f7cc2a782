package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/cinematch/internal/core/domain"
)

// Messages returned in place of results. They match the CLI and TUI wording.
const (
	msgEmptyQuery = "Please type a movie title first."
	msgNotFound   = "Movie not found in database. Try another title."
)

// RecommendInput is the input schema for the recommend tool.
type RecommendInput struct {
	Title   string `json:"title" jsonschema:"movie title or part of one; the first catalog title containing it is used"`
	Posters bool   `json:"posters,omitempty" jsonschema:"include poster and IMDb links"`
}

// RecommendOutput is the output schema for the recommend tool.
// Found is false when the title did not resolve; Message then says why.
type RecommendOutput struct {
	Found           bool          `json:"found"`
	Message         string        `json:"message,omitempty"`
	Selected        *TitleOutput  `json:"selected,omitempty"`
	Recommendations []TitleOutput `json:"recommendations"`
}

// TitleOutput is one movie in a recommend result.
type TitleOutput struct {
	Position  int     `json:"position"`
	Title     string  `json:"title"`
	Score     float64 `json:"score"`
	PosterURL string  `json:"poster_url,omitempty"`
	DetailURL string  `json:"detail_url,omitempty"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "recommend",
		Description: "Recommend movies similar to a title from the local catalog",
	}, s.handleRecommend)
}

func (s *Server) handleRecommend(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RecommendInput,
) (*mcp.CallToolResult, RecommendOutput, error) {
	rec, err := s.ports.Recommend.ResolveAndRank(ctx, input.Title)
	switch {
	case errors.Is(err, domain.ErrEmptyQuery):
		return nil, RecommendOutput{Message: msgEmptyQuery, Recommendations: []TitleOutput{}}, nil
	case errors.Is(err, domain.ErrNotFound):
		return nil, RecommendOutput{Message: msgNotFound, Recommendations: []TitleOutput{}}, nil
	case err != nil:
		return nil, RecommendOutput{}, err
	}

	selected := toOutput(rec.Selected)
	output := RecommendOutput{
		Found:           true,
		Selected:        &selected,
		Recommendations: make([]TitleOutput, len(rec.Recommendations)),
	}
	for i, r := range rec.Recommendations {
		output.Recommendations[i] = toOutput(r)
	}

	if input.Posters && s.ports.Posters != nil {
		posters := s.ports.Posters.Posters(ctx, rec.AllTitles())
		if len(posters) > 0 {
			withPoster(output.Selected, posters[0])
		}
		for i := range output.Recommendations {
			if i+1 < len(posters) {
				withPoster(&output.Recommendations[i], posters[i+1])
			}
		}
	}

	return nil, output, nil
}

func toOutput(r domain.RankedTitle) TitleOutput {
	return TitleOutput{Position: r.Position, Title: r.Title, Score: r.Score}
}

func withPoster(out *TitleOutput, p domain.Poster) {
	out.PosterURL = p.PosterURL
	out.DetailURL = p.DetailURL
}
