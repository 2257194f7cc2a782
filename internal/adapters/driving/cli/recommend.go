package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/cinematch/internal/core/domain"
	"github.com/custodia-labs/cinematch/internal/core/ports/driving"
	"github.com/custodia-labs/cinematch/internal/logger"
)

const (
	msgEmptyQuery = "Please type a movie title first."
	msgNotFound   = "Movie not found in database. Try another title."
	maxCount      = 50
)

var (
	recommendCount     int
	recommendJSON      bool
	recommendNoPosters bool
	recommendScores    bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [title]",
	Short: "Recommend movies similar to a title",
	Long: `Finds the first catalog title containing the query (case-insensitive)
and lists the movies whose genres, cast and keywords are most similar.

Arguments are joined with spaces, so quoting is optional:
  cinematch recommend toy story`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().IntVarP(&recommendCount, "count", "n", 0,
		"number of recommendations (default from recommend.count)")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "output results as JSON")
	recommendCmd.Flags().BoolVar(&recommendNoPosters, "no-posters", false, "skip poster lookup")
	recommendCmd.Flags().BoolVar(&recommendScores, "scores", false, "show similarity scores")
	rootCmd.AddCommand(recommendCmd)
}

// recommendOutput is the JSON form of a recommendation.
type recommendOutput struct {
	*domain.Recommendation
	Posters []domain.Poster `json:"posters,omitempty"`
}

func runRecommend(cmd *cobra.Command, args []string) error {
	if err := requireDeps(); err != nil {
		return err
	}

	query := strings.Join(args, " ")
	ctx := cmd.Context()

	recommender, err := loadRecommender(ctx, recommendCount)
	if err != nil {
		return err
	}

	rec, err := recommender.ResolveAndRank(ctx, query)
	switch {
	case errors.Is(err, domain.ErrEmptyQuery):
		cmd.PrintErrln(msgEmptyQuery)
		return nil
	case errors.Is(err, domain.ErrNotFound):
		cmd.PrintErrln(msgNotFound)
		return nil
	case err != nil:
		return fmt.Errorf("recommendation failed: %w", err)
	}

	var posters []domain.Poster
	if !recommendNoPosters && deps.Posters != nil {
		posters = deps.Posters.Posters(ctx, rec.AllTitles())
	}

	if recommendJSON {
		return outputRecommendJSON(cmd, rec, posters)
	}
	outputRecommendText(cmd, rec, posters, isTerminal(cmd.OutOrStdout()))
	return nil
}

// loadRecommender loads the configured catalog and indexes it.
// A count of zero uses the recommend.count setting.
func loadRecommender(ctx context.Context, count int) (driving.RecommendService, error) {
	if deps.Catalog == nil || deps.NewRecommender == nil {
		return nil, errors.New("catalog service not configured")
	}
	if count < 0 || count > maxCount {
		return nil, fmt.Errorf("%w: count must be between 1 and %d", domain.ErrInvalidInput, maxCount)
	}

	path, err := resolveCatalogPath()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		count = domain.DefaultRecommendationCount
		if deps.Settings != nil {
			if settings, err := deps.Settings.Get(); err == nil {
				count = settings.Recommend.Count
			}
		}
	}

	catalog, err := deps.Catalog.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Debug("loaded %d movies from %s", catalog.Len(), path)

	return deps.NewRecommender(catalog, count), nil
}

func outputRecommendJSON(cmd *cobra.Command, rec *domain.Recommendation, posters []domain.Poster) error {
	data, err := json.MarshalIndent(recommendOutput{Recommendation: rec, Posters: posters}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	scoreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	linkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#0EA5E9")).Underline(true)
)

func outputRecommendText(cmd *cobra.Command, rec *domain.Recommendation, posters []domain.Poster, styled bool) {
	style := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}
	posterFor := func(i int) *domain.Poster {
		if i < len(posters) {
			return &posters[i]
		}
		return nil
	}
	printPoster := func(p *domain.Poster, indent string) {
		if p == nil {
			return
		}
		cmd.Printf("%sPoster: %s\n", indent, style(linkStyle, p.PosterURL))
		if p.HasDetail() {
			cmd.Printf("%sIMDb:   %s\n", indent, style(linkStyle, p.DetailURL))
		}
	}

	cmd.Println(style(headingStyle, "Selected Movie: "+rec.Selected.Title))
	printPoster(posterFor(0), "  ")
	cmd.Println()

	if len(rec.Recommendations) == 0 {
		cmd.Println("No other movies in the catalog.")
		return
	}

	heading := fmt.Sprintf("Top %d Recommendations for %s:", len(rec.Recommendations), rec.Selected.Title)
	cmd.Println(style(headingStyle, heading))
	for i, r := range rec.Recommendations {
		line := fmt.Sprintf("  %d. %s", i+1, r.Title)
		if recommendScores {
			line += " " + style(scoreStyle, fmt.Sprintf("(%.4f)", r.Score))
		}
		cmd.Println(line)
		printPoster(posterFor(i+1), "     ")
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
