package erosscans

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/erosscans/internal/providers"
)

const (
	selTitle       = ".entry-title"
	selCover       = ".thumb img"
	selDescription = ".entry-content"
	selStatus      = `.imptdt:contains("Status") i`
	selAuthor      = `.fmed:contains("Author") span`
	selArtist      = `.fmed:contains("Artist") span`
	selGenres      = ".mgen a"

	// The theme renders a dot with this class next to ongoing series only.
	ongoingClass = "custom-dot"
)

// MangaDetails fetches the manga page. A missing title heading is the only
// hard failure; everything else degrades to empty values.
func (s *Scraper) MangaDetails(ctx context.Context, mangaID string) (providers.Manga, error) {
	target := s.MangaURL(mangaID)

	doc, err := s.fetchDOM(ctx, target)
	if err != nil {
		return providers.Manga{}, err
	}

	heading := doc.Find(selTitle).First()
	title := strings.TrimSpace(heading.Text())
	if heading.Length() == 0 || title == "" {
		return providers.Manga{}, &providers.ParseError{URL: target, Selector: selTitle}
	}

	// Hiatus and dropped series render without the dot as well.
	status := providers.StatusCompleted
	if doc.Find(selStatus).HasClass(ongoingClass) {
		status = providers.StatusOngoing
	}

	return providers.Manga{
		ID:          mangaID,
		Titles:      []string{title},
		Image:       imageSource(doc.Find(selCover).First()),
		Description: strings.TrimSpace(doc.Find(selDescription).Text()),
		Status:      status,
		Author:      strings.TrimSpace(doc.Find(selAuthor).First().Text()),
		Artist:      strings.TrimSpace(doc.Find(selArtist).First().Text()),
		Tags:        genreTags(doc.Find(selGenres)),
	}, nil
}

func genreTags(sel *goquery.Selection) []providers.Tag {
	seen := map[string]bool{}
	tags := []providers.Tag{}

	sel.Each(func(_ int, a *goquery.Selection) {
		label := strings.TrimSpace(a.Text())
		if label == "" || seen[label] {
			return
		}
		seen[label] = true

		tags = append(tags, providers.Tag{ID: label, Label: label})
	})

	return tags
}
