package erosscans

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/erosscans/internal/providers"
)

const (
	sectionPopular = "popular"
	sectionLatest  = "latest"

	selPopularCards = ".hotslid .bs"
	selLatestCards  = ".listupd .utao"
	selLatestLink   = ".imgu > a"
	selLatestBS     = ".listupd .bs"
)

// HomeSections emits the popular shelf and then the latest shelf. Both are
// always emitted, with empty items when the markup has no cards.
func (s *Scraper) HomeSections(ctx context.Context, emit func(providers.HomeSection)) error {
	doc, err := s.fetchDOM(ctx, s.homeURL())
	if err != nil {
		return err
	}

	emit(providers.HomeSection{
		ID:    sectionPopular,
		Title: "Popular Today",
		Type:  providers.SectionFeatured,
		Items: cardItems(doc.Find(selPopularCards), selCardLink),
	})

	emit(providers.HomeSection{
		ID:       sectionLatest,
		Title:    "Latest Update",
		Type:     providers.SectionSimple,
		Items:    latestItems(doc),
		ViewMore: true,
	})

	return nil
}

func latestItems(doc *goquery.Document) []providers.Manga {
	if cards := doc.Find(selLatestCards); cards.Length() > 0 {
		return cardItems(cards, selLatestLink)
	}

	return cardItems(doc.Find(selLatestBS), selCardLink)
}
