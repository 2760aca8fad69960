package erosscans

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/erosscans/internal/providers"
)

const (
	selCard     = ".bs"
	selCardLink = ".bsx > a"
	selNextPage = ".hpage .r"
)

// Search queries the site search. NextPage is always page+1, even on the
// last page; callers must check HasNextPage before following it.
func (s *Scraper) Search(ctx context.Context, query providers.SearchQuery, page int) (providers.SearchResults, error) {
	page = normalizePage(page)

	doc, err := s.fetchDOM(ctx, s.searchURL(query.Title, page))
	if err != nil {
		return providers.SearchResults{}, err
	}

	return pagedResults(doc, doc.Find(selCard), page), nil
}

// ViewMore pages through the full listing behind a home section. Only the
// latest shelf has one.
func (s *Scraper) ViewMore(ctx context.Context, sectionID string, page int) (providers.SearchResults, error) {
	if sectionID != sectionLatest {
		return providers.SearchResults{}, fmt.Errorf("view more %q: %w", sectionID, providers.ErrUnsupported)
	}
	page = normalizePage(page)

	doc, err := s.fetchDOM(ctx, s.listURL("update", page))
	if err != nil {
		return providers.SearchResults{}, err
	}

	return pagedResults(doc, doc.Find(selCard), page), nil
}

func pagedResults(doc *goquery.Document, cards *goquery.Selection, page int) providers.SearchResults {
	return providers.SearchResults{
		Items:       cardItems(cards, selCardLink),
		HasNextPage: doc.Find(selNextPage).Length() > 0,
		NextPage:    page + 1,
	}
}

// cardItems maps listing cards to partial manga records holding the id,
// title and cover only.
func cardItems(cards *goquery.Selection, linkSel string) []providers.Manga {
	items := []providers.Manga{}

	cards.Each(func(_ int, card *goquery.Selection) {
		link := card.Find(linkSel).First()
		href, _ := link.Attr("href")

		title, _ := link.Attr("title")
		title = strings.TrimSpace(title)
		if title == "" {
			title = strings.TrimSpace(card.Find(".tt").First().Text())
		}

		var titles []string
		if title != "" {
			titles = []string{title}
		}

		items = append(items, providers.Manga{
			ID:     slugFromHref(href),
			Titles: titles,
			Image:  imageSource(card.Find("img").First()),
		})
	})

	return items
}
