package upstream

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"songkick/facade/domain"
)

// noResultsMarker appears on the search page when the query matched nothing.
// Its presence distinguishes an empty result from unmappable HTML.
const noResultsMarker = "Sorry, we found no results for"

// parseLocations maps the location search page to Location records
func (c *Client) parseLocations(body []byte) ([]domain.Location, error) {
	if bytes.Contains(body, []byte(noResultsMarker)) {
		return []domain.Location{}, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &domain.UpstreamFormatError{Op: domain.OpLocationSearch, Reason: err.Error()}
	}

	locations := make([]domain.Location, 0)
	doc.Find("li.small-city").Each(func(_ int, li *goquery.Selection) {
		link := li.Find("a.search-link").First()
		name := strings.TrimSpace(li.Find("p.summary a.search-link").First().Text())
		if name == "" {
			name = strings.TrimSpace(link.Text())
		}

		location := domain.Location{
			Name:      name,
			SubjectID: link.AttrOr("data-id", ""),
			URL:       c.absURL(link.AttrOr("href", "")),
		}

		form := li.Find(`form[data-analytics-category="track_metro_area_button"]`).First()
		if form.Length() > 0 {
			location.TrackURL = c.absURL(form.AttrOr("action", ""))
			location.AuthenticityToken = form.Find(`input[name="authenticity_token"]`).AttrOr("value", "")
			location.RelationshipType = form.Find(`input[name="relationship_type"]`).AttrOr("value", "")
			location.SubjectType = form.Find(`input[name="subject_type"]`).AttrOr("value", "")
			location.SuccessURL = form.Find(`input[name="success_url"]`).AttrOr("value", "")
		}

		locations = append(locations, location)
	})

	if len(locations) == 0 {
		// No result entries and no "no results" marker: the page layout has
		// drifted from what this parser understands.
		return nil, &domain.UpstreamFormatError{Op: domain.OpLocationSearch, Reason: "no recognizable location entries in search page"}
	}

	return locations, nil
}

// parseEvents maps one calendar page to Event records. An empty calendar is
// a valid page, so zero entries is a success here.
func (c *Client) parseEvents(body []byte) ([]domain.Event, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &domain.UpstreamFormatError{Op: domain.OpEvents, Reason: err.Error()}
	}

	events := make([]domain.Event, 0)
	doc.Find("li[title]").Each(func(_ int, li *goquery.Selection) {
		event := domain.Event{
			DateTime: li.Find("time").First().AttrOr("datetime", ""),
			Artist:   strings.TrimSpace(li.Find("p.artists strong").First().Text()),
		}

		venue := li.Find("p.location").First()
		if venue.Length() > 0 {
			event.Venue = strings.TrimSpace(venue.Find("span.venue-name").First().Text())
			spans := venue.Find("span")
			if spans.Length() > 1 {
				event.Location = strings.TrimSpace(spans.Eq(1).Text())
			}
			event.StreetAddress = strings.TrimSpace(venue.Find("span.street-address").First().Text())
		}

		if href, ok := li.Find("a").First().Attr("href"); ok {
			event.EventURL = c.absURL(href)
		}
		if src, ok := li.Find("img").First().Attr("src"); ok {
			event.ImageURL = absImageURL(src)
		}
		if href, ok := li.Find("a.button.buy-tickets").First().Attr("href"); ok {
			event.TicketURL = c.absURL(href)
		}

		events = append(events, event)
	})

	return events, nil
}

// parseEventDetails maps a single event page to an EventDetails record
func (c *Client) parseEventDetails(body []byte) (*domain.EventDetails, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &domain.UpstreamFormatError{Op: domain.OpEventDetails, Reason: err.Error()}
	}

	details := &domain.EventDetails{
		EventDateTime: strings.TrimSpace(doc.Find(".date-and-name p").First().Text()),
		Name:          strings.TrimSpace(doc.Find(".summary a").First().Text()),
		Tickets:       make([]domain.Ticket, 0),
	}

	if details.EventDateTime == "" && details.Name == "" {
		return nil, &domain.UpstreamFormatError{Op: domain.OpEventDetails, Reason: "neither event date nor name found in event page"}
	}

	venueCity := strings.TrimSpace(doc.Find(".location .name a").First().Text())
	cityRegion := strings.TrimSpace(doc.Find(".location span a").First().Text())
	if venueCity != "" && cityRegion != "" {
		details.Location = venueCity + ", " + cityRegion
	}

	if src, ok := doc.Find(".profile-picture-wrapper img").First().Attr("src"); ok {
		// The event page embeds the medium avatar; the huge variant lives at
		// the same path.
		details.ImageURL = absImageURL(strings.Replace(src, "medium_avatar", "huge_avatar", 1))
	}

	doc.Find(".buy-ticket-link").Each(func(_ int, ticket *goquery.Selection) {
		vendor := strings.TrimSpace(ticket.Find(".vendor").First().Text())
		if vendor == "" {
			vendor = "Unknown Vendor"
		}
		details.Tickets = append(details.Tickets, domain.Ticket{
			Vendor: vendor,
			Link:   c.absURL(ticket.AttrOr("href", "")),
		})
	})

	details.Venue = domain.Venue{
		Name:    strings.TrimSpace(doc.Find(".venue-info-details a").First().Text()),
		Address: strings.TrimSpace(doc.Find(".venue-hcard span").First().Text()),
	}

	additional := doc.Find(".additional-details-container").First()
	if additional.Length() > 0 {
		text := normalizeSpace(additional.Text())
		if idx := strings.Index(text, "Price: "); idx >= 0 {
			details.Additional.Price = firstWord(text[idx+len("Price: "):])
		}
		if idx := strings.Index(text, "Doors open: "); idx >= 0 {
			details.Additional.DoorsOpen = strings.TrimSpace(text[idx+len("Doors open: "):])
		}
	}

	return details, nil
}

// absURL resolves a relative upstream path against the configured base URL
func (c *Client) absURL(href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return c.baseURL + href
}

// absImageURL resolves the protocol-relative image sources the upstream uses
func absImageURL(src string) string {
	if src == "" {
		return ""
	}
	if strings.HasPrefix(src, "//") {
		return "https:" + src
	}
	return src
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
