package upstream

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"songkick/facade/config"
	"songkick/facade/domain"
)

const locationsFixture = `<html><body>
<ul class="locations">
  <li class="small-city">
    <p class="summary"><a class="search-link" href="/metro-areas/28443-germany-berlin" data-id="28443">Berlin, Germany</a></p>
    <form action="/trackings" data-analytics-category="track_metro_area_button">
      <input name="authenticity_token" value="tok123"/>
      <input name="relationship_type" value="tracker"/>
      <input name="subject_type" value="MetroArea"/>
      <input name="success_url" value="/metro-areas/28443-germany-berlin"/>
    </form>
  </li>
  <li class="small-city">
    <p class="summary"><a class="search-link" href="/metro-areas/27403-germany-bernau" data-id="27403">Bernau, Germany</a></p>
  </li>
</ul>
</body></html>`

const eventsFixture = `<html><body>
<ul class="event-listings">
  <li title="The Cure at Mercedes-Benz Arena">
    <a href="/concerts/41830904"><img src="//images.sk-static.com/images/media/profile_images/artists/12345/card_avatar.jpg"/></a>
    <time datetime="2026-09-12T19:00:00+0200"></time>
    <p class="artists summary"><strong>The Cure</strong></p>
    <p class="location"><span class="venue-name">Mercedes-Benz Arena</span><span>Berlin, Germany</span><span class="street-address">Mercedes-Platz 1</span></p>
    <a class="button buy-tickets" href="/tickets/41830904">Buy tickets</a>
  </li>
</ul>
</body></html>`

const eventDetailsFixture = `<html><body>
<div class="date-and-name"><p>Saturday 12 September 2026</p></div>
<div class="summary"><a href="/artists/196-the-cure">The Cure</a></div>
<div class="location"><p class="name"><a>Mercedes-Benz Arena</a></p><span><a>Berlin</a></span></div>
<div class="profile-picture-wrapper"><img src="//images.sk-static.com/images/media/profile_images/artists/196/medium_avatar/196.jpg"/></div>
<a class="buy-ticket-link" href="/tickets/41830904?vendor=eventim"><span class="vendor">Eventim</span></a>
<a class="buy-ticket-link" href="/tickets/41830904?vendor=unknown"></a>
<div class="venue-info-details"><a>Mercedes-Benz Arena</a></div>
<div class="venue-hcard"><span>Mercedes-Platz 1, 10243 Berlin</span></div>
<div class="additional-details-container"><p>Price: €45.50 Doors open: 18:00</p></div>
</body></html>`

func testClient() *Client {
	return NewClient(&config.SongkickConfig{
		BaseURL:   "https://www.songkick.com",
		UserAgent: "test-agent",
		TimeoutMS: 2000,
	})
}

func TestParseLocations(t *testing.T) {
	c := testClient()

	locations, err := c.parseLocations([]byte(locationsFixture))
	require.NoError(t, err)
	require.Len(t, locations, 2)

	berlin := locations[0]
	assert.Equal(t, "Berlin, Germany", berlin.Name)
	assert.Equal(t, "28443", berlin.SubjectID)
	assert.Equal(t, "https://www.songkick.com/metro-areas/28443-germany-berlin", berlin.URL)
	assert.Equal(t, "https://www.songkick.com/trackings", berlin.TrackURL)
	assert.Equal(t, "tok123", berlin.AuthenticityToken)
	assert.Equal(t, "tracker", berlin.RelationshipType)
	assert.Equal(t, "MetroArea", berlin.SubjectType)
	assert.Equal(t, "/metro-areas/28443-germany-berlin", berlin.SuccessURL)

	// Second entry carries no track form
	bernau := locations[1]
	assert.Equal(t, "Bernau, Germany", bernau.Name)
	assert.Empty(t, bernau.TrackURL)
	assert.Empty(t, bernau.AuthenticityToken)
}

func TestParseLocationsNoResults(t *testing.T) {
	c := testClient()

	page := `<html><body><p>Sorry, we found no results for "Atlantis".</p></body></html>`
	locations, err := c.parseLocations([]byte(page))
	require.NoError(t, err)
	assert.Empty(t, locations)
}

func TestParseLocationsDriftedLayout(t *testing.T) {
	c := testClient()

	_, err := c.parseLocations([]byte(`<html><body><div>something unrelated</div></body></html>`))
	require.Error(t, err)

	var formatErr *domain.UpstreamFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, domain.OpLocationSearch, formatErr.Op)
}

func TestParseEvents(t *testing.T) {
	c := testClient()

	events, err := c.parseEvents([]byte(eventsFixture))
	require.NoError(t, err)
	require.Len(t, events, 1)

	event := events[0]
	assert.Equal(t, "2026-09-12T19:00:00+0200", event.DateTime)
	assert.Equal(t, "The Cure", event.Artist)
	assert.Equal(t, "Mercedes-Benz Arena", event.Venue)
	assert.Equal(t, "Berlin, Germany", event.Location)
	assert.Equal(t, "Mercedes-Platz 1", event.StreetAddress)
	assert.Equal(t, "https://www.songkick.com/concerts/41830904", event.EventURL)
	assert.Equal(t, "https://images.sk-static.com/images/media/profile_images/artists/12345/card_avatar.jpg", event.ImageURL)
	assert.Equal(t, "https://www.songkick.com/tickets/41830904", event.TicketURL)
}

func TestParseEventsEmptyCalendar(t *testing.T) {
	c := testClient()

	// An empty calendar is a valid page, not schema drift
	events, err := c.parseEvents([]byte(`<html><body><ul class="event-listings"></ul></body></html>`))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestParseEventDetails(t *testing.T) {
	c := testClient()

	details, err := c.parseEventDetails([]byte(eventDetailsFixture))
	require.NoError(t, err)

	assert.Equal(t, "Saturday 12 September 2026", details.EventDateTime)
	assert.Equal(t, "The Cure", details.Name)
	assert.Equal(t, "Mercedes-Benz Arena, Berlin", details.Location)
	assert.Equal(t, "https://images.sk-static.com/images/media/profile_images/artists/196/huge_avatar/196.jpg", details.ImageURL)

	require.Len(t, details.Tickets, 2)
	assert.Equal(t, "Eventim", details.Tickets[0].Vendor)
	assert.Equal(t, "https://www.songkick.com/tickets/41830904?vendor=eventim", details.Tickets[0].Link)
	assert.Equal(t, "Unknown Vendor", details.Tickets[1].Vendor)

	assert.Equal(t, "Mercedes-Benz Arena", details.Venue.Name)
	assert.Equal(t, "Mercedes-Platz 1, 10243 Berlin", details.Venue.Address)

	assert.Equal(t, "€45.50", details.Additional.Price)
	assert.Equal(t, "18:00", details.Additional.DoorsOpen)
}

func TestParseEventDetailsDriftedLayout(t *testing.T) {
	c := testClient()

	_, err := c.parseEventDetails([]byte(`<html><body><div>no event here</div></body></html>`))
	require.Error(t, err)

	var formatErr *domain.UpstreamFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, domain.OpEventDetails, formatErr.Op)
}

func TestAbsURL(t *testing.T) {
	c := testClient()

	tests := []struct {
		name string
		href string
		want string
	}{
		{"relative path", "/concerts/1", "https://www.songkick.com/concerts/1"},
		{"absolute url", "https://example.com/x", "https://example.com/x"},
		{"protocol relative", "//images.sk-static.com/a.jpg", "https://images.sk-static.com/a.jpg"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.absURL(tt.href))
		})
	}
}
