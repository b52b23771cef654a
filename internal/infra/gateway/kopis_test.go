//go:build unit

package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curtaincall/internal/infra/gateway"
	"curtaincall/internal/pkg/clock"
	"curtaincall/internal/pkg/config"
)

const performanceListXML = `<?xml version="1.0" encoding="UTF-8"?>
<dbs>
  <db>
    <mt20id>PF001234</mt20id>
    <prfnm>헤드윅</prfnm>
    <prfpdfrom>2026.04.01</prfpdfrom>
    <prfpdto>2026.06.30</prfpdto>
    <fcltynm>샤롯데씨어터</fcltynm>
    <poster>http://img.example.com/poster1.jpg</poster>
    <genrenm>뮤지컬</genrenm>
    <prfstate>공연중</prfstate>
    <area>서울특별시</area>
  </db>
  <db>
    <mt20id>PF005678</mt20id>
    <prfnm>시카고</prfnm>
    <prfpdfrom>2026.05.10</prfpdfrom>
    <prfpdto>2026.08.15</prfpdto>
    <fcltynm>블루스퀘어</fcltynm>
    <poster>http://img.example.com/poster2.jpg</poster>
    <genrenm>뮤지컬</genrenm>
    <prfstate>공연예정</prfstate>
    <area>서울특별시</area>
  </db>
</dbs>`

func newKopisGateway(baseURL string, now time.Time) *gateway.KopisGateway {
	clk := clock.NewMockClock(now)
	return gateway.NewKopisGateway(config.KopisConfig{ServiceKey: "test-service-key", BaseURL: baseURL}, clk)
}

func TestKopisSearch(t *testing.T) {
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	t.Run("searches by district with both running states", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/pblprfr", r.URL.Path)
			q := r.URL.Query()
			assert.Equal(t, "test-service-key", q.Get("service"))
			assert.Equal(t, "20260401", q.Get("stdate"))
			assert.Equal(t, "20300101", q.Get("eddate"))
			assert.Equal(t, []string{"01", "02"}, q["prfstate"])
			assert.Equal(t, "11", q.Get("signgucode"))
			assert.Empty(t, q.Get("shprfnm"))
			assert.Equal(t, "GGGA", q.Get("shcate"))

			w.Header().Set("Content-Type", "application/xml")
			_, _ = w.Write([]byte(performanceListXML))
		}))
		defer srv.Close()

		g := newKopisGateway(srv.URL, now)
		rows, err := g.Search(context.Background(), "11", "GGGA", "")

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "PF001234", rows[0].ID)
		assert.Equal(t, "헤드윅", rows[0].Title)
		assert.Equal(t, "샤롯데씨어터", rows[0].Venue)
		assert.Equal(t, "공연예정", rows[1].State)
	})

	t.Run("district wins over keyword and catch-all genre is skipped", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "11", q.Get("signgucode"))
			assert.Empty(t, q.Get("shprfnm"))
			assert.False(t, q.Has("shcate"))
			_, _ = w.Write([]byte(`<dbs></dbs>`))
		}))
		defer srv.Close()

		g := newKopisGateway(srv.URL, now)
		rows, err := g.Search(context.Background(), "11", "전체", "헤드윅")

		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("keyword search without district", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.False(t, q.Has("signgucode"))
			assert.Equal(t, "헤드윅", q.Get("shprfnm"))
			_, _ = w.Write([]byte(performanceListXML))
		}))
		defer srv.Close()

		g := newKopisGateway(srv.URL, now)
		rows, err := g.Search(context.Background(), "", "", "헤드윅")

		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("returns empty slice for no rows", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<dbs></dbs>`))
		}))
		defer srv.Close()

		g := newKopisGateway(srv.URL, now)
		rows, err := g.Search(context.Background(), "", "", "없는공연")

		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})

	t.Run("returns error on non-200", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		g := newKopisGateway(srv.URL, now)
		_, err := g.Search(context.Background(), "", "", "헤드윅")

		assert.Error(t, err)
	})
}

func TestKopisDetail(t *testing.T) {
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	t.Run("parses detail with intro images", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/pblprfr/PF001234", r.URL.Path)
			_, _ = w.Write([]byte(`<dbs><db>
				<mt20id>PF001234</mt20id>
				<mt10id>FC000045</mt10id>
				<prfnm>헤드윅</prfnm>
				<prfcast>조승우, 전동석</prfcast>
				<prfruntime>2시간</prfruntime>
				<pcseguidance>VIP석 130,000원</pcseguidance>
				<styurls>
					<styurl>http://img.example.com/intro1.jpg</styurl>
					<styurl>http://img.example.com/intro2.jpg</styurl>
				</styurls>
			</db></dbs>`))
		}))
		defer srv.Close()

		g := newKopisGateway(srv.URL, now)
		detail, err := g.Detail(context.Background(), "PF001234")

		require.NoError(t, err)
		assert.Equal(t, "FC000045", detail.VenueID)
		assert.Equal(t, "조승우, 전동석", detail.Cast)
		assert.Equal(t, []string{"http://img.example.com/intro1.jpg", "http://img.example.com/intro2.jpg"}, detail.IntroImage)
	})

	t.Run("errors when performance is unknown", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<dbs></dbs>`))
		}))
		defer srv.Close()

		g := newKopisGateway(srv.URL, now)
		_, err := g.Detail(context.Background(), "PF999999")

		assert.Error(t, err)
	})
}

func TestKopisVenue(t *testing.T) {
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	t.Run("parses venue detail", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/prfplc/FC000045", r.URL.Path)
			_, _ = w.Write([]byte(`<dbs><db>
				<mt10id>FC000045</mt10id>
				<fcltynm>샤롯데씨어터</fcltynm>
				<seatscale>1240</seatscale>
				<adres>서울특별시 송파구 올림픽로 240</adres>
				<la>37.5110</la>
				<lo>127.0989</lo>
			</db></dbs>`))
		}))
		defer srv.Close()

		g := newKopisGateway(srv.URL, now)
		venue, err := g.Venue(context.Background(), "FC000045")

		require.NoError(t, err)
		assert.Equal(t, "샤롯데씨어터", venue.Name)
		assert.Equal(t, "1240", venue.SeatScale)
		assert.Equal(t, "37.5110", venue.Latitude)
	})

	t.Run("errors when venue is unknown", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<dbs></dbs>`))
		}))
		defer srv.Close()

		g := newKopisGateway(srv.URL, now)
		_, err := g.Venue(context.Background(), "FC999999")

		assert.Error(t, err)
	})
}
