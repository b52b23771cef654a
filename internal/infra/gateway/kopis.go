package gateway

import (
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"net/url"
	"time"

	"curtaincall/internal/pkg/clock"
	"curtaincall/internal/pkg/config"
	"curtaincall/internal/pkg/errs"
)

// KopisGateway queries the public performance-arts API. Responses are XML.
type KopisGateway struct {
	cfg    config.KopisConfig
	clock  clock.Clock
	client *http.Client
}

func NewKopisGateway(cfg config.KopisConfig, clk clock.Clock) *KopisGateway {
	return &KopisGateway{
		cfg:    cfg,
		clock:  clk,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Performance is one row of the search listing.
type Performance struct {
	ID        string `xml:"mt20id" json:"mt20id"`
	Title     string `xml:"prfnm" json:"prfnm"`
	StartDate string `xml:"prfpdfrom" json:"prfpdfrom"`
	EndDate   string `xml:"prfpdto" json:"prfpdto"`
	Venue     string `xml:"fcltynm" json:"fcltynm"`
	Poster    string `xml:"poster" json:"poster"`
	Genre     string `xml:"genrenm" json:"genrenm"`
	State     string `xml:"prfstate" json:"prfstate"`
	Area      string `xml:"area" json:"area"`
}

type performanceList struct {
	XMLName xml.Name      `xml:"dbs"`
	Rows    []Performance `xml:"db"`
}

// PerformanceDetail is the single-performance payload.
type PerformanceDetail struct {
	ID         string   `xml:"mt20id" json:"mt20id"`
	VenueID    string   `xml:"mt10id" json:"mt10id"`
	Title      string   `xml:"prfnm" json:"prfnm"`
	StartDate  string   `xml:"prfpdfrom" json:"prfpdfrom"`
	EndDate    string   `xml:"prfpdto" json:"prfpdto"`
	Venue      string   `xml:"fcltynm" json:"fcltynm"`
	Cast       string   `xml:"prfcast" json:"prfcast"`
	Runtime    string   `xml:"prfruntime" json:"prfruntime"`
	AgeLimit   string   `xml:"prfage" json:"prfage"`
	Price      string   `xml:"pcseguidance" json:"pcseguidance"`
	Poster     string   `xml:"poster" json:"poster"`
	Story      string   `xml:"sty" json:"sty"`
	Genre      string   `xml:"genrenm" json:"genrenm"`
	State      string   `xml:"prfstate" json:"prfstate"`
	Schedule   string   `xml:"dtguidance" json:"dtguidance"`
	IntroImage []string `xml:"styurls>styurl" json:"styurls"`
}

type performanceDetailList struct {
	XMLName xml.Name            `xml:"dbs"`
	Rows    []PerformanceDetail `xml:"db"`
}

// Venue is the hall detail payload.
type Venue struct {
	ID        string `xml:"mt10id" json:"mt10id"`
	Name      string `xml:"fcltynm" json:"fcltynm"`
	SeatScale string `xml:"seatscale" json:"seatscale"`
	Address   string `xml:"adres" json:"adres"`
	Latitude  string `xml:"la" json:"la"`
	Longitude string `xml:"lo" json:"lo"`
	Phone     string `xml:"telno" json:"telno"`
	Homepage  string `xml:"relateurl" json:"relateurl"`
}

type venueList struct {
	XMLName xml.Name `xml:"dbs"`
	Rows    []Venue  `xml:"db"`
}

// searchWindowEnd is far enough out that every currently scheduled run is
// included.
const searchWindowEnd = "20300101"

// Search lists performances from today onwards. District and keyword are
// mutually exclusive; when both are set the district wins. Genre is skipped
// for the catch-all value "전체".
func (g *KopisGateway) Search(ctx context.Context, district, genre, keyword string) ([]Performance, error) {
	params := url.Values{}
	params.Set("service", g.cfg.ServiceKey)
	params.Set("cpage", "1")
	params.Set("rows", "100")
	params.Set("stdate", g.clock.Now().Format("20060102"))
	params.Set("eddate", searchWindowEnd)
	params.Add("prfstate", "01")
	params.Add("prfstate", "02")

	if district != "" {
		params.Set("signgucode", district)
	} else if keyword != "" {
		params.Set("shprfnm", keyword)
	}
	if genre != "" && genre != "전체" {
		params.Set("shcate", genre)
	}

	var list performanceList
	if err := g.get(ctx, "/pblprfr?"+params.Encode(), &list); err != nil {
		return nil, err
	}
	if list.Rows == nil {
		return []Performance{}, nil
	}
	return list.Rows, nil
}

func (g *KopisGateway) Detail(ctx context.Context, performanceID string) (*PerformanceDetail, error) {
	params := url.Values{}
	params.Set("service", g.cfg.ServiceKey)

	var list performanceDetailList
	if err := g.get(ctx, "/pblprfr/"+url.PathEscape(performanceID)+"?"+params.Encode(), &list); err != nil {
		return nil, err
	}
	if len(list.Rows) == 0 {
		return nil, errs.New("performance not found: " + performanceID)
	}
	return &list.Rows[0], nil
}

func (g *KopisGateway) Venue(ctx context.Context, venueID string) (*Venue, error) {
	params := url.Values{}
	params.Set("service", g.cfg.ServiceKey)

	var list venueList
	if err := g.get(ctx, "/prfplc/"+url.PathEscape(venueID)+"?"+params.Encode(), &list); err != nil {
		return nil, err
	}
	if len(list.Rows) == 0 {
		return nil, errs.New("venue not found: " + venueID)
	}
	return &list.Rows[0], nil
}

func (g *KopisGateway) get(ctx context.Context, pathAndQuery string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.BaseURL+pathAndQuery, nil)
	if err != nil {
		return errs.Wrap(err, "failed to build kopis request")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "kopis request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.Wrap(err, "failed to read kopis response")
	}
	if resp.StatusCode != http.StatusOK {
		return errs.New("kopis rejected request: " + string(body))
	}

	if err := xml.Unmarshal(body, out); err != nil {
		return errs.Wrap(err, "failed to parse kopis response")
	}
	return nil
}
