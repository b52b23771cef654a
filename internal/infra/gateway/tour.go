package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"curtaincall/internal/pkg/config"
	"curtaincall/internal/pkg/errs"
)

// TourGateway queries the national tourism API for lodging. The upstream
// paginates, so every search runs twice: a one-row probe to learn totalCount,
// then a full fetch sized to it.
type TourGateway struct {
	cfg    config.TourConfig
	client *http.Client
}

func NewTourGateway(cfg config.TourConfig) *TourGateway {
	return &TourGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Accommodation is one lodging row from the tourism API.
type Accommodation struct {
	ContentID string `json:"contentid"`
	Title     string `json:"title"`
	Address   string `json:"addr1"`
	Address2  string `json:"addr2"`
	AreaCode  string `json:"areacode"`
	Sigungu   string `json:"sigungucode"`
	Category  string `json:"cat3"`
	Image     string `json:"firstimage"`
	Thumbnail string `json:"firstimage2"`
	MapX      string `json:"mapx"`
	MapY      string `json:"mapy"`
	Tel       string `json:"tel"`
}

type tourResponse struct {
	Response struct {
		Body struct {
			TotalCount int `json:"totalCount"`
			Items      struct {
				Item []Accommodation `json:"item"`
			} `json:"items"`
		} `json:"body"`
	} `json:"response"`
}

const lodgingContentType = "32"

// AreaSearch lists accommodations for an area. sigunguCode and the category
// triple are optional; empty values are omitted.
func (g *TourGateway) AreaSearch(ctx context.Context, areaCode, sigunguCode, cat3 string) ([]Accommodation, error) {
	params := g.baseParams()
	params.Set("areaCode", areaCode)
	if sigunguCode != "" {
		params.Set("sigunguCode", sigunguCode)
	}
	if cat3 != "" {
		params.Set("cat1", "B02")
		params.Set("cat2", "B0201")
		params.Set("cat3", cat3)
	}
	return g.searchAll(ctx, "/areaBasedList1", params)
}

func (g *TourGateway) KeywordSearch(ctx context.Context, keyword string) ([]Accommodation, error) {
	params := g.baseParams()
	params.Set("keyword", keyword)
	return g.searchAll(ctx, "/searchKeyword1", params)
}

func (g *TourGateway) baseParams() url.Values {
	params := url.Values{}
	params.Set("serviceKey", g.cfg.ServiceKey)
	params.Set("MobileApp", "AppTest")
	params.Set("MobileOS", "ETC")
	params.Set("contentTypeId", lodgingContentType)
	params.Set("pageNo", "1")
	params.Set("_type", "json")
	return params
}

func (g *TourGateway) searchAll(ctx context.Context, path string, params url.Values) ([]Accommodation, error) {
	params.Set("numOfRows", "1")
	probe, err := g.get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	total := probe.Response.Body.TotalCount
	if total == 0 {
		return []Accommodation{}, nil
	}

	params.Set("numOfRows", strconv.Itoa(total))
	full, err := g.get(ctx, path, params)
	if err != nil {
		return nil, err
	}
	if full.Response.Body.Items.Item == nil {
		return []Accommodation{}, nil
	}
	return full.Response.Body.Items.Item, nil
}

func (g *TourGateway) get(ctx context.Context, path string, params url.Values) (*tourResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build tour request")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "tour request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read tour response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errs.New("tour api rejected request: " + string(body))
	}

	var result tourResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errs.Wrap(err, "failed to parse tour response")
	}
	return &result, nil
}
