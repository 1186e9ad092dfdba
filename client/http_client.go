package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/nikhilpabolu99/bmsproject/constant"
	"github.com/nikhilpabolu99/bmsproject/entities"
)

var (
	// ErrNetworkFailure covers transport errors and non-success statuses.
	ErrNetworkFailure = errors.New("network failure")
	// ErrNonJSONResponse is returned when the upstream answers with an HTML
	// error page (or any other unparseable body) instead of JSON.
	ErrNonJSONResponse = errors.New("non-JSON response")
)

type BoxOffice interface {
	GetRegions() (*entities.RegionsFile, error)
	CallShowtimes(url string, regionCode string) (*entities.ShowtimeResponse, error)
}

type BoxOfficeClient struct {
	client *http.Client
}

func New() *BoxOfficeClient {
	return &BoxOfficeClient{
		client: &http.Client{},
	}
}

func (c *BoxOfficeClient) GetRegions() (*entities.RegionsFile, error) {
	body, err := c.doGet(constant.REGIONS_URL, nil)
	if err != nil {
		return nil, err
	}
	var regions entities.RegionsFile
	if err := json.Unmarshal(body, &regions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNonJSONResponse, err)
	}
	return &regions, nil
}

// CallShowtimes fetches one (movie, city, date) document. The upstream
// expects the region code repeated in two headers.
func (c *BoxOfficeClient) CallShowtimes(url string, regionCode string) (*entities.ShowtimeResponse, error) {
	headers := map[string]string{
		"x-region-code":    regionCode,
		"x-subregion-code": regionCode,
	}
	body, err := c.doGet(url, headers)
	if err != nil {
		return nil, err
	}
	if isHTML(body) {
		return nil, fmt.Errorf("%w: got an HTML page", ErrNonJSONResponse)
	}
	var resp entities.ShowtimeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNonJSONResponse, err)
	}
	return &resp, nil
}

func (c *BoxOfficeClient) doGet(url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
	for k, v := range headers {
		req.Header.Add(k, v)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrNetworkFailure, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// isHTML detects the leading doctype marker of an upstream error page.
func isHTML(body []byte) bool {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	return bytes.HasPrefix(trimmed, []byte("<!DOCTYPE")) || bytes.HasPrefix(trimmed, []byte("<html"))
}
