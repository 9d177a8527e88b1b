package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// RemoteSource fetches the reference tables from a catalog service as JSON:
//
//	{ "statuses": [...], "feeds": [...] }
type RemoteSource struct {
	httpClient *resty.Client
	url        string
}

type remoteDocument struct {
	Statuses []StatusProfile `json:"statuses"`
	Feeds    []FeedItem      `json:"feeds"`
}

// NewRemoteSource builds a source fetching from the given URL.
func NewRemoteSource(url string) *RemoteSource {
	restyClient := resty.New()
	restyClient.
		SetHeader("Accept", "application/json").
		SetTimeout(15 * time.Second)

	return &RemoteSource{
		httpClient: restyClient,
		url:        url,
	}
}

func (s *RemoteSource) fetch(ctx context.Context) (*remoteDocument, error) {
	doc := new(remoteDocument)

	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetResult(doc).
		Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch catalog: %s returned %s", s.url, resp.Status())
	}

	return doc, nil
}

func (s *RemoteSource) StatusProfiles(ctx context.Context) ([]StatusProfile, error) {
	doc, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Statuses, nil
}

func (s *RemoteSource) FeedItems(ctx context.Context) ([]FeedItem, error) {
	doc, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Feeds, nil
}
