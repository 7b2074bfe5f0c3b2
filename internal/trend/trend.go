package trend

import (
	"encoding/json"
	"fmt"
)

// Category names understood by the rest of the system. The endpoint
// registry is the authoritative list; these constants exist so callers
// don't scatter string literals.
const (
	CategoryTrends   = "trends"
	CategoryHashtags = "hashtags"
	CategoryVideos   = "videos"
	CategoryNiches   = "niches"
)

// Envelope is the normalized result shape shared by every category:
// a result count plus a list of category-specific records. Data is kept
// as raw JSON so cached entries round-trip byte-for-byte; typed access
// goes through the Decode helpers.
type Envelope struct {
	Results int             `json:"results"`
	Data    json.RawMessage `json:"data"`
}

// Empty returns the zero-record envelope used on every degraded path:
// disabled categories, failed fetches, missing demo assets.
func Empty() Envelope {
	return Envelope{Results: 0, Data: json.RawMessage("[]")}
}

// IsEmpty reports whether the envelope carries no records.
func (e Envelope) IsEmpty() bool {
	return e.Results == 0 && len(e.Data) <= 2
}

// TrendInfo describes a single trending topic.
type TrendInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RankedTrend pairs a trend with its position in the digest.
type RankedTrend struct {
	Ranking int       `json:"ranking"`
	Trend   TrendInfo `json:"trend"`
}

// TrendGroup is one digest group; the trends endpoint returns a list of
// groups, in practice one per digest window.
type TrendGroup struct {
	Label  string        `json:"label,omitempty"`
	Trends []RankedTrend `json:"trends"`
}

// Hashtag carries aggregate stats for one hashtag.
type Hashtag struct {
	Hashtag    string `json:"hashtag"`
	Count      int64  `json:"count"`
	TotalViews int64  `json:"total_views"`
}

// Video is one top-performing short video.
type Video struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Views       int64    `json:"views"`
	Duration    int      `json:"duration"`
	Hashtags    []string `json:"hashtags,omitempty"`
	URL         string   `json:"url,omitempty"`
	ExternalID  string   `json:"external_id,omitempty"`
}

// Niche is a named content niche.
type Niche struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	VideoCount  int    `json:"video_count,omitempty"`
}

func DecodeTrendGroups(e Envelope) ([]TrendGroup, error) {
	var groups []TrendGroup
	if err := json.Unmarshal(e.Data, &groups); err != nil {
		return nil, fmt.Errorf("decoding trend groups: %w", err)
	}
	return groups, nil
}

// FlattenTrends returns every ranked trend across all groups, in digest
// order. Convenience for callers that don't care about group boundaries.
func FlattenTrends(e Envelope) []RankedTrend {
	groups, err := DecodeTrendGroups(e)
	if err != nil {
		return nil
	}
	var out []RankedTrend
	for _, g := range groups {
		out = append(out, g.Trends...)
	}
	return out
}

func DecodeHashtags(e Envelope) ([]Hashtag, error) {
	var tags []Hashtag
	if err := json.Unmarshal(e.Data, &tags); err != nil {
		return nil, fmt.Errorf("decoding hashtags: %w", err)
	}
	return tags, nil
}

func DecodeVideos(e Envelope) ([]Video, error) {
	var videos []Video
	if err := json.Unmarshal(e.Data, &videos); err != nil {
		return nil, fmt.Errorf("decoding videos: %w", err)
	}
	return videos, nil
}

func DecodeNiches(e Envelope) ([]Niche, error) {
	var niches []Niche
	if err := json.Unmarshal(e.Data, &niches); err != nil {
		return nil, fmt.Errorf("decoding niches: %w", err)
	}
	return niches, nil
}

// Validate checks that an envelope's records decode into the typed shape
// for the given category. It is called at the remote and offline
// boundaries so malformed data never reaches the cache.
func Validate(category string, e Envelope) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("%s: envelope has no data field", category)
	}
	var err error
	switch category {
	case CategoryTrends:
		_, err = DecodeTrendGroups(e)
	case CategoryHashtags:
		_, err = DecodeHashtags(e)
	case CategoryVideos:
		_, err = DecodeVideos(e)
	case CategoryNiches:
		_, err = DecodeNiches(e)
	default:
		// Unknown categories pass through untyped; the registry gates
		// which categories are reachable in the first place.
	}
	return err
}
