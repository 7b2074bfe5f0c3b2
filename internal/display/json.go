package display

import (
	"encoding/json"
	"io"

	"github.com/contentcompass/trendcompass/internal/session"
	"github.com/contentcompass/trendcompass/internal/trend"
)

// OutputJSON writes pretty-printed JSON to the given writer.
func OutputJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// accessJSON is the JSON shape for one data access: the outcome metadata
// plus the payload exactly as it sits in the cache.
type accessJSON struct {
	Category    string          `json:"category"`
	Source      string          `json:"source"`
	Fingerprint string          `json:"fingerprint"`
	Charged     int             `json:"charged"`
	Error       string          `json:"error,omitempty"`
	Results     int             `json:"results"`
	Data        json.RawMessage `json:"data"`
}

// OutputAccessJSON writes an access outcome and its payload as JSON.
func OutputAccessJSON(w io.Writer, env trend.Envelope, res session.Result) error {
	out := accessJSON{
		Category:    res.Category,
		Source:      string(res.Source),
		Fingerprint: res.Fingerprint,
		Charged:     res.Charged,
		Results:     env.Results,
		Data:        env.Data,
	}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}
	return OutputJSON(w, out)
}
