package checker

import (
	"encoding/json"
	"sort"
)

// checkReportJSON is the wire form consumed by presentation layers.
// Entries maps mesh name to flagged indices (or index pairs for edges);
// whole-mesh defects are listed under "nodes".
type checkReportJSON struct {
	CheckID    string            `json:"checkId"`
	Label      string            `json:"label,omitempty"`
	Category   string            `json:"category,omitempty"`
	ResultKind string            `json:"resultKind"`
	Passed     bool              `json:"passed"`
	Nodes      []string          `json:"nodes,omitempty"`
	Entries    map[string]any    `json:"entries,omitempty"`
	SceneFlag  *bool             `json:"sceneFlag,omitempty"`
	Message    string            `json:"message,omitempty"`
	Failures   map[string]string `json:"failures,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// MarshalJSON serializes the aggregated result in the documented wire form
func (c *CheckReport) MarshalJSON() ([]byte, error) {
	out := checkReportJSON{
		CheckID:    c.ID,
		Label:      c.Label,
		Category:   c.Category,
		ResultKind: c.Kind.String(),
		Passed:     c.Passed(),
		Failures:   c.Failures,
		Error:      c.Err,
	}

	switch c.Kind {
	case Nodes:
		out.Nodes = c.Result.Meshes
	case Vertices, Polygons, UVs:
		if len(c.Result.Elements) > 0 {
			out.Entries = make(map[string]any, len(c.Result.Elements))
			for name, indices := range c.Result.Elements {
				out.Entries[name] = indices
			}
		}
	case Edges:
		if len(c.Result.Edges) > 0 {
			out.Entries = make(map[string]any, len(c.Result.Edges))
			for name, edges := range c.Result.Edges {
				out.Entries[name] = edges
			}
		}
	case SceneFlag:
		flag := c.Result.Flag
		out.SceneFlag = &flag
		out.Message = c.Result.Message
	}

	return json.Marshal(out)
}

// MarshalJSON serializes the full report with checks ordered by ID
func (r *Report) MarshalJSON() ([]byte, error) {
	ids := make([]string, 0, len(r.Checks))
	for id := range r.Checks {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	ordered := make([]*CheckReport, len(ids))
	for i, id := range ids {
		ordered[i] = r.Checks[id]
	}

	return json.Marshal(struct {
		Passed bool           `json:"passed"`
		Checks []*CheckReport `json:"checks"`
	}{
		Passed: r.PassedAll(),
		Checks: ordered,
	})
}
