package checker

import (
	"fmt"
	"sync"

	"github.com/philipparndt/meshcheck/pkg/mesh"
)

// CheckReport is the aggregated outcome of one check over the whole scene.
// Failures records meshes the check could not evaluate; those meshes are
// excluded from the pass/fail verdict. Err is set when the check never ran
// at all (for example an unregistered ID).
type CheckReport struct {
	ID       string
	Label    string
	Category string
	Kind     Kind
	Result   Result
	Failures map[string]string
	Err      string
}

// Passed reports whether the check found no defects on the meshes it could
// evaluate
func (c *CheckReport) Passed() bool {
	return c.Err == "" && c.Result.IsEmpty()
}

// Report holds the outcome of one run, keyed and ordered by check ID
type Report struct {
	Checks map[string]*CheckReport
}

// PassedAll reports whether every check passed and evaluated every mesh
func (r *Report) PassedAll() bool {
	for _, c := range r.Checks {
		if !c.Passed() || len(c.Failures) > 0 {
			return false
		}
	}
	return true
}

// Run evaluates the requested checks over the scene and merges the per-mesh
// results. Per-mesh checks run in parallel: each check/mesh pair only reads
// the mesh snapshot and writes its own result slot, and merging happens
// strictly after all workers have finished. A panic inside a check is
// isolated to that check/mesh pair and recorded as a failure entry; it never
// aborts other meshes or other checks. The requested IDs are treated as a
// set: repeated IDs run once.
func (r *Registry) Run(ids []string, scene *mesh.Scene) *Report {
	ids = dedupe(ids)
	report := &Report{Checks: make(map[string]*CheckReport, len(ids))}

	type slot struct {
		result  Result
		failure string
	}
	slots := make(map[string][]slot, len(ids))

	var wg sync.WaitGroup
	for _, id := range ids {
		check, ok := r.Get(id)
		if !ok {
			report.Checks[id] = &CheckReport{
				ID:  id,
				Err: fmt.Sprintf("check %q is not registered", id),
			}
			continue
		}

		report.Checks[id] = &CheckReport{
			ID:       check.ID,
			Label:    check.Label,
			Category: check.Category,
			Kind:     check.Kind,
			Result:   NewResult(check.Kind),
		}

		if check.IsSceneCheck() {
			slots[id] = make([]slot, 1)
			wg.Add(1)
			go func(check Check, out *slot) {
				defer wg.Done()
				defer capturePanic(&out.failure)
				out.result = check.RunScene(scene)
			}(check, &slots[id][0])
			continue
		}

		slots[id] = make([]slot, len(scene.Meshes))
		for i, m := range scene.Meshes {
			wg.Add(1)
			go func(check Check, m *mesh.Mesh, out *slot) {
				defer wg.Done()
				defer capturePanic(&out.failure)
				out.result = check.Run(m)
			}(check, m, &slots[id][i])
		}
	}
	wg.Wait()

	// Barrier reached: merge single-threaded
	for _, id := range ids {
		checkReport := report.Checks[id]
		if checkReport.Err != "" {
			continue
		}
		for i, s := range slots[id] {
			if s.failure != "" {
				if checkReport.Failures == nil {
					checkReport.Failures = make(map[string]string)
				}
				name := "scene"
				if !r.checks[id].IsSceneCheck() {
					name = scene.Meshes[i].Name
				}
				checkReport.Failures[name] = s.failure
				continue
			}
			if err := checkReport.Result.Merge(s.result); err != nil {
				checkReport.Err = err.Error()
				break
			}
		}
		checkReport.Result.sortIndices()
	}

	return report
}

// dedupe drops repeated IDs, keeping first-occurrence order
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func capturePanic(out *string) {
	if rec := recover(); rec != nil {
		*out = fmt.Sprintf("could not evaluate: %v", rec)
	}
}
