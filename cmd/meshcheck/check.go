package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/meshcheck/internal/config"
	"github.com/philipparndt/meshcheck/internal/logger"
	"github.com/philipparndt/meshcheck/pkg/checker"
	"github.com/philipparndt/meshcheck/pkg/checks"
	"github.com/philipparndt/meshcheck/pkg/mesh"
	"github.com/philipparndt/meshcheck/pkg/scene"
	"github.com/philipparndt/meshcheck/pkg/watcher"
)

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Run quality checks on mesh files",
	Long: `Run the registered quality checks on the given mesh files (OBJ, STL,
glTF/GLB) or on a scene manifest, and report offending elements per mesh.`,
	Args: cobra.ArbitraryArgs,
	RunE: runCheck,
}

var (
	checkConfigPath string
	checkManifest   string
	checkUnit       string
	checkOnly       []string
	checkJSON       bool
	checkWatch      bool
)

func init() {
	checkCmd.Flags().StringVarP(&checkConfigPath, "config", "c", "", "path to a meshcheck.yaml config file")
	checkCmd.Flags().StringVarP(&checkManifest, "scene", "s", "", "path to a scene manifest instead of mesh files")
	checkCmd.Flags().StringVarP(&checkUnit, "unit", "u", "", "linear unit of the input files (e.g. cm)")
	checkCmd.Flags().StringSliceVar(&checkOnly, "checks", nil, "comma-separated check IDs to run (default: all)")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "emit the report as JSON")
	checkCmd.Flags().BoolVarP(&checkWatch, "watch", "w", false, "re-run checks when input files change")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if checkManifest == "" && len(args) == 0 {
		return fmt.Errorf("no input: pass mesh files or --scene manifest")
	}
	if checkManifest != "" && len(args) > 0 {
		return fmt.Errorf("pass either mesh files or --scene, not both")
	}

	cfg, err := config.Load(checkConfigPath)
	if err != nil {
		return err
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, !checkJSON)
	defer logger.Sync()

	registry, err := checks.NewRegistry(cfg.Checks)
	if err != nil {
		return err
	}

	ids := registry.IDs()
	if len(checkOnly) > 0 {
		ids = checkOnly
	}

	run := func() (bool, error) {
		report, failures, err := evaluate(registry, ids, args)
		if err != nil {
			return false, err
		}
		if checkJSON {
			if err := printJSON(report, failures); err != nil {
				return false, err
			}
		} else {
			printReport(report, failures)
		}
		return report.PassedAll() && len(failures) == 0, nil
	}

	passed, err := run()
	if err != nil {
		return err
	}

	if checkWatch {
		return watchLoop(watchedFiles(args), func() {
			if _, err := run(); err != nil {
				logger.Error("check run failed", zap.Error(err))
			}
		})
	}

	if !passed {
		// os.Exit skips the deferred Sync, so flush explicitly
		logger.Sync()
		os.Exit(1)
	}
	return nil
}

// evaluate loads the scene and runs the requested checks over it
func evaluate(registry *checker.Registry, ids []string, files []string) (*checker.Report, []scene.LoadError, error) {
	var (
		scn      *mesh.Scene
		failures []scene.LoadError
		err      error
	)
	if checkManifest != "" {
		scn, failures, err = scene.LoadManifest(checkManifest)
		if err != nil {
			return nil, nil, err
		}
	} else {
		scn, failures = scene.FromFiles(files, checkUnit)
	}

	logger.Info("running checks",
		zap.Int("meshes", len(scn.Meshes)),
		zap.Int("checks", len(ids)),
		zap.Int("loadFailures", len(failures)))

	started := time.Now()
	report := registry.Run(ids, scn)
	logger.Debug("checks finished", zap.Duration("elapsed", time.Since(started)))

	return report, failures, nil
}

// printJSON emits the report plus any load failures as one JSON document
func printJSON(report *checker.Report, failures []scene.LoadError) error {
	loadErrors := make(map[string]string, len(failures))
	for _, f := range failures {
		loadErrors[f.Path] = f.Err.Error()
	}

	out := struct {
		*checker.Report
		LoadErrors map[string]string `json:"loadErrors,omitempty"`
	}{Report: report, LoadErrors: loadErrors}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// printReport renders a human-readable summary, failing checks first
func printReport(report *checker.Report, failures []scene.LoadError) {
	for _, f := range failures {
		fmt.Printf("LOAD FAILED  %s: %v\n", f.Path, f.Err)
	}

	ids := make([]string, 0, len(report.Checks))
	for id := range report.Checks {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	passCount := 0
	for _, id := range ids {
		c := report.Checks[id]
		if c.Passed() && len(c.Failures) == 0 {
			passCount++
			continue
		}
		printCheck(c)
	}

	fmt.Printf("\n%d/%d checks passed\n", passCount, len(ids))
}

func printCheck(c *checker.CheckReport) {
	if c.Err != "" {
		fmt.Printf("ERROR  %s: %s\n", c.ID, c.Err)
		return
	}

	fmt.Printf("FAIL   %s (%s)\n", c.ID, c.Label)
	switch c.Kind {
	case checker.Nodes:
		for _, name := range c.Result.Meshes {
			fmt.Printf("       %s\n", name)
		}
	case checker.Vertices, checker.Polygons, checker.UVs:
		for name, indices := range c.Result.Elements {
			fmt.Printf("       %s: %s [%s]\n", name, elementNoun(c.Kind), joinInts(indices))
		}
	case checker.Edges:
		for name, edges := range c.Result.Edges {
			pairs := make([]string, len(edges))
			for i, e := range edges {
				pairs[i] = fmt.Sprintf("%d-%d", e[0], e[1])
			}
			fmt.Printf("       %s: edges [%s]\n", name, strings.Join(pairs, " "))
		}
	case checker.SceneFlag:
		fmt.Printf("       %s\n", c.Result.Message)
	}
	for name, reason := range c.Failures {
		fmt.Printf("       %s: %s\n", name, reason)
	}
}

func elementNoun(kind checker.Kind) string {
	switch kind {
	case checker.Vertices:
		return "vertices"
	case checker.UVs:
		return "uvs"
	default:
		return "faces"
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, " ")
}

// watchedFiles returns the files whose changes should trigger a re-run
func watchedFiles(args []string) []string {
	files := append([]string{}, args...)
	if checkManifest != "" {
		files = append(files, checkManifest)
	}
	if checkConfigPath != "" {
		files = append(files, checkConfigPath)
	}
	return files
}

// watchLoop re-runs checks whenever a watched file changes, until interrupted
func watchLoop(files []string, rerun func()) error {
	fw, err := watcher.NewFileWatcher(250 * time.Millisecond)
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Watch(files, func(path string) {
		logger.Info("file changed", zap.String("path", path))
		rerun()
	}); err != nil {
		return err
	}
	fw.Start()

	logger.Info("watching for changes", zap.Strings("files", files))
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt
	return nil
}
