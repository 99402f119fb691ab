package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/shopcart/internal/domain"
	"github.com/aalvaropc/shopcart/internal/infra/config"
	"github.com/aalvaropc/shopcart/internal/infra/logger"
	"github.com/aalvaropc/shopcart/internal/infra/workspacefinder"
	"github.com/aalvaropc/shopcart/internal/infra/yamlsession"
)

type workspaceCtx struct {
	root  string
	found bool
	cfg   domain.Config

	catalog  *domain.Catalog
	sessions *yamlsession.Loader
	log      *slog.Logger
}

// openWorkspace resolves the workspace root and loads shopcart.yaml. When
// required is false and no workspace exists, the working directory is used
// with default configuration.
func openWorkspace(workspaceFlag string, required bool) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	found := err == nil
	if err != nil {
		if required || !domain.IsKind(err, domain.KindNotFound) {
			return nil, err
		}
		root, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := domain.DefaultConfig()
	if found {
		cfg, err = config.Load(root)
		if err != nil {
			return nil, err
		}
	}

	return &workspaceCtx{
		root:     root,
		found:    found,
		cfg:      cfg,
		catalog:  domain.DefaultCatalog(),
		sessions: yamlsession.NewLoader(yamlsession.WithSessionsDir(cfg.Paths.SessionsDir)),
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}, nil
}

// startLogging installs the file logger inside a workspace. Outside one,
// logs are discarded. With --debug the log location goes to stderr. The
// returned func must be called on exit.
func (ws *workspaceCtx) startLogging(cmd *cobra.Command, debug bool) func() {
	if !ws.found {
		return func() {}
	}
	cleanup, err := logger.Setup(logger.Config{
		Root:    ws.root,
		Dir:     ws.cfg.Paths.LogsDir,
		Debug:   debug || ws.cfg.Logging.Debug,
		Command: cmd.Name(),
	})
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "logging disabled: %v\n", err)
		return func() {}
	}
	ws.log = logger.L()
	if debug {
		fmt.Fprintf(cmd.ErrOrStderr(), "logging to %s\n", logger.Path())
	}
	return func() { _ = cleanup() }
}

// format picks the flag value over the configured default.
func (ws *workspaceCtx) format(flag string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(flag))
	if f == "" {
		return ws.cfg.Receipt.Format, nil
	}
	if err := config.ValidateFormat(f); err != nil {
		return "", err
	}
	return f, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		if !fileExists(filepath.Join(abs, config.FileName)) {
			return "", &domain.OpError{
				Op:   "cli.workspace",
				Kind: domain.KindInvalidConfig,
				Path: abs,
				Err:  fmt.Errorf("%s not found (tip: run `shopcart init %s`)", config.FileName, w),
			}
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `shopcart init`): %w", wd, err)
	}
	return root, nil
}

func resolveSessionPath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if err := requireFile(in); err != nil {
		return "", err
	}

	// If arg looks like a path (contains separators), resolve relative to workspace root.
	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	sessionsDir := filepath.Join(ws.root, ws.cfg.Paths.SessionsDir)

	// "demo.yaml" is a file under the sessions dir, or under the root.
	if hasYAMLExt(in) {
		for _, p := range []string{filepath.Join(sessionsDir, in), filepath.Join(ws.root, in)} {
			if fileExists(p) {
				return p, nil
			}
		}
	}

	// "demo" tries demo.yaml / demo.yml in the sessions dir.
	p1 := filepath.Join(sessionsDir, in+".yaml")
	if fileExists(p1) {
		return p1, nil
	}
	p2 := filepath.Join(sessionsDir, in+".yml")
	if fileExists(p2) {
		return p2, nil
	}

	// As a last resort: match by session "name" field.
	refs, err := ws.sessions.ListSessions(ws.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", &domain.OpError{
		Op:   "cli.resolve_session",
		Kind: domain.KindNotFound,
		Path: sessionsDir,
		Err:  fmt.Errorf("session %q: %w", in, domain.ErrNotFound),
	}
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
