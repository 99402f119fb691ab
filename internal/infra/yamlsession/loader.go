package yamlsession

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/shopcart/internal/domain"
	"github.com/aalvaropc/shopcart/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	sessionsDir string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{sessionsDir: "sessions"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithSessionsDir(dir string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(dir) != "" {
			l.sessionsDir = dir
		}
	}
}

var _ ports.SessionLoader = (*Loader)(nil)

func (l *Loader) LoadSession(path string) (domain.Session, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Session{}, &domain.OpError{
			Op:   "yamlsession.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var ys yamlSession
	if err := yaml.Unmarshal(b, &ys); err != nil {
		return domain.Session{}, &domain.OpError{
			Op:   "yamlsession.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapAndValidate(path, ys)
}

func (l *Loader) ListSessions(root string) ([]domain.SessionRef, error) {
	dir := filepath.Join(root, l.sessionsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlsession.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.SessionRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		p := filepath.Join(dir, name)
		n, _ := readSessionName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(name, filepath.Ext(name))
		}

		refs = append(refs, domain.SessionRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func readSessionName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}

type yamlSession struct {
	Name   string                     `yaml:"name"`
	Steps  []yamlStep                 `yaml:"steps"`
	Expect map[string]yamlExpectation `yaml:"expect"`
}

// Quantity is a pointer so a missing quantity is reported instead of
// silently becoming zero.
type yamlStep struct {
	Action   string   `yaml:"action"`
	Product  string   `yaml:"product"`
	Quantity *int     `yaml:"quantity"`
	Discount *float64 `yaml:"discount"`
}

type yamlExpectation struct {
	Exists   bool     `yaml:"exists"`
	Eq       *string  `yaml:"eq"`
	Contains *string  `yaml:"contains"`
	Matches  *string  `yaml:"matches"`
	Gt       *float64 `yaml:"gt"`
	Lt       *float64 `yaml:"lt"`
}

func mapAndValidate(path string, ys yamlSession) (domain.Session, error) {
	if strings.TrimSpace(ys.Name) == "" {
		return domain.Session{}, invalidField(path, "name", "session name is required")
	}
	if len(ys.Steps) == 0 {
		return domain.Session{}, invalidField(path, "steps", "at least one step is required")
	}

	s := domain.Session{
		Name:   ys.Name,
		Steps:  make([]domain.Command, 0, len(ys.Steps)),
		Expect: mapExpect(ys.Expect),
	}

	for i, st := range ys.Steps {
		fieldPrefix := fmt.Sprintf("steps[%d]", i)

		action, err := parseAction(st.Action)
		if err != nil {
			return domain.Session{}, invalidField(path, fieldPrefix+".action", err.Error())
		}
		if strings.TrimSpace(st.Product) == "" {
			return domain.Session{}, invalidField(path, fieldPrefix+".product", "product is required")
		}

		cmd := domain.Command{Action: action, Product: st.Product}
		switch action {
		case domain.ActionAdd, domain.ActionUpdate:
			if st.Quantity == nil {
				return domain.Session{}, invalidField(path, fieldPrefix+".quantity", "quantity is required")
			}
			cmd.Quantity = *st.Quantity
		}
		if st.Discount != nil {
			if action != domain.ActionAdd {
				return domain.Session{}, invalidField(path, fieldPrefix+".discount", "discount only applies to add")
			}
			cmd.Discount = *st.Discount
		}

		s.Steps = append(s.Steps, cmd)
	}

	return s, nil
}

func mapExpect(in map[string]yamlExpectation) map[string]domain.ReceiptExpectation {
	out := make(map[string]domain.ReceiptExpectation, len(in))
	for k, v := range in {
		out[k] = domain.ReceiptExpectation{
			Exists:   v.Exists,
			Eq:       v.Eq,
			Contains: v.Contains,
			Matches:  v.Matches,
			Gt:       v.Gt,
			Lt:       v.Lt,
		}
	}
	return out
}

// parseAction accepts the scriptable cart actions; "done" is implicit at the
// end of a session.
func parseAction(a string) (domain.Action, error) {
	act := domain.Action(strings.ToLower(strings.TrimSpace(a)))
	switch act {
	case domain.ActionAdd, domain.ActionUpdate, domain.ActionRemove:
		return act, nil
	default:
		return "", fmt.Errorf("unsupported action %q", a)
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlsession.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s", field, msg),
	}
}
