package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/shopcart/internal/domain"
	"github.com/aalvaropc/shopcart/internal/infra/config"
	"github.com/aalvaropc/shopcart/internal/usecase"
)

func replayCmd(opts *rootOptions) *cobra.Command {
	var file string
	var format string

	c := &cobra.Command{
		Use:   "replay",
		Short: "Replay a session script against a fresh cart and check its receipt",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := openWorkspace(opts.workspace, false)
			if err != nil {
				return err
			}
			defer ws.startLogging(cmd, opts.debug)()

			f, err := ws.format(format)
			if err != nil {
				return err
			}

			sessionPath, err := resolveSessionPath(ws, file)
			if err != nil {
				return err
			}

			uc := usecase.NewReplaySession(ws.sessions, ws.catalog, usecase.WithReplayLogger(ws.log))
			res, err := uc.Execute(cmd.Context(), sessionPath)
			if err != nil {
				// Partial results (cancellation) are still worth showing.
				if res.ID != "" {
					_ = printReplay(cmd.OutOrStdout(), res, ws.cfg, f)
				}
				return err
			}

			if err := printReplay(cmd.OutOrStdout(), res, ws.cfg, f); err != nil {
				return err
			}

			if fails := res.Failures(); fails > 0 {
				return fmt.Errorf("replay failed (%d failure(s))", fails)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Session name or path (required)")
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json (default from shopcart.yaml)")

	_ = c.MarkFlagRequired("file")
	return c
}

type replayStepJSON struct {
	Index    int     `json:"index"`
	Action   string  `json:"action"`
	Product  string  `json:"product"`
	Quantity int     `json:"quantity,omitempty"`
	Discount float64 `json:"discount,omitempty"`
	OK       bool    `json:"ok"`
	Message  string  `json:"message"`
}

type assertionJSON struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

type replayJSON struct {
	ID         string           `json:"replay_id"`
	Session    string           `json:"session"`
	Path       string           `json:"path"`
	StartedAt  time.Time        `json:"started_at"`
	EndedAt    time.Time        `json:"ended_at"`
	Steps      []replayStepJSON `json:"steps"`
	Receipt    json.RawMessage  `json:"receipt"`
	Assertions []assertionJSON  `json:"assertions"`
	Failures   int              `json:"failures"`
}

func printReplay(w io.Writer, res domain.ReplayResult, cfg domain.Config, format string) error {
	switch format {
	case config.FormatJSON:
		receipt, err := usecase.EncodeReceipt(res.Receipt)
		if err != nil {
			return err
		}
		payload := replayJSON{
			ID:         res.ID,
			Session:    res.SessionName,
			Path:       res.SessionPath,
			StartedAt:  res.StartedAt,
			EndedAt:    res.EndedAt,
			Steps:      make([]replayStepJSON, 0, len(res.Steps)),
			Receipt:    receipt,
			Assertions: make([]assertionJSON, 0, len(res.Assertions)),
			Failures:   res.Failures(),
		}
		for _, a := range res.Assertions {
			payload.Assertions = append(payload.Assertions, assertionJSON{Name: a.Name, Passed: a.Passed, Message: a.Message})
		}
		for _, s := range res.Steps {
			payload.Steps = append(payload.Steps, replayStepJSON{
				Index:    s.Index,
				Action:   string(s.Command.Action),
				Product:  s.Command.Product,
				Quantity: s.Command.Quantity,
				Discount: s.Command.Discount,
				OK:       s.OK,
				Message:  s.Message,
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case config.FormatPretty, "":
		return printPrettyReplay(w, res, cfg)
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyReplay(w io.Writer, res domain.ReplayResult, cfg domain.Config) error {
	total := res.EndedAt.Sub(res.StartedAt)
	if res.StartedAt.IsZero() || res.EndedAt.IsZero() {
		total = 0
	}

	fmt.Fprintf(w, "Session:   %s\n", res.SessionName)
	fmt.Fprintf(w, "Started:   %s\n", res.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration:  %s\n", total)
	if res.ID != "" {
		fmt.Fprintf(w, "Replay ID: %s\n", res.ID)
	}
	fmt.Fprintln(w)

	for _, s := range res.Steps {
		status := "OK"
		if !s.OK {
			status = "FAIL"
		}
		fmt.Fprintf(w, "- [%s] #%d %s: %s\n", status, s.Index+1, s.Command.Action, s.Message)
	}

	if err := printPrettyReceipt(w, res.Receipt, cfg); err != nil {
		return err
	}

	if len(res.Assertions) > 0 {
		pass, fail := countAssertionPassFail(res.Assertions)
		fmt.Fprintf(w, "\nexpectations: %d pass / %d fail\n", pass, fail)
		for _, a := range res.Assertions {
			mark := "✓"
			if !a.Passed {
				mark = "✗"
			}
			fmt.Fprintf(w, "  %s %s: %s\n", mark, a.Name, a.Message)
		}
	}
	return nil
}

func countAssertionPassFail(in []domain.AssertionResult) (pass int, fail int) {
	for _, a := range in {
		if a.Passed {
			pass++
		} else {
			fail++
		}
	}
	return pass, fail
}
