package plan

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shrdlite/core/interpret"
	"github.com/shrdlite/core/world"
	"github.com/shrdlite/core/xlog"
)

// AlreadySatisfied is the sentinel plan string for an interpretation that
// holds in the starting world, per §6.
const AlreadySatisfied = "The interpretation is already true!"

// ErrTimeout and ErrFailure classify why a single interpretation's search
// didn't produce a plan, so callers can tell "ran out of time" apart from
// "provably no plan exists" via errors.Is without parsing the message.
var (
	ErrTimeout = errors.New("search timed out")
	ErrFailure = errors.New("no plan exists for this interpretation")
)

// Result is one interpreted parse with the plan found for it.
type Result struct {
	Parse     interpret.Parse
	Plan      string
	Cost      int
	NodesSeen int
	Reopened  int
}

// Plan is §6's planner entry point: it searches for a plan for every
// interpretation against w, keeps the ones that succeeded (including
// already-true goals needing zero actions), and raises a joined error
// only if every interpretation timed out or failed.
func Plan(interps []interpret.Interpretation, w world.World, perSearchTimeout time.Duration, logger *zap.Logger) ([]Result, error) {
	logger = xlog.OrNop(logger)
	var ok []Result
	var messages []string
	for i, in := range interps {
		res, err := planOne(in, w, perSearchTimeout)
		if err != nil {
			logger.Debug("interpretation could not be planned", zap.Int("interpretation", i), zap.Error(err))
			messages = append(messages, err.Error())
			continue
		}
		ok = append(ok, res)
	}
	if len(ok) == 0 {
		return nil, fmt.Errorf("%s", strings.Join(dedupe(messages), " ; "))
	}
	return ok, nil
}

func planOne(in interpret.Interpretation, w world.World, timeout time.Duration) (Result, error) {
	if goalSatisfied(w, in.Goal) {
		return Result{Parse: in.Parse, Plan: AlreadySatisfied}, nil
	}

	search := Search(w, in.Goal, timeout)
	switch search.Status {
	case StatusSuccess:
		return Result{
			Parse:     in.Parse,
			Plan:      search.Actions,
			Cost:      search.Cost,
			NodesSeen: search.NodesSeen,
			Reopened:  search.Reopened,
		}, nil
	case StatusTimeout:
		return Result{}, fmt.Errorf("%w: examined %d states", ErrTimeout, search.NodesSeen)
	default:
		return Result{}, ErrFailure
	}
}

// Explain renders a Result as a line-by-line trace of the action
// sequence, one world-affecting move per line.
func Explain(r Result) string {
	if r.Plan == AlreadySatisfied || r.Plan == "" {
		return r.Plan
	}
	names := map[byte]string{'l': "move arm left", 'r': "move arm right", 'p': "pick up", 'd': "drop"}
	var lines []string
	for _, action := range []byte(r.Plan) {
		name, ok := names[action]
		if !ok {
			name = string(action)
		}
		lines = append(lines, name)
	}
	return strings.Join(lines, "\n")
}

func dedupe(messages []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range messages {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}
