// Package search routes typed search requests to the scenario service or
// rejects them upfront when the upstream site cannot answer.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/dunwich/arkham-central-mcp/internal/arkham"
	"github.com/dunwich/arkham-central-mcp/internal/models"
)

// QueryType is the closed set of searchable object types.
type QueryType int

const (
	TypeInvalid QueryType = iota
	TypeScenario
	TypeCard
	TypeInvestigator
)

func (t QueryType) String() string {
	switch t {
	case TypeScenario:
		return "scenario"
	case TypeCard:
		return "card"
	case TypeInvestigator:
		return "investigator"
	default:
		return "invalid"
	}
}

// ParseQueryType maps a request parameter onto a QueryType. Unknown or
// missing values are a validation failure, distinct from NotSupported.
func ParseQueryType(s string) (QueryType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scenario":
		return TypeScenario, nil
	case "card":
		return TypeCard, nil
	case "investigator":
		return TypeInvestigator, nil
	case "":
		return TypeInvalid, fmt.Errorf("%w: search type is required (scenario, card, investigator)", arkham.ErrValidation)
	default:
		return TypeInvalid, fmt.Errorf("%w: unknown search type %q", arkham.ErrValidation, s)
	}
}

// ScenarioSearcher is the slice of the scenario service that Dispatch needs.
type ScenarioSearcher interface {
	SearchScenarios(ctx context.Context, name string) ([]models.ScenarioSummary, error)
}

// Dispatch resolves a typed search. Card and investigator lookups are
// rejected before any network activity: arkhamcentral.com hosts scenarios
// only, so there is nothing to fetch.
func Dispatch(ctx context.Context, svc ScenarioSearcher, typ QueryType, name string) ([]models.ScenarioSummary, error) {
	switch typ {
	case TypeScenario:
		return svc.SearchScenarios(ctx, name)
	case TypeCard:
		return nil, fmt.Errorf("%w: card search is not available, arkhamcentral.com does not provide a card database", arkham.ErrNotSupported)
	case TypeInvestigator:
		return nil, fmt.Errorf("%w: investigator search is not available, arkhamcentral.com does not provide an investigator database", arkham.ErrNotSupported)
	default:
		return nil, fmt.Errorf("%w: unknown search type", arkham.ErrValidation)
	}
}
