package batch

import (
	"fmt"

	tonnage "Quarry/internal/calc/tonnage"
)

type TonnageBatchInput struct {
	Items []tonnage.Input `json:"items"`
}

type TonnageBatchResult struct {
	Results []tonnage.Result `json:"results"`
}

// CalculateTonnage runs the tonnage calculator over every item, for
// multi-zone jobs quoted in one request. Any bad item fails the batch.
func CalculateTonnage(in TonnageBatchInput) (TonnageBatchResult, error) {
	if len(in.Items) == 0 {
		return TonnageBatchResult{}, fmt.Errorf("no items")
	}
	out := TonnageBatchResult{Results: make([]tonnage.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := tonnage.Calculate(item)
		if err != nil {
			return TonnageBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
