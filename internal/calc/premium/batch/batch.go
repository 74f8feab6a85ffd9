package batch

import (
	"fmt"

	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/authority"
)

type TableBatchInput struct {
	Items []authority.TableInput `json:"items"`
}

type TableBatchResult struct {
	Results []authority.TableResult `json:"results"`
}

// CalculateTables builds the comparison table for each damper setup in one
// call, in input order.
func CalculateTables(in TableBatchInput) (TableBatchResult, error) {
	if len(in.Items) == 0 {
		return TableBatchResult{}, fmt.Errorf("no items")
	}
	out := TableBatchResult{Results: make([]authority.TableResult, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := authority.Table(item)
		if err != nil {
			return TableBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
