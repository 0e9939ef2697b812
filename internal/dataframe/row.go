package dataframe

import "github.com/paveg/panda/internal/common"

// Row is one index position materialized across all columns
type Row []any

// String renders the row as [a, b, c]
func (r Row) String() string {
	return common.FormatList(r)
}
