package tabular

import (
	"fmt"

	"github.com/on-the-ground/memo_ive_go/fingerprint"
	"github.com/on-the-ground/memo_ive_go/internal/keychain"
	"github.com/on-the-ground/memo_ive_go/purefn"
)

// Key is the fingerprint of a Labeled table.
type Key struct {
	Rows    any
	Columns any
}

// Fingerprint maps a Labeled value to its Key and passes every other value
// through unchanged. Non-comparable labels fail with fingerprint.ErrUnhashable.
func Fingerprint(v any) (any, error) {
	table, ok := v.(Labeled)
	if !ok {
		return v, nil
	}
	rows, err := keychain.Sequence(table.RowLabels())
	if err != nil {
		return nil, fmt.Errorf("tabular: row labels: %w", err)
	}
	columns, err := keychain.Sequence(table.ColumnLabels())
	if err != nil {
		return nil, fmt.Errorf("tabular: column labels: %w", err)
	}
	return Key{Rows: rows, Columns: columns}, nil
}

var _ fingerprint.Func = Fingerprint

// Cache is the purefn.Factory for functions taking tables.
var Cache = purefn.NewFactory(Fingerprint)
