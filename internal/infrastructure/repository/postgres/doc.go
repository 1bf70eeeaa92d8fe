package postgres

import (
	"database/sql"
	"fmt"

	sonic "github.com/bytedance/sonic"
)

// Records live as JSONB documents keyed by public id, with a few promoted
// columns for filtering. The document is authoritative; promoted columns are
// derived on write.

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

func encodeDoc(value any) ([]byte, error) {
	raw, err := sonic.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return raw, nil
}

func decodeDoc(raw []byte, target any) error {
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}
