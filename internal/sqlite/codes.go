package sqlite

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/estatedesk/estatedesk/pkg/types"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// maxCodeAttempts bounds collision retries. Exhausting it means the
	// keyspace under the prefix is effectively full, which is a
	// configuration problem, not something to retry forever.
	maxCodeAttempts = 25
)

// randomCode returns n uppercase alphanumerics drawn from a fresh UUID.
func randomCode(n int) string {
	u := uuid.New()
	b := make([]byte, n)
	for i := range b {
		b[i] = codeAlphabet[int(u[i%len(u)])%len(codeAlphabet)]
	}
	return string(b)
}

// generateOwnerCodeLocked produces an owner code that does not yet exist in
// the owners table. Caller must hold the write lock so the check and the
// subsequent insert are one atomic step.
func (s *Store) generateOwnerCodeLocked() (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := randomCode(types.OwnerCodeLength)
		taken, err := s.codeTakenLocked("SELECT 1 FROM owners WHERE owner_code = ?", code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", &types.CodeGenerationExhaustedError{Attempts: maxCodeAttempts}
}

// generatePropertyCodeLocked produces company + 4 random characters, unique
// across the properties table. Same locking contract as owner codes.
func (s *Store) generatePropertyCodeLocked(companyCode string) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := companyCode + randomCode(types.PropertyCodeLength-types.CompanyCodeLength)
		taken, err := s.codeTakenLocked("SELECT 1 FROM properties WHERE property_code = ?", code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", &types.CodeGenerationExhaustedError{Attempts: maxCodeAttempts}
}

// codeTakenLocked runs an existence probe for a candidate code.
func (s *Store) codeTakenLocked(query, code string) (bool, error) {
	var one int
	err := s.db.QueryRow(query, code).Scan(&one)
	switch {
	case err == nil:
		return true, nil
	case isNoRows(err):
		return false, nil
	default:
		return false, fmt.Errorf("checking code %q: %w", code, err)
	}
}
