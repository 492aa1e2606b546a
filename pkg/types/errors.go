package types

import "fmt"

// ValidationError reports the first field that failed a write-time
// constraint. Always recoverable: the caller corrects the input and retries.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation against a code that does not exist.
type NotFoundError struct {
	Entity string
	Code   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Code)
}

// DuplicateCodeError reports that a generated identifier collided with an
// existing row even after retrying.
type DuplicateCodeError struct {
	Code string
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("code %q already exists", e.Code)
}

// CodeGenerationExhaustedError reports that the generator ran out of retry
// attempts. Operationally this means the keyspace under the configured
// prefix is saturated.
type CodeGenerationExhaustedError struct {
	Attempts int
}

func (e *CodeGenerationExhaustedError) Error() string {
	return fmt.Sprintf("code generation exhausted after %d attempts", e.Attempts)
}

// ConstraintError reports a referential guard blocking a mutation, such as
// deleting an owner that properties still reference.
type ConstraintError struct {
	Entity string
	Code   string
	Reason string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Entity, e.Code, e.Reason)
}

// IOError reports a failed operation on a backing file outside the
// structured store, such as photo bytes or export output.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// RestoreError reports a backup snapshot that failed integrity verification
// and was not applied.
type RestoreError struct {
	Path   string
	Reason string
}

func (e *RestoreError) Error() string {
	return fmt.Sprintf("cannot restore %s: %s", e.Path, e.Reason)
}
