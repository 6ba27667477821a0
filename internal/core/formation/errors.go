package formation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation はすべての入力検証エラーが満たすエラーです。
	ErrValidation = errors.New("validation failed")
	// ErrInvalidJurisdiction は管轄コードが受け付け対象外の場合に返却されます。
	ErrInvalidJurisdiction = errors.New("unsupported jurisdiction")
	// ErrInvalidCompanyType は事業体種別が不正な場合に返却されます。
	ErrInvalidCompanyType = errors.New("unsupported company type")
	// ErrEmptyField は必須項目が空の場合に返却されます。
	ErrEmptyField = errors.New("must not be empty")
)

// FieldError は項目単位の検証エラーです。
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v (%q)", e.Field, e.Err, e.Value)
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// ValidationError は入力検証の失敗を表す唯一のエラー型で、項目ごとの診断を保持します。
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Error())
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is により errors.Is(err, ErrValidation) および項目の原因エラーで判定できます。
func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	for _, f := range e.Fields {
		if errors.Is(f.Err, target) {
			return true
		}
	}
	return false
}

// Field は指定した項目のエラーを返します。
func (e *ValidationError) Field(name string) (FieldError, bool) {
	for _, f := range e.Fields {
		if f.Field == name {
			return f, true
		}
	}
	return FieldError{}, false
}
