package ghostfield

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrorsDistinct(t *testing.T) {
	errs := []error{
		ErrInvalidFieldName,
		ErrDuplicateField,
		ErrStashFormat,
		ErrStashSignature,
		ErrStashDecrypt,
	}

	for i, err1 := range errs {
		for j, err2 := range errs {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("sentinel errors should be distinct: %v and %v", err1, err2)
			}
		}
	}
}

func TestIsInvalidFieldName(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"ErrInvalidFieldName", ErrInvalidFieldName, true},
		{"wrapped", fmt.Errorf("add %q: %w", "x y", ErrInvalidFieldName), true},
		{"other error", errors.New("other"), false},
		{"ErrDuplicateField", ErrDuplicateField, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInvalidFieldName(tt.err); got != tt.expect {
				t.Errorf("IsInvalidFieldName(%v) = %v, want %v", tt.err, got, tt.expect)
			}
		})
	}
}

func TestIsDuplicateField(t *testing.T) {
	if !IsDuplicateField(fmt.Errorf("wrapped: %w", ErrDuplicateField)) {
		t.Error("IsDuplicateField should unwrap")
	}
	if IsDuplicateField(ErrInvalidFieldName) {
		t.Error("IsDuplicateField matched a different sentinel")
	}
}

func TestIsStashError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"ErrStashFormat", ErrStashFormat, true},
		{"ErrStashSignature", ErrStashSignature, true},
		{"ErrStashDecrypt", ErrStashDecrypt, true},
		{"wrapped", fmt.Errorf("open: %w", ErrStashDecrypt), true},
		{"field name error", ErrInvalidFieldName, false},
		{"other error", errors.New("other"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStashError(tt.err); got != tt.expect {
				t.Errorf("IsStashError(%v) = %v, want %v", tt.err, got, tt.expect)
			}
		})
	}
}

func TestErrorMessagesPrefixed(t *testing.T) {
	errs := []error{
		ErrInvalidFieldName,
		ErrDuplicateField,
		ErrStashFormat,
		ErrStashSignature,
		ErrStashDecrypt,
	}

	for _, err := range errs {
		if err.Error()[:11] != "ghostfield:" {
			t.Errorf("error %q should start with 'ghostfield:'", err.Error())
		}
	}
}
