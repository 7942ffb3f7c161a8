package ghostfield

import (
	"errors"

	"github.com/Coercive/GhostField/lib/seal"
)

// SealStash encodes values into a token that survives a redirect, typically
// the legitimate values of a rejected submission so the user does not
// retype them:
//
//	if !form.Validate(values, ua) {
//	    token, _ := form.SealStash(form.ExtractData(values), false)
//	    // carry token in the re-rendered page or a query parameter
//	}
//
// The token is keyed by the Form's secret. With sensitive set the content
// is encrypted; otherwise it is signed and readable.
func (f *Form) SealStash(values map[string]string, sensitive bool) (string, error) {
	s, err := f.sealer()
	if err != nil {
		return "", err
	}
	if sensitive {
		return s.Seal(values)
	}
	return s.Sign(values)
}

// OpenStash decodes a token produced by SealStash with the same sensitive
// flag. Failures map to the package sentinels: ErrStashFormat,
// ErrStashSignature, ErrStashDecrypt.
func (f *Form) OpenStash(token string, sensitive bool) (map[string]string, error) {
	s, err := f.sealer()
	if err != nil {
		return nil, err
	}

	var values map[string]string
	if sensitive {
		values, err = s.Open(token)
	} else {
		values, err = s.Verify(token)
	}
	if err != nil {
		return nil, wrapSealError(err)
	}
	return values, nil
}

// sealer lazily builds the Form's token codec from its secret.
func (f *Form) sealer() (*seal.Sealer, error) {
	if f.stash != nil {
		return f.stash, nil
	}
	s, err := seal.New([]byte(f.secret))
	if err != nil {
		return nil, err
	}
	f.stash = s
	return s, nil
}

// wrapSealError maps lib/seal errors onto package sentinel errors.
func wrapSealError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, seal.ErrInvalidFormat) {
		return ErrStashFormat
	}
	if errors.Is(err, seal.ErrSignatureInvalid) {
		return ErrStashSignature
	}
	if errors.Is(err, seal.ErrDecryptFailed) {
		return ErrStashDecrypt
	}
	return err
}
