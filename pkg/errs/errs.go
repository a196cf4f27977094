package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Mark помечает err классом kind, не меняя текста ошибки.
// errors.Is(err, исходная ошибка) продолжает работать через Unwrap,
// а принадлежность к классу проверяется через Is.
func Mark(err error, kind error) error {
	if err == nil {
		return nil
	}
	return cr.Mark(err, kind)
}

// Is учитывает как цепочку Unwrap, так и метки, поставленные через Mark
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}
