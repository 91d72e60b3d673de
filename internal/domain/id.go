package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/spf13/cast"
)

// ID — единый тип идентификатора сущностей, общий для удалённого хранилища и резервного набора.
type ID = int64

// ParseID приводит идентификатор в числовой или строковой форме к ID.
// Строки разбираются как десятичные числа ("07" означает 7, а не восьмеричное).
// Дробные числа отклоняются, как и строка "3.5".
func ParseID(v any) (ID, error) {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			return checkID(id)
		}
		v = s
	case float64:
		if !integral(t) {
			return 0, e.ErrInvalidID
		}
	case float32:
		if !integral(float64(t)) {
			return 0, e.ErrInvalidID
		}
	}

	id, err := cast.ToInt64E(v)
	if err != nil {
		return 0, e.ErrInvalidID
	}

	return checkID(id)
}

func checkID(id ID) (ID, error) {
	if id <= 0 {
		return 0, e.ErrInvalidID
	}
	return id, nil
}

func integral(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f) && math.Trunc(f) == f
}
