package pgdb

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jackc/pgx/v5"
)

// setBuilder собирает SET-часть UPDATE из заданных полей патча.
type setBuilder struct {
	cols []string
	args []any
}

func (b *setBuilder) add(col string, v any) {
	b.args = append(b.args, v)
	b.cols = append(b.cols, fmt.Sprintf("%s = $%d", col, len(b.args)))
}

// addNumeric добавляет колонку NUMERIC, значение передаётся текстом.
func (b *setBuilder) addNumeric(col string, v string) {
	b.args = append(b.args, v)
	b.cols = append(b.cols, fmt.Sprintf("%s = $%d::numeric", col, len(b.args)))
}

func (b *setBuilder) empty() bool {
	return len(b.cols) == 0
}

// update возвращает запрос UPDATE table SET ... WHERE id = $n RETURNING returning и его аргументы.
func (b *setBuilder) update(table string, id int64, returning string) (string, []any) {
	args := append(b.args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(b.cols, ", "), len(args), returning,
	)
	return query, args
}

// filterColumn проверяет, что поле фильтра разрешено для таблицы.
func filterColumn(allowed map[string]string, field string) (string, error) {
	col, ok := allowed[field]
	if !ok {
		return "", e.Wrap(fmt.Sprintf("unsupported filter field %q", field), e.ErrStatusBadRequest)
	}
	return col, nil
}

// notFound приводит pgx.ErrNoRows к e.ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return e.ErrNotFound
	}
	return err
}
