package converter

import "time"

// Денежные колонки читаются как текст (price::text) и хранятся в моделях строкой,
// чтобы не терять точность NUMERIC при сканировании.

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID            int64     `db:"id"`
	Name          string    `db:"name"`
	Description   string    `db:"description"`
	Price         string    `db:"price"`
	Image         string    `db:"image"`
	Category      string    `db:"category"`
	Rating        float64   `db:"rating"`
	Reviews       int32     `db:"reviews"`
	StockQuantity *int32    `db:"stock_quantity"`
	IsFeatured    bool      `db:"is_featured"`
	CreatedAt     time.Time `db:"created_at"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID   int64  `db:"id"`
	Slug string `db:"slug"`
	Name string `db:"name"`
	Icon string `db:"icon"`
}

// OrderModel представляет запись таблицы orders в PostgreSQL.
type OrderModel struct {
	ID          int64     `db:"id"`
	UserID      string    `db:"user_id"`
	Status      string    `db:"status"`
	TotalAmount string    `db:"total_amount"`
	CreatedAt   time.Time `db:"created_at"`
}

// OrderItemModel представляет запись таблицы order_items в PostgreSQL.
type OrderItemModel struct {
	ID        int64  `db:"id"`
	OrderID   int64  `db:"order_id"`
	ProductID int64  `db:"product_id"`
	Quantity  int32  `db:"quantity"`
	Price     string `db:"price"`
}
