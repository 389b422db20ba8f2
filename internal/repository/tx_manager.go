package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Retailers() RetailerRepository
	Products() ProductRepository
	Orders() OrderRepository
	OrderLines() OrderLineRepository
	Shipments() ShipmentRepository
	Inventory() InventoryRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
