package repository

// TxRepos agrupa los puertos atados a una misma transacción de base de datos.
// El TxRunner de la capa de infraestructura construye una instancia con
// repositorios ligados a la tx y la pasa al callback del caso de uso.
type TxRepos struct {
	Orders         OrderRepository
	SupplierOrders SupplierOrderRepository
	ASNs           ASNRepository
	Picking        PickingRepository
	Products       ProductRepository
	Movements      StockMovementRepository
	Lots           LotRepository
	LocationInv    LocationInventoryRepository
}
