package repository

// CatalogStore fuente de verdad del catálogo, usuarios, cotizaciones y configuración.
// Implementaciones: Postgres, API remota por acciones y dataset de demostración en memoria.
// Los fallos de conectividad se informan envolviendo domain.ErrBackendUnreachable.
type CatalogStore interface {
	ProductRepository
	UserRepository
	QuotationRepository
	ConfigRepository
}
