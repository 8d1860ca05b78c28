package repository

// PriceRepository define el puerto de la caché local de precios EUR.
// La clave es el nombre normalizado de la carta más su número.
type PriceRepository interface {
	Lookup(name, number string) (string, bool)
	Put(name, number, priceEUR string) error
}
