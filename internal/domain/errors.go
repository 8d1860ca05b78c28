package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los códigos de ubicación malformados NO son errores: Decode devuelve ok=false
// y los llamadores los ignoran (las hojas de cálculo se editan a mano).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrFileMissing      = errors.New("archivo de entrada no encontrado")
	ErrStorageExhausted = errors.New("no quedan posiciones libres en el almacén")
	ErrNotConfigured    = errors.New("servicio externo no configurado")
	ErrUnauthorized     = errors.New("no autorizado")
)
