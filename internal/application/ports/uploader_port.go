package ports

import "context"

// ImageUploader define el puerto de salida para subir las fotos de cartas al
// alojamiento remoto desde el que la tienda las sirve.
type ImageUploader interface {
	// UploadFile sube el contenido a remotePath, creando los directorios
	// intermedios que falten.
	UploadFile(ctx context.Context, remotePath string, data []byte) error
	// UploadDir sube recursivamente un directorio local.
	UploadDir(ctx context.Context, localDir, remoteDir string) error
}
