package ports

import (
	"context"

	"github.com/kartoteka/kartoteka-api/internal/application/dto"
)

// CardRecognizer define el puerto de salida para el reconocimiento visual de
// cartas. Cualquier adaptador (OpenAI, mock) debe implementar esta interfaz;
// la aplicación solo conoce este contrato (DIP).
type CardRecognizer interface {
	// RecognizeCard identifica nombre, número y sufijo a partir de una foto.
	// El contexto debe llevar un timeout para evitar bloqueos en la llamada externa.
	RecognizeCard(ctx context.Context, image []byte) (*dto.CardRecognitionDTO, error)
}
