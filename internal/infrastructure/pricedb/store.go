// Package pricedb caché local de precios de mercado sobre un CSV en disco.
// Evita repetir consultas al proveedor para cartas ya tasadas.
package pricedb

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/kartoteka/kartoteka-api/internal/domain/pricing"
	"github.com/kartoteka/kartoteka-api/internal/domain/repository"
	"github.com/kartoteka/kartoteka-api/internal/infrastructure/csvio"
	"github.com/kartoteka/kartoteka-api/pkg/logger"
)

var priceHeader = []string{"nazwa", "numer", "cena_eur"}

// Store implementación CSV de repository.PriceRepository.
type Store struct {
	mu     sync.RWMutex
	path   string
	prices map[string]string
	names  map[string][2]string // clave -> (nombre, número) tal como se escribieron
	order  []string
	log    *logger.Logger
}

var _ repository.PriceRepository = (*Store)(nil)

// NewStore abre la caché sobre el archivo dado. Un archivo ausente es una
// caché vacía.
func NewStore(path string, log *logger.Logger) (*Store, error) {
	s := &Store{
		path:   path,
		prices: make(map[string]string),
		names:  make(map[string][2]string),
		log:    log,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func key(name, number string) string {
	return pricing.Normalize(name, false) + "|" + strings.TrimSpace(number)
}

func (s *Store) load() error {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Warn().Str("file", s.path).Msg("caché de precios ausente, se parte de una vacía")
			return nil
		}
		return fmt.Errorf("abrir caché de precios: %w", err)
	}
	defer f.Close()

	table, err := csvio.ReadTable(f)
	if err != nil {
		return fmt.Errorf("leer caché de precios: %w", err)
	}
	for _, raw := range table.Rows {
		k := key(raw["nazwa"], raw["numer"])
		if _, ok := s.prices[k]; !ok {
			s.order = append(s.order, k)
		}
		s.prices[k] = raw["cena_eur"]
		s.names[k] = [2]string{raw["nazwa"], raw["numer"]}
	}
	return nil
}

// Lookup devuelve el precio EUR cacheado de la carta, si existe.
func (s *Store) Lookup(name, number string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	price, ok := s.prices[key(name, number)]
	return price, ok && price != ""
}

// Put guarda el precio y reescribe el archivo.
func (s *Store) Put(name, number, priceEUR string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(name, number)
	if _, ok := s.prices[k]; !ok {
		s.order = append(s.order, k)
	}
	s.prices[k] = priceEUR
	s.names[k] = [2]string{strings.TrimSpace(name), strings.TrimSpace(number)}

	return s.save()
}

func (s *Store) save() error {
	records := make([]map[string]string, 0, len(s.order))
	for _, k := range s.order {
		nn := s.names[k]
		records = append(records, map[string]string{
			"nazwa":    nn[0],
			"numer":    nn[1],
			"cena_eur": s.prices[k],
		})
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("escribir caché de precios: %w", err)
	}
	defer f.Close()
	return csvio.WriteTable(f, priceHeader, records, csvio.NormalizeHeader)
}
