package entity

// Snapshot es el libro de inventario completo: la cabecera en orden de archivo,
// la columna de cantidad con la que se escribió y todas las filas de producto.
type Snapshot struct {
	Header   []string
	QtyField string
	Rows     []*InventoryRow
}

// EnsureColumn añade una columna a la cabecera si aún no está.
func (s *Snapshot) EnsureColumn(key string) {
	for _, h := range s.Header {
		if h == key {
			return
		}
	}
	s.Header = append(s.Header, key)
}

// FindByKey devuelve la fila con esa clave de identidad, o nil.
func (s *Snapshot) FindByKey(key string) *InventoryRow {
	for _, r := range s.Rows {
		if r != nil && r.Key() == key {
			return r
		}
	}
	return nil
}

// FindByProductCode devuelve la fila con ese código de producto, o nil.
func (s *Snapshot) FindByProductCode(code string) *InventoryRow {
	for _, r := range s.Rows {
		if r != nil && r.ProductCode == code {
			return r
		}
	}
	return nil
}

// Clone devuelve una copia profunda; los lectores pueden retenerla sin
// ver mutaciones posteriores del libro.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := &Snapshot{
		Header:   append([]string(nil), s.Header...),
		QtyField: s.QtyField,
		Rows:     make([]*InventoryRow, 0, len(s.Rows)),
	}
	for _, r := range s.Rows {
		if r == nil {
			continue
		}
		cp := *r
		if r.Extra != nil {
			cp.Extra = make(map[string]string, len(r.Extra))
			for k, v := range r.Extra {
				cp.Extra[k] = v
			}
		}
		out.Rows = append(out.Rows, &cp)
	}
	return out
}
