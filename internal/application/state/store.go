// Package state contiene el estado en memoria de la aplicación (Catálogo, Libro de
// movimientos y Config) y su contrato de persistencia contra el almacén local.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
	"github.com/jhoicas/almoxarifado/internal/domain/inventory"
	"github.com/jhoicas/almoxarifado/internal/domain/repository"
)

// Store es el único dueño del estado. Todas las operaciones se serializan con un mutex:
// cada mutación corre completa (mutar -> guardar) antes de atender la siguiente.
type Store struct {
	mu   sync.Mutex
	kv   repository.KeyValueStore
	seed repository.SeedSource
	log  zerolog.Logger
	now  func() time.Time

	doc entity.Document
	ids inventory.MovementIDs
}

// Option configura el Store.
type Option func(*Store)

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger asigna el logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// New construye un Store vacío con configuración por defecto. seed puede ser nil.
func New(kv repository.KeyValueStore, seed repository.SeedSource, opts ...Option) *Store {
	s := &Store{
		kv:   kv,
		seed: seed,
		log:  zerolog.Nop(),
		now:  time.Now,
		doc:  emptyDocument(entity.DefaultSettings()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tx es la vista mutable que recibe Mutate. Doc es una copia de trabajo: los cambios
// solo se publican si fn no falla y el guardado termina bien.
type Tx struct {
	Doc *entity.Document
	Now time.Time
	ids inventory.MovementIDs
}

// NextMovementID devuelve un ID de movimiento único para Now.
func (tx *Tx) NextMovementID() string {
	return tx.ids.Next(tx.Now)
}

// FindProduct busca un producto de la copia de trabajo.
func (tx *Tx) FindProduct(id string) (*entity.Product, int) {
	for i, p := range tx.Doc.Products {
		if p.ID == id {
			return p, i
		}
	}
	return nil, -1
}

// Load lee el documento persistido. Si no existe adopta la semilla y la guarda de inmediato.
// Un documento mal formado no es error: cada campo cae a su valor por defecto. Si el
// almacén entero es ilegible se inicia vacío sin guardar.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Get(ctx, repository.KeyDocument)
	switch {
	case err == nil:
		s.adopt(entity.DecodeLenient(data, entity.DefaultSettings()))
		s.log.Info().
			Int("produtos", len(s.doc.Products)).
			Int("movimentacoes", len(s.doc.Movements)).
			Msg("datos cargados")
		return nil
	case errors.Is(err, domain.ErrCorruptData):
		// no se guarda nada: el archivo ilegible sigue en disco hasta la primera mutación
		s.log.Warn().Err(err).Msg("almacén ilegible; se inicia con valores por defecto")
		s.adopt(emptyDocument(entity.DefaultSettings()))
		return nil
	case !errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("leer documento: %w", err)
	}

	if s.seed == nil {
		s.adopt(emptyDocument(entity.DefaultSettings()))
		return nil
	}
	seedData, err := s.seed.Seed(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("no se pudo cargar la semilla; se inicia vacío")
		s.adopt(emptyDocument(entity.DefaultSettings()))
		return nil
	}
	doc := entity.DecodeLenient(seedData, entity.DefaultSettings())
	if err := s.persist(ctx, doc); err != nil {
		return err
	}
	s.adopt(doc)
	s.log.Info().Int("produtos", len(doc.Products)).Msg("semilla adoptada")
	return nil
}

// Save serializa el estado actual y sobrescribe el documento completo.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist(ctx, s.doc)
}

// Mutate ejecuta fn sobre una copia del estado, guarda el documento completo y solo
// entonces publica la copia. Si fn o el guardado fallan, el estado queda intacto.
func (s *Store) Mutate(ctx context.Context, fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := cloneDocument(s.doc)
	tx := &Tx{Doc: &work, Now: s.now().UTC().Truncate(time.Millisecond), ids: s.ids}
	if err := fn(tx); err != nil {
		return err
	}
	normalize(&work)
	if err := s.persist(ctx, work); err != nil {
		return err
	}
	// fn puede reemplazar el libro completo (restauración); los IDs siguientes deben
	// quedar por encima de todos los del libro publicado.
	for _, m := range work.Movements {
		tx.ids.Observe(m.ID)
	}
	s.doc = work
	s.ids = tx.ids
	return nil
}

// Snapshot devuelve una copia independiente del estado actual.
func (s *Store) Snapshot() entity.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneDocument(s.doc)
}

// Settings devuelve la configuración actual.
func (s *Store) Settings() entity.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Settings
}

// Marshal serializa el estado actual con el formato del documento persistido.
func (s *Store) Marshal(indent bool) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if indent {
		return json.MarshalIndent(s.doc, "", "  ")
	}
	return json.Marshal(s.doc)
}

// Now devuelve la hora del reloj del Store.
func (s *Store) Now() time.Time {
	return s.now()
}

// KV expone el almacén local para claves auxiliares (ej. última notificación).
func (s *Store) KV() repository.KeyValueStore {
	return s.kv
}

func (s *Store) persist(ctx context.Context, doc entity.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("serializar documento: %w", err)
	}
	if err := s.kv.Put(ctx, repository.KeyDocument, data); err != nil {
		return fmt.Errorf("guardar documento: %w", err)
	}
	return nil
}

func (s *Store) adopt(doc entity.Document) {
	normalize(&doc)
	s.doc = doc
	s.ids = inventory.MovementIDs{}
	for _, m := range doc.Movements {
		s.ids.Observe(m.ID)
	}
}

func emptyDocument(settings entity.Settings) entity.Document {
	return entity.Document{Products: []*entity.Product{}, Movements: []entity.Movement{}, Settings: settings}
}

func normalize(doc *entity.Document) {
	if doc.Products == nil {
		doc.Products = []*entity.Product{}
	}
	if doc.Movements == nil {
		doc.Movements = []entity.Movement{}
	}
}

func cloneDocument(doc entity.Document) entity.Document {
	out := entity.Document{
		Products:  make([]*entity.Product, len(doc.Products)),
		Movements: make([]entity.Movement, len(doc.Movements)),
		Settings:  doc.Settings,
	}
	for i, p := range doc.Products {
		out.Products[i] = p.Clone()
	}
	copy(out.Movements, doc.Movements)
	return out
}
