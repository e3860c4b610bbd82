package memory

import (
	"sort"
	"sync"

	"github.com/cultivapp/cultivo-api/internal/domain/entity"
)

// Store es el dueño único de todas las tablas en memoria: un mapa id→registro
// por tipo de entidad, cada uno con su contador monotónico de IDs. Sustituye
// al pool de base de datos; se inyecta a los repositorios en el arranque.
type Store struct {
	products     *table[entity.Product]
	locations    *table[entity.Location]
	stages       *table[entity.Stage]
	substages    *table[entity.Substage]
	movements    *table[entity.Movement]
	postits      *table[entity.Postit]
	recipes      *table[entity.Recipe]
	recipeImages *table[entity.RecipeImage]
	responsibles *table[entity.Responsible]
}

// NewStore crea un Store con todas las tablas vacías.
func NewStore() *Store {
	return &Store{
		products:     newTable[entity.Product](),
		locations:    newTable[entity.Location](),
		stages:       newTable[entity.Stage](),
		substages:    newTable[entity.Substage](),
		movements:    newTable[entity.Movement](),
		postits:      newTable[entity.Postit](),
		recipes:      newTable[entity.Recipe](),
		recipeImages: newTable[entity.RecipeImage](),
		responsibles: newTable[entity.Responsible](),
	}
}

// table es un mapa id→registro protegido por mutex. Los registros se guardan
// y devuelven por valor, de modo que los llamadores trabajan sobre copias y
// solo Update/put hace visible una mutación.
type table[T any] struct {
	mu     sync.RWMutex
	rows   map[int64]T
	nextID int64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T), nextID: 1}
}

// add asigna el siguiente ID, construye el registro con él y lo guarda.
func (t *table[T]) add(build func(id int64) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextID
	t.nextID++
	row := build(id)
	t.rows[id] = row
	return row
}

func (t *table[T]) get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	return row, ok
}

// put reemplaza un registro existente. Devuelve false si el ID no existe.
func (t *table[T]) put(id int64, row T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = row
	return true
}

func (t *table[T]) remove(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// list devuelve todos los registros en orden ascendente de ID.
func (t *table[T]) list() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}
